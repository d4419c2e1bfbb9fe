package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"yolocheck/internal/adapters/report"
	"yolocheck/internal/application/commands"
	"yolocheck/internal/domain"
	"yolocheck/internal/ports"
)

// Deps are the adapters shared by every tool
type Deps struct {
	FS         afero.Fs
	Store      ports.DatasetStore
	Decoder    ports.ImageDecoder
	History    ports.RunHistory // nil disables run_history and recording
	BaseDir    string
	ClassNames []string
}

// RegisterWriteTools adds the tools that may delete dataset files.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(validateTool(), validateHandler(deps))
}

// --- validate_dataset ---

func validateTool() mcp.Tool {
	return mcp.NewTool("validate_dataset",
		mcp.WithDescription("Validate a YOLO dataset (images/{train,test}, labels/{train,test}): find orphaned, corrupt and malformed pairs and report statistics. With dry_run=false invalid files are deleted."),
		mcp.WithString("path",
			mcp.Description("Dataset base directory. Defaults to the server's configured dataset."),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Report without deleting anything (default true)."),
		),
		mcp.WithString("classes",
			mcp.Description("Comma-separated class names overriding the configured vocabulary."),
		),
		mcp.WithString("data_yaml",
			mcp.Description("Path to a YOLO data.yaml to read class names from."),
		),
		mcp.WithBoolean("verbose",
			mcp.Description("Include every recorded issue in the report."),
		),
	)
}

func validateHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		baseDir := req.GetString("path", deps.BaseDir)

		names, err := deps.classNames(req.GetString("data_yaml", ""))
		if err != nil {
			return toolError(err)
		}
		if list := req.GetString("classes", ""); list != "" {
			names = domain.ParseClassList(list)
		}

		cmd := commands.NewValidateCommand(deps.Store, deps.Decoder, deps.History, baseDir, names)
		cmd.DryRun = req.GetBool("dry_run", true)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteString("\n")
		opts := report.Options{Verbose: req.GetBool("verbose", false)}
		if err := report.WriteText(&sb, baseDir, result.Stats, opts); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
