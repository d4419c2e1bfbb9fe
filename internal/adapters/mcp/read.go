package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"yolocheck/internal/application/commands"
	"yolocheck/internal/config"
	"yolocheck/internal/domain"
)

// RegisterReadTools adds the tools that never modify the dataset.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(classesTool(), classesHandler(deps))
	s.AddTool(historyTool(), historyHandler(deps))
}

// --- list_classes ---

func classesTool() mcp.Tool {
	return mcp.NewTool("list_classes",
		mcp.WithDescription("List the class vocabulary used to validate annotations, in index order."),
		mcp.WithString("data_yaml",
			mcp.Description("Optional path to a YOLO data.yaml whose names list replaces the configured classes."),
		),
	)
}

func classesHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := deps.classNames(req.GetString("data_yaml", ""))
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for i, name := range names {
			fmt.Fprintf(&sb, "%d  %s\n", i, name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- run_history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("run_history",
		mcp.WithDescription("List previous validation runs, most recent first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of runs to return (default 10, 0 for all)."),
		),
	)
}

func historyHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewHistoryCommand(deps.History, req.GetInt("limit", 10))
		records, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(records, formatRun)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatRun(r domain.RunRecord) string {
	mode := "applied"
	if r.DryRun {
		mode = "dry-run"
	}
	return fmt.Sprintf("%s  %s  %s  %s  valid=%d objects=%d removed=%d/%d corrupted=%d missing=%d",
		r.StartedAt.Format("2006-01-02 15:04:05"), r.ID, mode, r.BaseDir,
		r.ValidImages, r.ValidObjects, r.RemovedImages, r.RemovedLabels, r.CorruptedFiles, r.MissingPairs)
}

// classNames resolves the vocabulary: data.yaml when given, else the configured list
func (d Deps) classNames(dataYAML string) ([]string, error) {
	if dataYAML != "" {
		return config.LoadClassNames(d.FS, dataYAML)
	}
	return d.ClassNames, nil
}
