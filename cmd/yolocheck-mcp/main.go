package main

import (
	"context"
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"yolocheck/internal/adapters/filesystem"
	"yolocheck/internal/adapters/imagecheck"
	mcpadapter "yolocheck/internal/adapters/mcp"
	"yolocheck/internal/adapters/sqlite"
	"yolocheck/internal/config"
)

func main() {
	datasetFlag := flag.String("dataset", config.DatasetPath(), "dataset base directory")
	dataFlag := flag.String("data", "", "YOLO data.yaml to read class names from")
	historyFlag := flag.String("history-db", config.HistoryPath(), "SQLite run history database")
	flag.Parse()

	// stdout carries the protocol
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("app", "yolocheck-mcp").Logger()

	fs := afero.NewOsFs()
	deps := mcpadapter.Deps{
		FS:         fs,
		Store:      filesystem.NewStore(fs),
		Decoder:    imagecheck.NewDecoder(true),
		BaseDir:    filesystem.ExpandHome(*datasetFlag),
		ClassNames: config.ClassNames(),
	}

	if *dataFlag != "" {
		names, err := config.LoadClassNames(fs, filesystem.ExpandHome(*dataFlag))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load class names")
		}
		deps.ClassNames = names
	}

	if *historyFlag != "" {
		history, err := sqlite.Open(filesystem.ExpandHome(*historyFlag))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open history")
		}
		defer history.Close()
		deps.History = history
	}

	mcpServer := server.NewMCPServer(
		"yolocheck-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	log.Info().Str("dataset", deps.BaseDir).Int("classes", len(deps.ClassNames)).Msg("serving on stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
