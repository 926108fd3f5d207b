package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/pflag"

	"funknotes/internal/adapters/codec"
	"funknotes/internal/adapters/filesystem"
	mcpadapter "funknotes/internal/adapters/mcp"
	"funknotes/internal/adapters/prompt"
	"funknotes/internal/application/commands"
	"funknotes/internal/config"
)

func main() {
	flags := pflag.NewFlagSet("funknotes-mcp", pflag.ExitOnError)
	homeFlag := flags.String("home", "", "funknotes home directory (default $FUNKNOTES_HOME or ~/.funknotes)")
	flags.String("format", "", "storage format for project files (json or text)")
	flags.Parse(os.Args[1:])

	// stdout carries the protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	home, err := config.ResolveHome(*homeFlag)
	if err != nil {
		log.Fatalf("funknotes-mcp: %v", err)
	}
	settings, err := config.Load(home, flags)
	if err != nil {
		log.Fatalf("funknotes-mcp: %v", err)
	}
	projectCodec, err := codec.New(settings.StorageFormat)
	if err != nil {
		log.Fatalf("funknotes-mcp: %v", err)
	}

	state := filesystem.NewStateStore(settings.StatePath())
	dir := filesystem.NewDirectory(settings.ProjectsDir(), projectCodec, state, logger)
	// destructive tools decide with their confirm argument
	ws := commands.NewWorkspace(dir, state, prompt.NewFixed(false))
	ws.Logger = logger

	mcpServer := server.NewMCPServer(
		"funknotes-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, ws)
	mcpadapter.RegisterWriteTools(mcpServer, ws)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("funknotes-mcp: %v", err)
	}
}
