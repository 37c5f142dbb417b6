package main

import (
	"context"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vimwiki/internal/adapters/filesystem"
	mcpadapter "vimwiki/internal/adapters/mcp"
	"vimwiki/internal/adapters/sqlite"
	"vimwiki/internal/config"
	"vimwiki/internal/domain"
	"vimwiki/internal/logger"
	"vimwiki/internal/ports"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("vimwiki-mcp: loading config", "err", err)
	}

	rootFlag := flag.String("root", cfg.Root, "directory relative wiki paths are resolved against")
	verbose := flag.Bool("verbose", false, "log debug output to stderr")
	flag.Parse()

	level := logger.ParseLevel(cfg.LogLevel)
	if *verbose {
		level = log.DebugLevel
	}
	// stdout carries the protocol
	l := logger.NewWithLevel(os.Stderr, level)

	outputType, err := domain.ParseOutputType(cfg.OutputType)
	if err != nil {
		l.Fatal("vimwiki-mcp: invalid output_type in config", "err", err)
	}

	repo := filesystem.NewRepository(*rootFlag)
	opts := mcpadapter.Options{
		OutputType: outputType,
		Extension:  cfg.Extension,
		Log:        l,
	}

	mcpServer := server.NewMCPServer(
		"vimwiki-mcp",
		version,
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

	mcpadapter.RegisterReadTools(mcpServer, repo, func() ports.LinkIndex { return sqlite.NewIndex() }, opts)
	mcpadapter.RegisterWriteTools(mcpServer, repo, opts)

	l.Info("serving on stdio", "root", repo.ResolvePath("."))
	if err := server.ServeStdio(mcpServer); err != nil {
		l.Fatal("vimwiki-mcp", "err", err)
	}
}
