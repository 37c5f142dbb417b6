package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vimwiki/internal/application/commands"
	"vimwiki/internal/domain"
	"vimwiki/internal/logger"
	"vimwiki/internal/ports"
)

// Options carries the configured defaults shared by every tool
type Options struct {
	OutputType domain.OutputType
	Extension  string
	Log        *logger.Logger
}

// RegisterReadTools adds all read-only wiki tools to the MCP server.
// newIndex is called once per backlinks request.
func RegisterReadTools(s *server.MCPServer, repo ports.WikiRepository, newIndex func() ports.LinkIndex, opts Options) {
	s.AddTool(genIndexTool(), genIndexHandler(repo, opts))
	s.AddTool(statsTool(), statsHandler(repo, opts))
	s.AddTool(backlinksTool(), backlinksHandler(repo, newIndex, opts))
	s.AddTool(rankTool(), rankHandler(repo, opts))
}

// --- gen_index ---

func genIndexTool() mcp.Tool {
	return mcp.NewTool("gen_index",
		mcp.WithDescription("Render the reference index of a wiki folder without writing it. Pages are ordered by how often other pages link to them."),
		mcp.WithString("wiki",
			mcp.Description("Wiki folder, absolute or relative to the server root"),
			mcp.Required(),
		),
		mcp.WithString("output_type",
			mcp.Description("wiki (packed [[links]]) or html (font-size weighted anchors)"),
			mcp.Enum(string(domain.OutputWiki), string(domain.OutputHTML)),
		),
	)
}

func genIndexHandler(repo ports.WikiRepository, opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		wiki := req.GetString("wiki", "")
		if wiki == "" {
			return toolError(fmt.Errorf("wiki is required"))
		}

		outputType, err := domain.ParseOutputType(req.GetString("output_type", string(opts.OutputType)))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewGenIndexCommand(repo, opts.Log, wiki, commands.IndexOptions{OutputType: outputType})
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if result.Output == "" {
			return mcp.NewToolResultText("No pages."), nil
		}
		return mcp.NewToolResultText(result.Output), nil
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Count the pages of every wiki folder under a root, largest first."),
		mcp.WithString("root",
			mcp.Description("Directory holding wiki folders. Omit to use the server root."),
		),
	)
}

func statsHandler(repo ports.WikiRepository, opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := req.GetString("root", ".")

		result, err := commands.NewStatsCommand(repo, opts.Log, root).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Stats) == 0 {
			return mcp.NewToolResultText("No results."), nil
		}
		return mcp.NewToolResultText(result.Output), nil
	}
}

// --- backlinks ---

func backlinksTool() mcp.Tool {
	return mcp.NewTool("backlinks",
		mcp.WithDescription("List the pages that link to a page, with the number of links each one holds."),
		mcp.WithString("wiki",
			mcp.Description("Wiki folder, absolute or relative to the server root"),
			mcp.Required(),
		),
		mcp.WithString("page",
			mcp.Description("Page name without extension (e.g. linux)"),
			mcp.Required(),
		),
		mcp.WithBoolean("outgoing",
			mcp.Description("Also list the links written in the page"),
		),
	)
}

func backlinksHandler(repo ports.WikiRepository, newIndex func() ports.LinkIndex, opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		wiki := req.GetString("wiki", "")
		page := req.GetString("page", "")
		outgoing := req.GetBool("outgoing", false)

		cmd := commands.NewBacklinksCommand(repo, newIndex(), opts.Log, wiki, page)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if len(result.Backlinks) == 0 {
			fmt.Fprintf(&sb, "No pages link to %s.\n", result.Page)
		} else if !result.Exists {
			fmt.Fprintf(&sb, "%s has no page (dangling reference)\n", result.Page)
		}
		for _, b := range result.Backlinks {
			sb.WriteString(formatBacklink(b))
			sb.WriteByte('\n')
		}
		if outgoing {
			fmt.Fprintf(&sb, "Links from %s:\n", result.Page)
			for _, e := range result.Outlinks {
				fmt.Fprintf(&sb, "-> %s  %s\n", e.Target, e.LinkText)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- rank ---

func rankTool() mcp.Tool {
	return mcp.NewTool("rank",
		mcp.WithDescription("List the pages of a wiki folder with their inbound reference counts, most referenced first."),
		mcp.WithString("wiki",
			mcp.Description("Wiki folder, absolute or relative to the server root"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of pages to return. Omit for all."),
		),
	)
}

func rankHandler(repo ports.WikiRepository, opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		wiki := req.GetString("wiki", "")
		limit := req.GetInt("limit", 0)

		result, err := commands.NewRankCommand(repo, opts.Log, wiki, limit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return formatEntities(result.Entries, formatEntry)
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

func formatEntry(e domain.IndexEntry) string {
	return fmt.Sprintf("%s  %d", e.Name, e.Count)
}

func formatBacklink(b domain.Backlink) string {
	return fmt.Sprintf("%s  %s  %d", b.Source, b.LinkText, b.Count)
}
