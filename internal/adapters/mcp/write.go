package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vimwiki/internal/application/commands"
	"vimwiki/internal/domain"
	"vimwiki/internal/ports"
)

// RegisterWriteTools adds the tools that write files into a wiki.
func RegisterWriteTools(s *server.MCPServer, repo ports.WikiRepository, opts Options) {
	s.AddTool(writeIndexTool(), writeIndexHandler(repo, opts))
	s.AddTool(convertMarkdownTool(), convertMarkdownHandler(repo, opts))
}

// --- write_index ---

func writeIndexTool() mcp.Tool {
	return mcp.NewTool("write_index",
		mcp.WithDescription("Generate the reference index of a wiki folder and write it to index.<extension> inside the folder."),
		mcp.WithString("wiki",
			mcp.Description("Wiki folder, absolute or relative to the server root"),
			mcp.Required(),
		),
		mcp.WithString("output_type",
			mcp.Description("wiki (packed [[links]]) or html (font-size weighted anchors)"),
			mcp.Enum(string(domain.OutputWiki), string(domain.OutputHTML)),
		),
		mcp.WithString("extension",
			mcp.Description("Extension of the index file (e.g. wiki, html). Omit for the configured default."),
		),
	)
}

func writeIndexHandler(repo ports.WikiRepository, opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		wiki := req.GetString("wiki", "")

		outputType, err := domain.ParseOutputType(req.GetString("output_type", string(opts.OutputType)))
		if err != nil {
			return toolError(err)
		}

		indexOpts := commands.IndexOptions{
			OutputType: outputType,
			Extension:  req.GetString("extension", opts.Extension),
			Write:      true,
		}
		result, err := commands.NewGenIndexCommand(repo, opts.Log, wiki, indexOpts).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("wrote %s (%d pages)", result.WrittenPath, len(result.Entries))), nil
	}
}

// --- convert_markdown ---

func convertMarkdownTool() mcp.Tool {
	return mcp.NewTool("convert_markdown",
		mcp.WithDescription("Convert wiki headings and {{{ }}} code blocks of every page to markdown, writing <page>.<output_extension> next to each changed page. Source pages are never modified."),
		mcp.WithString("wiki",
			mcp.Description("Wiki folder, absolute or relative to the server root"),
			mcp.Required(),
		),
		mcp.WithString("output_extension",
			mcp.Description("Extension of the converted files (e.g. md)"),
			mcp.Required(),
		),
	)
}

func convertMarkdownHandler(repo ports.WikiRepository, opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		wiki := req.GetString("wiki", "")
		ext := req.GetString("output_extension", "")

		result, err := commands.NewConvertCommand(repo, opts.Log, wiki, ext).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "converted %d, unchanged %d, skipped %d\n",
			len(result.Written), len(result.Unchanged), len(result.Skipped))
		for _, path := range result.Written {
			fmt.Fprintf(&sb, "wrote %s\n", path)
		}
		for _, page := range result.Skipped {
			fmt.Fprintf(&sb, "skipped %s: output would overwrite an existing page\n", page)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
