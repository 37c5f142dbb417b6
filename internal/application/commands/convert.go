package commands

import (
	"context"
	"fmt"

	"vimwiki/internal/application"
	"vimwiki/internal/domain"
	"vimwiki/internal/logger"
	"vimwiki/internal/ports"
)

// ConvertResult lists what happened to each page of a conversion run
type ConvertResult struct {
	Written   []string // paths of the markdown files written
	Unchanged []string // pages without heading or fence markup
	Skipped   []string // pages whose output would overwrite an existing page
}

// ConvertCommand converts every page of a wiki folder to markdown
type ConvertCommand struct {
	repo            ports.WikiRepository
	log             *logger.Logger
	WikiPath        string
	OutputExtension string
}

// NewConvertCommand creates a new ConvertCommand
func NewConvertCommand(repo ports.WikiRepository, log *logger.Logger, wikiPath, outputExtension string) *ConvertCommand {
	return &ConvertCommand{
		repo:            repo,
		log:             logger.OrDiscard(log),
		WikiPath:        wikiPath,
		OutputExtension: outputExtension,
	}
}

// Validate checks the command arguments before any file is read
func (c *ConvertCommand) Validate() error {
	if err := application.ValidateRequired("wikiPath", c.WikiPath); err != nil {
		return err
	}
	return application.ValidateExtension("outputExtension", c.OutputExtension)
}

// Execute writes <name>.<ext> next to every page whose content changes.
// Source pages are never modified.
func (c *ConvertCommand) Execute(ctx context.Context) (*ConvertResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path := c.repo.ResolvePath(c.WikiPath)
	pages, err := c.repo.ListPages(path)
	if err != nil {
		return nil, err
	}

	// Outputs never replace a page, whether its own source or a sibling
	existing := make(map[string]bool, len(pages))
	for _, page := range pages {
		existing[page.FileName] = true
	}

	result := &ConvertResult{}
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := c.repo.ReadPage(page)
		if err != nil {
			return nil, &application.PageError{Page: page.FileName, Err: err}
		}

		converted := domain.ConvertToMarkdown(content)
		if converted == content {
			result.Unchanged = append(result.Unchanged, page.FileName)
			c.log.PageSkipped(page.FileName, "unchanged")
			continue
		}

		dest := domain.MarkdownFileName(page.FileName, c.OutputExtension)
		if existing[dest] {
			result.Skipped = append(result.Skipped, page.FileName)
			c.log.PageSkipped(page.FileName, application.ErrSameFile.Error())
			continue
		}

		written, err := c.repo.WriteFile(path, dest, converted)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", page.FileName, err)
		}
		result.Written = append(result.Written, written)
		c.log.PageConverted(page.FileName, written)
	}

	return result, nil
}
