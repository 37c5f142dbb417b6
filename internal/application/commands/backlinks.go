package commands

import (
	"context"
	"fmt"

	"vimwiki/internal/application"
	"vimwiki/internal/domain"
	"vimwiki/internal/logger"
	"vimwiki/internal/ports"
)

// BacklinksResult lists the pages linking to one page
type BacklinksResult struct {
	Page      string
	Exists    bool // false when the page is only referenced, never written
	Backlinks []domain.Backlink
	Outlinks  []domain.Edge       // distinct link tokens written in Page
	Dangling  []domain.IndexEntry // names referenced anywhere in the wiki without a page
}

// BacklinksCommand rebuilds the link index of a wiki and queries it
type BacklinksCommand struct {
	repo     ports.WikiRepository
	index    ports.LinkIndex
	log      *logger.Logger
	WikiPath string
	Page     string
}

// NewBacklinksCommand creates a new BacklinksCommand
func NewBacklinksCommand(repo ports.WikiRepository, index ports.LinkIndex, log *logger.Logger, wikiPath, page string) *BacklinksCommand {
	return &BacklinksCommand{
		repo:     repo,
		index:    index,
		log:      logger.OrDiscard(log),
		WikiPath: wikiPath,
		Page:     page,
	}
}

// Validate checks the command arguments
func (c *BacklinksCommand) Validate() error {
	if err := application.ValidateRequired("wikiPath", c.WikiPath); err != nil {
		return err
	}
	return application.ValidateLinkName("page", c.Page)
}

// Execute rebuilds the index from scratch and returns the links into and out of Page
func (c *BacklinksCommand) Execute(ctx context.Context) (*BacklinksResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path := c.repo.ResolvePath(c.WikiPath)
	pages, err := c.repo.ListPages(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.index.Open(path); err != nil {
		return nil, fmt.Errorf("failed to open link index: %w", err)
	}
	defer c.index.Close()

	stats, err := c.index.SyncFull(pages, func(p domain.Page) (string, error) {
		content, err := c.repo.ReadPage(p)
		if err != nil {
			return "", &application.PageError{Page: p.FileName, Err: err}
		}
		return content, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild link index: %w", err)
	}
	c.log.IndexRebuilt(path, stats.NodesAdded, stats.EdgesAdded, stats.Duration)

	node, err := c.index.GetNode(c.Page)
	if err != nil {
		return nil, err
	}
	backlinks, err := c.index.FindBacklinks(c.Page)
	if err != nil {
		return nil, err
	}
	outlinks, err := c.index.FindLinksFromPage(c.Page)
	if err != nil {
		return nil, err
	}
	dangling, err := c.index.FindDangling()
	if err != nil {
		return nil, err
	}

	return &BacklinksResult{
		Page:      c.Page,
		Exists:    node != nil,
		Backlinks: backlinks,
		Outlinks:  outlinks,
		Dangling:  dangling,
	}, nil
}
