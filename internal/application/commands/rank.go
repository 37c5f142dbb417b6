package commands

import (
	"context"

	"vimwiki/internal/application"
	"vimwiki/internal/domain"
	"vimwiki/internal/logger"
	"vimwiki/internal/ports"
)

// RankResult contains the pages of a wiki ordered by inbound references
type RankResult struct {
	Wiki     string
	WikiPath string
	Entries  []domain.IndexEntry
	Total    int               // number of pages before Limit was applied
	Paths    map[string]string // page name -> file path
}

// RankCommand ranks the pages of a wiki, most referenced first
type RankCommand struct {
	repo     ports.WikiRepository
	log      *logger.Logger
	WikiPath string
	Limit    int // zero means no limit
}

// NewRankCommand creates a new RankCommand
func NewRankCommand(repo ports.WikiRepository, log *logger.Logger, wikiPath string, limit int) *RankCommand {
	return &RankCommand{
		repo:     repo,
		log:      logger.OrDiscard(log),
		WikiPath: wikiPath,
		Limit:    limit,
	}
}

// Validate checks the command arguments
func (c *RankCommand) Validate() error {
	if err := application.ValidateRequired("wikiPath", c.WikiPath); err != nil {
		return err
	}
	if c.Limit < 0 {
		return &application.ValidationError{
			Field:   "limit",
			Message: "limit cannot be negative",
		}
	}
	return nil
}

// Execute scans the wiki and sorts its pages by count, ties in file name order
func (c *RankCommand) Execute(ctx context.Context) (*RankResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	scan, err := scanWiki(ctx, c.repo, c.log, c.WikiPath)
	if err != nil {
		return nil, err
	}

	entries := domain.SortByCountDesc(scan.entries())
	result := &RankResult{
		Wiki:     scan.Name,
		WikiPath: scan.Path,
		Total:    len(entries),
		Paths:    make(map[string]string, len(scan.Pages)),
	}
	// Same-stem pages each get an entry; enter opens the first by file name
	for _, p := range scan.Pages {
		if _, ok := result.Paths[p.Name]; !ok {
			result.Paths[p.Name] = p.Path
		}
	}
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}
	result.Entries = entries

	return result, nil
}
