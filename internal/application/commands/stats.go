package commands

import (
	"context"

	"vimwiki/internal/application"
	"vimwiki/internal/domain"
	"vimwiki/internal/logger"
	"vimwiki/internal/ports"
)

// StatsResult contains the page counts of every wiki under a root
type StatsResult struct {
	Stats  []domain.WikiStat // most pages first
	Output string
}

// StatsCommand counts the pages of each wiki folder under a root
type StatsCommand struct {
	repo     ports.WikiRepository
	log      *logger.Logger
	RootPath string
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(repo ports.WikiRepository, log *logger.Logger, rootPath string) *StatsCommand {
	return &StatsCommand{
		repo:     repo,
		log:      logger.OrDiscard(log),
		RootPath: rootPath,
	}
}

// Validate checks the command arguments
func (c *StatsCommand) Validate() error {
	return application.ValidateRequired("rootPath", c.RootPath)
}

// Execute lists the wikis, counts their pages and formats the table
func (c *StatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	wikis, err := c.repo.ListWikis(c.RootPath)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.WikiStat, 0, len(wikis))
	for _, wiki := range wikis {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pages, err := c.repo.ListPages(wiki.Path)
		if err != nil {
			return nil, &application.WikiError{Wiki: wiki.Name, Err: err}
		}
		c.log.PagesDiscovered(wiki.Name, len(pages))
		stats = append(stats, domain.WikiStat{Name: wiki.Name, Pages: len(pages)})
	}

	domain.SortStats(stats)
	return &StatsResult{
		Stats:  stats,
		Output: domain.FormatStats(stats),
	}, nil
}
