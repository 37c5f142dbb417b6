package commands

import (
	"context"
	"fmt"

	"vimwiki/internal/application"
	"vimwiki/internal/domain"
	"vimwiki/internal/logger"
	"vimwiki/internal/ports"
)

// IndexOptions controls how an index is rendered and whether it is written
type IndexOptions struct {
	OutputType domain.OutputType
	Extension  string // extension of the written index file, e.g. "wiki"
	Write      bool
}

// IndexResult contains the generated index of one wiki
type IndexResult struct {
	Wiki        string
	WikiPath    string
	Entries     []domain.IndexEntry // one per page, in listing order
	Dangling    []domain.IndexEntry // references to names with no page
	Output      string
	WrittenPath string // empty unless the index was written
}

// GenIndexCommand generates the reference index of one wiki folder
type GenIndexCommand struct {
	repo     ports.WikiRepository
	log      *logger.Logger
	WikiPath string
	Options  IndexOptions
}

// NewGenIndexCommand creates a new GenIndexCommand
func NewGenIndexCommand(repo ports.WikiRepository, log *logger.Logger, wikiPath string, opts IndexOptions) *GenIndexCommand {
	return &GenIndexCommand{
		repo:     repo,
		log:      logger.OrDiscard(log),
		WikiPath: wikiPath,
		Options:  opts,
	}
}

// Validate checks the command arguments before any file is read
func (c *GenIndexCommand) Validate() error {
	if err := application.ValidateRequired("wikiPath", c.WikiPath); err != nil {
		return err
	}
	return c.Options.validate()
}

func (o IndexOptions) validate() error {
	if err := application.ValidateOutputType("outputType", o.OutputType); err != nil {
		return err
	}
	if o.Write {
		if err := application.ValidateExtension("extension", o.Extension); err != nil {
			return err
		}
	}
	return nil
}

// Execute scans the wiki, renders the index and optionally writes index.<ext>
func (c *GenIndexCommand) Execute(ctx context.Context) (*IndexResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return generateIndex(ctx, c.repo, c.log, c.WikiPath, c.Options)
}

func generateIndex(ctx context.Context, repo ports.WikiRepository, log *logger.Logger, wikiPath string, opts IndexOptions) (*IndexResult, error) {
	scan, err := scanWiki(ctx, repo, log, wikiPath)
	if err != nil {
		return nil, err
	}

	result := &IndexResult{
		Wiki:     scan.Name,
		WikiPath: scan.Path,
		Entries:  scan.entries(),
		Dangling: scan.dangling(),
	}
	for _, d := range result.Dangling {
		log.DanglingReference(scan.Name, d.Name, d.Count)
	}

	result.Output, err = domain.Render(result.Entries, opts.OutputType)
	if err != nil {
		return nil, err
	}

	if opts.Write {
		path, err := repo.WriteFile(scan.Path, domain.IndexFileName(opts.Extension), result.Output)
		if err != nil {
			return nil, fmt.Errorf("failed to write index: %w", err)
		}
		result.WrittenPath = path
		log.IndexWritten(path, len(result.Entries))
	}

	return result, nil
}

// BulkIndexResult contains the indexes of every wiki under a root
type BulkIndexResult struct {
	Results []*IndexResult
}

// BulkGenIndexCommand generates an index for every wiki folder under a root
type BulkGenIndexCommand struct {
	repo     ports.WikiRepository
	log      *logger.Logger
	RootPath string
	Options  IndexOptions
}

// NewBulkGenIndexCommand creates a new BulkGenIndexCommand
func NewBulkGenIndexCommand(repo ports.WikiRepository, log *logger.Logger, rootPath string, opts IndexOptions) *BulkGenIndexCommand {
	return &BulkGenIndexCommand{
		repo:     repo,
		log:      logger.OrDiscard(log),
		RootPath: rootPath,
		Options:  opts,
	}
}

// Validate checks the command arguments before any file is read
func (c *BulkGenIndexCommand) Validate() error {
	if err := application.ValidateRequired("rootPath", c.RootPath); err != nil {
		return err
	}
	return c.Options.validate()
}

// Execute runs the single-wiki procedure on each subdirectory, in name order.
// The first failing wiki aborts the run.
func (c *BulkGenIndexCommand) Execute(ctx context.Context) (*BulkIndexResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	wikis, err := c.repo.ListWikis(c.RootPath)
	if err != nil {
		return nil, err
	}

	result := &BulkIndexResult{}
	for _, wiki := range wikis {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r, err := generateIndex(ctx, c.repo, c.log, wiki.Path, c.Options)
		if err != nil {
			c.log.WikiError(wiki.Name, err)
			return nil, &application.WikiError{Wiki: wiki.Name, Err: err}
		}
		result.Results = append(result.Results, r)
	}

	return result, nil
}
