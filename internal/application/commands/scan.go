package commands

import (
	"context"
	"path/filepath"

	"vimwiki/internal/application"
	"vimwiki/internal/domain"
	"vimwiki/internal/logger"
	"vimwiki/internal/ports"
)

// wikiScan is the result of reading every page of one wiki folder
type wikiScan struct {
	Name   string
	Path   string
	Pages  []domain.Page
	Table  domain.ReferenceTable
	Tokens int
}

// scanWiki lists the pages of wikiPath and counts every link token they contain.
// A page that cannot be read aborts the scan.
func scanWiki(ctx context.Context, repo ports.WikiRepository, log *logger.Logger, wikiPath string) (*wikiScan, error) {
	path := repo.ResolvePath(wikiPath)
	name := filepath.Base(path)

	pages, err := repo.ListPages(path)
	if err != nil {
		return nil, err
	}
	log.PagesDiscovered(name, len(pages))

	table := make(domain.ReferenceTable)
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := repo.ReadPage(page)
		if err != nil {
			return nil, &application.PageError{Page: page.FileName, Err: err}
		}
		domain.CountReferences(table, content)
	}

	scan := &wikiScan{
		Name:   name,
		Path:   path,
		Pages:  pages,
		Table:  table,
		Tokens: table.Total(),
	}
	log.ReferencesCounted(name, scan.Tokens, len(table))
	return scan, nil
}

// entries pairs every discovered page with its reference count
func (s *wikiScan) entries() []domain.IndexEntry {
	return domain.BuildEntries(domain.PageNames(s.Pages), s.Table)
}

// dangling returns the references that name no page
func (s *wikiScan) dangling() []domain.IndexEntry {
	return domain.DanglingReferences(domain.PageNames(s.Pages), s.Table)
}
