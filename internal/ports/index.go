package ports

import "vimwiki/internal/domain"

// LinkIndex provides cached access to the link graph of one wiki.
// The index is rebuilt in full on every run.
type LinkIndex interface {
	// Lifecycle
	Open(wikiPath string) error
	Close() error

	// Sync operations
	SyncFull(pages []domain.Page, read func(domain.Page) (string, error)) (*domain.SyncStats, error)

	// Node queries
	GetNode(name string) (*domain.IndexNode, error)

	// Edge queries (link graph)
	FindBacklinks(target string) ([]domain.Backlink, error)
	FindLinksFromPage(source string) ([]domain.Edge, error)
	FindDangling() ([]domain.IndexEntry, error)
}
