package ports

import "vimwiki/internal/domain"

// WikiRepository defines the interface for wiki storage operations
type WikiRepository interface {
	// Page operations
	ListPages(wikiPath string) ([]domain.Page, error)
	ReadPage(page domain.Page) (string, error)

	// WriteFile writes a generated file (index, converted page) inside a wiki
	WriteFile(wikiPath, fileName, content string) (string, error)

	// Wiki operations
	ListWikis(rootPath string) ([]domain.Wiki, error)

	// Path resolution
	ResolvePath(path string) string
}
