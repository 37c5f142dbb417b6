package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"vimwiki/internal/application"
	"vimwiki/internal/domain"
	"vimwiki/internal/ports"
)

// Repository implements ports.WikiRepository using the filesystem
type Repository struct {
	rootPath string
}

// Ensure Repository implements WikiRepository
var _ ports.WikiRepository = (*Repository)(nil)

// NewRepository creates a new filesystem repository.
// Relative paths passed to ResolvePath are joined to rootPath when it is set.
func NewRepository(rootPath string) *Repository {
	if rootPath != "" {
		rootPath = expandHome(rootPath)
	}
	return &Repository{rootPath: rootPath}
}

// ResolvePath expands a leading ~ and anchors relative paths at the root
func (r *Repository) ResolvePath(path string) string {
	path = expandHome(path)
	if r.rootPath != "" && !filepath.IsAbs(path) {
		path = filepath.Join(r.rootPath, path)
	}
	return filepath.Clean(path)
}

// ListPages returns the pages of a wiki folder, sorted by file name.
// Regular files and symlinks to regular files count as pages; index.* is excluded.
func (r *Repository) ListPages(wikiPath string) ([]domain.Page, error) {
	wikiPath = r.ResolvePath(wikiPath)

	entries, err := readDir(wikiPath)
	if err != nil {
		return nil, err
	}

	var pages []domain.Page
	for _, entry := range entries {
		fullPath := filepath.Join(wikiPath, entry.Name())

		// Stat follows symlinks
		info, err := os.Stat(fullPath)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if domain.IsIndexFile(entry.Name()) {
			continue
		}

		pages = append(pages, domain.Page{
			Name:     domain.PageName(entry.Name()),
			FileName: entry.Name(),
			Path:     fullPath,
		})
	}

	domain.SortPages(pages)
	return pages, nil
}

// ReadPage returns the full text of a page
func (r *Repository) ReadPage(page domain.Page) (string, error) {
	content, err := os.ReadFile(page.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", page.FileName, err)
	}
	return string(content), nil
}

// WriteFile writes content to fileName inside the wiki folder and returns its path
func (r *Repository) WriteFile(wikiPath, fileName, content string) (string, error) {
	wikiPath = r.ResolvePath(wikiPath)
	if strings.ContainsAny(fileName, `/\`) {
		return "", fmt.Errorf("invalid file name: %q", fileName)
	}

	path := filepath.Join(wikiPath, fileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ListWikis returns the immediate subdirectories of rootPath, sorted by name.
// Symlinked directories are followed; plain files are skipped.
func (r *Repository) ListWikis(rootPath string) ([]domain.Wiki, error) {
	rootPath = r.ResolvePath(rootPath)

	entries, err := readDir(rootPath)
	if err != nil {
		return nil, err
	}

	var wikis []domain.Wiki
	for _, entry := range entries {
		fullPath := filepath.Join(rootPath, entry.Name())

		info, err := os.Stat(fullPath)
		if err != nil || !info.IsDir() {
			continue
		}

		wikis = append(wikis, domain.Wiki{
			Name: entry.Name(),
			Path: fullPath,
		})
	}

	domain.SortWikis(wikis)
	return wikis, nil
}

// readDir lists a directory, mapping missing paths and plain files to sentinels
func readDir(path string) ([]os.DirEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, application.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, application.ErrNotADirectory)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entries, nil
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
