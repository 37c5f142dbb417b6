package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"vimwiki/internal/application"
	"vimwiki/internal/domain"
)

// mockRepository is an in-memory WikiRepository: wiki path -> file name -> content
type mockRepository struct {
	wikis   map[string]map[string]string
	written map[string]string // full path -> content
	readErr map[string]error  // file name -> error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		wikis:   make(map[string]map[string]string),
		written: make(map[string]string),
		readErr: make(map[string]error),
	}
}

func (m *mockRepository) addWiki(path string, files map[string]string) {
	m.wikis[path] = files
}

func (m *mockRepository) ListPages(wikiPath string) ([]domain.Page, error) {
	files, ok := m.wikis[wikiPath]
	if !ok {
		return nil, fmt.Errorf("%s: %w", wikiPath, application.ErrNotFound)
	}

	var pages []domain.Page
	for fileName := range files {
		if domain.IsIndexFile(fileName) {
			continue
		}
		pages = append(pages, domain.Page{
			Name:     domain.PageName(fileName),
			FileName: fileName,
			Path:     filepath.Join(wikiPath, fileName),
		})
	}
	domain.SortPages(pages)
	return pages, nil
}

func (m *mockRepository) ReadPage(page domain.Page) (string, error) {
	if err, ok := m.readErr[page.FileName]; ok {
		return "", err
	}
	files := m.wikis[filepath.Dir(page.Path)]
	content, ok := files[page.FileName]
	if !ok {
		return "", fmt.Errorf("%s: %w", page.FileName, application.ErrNotFound)
	}
	return content, nil
}

func (m *mockRepository) WriteFile(wikiPath, fileName, content string) (string, error) {
	path := filepath.Join(wikiPath, fileName)
	m.written[path] = content
	return path, nil
}

func (m *mockRepository) ListWikis(rootPath string) ([]domain.Wiki, error) {
	var wikis []domain.Wiki
	for path := range m.wikis {
		if filepath.Dir(path) == rootPath {
			wikis = append(wikis, domain.Wiki{Name: filepath.Base(path), Path: path})
		}
	}
	domain.SortWikis(wikis)
	return wikis, nil
}

func (m *mockRepository) ResolvePath(path string) string {
	return filepath.Clean(path)
}

// mockLinkIndex records pages handed to SyncFull and answers from them
type mockLinkIndex struct {
	opened string
	closed bool
	nodes  map[string]bool
	edges  []domain.Edge
}

func (m *mockLinkIndex) Open(wikiPath string) error {
	m.opened = wikiPath
	return nil
}

func (m *mockLinkIndex) Close() error {
	m.closed = true
	return nil
}

func (m *mockLinkIndex) SyncFull(pages []domain.Page, read func(domain.Page) (string, error)) (*domain.SyncStats, error) {
	m.nodes = make(map[string]bool)
	m.edges = nil
	for _, p := range pages {
		content, err := read(p)
		if err != nil {
			return nil, err
		}
		m.nodes[p.Name] = true
		m.edges = append(m.edges, domain.ExtractEdges(p.Name, content)...)
	}
	return &domain.SyncStats{NodesAdded: len(pages), EdgesAdded: len(m.edges)}, nil
}

func (m *mockLinkIndex) GetNode(name string) (*domain.IndexNode, error) {
	if !m.nodes[name] {
		return nil, nil
	}
	return &domain.IndexNode{Name: name}, nil
}

func (m *mockLinkIndex) FindBacklinks(target string) ([]domain.Backlink, error) {
	bySource := make(map[string]*domain.Backlink)
	for _, e := range m.edges {
		if e.Target != target {
			continue
		}
		if b, ok := bySource[e.Source]; ok {
			b.Count++
			continue
		}
		bySource[e.Source] = &domain.Backlink{Source: e.Source, LinkText: e.LinkText, Count: 1}
	}

	var backlinks []domain.Backlink
	for _, b := range bySource {
		backlinks = append(backlinks, *b)
	}
	sort.Slice(backlinks, func(i, j int) bool {
		return backlinks[i].Source < backlinks[j].Source
	})
	return backlinks, nil
}

func (m *mockLinkIndex) FindLinksFromPage(source string) ([]domain.Edge, error) {
	seen := make(map[string]bool)
	var edges []domain.Edge
	for _, e := range m.edges {
		if e.Source == source && !seen[e.LinkText] {
			seen[e.LinkText] = true
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].LinkText < edges[j].LinkText
	})
	return edges, nil
}

func (m *mockLinkIndex) FindDangling() ([]domain.IndexEntry, error) {
	counts := make(map[string]int)
	for _, e := range m.edges {
		if !m.nodes[e.Target] {
			counts[e.Target]++
		}
	}

	var entries []domain.IndexEntry
	for name, count := range counts {
		entries = append(entries, domain.IndexEntry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// contains reports whether substr is within s
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
