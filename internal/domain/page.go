package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// IndexPageName is the reserved page name of the generated index
const IndexPageName = "index"

// Page represents a single wiki page on disk
type Page struct {
	Name     string // File name without extension, e.g. "linux"
	FileName string // File name as listed, e.g. "linux.wiki"
	Path     string // Full file path
}

// Wiki represents a wiki folder: a flat directory of pages
type Wiki struct {
	Name string // Directory base name
	Path string
}

// PageName returns the page name for a file name (extension stripped)
func PageName(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsIndexFile reports whether fileName is the reserved index page (any extension)
func IsIndexFile(fileName string) bool {
	return PageName(fileName) == IndexPageName
}

// IndexFileName returns the file name of the generated index for an extension
func IndexFileName(extension string) string {
	return IndexPageName + "." + strings.TrimPrefix(extension, ".")
}

// SortPages sorts pages by file name in ascending order
func SortPages(pages []Page) {
	slices.SortFunc(pages, func(a, b Page) int {
		return strings.Compare(a.FileName, b.FileName)
	})
}

// SortWikis sorts wikis by name in ascending order
func SortWikis(wikis []Wiki) {
	slices.SortFunc(wikis, func(a, b Wiki) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// PageNames returns the names of the given pages, in order
func PageNames(pages []Page) []string {
	names := make([]string, 0, len(pages))
	for _, p := range pages {
		names = append(names, p.Name)
	}
	return names
}
