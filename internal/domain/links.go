package domain

import (
	"regexp"
	"sort"
)

// linkPattern matches [[name]] and [[name|alias]] link tokens.
// Names are ASCII alphanumeric; aliases are word characters.
var linkPattern = regexp.MustCompile(`\[\[([a-zA-Z0-9]+)(?:\|\w+)?\]\]`)

// namePattern validates a bare page name as accepted inside a link token
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// IsLinkName reports whether name can appear inside a link token
func IsLinkName(name string) bool {
	return namePattern.MatchString(name)
}

// LinkToken renders the link token for a page name
func LinkToken(name string) string {
	return "[[" + name + "]]"
}

// ExtractLinks returns the page names referenced by every link token in content,
// in order of appearance. Repeated references appear repeatedly.
func ExtractLinks(content string) []string {
	matches := linkPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// ExtractEdges returns one edge per link token in content, attributed to source
func ExtractEdges(source, content string) []Edge {
	matches := linkPattern.FindAllStringSubmatch(content, -1)
	edges := make([]Edge, 0, len(matches))
	for _, m := range matches {
		edges = append(edges, Edge{Source: source, Target: m[1], LinkText: m[0]})
	}
	return edges
}

// ReferenceTable maps a page name to the number of times it was referenced.
// A missing name means zero references.
type ReferenceTable map[string]int

// CountReferences adds every link token in content to table
func CountReferences(table ReferenceTable, content string) {
	for _, name := range ExtractLinks(content) {
		table[name]++
	}
}

// Count returns the reference count for name, zero when absent
func (t ReferenceTable) Count(name string) int {
	return t[name]
}

// Total returns the sum of all counts
func (t ReferenceTable) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// IndexEntry is one page of the generated index with its inbound reference count
type IndexEntry struct {
	Name  string
	Count int
}

// BuildEntries pairs every page name with its reference count, keeping the
// order of names. Pages that are never referenced get a zero count.
func BuildEntries(names []string, table ReferenceTable) []IndexEntry {
	entries := make([]IndexEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, IndexEntry{Name: name, Count: table.Count(name)})
	}
	return entries
}

// DanglingReferences returns the referenced names that have no page, sorted by name
func DanglingReferences(names []string, table ReferenceTable) []IndexEntry {
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}

	var dangling []IndexEntry
	for name, n := range table {
		if !known[name] {
			dangling = append(dangling, IndexEntry{Name: name, Count: n})
		}
	}
	sort.Slice(dangling, func(i, j int) bool {
		return dangling[i].Name < dangling[j].Name
	})
	return dangling
}
