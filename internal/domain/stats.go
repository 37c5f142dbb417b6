package domain

import (
	"fmt"
	"slices"
	"strings"
)

// WikiStat holds the page count of one wiki folder
type WikiStat struct {
	Name  string
	Pages int
}

// SortStats sorts stats by page count, highest first, then by name
func SortStats(stats []WikiStat) {
	slices.SortStableFunc(stats, func(a, b WikiStat) int {
		if a.Pages != b.Pages {
			return b.Pages - a.Pages
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// FormatStats renders one "name count" line per wiki, names right-aligned
// to the longest name. Stats are printed in the given order.
func FormatStats(stats []WikiStat) string {
	width := 0
	for _, s := range stats {
		width = max(width, len(s.Name))
	}

	var b strings.Builder
	for _, s := range stats {
		fmt.Fprintf(&b, "%*s %d\n", width, s.Name, s.Pages)
	}
	return b.String()
}
