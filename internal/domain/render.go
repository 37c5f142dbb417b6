package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// OutputType selects how an index is rendered
type OutputType string

const (
	OutputWiki OutputType = "wiki"
	OutputHTML OutputType = "html"
)

const (
	// MaxLineWidth is the width wiki-mode lines are packed to
	MaxLineWidth = 80

	MinFontSize = 12
	MaxFontSize = 70
)

// ParseOutputType parses an output type name
func ParseOutputType(s string) (OutputType, error) {
	switch OutputType(strings.ToLower(strings.TrimSpace(s))) {
	case OutputWiki:
		return OutputWiki, nil
	case OutputHTML:
		return OutputHTML, nil
	default:
		return "", fmt.Errorf("unknown output type %q (expected wiki or html)", s)
	}
}

// String returns the output type name
func (o OutputType) String() string {
	return string(o)
}

// Render renders entries in the given output type
func Render(entries []IndexEntry, output OutputType) (string, error) {
	switch output {
	case OutputWiki:
		return RenderWiki(entries), nil
	case OutputHTML:
		return RenderHTML(entries), nil
	default:
		return "", fmt.Errorf("unknown output type %q", output)
	}
}

// SortByCountDesc returns a copy of entries sorted by count, highest first.
// Entries with equal counts keep their relative order.
func SortByCountDesc(entries []IndexEntry) []IndexEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b IndexEntry) int {
		return b.Count - a.Count
	})
	return sorted
}

// SortByCountAsc returns a copy of entries sorted by count, lowest first.
// Entries with equal counts keep their relative order.
func SortByCountAsc(entries []IndexEntry) []IndexEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b IndexEntry) int {
		return a.Count - b.Count
	})
	return sorted
}

// RenderWiki renders entries as link tokens, most referenced first, packed
// greedily onto lines of at most MaxLineWidth characters. Every token is
// followed by a single space; a token that alone reaches the width gets its
// own line.
func RenderWiki(entries []IndexEntry) string {
	var out strings.Builder
	line := ""

	for _, e := range SortByCountDesc(entries) {
		token := LinkToken(e.Name)
		if len(token) >= MaxLineWidth {
			if line != "" {
				out.WriteString(line + "\n")
				line = ""
			}
			out.WriteString(token + "\n")
			continue
		}
		if len(line)+len(token) >= MaxLineWidth {
			out.WriteString(line + "\n")
			line = ""
		}
		line += token + " "
	}
	if line != "" {
		out.WriteString(line + "\n")
	}
	return out.String()
}

// FontSize interpolates the font size for count between MinFontSize and
// MaxFontSize over [minCount, maxCount]. A degenerate range yields MinFontSize.
func FontSize(count, minCount, maxCount int) int {
	if maxCount <= minCount {
		return MinFontSize
	}
	span := float64(MaxFontSize - MinFontSize)
	size := float64(MinFontSize) + span*float64(count-minCount)/float64(maxCount-minCount)
	size = math.Max(MinFontSize, math.Min(MaxFontSize, size))
	return int(math.Round(size))
}

// RenderHTML renders entries as anchors sized by reference count, least
// referenced first, one anchor per line.
func RenderHTML(entries []IndexEntry) string {
	if len(entries) == 0 {
		return ""
	}

	sorted := SortByCountAsc(entries)
	minCount := sorted[0].Count
	maxCount := sorted[len(sorted)-1].Count

	anchors := make([]string, 0, len(sorted))
	for _, e := range sorted {
		anchors = append(anchors, fmt.Sprintf(`<a href="%s.html" style="font-size:%dpx">%s</a>`,
			e.Name, FontSize(e.Count, minCount, maxCount), e.Name))
	}
	return strings.Join(anchors, "\n")
}
