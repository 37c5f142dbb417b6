package domain

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"testing"
)

func TestParseOutputType(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputType
		wantErr bool
	}{
		{in: "wiki", want: OutputWiki},
		{in: "html", want: OutputHTML},
		{in: " HTML ", want: OutputHTML},
		{in: "markdown", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputType(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputType(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderWiki_OrdersByCountDescending(t *testing.T) {
	entries := []IndexEntry{
		{Name: "c", Count: 0},
		{Name: "a", Count: 2},
		{Name: "b", Count: 1},
	}

	got := RenderWiki(entries)
	want := "[[a]] [[b]] [[c]] \n"
	if got != want {
		t.Errorf("RenderWiki = %q, want %q", got, want)
	}
}

func TestRenderWiki_StableTies(t *testing.T) {
	entries := []IndexEntry{
		{Name: "first", Count: 1},
		{Name: "second", Count: 1},
		{Name: "top", Count: 5},
		{Name: "third", Count: 1},
	}

	got := ExtractLinks(RenderWiki(entries))
	want := []string{"top", "first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestRenderWiki_Empty(t *testing.T) {
	if got := RenderWiki(nil); got != "" {
		t.Errorf("RenderWiki(nil) = %q, want empty", got)
	}
}

func TestRenderWiki_SingleEntry(t *testing.T) {
	if got := RenderWiki([]IndexEntry{{Name: "only", Count: 3}}); got != "[[only]] \n" {
		t.Errorf("RenderWiki = %q", got)
	}
}

func TestRenderWiki_LinePacking(t *testing.T) {
	var entries []IndexEntry
	for i := 0; i < 60; i++ {
		entries = append(entries, IndexEntry{Name: fmt.Sprintf("page%d", i), Count: 60 - i})
	}
	// A name long enough for its token to fill a line on its own.
	long := strings.Repeat("x", MaxLineWidth)
	entries = append(entries, IndexEntry{Name: long, Count: 30})

	out := RenderWiki(entries)
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("output must end with a newline")
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected several lines, got %d", len(lines))
	}
	foundLong := false
	for _, line := range lines {
		tokens := linkPattern.FindAllString(line, -1)
		if len(line) > MaxLineWidth && len(tokens) != 1 {
			t.Errorf("line of %d chars holds %d tokens: %q", len(line), len(tokens), line)
		}
		if strings.Contains(line, long) {
			foundLong = true
			if line != LinkToken(long) {
				t.Errorf("long token must be alone on its line, got %q", line)
			}
		}
	}
	if !foundLong {
		t.Error("long token missing from output")
	}
}

func TestRenderWiki_NextLineStartsWhenWidthReached(t *testing.T) {
	// Each token "[[nnnnnnnnnnnnnn]]" is 18 chars; with its space 19.
	// Four fit (76 chars); appending a fifth would reach 94.
	var entries []IndexEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, IndexEntry{Name: strings.Repeat(strconv.Itoa(i), 14), Count: 0})
	}
	lines := strings.Split(strings.TrimSuffix(RenderWiki(entries), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if len(linkPattern.FindAllString(lines[0], -1)) != 4 {
		t.Errorf("expected 4 tokens on the first line, got %q", lines[0])
	}
}

func TestRenderWiki_RoundTripRecoversNames(t *testing.T) {
	entries := []IndexEntry{
		{Name: "alpha", Count: 3},
		{Name: "beta", Count: 0},
		{Name: "gamma", Count: 7},
		{Name: "delta", Count: 3},
	}

	got := ExtractLinks(RenderWiki(entries))
	sort.Strings(got)
	want := []string{"alpha", "beta", "delta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

var fontSizePattern = regexp.MustCompile(`^<a href="(\w+)\.html" style="font-size:(\d+)px">(\w+)</a>$`)

func TestRenderHTML_FontSizesMonotonicAndBounded(t *testing.T) {
	entries := []IndexEntry{
		{Name: "mid", Count: 5},
		{Name: "low", Count: 1},
		{Name: "high", Count: 9},
		{Name: "low2", Count: 1},
	}

	lines := strings.Split(RenderHTML(entries), "\n")
	if len(lines) != len(entries) {
		t.Fatalf("expected %d anchors, got %d", len(entries), len(lines))
	}

	counts := map[string]int{"mid": 5, "low": 1, "high": 9, "low2": 1}
	prevCount, prevSize := -1, -1
	for _, line := range lines {
		m := fontSizePattern.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("unexpected anchor format: %q", line)
		}
		if m[1] != m[3] {
			t.Errorf("href %s and text %s differ", m[1], m[3])
		}
		size, _ := strconv.Atoi(m[2])
		if size < MinFontSize || size > MaxFontSize {
			t.Errorf("font size %d out of range", size)
		}
		count := counts[m[1]]
		if count < prevCount {
			t.Errorf("anchors not ascending by count")
		}
		if size < prevSize {
			t.Errorf("font size decreased from %d to %d", prevSize, size)
		}
		prevCount, prevSize = count, size
	}

	if !strings.HasPrefix(lines[0], `<a href="low.html" style="font-size:12px">`) {
		t.Errorf("lowest entry should get the minimum size first, got %q", lines[0])
	}
	if lines[len(lines)-1] != `<a href="high.html" style="font-size:70px">high</a>` {
		t.Errorf("highest entry should get the maximum size, got %q", lines[len(lines)-1])
	}
}

func TestRenderHTML_DegenerateRange(t *testing.T) {
	tests := []struct {
		name    string
		entries []IndexEntry
	}{
		{name: "single entry", entries: []IndexEntry{{Name: "a", Count: 4}}},
		{name: "all equal", entries: []IndexEntry{{Name: "a", Count: 2}, {Name: "b", Count: 2}}},
		{name: "all zero", entries: []IndexEntry{{Name: "a"}, {Name: "b"}, {Name: "c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderHTML(tt.entries)
			for _, line := range strings.Split(out, "\n") {
				if !strings.Contains(line, "font-size:12px") {
					t.Errorf("expected fallback size 12px, got %q", line)
				}
			}
		})
	}
}

func TestRenderHTML_Empty(t *testing.T) {
	if got := RenderHTML(nil); got != "" {
		t.Errorf("RenderHTML(nil) = %q, want empty", got)
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		count, min, max int
		want            int
	}{
		{count: 0, min: 0, max: 2, want: 12},
		{count: 1, min: 0, max: 2, want: 41},
		{count: 2, min: 0, max: 2, want: 70},
		{count: 1, min: 0, max: 4, want: 27}, // 26.5 rounds away from zero
		{count: 3, min: 3, max: 3, want: 12},
	}
	for _, tt := range tests {
		if got := FontSize(tt.count, tt.min, tt.max); got != tt.want {
			t.Errorf("FontSize(%d, %d, %d) = %d, want %d", tt.count, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestRender_Dispatch(t *testing.T) {
	entries := []IndexEntry{{Name: "a", Count: 1}}

	wiki, err := Render(entries, OutputWiki)
	if err != nil || wiki != RenderWiki(entries) {
		t.Errorf("Render(wiki) = %q, %v", wiki, err)
	}
	html, err := Render(entries, OutputHTML)
	if err != nil || html != RenderHTML(entries) {
		t.Errorf("Render(html) = %q, %v", html, err)
	}
	if _, err := Render(entries, OutputType("pdf")); err == nil {
		t.Error("expected error for unknown output type")
	}
}
