package commands

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"vimwiki/internal/application"
	"vimwiki/internal/domain"
)

func TestGenIndexCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		wikiPath string
		opts     IndexOptions
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid wiki output",
			wikiPath: "/wiki",
			opts:     IndexOptions{OutputType: domain.OutputWiki},
		},
		{
			name:     "valid html written",
			wikiPath: "/wiki",
			opts:     IndexOptions{OutputType: domain.OutputHTML, Extension: "html", Write: true},
		},
		{
			name:     "empty wiki path",
			wikiPath: "  ",
			opts:     IndexOptions{OutputType: domain.OutputWiki},
			wantErr:  true,
			errMsg:   "wiki folder is required",
		},
		{
			name:     "unknown output type",
			wikiPath: "/wiki",
			opts:     IndexOptions{OutputType: "pdf"},
			wantErr:  true,
			errMsg:   "expected wiki or html",
		},
		{
			name:     "write without extension",
			wikiPath: "/wiki",
			opts:     IndexOptions{OutputType: domain.OutputWiki, Write: true},
			wantErr:  true,
			errMsg:   "extension is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewGenIndexCommand(nil, nil, tt.wikiPath, tt.opts)
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				var vErr *application.ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGenIndexCommand_Execute(t *testing.T) {
	repo := newMockRepository()
	repo.addWiki("/wiki", map[string]string{
		"c.wiki":     "nothing here",
		"a.wiki":     "[[b]] [[ghost]]",
		"b.wiki":     "[[a]] [[a|alpha]]",
		"index.wiki": "[[c]] [[c]] [[c]]",
	})

	cmd := NewGenIndexCommand(repo, nil, "/wiki", IndexOptions{OutputType: domain.OutputWiki})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	wantEntries := []domain.IndexEntry{{Name: "a", Count: 2}, {Name: "b", Count: 1}, {Name: "c", Count: 0}}
	if !reflect.DeepEqual(result.Entries, wantEntries) {
		t.Errorf("Entries = %v, want %v", result.Entries, wantEntries)
	}
	if result.Output != "[[a]] [[b]] [[c]] \n" {
		t.Errorf("Output = %q", result.Output)
	}
	wantDangling := []domain.IndexEntry{{Name: "ghost", Count: 1}}
	if !reflect.DeepEqual(result.Dangling, wantDangling) {
		t.Errorf("Dangling = %v, want %v", result.Dangling, wantDangling)
	}
	if result.Wiki != "wiki" {
		t.Errorf("Wiki = %q", result.Wiki)
	}
	if result.WrittenPath != "" || len(repo.written) != 0 {
		t.Error("nothing should be written without Write")
	}
}

func TestGenIndexCommand_NoReferences(t *testing.T) {
	repo := newMockRepository()
	repo.addWiki("/wiki", map[string]string{
		"one.wiki":   "plain",
		"two.wiki":   "text",
		"three.wiki": "only",
	})

	result, err := NewGenIndexCommand(repo, nil, "/wiki", IndexOptions{OutputType: domain.OutputHTML}).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %v", result.Entries)
	}
	for _, e := range result.Entries {
		if e.Count != 0 {
			t.Errorf("expected zero count for %s, got %d", e.Name, e.Count)
		}
	}
	for _, line := range strings.Split(result.Output, "\n") {
		if !contains(line, "font-size:12px") {
			t.Errorf("equal counts should render at 12px: %q", line)
		}
	}
}

func TestGenIndexCommand_Write(t *testing.T) {
	repo := newMockRepository()
	repo.addWiki("/wiki", map[string]string{"a.wiki": "[[a]]"})

	opts := IndexOptions{OutputType: domain.OutputHTML, Extension: ".html", Write: true}
	result, err := NewGenIndexCommand(repo, nil, "/wiki", opts).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.WrittenPath != "/wiki/index.html" {
		t.Errorf("WrittenPath = %q", result.WrittenPath)
	}
	if repo.written["/wiki/index.html"] != result.Output {
		t.Errorf("written content differs from output: %q", repo.written["/wiki/index.html"])
	}
}

func TestGenIndexCommand_ReadErrorNamesPage(t *testing.T) {
	repo := newMockRepository()
	repo.addWiki("/wiki", map[string]string{"a.wiki": "", "b.wiki": ""})
	repo.readErr["b.wiki"] = errors.New("permission denied")

	_, err := NewGenIndexCommand(repo, nil, "/wiki", IndexOptions{OutputType: domain.OutputWiki}).
		Execute(context.Background())

	var pErr *application.PageError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PageError, got %v", err)
	}
	if pErr.Page != "b.wiki" {
		t.Errorf("PageError.Page = %q", pErr.Page)
	}
}

func TestGenIndexCommand_MissingWiki(t *testing.T) {
	repo := newMockRepository()

	_, err := NewGenIndexCommand(repo, nil, "/nope", IndexOptions{OutputType: domain.OutputWiki}).
		Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGenIndexCommand_Cancelled(t *testing.T) {
	repo := newMockRepository()
	repo.addWiki("/wiki", map[string]string{"a.wiki": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenIndexCommand(repo, nil, "/wiki", IndexOptions{OutputType: domain.OutputWiki}).Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestBulkGenIndexCommand_Execute(t *testing.T) {
	repo := newMockRepository()
	repo.addWiki("/root/work", map[string]string{"a.wiki": "[[b]]", "b.wiki": ""})
	repo.addWiki("/root/personal", map[string]string{"x.wiki": ""})

	opts := IndexOptions{OutputType: domain.OutputWiki, Extension: "wiki", Write: true}
	result, err := NewBulkGenIndexCommand(repo, nil, "/root", opts).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(result.Results))
	}
	if result.Results[0].Wiki != "personal" || result.Results[1].Wiki != "work" {
		t.Errorf("wikis not processed in name order: %s, %s", result.Results[0].Wiki, result.Results[1].Wiki)
	}
	if repo.written["/root/work/index.wiki"] != "[[b]] [[a]] \n" {
		t.Errorf("unexpected work index: %q", repo.written["/root/work/index.wiki"])
	}
	if _, ok := repo.written["/root/personal/index.wiki"]; !ok {
		t.Error("personal index not written")
	}
}

func TestBulkGenIndexCommand_FirstFailureAborts(t *testing.T) {
	repo := newMockRepository()
	repo.addWiki("/root/alpha", map[string]string{"bad.wiki": ""})
	repo.addWiki("/root/beta", map[string]string{"ok.wiki": ""})
	repo.readErr["bad.wiki"] = errors.New("boom")

	opts := IndexOptions{OutputType: domain.OutputWiki, Extension: "wiki", Write: true}
	_, err := NewBulkGenIndexCommand(repo, nil, "/root", opts).Execute(context.Background())

	var wErr *application.WikiError
	if !errors.As(err, &wErr) {
		t.Fatalf("expected WikiError, got %v", err)
	}
	if wErr.Wiki != "alpha" {
		t.Errorf("WikiError.Wiki = %q", wErr.Wiki)
	}
	if len(repo.written) != 0 {
		t.Errorf("later wikis should not be processed: %v", repo.written)
	}
}
