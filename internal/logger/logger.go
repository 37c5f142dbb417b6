package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// ParseLevel parses a level name ("debug", "info", ...), defaulting to info
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// OrDiscard returns l, or a discarding logger when l is nil
func OrDiscard(l *Logger) *Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// PagesDiscovered logs the pages found in a wiki
func (l *Logger) PagesDiscovered(wiki string, pages int) {
	l.Debug("pages discovered",
		"wiki", wiki,
		"pages", pages)
}

// ReferencesCounted logs the result of a reference scan
func (l *Logger) ReferencesCounted(wiki string, references, names int) {
	l.Debug("references counted",
		"wiki", wiki,
		"references", references,
		"names", names)
}

// DanglingReference logs a reference to a page that does not exist
func (l *Logger) DanglingReference(wiki, name string, count int) {
	l.Debug("dangling reference",
		"wiki", wiki,
		"name", name,
		"count", count)
}

// IndexWritten logs a generated index written to disk
func (l *Logger) IndexWritten(path string, entries int) {
	l.Info("index written",
		"path", path,
		"entries", entries)
}

// PageConverted logs a page converted to markdown
func (l *Logger) PageConverted(source, dest string) {
	l.Info("page converted",
		"source", source,
		"dest", dest)
}

// PageSkipped logs when a page is skipped
func (l *Logger) PageSkipped(page, reason string) {
	l.Debug("page skipped",
		"page", page,
		"reason", reason)
}

// IndexRebuilt logs a completed link index rebuild
func (l *Logger) IndexRebuilt(wiki string, nodes, edges int, duration time.Duration) {
	l.Debug("link index rebuilt",
		"wiki", wiki,
		"nodes", nodes,
		"edges", edges,
		"duration", duration.Round(time.Millisecond))
}

// WikiError logs an error for a specific wiki
func (l *Logger) WikiError(wiki string, err error) {
	l.Error("wiki error",
		"wiki", wiki,
		"error", err)
}
