package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"vimwiki/internal/domain"
	"vimwiki/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.LinkIndex using SQLite
type Index struct {
	db       *sql.DB
	wikiPath string
	dbPath   string
}

// Ensure Index implements LinkIndex
var _ ports.LinkIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given wiki folder
func (idx *Index) Open(wikiPath string) error {
	// Expand ~ in path
	if len(wikiPath) > 0 && wikiPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		wikiPath = filepath.Join(home, wikiPath[1:])
	}
	// One database per folder, however it was spelled
	if abs, err := filepath.Abs(wikiPath); err == nil {
		wikiPath = abs
	}

	idx.wikiPath = wikiPath
	idx.dbPath = databasePath(wikiPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", idx.dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS pages (
			name TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS links (
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			link_text TEXT NOT NULL,
			occurrences INTEGER NOT NULL DEFAULT 1,
			PRIMARY KEY (source, link_text)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_links_target ON links(target);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// DatabasePath returns the database file backing the index
func (idx *Index) DatabasePath() string {
	return idx.dbPath
}

// databasePath returns the path for the SQLite database
func databasePath(wikiPath string) string {
	return filepath.Join(xdg.DataHome, "vimwiki", hashWikiPath(wikiPath)+".db")
}

// hashWikiPath returns a short hash of the wiki path
func hashWikiPath(wikiPath string) string {
	h := sha256.Sum256([]byte(wikiPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta records the schema version and the wiki path hash
func (idx *Index) updateMeta() error {
	meta := map[string]string{
		"schema_version": schemaVersion,
		"wiki_path":      idx.wikiPath,
		"wiki_path_hash": hashWikiPath(idx.wikiPath),
	}
	for key, value := range meta {
		if _, err := idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value); err != nil {
			return err
		}
	}
	return nil
}

// GetNode retrieves a page by name, nil when it is not indexed
func (idx *Index) GetNode(name string) (*domain.IndexNode, error) {
	var node domain.IndexNode

	err := idx.db.QueryRow(`
		SELECT name, path, mtime FROM pages WHERE name = ?
	`, name).Scan(&node.Name, &node.Path, &node.Mtime)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &node, nil
}

// FindBacklinks returns the pages linking to target, one row per source page,
// sorted by source name
func (idx *Index) FindBacklinks(target string) ([]domain.Backlink, error) {
	rows, err := idx.db.Query(`
		SELECT source, MIN(link_text), SUM(occurrences)
		FROM links WHERE target = ?
		GROUP BY source
		ORDER BY source
	`, target)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var backlinks []domain.Backlink
	for rows.Next() {
		var b domain.Backlink
		if err := rows.Scan(&b.Source, &b.LinkText, &b.Count); err != nil {
			return nil, err
		}
		backlinks = append(backlinks, b)
	}

	return backlinks, rows.Err()
}

// FindLinksFromPage returns the distinct link tokens of a source page
func (idx *Index) FindLinksFromPage(source string) ([]domain.Edge, error) {
	rows, err := idx.db.Query(`
		SELECT source, target, link_text
		FROM links WHERE source = ?
		ORDER BY link_text
	`, source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []domain.Edge
	for rows.Next() {
		var e domain.Edge
		if err := rows.Scan(&e.Source, &e.Target, &e.LinkText); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, rows.Err()
}

// FindDangling returns referenced names that have no page, sorted by name
func (idx *Index) FindDangling() ([]domain.IndexEntry, error) {
	rows, err := idx.db.Query(`
		SELECT target, SUM(occurrences)
		FROM links
		WHERE target NOT IN (SELECT name FROM pages)
		GROUP BY target
		ORDER BY target
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.IndexEntry
	for rows.Next() {
		var e domain.IndexEntry
		if err := rows.Scan(&e.Name, &e.Count); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
