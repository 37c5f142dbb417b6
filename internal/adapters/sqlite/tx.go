package sqlite

import (
	"database/sql"
	"time"

	"vimwiki/internal/domain"
)

// indexTx groups the writes of one rebuild
type indexTx struct {
	tx   *sql.Tx
	done bool
}

// beginTx starts a new transaction
func (idx *Index) beginTx() (*indexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

// clear removes every page and link
func (t *indexTx) clear() error {
	if _, err := t.tx.Exec(`DELETE FROM links`); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM pages`)
	return err
}

// insertNode inserts or replaces a page
func (t *indexTx) insertNode(node *domain.IndexNode) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO pages (name, path, mtime)
		VALUES (?, ?, ?)
	`, node.Name, node.Path, node.Mtime)
	return err
}

// insertEdge records one link occurrence; repeated tokens bump the count
func (t *indexTx) insertEdge(edge *domain.Edge) error {
	_, err := t.tx.Exec(`
		INSERT INTO links (source, target, link_text, occurrences)
		VALUES (?, ?, ?, 1)
		ON CONFLICT (source, link_text) DO UPDATE SET occurrences = occurrences + 1
	`, edge.Source, edge.Target, edge.LinkText)
	return err
}

// setLastSync records the time of the rebuild
func (t *indexTx) setLastSync(at time.Time) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		at.Unix())
	return err
}

// commit commits the transaction
func (t *indexTx) commit() error {
	t.done = true
	return t.tx.Commit()
}

// rollback aborts the transaction unless it was committed
func (t *indexTx) rollback() {
	if !t.done {
		t.tx.Rollback()
	}
}
