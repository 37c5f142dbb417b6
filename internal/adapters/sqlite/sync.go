package sqlite

import (
	"fmt"
	"os"
	"time"

	"vimwiki/internal/domain"
)

// SyncFull clears the index and rebuilds it from the given pages.
// The rebuild runs in one transaction; a read failure leaves the old index intact.
func (idx *Index) SyncFull(pages []domain.Page, read func(domain.Page) (string, error)) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	tx, err := idx.beginTx()
	if err != nil {
		return nil, err
	}
	defer tx.rollback()

	if err := tx.clear(); err != nil {
		return nil, err
	}

	for _, page := range pages {
		content, err := read(page)
		if err != nil {
			return nil, err
		}

		node := &domain.IndexNode{
			Name:  page.Name,
			Path:  page.FileName,
			Mtime: modTime(page.Path),
		}
		if err := tx.insertNode(node); err != nil {
			return nil, fmt.Errorf("failed to index %s: %w", page.FileName, err)
		}
		stats.NodesAdded++

		for _, edge := range domain.ExtractEdges(page.Name, content) {
			if err := tx.insertEdge(&edge); err != nil {
				return nil, fmt.Errorf("failed to index links of %s: %w", page.FileName, err)
			}
			stats.EdgesAdded++
		}
	}

	if err := tx.setLastSync(time.Now()); err != nil {
		return nil, err
	}
	if err := tx.commit(); err != nil {
		return nil, fmt.Errorf("failed to commit index: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// modTime returns the unix mtime of path, zero when it cannot be read
func modTime(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().Unix()
}
