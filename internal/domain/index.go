package domain

import "time"

// IndexNode represents a cached wiki page
type IndexNode struct {
	Name  string // Page name (primary key)
	Path  string // File name relative to the wiki folder
	Mtime int64  // Unix timestamp
}

// Edge represents one link token occurrence between two pages
type Edge struct {
	Source   string // Page containing the link
	Target   string // Referenced page name
	LinkText string // Original [[link]] text
}

// Backlink is a page linking to a target, with the number of links it holds
type Backlink struct {
	Source   string
	LinkText string
	Count    int
}

// SyncStats holds statistics from an index rebuild
type SyncStats struct {
	NodesAdded int
	EdgesAdded int
	Duration   time.Duration
}
