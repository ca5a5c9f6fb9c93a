package db

import (
	"fmt"
)

// SourceStore is the configuration-store contract for the persisted
// source-URL list: load at startup, save on change. Injected into the
// commands and the HTTP server rather than accessed as a singleton.
type SourceStore interface {
	LoadSources() ([]string, error)
	SaveSources(urls []string) error
}

// LoadSources returns the persisted source URLs in their saved order.
// A fresh database yields an empty list, not an error.
func (db *DB) LoadSources() ([]string, error) {
	rows, err := db.Query("SELECT url FROM sources ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to load sources: %w", err)
	}
	defer rows.Close()

	urls := []string{}
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan source row: %w", err)
		}
		urls = append(urls, url)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sources: %w", err)
	}
	return urls, nil
}

// SaveSources replaces the persisted list wholesale, preserving the given
// order. Duplicates keep their first position.
func (db *DB) SaveSources(urls []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sources"); err != nil {
		return fmt.Errorf("failed to clear sources: %w", err)
	}

	seen := make(map[string]bool, len(urls))
	position := 0
	for _, url := range urls {
		if seen[url] {
			continue
		}
		seen[url] = true
		if _, err := tx.Exec(
			"INSERT INTO sources (position, url) VALUES (?, ?)", position, url,
		); err != nil {
			return fmt.Errorf("failed to insert source %s: %w", url, err)
		}
		position++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sources: %w", err)
	}
	return nil
}

// AddSource appends a URL to the persisted list if not already present.
// Returns true when the list changed.
func (db *DB) AddSource(url string) (bool, error) {
	urls, err := db.LoadSources()
	if err != nil {
		return false, err
	}
	for _, existing := range urls {
		if existing == url {
			return false, nil
		}
	}
	return true, db.SaveSources(append(urls, url))
}

// RemoveSource deletes a URL from the persisted list. Returns true when
// the list changed.
func (db *DB) RemoveSource(url string) (bool, error) {
	urls, err := db.LoadSources()
	if err != nil {
		return false, err
	}

	kept := urls[:0]
	removed := false
	for _, existing := range urls {
		if existing == url {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		return false, nil
	}
	return true, db.SaveSources(kept)
}
