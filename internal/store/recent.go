package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/yosefdabbas22/weather-app/internal/geo"
)

// ErrNotFound is returned when the recent-search list has no entries.
var ErrNotFound = errors.New("no recent searches")

// RecentSearch is one persisted entry of the recent-search list.
type RecentSearch struct {
	ID         string       `json:"id"`
	Location   geo.Resolved `json:"location"`
	SearchedAt time.Time    `json:"searchedAt"`
}

// RecentStore persists the recent-search list in SQLite. Repeat searches for
// the same location refresh its timestamp instead of duplicating it, and the
// list is capped at maxEntries, dropping the oldest first.
type RecentStore struct {
	db  *sql.DB
	max int
}

const recentSchema = `
CREATE TABLE IF NOT EXISTS recent_searches (
	id          TEXT PRIMARY KEY,
	loc_key     TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	country     TEXT NOT NULL,
	latitude    REAL NOT NULL,
	longitude   REAL NOT NULL,
	searched_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_recent_searched_at ON recent_searches(searched_at);
`

// OpenRecentStore opens (creating if needed) the recent-search database at
// path. maxEntries <= 0 means unlimited.
func OpenRecentStore(path string, maxEntries int) (*RecentStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open recent-search db: %w", err)
	}
	if _, err := db.Exec(recentSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init recent-search schema: %w", err)
	}
	return &RecentStore{db: db, max: maxEntries}, nil
}

// Add records a successful search for loc.
func (s *RecentStore) Add(loc geo.Resolved) error {
	now := time.Now().UTC()
	_, err := s.db.Exec(`
		INSERT INTO recent_searches (id, loc_key, name, country, latitude, longitude, searched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(loc_key) DO UPDATE SET searched_at = excluded.searched_at`,
		uuid.NewString(), loc.Key(), loc.Name, loc.Country, loc.Latitude, loc.Longitude, now,
	)
	if err != nil {
		return fmt.Errorf("record recent search: %w", err)
	}

	if s.max > 0 {
		_, err = s.db.Exec(`
			DELETE FROM recent_searches WHERE loc_key NOT IN (
				SELECT loc_key FROM recent_searches ORDER BY searched_at DESC LIMIT ?
			)`, s.max)
		if err != nil {
			return fmt.Errorf("trim recent searches: %w", err)
		}
	}
	return nil
}

// List returns up to limit recent searches, newest first.
func (s *RecentStore) List(limit int) ([]RecentSearch, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT id, name, country, latitude, longitude, searched_at
		FROM recent_searches ORDER BY searched_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent searches: %w", err)
	}
	defer rows.Close()

	var out []RecentSearch
	for rows.Next() {
		var rec RecentSearch
		if err := rows.Scan(&rec.ID, &rec.Location.Name, &rec.Location.Country,
			&rec.Location.Latitude, &rec.Location.Longitude, &rec.SearchedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// Locations returns every stored location, newest first, for the refresh
// scheduler.
func (s *RecentStore) Locations() ([]geo.Resolved, error) {
	limit := s.max
	if limit <= 0 {
		limit = 100
	}
	recs, err := s.List(limit)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	locs := make([]geo.Resolved, 0, len(recs))
	for _, rec := range recs {
		locs = append(locs, rec.Location)
	}
	return locs, nil
}

// Close closes the underlying database.
func (s *RecentStore) Close() error {
	return s.db.Close()
}
