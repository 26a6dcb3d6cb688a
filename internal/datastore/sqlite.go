package datastore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"metroart/internal/artwork"
)

const artworksSchema = `
CREATE TABLE IF NOT EXISTS artworks (
	object_id INTEGER PRIMARY KEY NOT NULL,
	title TEXT NOT NULL,
	artist TEXT NOT NULL,
	nationality TEXT NOT NULL,
	birth_year TEXT NOT NULL,
	death_year TEXT NOT NULL,
	classification TEXT NOT NULL,
	object_date TEXT NOT NULL,
	image_url TEXT NOT NULL
);
`

// SQLiteStore implements the Store interface for local SQLite storage.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLiteStore instance.
func NewSQLiteStore(dbPath string) *SQLiteStore {
	return &SQLiteStore{dbPath: dbPath}
}

// Connect opens the SQLite database and ensures the artworks table exists.
func (s *SQLiteStore) Connect() error {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(artworksSchema); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return fmt.Errorf("failed to create artworks table: %w (close: %v)", err, closeErr)
		}
		return fmt.Errorf("failed to create artworks table: %w", err)
	}
	s.db = db
	return nil
}

// SaveArtworks upserts the records inside a single transaction. Re-exporting
// the same session is idempotent.
func (s *SQLiteStore) SaveArtworks(artworks []artwork.Artwork) error {
	if len(artworks) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO artworks
		(object_id, title, artist, nationality, birth_year, death_year, classification, object_date, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, a := range artworks {
		if _, err := stmt.Exec(a.ID, a.Title, a.Artist, a.Nationality, a.BirthYear, a.DeathYear, a.Classification, a.Date, a.ImageURL); err != nil {
			return fmt.Errorf("failed to insert artwork %d: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
