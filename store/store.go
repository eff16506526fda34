// Package store journals presentation progress in SQLite. It records
// quiz attempts and the last slide viewed per deck. The store is a
// journal beside the session, not a source of live state: the only
// value ever read back into a running presentation is the bookmark
// used by -resume.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lixenwraith/deckplay/logger"
)

// Store writes progress for one deck to a SQLite database. A database
// file can hold rows for many decks; rows are keyed by deck title.
type Store struct {
	db   *sql.DB
	log  *logger.Logger
	deck string
}

// Attempt is one answered quiz item.
type Attempt struct {
	Slide      int
	ItemID     string
	Choice     int
	Correct    bool
	AnsweredAt time.Time
}

// Open opens or creates the database at path and ensures the schema
// exists.
func Open(path, deckTitle string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open progress database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping progress database: %w", err)
	}

	s := &Store{db: db, log: log, deck: deckTitle}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Info("Progress store opened at %s", path)
	return s, nil
}

func (s *Store) createTables() error {
	createAttempts := `
	CREATE TABLE IF NOT EXISTS quiz_attempts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		deck TEXT NOT NULL,
		slide INTEGER NOT NULL,
		item_id TEXT NOT NULL,
		choice INTEGER NOT NULL,
		correct INTEGER NOT NULL,
		answered_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := s.db.Exec(createAttempts); err != nil {
		return fmt.Errorf("failed to create quiz_attempts table: %w", err)
	}

	createIndex := `CREATE INDEX IF NOT EXISTS idx_attempts_deck ON quiz_attempts(deck);`
	if _, err := s.db.Exec(createIndex); err != nil {
		return fmt.Errorf("failed to create attempts index: %w", err)
	}

	createBookmarks := `
	CREATE TABLE IF NOT EXISTS bookmarks (
		deck TEXT PRIMARY KEY,
		slide INTEGER NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := s.db.Exec(createBookmarks); err != nil {
		return fmt.Errorf("failed to create bookmarks table: %w", err)
	}

	return nil
}

// RecordAttempt journals one answered quiz item.
func (s *Store) RecordAttempt(slide int, itemID string, choice int, correct bool) error {
	query := `INSERT INTO quiz_attempts (deck, slide, item_id, choice, correct, answered_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query, s.deck, slide, itemID, choice, correct, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert attempt: %w", err)
	}

	s.log.Debug("Recorded attempt: item=%s choice=%d correct=%v", itemID, choice, correct)
	return nil
}

// Attempts returns this deck's journaled attempts in the order they
// were answered.
func (s *Store) Attempts() ([]Attempt, error) {
	query := `SELECT slide, item_id, choice, correct, answered_at
		FROM quiz_attempts WHERE deck = ? ORDER BY id`

	rows, err := s.db.Query(query, s.deck)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.Slide, &a.ItemID, &a.Choice, &a.Correct, &a.AnsweredAt); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}

// SaveBookmark remembers the last slide viewed for this deck.
func (s *Store) SaveBookmark(slide int) error {
	query := `INSERT OR REPLACE INTO bookmarks (deck, slide, updated_at) VALUES (?, ?, ?)`

	_, err := s.db.Exec(query, s.deck, slide, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}

	return nil
}

// LastSlide returns the bookmarked slide for this deck. The second
// return is false when the deck has never been bookmarked.
func (s *Store) LastSlide() (int, bool, error) {
	query := `SELECT slide FROM bookmarks WHERE deck = ?`

	var slide int
	err := s.db.QueryRow(query, s.deck).Scan(&slide)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query bookmark: %w", err)
	}

	return slide, true, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
