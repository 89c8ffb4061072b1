package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/arijitsen/examdesk/internal/config"
)

type DB struct {
	*sql.DB
}

func Open() (*DB, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dir, "examdesk.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	store := &DB{db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return store, nil
}

func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS exams (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			year TEXT NOT NULL,
			start_date TEXT,
			end_date TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(name, year)
		)`,
		`CREATE TABLE IF NOT EXISTS venues (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			exam_id INTEGER NOT NULL REFERENCES exams(id),
			name TEXT NOT NULL,
			centre_code TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			capacity INTEGER NOT NULL DEFAULT 1,
			UNIQUE(exam_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			venue_id INTEGER NOT NULL REFERENCES venues(id),
			session_date TEXT NOT NULL,
			shift TEXT NOT NULL,
			UNIQUE(venue_id, session_date, shift)
		)`,
		`CREATE TABLE IF NOT EXISTS allocations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			exam_id INTEGER NOT NULL REFERENCES exams(id),
			person TEXT NOT NULL,
			role TEXT NOT NULL,
			venue TEXT NOT NULL,
			alloc_date TEXT NOT NULL,
			shift TEXT NOT NULL,
			mock_test INTEGER NOT NULL DEFAULT 0,
			order_no TEXT NOT NULL DEFAULT '',
			page_no TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS deleted_allocations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			exam_id INTEGER NOT NULL,
			person TEXT NOT NULL,
			role TEXT NOT NULL,
			venue TEXT NOT NULL,
			alloc_date TEXT NOT NULL,
			shift TEXT NOT NULL,
			mock_test INTEGER NOT NULL DEFAULT 0,
			order_no TEXT NOT NULL DEFAULT '',
			page_no TEXT NOT NULL DEFAULT '',
			deletion_order_no TEXT NOT NULL,
			deletion_reason TEXT NOT NULL,
			deleted_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}

	return nil
}

func (db *DB) GetState(key string) (string, error) {
	var value string
	err := db.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func (db *DB) SetState(key, value string) error {
	_, err := db.Exec(
		"INSERT INTO state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}
