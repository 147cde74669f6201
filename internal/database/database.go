package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

func NewDB(dbPath string) (*DB, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

// Migrate ensures the agent_memory table exists. It is idempotent, so the
// accessor can run it on every invocation and still work against a database
// prepared ahead of time by an external initializer.
func (db *DB) Migrate() error {
	slog.Debug("Running database migrations")

	if _, err := db.Exec(createAgentMemoryTable); err != nil {
		return fmt.Errorf("failed to run migration: %w", err)
	}

	return nil
}

const createAgentMemoryTable = `
CREATE TABLE IF NOT EXISTS agent_memory (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	agent_id TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	created_at INTEGER DEFAULT (strftime('%s', 'now')),
	updated_at INTEGER DEFAULT (strftime('%s', 'now')),
	UNIQUE(agent_id, key)
);`
