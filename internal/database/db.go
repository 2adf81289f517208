package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/akyairhashvil/rtauth/internal/util"
	_ "github.com/mattn/go-sqlite3"
)

// Database is the local journal of placeholder backend calls plus a small
// settings table.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(ctx context.Context, path string) (*Database, error) {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// sqlite serialises writers anyway; a single connection keeps
	// in-memory test databases consistent.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the database file location.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS auth_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id TEXT NOT NULL,
			op TEXT NOT NULL,
			email_masked TEXT,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_auth_events_op ON auth_events(op);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "migrate", Resource: "schema", Err: err}
		}
	}
	return nil
}
