package task

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id             TEXT PRIMARY KEY,
	created_at     DATETIME NOT NULL,
	title          TEXT NOT NULL,
	video_url      TEXT NOT NULL,
	status         TEXT NOT NULL,
	pdf_object_key TEXT,
	error          TEXT
);
CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks (created_at);
`

// Options tunes the transient-failure retry policy.
type Options struct {
	RetryAttempts uint
	RetryDelay    time.Duration
}

// SQLiteStore persists tasks in a SQLite database.
type SQLiteStore struct {
	db       *sql.DB
	attempts uint
	delay    time.Duration
	now      func() time.Time
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the tasks table exists. It is meant to be opened once at process start;
// the caller is responsible for calling Close.
func NewSQLiteStore(dbPath string, opts Options) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", dbPath)
	}
	db.SetMaxOpenConns(1) // prevent SQLITE_BUSY
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "set busy timeout")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create schema")
	}

	if opts.RetryAttempts == 0 {
		opts.RetryAttempts = 5
	}
	if opts.RetryDelay == 0 {
		opts.RetryDelay = 200 * time.Millisecond
	}

	return &SQLiteStore{
		db:       db,
		attempts: opts.RetryAttempts,
		delay:    opts.RetryDelay,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close releases the underlying database connection.
func (s *SQLiteStore) Close() error { return s.db.Close() }
