// Package docstore is a schema-less JSON document store on top of sqlite.
//
// Documents live in named collections and are addressed by string ID. Writes
// support partial merges and atomic batches; reads support equality queries
// and ordering on top-level fields.
package docstore

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/todo-board/internal/ports"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Compile-time interface check.
var _ ports.HealthChecker = (*Store)(nil)

// Options configures Open.
type Options struct {
	// Path is the database file. MemoryPath opens an in-memory database.
	Path string
	// BusyTimeout bounds how long a write waits on a locked database.
	BusyTimeout time.Duration
	// Now supplies server timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Store is an open document database.
type Store struct {
	db   *sqlx.DB
	lock *flock.Flock
	now  func() time.Time
}

// Open opens (or creates) the database at opts.Path, takes an exclusive
// file lock so no other process writes the same file, and applies pending
// migrations.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, errors.New("docstore: path is required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	var lock *flock.Flock
	if opts.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		lock = flock.New(opts.Path + ".lock")
		locked, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquiring database lock: %w", err)
		}
		if !locked {
			return nil, fmt.Errorf("database %s is locked by another process", opts.Path)
		}
	}

	db, err := openDB(ctx, opts)
	if err != nil {
		if lock != nil {
			_ = lock.Unlock()
		}
		return nil, err
	}

	return &Store{db: db, lock: lock, now: now}, nil
}

func openDB(ctx context.Context, opts Options) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// sqlite allows a single writer; one connection also keeps an
	// in-memory database alive for the lifetime of the store.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		fmt.Sprintf("PRAGMA busy_timeout=%d", opts.BusyTimeout.Milliseconds()),
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying %q: %w", p, err)
		}
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

func migrate(ctx context.Context, db *sqlx.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("creating migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return err
	}
	return nil
}

// Collection returns a handle to the named collection. Collections exist
// implicitly once a document is written to them.
func (s *Store) Collection(name string) *Collection {
	return &Collection{store: s, name: name}
}

// Batch starts an empty write batch.
func (s *Store) Batch() *Batch {
	return &Batch{store: s}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "docstore"
}

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging docstore: %w", err)
	}
	return nil
}

// Close closes the database and releases the file lock.
func (s *Store) Close() error {
	err := s.db.Close()
	if s.lock != nil {
		err = errors.Join(err, s.lock.Unlock())
	}
	return err
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
