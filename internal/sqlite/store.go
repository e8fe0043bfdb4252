// Package sqlite implements the SQLite persistence backend for the
// ricettario recipe catalog. Every operation runs in its own transaction:
// commit on success, full rollback on any failure.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/cucina-labs/ricettario/pkg/types"
)

var _ types.Store = (*Store)(nil)

// Store implements types.Store over a single SQLite database file.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
	logger *zap.Logger
}

// Open opens (creating if absent) the database under config.DataDir,
// ensures the schema exists and seeds default categories, units and
// settings. A nil logger disables logging.
func Open(config types.Config, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	file := config.DatabaseFile
	if file == "" {
		file = types.DefaultDatabaseFile
	}
	dbPath := filepath.Join(dataDir, file)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One pooled connection: pragmas stay in effect for every statement and
	// writers serialize at the pool instead of racing for the file lock.
	db.SetMaxOpenConns(1)

	for _, pragma := range openPragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying pragma: %w", err)
		}
	}

	s := &Store{db: db, logger: logger}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("store opened", zap.String("path", dbPath))
	return s, nil
}

// Close releases the database handle. Idempotent; after Close all
// operations return types.ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.closed = true
	s.logger.Info("store closed")
	return nil
}

// initSchema creates missing tables and indexes and seeds default rows.
// All statements are idempotent, so re-opening an existing database never
// duplicates or overwrites anything.
func (s *Store) initSchema() error {
	return s.withTx(func(tx *sql.Tx) error {
		for _, ddl := range schemaDDL {
			if _, err := tx.Exec(ddl); err != nil {
				return fmt.Errorf("creating table: %w", err)
			}
		}
		for _, ddl := range indexDDL {
			if _, err := tx.Exec(ddl); err != nil {
				return fmt.Errorf("creating index: %w", err)
			}
		}
		return seedDefaults(tx)
	})
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error. Both reads and writes go through here so every
// operation observes a consistent snapshot.
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return types.ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// nowTimestamp returns the store-managed timestamp format.
func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// today returns the default creation_date for new recipes.
func today() string {
	return time.Now().Format("2006-01-02")
}
