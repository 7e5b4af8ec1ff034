// Package sqlite persists resolution records so the CLI can tell whether
// a resolved file set changed between runs.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/HemansAI/datasets/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/HemansAI/datasets/internal/core/domain"
	"github.com/HemansAI/datasets/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ResolutionStore = (*Store)(nil)

// Store is a SQLite-backed resolution history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a store at the specified data directory.
// If dataDir is empty, defaults to ~/.datasets/data/resolutions.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".datasets", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "resolutions.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record stores one resolution run. A missing ID or timestamp is filled in.
func (s *Store) Record(ctx context.Context, res domain.Resolution) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resolutions (id, key, hash, file_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, res.ID, res.Key, res.Hash, res.FileCount, res.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting resolution: %w", err)
	}
	return nil
}

// Latest returns the most recent record for a resolution key.
func (s *Store) Latest(ctx context.Context, key string) (*domain.Resolution, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, key, hash, file_count, created_at
		FROM resolutions
		WHERE key = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, key)

	var res domain.Resolution
	err := row.Scan(&res.ID, &res.Key, &res.Hash, &res.FileCount, &res.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no resolution recorded for %s", domain.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning resolution: %w", err)
	}
	return &res, nil
}

// List returns up to limit records for a key, newest first.
func (s *Store) List(ctx context.Context, key string, limit int) ([]domain.Resolution, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, key, hash, file_count, created_at
		FROM resolutions
		WHERE key = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, key, limit)
	if err != nil {
		return nil, fmt.Errorf("querying resolutions: %w", err)
	}
	defer rows.Close()

	var out []domain.Resolution
	for rows.Next() {
		var res domain.Resolution
		if err := rows.Scan(&res.ID, &res.Key, &res.Hash, &res.FileCount, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning resolution: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
