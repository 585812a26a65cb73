package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/claude/rollprep/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the program state blob in a local SQLite file. This is
// the default store: single user, single file, no external service.
type SQLiteStore struct {
	db  *sql.DB
	log *slog.Logger
}

// Compile-time check: *SQLiteStore satisfies Store.
var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the state database at the given path.
func OpenSQLite(path string, log *slog.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS program_state (
		key        TEXT PRIMARY KEY,
		data       BLOB NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &SQLiteStore{db: db, log: log}, nil
}

// Load returns the persisted program state, or the documented default state
// when nothing has been saved yet.
func (s *SQLiteStore) Load(ctx context.Context) (*models.ProgramState, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM program_state WHERE key = ?`, stateKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading program state: %w", err)
	}
	return decodeState(data, s.log), nil
}

// Save overwrites the persisted program state.
func (s *SQLiteStore) Save(ctx context.Context, state *models.ProgramState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding program state: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO program_state (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		stateKey, data,
	)
	if err != nil {
		return fmt.Errorf("saving program state: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
