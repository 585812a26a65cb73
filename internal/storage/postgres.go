package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/claude/rollprep/internal/models"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the program state blob in Postgres, for deployments
// where the planner shares a database host with other self-hosted services.
type PostgresStore struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// Compile-time check: *PostgresStore satisfies Store.
var _ Store = (*PostgresStore)(nil)

// OpenPostgres creates a connection pool and verifies it with a ping.
func OpenPostgres(ctx context.Context, dsn string, log *slog.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresStore{pool: pool, log: log}, nil
}

// RunMigrations applies all pending migrations from the given directory.
func RunMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Load returns the persisted program state, or the default state when the
// key is absent.
func (s *PostgresStore) Load(ctx context.Context) (*models.ProgramState, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM program_state WHERE key = $1`, stateKey,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.DefaultState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading program state: %w", err)
	}
	return decodeState(data, s.log), nil
}

// Save overwrites the persisted program state.
func (s *PostgresStore) Save(ctx context.Context, state *models.ProgramState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding program state: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO program_state (key, data, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		stateKey, data,
	)
	if err != nil {
		return fmt.Errorf("saving program state: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
