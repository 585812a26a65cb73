package storage

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/claude/rollprep/internal/models"
)

// stateKey is the single key under which the program aggregate is stored.
const stateKey = "program_state"

// Store persists the program state as one keyed blob. Save is a full-state
// overwrite, last-write-wins; there are no partial writes.
type Store interface {
	Load(ctx context.Context) (*models.ProgramState, error)
	Save(ctx context.Context, state *models.ProgramState) error
	Close() error
}

// decodeState unmarshals a stored blob, failing closed to the default state
// when the blob cannot be decoded. A corrupt blob must never surface as a
// user-facing parse error.
func decodeState(data []byte, log *slog.Logger) *models.ProgramState {
	state := models.DefaultState()
	if err := json.Unmarshal(data, state); err != nil {
		log.Warn("stored program state is malformed, using defaults", "error", err)
		return models.DefaultState()
	}
	return state
}
