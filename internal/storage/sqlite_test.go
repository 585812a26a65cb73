package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/claude/rollprep/internal/models"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestLoadMissingKeyReturnsDefaults verifies a fresh database yields the
// documented default state.
func TestLoadMissingKeyReturnsDefaults(t *testing.T) {
	s := openTestStore(t)

	state, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Profile.Goal != models.GoalBJJStrength {
		t.Errorf("goal = %q, want %q", state.Profile.Goal, models.GoalBJJStrength)
	}
	if state.Phase != models.PhaseBase || state.WeekIndex != 1 {
		t.Errorf("state = %s/%d, want Base/1", state.Phase, state.WeekIndex)
	}
	if state.Readiness.Sleep != 7 || state.Readiness.Soreness != 3 || state.Readiness.Stress != 3 {
		t.Errorf("readiness = %+v, want 7/3/3", state.Readiness)
	}
	if state.Readiness.BJJLoad != models.BJJModerate {
		t.Errorf("bjjLoad = %q, want moderate", state.Readiness.BJJLoad)
	}
	if len(state.Logs) != 0 || len(state.Sessions) != 0 {
		t.Error("default state has logs or sessions")
	}
}

// TestSaveLoadRoundTrip verifies the full aggregate survives an overwrite
// and reload.
func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	state := models.DefaultState()
	state.WeekIndex = 7
	state.Phase = models.PhasePeak
	state.Sessions = []models.Session{{ID: "s1", Day: models.Mon, Title: "Lower Strength"}}
	state.Logs = []models.SessionLog{{ID: "l1", WeekIndex: 6, PainFlag: 2}}

	if err := s.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.WeekIndex != 7 || got.Phase != models.PhasePeak {
		t.Errorf("state = %s/%d, want Peak/7", got.Phase, got.WeekIndex)
	}
	if len(got.Sessions) != 1 || got.Sessions[0].ID != "s1" {
		t.Errorf("sessions = %+v, want the saved one", got.Sessions)
	}
	if len(got.Logs) != 1 || got.Logs[0].PainFlag != 2 {
		t.Errorf("logs = %+v, want the saved one", got.Logs)
	}
}

// TestSaveIsLastWriteWins verifies repeated saves overwrite the single blob.
func TestSaveIsLastWriteWins(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := models.DefaultState()
	first.WeekIndex = 2
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := models.DefaultState()
	second.WeekIndex = 3
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.WeekIndex != 3 {
		t.Errorf("weekIndex = %d, want 3 (last write wins)", got.WeekIndex)
	}
}

// TestLoadMalformedBlobFailsClosed verifies a corrupt stored blob falls back
// to the default state instead of surfacing a parse error.
func TestLoadMalformedBlobFailsClosed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO program_state (key, data) VALUES (?, ?)`,
		stateKey, []byte("{not json"),
	)
	if err != nil {
		t.Fatalf("seeding corrupt blob: %v", err)
	}

	state, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error for corrupt blob: %v", err)
	}
	if state.Phase != models.PhaseBase || state.WeekIndex != 1 {
		t.Errorf("state = %s/%d, want default Base/1", state.Phase, state.WeekIndex)
	}
}
