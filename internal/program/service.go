package program

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/claude/rollprep/internal/engine"
	"github.com/claude/rollprep/internal/models"
	"github.com/claude/rollprep/internal/plan"
	"github.com/claude/rollprep/internal/storage"
	"github.com/google/uuid"
)

// ErrGenerationPending is returned when a plan generation is requested while
// another one is still outstanding. There is exactly one logical writer, so
// overlapping generations are refused rather than queued.
var ErrGenerationPending = errors.New("plan generation already in progress")

// ErrUnknownAction is returned for quick-action kinds outside the known set.
var ErrUnknownAction = errors.New("unknown quick action")

// Service owns the program state lifecycle: every operation loads the
// aggregate through the store, applies a transform, and saves the whole
// aggregate back. Failures leave the persisted state untouched.
type Service struct {
	store      storage.Store
	planner    plan.Planner
	log        *slog.Logger
	generating atomic.Bool
	now        func() time.Time
}

// New creates a Service over the given store and planner.
func New(store storage.Store, planner plan.Planner, log *slog.Logger) *Service {
	return &Service{store: store, planner: planner, log: log, now: time.Now}
}

// State returns the current program aggregate.
func (s *Service) State(ctx context.Context) (*models.ProgramState, error) {
	return s.store.Load(ctx)
}

// GenerateWeek replaces the session list with a freshly generated week.
// The previous list is kept intact if the planner fails, and a second call
// while one is pending returns ErrGenerationPending.
func (s *Service) GenerateWeek(ctx context.Context) (*models.ProgramState, error) {
	if !s.generating.CompareAndSwap(false, true) {
		return nil, ErrGenerationPending
	}
	defer s.generating.Store(false)

	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	req := plan.Request{
		Profile:      state.Profile,
		Readiness:    state.Readiness,
		LastWeekLogs: logsForWeek(state.Logs, state.WeekIndex-1),
		Phase:        state.Phase,
		WeekIndex:    state.WeekIndex,
	}
	p, err := s.planner.GeneratePlan(ctx, req)
	if err != nil {
		s.log.Error("plan generation failed, keeping current week", "error", err)
		return nil, fmt.Errorf("generating plan: %w", err)
	}

	state.Sessions = p.Sessions
	state.PlanNotes = p.Notes
	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	s.log.Info("week generated", "week", state.WeekIndex, "phase", state.Phase, "sessions", len(state.Sessions))
	return state, nil
}

// LogSession appends a session log. Logs are append-only: the entry gets an
// ID, the current week index, a derived average effort, and a timestamp, and
// is never mutated afterwards.
func (s *Service) LogSession(ctx context.Context, entry models.SessionLog) (*models.ProgramState, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	entry.ID = uuid.NewString()
	entry.WeekIndex = state.WeekIndex
	entry.AvgRPE = models.AverageRPE(entry.Sets)
	if entry.Date.IsZero() {
		entry.Date = s.now()
	}
	if entry.PainFlag < 0 || entry.PainFlag > 5 {
		return nil, fmt.Errorf("painFlag must be 0-5, got %d", entry.PainFlag)
	}

	state.Logs = append(state.Logs, entry)
	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// ApplyQuickAction applies one of the discrete plan adjustments. deload flips
// the phase directly, bypassing normal progression; cap_sets and swap_press
// rewrite the live session list and compound on repeat invocation.
func (s *Service) ApplyQuickAction(ctx context.Context, kind engine.QuickAction) (*models.ProgramState, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	switch kind {
	case engine.ActionDeload:
		state.Phase = models.PhaseDeload
	case engine.ActionCapSets:
		state.Sessions = engine.CapSets(state.Sessions)
	case engine.ActionSwapPress:
		state.Sessions = engine.SwapPress(state.Sessions)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, kind)
	}

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	s.log.Info("quick action applied", "action", kind)
	return state, nil
}

// AdvanceWeek moves the state machine forward one week and clears the session
// list, forcing regeneration.
func (s *Service) AdvanceWeek(ctx context.Context) (*models.ProgramState, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	state.Phase, state.WeekIndex = engine.Advance(state.Phase, state.WeekIndex)
	state.Sessions = []models.Session{}
	state.PlanNotes = ""

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	s.log.Info("week advanced", "week", state.WeekIndex, "phase", state.Phase)
	return state, nil
}

// UpdateProfile validates and replaces the profile.
func (s *Service) UpdateProfile(ctx context.Context, p models.Profile) (*models.ProgramState, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	state.Profile = p
	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// UpdateReadiness overwrites the single current readiness snapshot.
func (s *Service) UpdateReadiness(ctx context.Context, r models.Readiness) (*models.ProgramState, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	state.Readiness = r
	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Triage computes the adherence/red-flag summary for the current week.
func (s *Service) Triage(ctx context.Context) (*engine.Summary, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	summary := engine.Summarize(state.Logs, state.WeekIndex, len(state.Sessions))
	return &summary, nil
}

// SuggestLoad proposes a starting load for a movement from last week's logs.
func (s *Service) SuggestLoad(ctx context.Context, movement string) (*float64, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return engine.SuggestStartingLoad(movement, logsForWeek(state.Logs, state.WeekIndex-1)), nil
}

func logsForWeek(logs []models.SessionLog, weekIndex int) []models.SessionLog {
	var out []models.SessionLog
	for _, l := range logs {
		if l.WeekIndex == weekIndex {
			out = append(out, l)
		}
	}
	return out
}
