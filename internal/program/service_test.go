package program

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/claude/rollprep/internal/engine"
	"github.com/claude/rollprep/internal/models"
	"github.com/claude/rollprep/internal/plan"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	state *models.ProgramState
	saves int
}

func (m *memStore) Load(context.Context) (*models.ProgramState, error) {
	if m.state == nil {
		return models.DefaultState(), nil
	}
	return m.state, nil
}

func (m *memStore) Save(_ context.Context, s *models.ProgramState) error {
	m.state = s
	m.saves++
	return nil
}

func (m *memStore) Close() error { return nil }

// failingPlanner always fails, standing in for a broken inference backend.
type failingPlanner struct{}

func (failingPlanner) GeneratePlan(context.Context, plan.Request) (*plan.Plan, error) {
	return nil, errors.New("backend unavailable")
}

// blockingPlanner parks until released, to exercise the single-flight guard.
type blockingPlanner struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingPlanner) GeneratePlan(context.Context, plan.Request) (*plan.Plan, error) {
	close(p.started)
	<-p.release
	return &plan.Plan{Sessions: []models.Session{}}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestGenerateWeekReplacesSessions verifies generation fully replaces the
// session list and persists the result.
func TestGenerateWeekReplacesSessions(t *testing.T) {
	store := &memStore{}
	svc := New(store, plan.NewRuleBased(), testLogger())

	state, err := svc.GenerateWeek(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Sessions) == 0 {
		t.Fatal("no sessions generated for default profile")
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
}

// TestGenerateWeekFailureKeepsState verifies a planner failure leaves the
// persisted state untouched — the previous week survives.
func TestGenerateWeekFailureKeepsState(t *testing.T) {
	prior := models.DefaultState()
	prior.Sessions = []models.Session{{ID: "keep-me", Day: models.Mon}}
	store := &memStore{state: prior}

	svc := New(store, failingPlanner{}, testLogger())
	if _, err := svc.GenerateWeek(context.Background()); err == nil {
		t.Fatal("expected error from failing planner")
	}
	if store.saves != 0 {
		t.Errorf("saves = %d, want 0 after failed generation", store.saves)
	}
	if store.state.Sessions[0].ID != "keep-me" {
		t.Error("previous session list was not preserved")
	}
}

// TestGenerateWeekSingleFlight verifies a second generation request is
// refused while one is outstanding.
func TestGenerateWeekSingleFlight(t *testing.T) {
	p := &blockingPlanner{started: make(chan struct{}), release: make(chan struct{})}
	svc := New(&memStore{}, p, testLogger())

	done := make(chan error, 1)
	go func() {
		_, err := svc.GenerateWeek(context.Background())
		done <- err
	}()

	<-p.started
	if _, err := svc.GenerateWeek(context.Background()); !errors.Is(err, ErrGenerationPending) {
		t.Errorf("second call error = %v, want ErrGenerationPending", err)
	}

	close(p.release)
	if err := <-done; err != nil {
		t.Errorf("first call error = %v, want nil", err)
	}
}

// TestLogSessionStampsAndAppends verifies the append-only log path: ID,
// current week index, derived average effort, timestamp.
func TestLogSessionStampsAndAppends(t *testing.T) {
	store := &memStore{}
	svc := New(store, plan.NewRuleBased(), testLogger())

	w := 100.0
	state, err := svc.LogSession(context.Background(), models.SessionLog{
		SessionID: "s1",
		Sets: []models.CompletedSet{
			{Movement: "Back Squat", Sets: 3, Reps: 5, LastLoad: &w, RPE: 8},
			{Movement: "Romanian Deadlift", Sets: 3, Reps: 6, RPE: 7},
		},
		PainFlag: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Logs) != 1 {
		t.Fatalf("logs = %d, want 1", len(state.Logs))
	}

	entry := state.Logs[0]
	if entry.ID == "" {
		t.Error("log entry has no ID")
	}
	if entry.WeekIndex != 1 {
		t.Errorf("weekIndex = %d, want 1", entry.WeekIndex)
	}
	if entry.AvgRPE != 7.5 {
		t.Errorf("avgRPE = %v, want 7.5", entry.AvgRPE)
	}
	if entry.Date.IsZero() {
		t.Error("log entry has no date")
	}
}

// TestLogSessionRejectsBadPainFlag verifies the 0-5 pain range is enforced
// before anything is persisted.
func TestLogSessionRejectsBadPainFlag(t *testing.T) {
	store := &memStore{}
	svc := New(store, plan.NewRuleBased(), testLogger())

	if _, err := svc.LogSession(context.Background(), models.SessionLog{PainFlag: 9}); err == nil {
		t.Fatal("expected error for painFlag=9")
	}
	if store.saves != 0 {
		t.Errorf("saves = %d, want 0", store.saves)
	}
}

// TestApplyQuickActionDeload verifies deload flips the phase directly,
// bypassing normal progression, without touching the week index.
func TestApplyQuickActionDeload(t *testing.T) {
	svc := New(&memStore{}, plan.NewRuleBased(), testLogger())

	state, err := svc.ApplyQuickAction(context.Background(), engine.ActionDeload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Phase != models.PhaseDeload {
		t.Errorf("phase = %s, want Deload", state.Phase)
	}
	if state.WeekIndex != 1 {
		t.Errorf("weekIndex = %d, want 1 (deload action must not advance)", state.WeekIndex)
	}
}

// TestApplyQuickActionUnknown verifies unknown kinds are rejected with the
// sentinel error and no state change.
func TestApplyQuickActionUnknown(t *testing.T) {
	store := &memStore{}
	svc := New(store, plan.NewRuleBased(), testLogger())

	_, err := svc.ApplyQuickAction(context.Background(), engine.QuickAction("explode"))
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("error = %v, want ErrUnknownAction", err)
	}
	if store.saves != 0 {
		t.Errorf("saves = %d, want 0", store.saves)
	}
}

// TestAdvanceWeekClearsSessions verifies every advance bumps the week by one
// and empties the session list, forcing regeneration.
func TestAdvanceWeekClearsSessions(t *testing.T) {
	prior := models.DefaultState()
	prior.Sessions = []models.Session{{ID: "old", Day: models.Mon}}
	prior.PlanNotes = "old notes"
	svc := New(&memStore{state: prior}, plan.NewRuleBased(), testLogger())

	for want := 2; want <= 5; want++ {
		state, err := svc.AdvanceWeek(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.WeekIndex != want {
			t.Fatalf("weekIndex = %d, want %d", state.WeekIndex, want)
		}
		if len(state.Sessions) != 0 {
			t.Errorf("sessions not cleared at week %d", want)
		}
	}
}

// TestAdvanceWeekForcedDeload verifies week 3 -> 4 lands in Deload whatever
// the phase was.
func TestAdvanceWeekForcedDeload(t *testing.T) {
	prior := models.DefaultState()
	prior.WeekIndex = 3
	prior.Phase = models.PhasePeak
	svc := New(&memStore{state: prior}, plan.NewRuleBased(), testLogger())

	state, err := svc.AdvanceWeek(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.WeekIndex != 4 || state.Phase != models.PhaseDeload {
		t.Errorf("state = %s/%d, want Deload/4", state.Phase, state.WeekIndex)
	}
}

// TestUpdateReadinessOverwrites verifies exactly one readiness snapshot is
// retained.
func TestUpdateReadinessOverwrites(t *testing.T) {
	svc := New(&memStore{}, plan.NewRuleBased(), testLogger())

	_, err := svc.UpdateReadiness(context.Background(), models.Readiness{Sleep: 4, Soreness: 5, Stress: 4, BJJLoad: models.BJJHard})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, err := svc.UpdateReadiness(context.Background(), models.Readiness{Sleep: 9, Soreness: 1, Stress: 1, BJJLoad: models.BJJLight})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Readiness.Sleep != 9 || state.Readiness.BJJLoad != models.BJJLight {
		t.Errorf("readiness = %+v, want the second snapshot", state.Readiness)
	}
}

// TestUpdateProfileValidates verifies invalid profiles are rejected before
// persistence.
func TestUpdateProfileValidates(t *testing.T) {
	store := &memStore{}
	svc := New(store, plan.NewRuleBased(), testLogger())

	bad := models.Profile{
		DaysAvailable:     []models.Weekday{models.Mon, models.Mon},
		MinutesPerSession: 60,
	}
	if _, err := svc.UpdateProfile(context.Background(), bad); err == nil {
		t.Fatal("expected error for duplicate weekday")
	}
	if store.saves != 0 {
		t.Errorf("saves = %d, want 0", store.saves)
	}
}

// TestTriageUsesCurrentWeek verifies triage counts only the current week's
// logs against the active session list.
func TestTriageUsesCurrentWeek(t *testing.T) {
	prior := models.DefaultState()
	prior.WeekIndex = 2
	prior.Sessions = []models.Session{{ID: "a"}, {ID: "b"}}
	prior.Logs = []models.SessionLog{
		{ID: "l1", WeekIndex: 2, Missed: true},
		{ID: "l2", WeekIndex: 1},
	}
	svc := New(&memStore{state: prior}, plan.NewRuleBased(), testLogger())

	summary, err := svc.Triage(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Adherence != 50 {
		t.Errorf("adherence = %d, want 50", summary.Adherence)
	}
	if len(summary.RedFlags) != 1 {
		t.Errorf("red flags = %d, want 1", len(summary.RedFlags))
	}
}
