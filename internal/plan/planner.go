package plan

import (
	"context"

	"github.com/claude/rollprep/internal/models"
)

// Request is the full snapshot a planner receives. It matches what a real
// inference backend would be handed at the integration seam.
type Request struct {
	Profile      models.Profile      `json:"profile"`
	Readiness    models.Readiness    `json:"readiness"`
	LastWeekLogs []models.SessionLog `json:"lastWeekLogs"`
	Phase        models.Phase        `json:"phase"`
	WeekIndex    int                 `json:"weekIndex"`
}

// Plan is a generated week. Sessions fully replace the previous week's list.
type Plan struct {
	Phase     models.Phase     `json:"phase"`
	WeekIndex int              `json:"weekIndex"`
	Sessions  []models.Session `json:"sessions"`
	Notes     string           `json:"notes,omitempty"`
}

// Planner generates a week's plan from a program snapshot. The built-in
// RuleBased planner is deterministic; a real inference backend can be swapped
// in without touching the rule engine.
type Planner interface {
	GeneratePlan(ctx context.Context, req Request) (*Plan, error)
}

// Compile-time check: RuleBased satisfies Planner.
var _ Planner = (*RuleBased)(nil)
