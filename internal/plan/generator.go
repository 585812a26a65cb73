package plan

import (
	"context"

	"github.com/claude/rollprep/internal/engine"
	"github.com/claude/rollprep/internal/models"
	"github.com/google/uuid"
)

// deloadNotes is attached to every plan generated during a Deload phase.
const deloadNotes = "Deload week: reduce volume ~30%, cap effort at 6-7."

// topSetThreshold: only blocks at or above this target effort get a starting
// load suggestion; accessory work does not.
const topSetThreshold = 8.0

// RuleBased is the deterministic built-in planner.
type RuleBased struct{}

// NewRuleBased returns the built-in planner.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// GeneratePlan builds one session per available day, in the order the days
// are stored on the profile. Constraints are inferred fresh from the injury
// list, and top-set blocks get a starting load from last week's logs.
func (g *RuleBased) GeneratePlan(_ context.Context, req Request) (*Plan, error) {
	constraints := engine.InferConstraints(&req.Profile)

	sessions := make([]models.Session, 0, len(req.Profile.DaysAvailable))
	for _, day := range req.Profile.DaysAvailable {
		focus := engine.ChooseFocus(day, &req.Profile)
		bp := engine.BuildTemplate(focus, constraints)

		blocks := make([]models.ExerciseBlock, 0, len(bp.Blocks))
		for _, spec := range bp.Blocks {
			block := models.ExerciseBlock{
				Movement:   spec.Movement,
				Substitute: spec.Substitute,
				Scheme:     spec.Scheme,
				TargetRPE:  spec.TargetRPE,
				Slots:      spec.Slots,
			}
			if spec.TargetRPE >= topSetThreshold {
				block.SuggestedLoad = engine.SuggestStartingLoad(spec.Movement, req.LastWeekLogs)
			}
			blocks = append(blocks, block)
		}

		sessions = append(sessions, models.Session{
			ID:       uuid.NewString(),
			Day:      day,
			Title:    bp.Title,
			Warmup:   bp.Warmup,
			Blocks:   blocks,
			Finisher: bp.Finisher,
			Cues:     bp.Cues,
		})
	}

	p := &Plan{
		Phase:     req.Phase,
		WeekIndex: req.WeekIndex,
		Sessions:  sessions,
	}
	if req.Phase == models.PhaseDeload {
		p.Notes = deloadNotes
	}
	return p, nil
}
