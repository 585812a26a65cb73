package engine

import "github.com/claude/rollprep/internal/models"

// Advance moves the program to the next week and resolves the next phase.
// Every fourth week is forced into Deload regardless of current phase.
// Otherwise Base goes to Build, Build to Peak, and Deload returns to Base.
// Peak has no outgoing edge in the base cycle: it holds until the fourth-week
// override fires.
func Advance(phase models.Phase, weekIndex int) (models.Phase, int) {
	next := weekIndex + 1
	if next%4 == 0 {
		return models.PhaseDeload, next
	}
	switch phase {
	case models.PhaseBase:
		return models.PhaseBuild, next
	case models.PhaseBuild:
		return models.PhasePeak, next
	case models.PhaseDeload:
		return models.PhaseBase, next
	}
	return phase, next
}
