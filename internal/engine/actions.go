package engine

import (
	"strings"

	"github.com/claude/rollprep/internal/models"
)

// QuickAction identifies one of the discrete plan adjustments a user or coach
// can apply to the live week.
type QuickAction string

const (
	ActionDeload    QuickAction = "deload"
	ActionCapSets   QuickAction = "cap_sets"
	ActionSwapPress QuickAction = "swap_press"
)

const (
	capSetsNote   = " (volume capped)"
	swapPressNote = " (swapped to shoulder-safe press)"
	// pressSubstitute replaces any press-pattern movement under swap_press.
	pressSubstitute = "Landmine Press"
)

// CapSets removes one set from every block of every session, flooring at one,
// and annotates the scheme text. Applying it again removes another set and
// appends the annotation again; compounding on repeat is intended.
func CapSets(sessions []models.Session) []models.Session {
	out := cloneSessions(sessions)
	for si := range out {
		for bi := range out[si].Blocks {
			b := &out[si].Blocks[bi]
			if b.Slots > 1 {
				b.Slots--
			}
			b.Scheme += capSetsNote
		}
	}
	return out
}

// SwapPress replaces every block whose movement name contains "press"
// (case-insensitive) with the fixed shoulder-safe substitute and annotates
// the scheme text. Like CapSets, repeat applications append again.
func SwapPress(sessions []models.Session) []models.Session {
	out := cloneSessions(sessions)
	for si := range out {
		for bi := range out[si].Blocks {
			b := &out[si].Blocks[bi]
			if strings.Contains(strings.ToLower(b.Movement), "press") {
				b.Movement = pressSubstitute
				b.Scheme += swapPressNote
			}
		}
	}
	return out
}

// cloneSessions deep-copies the session list so the transforms stay pure and
// callers can hold the previous plan until the new one is committed.
func cloneSessions(sessions []models.Session) []models.Session {
	out := make([]models.Session, len(sessions))
	copy(out, sessions)
	for i := range out {
		blocks := make([]models.ExerciseBlock, len(sessions[i].Blocks))
		copy(blocks, sessions[i].Blocks)
		out[i].Blocks = blocks
	}
	return out
}
