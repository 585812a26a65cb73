package engine

import "github.com/claude/rollprep/internal/models"

// ChooseFocus maps a weekday to a template key. Precedence is fixed:
// Monday, Thursday and Saturday always get their anchor template, even when
// the schedule or BJJ days would suggest otherwise. Any other day looks one
// calendar day ahead (Sunday wraps to Monday): training into a BJJ day gets
// the shoulder-safe upper session, otherwise lower strength.
func ChooseFocus(day models.Weekday, p *models.Profile) TemplateKey {
	switch day {
	case models.Mon:
		return LowerStrength
	case models.Thu:
		return UpperShoulderSafe
	case models.Sat:
		return GPP
	}
	if p.HasBJJDay(day.Next()) {
		return UpperShoulderSafe
	}
	return LowerStrength
}
