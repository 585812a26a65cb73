package engine

import "github.com/claude/rollprep/internal/models"

// Constraints is the set of movement restrictions derived from the profile's
// injury list. It is recomputed on every use, never persisted.
type Constraints struct {
	Shoulder bool
}

// InferConstraints derives movement restrictions from the injury list.
// Currently only shoulder injuries produce a flag; other areas are carried in
// the profile but do not yet restrict programming.
func InferConstraints(p *models.Profile) Constraints {
	var c Constraints
	for _, inj := range p.Injuries {
		if inj.Area == models.AreaShoulder {
			c.Shoulder = true
		}
	}
	return c
}
