package engine

import (
	"math"

	"github.com/claude/rollprep/internal/models"
)

// AdjustLoad computes the next working load from readiness inputs and a pain
// flag. The rules are independent and additive: pain -7%, full recovery
// (sleep>=7, soreness<=3, stress<=3) +3%, high soreness -2%, high stress -1%.
// The result is rounded and floored at zero.
func AdjustLoad(previous float64, r models.Readiness, painPresent bool) float64 {
	delta := 0.0
	if painPresent {
		delta -= 7
	}
	if r.Sleep >= 7 && r.Soreness <= 3 && r.Stress <= 3 {
		delta += 3
	}
	if r.Soreness >= 4 {
		delta -= 2
	}
	if r.Stress >= 4 {
		delta -= 1
	}
	next := math.Round(previous * (1 + delta/100))
	if next < 0 {
		return 0
	}
	return next
}
