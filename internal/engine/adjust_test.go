package engine

import (
	"testing"

	"github.com/claude/rollprep/internal/models"
)

// TestAdjustLoadRecovered verifies the +3% bump when sleep, soreness, and
// stress all clear their thresholds.
func TestAdjustLoadRecovered(t *testing.T) {
	r := models.Readiness{Sleep: 8, Soreness: 2, Stress: 2}
	if got := AdjustLoad(100, r, false); got != 103 {
		t.Errorf("AdjustLoad(100, recovered, no pain) = %v, want 103", got)
	}
}

// TestAdjustLoadWorstCase verifies the deltas stack: pain -7, soreness -2,
// stress -1 on a fully beat-up snapshot.
func TestAdjustLoadWorstCase(t *testing.T) {
	r := models.Readiness{Sleep: 5, Soreness: 5, Stress: 5}
	if got := AdjustLoad(100, r, true); got != 90 {
		t.Errorf("AdjustLoad(100, wrecked, pain) = %v, want 90", got)
	}
}

// TestAdjustLoadRulesAreAdditive verifies rules combine rather than exclude
// each other: good sleep with high stress nets +3-1 = +2%.
func TestAdjustLoadRulesAreAdditive(t *testing.T) {
	r := models.Readiness{Sleep: 8, Soreness: 2, Stress: 2}
	// Stress 4 blocks the recovery bonus (stress<=3 required) and adds -1.
	r.Stress = 4
	if got := AdjustLoad(100, r, false); got != 99 {
		t.Errorf("AdjustLoad(100, stress=4) = %v, want 99", got)
	}
}

// TestAdjustLoadFlooredAtZero verifies the result never goes negative.
func TestAdjustLoadFlooredAtZero(t *testing.T) {
	r := models.Readiness{Sleep: 3, Soreness: 5, Stress: 5}
	if got := AdjustLoad(0, r, true); got != 0 {
		t.Errorf("AdjustLoad(0, ...) = %v, want 0", got)
	}
}
