package models

import (
	"math"
	"time"
)

// CompletedSet records what was actually performed for one movement.
// LastLoad is nil when the user logged bodyweight or skipped the field.
type CompletedSet struct {
	Movement string   `json:"movement"`
	Sets     int      `json:"sets"`
	Reps     int      `json:"reps"`
	LastLoad *float64 `json:"lastLoad,omitempty"`
	RPE      float64  `json:"rpe"`
}

// SessionLog is an append-only record of a performed (or missed) session.
// WeekIndex is the week in which the log was created, not necessarily the
// week of the session it refers to.
type SessionLog struct {
	ID        string         `json:"id"`
	SessionID string         `json:"sessionId,omitempty"`
	WeekIndex int            `json:"weekIndex"`
	Date      time.Time      `json:"date"`
	Sets      []CompletedSet `json:"sets,omitempty"`
	AvgRPE    float64        `json:"avgRPE"`
	PainFlag  int            `json:"painFlag"`
	Notes     string         `json:"notes,omitempty"`
	Missed    bool           `json:"missed"`
}

// AverageRPE computes the mean observed effort across sets, rounded to one
// decimal. Zero when no sets were logged.
func AverageRPE(sets []CompletedSet) float64 {
	if len(sets) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sets {
		sum += s.RPE
	}
	return math.Round(sum/float64(len(sets))*10) / 10
}
