package engine

import (
	"fmt"
	"math"

	"github.com/claude/rollprep/internal/models"
)

// RedFlag marks a logged session that warrants coach attention. Exactly one
// reason is reported per log, chosen by priority: missed, then pain, then
// high effort.
type RedFlag struct {
	LogID  string `json:"logId"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// Summary is the weekly adherence/red-flag rollup for the current week.
type Summary struct {
	WeekIndex int       `json:"weekIndex"`
	Planned   int       `json:"planned"`
	Logged    int       `json:"logged"`
	Adherence int       `json:"adherence"`
	RedFlags  []RedFlag `json:"redFlags"`
}

// Summarize computes adherence and red flags over the logs belonging to the
// given week. plannedCount of zero yields adherence zero rather than a
// division error.
func Summarize(logs []models.SessionLog, weekIndex, plannedCount int) Summary {
	s := Summary{WeekIndex: weekIndex, Planned: plannedCount, RedFlags: []RedFlag{}}
	for _, l := range logs {
		if l.WeekIndex != weekIndex {
			continue
		}
		s.Logged++
		if reason, flagged := flagReason(l); flagged {
			s.RedFlags = append(s.RedFlags, RedFlag{
				LogID:  l.ID,
				Date:   l.Date.Format("2006-01-02"),
				Reason: reason,
			})
		}
	}
	if plannedCount > 0 {
		s.Adherence = int(math.Round(100 * float64(s.Logged) / float64(plannedCount)))
	}
	return s
}

func flagReason(l models.SessionLog) (string, bool) {
	switch {
	case l.Missed:
		return "missed session", true
	case l.PainFlag >= 3:
		return fmt.Sprintf("pain reported (%d/5)", l.PainFlag), true
	case l.AvgRPE >= 9:
		return fmt.Sprintf("very high average effort (%.1f)", l.AvgRPE), true
	}
	return "", false
}
