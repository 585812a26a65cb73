package engine

import (
	"math"
	"strings"

	"github.com/claude/rollprep/internal/models"
)

// progressionFactor is the weekly linear progression applied to a matched
// prior working load.
const progressionFactor = 1.02

// SuggestStartingLoad proposes a starting working load for a movement from
// last week's logs, or nil when there is nothing usable to anchor on.
//
// Only the most recent log entry that actually contains completed sets is
// inspected. Within it, the first set whose movement name contains the first
// word of the target name (case-insensitive) wins. The match is deliberately
// loose; a token like "press" can hit several distinct movements, and callers
// rely on that behavior staying put.
func SuggestStartingLoad(movement string, lastWeekLogs []models.SessionLog) *float64 {
	token := firstToken(movement)
	if token == "" {
		return nil
	}
	for i := len(lastWeekLogs) - 1; i >= 0; i-- {
		entry := lastWeekLogs[i]
		if len(entry.Sets) == 0 {
			continue
		}
		for _, set := range entry.Sets {
			if strings.Contains(strings.ToLower(set.Movement), token) {
				if set.LastLoad == nil || *set.LastLoad < 0 {
					return nil
				}
				v := math.Round(*set.LastLoad * progressionFactor)
				return &v
			}
		}
		// Only the most recent non-empty entry is consulted.
		return nil
	}
	return nil
}

func firstToken(movement string) string {
	fields := strings.Fields(strings.ToLower(movement))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
