package models

// ExerciseBlock is one prescribed movement slot inside a planned session.
// Quick actions mutate blocks in place: scheme text is appended to, slots are
// decremented, movements are substituted.
type ExerciseBlock struct {
	Movement      string   `json:"movement"`
	Substitute    string   `json:"substitute,omitempty"`
	Scheme        string   `json:"scheme"`
	TargetRPE     float64  `json:"targetRPE"`
	Slots         int      `json:"slots"`
	SuggestedLoad *float64 `json:"suggestedLoad,omitempty"`
}

// Session is one planned training day. Sessions are created fresh each week by
// the plan generator and fully replaced, never merged.
type Session struct {
	ID       string          `json:"id"`
	Day      Weekday         `json:"day"`
	Title    string          `json:"title"`
	Warmup   []string        `json:"warmup"`
	Blocks   []ExerciseBlock `json:"blocks"`
	Finisher string          `json:"finisher,omitempty"`
	Cues     []string        `json:"cues,omitempty"`
}
