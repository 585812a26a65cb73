package models

// Phase is the macro-periodization stage.
type Phase string

const (
	PhaseBase   Phase = "Base"
	PhaseBuild  Phase = "Build"
	PhasePeak   Phase = "Peak"
	PhaseDeload Phase = "Deload"
)

// BJJLoad grades the external grappling load expected today.
type BJJLoad string

const (
	BJJLight    BJJLoad = "light"
	BJJModerate BJJLoad = "moderate"
	BJJHard     BJJLoad = "hard"
)

// Readiness is the single current readiness snapshot. It is overwritten on
// edit, never appended.
type Readiness struct {
	Sleep    int      `json:"sleep"`    // 1-10
	Soreness int      `json:"soreness"` // 1-5
	Stress   int      `json:"stress"`   // 1-5
	HRV      *float64 `json:"hrv,omitempty"`
	BJJLoad  BJJLoad  `json:"bjjLoad"`
}

// ProgramState is the root aggregate. It is persisted and restored as one
// unit; every state change is a full overwrite of the stored blob.
type ProgramState struct {
	Profile   Profile      `json:"profile"`
	Phase     Phase        `json:"phase"`
	WeekIndex int          `json:"weekIndex"`
	Sessions  []Session    `json:"sessions"`
	Logs      []SessionLog `json:"logs"`
	Readiness Readiness    `json:"readiness"`
	PlanNotes string       `json:"planNotes,omitempty"`
}

// DefaultState is the documented state used when no persisted blob exists
// (or the stored one cannot be decoded).
func DefaultState() *ProgramState {
	return &ProgramState{
		Profile: Profile{
			Goal:              GoalBJJStrength,
			DaysAvailable:     []Weekday{Mon, Thu, Sat},
			MinutesPerSession: 60,
			Preferences:       Preferences{BarbellBias: true},
		},
		Phase:     PhaseBase,
		WeekIndex: 1,
		Sessions:  []Session{},
		Logs:      []SessionLog{},
		Readiness: Readiness{Sleep: 7, Soreness: 3, Stress: 3, BJJLoad: BJJModerate},
	}
}
