package engine

// TemplateKey names a workout blueprint in the template library.
type TemplateKey string

const (
	LowerStrength     TemplateKey = "lower_strength"
	UpperShoulderSafe TemplateKey = "upper_shoulder_safe"
	GPP               TemplateKey = "gpp"
)

// BlockSpec is one movement slot in a blueprint. Substitute is set when the
// given constraints forbid the primary movement.
type BlockSpec struct {
	Movement   string
	Substitute string
	Scheme     string
	TargetRPE  float64
	Slots      int
}

// Blueprint is a fully resolved workout template, ready to become a Session.
type Blueprint struct {
	Title    string
	Warmup   []string
	Blocks   []BlockSpec
	Finisher string
	Cues     []string
}

// BuildTemplate resolves a template key against the constraint set. Unknown
// keys fall back to GPP, which never fails regardless of constraints.
func BuildTemplate(key TemplateKey, c Constraints) Blueprint {
	switch key {
	case LowerStrength:
		return lowerStrength(c)
	case UpperShoulderSafe:
		return upperShoulderSafe(c)
	default:
		return gpp()
	}
}

func lowerStrength(c Constraints) Blueprint {
	squat := BlockSpec{
		Movement:  "Back Squat",
		Scheme:    "Work to a top set of 3, then 2x3 at -10%",
		TargetRPE: 8,
		Slots:     3,
	}
	if c.Shoulder {
		// Low-bar rack position loads the shoulder; hands-free bar instead.
		squat.Substitute = "Safety Bar Squat"
	}
	return Blueprint{
		Title:  "Lower Strength",
		Warmup: []string{"5 min bike or row", "Hip airplane x8/side", "Goblet squat ramp x10"},
		Blocks: []BlockSpec{
			squat,
			{Movement: "Romanian Deadlift", Scheme: "3x6, leave 2-3 reps in reserve", TargetRPE: 7, Slots: 3},
			{Movement: "Bulgarian Split Squat", Scheme: "3x8/side", TargetRPE: 7, Slots: 3},
			{Movement: "Hanging Knee Raise", Scheme: "3x12 controlled", TargetRPE: 6, Slots: 3},
		},
		Finisher: "Sled push 6x20m, walk-back recovery",
		Cues:     []string{"Brace before every descent", "Drive the knees out, whole foot on the floor"},
	}
}

func upperShoulderSafe(c Constraints) Blueprint {
	press := BlockSpec{
		Movement:  "Barbell Overhead Press",
		Scheme:    "5x5 building across sets",
		TargetRPE: 8,
		Slots:     5,
	}
	if c.Shoulder {
		press.Substitute = "Landmine Press"
	}
	return Blueprint{
		Title:  "Upper (Shoulder-Safe)",
		Warmup: []string{"Band pull-apart x20", "Scap push-up x10", "Light row 2x15"},
		Blocks: []BlockSpec{
			press,
			{Movement: "Weighted Chin-Up", Scheme: "4x5, add load only if all reps crisp", TargetRPE: 8, Slots: 4},
			{Movement: "Chest-Supported Row", Scheme: "3x10", TargetRPE: 7, Slots: 3},
			{Movement: "Face Pull", Scheme: "3x15 slow eccentric", TargetRPE: 6, Slots: 3},
		},
		Finisher: "Towel hang accumulation, 90s total",
		Cues:     []string{"Ribs down on every press", "Pull elbows, not hands"},
	}
}

// gpp ignores constraints: nothing in it loads a compromised joint axially.
func gpp() Blueprint {
	return Blueprint{
		Title:  "GPP / Conditioning",
		Warmup: []string{"5 min easy jump rope", "World's greatest stretch x5/side"},
		Blocks: []BlockSpec{
			{Movement: "Sled Drag", Scheme: "8x30m, rest to full recovery", TargetRPE: 6, Slots: 8},
			{Movement: "Farmer Carry", Scheme: "5x40m heavy", TargetRPE: 7, Slots: 5},
			{Movement: "Kettlebell Swing", Scheme: "10 min EMOM x10", TargetRPE: 6, Slots: 10},
		},
		Finisher: "Zone 2 bike, 15 min nasal breathing",
		Cues:     []string{"This is a flush day: leave feeling better than you arrived"},
	}
}
