package models

import "fmt"

// Weekday is a canonical three-letter weekday token.
type Weekday string

const (
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
	Sat Weekday = "Sat"
	Sun Weekday = "Sun"
)

// WeekOrder lists the seven canonical tokens in calendar order.
var WeekOrder = []Weekday{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

// Next returns the following calendar day, wrapping Sunday to Monday.
func (d Weekday) Next() Weekday {
	for i, wd := range WeekOrder {
		if wd == d {
			return WeekOrder[(i+1)%len(WeekOrder)]
		}
	}
	return d
}

// Valid reports whether d is one of the seven canonical tokens.
func (d Weekday) Valid() bool {
	for _, wd := range WeekOrder {
		if wd == d {
			return true
		}
	}
	return false
}

// Goal is the user's primary training objective.
type Goal string

const (
	GoalBJJStrength  Goal = "bjj_strength"
	GoalStrength     Goal = "strength"
	GoalHypertrophy  Goal = "hypertrophy"
	GoalConditioning Goal = "conditioning"
)

// InjuryArea is a body region an injury is attached to.
type InjuryArea string

const (
	AreaShoulder InjuryArea = "shoulder"
	AreaKnee     InjuryArea = "knee"
	AreaHip      InjuryArea = "hip"
	AreaBack     InjuryArea = "back"
	AreaWrist    InjuryArea = "wrist"
	AreaAnkle    InjuryArea = "ankle"
)

var validAreas = map[InjuryArea]bool{
	AreaShoulder: true, AreaKnee: true, AreaHip: true,
	AreaBack: true, AreaWrist: true, AreaAnkle: true,
}

// Injury is a user-reported injury. Injuries are only ever aggregated into a
// ConstraintSet; nothing references them by ID outside profile editing.
type Injury struct {
	ID         string     `json:"id"`
	Area       InjuryArea `json:"area"`
	Aggravates []string   `json:"aggravates,omitempty"`
	Severity   int        `json:"severity"`
}

// Preferences holds soft user preferences the generator may consult.
type Preferences struct {
	BarbellBias bool     `json:"barbellBias"`
	Dislikes    []string `json:"dislikes,omitempty"`
}

// Profile is the onboarded user profile.
type Profile struct {
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Goal              Goal            `json:"goal"`
	TrainingAge       int             `json:"trainingAge"`
	DaysAvailable     []Weekday       `json:"daysAvailable"`
	MinutesPerSession int             `json:"minutesPerSession"`
	Equipment         map[string]bool `json:"equipment,omitempty"`
	BJJDays           []Weekday       `json:"bjjDays,omitempty"`
	Injuries          []Injury        `json:"injuries,omitempty"`
	Preferences       Preferences     `json:"preferences"`
}

// HasBJJDay reports whether d is one of the profile's BJJ days.
func (p *Profile) HasBJJDay(d Weekday) bool {
	for _, b := range p.BJJDays {
		if b == d {
			return true
		}
	}
	return false
}

// Validate checks the profile invariants: weekday lists must be duplicate-free
// subsets of the canonical tokens, numeric fields must be in range.
func (p *Profile) Validate() error {
	if err := validateDays("daysAvailable", p.DaysAvailable); err != nil {
		return err
	}
	if err := validateDays("bjjDays", p.BJJDays); err != nil {
		return err
	}
	if p.TrainingAge < 0 {
		return fmt.Errorf("trainingAge must be >= 0, got %d", p.TrainingAge)
	}
	if p.MinutesPerSession <= 0 {
		return fmt.Errorf("minutesPerSession must be > 0, got %d", p.MinutesPerSession)
	}
	for _, inj := range p.Injuries {
		if !validAreas[inj.Area] {
			return fmt.Errorf("unknown injury area %q", inj.Area)
		}
		if inj.Severity < 1 || inj.Severity > 5 {
			return fmt.Errorf("injury severity must be 1-5, got %d", inj.Severity)
		}
	}
	return nil
}

func validateDays(field string, days []Weekday) error {
	seen := map[Weekday]bool{}
	for _, d := range days {
		if !d.Valid() {
			return fmt.Errorf("%s: unknown weekday token %q", field, d)
		}
		if seen[d] {
			return fmt.Errorf("%s: duplicate weekday %q", field, d)
		}
		seen[d] = true
	}
	return nil
}
