package model

import "fmt"

// ViolationKind identifies which scheduling rule a violation breaks.
type ViolationKind string

const (
	ViolationDisallowedDay    ViolationKind = "disallowed-day"
	ViolationLongRun          ViolationKind = "long-run"
	ViolationWeekendPairing   ViolationKind = "weekend-pairing"
	ViolationWeekendSpread    ViolationKind = "weekend-spread"
	ViolationLoadImbalance    ViolationKind = "load-imbalance"
	ViolationCoverageGap      ViolationKind = "coverage-gap"
	ViolationWeekendImbalance ViolationKind = "weekend-imbalance"
)

// Violation locates a broken rule: the doctor and day (or window start)
// involved plus a description. Doctor or Day is -1 when the rule is not
// about a single one.
type Violation struct {
	Kind        ViolationKind `json:"kind"`
	Doctor      int           `json:"doctor"`
	Day         int           `json:"day"`
	Description string        `json:"description"`
}

// Validate re-evaluates every scheduling rule against the raw input,
// independently of how the schedule was produced. It is a pure function:
// same arguments, same verdict. A schedule of the wrong length or with an
// out-of-range doctor is ErrInvalidParameters, not a violation.
func Validate(schedule Schedule, input Input) ([]Violation, error) {
	model, err := NewModel(input)
	if err != nil {
		return nil, err
	}

	if len(schedule) != model.DaysInMonth {
		return nil, fmt.Errorf("%w: schedule covers %v days, month has %v", ErrInvalidParameters, len(schedule), model.DaysInMonth)
	}
	for day, doctor := range schedule {
		if doctor < 0 || doctor >= model.NumDoctors {
			return nil, fmt.Errorf("%w: day %v assigned to unknown doctor %v", ErrInvalidParameters, day, doctor)
		}
	}

	violations := []Violation{}
	violations = append(violations, model.checkDisallowed(schedule)...)
	violations = append(violations, model.checkRuns(schedule)...)
	violations = append(violations, model.checkWeekendPairing(schedule)...)
	violations = append(violations, model.checkWeekendSpread(schedule)...)
	violations = append(violations, model.checkLoad(schedule)...)
	violations = append(violations, model.checkCoverage(schedule)...)
	violations = append(violations, model.checkWeekendFairness(schedule)...)
	return violations, nil
}

func (model *Model) checkDisallowed(schedule Schedule) []Violation {
	violations := []Violation{}
	for _, pair := range model.Disallowed {
		if schedule[pair.Day] == pair.Doctor {
			violations = append(violations, Violation{
				Kind:        ViolationDisallowedDay,
				Doctor:      pair.Doctor,
				Day:         pair.Day,
				Description: fmt.Sprintf("doctor %v is on call on forbidden day %v", pair.Doctor, pair.Day),
			})
		}
	}
	return violations
}

// A doctor covering 4 of 4 days in a window is a run of 4 consecutive days.
func (model *Model) checkRuns(schedule Schedule) []Violation {
	violations := []Violation{}
	for start := 0; start+4 <= model.DaysInMonth; start++ {
		doctor := schedule[start]
		if schedule[start+1] == doctor && schedule[start+2] == doctor && schedule[start+3] == doctor {
			violations = append(violations, Violation{
				Kind:        ViolationLongRun,
				Doctor:      doctor,
				Day:         start,
				Description: fmt.Sprintf("doctor %v covers all of days %v through %v", doctor, start, start+3),
			})
		}
	}
	return violations
}

func (model *Model) checkWeekendPairing(schedule Schedule) []Violation {
	violations := []Violation{}
	for _, block := range model.Weekends {
		if schedule[block.Friday] != schedule[block.Saturday] {
			violations = append(violations, Violation{
				Kind:        ViolationWeekendPairing,
				Doctor:      schedule[block.Friday],
				Day:         block.Friday,
				Description: fmt.Sprintf("weekend days %v and %v are split between doctors %v and %v", block.Friday, block.Saturday, schedule[block.Friday], schedule[block.Saturday]),
			})
		}
	}
	return violations
}

func (model *Model) checkWeekendSpread(schedule Schedule) []Violation {
	weekends := len(model.Weekends)
	if weekends == 0 {
		return nil
	}

	distinct := 0
	for _, count := range model.weekendCounts(schedule) {
		if count > 0 {
			distinct++
		}
	}

	// Exactly min(n, W) distinct weekend doctors, deliberately not a lower
	// bound
	expected := min(model.NumDoctors, weekends)
	if distinct == expected {
		return nil
	}
	return []Violation{{
		Kind:        ViolationWeekendSpread,
		Doctor:      -1,
		Day:         -1,
		Description: fmt.Sprintf("%v distinct doctors cover weekends, want exactly %v", distinct, expected),
	}}
}

func (model *Model) checkLoad(schedule Schedule) []Violation {
	totals := make([]int, model.NumDoctors)
	for _, doctor := range schedule {
		totals[doctor]++
	}

	violations := []Violation{}
	for doctor, total := range totals {
		if total < model.LoadMin || total > model.LoadMax {
			violations = append(violations, Violation{
				Kind:        ViolationLoadImbalance,
				Doctor:      doctor,
				Day:         -1,
				Description: fmt.Sprintf("doctor %v covers %v days, want between %v and %v", doctor, total, model.LoadMin, model.LoadMax),
			})
		}
	}
	return violations
}

func (model *Model) checkCoverage(schedule Schedule) []Violation {
	size := 3 * model.NumDoctors
	if model.DaysInMonth < size {
		return nil
	}

	violations := []Violation{}
	for doctor := range model.NumDoctors {
		// Prefix sums of the doctor's appearances
		prefix := make([]int, model.DaysInMonth+1)
		for day, assigned := range schedule {
			prefix[day+1] = prefix[day]
			if assigned == doctor {
				prefix[day+1]++
			}
		}

		// Report the first uncovered window per doctor
		for start := 0; start+size <= model.DaysInMonth; start++ {
			if prefix[start+size] == prefix[start] {
				violations = append(violations, Violation{
					Kind:        ViolationCoverageGap,
					Doctor:      doctor,
					Day:         start,
					Description: fmt.Sprintf("doctor %v is absent from days %v through %v", doctor, start, start+size-1),
				})
				break
			}
		}
	}
	return violations
}

func (model *Model) checkWeekendFairness(schedule Schedule) []Violation {
	if len(model.Weekends) == 0 {
		return nil
	}

	violations := []Violation{}
	for doctor, count := range model.weekendCounts(schedule) {
		if count < model.WeekendMin || count > model.WeekendMax {
			violations = append(violations, Violation{
				Kind:        ViolationWeekendImbalance,
				Doctor:      doctor,
				Day:         -1,
				Description: fmt.Sprintf("doctor %v covers %v weekends, want between %v and %v", doctor, count, model.WeekendMin, model.WeekendMax),
			})
		}
	}
	return violations
}

// weekendCounts returns, per doctor, the number of weekend blocks whose two
// days the doctor both covers.
func (model *Model) weekendCounts(schedule Schedule) []int {
	counts := make([]int, model.NumDoctors)
	for _, block := range model.Weekends {
		if schedule[block.Friday] == schedule[block.Saturday] {
			counts[schedule[block.Friday]]++
		}
	}
	return counts
}
