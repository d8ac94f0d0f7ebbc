package model

import "github.com/limaJavier/oncall/pkg/fd"

// problem encodes the model as a finite-domain problem: one variable per
// day whose value is the index of the doctor on call.
func (model *Model) problem() *fd.Problem {
	problem := fd.NewProblem(model.DaysInMonth, model.NumDoctors)

	// Forbidden days are unary prunes on the initial domains
	for _, pair := range model.Disallowed {
		problem.RemoveValue(pair.Day, pair.Doctor)
	}

	model.runConstraints(problem)
	model.weekendPairingConstraints(problem)
	model.weekendSpreadConstraints(problem)
	model.loadConstraints(problem)
	model.coverageConstraints(problem)
	model.weekendFairnessConstraints(problem)

	return problem
}

// In every 4-day window a doctor covers at most 3 of the 4 days; vacuous
// for months shorter than 4 days.
func (model *Model) runConstraints(problem *fd.Problem) {
	for doctor := range model.NumDoctors {
		for start := 0; start+4 <= model.DaysInMonth; start++ {
			problem.Add(fd.CountAtMost(window(start, 4), doctor, 3))
		}
	}
}

// Friday and Saturday of a weekend block are covered by the same doctor.
func (model *Model) weekendPairingConstraints(problem *fd.Problem) {
	for _, block := range model.Weekends {
		problem.Add(fd.Equal(block.Friday, block.Saturday))
	}
}

// Exactly min(n, W) distinct doctors cover at least one weekend block. With
// fewer doctors than blocks, every doctor must take a block; with blocks to
// spare, every block gets its own doctor. Both decompositions pin the
// distinct count to the minimum exactly.
func (model *Model) weekendSpreadConstraints(problem *fd.Problem) {
	weekends := len(model.Weekends)
	if weekends == 0 {
		return
	}

	if model.NumDoctors > weekends {
		problem.Add(fd.AllDifferent(model.fridays()))
		return
	}
	for doctor := range model.NumDoctors {
		problem.Add(fd.CountAtLeast(model.fridays(), doctor, 1))
	}
}

// Every doctor's total day count stays within the fairness band.
func (model *Model) loadConstraints(problem *fd.Problem) {
	days := window(0, model.DaysInMonth)
	for doctor := range model.NumDoctors {
		problem.Add(fd.CountAtLeast(days, doctor, model.LoadMin))
		problem.Add(fd.CountAtMost(days, doctor, model.LoadMax))
	}
}

// Every doctor appears in every 3n-day window; inapplicable to months
// shorter than 3n days.
func (model *Model) coverageConstraints(problem *fd.Problem) {
	size := 3 * model.NumDoctors
	if model.DaysInMonth < size {
		return
	}
	for doctor := range model.NumDoctors {
		for start := 0; start+size <= model.DaysInMonth; start++ {
			problem.Add(fd.CountAtLeast(window(start, size), doctor, 1))
		}
	}
}

// Every doctor's weekend-block count stays within the weekend fairness
// band.
func (model *Model) weekendFairnessConstraints(problem *fd.Problem) {
	if len(model.Weekends) == 0 {
		return
	}
	for doctor := range model.NumDoctors {
		problem.Add(fd.CountAtLeast(model.fridays(), doctor, model.WeekendMin))
		problem.Add(fd.CountAtMost(model.fridays(), doctor, model.WeekendMax))
	}
}

func window(start, length int) []int {
	days := make([]int, length)
	for i := range length {
		days[i] = start + i
	}
	return days
}
