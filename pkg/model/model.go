package model

import "time"

// WeekendBlock is a Friday/Saturday day-index pair that must be covered by
// a single doctor. A trailing Friday with no Saturday inside the month
// forms no block.
type WeekendBlock struct {
	Friday   int
	Saturday int
}

// Model is the validated constraint model derived from an Input: the raw
// parameters plus the weekend blocks and the fairness bands. It is built
// once and read-only afterwards.
type Model struct {
	Input

	Weekends []WeekendBlock

	// Per-doctor total-day band [m/n floored, m/n ceiled]
	LoadMin, LoadMax int
	// Per-doctor weekend-block band, meaningful only when weekends exist
	WeekendMin, WeekendMax int
}

// NewModel validates the input and derives the weekend blocks and fairness
// bands. It rejects non-positive counts and out-of-range disallowed pairs
// with ErrInvalidParameters.
func NewModel(input Input) (*Model, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	model := &Model{Input: input}
	for day := range input.DaysInMonth {
		if input.weekday(day) == time.Friday && day+1 < input.DaysInMonth {
			model.Weekends = append(model.Weekends, WeekendBlock{Friday: day, Saturday: day + 1})
		}
	}

	model.LoadMin = input.DaysInMonth / input.NumDoctors
	model.LoadMax = ceilDiv(input.DaysInMonth, input.NumDoctors)
	if weekends := len(model.Weekends); weekends > 0 {
		model.WeekendMin = weekends / input.NumDoctors
		model.WeekendMax = ceilDiv(weekends, input.NumDoctors)
	}
	return model, nil
}

// fridays returns the Friday day-variable of every weekend block. Pairing
// forces Friday and Saturday to agree, so the Friday variable alone stands
// for its block.
func (model *Model) fridays() []int {
	fridays := make([]int, len(model.Weekends))
	for i, block := range model.Weekends {
		fridays[i] = block.Friday
	}
	return fridays
}

func ceilDiv(dividend, divisor int) int {
	return (dividend + divisor - 1) / divisor
}
