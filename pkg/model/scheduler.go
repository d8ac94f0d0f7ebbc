package model

import (
	"context"
	"fmt"

	"github.com/limaJavier/oncall/pkg/fd"
)

// Schedule assigns a doctor index to every day of the month.
type Schedule []int

// Scheduler builds feasible on-call schedules and verifies candidate ones.
type Scheduler interface {
	// Build searches for a schedule satisfying every staffing and fairness
	// rule, or fails with ErrInvalidParameters, ErrInfeasible or
	// ErrTimedOut. It blocks until a verdict is reached or the time budget
	// elapses.
	Build(input Input, config Config) (Schedule, error)

	// Verify reports whether a candidate schedule satisfies every rule.
	Verify(schedule Schedule, input Input) bool
}

func NewScheduler() Scheduler {
	return &fdScheduler{}
}

type fdScheduler struct{}

func (scheduler *fdScheduler) Build(input Input, config Config) (Schedule, error) {
	model, err := NewModel(input)
	if err != nil {
		return nil, err
	}

	solution, status, err := fd.Solve(context.Background(), model.problem(), fd.Config{
		TimeLimit: config.TimeLimit,
		Workers:   config.Workers,
		Seed:      config.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("solver failure: %w", err)
	}

	switch status {
	case fd.Infeasible:
		return nil, fmt.Errorf("%w: %v doctors over %v days", ErrInfeasible, input.NumDoctors, input.DaysInMonth)
	case fd.Unknown:
		return nil, fmt.Errorf("%w: no verdict within %v", ErrTimedOut, config.TimeLimit)
	}

	// Never hand out an unchecked schedule: re-validate the solver's output
	// independently before returning it
	schedule := Schedule(solution)
	violations, err := Validate(schedule, input)
	if err != nil {
		return nil, err
	} else if len(violations) > 0 {
		return nil, fmt.Errorf("solver returned a schedule violating %v: %v", violations[0].Kind, violations[0].Description)
	}
	return schedule, nil
}

func (scheduler *fdScheduler) Verify(schedule Schedule, input Input) bool {
	violations, err := Validate(schedule, input)
	return err == nil && len(violations) == 0
}
