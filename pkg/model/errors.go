package model

import "errors"

var (
	// ErrInvalidParameters marks malformed input, detected before any search
	// starts.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrInfeasible marks a model that provably admits no schedule.
	ErrInfeasible = errors.New("no feasible schedule")

	// ErrTimedOut marks a search that ran out of budget before reaching a
	// verdict. Callers must not treat it as ErrInfeasible: a larger budget,
	// more workers or another seed may still succeed.
	ErrTimedOut = errors.New("search timed out")
)
