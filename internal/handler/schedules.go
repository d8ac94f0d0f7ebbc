package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/limaJavier/oncall/pkg/calendar"
	"github.com/limaJavier/oncall/pkg/model"
)

type scheduleParameters struct {
	NumDoctors      int    `json:"numDoctors" validate:"required,gte=1"`
	DaysInMonth     int    `json:"daysInMonth" validate:"required,gte=1"`
	StartingWeekday string `json:"startingWeekday" validate:"required"`
	DisallowedPairs []struct {
		Doctor int `json:"doctor" validate:"gte=0"`
		Day    int `json:"day" validate:"gte=0"`
	} `json:"disallowedPairs" validate:"dive"`
	DoctorNames []string `json:"doctorNames"`
}

// input translates the request parameters into core input; range checks
// beyond non-negativity are the model's job.
func (parameters scheduleParameters) input() (model.Input, error) {
	weekday, err := model.ParseWeekday(parameters.StartingWeekday)
	if err != nil {
		return model.Input{}, err
	}

	input := model.Input{
		NumDoctors:   parameters.NumDoctors,
		DaysInMonth:  parameters.DaysInMonth,
		StartWeekday: weekday,
	}
	for _, pair := range parameters.DisallowedPairs {
		input.Disallowed = append(input.Disallowed, model.DisallowedPair{Doctor: pair.Doctor, Day: pair.Day})
	}
	return input, nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "ok", nil)
}

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		scheduleParameters
		TimeLimitSeconds float64 `json:"timeLimitSeconds" validate:"omitempty,gt=0"`
		NumWorkers       int     `json:"numWorkers" validate:"omitempty,gte=1"`
		RandomSeed       *int64  `json:"randomSeed"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	input, err := req.input()
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	config := model.Config{
		TimeLimit: time.Duration(h.config.Solver.TimeLimit) * time.Second,
		Workers:   h.config.Solver.Workers,
		Seed:      req.RandomSeed,
	}
	if req.TimeLimitSeconds > 0 {
		config.TimeLimit = time.Duration(req.TimeLimitSeconds * float64(time.Second))
	}
	if req.NumWorkers > 0 {
		config.Workers = req.NumWorkers
	}

	schedule, err := h.scheduler.Build(input, config)
	switch {
	case errors.Is(err, model.ErrInvalidParameters):
		h.badRequest(w, r, err)
		return
	case errors.Is(err, model.ErrInfeasible):
		// A definitive negative verdict, not to be confused with a timeout
		h.errorResponse(w, r, http.StatusOK, "no schedule satisfies the given rules", map[string]any{"status": "infeasible"})
		return
	case errors.Is(err, model.ErrTimedOut):
		h.errorResponse(w, r, http.StatusOK, "no verdict within the time budget", map[string]any{"status": "timed-out"})
		return
	case err != nil:
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule generated", map[string]any{
		"status":        "feasible",
		"assignment":    schedule,
		"doctors":       doctorNames(req.DoctorNames, input.NumDoctors),
		"totals":        calendar.Totals(schedule, input.NumDoctors),
		"weekendBlocks": weekendBlocks(input),
		"colors":        calendar.Colors(input.NumDoctors),
	})
}

func (h *Handler) ValidateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		scheduleParameters
		Assignment []int `json:"assignment" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	input, err := req.input()
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	violations, err := model.Validate(model.Schedule(req.Assignment), input)
	if errors.Is(err, model.ErrInvalidParameters) {
		h.badRequest(w, r, err)
		return
	} else if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule validated", map[string]any{
		"valid":      len(violations) == 0,
		"violations": violations,
	})
}

// doctorNames pads missing or empty display names with numbered fallbacks.
func doctorNames(names []string, doctors int) []string {
	resolved := make([]string, doctors)
	for doctor := range doctors {
		if doctor < len(names) && names[doctor] != "" {
			resolved[doctor] = names[doctor]
		} else {
			resolved[doctor] = fmt.Sprintf("Doctor %v", doctor+1)
		}
	}
	return resolved
}

func weekendBlocks(input model.Input) int {
	weekday := int(input.StartWeekday)
	blocks := 0
	for day := range input.DaysInMonth {
		if (weekday+day)%7 == 5 && day+1 < input.DaysInMonth { // Friday with a Saturday after it
			blocks++
		}
	}
	return blocks
}
