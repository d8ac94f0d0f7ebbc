package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// DisallowedPair forbids a doctor from being on call on a day. Both indices
// are zero-based.
type DisallowedPair struct {
	Doctor int `mapstructure:"doctor" json:"doctor"`
	Day    int `mapstructure:"day" json:"day"`
}

// Input holds the raw scheduling parameters of one month.
type Input struct {
	NumDoctors   int
	DaysInMonth  int
	StartWeekday time.Weekday
	Disallowed   []DisallowedPair
}

func (input Input) validate() error {
	if input.NumDoctors < 1 {
		return fmt.Errorf("%w: number of doctors must be positive: %v", ErrInvalidParameters, input.NumDoctors)
	} else if input.DaysInMonth < 1 {
		return fmt.Errorf("%w: days in month must be positive: %v", ErrInvalidParameters, input.DaysInMonth)
	} else if input.StartWeekday < time.Sunday || input.StartWeekday > time.Saturday {
		return fmt.Errorf("%w: unknown starting weekday: %v", ErrInvalidParameters, int(input.StartWeekday))
	}

	for _, pair := range input.Disallowed {
		if pair.Doctor < 0 || pair.Doctor >= input.NumDoctors {
			return fmt.Errorf("%w: disallowed pair references unknown doctor %v", ErrInvalidParameters, pair.Doctor)
		} else if pair.Day < 0 || pair.Day >= input.DaysInMonth {
			return fmt.Errorf("%w: disallowed pair references day %v outside the month", ErrInvalidParameters, pair.Day)
		}
	}
	return nil
}

// weekday returns the weekday a zero-based day index falls on.
func (input Input) weekday(day int) time.Weekday {
	return time.Weekday((int(input.StartWeekday) + day) % 7)
}

// ParseWeekday resolves a weekday name such as "Sunday", case-insensitively.
func ParseWeekday(name string) (time.Weekday, error) {
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		if strings.EqualFold(weekday.String(), name) {
			return weekday, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidParameters, name)
}

type fileDoctor struct {
	Name    string `mapstructure:"name"`
	OffDays []int  `mapstructure:"offDays"`
}

type fileInput struct {
	DaysInMonth     int          `mapstructure:"daysInMonth"`
	StartingWeekday string       `mapstructure:"startingWeekday"`
	Doctors         []fileDoctor `mapstructure:"doctors"`
	Assignment      []int        `mapstructure:"assignment"`
}

// InputFromJson reads scheduling parameters from a JSON file. Off days are
// 1-based day numbers, the way people write them on a request sheet; here
// they become zero-based disallowed pairs. Doctor names are returned
// separately since the core never needs them, and the optional assignment
// supports validate-only runs.
func InputFromJson(file string) (Input, []string, []int, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return Input{}, nil, nil, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(content, &inputJson); err != nil {
		return Input{}, nil, nil, err
	}

	var decoded fileInput
	if err := mapstructure.Decode(inputJson, &decoded); err != nil {
		return Input{}, nil, nil, err
	}

	weekday, err := ParseWeekday(decoded.StartingWeekday)
	if err != nil {
		return Input{}, nil, nil, err
	}

	input := Input{
		NumDoctors:   len(decoded.Doctors),
		DaysInMonth:  decoded.DaysInMonth,
		StartWeekday: weekday,
	}
	for doctor, entry := range decoded.Doctors {
		for _, day := range entry.OffDays {
			input.Disallowed = append(input.Disallowed, DisallowedPair{Doctor: doctor, Day: day - 1})
		}
	}

	names := lo.Map(decoded.Doctors, func(doctor fileDoctor, _ int) string { return doctor.Name })
	return input, names, decoded.Assignment, nil
}
