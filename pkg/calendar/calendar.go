// Package calendar renders a finished on-call schedule: the 7-column month
// grid, per-doctor totals and display colors, and tabular exports. It
// consumes the core's output and feeds no scheduling decision back into it.
package calendar

import (
	"fmt"
	"time"

	"github.com/limaJavier/oncall/pkg/model"
)

// Cell is one slot of the month grid. Day is the 1-based day number; zero
// marks a slot outside the month.
type Cell struct {
	Day     int
	Weekday time.Weekday
	Doctor  int
	Name    string
}

// Month is a Sunday-first week grid of an assigned month, the shape the
// on-call sheet is printed in.
type Month struct {
	Start time.Weekday
	Weeks [][7]Cell
}

// NewMonth lays the schedule out on a Sunday-first grid aligned to the
// starting weekday, with empty leading and trailing cells.
func NewMonth(schedule model.Schedule, names []string, start time.Weekday) (Month, error) {
	if len(schedule) == 0 {
		return Month{}, fmt.Errorf("cannot lay out an empty schedule")
	} else if start < time.Sunday || start > time.Saturday {
		return Month{}, fmt.Errorf("unknown starting weekday: %v", int(start))
	}

	month := Month{Start: start}
	offset := int(start)
	weeks := (offset + len(schedule) + 6) / 7

	for week := range weeks {
		var row [7]Cell
		for column := range 7 {
			day := week*7 + column - offset
			if day < 0 || day >= len(schedule) {
				row[column] = Cell{Doctor: -1}
				continue
			}
			row[column] = Cell{
				Day:     day + 1,
				Weekday: time.Weekday(column),
				Doctor:  schedule[day],
				Name:    nameOf(names, schedule[day]),
			}
		}
		month.Weeks = append(month.Weeks, row)
	}
	return month, nil
}

// Totals counts the assigned days of each doctor.
func Totals(schedule model.Schedule, doctors int) []int {
	totals := make([]int, doctors)
	for _, doctor := range schedule {
		totals[doctor]++
	}
	return totals
}

func nameOf(names []string, doctor int) string {
	if doctor < len(names) && names[doctor] != "" {
		return names[doctor]
	}
	return fmt.Sprintf("Doctor %v", doctor+1)
}
