package model

import "time"

// The three reference months shared by the validator and scheduler tests.
// Each carries one schedule satisfying every rule and one breaking at least
// one of them.
type fixture struct {
	name    string
	input   Input
	valid   Schedule
	invalid Schedule
}

func pairs(raw [][2]int) []DisallowedPair {
	disallowed := make([]DisallowedPair, len(raw))
	for i, pair := range raw {
		disallowed[i] = DisallowedPair{Doctor: pair[0], Day: pair[1]}
	}
	return disallowed
}

var fixtures = []fixture{
	{
		name: "3 doctors, 30 days, starting Friday",
		input: Input{
			NumDoctors:   3,
			DaysInMonth:  30,
			StartWeekday: time.Friday,
			Disallowed: pairs([][2]int{
				{0, 5}, {0, 12}, {0, 19}, {0, 26},
				{2, 2}, {2, 9}, {2, 16}, {2, 23}, {2, 4}, {2, 11}, {2, 18}, {2, 25},
				{1, 0}, {1, 1}, {1, 28}, {1, 29},
			}),
		},
		valid: Schedule{
			0, 0,
			0, 1, 0, 2, 1, 1, 1,
			0, 2, 0, 2, 1, 2, 2,
			0, 1, 0, 2, 1, 1, 1,
			0, 2, 0, 2, 1, 2, 2,
		},
		invalid: Schedule{
			0, 0,
			1, 1, 0, 2, 0, 0, 2,
			0, 0, 0, 2, 2, 1, 1,
			1, 2, 0, 2, 0, 1, 2,
			1, 2, 1, 1, 1, 2, 2,
		},
	},
	{
		name: "4 doctors, 30 days, starting Sunday",
		input: Input{
			NumDoctors:   4,
			DaysInMonth:  30,
			StartWeekday: time.Sunday,
			Disallowed: pairs([][2]int{
				{0, 2}, {0, 9}, {0, 16}, {0, 23},
				{1, 4}, {1, 11}, {1, 18}, {1, 25},
				{2, 4}, {2, 11}, {2, 18}, {2, 25},
				{3, 3}, {3, 10}, {3, 17}, {3, 24},
			}),
		},
		valid: Schedule{
			0, 1, 1, 2, 0, 2, 2,
			3, 2, 3, 0, 3, 1, 1,
			1, 0, 2, 0, 3, 3, 3,
			1, 3, 1, 1, 3, 0, 0,
			2, 2,
		},
		invalid: Schedule{
			0, 1, 1, 2, 0, 2, 2,
			3, 2, 3, 0, 3, 3, 1,
			1, 0, 2, 0, 3, 1, 3,
			1, 3, 1, 1, 3, 0, 0,
			2, 0,
		},
	},
	{
		name: "5 doctors, 31 days, starting Sunday",
		input: Input{
			NumDoctors:   5,
			DaysInMonth:  31,
			StartWeekday: time.Sunday,
			Disallowed: pairs([][2]int{
				{0, 1}, {0, 8}, {0, 15}, {0, 22}, {0, 29}, {0, 4}, {0, 11}, {0, 18}, {0, 25},
				{1, 0}, {1, 7}, {1, 14}, {1, 21}, {1, 28}, {1, 4}, {1, 11}, {1, 18}, {1, 25},
				{2, 1}, {2, 8}, {2, 15}, {2, 22}, {2, 29},
				{3, 2}, {3, 9}, {3, 16}, {3, 23}, {3, 30}, {3, 3}, {3, 10}, {3, 17}, {3, 24},
				{4, 3}, {4, 10}, {4, 17}, {4, 24},
			}),
		},
		valid: Schedule{
			0, 1, 2, 1, 3, 2, 2,
			4, 1, 0, 2, 4, 3, 3,
			0, 3, 4, 1, 2, 1, 1,
			2, 3, 4, 0, 4, 0, 0,
			4, 3, 4,
		},
		// Each doctor on a contiguous 7-day block
		invalid: Schedule{
			0, 0, 0, 0, 0, 0, 0,
			1, 1, 1, 1, 1, 1, 1,
			2, 2, 2, 2, 2, 2, 2,
			3, 3, 3, 3, 3, 3, 3,
			4, 4, 4,
		},
	},
}

// infeasibleInput forbids doctor 0 on every day, leaving doctor 1 alone to
// cover 5 days against a 3-day load cap.
func infeasibleInput() Input {
	input := Input{
		NumDoctors:   2,
		DaysInMonth:  5,
		StartWeekday: time.Monday,
	}
	for day := range input.DaysInMonth {
		input.Disallowed = append(input.Disallowed, DisallowedPair{Doctor: 0, Day: day})
	}
	return input
}
