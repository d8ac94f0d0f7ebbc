package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeTestInput(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "month.json")
	assert.Nil(t, os.WriteFile(file, []byte(content), 0666))
	return file
}

func TestInputFromJson(t *testing.T) {
	t.Run("converts off days to zero-based disallowed pairs", func(t *testing.T) {
		// Arrange
		file := writeTestInput(t, `{
			"daysInMonth": 30,
			"startingWeekday": "Friday",
			"doctors": [
				{"name": "Ahmed", "offDays": [6, 13]},
				{"name": "Lena", "offDays": [1, 2]},
				{"name": "Marta", "offDays": []}
			]
		}`)

		// Act
		input, names, assignment, err := InputFromJson(file)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, Input{
			NumDoctors:   3,
			DaysInMonth:  30,
			StartWeekday: time.Friday,
			Disallowed: []DisallowedPair{
				{Doctor: 0, Day: 5}, {Doctor: 0, Day: 12},
				{Doctor: 1, Day: 0}, {Doctor: 1, Day: 1},
			},
		}, input)
		assert.Equal(t, []string{"Ahmed", "Lena", "Marta"}, names)
		assert.Nil(t, assignment)
	})

	t.Run("carries an optional assignment for validate-only runs", func(t *testing.T) {
		// Arrange
		file := writeTestInput(t, `{
			"daysInMonth": 2,
			"startingWeekday": "Monday",
			"doctors": [{"name": "Ahmed"}, {"name": "Lena"}],
			"assignment": [0, 1]
		}`)

		// Act
		_, _, assignment, err := InputFromJson(file)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, []int{0, 1}, assignment)
	})

	t.Run("rejects an unknown weekday", func(t *testing.T) {
		file := writeTestInput(t, `{
			"daysInMonth": 30,
			"startingWeekday": "Someday",
			"doctors": [{"name": "Ahmed"}]
		}`)

		_, _, _, err := InputFromJson(file)

		assert.ErrorIs(t, err, ErrInvalidParameters)
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		_, _, _, err := InputFromJson(filepath.Join(t.TempDir(), "absent.json"))

		assert.NotNil(t, err)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		file := writeTestInput(t, `{"daysInMonth": `)

		_, _, _, err := InputFromJson(file)

		assert.NotNil(t, err)
	})
}
