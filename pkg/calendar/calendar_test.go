package calendar

import (
	"testing"
	"time"

	"github.com/limaJavier/oncall/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestNewMonth(t *testing.T) {
	t.Run("aligns the first week to the starting weekday", func(t *testing.T) {
		// Arrange: a month starting on Friday fills only the last two
		// columns of its first week
		schedule := model.Schedule{0, 1, 2, 0, 1, 2, 0, 1, 2}
		names := []string{"Ahmed", "Lena", "Marta"}

		// Act
		month, err := NewMonth(schedule, names, time.Friday)

		// Assert
		assert.Nil(t, err)
		assert.Len(t, month.Weeks, 2)

		first := month.Weeks[0]
		for column := range 5 {
			assert.Equal(t, 0, first[column].Day)
			assert.Equal(t, -1, first[column].Doctor)
		}
		assert.Equal(t, Cell{Day: 1, Weekday: time.Friday, Doctor: 0, Name: "Ahmed"}, first[5])
		assert.Equal(t, Cell{Day: 2, Weekday: time.Saturday, Doctor: 1, Name: "Lena"}, first[6])

		second := month.Weeks[1]
		assert.Equal(t, Cell{Day: 3, Weekday: time.Sunday, Doctor: 2, Name: "Marta"}, second[0])
		assert.Equal(t, Cell{Day: 9, Weekday: time.Saturday, Doctor: 2, Name: "Marta"}, second[6])
	})

	t.Run("pads the trailing week", func(t *testing.T) {
		// Arrange
		schedule := model.Schedule{0, 0, 0}

		// Act
		month, err := NewMonth(schedule, nil, time.Sunday)

		// Assert
		assert.Nil(t, err)
		assert.Len(t, month.Weeks, 1)
		assert.Equal(t, 3, month.Weeks[0][2].Day)
		assert.Equal(t, 0, month.Weeks[0][3].Day)
	})

	t.Run("falls back to numbered doctor names", func(t *testing.T) {
		month, err := NewMonth(model.Schedule{1}, nil, time.Sunday)

		assert.Nil(t, err)
		assert.Equal(t, "Doctor 2", month.Weeks[0][0].Name)
	})

	t.Run("rejects an empty schedule", func(t *testing.T) {
		_, err := NewMonth(model.Schedule{}, nil, time.Sunday)

		assert.NotNil(t, err)
	})
}

func TestTotals(t *testing.T) {
	totals := Totals(model.Schedule{0, 1, 1, 2, 1, 0}, 4)

	assert.Equal(t, []int{2, 3, 1, 0}, totals)
}

func TestColors(t *testing.T) {
	t.Run("assigns palette colors in index order", func(t *testing.T) {
		colors := Colors(3)

		assert.Equal(t, []string{"#1f77b4", "#ff7f0e", "#2ca02c"}, colors)
	})

	t.Run("cycles the palette beyond ten doctors", func(t *testing.T) {
		colors := Colors(12)

		assert.Equal(t, colors[0], colors[10])
		assert.Equal(t, colors[1], colors[11])
	})
}
