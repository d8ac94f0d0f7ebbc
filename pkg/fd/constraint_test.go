package fd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	t.Run("narrows both sides to the common values", func(t *testing.T) {
		// Arrange
		problem := NewProblem(2, 4)
		problem.RemoveValue(0, 0)
		problem.RemoveValue(1, 3)
		state := newState(problem)

		// Act
		ok := Equal(0, 1).Propagate(state)

		// Assert
		assert.True(t, ok)
		assert.Equal(t, []int{1, 2}, state.Domain(0).Values())
		assert.Equal(t, []int{1, 2}, state.Domain(1).Values())
	})

	t.Run("fails on disjoint domains", func(t *testing.T) {
		problem := NewProblem(2, 2)
		problem.RemoveValue(0, 0)
		problem.RemoveValue(1, 1)
		state := newState(problem)

		assert.False(t, Equal(0, 1).Propagate(state))
	})
}

func TestCountAtMost(t *testing.T) {
	t.Run("prunes the value once the bound is reached", func(t *testing.T) {
		// Arrange: two of three variables already fixed to 1
		problem := NewProblem(3, 2)
		problem.RemoveValue(0, 0)
		problem.RemoveValue(1, 0)
		state := newState(problem)

		// Act
		ok := CountAtMost([]int{0, 1, 2}, 1, 2).Propagate(state)

		// Assert
		assert.True(t, ok)
		value, fixed := state.Fixed(2)
		assert.True(t, fixed)
		assert.Equal(t, 0, value)
	})

	t.Run("fails once the bound is exceeded", func(t *testing.T) {
		problem := NewProblem(2, 2)
		problem.RemoveValue(0, 0)
		problem.RemoveValue(1, 0)
		state := newState(problem)

		assert.False(t, CountAtMost([]int{0, 1}, 1, 1).Propagate(state))
	})
}

func TestCountAtLeast(t *testing.T) {
	t.Run("forces the last candidates", func(t *testing.T) {
		// Arrange: value 1 is only available to variables 0 and 1
		problem := NewProblem(3, 2)
		problem.RemoveValue(2, 1)
		state := newState(problem)

		// Act
		ok := CountAtLeast([]int{0, 1, 2}, 1, 2).Propagate(state)

		// Assert
		assert.True(t, ok)
		for _, variable := range []int{0, 1} {
			value, fixed := state.Fixed(variable)
			assert.True(t, fixed)
			assert.Equal(t, 1, value)
		}
	})

	t.Run("fails when too few candidates remain", func(t *testing.T) {
		problem := NewProblem(2, 2)
		problem.RemoveValue(0, 1)
		problem.RemoveValue(1, 1)
		state := newState(problem)

		assert.False(t, CountAtLeast([]int{0, 1}, 1, 1).Propagate(state))
	})

	t.Run("leaves slack untouched", func(t *testing.T) {
		problem := NewProblem(3, 2)
		state := newState(problem)

		assert.True(t, CountAtLeast([]int{0, 1, 2}, 1, 2).Propagate(state))
		assert.Equal(t, 2, state.Domain(0).Count())
	})
}

func TestAllDifferent(t *testing.T) {
	t.Run("prunes fixed values from the rest of the scope", func(t *testing.T) {
		// Arrange
		problem := NewProblem(3, 3)
		problem.RemoveValue(0, 1)
		problem.RemoveValue(0, 2)
		state := newState(problem)

		// Act
		ok := AllDifferent([]int{0, 1, 2}).Propagate(state)

		// Assert
		assert.True(t, ok)
		assert.False(t, state.Domain(1).Has(0))
		assert.False(t, state.Domain(2).Has(0))
	})

	t.Run("fails when no perfect matching exists", func(t *testing.T) {
		// Arrange: three variables squeezed into two values
		problem := NewProblem(3, 3)
		for variable := range 3 {
			problem.RemoveValue(variable, 2)
		}
		state := newState(problem)

		// Act & Assert
		assert.False(t, AllDifferent([]int{0, 1, 2}).Propagate(state))
	})
}
