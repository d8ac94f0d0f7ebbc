package fd

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// Constraint restricts the values its scope's variables may take
// simultaneously. Propagate narrows domains through the state and returns
// false on a domain wipeout. Every propagator must be checking-complete:
// once its whole scope is fixed it fails exactly on a violating assignment.
type Constraint interface {
	Scope() []int
	Propagate(state *State) bool
}

type equal struct {
	x, y int
}

// Equal constrains two variables to take the same value.
func Equal(x, y int) Constraint {
	return equal{x: x, y: y}
}

func (constraint equal) Scope() []int {
	return []int{constraint.x, constraint.y}
}

func (constraint equal) Propagate(state *State) bool {
	return state.IntersectPair(constraint.x, constraint.y)
}

type countAtMost struct {
	variables []int
	value     int
	max       int
}

// CountAtMost bounds from above how many of the variables may take the
// value.
func CountAtMost(variables []int, value, max int) Constraint {
	return countAtMost{variables: variables, value: value, max: max}
}

func (constraint countAtMost) Scope() []int {
	return constraint.variables
}

func (constraint countAtMost) Propagate(state *State) bool {
	fixed := 0
	for _, variable := range constraint.variables {
		if value, ok := state.Fixed(variable); ok && value == constraint.value {
			fixed++
		}
	}
	if fixed > constraint.max {
		return false
	} else if fixed < constraint.max {
		return true
	}

	// Bound reached: the value is no longer available to the rest of the scope
	for _, variable := range constraint.variables {
		if value, ok := state.Fixed(variable); ok && value == constraint.value {
			continue
		}
		if !state.Remove(variable, constraint.value) {
			return false
		}
	}
	return true
}

type countAtLeast struct {
	variables []int
	value     int
	min       int
}

// CountAtLeast bounds from below how many of the variables must take the
// value.
func CountAtLeast(variables []int, value, min int) Constraint {
	return countAtLeast{variables: variables, value: value, min: min}
}

func (constraint countAtLeast) Scope() []int {
	return constraint.variables
}

func (constraint countAtLeast) Propagate(state *State) bool {
	fixed, possible := 0, 0
	for _, variable := range constraint.variables {
		if !state.Domain(variable).Has(constraint.value) {
			continue
		}
		possible++
		if _, ok := state.Fixed(variable); ok {
			fixed++
		}
	}
	if possible < constraint.min {
		return false
	} else if fixed >= constraint.min || possible > constraint.min {
		return true
	}

	// Exactly enough candidates remain: all of them are forced
	for _, variable := range constraint.variables {
		if state.Domain(variable).Has(constraint.value) {
			if !state.Fix(variable, constraint.value) {
				return false
			}
		}
	}
	return true
}

type allDifferent struct {
	variables []int
}

// AllDifferent constrains the variables to take pairwise distinct values.
func AllDifferent(variables []int) Constraint {
	return allDifferent{variables: variables}
}

func (constraint allDifferent) Scope() []int {
	return constraint.variables
}

func (constraint allDifferent) Propagate(state *State) bool {
	//** Singleton pruning: a fixed value is gone for the rest of the scope
	for _, variable := range constraint.variables {
		value, ok := state.Fixed(variable)
		if !ok {
			continue
		}
		for _, other := range constraint.variables {
			if other == variable {
				continue
			}
			if !state.Remove(other, value) {
				return false
			}
		}
	}

	//** Feasibility: every variable must be matchable to a distinct value
	values := make(map[int]bool)
	for _, variable := range constraint.variables {
		for _, value := range state.Domain(variable).Values() {
			values[value] = true
		}
	}
	if len(values) < len(constraint.variables) {
		return false
	}

	variablesAny := lo.Map(constraint.variables, func(variable int, _ int) any { return variable })
	valuesAny := lo.Map(lo.Keys(values), func(value int, _ int) any { return value })

	neighbours := func(variableAny any, valueAny any) (bool, error) {
		return state.Domain(variableAny.(int)).Has(valueAny.(int)), nil
	}

	graph := lo.Must(bipartitegraph.NewBipartiteGraph(variablesAny, valuesAny, neighbours))
	return len(graph.LargestMatching()) == len(constraint.variables)
}
