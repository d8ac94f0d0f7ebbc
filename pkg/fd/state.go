package fd

import "math"

// State is one search worker's private, mutable view of the variable
// domains. States are cloned on every branch and never shared between
// workers; the underlying Problem stays read-only.
type State struct {
	problem *Problem
	domains []Domain
	dirty   []int
	queued  []bool
}

func newState(problem *Problem) *State {
	state := &State{
		problem: problem,
		domains: make([]Domain, len(problem.domains)),
		dirty:   make([]int, 0, len(problem.domains)),
		queued:  make([]bool, len(problem.domains)),
	}
	for variable := range problem.domains {
		state.domains[variable] = problem.domains[variable].Clone()
		state.touch(variable)
	}
	return state
}

func (state *State) clone() *State {
	cloned := &State{
		problem: state.problem,
		domains: make([]Domain, len(state.domains)),
		dirty:   make([]int, len(state.dirty)),
		queued:  make([]bool, len(state.queued)),
	}
	for variable := range state.domains {
		cloned.domains[variable] = state.domains[variable].Clone()
	}
	copy(cloned.dirty, state.dirty)
	copy(cloned.queued, state.queued)
	return cloned
}

// Domain exposes a variable's current domain for propagators to inspect.
func (state *State) Domain(variable int) *Domain {
	return &state.domains[variable]
}

// Fixed returns a variable's value when only one candidate remains.
func (state *State) Fixed(variable int) (int, bool) {
	domain := &state.domains[variable]
	if !domain.Fixed() {
		return 0, false
	}
	return domain.Value(), true
}

// Remove prunes a value from a variable's domain, reporting false on a
// wipeout. Pruning an already-absent value is a no-op.
func (state *State) Remove(variable, value int) bool {
	domain := &state.domains[variable]
	if !domain.Remove(value) {
		return true
	}
	if domain.Empty() {
		return false
	}
	state.touch(variable)
	return true
}

// Fix narrows a variable to a single value, reporting false when the value
// is no longer available.
func (state *State) Fix(variable, value int) bool {
	domain := &state.domains[variable]
	if domain.Fixed() {
		return domain.Value() == value
	}
	if !domain.Fix(value) {
		return false
	}
	state.touch(variable)
	return true
}

// IntersectPair narrows both variables to their common values, reporting
// false on a wipeout.
func (state *State) IntersectPair(x, y int) bool {
	first, second := &state.domains[x], &state.domains[y]
	if first.Intersect(second) {
		if first.Empty() {
			return false
		}
		state.touch(x)
	}
	if second.Intersect(first) {
		if second.Empty() {
			return false
		}
		state.touch(y)
	}
	return true
}

func (state *State) touch(variable int) {
	if !state.queued[variable] {
		state.queued[variable] = true
		state.dirty = append(state.dirty, variable)
	}
}

// propagate runs every constraint watching a narrowed variable until a
// fixpoint is reached, reporting false once any domain wipes out.
func (state *State) propagate() bool {
	for len(state.dirty) > 0 {
		variable := state.dirty[0]
		state.dirty = state.dirty[1:]
		state.queued[variable] = false

		for _, index := range state.problem.watchers[variable] {
			if !state.problem.constraints[index].Propagate(state) {
				return false
			}
		}
	}
	return true
}

func (state *State) solved() bool {
	for variable := range state.domains {
		if !state.domains[variable].Fixed() {
			return false
		}
	}
	return true
}

// selectVariable picks the unfixed variable with the fewest remaining
// values, or -1 when every variable is fixed.
func (state *State) selectVariable() int {
	best, bestCount := -1, math.MaxInt
	for variable := range state.domains {
		if count := state.domains[variable].Count(); count > 1 && count < bestCount {
			best, bestCount = variable, count
		}
	}
	return best
}

func (state *State) assignment() Solution {
	solution := make(Solution, len(state.domains))
	for variable := range state.domains {
		solution[variable] = state.domains[variable].Value()
	}
	return solution
}
