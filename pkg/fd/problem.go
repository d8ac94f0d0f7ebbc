package fd

// Problem is a finite-domain constraint problem: one domain per variable
// plus a registry of constraints over those variables. A Problem is built
// once and never mutated by the solver, so it can be shared freely between
// search workers.
type Problem struct {
	domains     []Domain
	constraints []Constraint
	watchers    [][]int // variable -> indices into constraints
}

// NewProblem creates a problem of the given number of variables, each
// ranging over [0, domainSize).
func NewProblem(variables, domainSize int) *Problem {
	problem := &Problem{
		domains:  make([]Domain, variables),
		watchers: make([][]int, variables),
	}
	for variable := range variables {
		problem.domains[variable] = NewDomain(domainSize)
	}
	return problem
}

// Variables returns the number of variables.
func (problem *Problem) Variables() int {
	return len(problem.domains)
}

// RemoveValue prunes a value from a variable's initial domain (a unary
// constraint).
func (problem *Problem) RemoveValue(variable, value int) {
	problem.domains[variable].Remove(value)
}

// Add registers a constraint and subscribes it to every variable in its
// scope, so propagation revisits it whenever one of them narrows.
func (problem *Problem) Add(constraint Constraint) {
	index := len(problem.constraints)
	problem.constraints = append(problem.constraints, constraint)
	for _, variable := range constraint.Scope() {
		problem.watchers[variable] = append(problem.watchers[variable], index)
	}
}
