package fd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// Status is the verdict of a solve call.
type Status int

const (
	// Feasible means a complete assignment satisfying every constraint was
	// found.
	Feasible Status = iota
	// Infeasible means the search proved that no satisfying assignment
	// exists.
	Infeasible
	// Unknown means the time budget (or the caller's context) ran out before
	// either verdict was reached.
	Unknown
)

func (status Status) String() string {
	switch status {
	case Feasible:
		return "feasible"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Solution maps each variable index to its assigned value.
type Solution []int

// Config carries the settings of a single solve call. It always travels as
// an explicit value: the engine reads no ambient state.
type Config struct {
	TimeLimit time.Duration
	Workers   int
	Seed      *int64 // makes the traversal order reproducible when set
}

type workerResult struct {
	solution  Solution
	exhausted bool
	err       error
}

// Solve searches for an assignment satisfying every constraint of the
// problem. The first branching variable's values are dealt round-robin to
// the workers, so each worker owns a disjoint share of the search space;
// within its share a worker runs an exhaustive depth-first search with
// propagation to fixpoint at every node.
//
// Without a seed the first worker to find a solution wins and the others
// are cancelled cooperatively. With a seed the lowest-indexed successful
// worker wins instead, which makes the returned assignment reproducible for
// a fixed worker count.
func Solve(ctx context.Context, problem *Problem, config Config) (Solution, Status, error) {
	if config.Workers < 1 {
		return nil, Unknown, fmt.Errorf("number of workers must be positive: %v", config.Workers)
	} else if config.TimeLimit <= 0 {
		return nil, Unknown, fmt.Errorf("time limit must be positive: %v", config.TimeLimit)
	}

	ctx, cancel := context.WithTimeout(ctx, config.TimeLimit)
	defer cancel()

	//** Root propagation
	root := newState(problem)
	if !root.propagate() {
		return nil, Infeasible, nil
	} else if root.solved() {
		return root.assignment(), Feasible, nil
	}

	//** Partition the search space across workers
	branch := root.selectVariable()
	values := root.Domain(branch).Values()

	shares := make([][]int, config.Workers)
	for i, value := range values {
		shares[i%config.Workers] = append(shares[i%config.Workers], value)
	}

	//** Race the workers
	var winner atomic.Int64
	winner.Store(int64(config.Workers)) // sentinel above every worker index

	results := make([]workerResult, config.Workers)
	var group sync.WaitGroup

	for index := range config.Workers {
		if len(shares[index]) == 0 {
			results[index].exhausted = true // an empty share is vacuously exhausted
			continue
		}

		group.Add(1)
		go func(index int, share []int) {
			defer group.Done()
			defer func() {
				if recovered := recover(); recovered != nil {
					results[index].err = fmt.Errorf("worker %v panicked: %v", index, recovered)
				}
			}()

			searcher := &worker{
				index:  index,
				ctx:    ctx,
				winner: &winner,
			}
			if config.Seed != nil {
				searcher.rng = rand.New(rand.NewPCG(uint64(*config.Seed), uint64(index)))
			}

			solution, exhausted := searcher.run(root, branch, share)
			results[index].exhausted = exhausted
			if solution == nil {
				return
			}

			results[index].solution = solution
			claim(&winner, int64(index))
			if config.Seed == nil {
				cancel() // first worker across the line wins, stop the rest
			}
		}(index, shares[index])
	}

	group.Wait()

	//** Publish the verdict
	for _, result := range results {
		if result.err != nil {
			return nil, Unknown, result.err
		}
	}

	if best := winner.Load(); best < int64(config.Workers) {
		return results[best].solution, Feasible, nil
	}

	for _, result := range results {
		if !result.exhausted {
			return nil, Unknown, nil
		}
	}
	return nil, Infeasible, nil
}

// claim lowers the winner slot to the given index, never raising it.
func claim(winner *atomic.Int64, index int64) {
	for {
		current := winner.Load()
		if index >= current || winner.CompareAndSwap(current, index) {
			return
		}
	}
}

// worker owns one share of the search space. Its search state is private;
// only the winner slot and the context are shared with its peers.
type worker struct {
	index       int
	ctx         context.Context
	winner      *atomic.Int64
	rng         *rand.Rand
	interrupted bool
}

func (searcher *worker) run(root *State, branch int, share []int) (solution Solution, exhausted bool) {
	searcher.shuffle(share)
	for _, value := range share {
		child := root.clone()
		if !child.Fix(branch, value) || !child.propagate() {
			continue
		}
		if solution := searcher.search(child); solution != nil {
			return solution, false
		}
		if searcher.interrupted {
			return nil, false
		}
	}
	return nil, !searcher.interrupted
}

func (searcher *worker) search(state *State) Solution {
	if searcher.stopped() {
		searcher.interrupted = true
		return nil
	}
	if state.solved() {
		return state.assignment()
	}

	variable := state.selectVariable()
	values := state.Domain(variable).Values()
	searcher.shuffle(values)

	for _, value := range values {
		child := state.clone()
		if !child.Fix(variable, value) || !child.propagate() {
			continue
		}
		if solution := searcher.search(child); solution != nil {
			return solution
		}
		if searcher.interrupted {
			return nil
		}
	}
	return nil
}

func (searcher *worker) shuffle(values []int) {
	if searcher.rng != nil {
		searcher.rng.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
	}
}

func (searcher *worker) stopped() bool {
	select {
	case <-searcher.ctx.Done():
		return true
	default:
	}
	// A lower-indexed worker already won; in seeded mode lower-indexed
	// workers keep running so the final pick stays reproducible.
	return searcher.winner.Load() < int64(searcher.index)
}
