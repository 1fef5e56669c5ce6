// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// Sentinel errors shared by all strategies.
var (
	// ErrEmptyTree is returned when a search is started on a nil or rootless tree.
	ErrEmptyTree = errors.New("search: tree is empty")

	// ErrNoGoals is returned when the goal set is empty.
	ErrNoGoals = errors.New("search: no goals given")

	// ErrUnknownGoal is returned when a goal label does not resolve in the tree.
	ErrUnknownGoal = errors.New("search: goal not in tree")

	// ErrInvalidDepth is returned when a depth limit is not a positive integer.
	ErrInvalidDepth = errors.New("search: depth limit must be positive")

	// ErrInvalidState is returned by Step once the search is terminal,
	// and by Result while it is not.
	ErrInvalidState = errors.New("search: invalid state")

	// ErrNegativeCost is returned by cost-guided strategies when an edge cost is negative.
	ErrNegativeCost = errors.New("search: negative path cost")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a goal that was not reached.
	ErrNoPath = errors.New("search: no path to goal")
)

// State is the lifecycle state of a Searcher.
type State int

const (
	// Ready: constructed, no step taken yet.
	Ready State = iota
	// Stepping: at least one step taken, frontier not exhausted.
	Stepping
	// GoalFound: terminal, at least one goal reached.
	GoalFound
	// Exhausted: terminal, frontier emptied (or deepening aborted) with no goal.
	Exhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "Ready"
	case Stepping:
		return "Stepping"
	case GoalFound:
		return "GoalFound"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further steps are allowed.
func (s State) Terminal() bool { return s == GoalFound || s == Exhausted }

// StepEvent describes one processed node. It carries only label-keyed
// data, enough for a presentation layer to highlight the node and its
// parent edge.
type StepEvent struct {
	// Node is the label of the node just processed.
	Node string

	// Parent is the label of the node it was reached from; empty when HasParent is false.
	Parent    string
	HasParent bool

	// Goal reports whether Node is in the goal set.
	Goal bool

	// Depth is the number of edges from the start node.
	Depth int

	// Cost is the accumulated path cost from the start node.
	Cost float64

	// Priority is the frontier key Node was popped with
	// (h for Greedy, g for UCS, f for A*, zero for DFS and BFS).
	Priority float64

	// Frontier lists the labels left in the frontier after expansion,
	// in the order they would be removed.
	Frontier []string

	// State is the searcher state after this step.
	State State

	// Iteration is the 1-based deepening round (iterative DFS only; 0 otherwise).
	Iteration int
}

// Iteration records one round of iterative deepening.
type Iteration struct {
	Limit  int
	Order  []string
	Cutoff bool
}

// Result is the terminal outcome of a search.
type Result struct {
	// Strategy names the strategy that produced the result.
	Strategy string

	// Status is GoalFound or Exhausted.
	Status State

	// Order lists processed labels in processing order. For iterative
	// deepening it is the order of the final round.
	Order []string

	// Paths maps each reached goal to its start→goal label path.
	Paths map[string][]string

	// Costs maps each reached goal to the summed edge costs along its path.
	Costs map[string]float64

	// HeuristicSums maps each reached goal to the summed heuristics along its path.
	HeuristicSums map[string]float64

	// Parent maps each processed label to the label it was reached from.
	Parent map[string]string

	// Cutoff reports that the depth limit pruned children (depth-limited and iterative DFS).
	Cutoff bool

	// Limit is the depth limit of the final round (depth-limited and iterative DFS).
	Limit int

	// Iterations holds every deepening round (iterative DFS only).
	Iterations []Iteration
}

// Found reports whether at least one goal was reached.
func (r *Result) Found() bool { return len(r.Paths) > 0 }

// Goals returns the reached goal labels, sorted.
func (r *Result) Goals() []string {
	out := make([]string, 0, len(r.Paths))
	for g := range r.Paths {
		out = append(out, g)
	}
	sort.Strings(out)

	return out
}

// PathTo returns the start→goal path recorded for goal.
func (r *Result) PathTo(goal string) ([]string, error) {
	p, ok := r.Paths[goal]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, goal)
	}

	return p, nil
}

// Searcher is a single-stepped search over a tree.
type Searcher interface {
	// Step processes one frontier entry.
	Step() (StepEvent, error)

	// State reports the current lifecycle state.
	State() State

	// Done reports whether State is terminal.
	Done() bool

	// Result returns the outcome once State is terminal.
	Result() (*Result, error)
}

// NextLimitFunc supplies the depth limit for the next deepening round.
// round is the 1-based index of the round about to start, prev the limit
// of the round that just exhausted and cutoff whether that round pruned
// any children. Returning ok == false ends the search as Exhausted.
type NextLimitFunc func(round, prev int, cutoff bool) (limit int, ok bool)

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// when the strategy constructor runs.
type Option func(*Options)

// Options holds the parameters shared by strategy constructors.
type Options struct {
	// Start is the label the search begins at; empty means the root.
	Start string

	// Logger receives one debug record per step.
	Logger *slog.Logger

	// AllGoals keeps A* running until every goal is reached (A* only).
	AllGoals bool

	// NextLimit drives iterative deepening (iterative DFS only).
	NextLimit NextLimitFunc

	err error
}

// DefaultOptions returns Options with:
//   - search from the root
//   - a logger that discards everything
//   - A* stopping at the first goal
//   - iterative deepening by +1 until a round finishes without cutoff
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.DiscardHandler),
		NextLimit: nil,
	}
}

// WithStart begins the search at label instead of the root.
func WithStart(label string) Option {
	return func(o *Options) {
		if label == "" {
			o.err = fmt.Errorf("%w: start label is empty", ErrOptionViolation)
			return
		}
		o.Start = label
	}
}

// WithLogger sets the logger used for per-step debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithAllGoals makes A* continue until every goal is reached or the
// frontier is exhausted. Other strategies ignore it.
func WithAllGoals() Option {
	return func(o *Options) { o.AllGoals = true }
}

// WithNextLimit installs the deepening policy for iterative DFS.
// Other strategies ignore it.
func WithNextLimit(fn NextLimitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.NextLimit = fn
		}
	}
}

// Limits returns a NextLimitFunc that walks through the given limits in
// order and then stops, the way a user typing successive limits would.
func Limits(limits ...int) NextLimitFunc {
	return func(round, _ int, _ bool) (int, bool) {
		// round 1 is the constructor limit, so round 2 reads limits[0]
		i := round - 2
		if i < 0 || i >= len(limits) {
			return 0, false
		}
		return limits[i], true
	}
}
