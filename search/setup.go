package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/lvltree/tree"
)

// Setup is the validated input of one search run. Strategy constructors
// build it with Prepare and keep it for the lifetime of their Searcher.
type Setup struct {
	Strategy string
	Start    *tree.Node
	Goals    map[string]bool
	Opts     Options

	index map[string]*tree.Node
}

// Prepare validates a search request and resolves its start node.
//
// Checks, in order:
//  1. t is non-nil and has a root (ErrEmptyTree).
//  2. options are valid (ErrOptionViolation).
//  3. goals is non-empty (ErrNoGoals).
//  4. every goal resolves in t (ErrUnknownGoal).
//  5. the WithStart label, if any, resolves (tree.ErrNotFound).
//
// All checks run before any frontier exists, so a failing request never
// produces a StepEvent.
func Prepare(strategy string, t *tree.Tree, goals []string, opts ...Option) (*Setup, error) {
	if t == nil || t.Empty() {
		return nil, ErrEmptyTree
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(goals) == 0 {
		return nil, ErrNoGoals
	}

	s := &Setup{
		Strategy: strategy,
		Goals:    make(map[string]bool, len(goals)),
		Opts:     o,
		index:    make(map[string]*tree.Node, t.Len()),
	}
	t.Walk(func(n *tree.Node, _ int) bool {
		s.index[n.Label] = n
		return true
	})

	for _, g := range goals {
		if _, ok := s.index[g]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGoal, g)
		}
		s.Goals[g] = true
	}

	if o.Start == "" {
		s.Start = t.Root()
	} else if s.Start = s.index[o.Start]; s.Start == nil {
		return nil, fmt.Errorf("%w: start %q", tree.ErrNotFound, o.Start)
	}

	return s, nil
}

// IsGoal reports whether label is in the goal set.
func (s *Setup) IsGoal(label string) bool { return s.Goals[label] }

// Node returns the node for label as it was when Prepare ran.
func (s *Setup) Node(label string) *tree.Node { return s.index[label] }

// Size returns the node count seen by Prepare; it bounds the number of steps.
func (s *Setup) Size() int { return len(s.index) }

// CheckCosts fails with ErrNegativeCost when any edge reachable from the
// start node has a negative PathCost. The start node's own PathCost is
// never traversed and is not checked.
func (s *Setup) CheckCosts() error {
	var bad *tree.Node
	var scan func(n *tree.Node)
	scan = func(n *tree.Node) {
		for _, c := range n.Children() {
			if bad != nil {
				return
			}
			if c.PathCost < 0 {
				bad = c
				return
			}
			scan(c)
		}
	}
	scan(s.Start)
	if bad != nil {
		return fmt.Errorf("%w: edge to %q cost=%g", ErrNegativeCost, bad.Label, bad.PathCost)
	}

	return nil
}

// NewResult allocates an empty Result for this run.
func (s *Setup) NewResult(status State, order []string, parent map[string]string) *Result {
	return &Result{
		Strategy:      s.Strategy,
		Status:        status,
		Order:         order,
		Paths:         make(map[string][]string),
		Costs:         make(map[string]float64),
		HeuristicSums: make(map[string]float64),
		Parent:        parent,
	}
}

// RecordPath reconstructs the start→goal path by walking parent links
// backwards from goal, and stores it with its cost and heuristic sums.
func (s *Setup) RecordPath(r *Result, goal string, parent map[string]string) {
	path := Trace(parent, s.Start.Label, goal)

	var cost, hsum float64
	for i, label := range path {
		n := s.index[label]
		hsum += n.Heuristic
		if i > 0 {
			cost += n.PathCost
		}
	}
	r.Paths[goal] = path
	r.Costs[goal] = cost
	r.HeuristicSums[goal] = hsum
}

// Trace follows parent links from goal back to start and returns the
// path start→goal.
func Trace(parent map[string]string, start, goal string) []string {
	path := []string{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// LogStep emits the debug record for ev.
func (s *Setup) LogStep(ev StepEvent) {
	if !s.Opts.Logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	s.Opts.Logger.Debug("search step",
		slog.String("strategy", s.Strategy),
		slog.String("node", ev.Node),
		slog.String("parent", ev.Parent),
		slog.Bool("goal", ev.Goal),
		slog.Int("depth", ev.Depth),
		slog.Float64("cost", ev.Cost),
		slog.Any("frontier", ev.Frontier),
		slog.String("state", ev.State.String()),
	)
}

// GoalLabels returns the goal set sorted.
func (s *Setup) GoalLabels() []string {
	out := make([]string, 0, len(s.Goals))
	for g := range s.Goals {
		out = append(out, g)
	}
	sort.Strings(out)

	return out
}

// Machine holds the lifecycle state of a Searcher; strategies embed it.
type Machine struct {
	state State
}

// State reports the current lifecycle state.
func (m *Machine) State() State { return m.state }

// Done reports whether the machine is terminal.
func (m *Machine) Done() bool { return m.state.Terminal() }

// Begin must be called at the top of Step. It fails with ErrInvalidState
// once the machine is terminal and moves Ready to Stepping.
func (m *Machine) Begin() error {
	if m.state.Terminal() {
		return fmt.Errorf("%w: step after %s", ErrInvalidState, m.state)
	}
	m.state = Stepping

	return nil
}

// Settle moves the machine to st.
func (m *Machine) Settle(st State) { m.state = st }

// CheckDone fails with ErrInvalidState unless the machine is terminal.
func (m *Machine) CheckDone() error {
	if !m.state.Terminal() {
		return fmt.Errorf("%w: result requested in %s", ErrInvalidState, m.state)
	}

	return nil
}
