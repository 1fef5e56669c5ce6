package astar

import (
	"math"

	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
)

// Name is the strategy name reported in search.Result.Strategy.
const Name = "astar"

// WithAllGoals keeps the search running until every goal is reached.
// It is search.WithAllGoals under the strategy's own name.
func WithAllGoals() search.Option { return search.WithAllGoals() }

// Search is a single-stepped A* search.
type Search struct {
	search.Machine
	setup    *search.Setup
	open     *search.Frontier
	closed   map[string]bool
	gScore   map[string]float64
	cameFrom map[string]string
	order    []string
	found    []string
	reached  map[string]bool
	allGoals bool
}

// New prepares an A* search from the root (or search.WithStart). It stops
// at the first goal unless search.WithAllGoals is given.
//
// Edge costs below the start node must be non-negative (search.ErrNegativeCost).
func New(t *tree.Tree, goals []string, opts ...search.Option) (*Search, error) {
	s, err := search.Prepare(Name, t, goals, opts...)
	if err != nil {
		return nil, err
	}
	if err = s.CheckCosts(); err != nil {
		return nil, err
	}

	n := s.Size()
	a := &Search{
		setup:    s,
		open:     search.NewFrontier(search.ByKey),
		closed:   make(map[string]bool, n),
		gScore:   make(map[string]float64, n),
		cameFrom: make(map[string]string, n),
		order:    make([]string, 0, n),
		reached:  make(map[string]bool, len(s.Goals)),
		allGoals: s.Opts.AllGoals,
	}
	a.gScore[s.Start.Label] = 0
	a.open.Push(&search.Item{Node: s.Start, Key: s.Start.Heuristic})

	return a, nil
}

// Step pops the entry with the lowest f and expands it.
func (a *Search) Step() (search.StepEvent, error) {
	if err := a.Begin(); err != nil {
		return search.StepEvent{}, err
	}

	current := a.open.Pop()
	label := current.Label()
	a.closed[label] = true
	a.order = append(a.order, label)

	goal := a.setup.IsGoal(label)
	done := false
	if goal && !a.reached[label] {
		a.reached[label] = true
		a.found = append(a.found, label)
		done = !a.allGoals || len(a.reached) == len(a.setup.Goals)
	}

	if done {
		a.Settle(search.GoalFound)
	} else {
		a.expand(current)
		a.open.DropVisited(a.closed)
		if a.open.Len() == 0 {
			if len(a.found) > 0 {
				a.Settle(search.GoalFound)
			} else {
				a.Settle(search.Exhausted)
			}
		}
	}

	ev := search.StepEvent{
		Node:      label,
		Parent:    current.Parent,
		HasParent: current.HasParent(),
		Goal:      goal,
		Depth:     current.Depth,
		Cost:      current.G,
		Priority:  current.Key,
		Frontier:  a.open.Labels(a.closed),
		State:     a.State(),
	}
	a.setup.LogStep(ev)

	return ev, nil
}

// expand relaxes every child of current that is not closed.
func (a *Search) expand(current *search.Item) {
	for _, c := range current.Node.Children() {
		if a.closed[c.Label] {
			continue
		}
		tentative := a.gScore[current.Label()] + c.PathCost
		if best, ok := a.gScore[c.Label]; ok && tentative >= best {
			continue
		}
		a.cameFrom[c.Label] = current.Label()
		a.gScore[c.Label] = tentative
		a.open.Push(&search.Item{
			Node:   c,
			Parent: current.Label(),
			Depth:  current.Depth + 1,
			G:      tentative,
			Key:    tentative + c.Heuristic,
		})
	}
}

// GScore returns the best-known cost to label, or +Inf if unseen.
func (a *Search) GScore(label string) float64 {
	if g, ok := a.gScore[label]; ok {
		return g
	}

	return math.Inf(1)
}

// Reached returns the goals found so far, in the order they were popped.
func (a *Search) Reached() []string {
	out := make([]string, len(a.found))
	copy(out, a.found)

	return out
}

// Result returns the outcome once the search is terminal, with one path
// per goal reached.
func (a *Search) Result() (*search.Result, error) {
	if err := a.CheckDone(); err != nil {
		return nil, err
	}

	parent := make(map[string]string, len(a.order))
	for _, label := range a.order {
		if p, ok := a.cameFrom[label]; ok {
			parent[label] = p
		}
	}
	r := a.setup.NewResult(a.State(), a.order, parent)
	for _, g := range a.found {
		a.setup.RecordPath(r, g, a.cameFrom)
	}

	return r, nil
}
