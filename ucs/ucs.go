package ucs

import (
	"math"

	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
)

// Name is the strategy name reported in search.Result.Strategy.
const Name = "ucs"

// Search is a single-stepped uniform-cost search.
type Search struct {
	search.Machine
	setup   *search.Setup
	pq      *search.Frontier
	dist    map[string]float64 // best-known g per label
	visited map[string]bool    // g is final
	parent  map[string]string
	order   []string
	found   string
}

// New prepares a UCS from the root (or search.WithStart) to any label in goals.
//
// Preconditions and validation (in order):
//  1. search.Prepare checks (tree, options, goals, start).
//  2. No edge below the start node has a negative cost (search.ErrNegativeCost).
func New(t *tree.Tree, goals []string, opts ...search.Option) (*Search, error) {
	s, err := search.Prepare(Name, t, goals, opts...)
	if err != nil {
		return nil, err
	}
	if err = s.CheckCosts(); err != nil {
		return nil, err
	}

	n := s.Size()
	u := &Search{
		setup:   s,
		pq:      search.NewFrontier(search.ByCost),
		dist:    make(map[string]float64, n),
		visited: make(map[string]bool, n),
		parent:  make(map[string]string, n),
		order:   make([]string, 0, n),
	}
	u.dist[s.Start.Label] = 0
	u.pq.Push(&search.Item{Node: s.Start})

	return u, nil
}

// Step pops the cheapest frontier entry and relaxes its children.
func (u *Search) Step() (search.StepEvent, error) {
	if err := u.Begin(); err != nil {
		return search.StepEvent{}, err
	}

	// 1) Pop the smallest-cost item; DropVisited keeps the top live.
	item := u.pq.Pop()
	label := item.Label()

	// 2) Its cost is now final.
	u.visited[label] = true
	u.order = append(u.order, label)
	if item.HasParent() {
		u.parent[label] = item.Parent
	}

	// 3) Goal check before expansion.
	goal := u.setup.IsGoal(label)
	if goal {
		u.found = label
		u.Settle(search.GoalFound)
	} else {
		u.relax(item)
		u.pq.DropVisited(u.visited)
		if u.pq.Len() == 0 {
			u.Settle(search.Exhausted)
		}
	}

	ev := search.StepEvent{
		Node:      label,
		Parent:    item.Parent,
		HasParent: item.HasParent(),
		Goal:      goal,
		Depth:     item.Depth,
		Cost:      item.G,
		Priority:  item.G,
		Frontier:  u.pq.Labels(u.visited),
		State:     u.State(),
	}
	u.setup.LogStep(ev)

	return ev, nil
}

// relax pushes every child whose cost through item is strictly better
// than the best known one.
func (u *Search) relax(item *search.Item) {
	for _, c := range item.Node.Children() {
		if u.visited[c.Label] {
			continue
		}
		newDist := item.G + c.PathCost
		if best, ok := u.dist[c.Label]; ok && newDist >= best {
			continue
		}
		u.dist[c.Label] = newDist
		u.pq.Push(&search.Item{
			Node:   c,
			Parent: item.Label(),
			Depth:  item.Depth + 1,
			G:      newDist,
			Key:    newDist,
		})
	}
}

// Distance returns the best-known cost to label, or +Inf if unseen.
func (u *Search) Distance(label string) float64 {
	if d, ok := u.dist[label]; ok {
		return d
	}

	return math.Inf(1)
}

// Result returns the outcome once the search is terminal.
func (u *Search) Result() (*search.Result, error) {
	if err := u.CheckDone(); err != nil {
		return nil, err
	}

	r := u.setup.NewResult(u.State(), u.order, u.parent)
	if u.found != "" {
		u.setup.RecordPath(r, u.found, u.parent)
	}

	return r, nil
}
