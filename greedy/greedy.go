package greedy

import (
	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
)

// Name is the strategy name reported in search.Result.Strategy.
const Name = "greedy"

// Search is a single-stepped greedy best-first search.
type Search struct {
	search.Machine
	setup   *search.Setup
	pq      *search.Frontier
	visited map[string]bool
	parent  map[string]string
	order   []string
	found   string
}

// New prepares a greedy search from the root (or search.WithStart) to any
// label in goals.
func New(t *tree.Tree, goals []string, opts ...search.Option) (*Search, error) {
	s, err := search.Prepare(Name, t, goals, opts...)
	if err != nil {
		return nil, err
	}

	n := s.Size()
	g := &Search{
		setup:   s,
		pq:      search.NewFrontier(search.ByHeuristic),
		visited: make(map[string]bool, n),
		parent:  make(map[string]string, n),
		order:   make([]string, 0, n),
	}
	g.pq.Push(&search.Item{Node: s.Start, Key: s.Start.Heuristic})

	return g, nil
}

// Step pops the most promising frontier entry and pushes its children.
func (g *Search) Step() (search.StepEvent, error) {
	if err := g.Begin(); err != nil {
		return search.StepEvent{}, err
	}

	item := g.pq.Pop()
	label := item.Label()
	g.visited[label] = true
	g.order = append(g.order, label)
	if item.HasParent() {
		g.parent[label] = item.Parent
	}

	goal := g.setup.IsGoal(label)
	if goal {
		g.found = label
		g.Settle(search.GoalFound)
	} else {
		for _, c := range item.Node.Children() {
			if g.visited[c.Label] {
				continue
			}
			g.pq.Push(&search.Item{
				Node:   c,
				Parent: label,
				Depth:  item.Depth + 1,
				G:      item.G + c.PathCost,
				Key:    c.Heuristic,
			})
		}
		g.pq.DropVisited(g.visited)
		if g.pq.Len() == 0 {
			g.Settle(search.Exhausted)
		}
	}

	ev := search.StepEvent{
		Node:      label,
		Parent:    item.Parent,
		HasParent: item.HasParent(),
		Goal:      goal,
		Depth:     item.Depth,
		Cost:      item.G,
		Priority:  item.Key,
		Frontier:  g.pq.Labels(g.visited),
		State:     g.State(),
	}
	g.setup.LogStep(ev)

	return ev, nil
}

// Result returns the outcome once the search is terminal.
// HeuristicSums carries the "total heuristic" of the winning path.
func (g *Search) Result() (*search.Result, error) {
	if err := g.CheckDone(); err != nil {
		return nil, err
	}

	r := g.setup.NewResult(g.State(), g.order, g.parent)
	if g.found != "" {
		g.setup.RecordPath(r, g.found, g.parent)
	}

	return r, nil
}
