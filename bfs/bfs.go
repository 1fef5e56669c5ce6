package bfs

import (
	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
)

// Name is the strategy name reported in search.Result.Strategy.
const Name = "bfs"

// Search is a single-stepped breadth-first search.
type Search struct {
	search.Machine
	setup   *search.Setup
	queue   []*search.Item
	visited map[string]bool
	parent  map[string]string
	order   []string
	found   string
}

// New prepares a BFS from the root (or search.WithStart) to any label in goals.
func New(t *tree.Tree, goals []string, opts ...search.Option) (*Search, error) {
	s, err := search.Prepare(Name, t, goals, opts...)
	if err != nil {
		return nil, err
	}

	n := s.Size()
	b := &Search{
		setup:   s,
		queue:   make([]*search.Item, 0, n),
		visited: make(map[string]bool, n),
		parent:  make(map[string]string, n),
		order:   make([]string, 0, n),
	}
	// Seed queue with start node (no parent)
	b.enqueue(&search.Item{Node: s.Start})

	return b, nil
}

// Step dequeues the head of the queue and processes it.
func (b *Search) Step() (search.StepEvent, error) {
	if err := b.Begin(); err != nil {
		return search.StepEvent{}, err
	}

	item := b.dequeue()
	b.visit(item)

	goal := b.setup.IsGoal(item.Label())
	if goal {
		b.found = item.Label()
		b.Settle(search.GoalFound)
	} else {
		b.enqueueChildren(item)
		if len(b.queue) == 0 {
			b.Settle(search.Exhausted)
		}
	}

	ev := search.StepEvent{
		Node:      item.Label(),
		Parent:    item.Parent,
		HasParent: item.HasParent(),
		Goal:      goal,
		Depth:     item.Depth,
		Cost:      item.G,
		Frontier:  b.frontier(),
		State:     b.State(),
	}
	b.setup.LogStep(ev)

	return ev, nil
}

// Result returns the outcome once the search is terminal.
func (b *Search) Result() (*search.Result, error) {
	if err := b.CheckDone(); err != nil {
		return nil, err
	}

	r := b.setup.NewResult(b.State(), b.order, b.parent)
	if b.found != "" {
		b.setup.RecordPath(r, b.found, b.parent)
	}

	return r, nil
}

// enqueue appends item to the queue.
func (b *Search) enqueue(item *search.Item) {
	b.queue = append(b.queue, item)
}

// dequeue pops the head of the queue.
func (b *Search) dequeue() *search.Item {
	item := b.queue[0]
	b.queue[0] = nil
	b.queue = b.queue[1:]

	return item
}

// visit marks the item visited and records it in Order and Parent.
func (b *Search) visit(item *search.Item) {
	b.visited[item.Label()] = true
	b.order = append(b.order, item.Label())
	if item.HasParent() {
		b.parent[item.Label()] = item.Parent
	}
}

// enqueueChildren enqueues every unvisited child in insertion order.
func (b *Search) enqueueChildren(item *search.Item) {
	for _, c := range item.Node.Children() {
		if b.visited[c.Label] {
			continue
		}
		b.enqueue(&search.Item{
			Node:   c,
			Parent: item.Label(),
			Depth:  item.Depth + 1,
			G:      item.G + c.PathCost,
		})
	}
}

// frontier lists queued labels head first.
func (b *Search) frontier() []string {
	out := make([]string, len(b.queue))
	for i, item := range b.queue {
		out[i] = item.Label()
	}

	return out
}
