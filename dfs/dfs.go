package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
)

// Strategy names reported in search.Result.Strategy.
const (
	Name          = "dfs"
	LimitedName   = "depth-limited"
	IterativeName = "iterative"
)

// noLimit disables depth limiting.
const noLimit = -1

// Search is a single-stepped depth-first search, unbounded or depth-limited.
type Search struct {
	search.Machine
	w *walker
}

// New prepares an unbounded DFS from the root (or search.WithStart) to any
// label in goals.
func New(t *tree.Tree, goals []string, opts ...search.Option) (*Search, error) {
	s, err := search.Prepare(Name, t, goals, opts...)
	if err != nil {
		return nil, err
	}

	return &Search{w: newWalker(s, noLimit)}, nil
}

// NewLimited prepares a DFS that never descends below depth limit.
// limit must be positive (search.ErrInvalidDepth).
func NewLimited(t *tree.Tree, goals []string, limit int, opts ...search.Option) (*Search, error) {
	s, err := search.Prepare(LimitedName, t, goals, opts...)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", search.ErrInvalidDepth, limit)
	}

	return &Search{w: newWalker(s, limit)}, nil
}

// Step pops the top of the stack and processes it.
func (d *Search) Step() (search.StepEvent, error) {
	if err := d.Begin(); err != nil {
		return search.StepEvent{}, err
	}
	ev := d.w.step()
	d.Settle(d.w.state)
	ev.State = d.State()
	d.w.setup.LogStep(ev)

	return ev, nil
}

// Result returns the outcome once the search is terminal.
func (d *Search) Result() (*search.Result, error) {
	if err := d.CheckDone(); err != nil {
		return nil, err
	}

	return d.w.result(), nil
}

// walker holds the mutable state of one depth-limited pass.
type walker struct {
	setup   *search.Setup
	limit   int
	stack   []*search.Item
	visited map[string]bool
	parent  map[string]string
	order   []string
	cutoff  bool
	found   string
	state   search.State
}

// newWalker seeds a fresh pass with the start node on the stack.
func newWalker(s *search.Setup, limit int) *walker {
	n := s.Size()
	w := &walker{
		setup:   s,
		limit:   limit,
		stack:   make([]*search.Item, 0, n),
		visited: make(map[string]bool, n),
		parent:  make(map[string]string, n),
		order:   make([]string, 0, n),
		state:   search.Ready,
	}
	w.stack = append(w.stack, &search.Item{Node: s.Start})

	return w
}

// step processes one entry; the caller guarantees the stack is non-empty.
func (w *walker) step() search.StepEvent {
	w.state = search.Stepping

	it := w.pop()
	label := it.Label()
	w.visited[label] = true
	w.order = append(w.order, label)
	if it.HasParent() {
		w.parent[label] = it.Parent
	}

	goal := w.setup.IsGoal(label)
	if goal {
		w.found = label
		w.state = search.GoalFound
	} else {
		w.expand(it)
		w.dropVisited()
		if len(w.stack) == 0 {
			w.state = search.Exhausted
		}
	}

	return search.StepEvent{
		Node:      label,
		Parent:    it.Parent,
		HasParent: it.HasParent(),
		Goal:      goal,
		Depth:     it.Depth,
		Cost:      it.G,
		Frontier:  w.frontier(),
	}
}

// pop removes the top entry.
func (w *walker) pop() *search.Item {
	it := w.stack[len(w.stack)-1]
	w.stack[len(w.stack)-1] = nil
	w.stack = w.stack[:len(w.stack)-1]

	return it
}

// dropVisited discards already-visited entries from the top so that the
// next pop is always live.
func (w *walker) dropVisited() {
	for len(w.stack) > 0 && w.visited[w.stack[len(w.stack)-1].Label()] {
		w.pop()
	}
}

// expand pushes the children of it in reverse order, honoring the depth limit.
func (w *walker) expand(it *search.Item) {
	children := it.Node.Children()
	if w.limit != noLimit && it.Depth >= w.limit {
		if len(children) > 0 {
			w.cutoff = true
		}
		return
	}
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if w.visited[c.Label] {
			continue
		}
		w.stack = append(w.stack, &search.Item{
			Node:   c,
			Parent: it.Label(),
			Depth:  it.Depth + 1,
			G:      it.G + c.PathCost,
		})
	}
}

// frontier lists stack labels top first.
func (w *walker) frontier() []string {
	out := make([]string, 0, len(w.stack))
	for i := len(w.stack) - 1; i >= 0; i-- {
		out = append(out, w.stack[i].Label())
	}

	return out
}

func (w *walker) result() *search.Result {
	r := w.setup.NewResult(w.state, w.order, w.parent)
	if w.found != "" {
		w.setup.RecordPath(r, w.found, w.parent)
	}
	if w.limit != noLimit {
		r.Limit = w.limit
		r.Cutoff = w.cutoff
	}

	return r
}
