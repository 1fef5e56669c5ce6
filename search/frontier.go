package search

import (
	"cmp"
	"container/heap"
	"sort"
	"strings"

	"github.com/katalvlaran/lvltree/tree"
)

// Item is one frontier entry: a node together with how it was reached.
type Item struct {
	Node   *tree.Node
	Parent string // empty for the start node
	Depth  int
	G      float64 // accumulated path cost from the start
	Key    float64 // the priority the entry was pushed with

	seq uint64
}

// Label returns the entry's node label.
func (it *Item) Label() string { return it.Node.Label }

// HasParent reports whether the entry was reached through an edge.
func (it *Item) HasParent() bool { return it.Depth > 0 }

// LessFunc orders frontier items; true means a is removed before b.
type LessFunc func(a, b *Item) bool

// CompareNodes is the node ordering relation: heuristic ascending, then
// accumulated path cost ascending (ga, gb), then label ascending.
func CompareNodes(a, b *tree.Node, ga, gb float64) int {
	if c := cmp.Compare(a.Heuristic, b.Heuristic); c != 0 {
		return c
	}
	if c := cmp.Compare(ga, gb); c != 0 {
		return c
	}

	return strings.Compare(a.Label, b.Label)
}

// ByHeuristic orders by CompareNodes, then insertion sequence (Greedy).
func ByHeuristic(a, b *Item) bool {
	if c := CompareNodes(a.Node, b.Node, a.G, b.G); c != 0 {
		return c < 0
	}

	return a.seq < b.seq
}

// ByCost orders by accumulated cost, then label, then insertion sequence (UCS).
func ByCost(a, b *Item) bool {
	if c := cmp.Compare(a.G, b.G); c != 0 {
		return c < 0
	}
	if c := strings.Compare(a.Label(), b.Label()); c != 0 {
		return c < 0
	}

	return a.seq < b.seq
}

// ByKey orders by Key, then label, then insertion sequence (A* with Key = g + h).
func ByKey(a, b *Item) bool {
	if c := cmp.Compare(a.Key, b.Key); c != 0 {
		return c < 0
	}
	if c := strings.Compare(a.Label(), b.Label()); c != 0 {
		return c < 0
	}

	return a.seq < b.seq
}

// Frontier is a min-heap of *Item ordered by a LessFunc.
//
// It follows the lazy decrease-key pattern: a node reached again with a
// better key is pushed a second time and the stale entry is dropped when it
// surfaces (see DropVisited).
type Frontier struct {
	h   itemHeap
	seq uint64
}

// NewFrontier creates an empty Frontier ordered by less.
func NewFrontier(less LessFunc) *Frontier {
	f := &Frontier{h: itemHeap{less: less}}
	heap.Init(&f.h)

	return f
}

// Push adds it, stamping its insertion sequence.
func (f *Frontier) Push(it *Item) {
	f.seq++
	it.seq = f.seq
	heap.Push(&f.h, it)
}

// Pop removes and returns the smallest entry, or nil when empty.
func (f *Frontier) Pop() *Item {
	if f.h.Len() == 0 {
		return nil
	}

	return heap.Pop(&f.h).(*Item)
}

// Len returns the number of entries, stale ones included.
func (f *Frontier) Len() int { return f.h.Len() }

// DropVisited pops entries off the top while their node is in visited,
// so that Len() == 0 exactly when no live entry remains.
func (f *Frontier) DropVisited(visited map[string]bool) {
	for f.h.Len() > 0 && visited[f.h.items[0].Label()] {
		heap.Pop(&f.h)
	}
}

// Labels returns the labels of all entries not in visited, in removal order.
func (f *Frontier) Labels(visited map[string]bool) []string {
	items := make([]*Item, 0, f.h.Len())
	for _, it := range f.h.items {
		if !visited[it.Label()] {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return f.h.less(items[i], items[j]) })

	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label()
	}

	return out
}

// itemHeap implements heap.Interface over *Item.
type itemHeap struct {
	items []*Item
	less  LessFunc
}

func (h itemHeap) Len() int           { return len(h.items) }
func (h itemHeap) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h itemHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *itemHeap) Push(x interface{}) { h.items = append(h.items, x.(*Item)) }

func (h *itemHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]

	return it
}
