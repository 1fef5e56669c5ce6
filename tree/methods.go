// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Node lifecycle (create, insert, remove) & label queries.
//
// Determinism:
//   - Find, FindParent, Walk and Labels all traverse pre-order, children in insertion order.

package tree

import "fmt"

// CreateRoot creates the root node of t.
//
// Errors:
//   - ErrEmptyLabel if label == "".
//   - ErrRootExists if t already has a root.
//
// Complexity: O(1).
func (t *Tree) CreateRoot(label string, heuristic, pathCost float64) (*Node, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root != nil {
		return nil, fmt.Errorf("%w: %q", ErrRootExists, t.root.Label)
	}
	t.root = &Node{Label: label, Heuristic: heuristic, PathCost: pathCost}
	t.size = 1

	return t.root, nil
}

// InsertChild appends a new node labeled label to the children of parentLabel.
// The new node becomes the parent's last child.
//
// Errors:
//   - ErrEmptyLabel if label == "".
//   - ErrEmptyTree if t has no root.
//   - ErrNotFound if parentLabel does not resolve.
//   - ErrDuplicateLabel if label is already present.
//
// Complexity: O(V) for the two pre-order lookups.
func (t *Tree) InsertChild(parentLabel, label string, heuristic, pathCost float64) (*Node, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root == nil {
		return nil, ErrEmptyTree
	}
	parent := find(t.root, parentLabel)
	if parent == nil {
		return nil, fmt.Errorf("%w: parent %q", ErrNotFound, parentLabel)
	}
	if find(t.root, label) != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}

	child := &Node{Label: label, Heuristic: heuristic, PathCost: pathCost}
	parent.children = append(parent.children, child)
	t.size++

	return child, nil
}

// Find returns the node labeled label, or nil if there is none.
// The search is pre-order from the root and returns the first match.
func (t *Tree) Find(label string) *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return find(t.root, label)
}

// Has reports whether label resolves to a node.
func (t *Tree) Has(label string) bool { return t.Find(label) != nil }

// FindParent returns the node whose children contain label.
// It returns nil for the root and for unknown labels.
func (t *Tree) FindParent(label string) *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return findParent(t.root, label)
}

// RemoveNode detaches the node labeled label from its parent and discards it.
// Removing a childless root leaves the tree empty.
//
// Errors:
//   - ErrEmptyTree if t has no root.
//   - ErrNotFound if label does not resolve.
//   - ErrHasChildren if the node still has children; t is left unchanged.
func (t *Tree) RemoveNode(label string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root == nil {
		return ErrEmptyTree
	}
	n := find(t.root, label)
	if n == nil {
		return fmt.Errorf("%w: %q", ErrNotFound, label)
	}
	if len(n.children) > 0 {
		return fmt.Errorf("%w: %q has %d", ErrHasChildren, label, len(n.children))
	}

	if n == t.root {
		t.root = nil
		t.size = 0
		return nil
	}

	parent := findParent(t.root, label)
	kept := parent.children[:0]
	for _, c := range parent.children {
		if c.Label != label {
			kept = append(kept, c)
		}
	}
	// clear the tail so the removed node is not retained by the backing array
	for i := len(kept); i < len(parent.children); i++ {
		parent.children[i] = nil
	}
	parent.children = kept
	t.size--

	return nil
}

// Clear drops the root and every node beneath it.
func (t *Tree) Clear() {
	t.mu.Lock()
	t.root = nil
	t.size = 0
	t.mu.Unlock()
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.root
}

// Empty reports whether the tree has no root.
func (t *Tree) Empty() bool { return t.Root() == nil }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.size
}

// Depth returns the number of edges between the root and label.
func (t *Tree) Depth(label string) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	depth := -1
	walk(t.root, 0, func(n *Node, d int) bool {
		if n.Label == label {
			depth = d
			return false
		}
		return true
	})
	if depth < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, label)
	}

	return depth, nil
}

// Height returns the depth of the deepest node, or -1 for an empty tree.
func (t *Tree) Height() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	h := -1
	walk(t.root, 0, func(_ *Node, d int) bool {
		if d > h {
			h = d
		}
		return true
	})

	return h
}

// Walk visits every node pre-order, passing its depth. Returning false from
// fn stops the walk. fn must not mutate t.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	walk(t.root, 0, fn)
}

// Labels returns every label in pre-order.
func (t *Tree) Labels() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]string, 0, t.size)
	walk(t.root, 0, func(n *Node, _ int) bool {
		out = append(out, n.Label)
		return true
	})

	return out
}

// find is the unlocked pre-order lookup.
func find(cur *Node, label string) *Node {
	if cur == nil {
		return nil
	}
	if cur.Label == label {
		return cur
	}
	for _, c := range cur.children {
		if r := find(c, label); r != nil {
			return r
		}
	}

	return nil
}

// findParent is the unlocked pre-order parent lookup.
func findParent(cur *Node, label string) *Node {
	if cur == nil {
		return nil
	}
	for _, c := range cur.children {
		if c.Label == label {
			return cur
		}
		if r := findParent(c, label); r != nil {
			return r
		}
	}

	return nil
}

// walk returns false once fn asked to stop.
func walk(cur *Node, depth int, fn func(*Node, int) bool) bool {
	if cur == nil {
		return true
	}
	if !fn(cur, depth) {
		return false
	}
	for _, c := range cur.children {
		if !walk(c, depth+1, fn) {
			return false
		}
	}

	return true
}
