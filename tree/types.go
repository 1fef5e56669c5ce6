// SPDX-License-Identifier: MIT

package tree

import (
	"errors"
	"sync"
)

// Sentinel errors for tree operations.
var (
	// ErrEmptyLabel indicates that the provided label is the empty string.
	ErrEmptyLabel = errors.New("tree: label is empty")

	// ErrRootExists indicates CreateRoot was called on a tree that already has a root.
	ErrRootExists = errors.New("tree: root already exists")

	// ErrEmptyTree indicates the operation needs a root and the tree has none.
	ErrEmptyTree = errors.New("tree: tree is empty")

	// ErrNotFound indicates a label (node or parent) does not resolve.
	ErrNotFound = errors.New("tree: node not found")

	// ErrDuplicateLabel indicates the label is already used in the tree.
	ErrDuplicateLabel = errors.New("tree: duplicate label")

	// ErrHasChildren indicates RemoveNode was refused because the node still owns children.
	ErrHasChildren = errors.New("tree: node has children")
)

// Node is a labeled vertex of the tree.
//
// Label is the identity key: two nodes are the same node iff their labels
// are equal. Heuristic and PathCost are fixed at insertion.
type Node struct {
	// Label uniquely identifies this Node within its Tree.
	Label string

	// Heuristic is the estimated remaining cost from this node to a goal.
	Heuristic float64

	// PathCost is the cost of the edge from the parent to this node (0 for the root).
	PathCost float64

	children []*Node
}

// Children returns the node's children in insertion order.
// The returned slice is the node's own storage and must not be modified.
func (n *Node) Children() []*Node { return n.children }

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Tree is a rooted tree of Nodes with globally unique labels.
//
// The zero value is not usable; construct with New.
type Tree struct {
	mu   sync.RWMutex // guards root and size
	root *Node
	size int
}

// New creates an empty Tree.
// Complexity: O(1)
func New() *Tree {
	return &Tree{}
}
