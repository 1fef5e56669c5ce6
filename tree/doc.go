// Package tree provides the labeled, rooted tree that every lvltree search
// strategy runs over.
//
// A Tree owns a single root Node. Every other Node is attached to exactly one
// parent's ordered children list when it is inserted, and the model offers no
// way to re-parent it afterwards, so the structure is always a tree: no
// cycles, no shared children.
//
// Node fields:
//
//	Label     string   // unique across the tree; the identity key
//	Heuristic float64  // estimated remaining cost to a goal (Greedy, A*)
//	PathCost  float64  // cost of the edge parent→node (0 for the root)
//
// Children keep insertion order. DFS and BFS use that order to break ties,
// so building the same tree twice always yields the same traversals.
//
// Core Methods:
//
//	CreateRoot(label, h, cost) (*Node, error)            // O(1)
//	InsertChild(parent, label, h, cost) (*Node, error) // O(V)
//	Find(label) *Node                                  // O(V) pre-order
//	FindParent(label) *Node                            // O(V) pre-order
//	RemoveNode(label) error                            // O(V)
//	Depth(label) (int, error), Height() int, Len() int, Walk(fn), Clear()
//
// Errors:
//
//	ErrEmptyLabel      – zero-length label
//	ErrRootExists      – CreateRoot on a tree that already has a root
//	ErrEmptyTree       – operation needs a root and there is none
//	ErrNotFound        – label (or parent label) does not resolve
//	ErrDuplicateLabel  – label already used somewhere in the tree
//	ErrHasChildren     – RemoveNode on a node that still has children
//
// Concurrency:
//
//	Tree methods take an internal sync.RWMutex. Search strategies read
//	Node.Children directly while they step, so mutating a tree while a
//	search over it is in progress is the caller's responsibility.
package tree
