// Package bfs provides a single-stepped breadth-first search over a tree.Tree.
//
// What
//
//   - Processes nodes level by level from the start node (the root unless
//     search.WithStart says otherwise), children in insertion order.
//   - Each Step dequeues one node, marks it visited, checks it against the
//     goal set and, if it is not a goal, enqueues its unvisited children.
//   - The first goal dequeued ends the search; an empty queue ends it as
//     Exhausted.
//   - Result.Order is the full traversal order, not only the winning path.
//
// Why
//
//   - The path found is the one with the fewest edges, though not
//     necessarily the cheapest (use ucs or astar for that).
//
// Determinism
//
//	Children are enqueued in insertion order, so the visit order of a given
//	tree never changes between runs.
//
// Complexity (V = nodes)
//
//   - Time:   O(V)
//   - Memory: O(V) for the queue, visited set and parent map.
//
// Usage
//
//	s, err := bfs.New(t, []string{"G"})
//	if err != nil {
//		// ErrEmptyTree, ErrNoGoals, ErrUnknownGoal, ErrOptionViolation or tree.ErrNotFound
//	}
//	for !s.State().Terminal() {
//		ev, _ := s.Step()
//		render(ev)
//	}
//	res, _ := s.Result()
package bfs
