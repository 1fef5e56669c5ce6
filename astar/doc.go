// Package astar implements single-stepped A* search over a tree.Tree with
// support for several goals at once.
//
// Ordering
//
//	Frontier entries are keyed by f = g + h, where g is the accumulated
//	path cost from the start node and h the node's heuristic. Ties on f are
//	broken by label, then by insertion order (search.ByKey).
//
// Bookkeeping
//
//   - gScore: best-known g per label. A child is pushed only when the cost
//     through the current node is strictly better than its gScore
//     (relaxation); the superseded heap entry is dropped lazily.
//   - cameFrom: predecessor per label, walked backwards from a goal to
//     rebuild its path.
//   - closed: labels already expanded; they are never expanded again.
//
// Stopping
//
//	By default the search stops at the first goal popped. With
//	search.WithAllGoals it keeps going, expanding goal nodes like any
//	other, until every goal has been popped or the frontier is empty; each
//	goal gets its own path. If the frontier empties after at least one goal
//	was found the status is GoalFound and Result.Paths lists the goals
//	reached.
//
// With non-negative edge costs and an admissible h (never above the true
// remaining cost), the path returned for each goal is a cheapest one.
//
// Complexity (V = nodes): O(V log V) time, O(V) memory.
package astar
