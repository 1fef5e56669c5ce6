// Package search defines the step-execution contract shared by every lvltree
// strategy (dfs, bfs, ucs, greedy, astar), together with the pieces those
// strategies have in common: input validation, functional options, the
// node ordering comparators, a lazy-decrease-key priority frontier, and path
// reconstruction.
//
// State machine
//
//	Ready ──Step──▶ Stepping ──Step──▶ … ──▶ GoalFound | Exhausted
//
// Every Step pops exactly one live frontier entry, marks it visited, checks
// it against the goal set, expands its children, and returns a StepEvent.
// Entries for nodes that are already visited are discarded without emitting
// an event. Once a Searcher reaches GoalFound or Exhausted, further Step
// calls fail with ErrInvalidState and Result becomes available.
//
// Nothing in this package blocks, spawns goroutines, or keeps timers: the
// caller decides when to step. Run is a convenience drain loop for callers
// that want the whole search at once; it checks a context between steps.
//
// Ordering
//
// The node ordering relation is heuristic ascending, then accumulated path
// cost ascending, then label ascending (CompareNodes). Greedy orders its heap
// by it directly. UCS orders by (cost, label) and A* by (f, label); all heap
// orders fall back to insertion sequence, so every run is reproducible.
//
// Errors
//
//   - ErrEmptyTree        the tree is nil or has no root.
//   - ErrNoGoals          the goal set is empty.
//   - ErrUnknownGoal      a goal label is not in the tree (checked before any step).
//   - ErrInvalidDepth     a depth limit is not a positive integer.
//   - ErrInvalidState     Step after a terminal state, or Result before one.
//   - ErrNegativeCost     UCS/A* over a tree with a negative edge cost.
//   - ErrOptionViolation  an Option was given an invalid value.
//   - tree.ErrNotFound    the WithStart label does not resolve.
package search
