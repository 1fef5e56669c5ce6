// Package dfs implements single-stepped depth-first search over a tree.Tree
// in three flavours:
//
//   - New(t, goals, opts...)              unbounded DFS.
//   - NewLimited(t, goals, limit, ...)    depth-limited DFS.
//   - NewIterative(t, goals, limit, ...)  iterative deepening over depth-limited DFS.
//
// Discipline
//
//	The frontier is an explicit LIFO stack. Children are pushed in reverse
//	insertion order so the first child is popped first, giving the same
//	visit order as the recursive pre-order walk:
//
//	      A
//	     / \        order: A B D C
//	    B   C
//	    |
//	    D
//
// Each Step pops one entry, marks it visited, checks it against the goal
// set, and (if it is not a goal) pushes its children. The first goal popped
// ends the search; an empty stack ends it as Exhausted.
//
// Depth limiting
//
//	Stack entries carry their depth. With limit L, a node at depth d only
//	pushes its children when d < L, so no node deeper than L is ever
//	visited. Result.Cutoff reports whether the limit pruned any children,
//	which tells a dead end (Cutoff == false) apart from a search that ran
//	out of depth.
//
// Iterative deepening
//
//	NewIterative runs depth-limited rounds. When a round exhausts without a
//	goal, the NextLimitFunc installed with search.WithNextLimit is asked for
//	the next limit; the default adds one and stops once a round finishes
//	without cutoff. Every round starts from a fresh stack, visited set and
//	parent map. The step that exhausts a round and the first step of the
//	next round are separate Step calls.
//
// Complexity (V = nodes):
//
//   - Time:   O(V) per round.
//   - Memory: O(V) for the stack, visited set and parent map.
//
// Errors:
//
//   - search.ErrEmptyTree, search.ErrNoGoals, search.ErrUnknownGoal,
//     search.ErrOptionViolation, tree.ErrNotFound (from search.Prepare).
//   - search.ErrInvalidDepth if a limit is not positive.
//   - search.ErrInvalidState on Step after a terminal state.
package dfs
