// Package greedy implements single-stepped Greedy Best-First Search over a
// tree.Tree.
//
// The frontier is a min-heap ordered by search.ByHeuristic: the node with
// the smallest heuristic h goes first, ties on h prefer the smaller
// accumulated path cost, then the smaller label, then the earlier push.
// Path cost and the heuristic sum along the path are tracked for reporting
// only; they never steer expansion beyond breaking ties.
//
// Greedy is fast when h is informative and makes no optimality promise:
// the goal it returns is simply the first one it pops.
//
// Complexity (V = nodes): O(V log V) time, O(V) memory.
package greedy
