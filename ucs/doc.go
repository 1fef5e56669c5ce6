// Package ucs implements single-stepped Uniform-Cost Search over a tree.Tree.
//
// Overview:
//
//   - UCS always expands the frontier node with the smallest accumulated
//     path cost g from the start node, so the first goal it pops is reached
//     by a cheapest path (edge costs must be non-negative).
//   - Ties on g are broken by label, then by insertion order.
//   - It is Dijkstra's algorithm stopped at the first goal.
//
// Performance and complexity:
//
//   - Time:  O(V log V), one push and one pop per node.
//   - Space: O(V) for the heap, cost table and parent map.
//
// Notes on implementation choices:
//
//   - The whole reachable tree is scanned for negative PathCost before the
//     first step (search.ErrNegativeCost), so a run never starts on input
//     it cannot answer correctly.
//   - The heap uses lazy decrease-key: a better cost pushes a fresh entry
//     and the stale one is dropped when it reaches the top.
package ucs
