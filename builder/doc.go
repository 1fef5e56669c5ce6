// Package builder generates deterministic tree fixtures for the lvltree
// search strategies: chains, stars, complete k-ary trees and random trees.
//
// What:
//
//   - BuildTree(bopts, cons...) creates an empty tree.Tree, resolves the
//     builder configuration and applies every Constructor in order.
//   - The first Constructor applied to an empty tree creates the root; later
//     ones hang their nodes under the existing root.
//   - Labels come from cfg.idFn over a running index ("N0", "N1", ...), so
//     composing constructors never collides.
//   - Edge costs come from the cost function, heuristics from the heuristic
//     function; both default to constants (1 and 0).
//
// Why:
//
//   - Reproducible inputs for tests, benchmarks and the lvltree CLI "gen"
//     command: same options, same seed and same constructor order give the
//     same tree, label for label.
//
// Determinism:
//
//	Stochastic constructors (Random) require an RNG (WithSeed or WithRand)
//	and draw from it in a fixed order: parent choice, then heuristic, then
//	cost, node by node.
//
// Errors:
//
//   - ErrTooFewNodes      size parameter below the constructor minimum.
//   - ErrNeedRandSource   Random without WithSeed/WithRand.
//   - ErrConstructFailed  nil Constructor, or the tree refused an insertion.
//
// Option constructors (WithX) panic on meaningless values, which only a
// programming error can produce; Constructors never panic.
//
// Complexity: every constructor is O(n) in the nodes it adds.
package builder
