// Package lvltree is a step-by-step playground for the classic tree search
// strategies: build a labeled tree, pick a strategy, and advance it one
// processed node at a time.
//
// 🚀 What is lvltree?
//
//	A small, deterministic library that brings together:
//		• Tree model: labeled nodes with a heuristic estimate and an edge cost
//		• Uninformed search: DFS, depth-limited DFS, iterative deepening, BFS
//		• Cost-guided search: Uniform-Cost Search
//		• Informed search: Greedy Best-First, A* (single goal or all goals)
//
// ✨ Why choose lvltree?
//
//   - Stepped – every strategy is a state machine; the caller owns the loop
//   - Observable – each Step returns the node, its parent and the frontier
//   - Reproducible – ties always break by cost, then label, then insertion
//   - Pure core – tree and search packages depend on nothing but the stdlib
//
// Layout:
//
//	tree/    - Node, Tree, creation, lookup and removal
//	search/  - shared state machine, options, comparators, priority frontier
//	dfs/     - DFS, depth-limited DFS, iterative deepening
//	bfs/     - breadth-first search
//	ucs/     - uniform-cost search
//	greedy/  - greedy best-first search
//	astar/   - A* search
//	builder/ - deterministic tree generators (chain, star, k-ary, random)
//	cmd/lvltree - command line runner for YAML/JSON tree files
//
// Quick ASCII example:
//
//	        A (h=5)
//	       / \
//	  1   /   \  4
//	     B     C (h=0, goal)
//	  (h=3)
//
//	greedy pops A then C; ucs pops A, B, C; both return A → C.
//
//	go get github.com/katalvlaran/lvltree
package lvltree
