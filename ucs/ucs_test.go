package ucs_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
	"github.com/katalvlaran/lvltree/ucs"
)

type edge struct {
	parent, label string
	h, cost       float64
}

func build(t *testing.T, rootH float64, edges []edge) *tree.Tree {
	t.Helper()
	tr := tree.New()
	_, err := tr.CreateRoot("A", rootH, 0)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = tr.InsertChild(e.parent, e.label, e.h, e.cost)
		require.NoError(t, err)
	}

	return tr
}

func run(t *testing.T, tr *tree.Tree, goals ...string) *search.Result {
	t.Helper()
	s, err := ucs.New(tr, goals)
	require.NoError(t, err)
	res, err := search.Run(context.Background(), s, nil)
	require.NoError(t, err)

	return res
}

func TestUCS_Errors(t *testing.T) {
	_, err := ucs.New(tree.New(), []string{"A"})
	assert.ErrorIs(t, err, search.ErrEmptyTree)

	tr := build(t, 0, []edge{{"A", "B", 0, 1}, {"B", "C", 0, -2}})
	_, err = ucs.New(tr, []string{"X"})
	assert.ErrorIs(t, err, search.ErrUnknownGoal)
	_, err = ucs.New(tr, []string{"C"})
	assert.ErrorIs(t, err, search.ErrNegativeCost)

	// the negative edge is not reachable from C itself
	_, err = ucs.New(tr, []string{"C"}, search.WithStart("C"))
	assert.NoError(t, err)
}

// TestUCS_Scenario: A(h=5) with B(h=3,cost=1) and C(h=0,cost=4), goal C.
func TestUCS_Scenario(t *testing.T) {
	tr := build(t, 5, []edge{{"A", "B", 3, 1}, {"A", "C", 0, 4}})
	res := run(t, tr, "C")
	assert.Equal(t, search.GoalFound, res.Status)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order, "cheaper B is expanded first")
	assert.Equal(t, []string{"A", "C"}, res.Paths["C"])
	assert.Equal(t, 4.0, res.Costs["C"])
}

func TestUCS_CheapestGoal(t *testing.T) {
	// Y is one edge away but expensive; X is two cheap edges away.
	tr := build(t, 0, []edge{
		{"A", "Y", 0, 5},
		{"A", "B", 0, 1},
		{"B", "X", 0, 1},
	})
	res := run(t, tr, "X", "Y")
	assert.Equal(t, []string{"X"}, res.Goals())
	assert.Equal(t, []string{"A", "B", "X"}, res.Paths["X"])
	assert.Equal(t, 2.0, res.Costs["X"])
}

func TestUCS_TieBreakByLabel(t *testing.T) {
	tr := build(t, 0, []edge{
		{"A", "P", 0, 2},
		{"A", "M", 0, 2},
		{"A", "Z", 0, 1},
	})
	s, err := ucs.New(tr, []string{"P"})
	require.NoError(t, err)

	ev, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "M", "P"}, ev.Frontier)

	res, err := search.Run(context.Background(), s, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Z", "M", "P"}, res.Order)
	assert.Equal(t, 2.0, s.Distance("P"))
	assert.True(t, math.IsInf(s.Distance("nope"), 1))
}

func TestUCS_Exhausted(t *testing.T) {
	tr := build(t, 0, []edge{{"A", "B", 0, 1}, {"A", "C", 0, 1}})
	s, err := ucs.New(tr, []string{"C"}, search.WithStart("B"))
	require.NoError(t, err)
	ev, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, ev.State)
	assert.Empty(t, ev.Frontier)
	_, err = s.Step()
	assert.ErrorIs(t, err, search.ErrInvalidState)
}

// randomTree builds a tree of n nodes where node i hangs under a random
// earlier node with a random non-negative cost.
func randomTree(t *testing.T, rng *rand.Rand, n int) *tree.Tree {
	t.Helper()
	edges := make([]edge, 0, n-1)
	for i := 1; i < n; i++ {
		parent := "A"
		if p := rng.Intn(i); p > 0 {
			parent = fmt.Sprintf("N%d", p)
		}
		edges = append(edges, edge{parent, fmt.Sprintf("N%d", i), float64(rng.Intn(10)), float64(rng.Intn(10))})
	}

	return build(t, 0, edges)
}

// cheapest walks every root→node path and returns the minimum cost to any goal.
func cheapest(tr *tree.Tree, goals map[string]bool) float64 {
	best := math.Inf(1)
	var walk func(n *tree.Node, g float64)
	walk = func(n *tree.Node, g float64) {
		if goals[n.Label] && g < best {
			best = g
		}
		for _, c := range n.Children() {
			walk(c, g+c.PathCost)
		}
	}
	walk(tr.Root(), 0)

	return best
}

func TestUCS_OptimalOnRandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		tr := randomTree(t, rng, 30)
		goals := []string{fmt.Sprintf("N%d", 1+rng.Intn(29)), fmt.Sprintf("N%d", 1+rng.Intn(29))}
		set := map[string]bool{goals[0]: true, goals[1]: true}

		res := run(t, tr, goals...)
		require.True(t, res.Found(), "round %d", round)
		goal := res.Goals()[0]
		assert.Equal(t, cheapest(tr, set), res.Costs[goal], "round %d", round)
		assert.LessOrEqual(t, len(res.Order), tr.Len())

		// same input, same output
		again := run(t, tr, goals...)
		assert.Equal(t, res.Order, again.Order)
		assert.Equal(t, res.Paths, again.Paths)
	}
}
