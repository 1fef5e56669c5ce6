package astar_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/astar"
	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
)

type edge struct {
	parent, label string
	h, cost       float64
}

func build(t *testing.T, rootH float64, edges ...edge) *tree.Tree {
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

func run(t *testing.T, tr *tree.Tree, goals []string, opts ...search.Option) *search.Result {
	t.Helper()
	s, err := astar.New(tr, goals, opts...)
	require.NoError(t, err)
	res, err := search.Run(context.Background(), s, nil)
	require.NoError(t, err)

	return res
}

func TestAStar_Errors(t *testing.T) {
	_, err := astar.New(tree.New(), []string{"A"})
	assert.ErrorIs(t, err, search.ErrEmptyTree)

	tr := build(t, 0, edge{"A", "B", 0, -1})
	_, err = astar.New(tr, nil)
	assert.ErrorIs(t, err, search.ErrNoGoals)
	_, err = astar.New(tr, []string{"Z"})
	assert.ErrorIs(t, err, search.ErrUnknownGoal)
	_, err = astar.New(tr, []string{"B"})
	assert.ErrorIs(t, err, search.ErrNegativeCost)
}

// TestAStar_Scenario: A(h=5), B(h=3,cost=1), C(h=0,cost=4), goal C.
// f(B) = f(C) = 4, so the label breaks the tie and B is popped first.
func TestAStar_Scenario(t *testing.T) {
	tr := build(t, 5, edge{"A", "B", 3, 1}, edge{"A", "C", 0, 4})
	s, err := astar.New(tr, []string{"C"})
	require.NoError(t, err)

	ev, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, 5.0, ev.Priority)
	assert.Equal(t, []string{"B", "C"}, ev.Frontier)
	assert.Equal(t, 4.0, s.GScore("C"))
	assert.True(t, math.IsInf(s.GScore("Z"), 1))

	res, err := search.Run(context.Background(), s, nil)
	require.NoError(t, err)
	assert.Equal(t, search.GoalFound, res.Status)
	assert.Equal(t, astar.Name, res.Strategy)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Equal(t, []string{"A", "C"}, res.Paths["C"])
	assert.Equal(t, 4.0, res.Costs["C"])
	assert.Equal(t, []string{"C"}, s.Reached())
}

func twoGoals(t *testing.T) *tree.Tree {
	return build(t, 0,
		edge{"A", "B", 0, 2},
		edge{"A", "C", 0, 5},
		edge{"B", "D", 0, 1},
	)
}

func TestAStar_FirstGoalStops(t *testing.T) {
	res := run(t, twoGoals(t), []string{"C", "D"})
	assert.Equal(t, []string{"D"}, res.Goals())
	assert.Equal(t, []string{"A", "B", "D"}, res.Order)
}

func TestAStar_AllGoals(t *testing.T) {
	res := run(t, twoGoals(t), []string{"C", "D"}, search.WithAllGoals())

	assert.Equal(t, search.GoalFound, res.Status)
	require.Len(t, res.Paths, 2)
	assert.Equal(t, []string{"A", "B", "D"}, res.Paths["D"])
	assert.Equal(t, []string{"A", "C"}, res.Paths["C"])
	assert.Equal(t, 3.0, res.Costs["D"])
	assert.Equal(t, 5.0, res.Costs["C"])
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
}

func TestAStar_AllGoalsExpandsThroughGoal(t *testing.T) {
	// B is a goal with a goal below it; both must be reported
	tr := build(t, 0, edge{"A", "B", 0, 1}, edge{"B", "C", 0, 1})
	res := run(t, tr, []string{"B", "C"}, search.WithAllGoals())
	assert.Equal(t, []string{"B", "C"}, res.Goals())
	assert.Equal(t, []string{"A", "B", "C"}, res.Paths["C"])
}

func TestAStar_AllGoalsPartial(t *testing.T) {
	// C sits outside the subtree under B, so only D can be reached
	res := run(t, twoGoals(t), []string{"C", "D"}, search.WithAllGoals(), search.WithStart("B"))
	assert.Equal(t, search.GoalFound, res.Status)
	assert.Equal(t, []string{"D"}, res.Goals())
	assert.Equal(t, []string{"B", "D"}, res.Paths["D"])
}

func TestAStar_Exhausted(t *testing.T) {
	res := run(t, twoGoals(t), []string{"C"}, search.WithStart("B"))
	assert.Equal(t, search.Exhausted, res.Status)
	assert.False(t, res.Found())
	assert.Equal(t, []string{"B", "D"}, res.Order)

	_, err := res.PathTo("C")
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestAStar_HeuristicPrunesWork(t *testing.T) {
	// an informative h keeps A* off the expensive B branch entirely
	tr := build(t, 2,
		edge{"A", "B", 10, 1},
		edge{"A", "C", 1, 1},
		edge{"B", "E", 10, 1},
		edge{"C", "G", 0, 1},
	)
	res := run(t, tr, []string{"G"})
	assert.Equal(t, []string{"A", "C", "G"}, res.Order)
}

// randomTree builds n nodes N0..N(n-1) with random parents and costs, picks
// two goals and gives every node an admissible heuristic: half the cheapest
// remaining cost to a goal below it (or a flat 100 when there is none).
func randomTree(t *testing.T, rng *rand.Rand, n int) (*tree.Tree, []string, float64) {
	t.Helper()
	parent := make([]int, n)
	cost := make([]float64, n)
	dist := make([]float64, n)
	for i := 1; i < n; i++ {
		parent[i] = rng.Intn(i)
		cost[i] = float64(rng.Intn(10))
		dist[i] = dist[parent[i]] + cost[i]
	}

	g1, g2 := 1+rng.Intn(n-1), 1+rng.Intn(n-1)
	best := math.Min(dist[g1], dist[g2])

	rem := make([]float64, n)
	for i := range rem {
		rem[i] = math.Inf(1)
	}
	for _, g := range []int{g1, g2} {
		for a := g; ; a = parent[a] {
			rem[a] = math.Min(rem[a], dist[g]-dist[a])
			if a == 0 {
				break
			}
		}
	}
	h := func(i int) float64 {
		if math.IsInf(rem[i], 1) {
			return 100
		}
		return rem[i] / 2
	}

	tr := tree.New()
	_, err := tr.CreateRoot("N0", h(0), 0)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		_, err = tr.InsertChild(fmt.Sprintf("N%d", parent[i]), fmt.Sprintf("N%d", i), h(i), cost[i])
		require.NoError(t, err)
	}

	return tr, []string{fmt.Sprintf("N%d", g1), fmt.Sprintf("N%d", g2)}, best
}

func TestAStar_OptimalOnRandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 50; round++ {
		tr, goals, best := randomTree(t, rng, 30)

		res := run(t, tr, goals)
		require.True(t, res.Found(), "round %d", round)
		assert.Equal(t, best, res.Costs[res.Goals()[0]], "round %d", round)

		again := run(t, tr, goals)
		assert.Equal(t, res.Order, again.Order)
		assert.Equal(t, res.Paths, again.Paths)
	}
}
