package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/dfs"
	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
)

// buildSample creates:
//
//	        A
//	     /  |  \
//	    B   C   D
//	   / \      |
//	  E   G     F
func buildSample(t *testing.T) *tree.Tree {
	t.Helper()
	tr := tree.New()
	_, err := tr.CreateRoot("A", 5, 0)
	require.NoError(t, err)
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "C"}, {"A", "D"},
		{"B", "E"}, {"B", "G"},
		{"D", "F"},
	} {
		_, err = tr.InsertChild(e[0], e[1], 1, 1)
		require.NoError(t, err)
	}

	return tr
}

// buildChain creates N0→N1→…→N(n-1).
func buildChain(t *testing.T, n int) *tree.Tree {
	t.Helper()
	tr := tree.New()
	_, err := tr.CreateRoot("N0", 0, 0)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		_, err = tr.InsertChild(label(i-1), label(i), 0, 1)
		require.NoError(t, err)
	}

	return tr
}

func label(i int) string { return "N" + string(rune('0'+i)) }

func drain(t *testing.T, s search.Searcher) ([]search.StepEvent, *search.Result) {
	t.Helper()
	var events []search.StepEvent
	res, err := search.Run(context.Background(), s, func(ev search.StepEvent) error {
		events = append(events, ev)
		return nil
	})
	require.NoError(t, err)

	return events, res
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.New(nil, []string{"A"})
	assert.ErrorIs(t, err, search.ErrEmptyTree)

	_, err = dfs.New(tree.New(), []string{"A"})
	assert.ErrorIs(t, err, search.ErrEmptyTree)

	tr := buildSample(t)
	_, err = dfs.New(tr, nil)
	assert.ErrorIs(t, err, search.ErrNoGoals)

	_, err = dfs.New(tr, []string{"F", "nope"})
	assert.ErrorIs(t, err, search.ErrUnknownGoal)

	_, err = dfs.New(tr, []string{"F"}, search.WithStart("nope"))
	assert.ErrorIs(t, err, tree.ErrNotFound)

	_, err = dfs.New(tr, []string{"F"}, search.WithStart(""))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	for _, limit := range []int{0, -1} {
		_, err = dfs.NewLimited(tr, []string{"F"}, limit)
		assert.ErrorIs(t, err, search.ErrInvalidDepth)
		_, err = dfs.NewIterative(tr, []string{"F"}, limit)
		assert.ErrorIs(t, err, search.ErrInvalidDepth)
	}
}

func TestDFS_OrderAndPath(t *testing.T) {
	s, err := dfs.New(buildSample(t), []string{"F"})
	require.NoError(t, err)
	assert.Equal(t, search.Ready, s.State())

	events, res := drain(t, s)
	assert.Equal(t, search.GoalFound, res.Status)
	assert.Equal(t, dfs.Name, res.Strategy)
	assert.Equal(t, []string{"A", "B", "E", "G", "C", "D", "F"}, res.Order)
	assert.Equal(t, []string{"A", "D", "F"}, res.Paths["F"])
	assert.Equal(t, 2.0, res.Costs["F"])
	assert.Len(t, events, 7)

	// first step: root, no parent, children pushed so first child is on top
	first := events[0]
	assert.Equal(t, "A", first.Node)
	assert.False(t, first.HasParent)
	assert.Equal(t, []string{"B", "C", "D"}, first.Frontier)
	assert.Equal(t, search.Stepping, first.State)

	last := events[len(events)-1]
	assert.True(t, last.Goal)
	assert.Equal(t, "D", last.Parent)
	assert.Equal(t, 2, last.Depth)
	assert.Equal(t, search.GoalFound, last.State)
}

func TestDFS_FirstGoalWins(t *testing.T) {
	s, err := dfs.New(buildSample(t), []string{"F", "G"})
	require.NoError(t, err)
	_, res := drain(t, s)
	assert.Equal(t, []string{"G"}, res.Goals())
	assert.Equal(t, []string{"A", "B", "G"}, res.Paths["G"])
}

func TestDFS_Exhausted(t *testing.T) {
	s, err := dfs.New(buildSample(t), []string{"F"}, search.WithStart("B"))
	require.NoError(t, err)

	events, res := drain(t, s)
	assert.Equal(t, search.Exhausted, res.Status)
	assert.False(t, res.Found())
	assert.Equal(t, []string{"B", "E", "G"}, res.Order)
	assert.Empty(t, events[len(events)-1].Frontier)

	_, err = res.PathTo("F")
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestDFS_InvalidState(t *testing.T) {
	s, err := dfs.New(buildSample(t), []string{"A"})
	require.NoError(t, err)

	_, err = s.Result()
	assert.ErrorIs(t, err, search.ErrInvalidState)

	ev, err := s.Step()
	require.NoError(t, err)
	assert.True(t, ev.Goal)
	assert.Equal(t, search.GoalFound, s.State())

	_, err = s.Step()
	assert.ErrorIs(t, err, search.ErrInvalidState)

	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Paths["A"])
}

func TestDFS_Deterministic(t *testing.T) {
	tr := buildSample(t)
	var orders [][]string
	for i := 0; i < 3; i++ {
		s, err := dfs.New(tr, []string{"F"})
		require.NoError(t, err)
		_, res := drain(t, s)
		orders = append(orders, res.Order)
	}
	assert.Equal(t, orders[0], orders[1])
	assert.Equal(t, orders[1], orders[2])
}

func TestLimited_Cutoff(t *testing.T) {
	s, err := dfs.NewLimited(buildSample(t), []string{"F"}, 1)
	require.NoError(t, err)

	events, res := drain(t, s)
	assert.Equal(t, search.Exhausted, res.Status)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.True(t, res.Cutoff, "B and D had children beyond the limit")
	assert.Equal(t, 1, res.Limit)
	for _, ev := range events {
		assert.LessOrEqual(t, ev.Depth, 1)
	}
}

func TestLimited_DeadEnd(t *testing.T) {
	s, err := dfs.NewLimited(buildSample(t), []string{"F"}, 5, search.WithStart("B"))
	require.NoError(t, err)
	_, res := drain(t, s)
	assert.Equal(t, search.Exhausted, res.Status)
	assert.False(t, res.Cutoff, "nothing below E and G")
}

func TestLimited_NeverDeeperThanLimit(t *testing.T) {
	tr := buildChain(t, 8)
	for limit := 1; limit <= 8; limit++ {
		s, err := dfs.NewLimited(tr, []string{"N7"}, limit)
		require.NoError(t, err)
		events, res := drain(t, s)
		for _, ev := range events {
			assert.LessOrEqual(t, ev.Depth, limit)
		}
		if limit >= 7 {
			assert.Equal(t, search.GoalFound, res.Status, "limit %d", limit)
		} else {
			assert.Equal(t, search.Exhausted, res.Status, "limit %d", limit)
			assert.Len(t, res.Order, limit+1)
		}
	}
}

func TestIterative_DefaultDeepening(t *testing.T) {
	s, err := dfs.NewIterative(buildSample(t), []string{"F"}, 1)
	require.NoError(t, err)

	events, res := drain(t, s)
	assert.Equal(t, search.GoalFound, res.Status)
	assert.Equal(t, dfs.IterativeName, res.Strategy)
	require.Len(t, res.Iterations, 2)
	assert.Equal(t, 1, res.Iterations[0].Limit)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Iterations[0].Order)
	assert.True(t, res.Iterations[0].Cutoff)
	assert.Equal(t, 2, res.Iterations[1].Limit)
	assert.Equal(t, []string{"A", "B", "E", "G", "C", "D", "F"}, res.Order)
	assert.Equal(t, []string{"A", "D", "F"}, res.Paths["F"])
	assert.Equal(t, 2, res.Limit)

	// 4 steps in round one, 7 in round two
	require.Len(t, events, 11)
	assert.Equal(t, 1, events[3].Iteration)
	assert.Equal(t, search.Stepping, events[3].State, "round exhaustion is not terminal")
	assert.Equal(t, 2, events[4].Iteration)
	assert.Equal(t, "A", events[4].Node)
}

func TestIterative_FindsDeepGoal(t *testing.T) {
	s, err := dfs.NewIterative(buildChain(t, 8), []string{"N7"}, 1)
	require.NoError(t, err)
	_, res := drain(t, s)
	assert.Equal(t, search.GoalFound, res.Status)
	assert.Len(t, res.Iterations, 7)
	assert.Len(t, res.Paths["N7"], 8)
}

func TestIterative_StopsWithoutCutoff(t *testing.T) {
	s, err := dfs.NewIterative(buildSample(t), []string{"F"}, 1, search.WithStart("B"))
	require.NoError(t, err)
	_, res := drain(t, s)
	assert.Equal(t, search.Exhausted, res.Status)
	assert.Len(t, res.Iterations, 1)
}

func TestIterative_UserLimits(t *testing.T) {
	// the user aborts after the first round
	s, err := dfs.NewIterative(buildSample(t), []string{"F"}, 1, search.WithNextLimit(search.Limits()))
	require.NoError(t, err)
	_, res := drain(t, s)
	assert.Equal(t, search.Exhausted, res.Status)
	assert.Len(t, res.Iterations, 1)

	// the user enters 1 again, then 3
	s, err = dfs.NewIterative(buildSample(t), []string{"F"}, 1, search.WithNextLimit(search.Limits(1, 3)))
	require.NoError(t, err)
	_, res = drain(t, s)
	assert.Equal(t, search.GoalFound, res.Status)
	require.Len(t, res.Iterations, 3)
	assert.Equal(t, []int{1, 1, 3}, []int{res.Iterations[0].Limit, res.Iterations[1].Limit, res.Iterations[2].Limit})
	round, limit := s.Round()
	assert.Equal(t, 3, round)
	assert.Equal(t, 3, limit)
}

func TestIterative_InvalidNextLimit(t *testing.T) {
	bad := func(int, int, bool) (int, bool) { return 0, true }
	s, err := dfs.NewIterative(buildSample(t), []string{"F"}, 1, search.WithNextLimit(bad))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = s.Step()
		require.NoError(t, err)
	}
	// the fourth step exhausts round one and asks for the next limit
	_, err = s.Step()
	assert.ErrorIs(t, err, search.ErrInvalidDepth)
	assert.Equal(t, search.Exhausted, s.State())

	_, err = s.Step()
	assert.ErrorIs(t, err, search.ErrInvalidState)
}
