package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
)

// Iterative is a single-stepped iterative-deepening DFS.
type Iterative struct {
	search.Machine
	setup  *search.Setup
	next   search.NextLimitFunc
	cur    *walker
	round  int
	rounds []search.Iteration
}

// NewIterative prepares iterative deepening starting at depth limit.
// Later limits come from search.WithNextLimit; by default each round adds
// one to the limit until a round exhausts without cutoff.
func NewIterative(t *tree.Tree, goals []string, limit int, opts ...search.Option) (*Iterative, error) {
	s, err := search.Prepare(IterativeName, t, goals, opts...)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", search.ErrInvalidDepth, limit)
	}

	next := s.Opts.NextLimit
	if next == nil {
		next = deepenByOne
	}

	return &Iterative{
		setup: s,
		next:  next,
		cur:   newWalker(s, limit),
		round: 1,
	}, nil
}

// deepenByOne grows the limit while the previous round was cut off.
// A round without cutoff saw the whole reachable tree, so there is nothing
// deeper to find.
func deepenByOne(_, prev int, cutoff bool) (int, bool) {
	if !cutoff {
		return 0, false
	}

	return prev + 1, true
}

// Step processes one entry of the current round. When the round exhausts
// without a goal the next limit is requested immediately; the next round's
// first entry is processed by the following Step.
//
// A non-positive limit from the NextLimitFunc ends the search as Exhausted
// and Step returns search.ErrInvalidDepth alongside the event.
func (it *Iterative) Step() (search.StepEvent, error) {
	if err := it.Begin(); err != nil {
		return search.StepEvent{}, err
	}

	ev := it.cur.step()
	ev.Iteration = it.round

	var err error
	switch it.cur.state {
	case search.GoalFound:
		it.closeRound()
		it.Settle(search.GoalFound)
	case search.Exhausted:
		it.closeRound()
		limit, ok := it.next(it.round+1, it.cur.limit, it.cur.cutoff)
		switch {
		case !ok:
			it.Settle(search.Exhausted)
		case limit <= 0:
			it.Settle(search.Exhausted)
			err = fmt.Errorf("%w: round %d got %d", search.ErrInvalidDepth, it.round+1, limit)
		default:
			it.setup.Opts.Logger.Debug("deepening",
				"strategy", IterativeName, "round", it.round+1, "limit", limit)
			it.round++
			it.cur = newWalker(it.setup, limit)
		}
	}

	ev.State = it.State()
	it.setup.LogStep(ev)

	return ev, err
}

// Round returns the 1-based index of the current round and its limit.
func (it *Iterative) Round() (round, limit int) { return it.round, it.cur.limit }

// closeRound records the finished round.
func (it *Iterative) closeRound() {
	it.rounds = append(it.rounds, search.Iteration{
		Limit:  it.cur.limit,
		Order:  it.cur.order,
		Cutoff: it.cur.cutoff,
	})
}

// Result returns the outcome once the search is terminal. Order, Limit and
// Cutoff describe the last round; Iterations holds all of them.
func (it *Iterative) Result() (*search.Result, error) {
	if err := it.CheckDone(); err != nil {
		return nil, err
	}

	last := it.rounds[len(it.rounds)-1]
	r := it.setup.NewResult(it.State(), last.Order, it.cur.parent)
	if it.cur.found != "" {
		it.setup.RecordPath(r, it.cur.found, it.cur.parent)
	}
	r.Limit = last.Limit
	r.Cutoff = last.Cutoff
	r.Iterations = it.rounds

	return r, nil
}
