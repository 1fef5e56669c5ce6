package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvltree/astar"
	"github.com/katalvlaran/lvltree/bfs"
	"github.com/katalvlaran/lvltree/dfs"
	"github.com/katalvlaran/lvltree/greedy"
	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
	"github.com/katalvlaran/lvltree/ucs"
)

// ErrUnknownStrategy is returned by Lookup for a name not in the registry.
var ErrUnknownStrategy = errors.New("cli: unknown strategy")

// Params carries the per-run arguments a strategy constructor may need.
type Params struct {
	// Limit is the depth limit (depth-limited) or the first round's limit
	// (iterative, where zero means 1). Other strategies ignore it.
	Limit int

	// Options are passed through to the constructor.
	Options []search.Option
}

// Strategy is a registry entry.
type Strategy struct {
	Name    string
	Summary string
	New     func(t *tree.Tree, goals []string, p Params) (search.Searcher, error)
}

var registry = []Strategy{
	{
		Name:    dfs.Name,
		Summary: "depth-first, LIFO stack, children in insertion order",
		New: func(t *tree.Tree, goals []string, p Params) (search.Searcher, error) {
			return searcher(dfs.New(t, goals, p.Options...))
		},
	},
	{
		Name:    dfs.LimitedName,
		Summary: "depth-first, never below --limit",
		New: func(t *tree.Tree, goals []string, p Params) (search.Searcher, error) {
			return searcher(dfs.NewLimited(t, goals, p.Limit, p.Options...))
		},
	},
	{
		Name:    dfs.IterativeName,
		Summary: "depth-limited rounds from --limit, +1 per round while cut off",
		New: func(t *tree.Tree, goals []string, p Params) (search.Searcher, error) {
			limit := p.Limit
			if limit == 0 {
				limit = 1
			}
			return searcher(dfs.NewIterative(t, goals, limit, p.Options...))
		},
	},
	{
		Name:    bfs.Name,
		Summary: "breadth-first, FIFO queue, fewest edges",
		New: func(t *tree.Tree, goals []string, p Params) (search.Searcher, error) {
			return searcher(bfs.New(t, goals, p.Options...))
		},
	},
	{
		Name:    ucs.Name,
		Summary: "uniform-cost, cheapest accumulated path first",
		New: func(t *tree.Tree, goals []string, p Params) (search.Searcher, error) {
			return searcher(ucs.New(t, goals, p.Options...))
		},
	},
	{
		Name:    greedy.Name,
		Summary: "greedy best-first, lowest heuristic first",
		New: func(t *tree.Tree, goals []string, p Params) (search.Searcher, error) {
			return searcher(greedy.New(t, goals, p.Options...))
		},
	},
	{
		Name:    astar.Name,
		Summary: "A*, lowest cost plus heuristic first; --all-goals for every goal",
		New: func(t *tree.Tree, goals []string, p Params) (search.Searcher, error) {
			return searcher(astar.New(t, goals, p.Options...))
		},
	},
}

// searcher keeps a failed constructor from leaking a typed nil into the interface.
func searcher[S search.Searcher](s S, err error) (search.Searcher, error) {
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Strategies returns the registry in display order.
func Strategies() []Strategy {
	out := make([]Strategy, len(registry))
	copy(out, registry)

	return out
}

// Names returns the registered strategy names in display order.
func Names() []string {
	out := make([]string, len(registry))
	for i, s := range registry {
		out[i] = s.Name
	}

	return out
}

// Lookup finds a strategy by name, case-insensitively.
func Lookup(name string) (Strategy, error) {
	for _, s := range registry {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}

	return Strategy{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
}
