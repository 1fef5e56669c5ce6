package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvltree/internal/treefile"
	"github.com/katalvlaran/lvltree/search"
	"github.com/katalvlaran/lvltree/tree"
)

// Comparison is one strategy's line in a compare run.
type Comparison struct {
	Strategy string
	Status   search.State
	Steps    int
	Goal     string // cheapest reached goal, empty if none
	Path     []string
	Cost     float64
	Err      error
}

func newCompareCommand(a *app) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "compare [STRATEGY...]",
		Short: "Run several strategies over the same tree side by side",
		Long: `Run every strategy (or the ones named) over the tree in --tree concurrently
and print one summary line each: status, steps taken, and the cheapest goal
path found.

A strategy that fails is reported on its line and does not stop the others.
With --limit unset, depth-limited and iterative use the tree height.

Examples:
  lvltree compare --tree tree.yaml --goal G
  lvltree compare bfs ucs astar --tree tree.yaml`,
		ValidArgs: Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compare(cmd, args, f)
		},
	}
	cmd.Flags().StringVarP(&f.treePath, "tree", "t", "", "tree definition file (YAML or JSON)")
	cmd.Flags().StringSliceVarP(&f.goals, "goal", "g", nil, "goal label (repeatable)")
	cmd.Flags().StringVar(&f.start, "start", "", "start label (default: root)")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "depth limit (depth-limited, iterative)")
	cmd.Flags().BoolVar(&f.allGoals, "all-goals", false, "keep going until every goal is reached (astar)")
	_ = cmd.MarkFlagRequired("tree")

	return cmd
}

func (a *app) compare(cmd *cobra.Command, names []string, f runFlags) error {
	strategies := Strategies()
	if len(names) > 0 {
		strategies = strategies[:0]
		for _, name := range names {
			s, err := Lookup(name)
			if err != nil {
				return err
			}
			strategies = append(strategies, s)
		}
	}

	file, err := treefile.Load(f.treePath)
	if err != nil {
		return err
	}
	f.merge(cmd, file)
	t, err := file.Build()
	if err != nil {
		return err
	}
	if file.Limit == 0 {
		file.Limit = max(t.Height(), 1)
	}

	runID := uuid.NewString()
	logger := a.logger.With(slog.String("run_id", runID))
	ctx, span := tracer.Start(cmd.Context(), "lvltree.compare", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.Int("strategies", len(strategies)),
		attribute.Int("nodes", t.Len()),
	))
	defer span.End()

	rows := make([]Comparison, len(strategies))
	g, gCtx := errgroup.WithContext(ctx)
	for i, strategy := range strategies {
		g.Go(func() error {
			rows[i] = compareOne(gCtx, logger.With(slog.String("strategy", strategy.Name)), strategy, t, file)
			return nil
		})
	}
	_ = g.Wait()
	if err = ctx.Err(); err != nil {
		return err
	}

	NewRenderer(cmd.OutOrStdout()).Comparisons(rows)

	return nil
}

// compareOne runs a single strategy to completion. Failures land in the row.
func compareOne(ctx context.Context, logger *slog.Logger, strategy Strategy, t *tree.Tree, file *treefile.File) Comparison {
	row := Comparison{Strategy: strategy.Name}

	opts := []search.Option{search.WithLogger(logger)}
	if file.Start != "" {
		opts = append(opts, search.WithStart(file.Start))
	}
	if file.AllGoals {
		opts = append(opts, search.WithAllGoals())
	}
	s, err := strategy.New(t, file.Goals, Params{Limit: file.Limit, Options: opts})
	if err != nil {
		row.Err = err
		return row
	}

	began := time.Now()
	res, err := search.Run(ctx, s, func(search.StepEvent) error {
		row.Steps++
		return nil
	})
	if err != nil {
		logger.Warn("compare run failed", slog.String("error", err.Error()))
		row.Err = err
		return row
	}
	recordRun(ctx, strategy.Name, res.Status.String(), row.Steps, time.Since(began))

	row.Status = res.Status
	for _, goal := range res.Goals() {
		if row.Goal == "" || res.Costs[goal] < row.Cost {
			row.Goal, row.Path, row.Cost = goal, res.Paths[goal], res.Costs[goal]
		}
	}

	return row
}
