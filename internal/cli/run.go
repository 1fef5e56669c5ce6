package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvltree/internal/treefile"
	"github.com/katalvlaran/lvltree/search"
)

type runFlags struct {
	treePath string
	goals    []string
	start    string
	limit    int
	allGoals bool
	quiet    bool
}

func newRunCommand(a *app) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run STRATEGY",
		Short: "Run a strategy over a tree file, one step per line",
		Long: `Run a search strategy over the tree in --tree and print every step.

Goals, start node, depth limit and all-goals mode default to the values in
the tree file (and LVLTREE_* environment overrides); flags take precedence.

Examples:
  lvltree run dfs --tree tree.yaml --goal G
  lvltree run depth-limited --tree tree.yaml --goal G --limit 2
  lvltree run ucs --tree tree.yaml --goal G --start B --quiet`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.treePath, "tree", "t", "", "tree definition file (YAML or JSON)")
	cmd.Flags().StringSliceVarP(&f.goals, "goal", "g", nil, "goal label (repeatable)")
	cmd.Flags().StringVar(&f.start, "start", "", "start label (default: root)")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "depth limit (depth-limited, iterative)")
	cmd.Flags().BoolVar(&f.allGoals, "all-goals", false, "keep going until every goal is reached (astar)")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "print only the result")
	_ = cmd.MarkFlagRequired("tree")

	return cmd
}

// merge applies flags the user actually set on top of the file defaults.
func (f runFlags) merge(cmd *cobra.Command, file *treefile.File) {
	flags := cmd.Flags()
	if flags.Changed("goal") {
		file.Goals = f.goals
	}
	if flags.Changed("start") {
		file.Start = f.start
	}
	if flags.Changed("limit") {
		file.Limit = f.limit
	}
	if flags.Changed("all-goals") {
		file.AllGoals = f.allGoals
	}
}

func (a *app) run(cmd *cobra.Command, name string, f runFlags) error {
	strategy, err := Lookup(name)
	if err != nil {
		return err
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

	runID := uuid.NewString()
	logger := a.logger.With(
		slog.String("run_id", runID),
		slog.String("strategy", strategy.Name),
	)

	opts := []search.Option{search.WithLogger(logger)}
	if file.Start != "" {
		opts = append(opts, search.WithStart(file.Start))
	}
	if file.AllGoals {
		opts = append(opts, search.WithAllGoals())
	}
	s, err := strategy.New(t, file.Goals, Params{Limit: file.Limit, Options: opts})
	if err != nil {
		return fmt.Errorf("%s: %w", strategy.Name, err)
	}

	ctx, span := tracer.Start(cmd.Context(), "lvltree.run", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.String("strategy", strategy.Name),
		attribute.Int("nodes", t.Len()),
		attribute.StringSlice("goals", file.Goals),
	))
	defer span.End()

	logger.Info("search started", slog.Int("nodes", t.Len()), slog.Any("goals", file.Goals))
	began := time.Now()

	out := NewRenderer(cmd.OutOrStdout())
	steps := 0
	res, err := search.Run(ctx, s, func(ev search.StepEvent) error {
		steps++
		span.AddEvent("step", trace.WithAttributes(
			attribute.String("node", ev.Node),
			attribute.Bool("goal", ev.Goal),
			attribute.Int("frontier", len(ev.Frontier)),
		))
		if !f.quiet {
			out.Step(steps, ev)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("search failed", slog.Int("steps", steps), slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", strategy.Name, err)
	}

	elapsed := time.Since(began)
	recordRun(ctx, strategy.Name, res.Status.String(), steps, elapsed)
	span.SetAttributes(attribute.String("status", res.Status.String()), attribute.Int("steps", steps))
	logger.Info("search finished",
		slog.String("status", res.Status.String()),
		slog.Int("steps", steps),
		slog.Duration("elapsed", elapsed),
	)

	out.Result(res)

	return nil
}
