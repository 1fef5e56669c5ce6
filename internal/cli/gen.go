package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvltree/builder"
	"github.com/katalvlaran/lvltree/internal/treefile"
)

// Shapes accepted by gen --shape.
const (
	ShapeRandom = "random"
	ShapeChain  = "chain"
	ShapeStar   = "star"
	ShapeKAry   = "kary"
)

type genFlags struct {
	shape   string
	nodes   int
	branch  int
	depth   int
	seed    int64
	maxCost int
	maxH    int
	goals   []string
}

func newGenCommand() *cobra.Command {
	var f genFlags

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a tree file",
		Long: `Generate a tree definition and print it as YAML, ready for "lvltree run".

Labels are N0, N1, ...; costs are drawn from [1, --max-cost] and heuristics
from [0, --max-h]. The same flags and --seed always give the same tree.

Examples:
  lvltree gen --nodes 20 --seed 7 --goal N13 > tree.yaml
  lvltree gen --shape kary --branch 3 --depth 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var con builder.Constructor
			switch f.shape {
			case ShapeRandom:
				con = builder.Random(f.nodes)
			case ShapeChain:
				con = builder.Chain(f.nodes)
			case ShapeStar:
				con = builder.Star(f.nodes)
			case ShapeKAry:
				con = builder.KAry(f.branch, f.depth)
			default:
				return fmt.Errorf("cli: shape %q (want %s, %s, %s or %s)", f.shape, ShapeRandom, ShapeChain, ShapeStar, ShapeKAry)
			}
			if f.maxCost < 1 || f.maxH < 0 {
				return errors.New("cli: --max-cost must be ≥ 1 and --max-h ≥ 0")
			}

			t, err := builder.BuildTree([]builder.BuilderOption{
				builder.WithSeed(f.seed),
				builder.WithCostFn(builder.UniformIntFn(1, f.maxCost)),
				builder.WithHeuristicFn(builder.UniformIntFn(0, f.maxH)),
			}, con)
			if err != nil {
				return err
			}

			file, err := treefile.FromTree(t)
			if err != nil {
				return err
			}
			file.Goals = f.goals
			if err = file.Validate(); err != nil {
				return err
			}
			data, err := file.Marshal()
			if err != nil {
				return fmt.Errorf("cli: encode tree: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&f.shape, "shape", ShapeRandom, "tree shape (random, chain, star, kary)")
	cmd.Flags().IntVarP(&f.nodes, "nodes", "n", 10, "node count (random, chain, star)")
	cmd.Flags().IntVar(&f.branch, "branch", 2, "children per node (kary)")
	cmd.Flags().IntVar(&f.depth, "depth", 3, "depth (kary)")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&f.maxCost, "max-cost", 9, "largest edge cost")
	cmd.Flags().IntVar(&f.maxH, "max-h", 9, "largest heuristic")
	cmd.Flags().StringSliceVarP(&f.goals, "goal", "g", nil, "goal labels to record in the file")

	return cmd
}
