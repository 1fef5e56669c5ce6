// Package cli implements the lvltree command line: loading tree files,
// driving a strategy one step at a time and rendering what happened.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// NewRootCommand assembles the lvltree command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "lvltree",
		Short: "Step through classic tree search strategies",
		Long: `lvltree loads a labeled tree from a YAML or JSON file and runs one of the
classic uninformed or informed search strategies over it, printing every
processed node, its parent, and the frontier left behind.

Examples:
  lvltree strategies
  lvltree show --tree tree.yaml
  lvltree gen --nodes 20 --seed 7 --goal N13 > tree.yaml
  lvltree run bfs --tree tree.yaml --goal G
  lvltree run astar --tree tree.yaml --goal G --goal H --all-goals
  lvltree compare --tree tree.yaml --goal G`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := NewLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", FormatAuto, "log format (auto, text, json)")

	root.AddCommand(newRunCommand(a), newCompareCommand(a), newShowCommand(a), newGenCommand(), newStrategiesCommand())

	return root
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	return 0
}

func newStrategiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available search strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			NewRenderer(cmd.OutOrStdout()).Strategies(Strategies())
		},
	}
}
