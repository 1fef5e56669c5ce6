package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvltree/internal/treefile"
)

func newShowCommand(a *app) *cobra.Command {
	var (
		path   string
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the outline of a tree file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := treefile.Load(path)
			if err != nil {
				return err
			}
			t, err := file.Build()
			if err != nil {
				return err
			}
			a.logger.Debug("tree loaded", slog.String("path", path), slog.Int("nodes", t.Len()))

			if !asYAML {
				NewRenderer(cmd.OutOrStdout()).Tree(t)
				return nil
			}
			norm, err := treefile.FromTree(t)
			if err != nil {
				return err
			}
			norm.Goals, norm.Start, norm.Limit, norm.AllGoals = file.Goals, file.Start, file.Limit, file.AllGoals
			data, err := norm.Marshal()
			if err != nil {
				return fmt.Errorf("cli: encode tree: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&path, "tree", "t", "", "tree definition file (YAML or JSON)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the normalized YAML definition instead of the outline")
	_ = cmd.MarkFlagRequired("tree")

	return cmd
}
