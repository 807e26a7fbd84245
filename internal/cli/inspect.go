package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/plasmidmap/plasmidmap/pkg/mapfile"
	"github.com/plasmidmap/plasmidmap/pkg/render/circular/layout"
)

// inspectCommand creates the inspect command for examining a map's
// features and computed orbits.
func (c *CLI) inspectCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect [map.toml]",
		Short: "Inspect a plasmid map's features and computed orbits",
		Long: `Inspect a plasmid map's features and computed orbits.

The inspect command loads a TOML map description, runs orbit allocation,
and shows each feature with its span, length, assigned orbit, and label
styles in an interactive table. Use --plain for non-interactive output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print a static table instead of the interactive view")

	return cmd
}

// runInspect loads the map, computes the layout, and shows the feature table.
func (c *CLI) runInspect(ctx context.Context, input string, plain bool) error {
	p, err := mapfile.Load(input)
	if err != nil {
		return err
	}

	l, err := layout.Compute(ctx, p)
	if err != nil {
		return err
	}

	if plain {
		printKeyValue("Plasmid", p.Name())
		printKeyValue("Length", fmt.Sprintf("%d bp", p.BasePairs()))
		printKeyValue("Features", fmt.Sprintf("%d", len(p.Features())))
		printKeyValue("Orbits", fmt.Sprintf("%d", l.Orbits))
		printNewline()
		fmt.Println(renderFeatureTable(inspectRows(p), -1))
		return nil
	}

	model := newInspectModel(p, l)
	prog := tea.NewProgram(model, tea.WithContext(ctx))
	_, err = prog.Run()
	return err
}
