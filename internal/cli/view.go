package cli

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: "Browse the planes and samples of a web interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			l, err := runner.LoadFile(ctx, args[0])
			if err != nil {
				return err
			}

			model := NewPlaneBrowserModel(filepath.Base(args[0]), l.Web)
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}
}
