package cli

import (
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the interactive explorer.
// It is the same as running `curator` without arguments in a terminal.
func newTUICommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive explorer",
		Long:  `Launch the interactive terminal explorer for browsing and saving issues.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := rt.Container()
			if err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}
}
