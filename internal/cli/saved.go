package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/oss-curator/internal/usecase"
)

// newSaveCommand creates the save command.
func newSaveCommand(rt *Runtime) *cobra.Command {
	var toggle bool

	cmd := &cobra.Command{
		Use:   "save <id>...",
		Short: "Save issues for later",
		Long: `Add issues to the saved list.

Saving an issue that is already saved does nothing.
Use --toggle to remove already saved issues instead.

Examples:
  # Save two issues
  curator save pandas-554 trpc-5011

  # Flip the saved state
  curator save --toggle pandas-554`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := usecase.SaveAdd
			if toggle {
				mode = usecase.SaveToggle
			}
			return runSave(cmd, rt, args, mode)
		},
	}

	cmd.Flags().BoolVarP(&toggle, "toggle", "t", false, "Remove issues that are already saved")

	return cmd
}

// newUnsaveCommand creates the unsave command.
func newUnsaveCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "unsave <id>...",
		Aliases: []string{"rm"},
		Short:   "Remove issues from the saved list",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd, rt, args, usecase.SaveRemove)
		},
	}
}

func runSave(cmd *cobra.Command, rt *Runtime, ids []string, mode usecase.SaveMode) error {
	c, ex, err := rt.Session(cmd.Context())
	if err != nil {
		return err
	}

	uc := c.SaveIssueUseCase(ex)
	w := cmd.OutOrStdout()
	for _, id := range ids {
		out, err := uc.Execute(cmd.Context(), usecase.SaveIssueInput{ID: id, Mode: mode})
		if err != nil {
			return err
		}

		switch {
		case !out.Changed && out.Saved:
			_, _ = fmt.Fprintf(w, "Already saved: %s\n", out.Issue.ID)
		case !out.Changed:
			_, _ = fmt.Fprintf(w, "Not saved: %s\n", out.Issue.ID)
		case out.Saved:
			_, _ = fmt.Fprintf(w, "Saved %s: %s (%d saved)\n", out.Issue.ID, out.Issue.Title, out.Count)
		default:
			_, _ = fmt.Fprintf(w, "Removed %s: %s (%d saved)\n", out.Issue.ID, out.Issue.Title, out.Count)
		}
	}
	return nil
}

// newSavedCommand creates the saved command for listing saved issues.
func newSavedCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List saved issues",
		Long: `Display every saved issue in catalog order, regardless of filters.

Output format is tab-separated with columns:
  ID, LANGUAGE, LEVEL, STARS, SAVED, TITLE`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, ex, err := rt.Session(cmd.Context())
			if err != nil {
				return err
			}

			out, err := c.ListSavedUseCase(ex).Execute(cmd.Context(), usecase.ListSavedInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Issues) == 0 {
				_, _ = fmt.Fprintln(w, "No saved issues.")
				return nil
			}
			printIssueList(w, out.Issues, ex.IsSaved)
			return nil
		},
	}
}
