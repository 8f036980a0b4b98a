package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/usecase"
)

// newResetCommand creates the reset command.
func newResetCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear every filter",
		Long:  `Restore the default filters. Saved issues are kept.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, ex, err := rt.Session(cmd.Context())
			if err != nil {
				return err
			}

			out, err := c.ResetFiltersUseCase(ex).Execute(cmd.Context(), usecase.ResetFiltersInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Filters cleared. %s\n", out.CountLabel)
			_, _ = fmt.Fprintf(w, "%d saved issues kept.\n", out.SavedCount)
			return nil
		},
	}
}

// newStatsCommand creates the stats command.
func newStatsCommand(rt *Runtime) *cobra.Command {
	var catalog bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for the visible issues",
		Long: `Display statistics for the issues matching the current filters:
the number of issues, distinct organizations, good first issues, the share
of the featured language and a per-language breakdown.

Use --catalog to also show totals for the whole catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, ex, err := rt.Session(cmd.Context())
			if err != nil {
				return err
			}

			out, err := c.ShowStatsUseCase(ex).Execute(cmd.Context(), usecase.ShowStatsInput{})
			if err != nil {
				return err
			}

			printStats(cmd.OutOrStdout(), out, catalog)
			return nil
		},
	}

	cmd.Flags().BoolVar(&catalog, "catalog", false, "Include whole-catalog totals")

	return cmd
}

func printStats(w io.Writer, out *usecase.ShowStatsOutput, catalog bool) {
	s := out.Stats

	_, _ = fmt.Fprintln(w, out.CountLabel)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Issues: %s\n", humanize.Comma(int64(s.Total)))
	_, _ = fmt.Fprintf(w, "Organizations: %s\n", humanize.Comma(int64(s.Orgs)))
	_, _ = fmt.Fprintf(w, "Good first issues: %s\n", humanize.Comma(int64(s.GoodFirst)))
	if s.FeaturedLanguage != "" {
		_, _ = fmt.Fprintf(w, "%s share: %d%%\n", s.FeaturedLanguage, s.FeaturedShare)
	}
	_, _ = fmt.Fprintf(w, "Saved: %d\n", out.Saved)

	if len(out.Breakdown) > 0 {
		_, _ = fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(tw, "LANGUAGE\tISSUES\tSHARE")
		for _, row := range out.Breakdown {
			_, _ = fmt.Fprintf(tw, "%s\t%d\t%d%%\n", row.Language, row.Count, row.Share)
		}
		_ = tw.Flush()
	}

	if catalog {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "[Catalog]")
		_, _ = fmt.Fprintf(w, "Issues: %s\n", humanize.Comma(int64(out.Catalog.Issues)))
		_, _ = fmt.Fprintf(w, "Organizations: %s\n", humanize.Comma(int64(out.Catalog.Orgs)))
		_, _ = fmt.Fprintf(w, "Languages: %s\n", humanize.Comma(int64(out.Catalog.Languages)))
		_, _ = fmt.Fprintf(w, "Good first issues: %s\n", humanize.Comma(int64(out.Catalog.GoodFirst)))
	}
}

// newCollectionsCommand creates the collections command.
func newCollectionsCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "collections [id]",
		Short: "Show spotlight collections",
		Long: `Display the spotlight collections of the catalog with their member issues.

Without an ID every collection is summarized with its first repositories.
With an ID the member issues of that collection are listed.

Examples:
  curator collections
  curator collections docs-trail`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ex, err := rt.Session(cmd.Context())
			if err != nil {
				return err
			}

			var in usecase.ListCollectionsInput
			if len(args) == 1 {
				in.ID = args[0]
			}
			out, err := c.ListCollectionsUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Collections) == 0 {
				_, _ = fmt.Fprintln(w, "No collections.")
				return nil
			}
			if in.ID != "" {
				printCollection(w, out.Collections[0], ex.IsSaved)
				return nil
			}
			printCollectionList(w, out.Collections)
			return nil
		},
	}
}

// previewRepos returns the short names of the first n member repositories.
func previewRepos(issues []domain.Issue, n int) []string {
	names := make([]string, 0, n)
	for _, issue := range issues {
		if len(names) == n {
			break
		}
		names = append(names, issue.RepoName())
	}
	return names
}

func printCollectionList(w io.Writer, cols []usecase.CollectionView) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tISSUES\tTITLE\tREPOS")
	for _, cv := range cols {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			cv.Collection.ID,
			len(cv.Issues),
			cv.Collection.Title,
			strings.Join(previewRepos(cv.Issues, 3), ", "),
		)
	}
	_ = tw.Flush()
}

func printCollection(w io.Writer, cv usecase.CollectionView, isSaved func(string) bool) {
	col := cv.Collection
	_, _ = fmt.Fprintf(w, "# %s\n\n", col.Title)
	if col.Description != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", col.Description)
	}
	for _, c := range col.Criteria {
		_, _ = fmt.Fprintf(w, "- %s\n", c)
	}
	if len(col.Criteria) > 0 {
		_, _ = fmt.Fprintln(w)
	}
	if len(cv.Issues) == 0 {
		_, _ = fmt.Fprintln(w, "No matching issues.")
		return
	}
	printIssueList(w, cv.Issues, isSaved)
}

// newOpenCommand creates the open command.
func newOpenCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Open an issue in the browser",
		Long: `Open the issue page with the system browser.

$BROWSER is used when set. The browser is started in the background and
curator returns immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rt.Container()
			if err != nil {
				return err
			}

			out, err := c.OpenIssueUseCase().Execute(cmd.Context(), usecase.OpenIssueInput{ID: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", out.URL)
			return nil
		},
	}
}
