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

// newListCommand creates the list command for filtering issues.
func newListCommand(rt *Runtime) *cobra.Command {
	var opts struct {
		Query     string
		Language  string
		Level     string
		Labels    []string
		Pages     int
		GoodFirst bool
		SavedOnly bool
		All       bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List issues matching the filters",
		Long: `Display the issues matching the current filters.

Filter flags change the persisted filters, so they also apply to later runs
and to the interactive explorer. Flags that are not given keep their stored
value. Use 'curator reset' to clear every filter.

Output format is tab-separated with columns:
  ID, LANGUAGE, LEVEL, STARS, SAVED, TITLE

Examples:
  # Show the first page with the stored filters
  curator list

  # Python documentation issues
  curator list --language Python --label docs

  # Clear the label selection
  curator list --label ""

  # Only saved good first issues, every page
  curator list --saved-only --good-first --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListIssuesInput{
				Pages: opts.Pages,
				All:   opts.All,
			}

			// Only flags given on the command line change the filters
			flags := cmd.Flags()
			if flags.Changed("query") {
				input.Query = &opts.Query
			}
			if flags.Changed("language") {
				input.Language = &opts.Language
			}
			if flags.Changed("level") {
				input.Level = &opts.Level
			}
			if flags.Changed("label") {
				input.Labels = nonEmpty(opts.Labels)
			}
			if flags.Changed("good-first") {
				input.GoodFirst = &opts.GoodFirst
			}
			if flags.Changed("saved-only") {
				input.SavedOnly = &opts.SavedOnly
			}

			return runList(cmd, rt, input)
		},
	}

	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Free-text search over title, repo, description and labels")
	cmd.Flags().StringVar(&opts.Language, "language", "", "Language filter, or 'all'")
	cmd.Flags().StringVar(&opts.Level, "level", "", "Level filter: all, first-timers, intermediate or advanced")
	cmd.Flags().StringArrayVarP(&opts.Labels, "label", "l", nil, "Required label (repeatable; replaces the selection)")
	cmd.Flags().BoolVar(&opts.GoodFirst, "good-first", false, "Only good first issues")
	cmd.Flags().BoolVar(&opts.SavedOnly, "saved-only", false, "Only saved issues")
	cmd.Flags().IntVarP(&opts.Pages, "pages", "p", 1, "Number of pages to reveal")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Reveal every matching issue")

	return cmd
}

// nonEmpty drops empty values so that --label "" clears the selection.
func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func runList(cmd *cobra.Command, rt *Runtime, input usecase.ListIssuesInput) error {
	c, ex, err := rt.Session(cmd.Context())
	if err != nil {
		return err
	}

	out, err := c.ListIssuesUseCase(ex).Execute(cmd.Context(), input)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printFilterSummary(w, out.Filter)
	if len(out.Issues) == 0 {
		_, _ = fmt.Fprintln(w, "No issues match the current filters.")
	} else {
		printIssueList(w, out.Issues, ex.IsSaved)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, out.CountLabel)
	if out.HasMore {
		_, _ = fmt.Fprintf(w, "Showing %d. Use --pages %d or --all to see more.\n",
			len(out.Issues), ex.Page()+1)
	}
	return nil
}

// printFilterSummary prints the active filters, or nothing when none are set.
func printFilterSummary(w io.Writer, f domain.FilterState) {
	if f.IsDefault() {
		return
	}
	var parts []string
	if f.Query != "" {
		parts = append(parts, fmt.Sprintf("query=%q", f.Query))
	}
	if f.Language != domain.FilterAll {
		parts = append(parts, "language="+f.Language)
	}
	if f.Level != domain.LevelAll {
		parts = append(parts, "level="+string(f.Level))
	}
	if len(f.Labels) > 0 {
		parts = append(parts, "labels="+strings.Join(f.Labels, ","))
	}
	if f.OnlyGoodFirst {
		parts = append(parts, "good-first")
	}
	if f.SavedOnly {
		parts = append(parts, "saved-only")
	}
	_, _ = fmt.Fprintf(w, "Filters: %s\n\n", strings.Join(parts, " "))
}

// printIssueList prints issues in a tab-separated table.
func printIssueList(w io.Writer, issues []domain.Issue, isSaved func(id string) bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tLANGUAGE\tLEVEL\tSTARS\tSAVED\tTITLE")

	for _, issue := range issues {
		saved := ""
		if isSaved != nil && isSaved(issue.ID) {
			saved = "*"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			issue.ID,
			issue.Language,
			issue.Level,
			humanize.Comma(int64(issue.Stars)),
			saved,
			issue.Title,
		)
	}

	_ = tw.Flush()
}
