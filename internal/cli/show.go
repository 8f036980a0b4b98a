package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/oss-curator/internal/usecase"
)

// issueDocument is the machine-readable form of show output.
type issueDocument struct {
	issueFields `yaml:",inline"`
	Updated     string   `json:"updated" yaml:"updated"`
	Collections []string `json:"collections" yaml:"collections"`
	Saved       bool     `json:"saved" yaml:"saved"`
}

// newShowCommand creates the show command for displaying issue details.
func newShowCommand(rt *Runtime) *cobra.Command {
	var opts struct {
		JSON bool
		YAML bool
	}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display issue details",
		Long: `Display detailed information about an issue.

Output includes:
  - Title, repository and link
  - Description
  - Language, level, stars and labels
  - Last update, relative to now
  - Collections featuring the issue

Examples:
  # Show an issue
  curator show pandas-554

  # Output in JSON format
  curator show pandas-554 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.JSON && opts.YAML {
				return errors.New("cannot use --json and --yaml together")
			}

			c, ex, err := rt.Session(cmd.Context())
			if err != nil {
				return err
			}

			out, err := c.ShowIssueUseCase(ex).Execute(cmd.Context(), usecase.ShowIssueInput{ID: args[0]})
			if err != nil {
				return err
			}

			doc := issueDocument{
				issueFields: issueFieldsFrom(out),
				Updated:     out.Updated,
				Collections: out.Collections,
				Saved:       out.Saved,
			}
			if doc.Collections == nil {
				doc.Collections = []string{}
			}

			switch {
			case opts.JSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			case opts.YAML:
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return err
				}
				return enc.Close()
			}

			printIssueDetails(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.YAML, "yaml", false, "Output in YAML format")

	return cmd
}

// issueFields mirrors domain.Issue with stable output keys.
type issueFields struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Repo           string   `json:"repo" yaml:"repo"`
	Org            string   `json:"org" yaml:"org"`
	Description    string   `json:"description" yaml:"description"`
	Language       string   `json:"language" yaml:"language"`
	Level          string   `json:"level" yaml:"level"`
	Link           string   `json:"link" yaml:"link"`
	UpdatedAt      string   `json:"updatedAt" yaml:"updatedAt"`
	Labels         []string `json:"labels" yaml:"labels"`
	Topics         []string `json:"topics" yaml:"topics"`
	Stars          int      `json:"stars" yaml:"stars"`
	GoodFirstIssue bool     `json:"goodFirstIssue" yaml:"goodFirstIssue"`
}

func issueFieldsFrom(out *usecase.ShowIssueOutput) issueFields {
	issue := out.Issue
	f := issueFields{
		ID:             issue.ID,
		Title:          issue.Title,
		Repo:           issue.Repo,
		Org:            issue.Org,
		Description:    issue.Description,
		Language:       issue.Language,
		Level:          string(issue.Level),
		Link:           issue.Link,
		UpdatedAt:      issue.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Labels:         issue.Labels,
		Topics:         issue.Topics,
		Stars:          issue.Stars,
		GoodFirstIssue: issue.GoodFirstIssue,
	}
	if f.Labels == nil {
		f.Labels = []string{}
	}
	if f.Topics == nil {
		f.Topics = []string{}
	}
	return f
}

// printIssueDetails prints issue details in a human-readable format.
func printIssueDetails(w io.Writer, out *usecase.ShowIssueOutput) {
	issue := out.Issue

	_, _ = fmt.Fprintf(w, "# %s: %s\n\n", issue.ID, issue.Title)

	if issue.Description != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", issue.Description)
	}

	_, _ = fmt.Fprintf(w, "Repo: %s\n", issue.Repo)
	_, _ = fmt.Fprintf(w, "Language: %s\n", issue.Language)
	_, _ = fmt.Fprintf(w, "Level: %s\n", issue.Level)
	_, _ = fmt.Fprintf(w, "Stars: %s\n", humanize.Comma(int64(issue.Stars)))

	if len(issue.Labels) > 0 {
		_, _ = fmt.Fprintf(w, "Labels: [%s]\n", strings.Join(issue.Labels, ", "))
	} else {
		_, _ = fmt.Fprintln(w, "Labels: none")
	}

	if len(issue.Topics) > 0 {
		_, _ = fmt.Fprintf(w, "Topics: [%s]\n", strings.Join(issue.Topics, ", "))
	}

	if issue.GoodFirstIssue {
		_, _ = fmt.Fprintln(w, "Good first issue: yes")
	}

	_, _ = fmt.Fprintf(w, "Updated: %s\n", out.Updated)

	if len(out.Collections) > 0 {
		_, _ = fmt.Fprintf(w, "Collections: [%s]\n", strings.Join(out.Collections, ", "))
	}

	if out.Saved {
		_, _ = fmt.Fprintln(w, "Saved: yes")
	} else {
		_, _ = fmt.Fprintln(w, "Saved: no")
	}

	_, _ = fmt.Fprintf(w, "Link: %s\n", issue.Link)
}
