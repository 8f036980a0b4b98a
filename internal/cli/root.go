// Package cli provides the command-line interface for oss-curator.
package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/runoshun/oss-curator/internal/app"
	"github.com/runoshun/oss-curator/internal/tui"
	"github.com/runoshun/oss-curator/internal/usecase"
)

// Command group IDs.
const (
	groupBrowse = "browse"
	groupSaved  = "saved"
	groupSetup  = "setup"
)

// launchTUIFunc launches the interactive explorer, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRootCommand creates the root command for curator.
// The runtime builds the container after global flags are parsed.
func NewRootCommand(rt *Runtime, version string) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "curator",
		Short: "Browse curated open-source issues",
		Long: `curator is a catalog browser for curated open-source issues.

Filter issues by text, language, level and labels, save the ones you want
to work on and open them in your browser. Filters and saved issues are kept
between runs.

Run without arguments in a terminal to start the interactive explorer.
When output is not a terminal the filtered list is printed instead.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				rt.opts.LogMirror = cmd.ErrOrStderr()
			}
			c, err := rt.Container()
			if err != nil {
				return err
			}
			if c.Config == nil {
				return nil
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isTerminal(cmd.OutOrStdout()) {
				c, err := rt.Container()
				if err != nil {
					return err
				}
				return launchTUIFunc(c)
			}
			return runList(cmd, rt, usecase.ListIssuesInput{})
		},
	}

	root.PersistentFlags().StringVar(&rt.opts.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/oss-curator/config.toml)")
	root.PersistentFlags().StringVar(&rt.opts.Catalog, "catalog", "", "Catalog file (.json, .yaml or .toml) replacing the built-in dataset")
	root.PersistentFlags().StringVar(&rt.opts.Backend, "backend", "", "State backend: json, badger, sqlite or memory")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Mirror log entries to stderr")

	root.AddGroup(
		&cobra.Group{ID: groupBrowse, Title: "Browse Commands:"},
		&cobra.Group{ID: groupSaved, Title: "Saved Issue Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	listCmd := newListCommand(rt)
	listCmd.GroupID = groupBrowse

	showCmd := newShowCommand(rt)
	showCmd.GroupID = groupBrowse

	statsCmd := newStatsCommand(rt)
	statsCmd.GroupID = groupBrowse

	collectionsCmd := newCollectionsCommand(rt)
	collectionsCmd.GroupID = groupBrowse

	resetCmd := newResetCommand(rt)
	resetCmd.GroupID = groupBrowse

	openCmd := newOpenCommand(rt)
	openCmd.GroupID = groupBrowse

	tuiCmd := newTUICommand(rt)
	tuiCmd.GroupID = groupBrowse

	saveCmd := newSaveCommand(rt)
	saveCmd.GroupID = groupSaved

	unsaveCmd := newUnsaveCommand(rt)
	unsaveCmd.GroupID = groupSaved

	savedCmd := newSavedCommand(rt)
	savedCmd.GroupID = groupSaved

	configCmd := newConfigCommand(rt)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		listCmd,
		showCmd,
		statsCmd,
		collectionsCmd,
		resetCmd,
		openCmd,
		tuiCmd,
		saveCmd,
		unsaveCmd,
		savedCmd,
		configCmd,
	)

	return root
}

// launchTUI runs the interactive explorer until the user quits.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
