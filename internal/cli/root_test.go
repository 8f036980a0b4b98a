package cli

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/oss-curator/internal/app"
	"github.com/runoshun/oss-curator/internal/domain"
)

func TestRootCommand_ConfigWarnings(t *testing.T) {
	c, _ := newTestContainer(t)
	c.Config.Warnings = []string{"unknown section: extra"}

	_, errOut, err := execute(t, c, "stats")
	require.NoError(t, err)
	assert.Equal(t, "Warning: unknown section: extra\n", errOut)
}

func TestRootCommand_TUI(t *testing.T) {
	c, _ := newTestContainer(t)

	var launched *app.Container
	orig := launchTUIFunc
	launchTUIFunc = func(c *app.Container) error {
		launched = c
		return nil
	}
	t.Cleanup(func() { launchTUIFunc = orig })

	_, _, err := execute(t, c, "tui")
	require.NoError(t, err)
	assert.Same(t, c, launched)
}

func TestRootCommand_TerminalLaunchesTUI(t *testing.T) {
	c, _ := newTestContainer(t)

	launches := 0
	origLaunch, origTerm := launchTUIFunc, isTerminal
	launchTUIFunc = func(*app.Container) error {
		launches++
		return nil
	}
	isTerminal = func(io.Writer) bool { return true }
	t.Cleanup(func() {
		launchTUIFunc = origLaunch
		isTerminal = origTerm
	})

	out, _, err := execute(t, c)
	require.NoError(t, err)
	assert.Equal(t, 1, launches)
	assert.Empty(t, out)
}

func TestRootCommand_GlobalFlagsReachBuilder(t *testing.T) {
	c, _ := newTestContainer(t)

	var got app.Options
	rt := NewRuntime(func(opts app.Options) (*app.Container, error) {
		got = opts
		return c, nil
	})
	root := NewRootCommand(rt, "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"--backend", "memory", "--catalog", "issues.yaml", "--config", "c.toml", "-V", "stats"})
	require.NoError(t, root.Execute())
	require.NoError(t, rt.Close())

	assert.Equal(t, domain.BackendMemory, got.Backend)
	assert.Equal(t, "issues.yaml", got.Catalog)
	assert.Equal(t, "c.toml", got.ConfigPath)
	assert.Same(t, &errOut, got.LogMirror)
	assert.Contains(t, out.String(), "Issues: 14")
}

func TestRootCommand_BuilderError(t *testing.T) {
	rt := NewRuntime(func(app.Options) (*app.Container, error) {
		return nil, domain.ErrUnknownBackend
	})
	root := NewRootCommand(rt, "test")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"list"})

	err := root.Execute()
	assert.True(t, errors.Is(err, domain.ErrUnknownBackend))
}

func TestRuntime_SharesSession(t *testing.T) {
	c, store := newTestContainer(t)
	rt := FromContainer(c)

	_, first, err := rt.Session(t.Context())
	require.NoError(t, err)
	first.ToggleSaved("pandas-554")

	_, second, err := rt.Session(t.Context())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, store.Writes)
}
