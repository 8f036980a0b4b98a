package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/oss-curator/internal/app"
	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/infra/catalog"
	"github.com/runoshun/oss-curator/internal/testutil"
)

// testNow is one day after the newest issue in the built-in catalog.
var testNow = time.Date(2024, 7, 12, 12, 0, 0, 0, time.UTC)

func newTestContainer(t *testing.T) (*app.Container, *testutil.MockStateStore) {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)

	store := testutil.NewMockStateStore()
	c := app.NewWithDeps(
		domain.NewDefaultConfig(),
		cat,
		store,
		&testutil.MockClock{NowTime: testNow},
		&testutil.MockLogger{},
	)
	c.Links = &testutil.MockLinkOpener{}
	c.ConfigLoader = testutil.NewMockConfigLoader()
	c.ConfigManager = testutil.NewMockConfigManager()
	return c, store
}

// execute runs the root command once, like a separate process invocation
// sharing the container's store.
func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(FromContainer(c), "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}
