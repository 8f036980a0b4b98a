package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/oss-curator/internal/domain"
)

func TestSaveCommand_Lifecycle(t *testing.T) {
	c, store := newTestContainer(t)

	out, _, err := execute(t, c, "save", "pandas-554")
	require.NoError(t, err)
	assert.Equal(t, "Saved pandas-554: Document nullable dtypes interoperability with pyarrow (1 saved)\n", out)
	assert.Contains(t, string(store.Data[domain.DefaultStateKey]), `"savedIssueIds":["pandas-554"]`)

	out, _, err = execute(t, c, "save", "pandas-554")
	require.NoError(t, err)
	assert.Equal(t, "Already saved: pandas-554\n", out)

	out, _, err = execute(t, c, "saved")
	require.NoError(t, err)
	assert.Regexp(t, `pandas-554\s+Python\s+intermediate\s+42,000\s+\*\s+Document nullable`, out)

	out, _, err = execute(t, c, "unsave", "pandas-554")
	require.NoError(t, err)
	assert.Equal(t, "Removed pandas-554: Document nullable dtypes interoperability with pyarrow (0 saved)\n", out)

	out, _, err = execute(t, c, "unsave", "pandas-554")
	require.NoError(t, err)
	assert.Equal(t, "Not saved: pandas-554\n", out)

	out, _, err = execute(t, c, "saved")
	require.NoError(t, err)
	assert.Equal(t, "No saved issues.\n", out)
}

func TestSaveCommand_Toggle(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := execute(t, c, "save", "trpc-5011")
	require.NoError(t, err)

	out, _, err := execute(t, c, "save", "--toggle", "trpc-5011", "pandas-554")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed trpc-5011")
	assert.Contains(t, out, "Saved pandas-554")
	assert.Contains(t, out, "(1 saved)")
}

func TestSavedCommand_CatalogOrder(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := execute(t, c, "save", "cobra-2145", "astro-image-143")
	require.NoError(t, err)

	out, _, err := execute(t, c, "saved")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "astro-image-143"), strings.Index(out, "cobra-2145"))
}

func TestSaveCommand_UnknownIssue(t *testing.T) {
	c, store := newTestContainer(t)

	_, _, err := execute(t, c, "save", "does-not-exist")
	require.ErrorIs(t, err, domain.ErrIssueNotFound)
	assert.Empty(t, store.Data)
}

func TestSaveCommand_RequiresID(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := execute(t, c, "save")
	require.Error(t, err)
}

func TestResetCommand_KeepsSaved(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := execute(t, c, "save", "pandas-554")
	require.NoError(t, err)
	_, _, err = execute(t, c, "list", "--language", "Rust")
	require.NoError(t, err)

	out, _, err := execute(t, c, "reset")
	require.NoError(t, err)
	assert.Equal(t, "Filters cleared. 14 of 14 issues visible\n1 saved issues kept.\n", out)

	out, _, err = execute(t, c, "saved")
	require.NoError(t, err)
	assert.Contains(t, out, "pandas-554")
}
