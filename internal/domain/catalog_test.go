package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	c := fixtureCatalog(t)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"a-1", "b-2", "c-3", "d-4"}, ids(c.Issues()))
	assert.Equal(t, []string{"Python", "Rust", "TypeScript"}, c.Languages())
	assert.Equal(t, []string{"docs", "examples", "frontend", "good first issue", "help wanted", "performance"}, c.Labels())
	assert.True(t, c.HasLanguage("Rust"))
	assert.False(t, c.HasLanguage("Go"))
	assert.True(t, c.HasLabel("docs"))
	assert.False(t, c.HasLabel("Docs"))

	issue, ok := c.Get("c-3")
	require.True(t, ok)
	assert.Equal(t, "Speed up parser", issue.Title)
	assert.Equal(t, 2, c.Position("c-3"))

	_, ok = c.Get("zzz")
	assert.False(t, ok)
}

func TestNewCatalog_DuplicateID(t *testing.T) {
	issues := fixtureIssues()
	issues[1].ID = issues[0].ID

	_, err := NewCatalog(issues, nil)
	assert.ErrorIs(t, err, ErrDuplicateIssueID)
}

func TestCatalog_IssuesIsCopy(t *testing.T) {
	c := fixtureCatalog(t)
	issues := c.Issues()
	issues[0].ID = "mutated"

	assert.True(t, c.Has("a-1"))
	assert.Equal(t, "a-1", c.Issues()[0].ID)
}

func TestCatalog_Summary(t *testing.T) {
	s := fixtureCatalog(t).Summary()

	assert.Equal(t, 4, s.Issues)
	assert.Equal(t, 3, s.Orgs)
	assert.Equal(t, 3, s.Languages)
	assert.Equal(t, 2, s.GoodFirst)
}
