package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixtureIssues() []Issue {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	return []Issue{
		{ID: "a-1", Title: "Add dark mode toggle", Repo: "acme/web", Org: "Acme", Description: "Theme switcher", Language: "TypeScript", Level: LevelFirstTimers, Labels: []string{"frontend", "good first issue"}, GoodFirstIssue: true, UpdatedAt: day},
		{ID: "b-2", Title: "Document the CLI", Repo: "bolt/cli", Org: "Bolt", Description: "Write usage docs", Language: "Python", Level: LevelIntermediate, Labels: []string{"docs", "help wanted"}, UpdatedAt: day},
		{ID: "c-3", Title: "Speed up parser", Repo: "core/parse", Org: "Core", Description: "Profile hot loops", Language: "Rust", Level: LevelAdvanced, Labels: []string{"performance"}, UpdatedAt: day},
		{ID: "d-4", Title: "Tutorial examples", Repo: "bolt/sdk", Org: "Bolt", Description: "Python notebooks", Language: "Python", Level: LevelFirstTimers, Labels: []string{"docs", "examples"}, GoodFirstIssue: true, UpdatedAt: day},
	}
}

func fixtureCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(fixtureIssues(), nil)
	require.NoError(t, err)
	return c
}

func ids(issues []Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.ID
	}
	return out
}
