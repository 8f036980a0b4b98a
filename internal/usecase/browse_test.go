package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/infra/rules"
	"github.com/runoshun/oss-curator/internal/testutil"
	"github.com/runoshun/oss-curator/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowStats_Execute_Browse(t *testing.T) {
	ex, _ := newExplorer(t)
	ex.ToggleSaved("pandas-554")

	out, err := usecase.NewShowStats(ex).Execute(context.Background(), usecase.ShowStatsInput{})
	require.NoError(t, err)

	assert.Equal(t, "14 of 14 issues visible", out.CountLabel)
	assert.Equal(t, 14, out.Stats.Total)
	assert.Equal(t, 7, out.Stats.GoodFirst)
	assert.Equal(t, 14, out.Stats.FeaturedShare)
	assert.Equal(t, 1, out.Saved)
	assert.Equal(t, 8, out.Catalog.Languages)
	require.NotEmpty(t, out.Breakdown)
	assert.Equal(t, domain.LanguageCount{Language: "TypeScript", Count: 5, Share: 36}, out.Breakdown[0])
}

func TestResetFilters_Execute_Browse(t *testing.T) {
	ex, _ := newExplorer(t)
	ex.SetLanguage("Python")
	ex.ToggleLabel("docs")
	ex.ToggleSaved("pandas-554")

	out, err := usecase.NewResetFilters(ex).Execute(context.Background(), usecase.ResetFiltersInput{})
	require.NoError(t, err)

	assert.True(t, out.Filter.IsDefault())
	assert.Equal(t, "14 of 14 issues visible", out.CountLabel)
	assert.Equal(t, 1, out.SavedCount)
}

func TestListSaved_Execute_CatalogOrder(t *testing.T) {
	ex, _ := newExplorer(t)
	ex.ToggleSaved("pandas-554")
	ex.ToggleSaved("astro-image-143")

	out, err := usecase.NewListSaved(ex).Execute(context.Background(), usecase.ListSavedInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"astro-image-143", "pandas-554"}, ids(out.Issues))
}

func TestListCollections_Execute_Browse(t *testing.T) {
	ex, _ := newExplorer(t)
	uc := usecase.NewListCollections(ex.Catalog(), rules.New())

	out, err := uc.Execute(context.Background(), usecase.ListCollectionsInput{})
	require.NoError(t, err)
	require.Len(t, out.Collections, 3)
	assert.Equal(t, "docs-trail", out.Collections[0].Collection.ID)
	assert.Len(t, out.Collections[0].Issues, 7)

	out, err = uc.Execute(context.Background(), usecase.ListCollectionsInput{ID: "typed-api"})
	require.NoError(t, err)
	require.Len(t, out.Collections, 1)
	assert.Equal(t, []string{"remix-run-332"}, ids(out.Collections[0].Issues))

	_, err = uc.Execute(context.Background(), usecase.ListCollectionsInput{ID: "nope"})
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	assert.ErrorContains(t, err, "collection not found: nope")
}

func TestOpenIssue_Execute_Browse(t *testing.T) {
	ex, _ := newExplorer(t)
	opener := &testutil.MockLinkOpener{}
	logger := &testutil.MockLogger{}
	uc := usecase.NewOpenIssue(ex.Catalog(), opener, logger)

	out, err := uc.Execute(context.Background(), usecase.OpenIssueInput{ID: "astro-image-143"})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/withastro/astro/issues/11820", out.URL)
	assert.Equal(t, []string{out.URL}, opener.Opened)

	_, err = uc.Execute(context.Background(), usecase.OpenIssueInput{ID: "nope-1"})
	assert.ErrorIs(t, err, domain.ErrIssueNotFound)

	opener.OpenErr = errors.New("no browser")
	_, err = uc.Execute(context.Background(), usecase.OpenIssueInput{ID: "astro-image-143"})
	assert.ErrorContains(t, err, "no browser")
	assert.Contains(t, logger.Lines[len(logger.Lines)-1], "WARN [link]")
}
