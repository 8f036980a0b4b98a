package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveIssue_Execute(t *testing.T) {
	ex, store := newExplorer(t)
	uc := usecase.NewSaveIssue(ex)
	ctx := context.Background()

	out, err := uc.Execute(ctx, usecase.SaveIssueInput{ID: "pandas-554", Mode: usecase.SaveAdd})
	require.NoError(t, err)
	assert.True(t, out.Saved)
	assert.True(t, out.Changed)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, 1, store.Writes)

	out, err = uc.Execute(ctx, usecase.SaveIssueInput{ID: "pandas-554", Mode: usecase.SaveAdd})
	require.NoError(t, err)
	assert.True(t, out.Saved)
	assert.False(t, out.Changed)
	assert.Equal(t, 1, store.Writes)

	out, err = uc.Execute(ctx, usecase.SaveIssueInput{ID: "pandas-554", Mode: usecase.SaveToggle})
	require.NoError(t, err)
	assert.False(t, out.Saved)
	assert.Equal(t, 0, out.Count)

	out, err = uc.Execute(ctx, usecase.SaveIssueInput{ID: "pandas-554", Mode: usecase.SaveRemove})
	require.NoError(t, err)
	assert.False(t, out.Changed)
}

func TestSaveIssue_Execute_NotFound(t *testing.T) {
	ex, _ := newExplorer(t)

	_, err := usecase.NewSaveIssue(ex).Execute(context.Background(), usecase.SaveIssueInput{ID: "nope"})
	assert.ErrorIs(t, err, domain.ErrIssueNotFound)
}

func TestListSaved_Execute(t *testing.T) {
	ex, _ := newExplorer(t)
	ex.ToggleSaved("cobra-2145")
	ex.ToggleSaved("astro-image-143")

	out, err := usecase.NewListSaved(ex).Execute(context.Background(), usecase.ListSavedInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"astro-image-143", "cobra-2145"}, ids(out.Issues))
}

func TestResetFilters_Execute(t *testing.T) {
	ex, _ := newExplorer(t)
	ex.SetLanguage("Go")
	ex.ToggleLabel("docs")
	ex.ToggleSaved("pandas-554")

	out, err := usecase.NewResetFilters(ex).Execute(context.Background(), usecase.ResetFiltersInput{})
	require.NoError(t, err)

	assert.True(t, out.Filter.IsDefault())
	assert.Equal(t, 1, out.SavedCount)
	assert.Equal(t, "14 of 14 issues visible", out.CountLabel)
}
