package explorer

import (
	"context"
	"testing"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/infra/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtinCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c, err := catalog.Builtin()
	require.NoError(t, err)
	return c
}

func newHydrated(t *testing.T, opts Options) *Explorer {
	t.Helper()
	if opts.FeaturedLanguage == "" {
		opts.FeaturedLanguage = "Python"
	}
	e := New(builtinCatalog(t), opts)
	e.Hydrate(context.Background())
	require.True(t, e.Hydrated())
	return e
}

func issueIDs(issues []domain.Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.ID
	}
	return out
}

func TestExplorer_DefaultView(t *testing.T) {
	e := newHydrated(t, Options{})

	assert.True(t, e.Filter().IsDefault())
	assert.Equal(t, "14 of 14 issues visible", e.CountLabel())
	assert.Equal(t, domain.Stats{
		FeaturedLanguage: "Python",
		Total:            14,
		Orgs:             14,
		GoodFirst:        7,
		FeaturedShare:    14,
	}, e.View().Stats)
}

func TestExplorer_LanguageAndLabel(t *testing.T) {
	e := newHydrated(t, Options{})

	e.SetLanguage("Python")
	e.ToggleLabel("docs")

	v := e.View()
	require.Len(t, v.Issues, 1)
	assert.Equal(t, "pandas-554", v.Issues[0].ID)
	assert.Equal(t, "1 of 14 issues visible", e.CountLabel())
	assert.Equal(t, 100, v.Stats.FeaturedShare)
}

func TestExplorer_LabelsAreAND(t *testing.T) {
	e := newHydrated(t, Options{})

	e.ToggleLabel("docs")
	docs := len(e.View().Issues)
	e.ToggleLabel("good first issue")
	both := e.View().Issues

	assert.Less(t, len(both), docs)
	for _, issue := range both {
		assert.True(t, issue.HasLabel("docs"))
		assert.True(t, issue.HasLabel("good first issue"))
	}
}

func TestExplorer_ToggleLabelTwiceRestoresFilter(t *testing.T) {
	e := newHydrated(t, Options{})
	before := e.Filter()

	e.ToggleLabel("docs")
	e.ToggleLabel("docs")

	assert.True(t, before.Equal(e.Filter()))
}

func TestExplorer_EmptyResult(t *testing.T) {
	e := newHydrated(t, Options{})

	e.SetQuery("no issue mentions this phrase")

	v := e.View()
	assert.Empty(t, v.Issues)
	assert.Equal(t, 0, v.Stats.FeaturedShare)
	assert.Equal(t, "0 of 14 issues visible", e.CountLabel())
	assert.False(t, e.HasMore())
}

func TestExplorer_ResetFiltersKeepsSaved(t *testing.T) {
	e := newHydrated(t, Options{})

	e.SetQuery("docs")
	e.SetLanguage("TypeScript")
	e.SetLevel(domain.LevelFirstTimers)
	e.ToggleLabel("docs")
	e.ToggleGoodFirstOnly()
	e.ToggleSaved("pandas-554")
	e.ToggleSaved("cobra-2145")

	e.ResetFilters()

	assert.True(t, e.Filter().IsDefault())
	assert.Equal(t, []string{"pandas-554", "cobra-2145"}, e.SavedIDs())
	assert.Equal(t, 14, len(e.View().Issues))
}

func TestExplorer_ToggleSaved(t *testing.T) {
	e := newHydrated(t, Options{})

	assert.True(t, e.ToggleSaved("pandas-554"))
	assert.True(t, e.IsSaved("pandas-554"))
	assert.False(t, e.ToggleSaved("pandas-554"))
	assert.False(t, e.IsSaved("pandas-554"))

	assert.False(t, e.ToggleSaved("not-in-catalog"))
	assert.Equal(t, 0, e.SavedCount())
}

func TestExplorer_SavedIssuesInCatalogOrder(t *testing.T) {
	e := newHydrated(t, Options{})

	e.ToggleSaved("cobra-2145")
	e.ToggleSaved("astro-image-143")
	e.ToggleSaved("pandas-554")

	assert.Equal(t, []string{"cobra-2145", "astro-image-143", "pandas-554"}, e.SavedIDs())
	assert.Equal(t, []string{"astro-image-143", "pandas-554", "cobra-2145"}, issueIDs(e.SavedIssues()))
}

func TestExplorer_SavedOnly(t *testing.T) {
	e := newHydrated(t, Options{})
	e.ToggleSaved("cobra-2145")
	e.ToggleSaved("astro-image-143")

	e.ToggleSavedOnly()
	assert.Equal(t, []string{"astro-image-143", "cobra-2145"}, issueIDs(e.View().Issues))

	e.ToggleSaved("cobra-2145")
	assert.Equal(t, []string{"astro-image-143"}, issueIDs(e.View().Issues))
}

func TestExplorer_Pagination(t *testing.T) {
	feed := NewViewportFeed(80)
	e := newHydrated(t, Options{Viewport: feed})
	e.Mount()
	defer e.Unmount()

	assert.Equal(t, 6, e.PageSize())
	assert.Len(t, e.Revealed(), 6)
	assert.True(t, e.HasMore())

	e.LoadMore()
	assert.Equal(t, 2, e.Page())
	assert.Len(t, e.Revealed(), 12)

	e.LoadMore()
	assert.Len(t, e.Revealed(), 14)
	assert.False(t, e.HasMore())

	e.LoadMore()
	assert.Equal(t, 3, e.Page())
}

func TestExplorer_FilterChangeResetsPage(t *testing.T) {
	e := newHydrated(t, Options{})
	e.LoadMore()
	require.Equal(t, 2, e.Page())

	e.ToggleGoodFirstOnly()
	assert.Equal(t, 1, e.Page())

	e.LoadMore()
	e.SetLevel(domain.LevelAdvanced)
	assert.Equal(t, 1, e.Page())
}

func TestExplorer_SavedChangeResetsPageInSavedOnly(t *testing.T) {
	e := newHydrated(t, Options{Viewport: NewViewportFeed(80)})
	e.Mount()
	defer e.Unmount()

	for _, issue := range builtinCatalog(t).Issues()[:8] {
		e.ToggleSaved(issue.ID)
	}
	e.LoadMore()
	require.Equal(t, 2, e.Page())

	e.ToggleSaved("pandas-554")
	assert.Equal(t, 2, e.Page(), "saved changes keep the page outside saved-only")

	e.ToggleSavedOnly()
	e.LoadMore()
	require.Equal(t, 2, e.Page())

	e.ToggleSaved("astro-image-143")
	assert.Equal(t, 1, e.Page())
	assert.Len(t, e.Revealed(), 6)
}

func TestExplorer_ResizeResetsPage(t *testing.T) {
	feed := NewViewportFeed(160)
	e := newHydrated(t, Options{Viewport: feed})
	e.Mount()

	assert.Equal(t, 10, e.PageSize())
	e.LoadMore()
	require.Equal(t, 2, e.Page())

	feed.Publish(60)
	assert.Equal(t, 6, e.PageSize())
	assert.Equal(t, 1, e.Page())

	e.LoadMore()
	feed.Publish(120)
	assert.Equal(t, 10, e.PageSize())
	assert.Equal(t, 1, e.Page())

	e.Unmount()
	assert.Equal(t, 0, feed.Subscribers())

	feed.Publish(60)
	assert.Equal(t, 10, e.PageSize())
}

func TestExplorer_MountIsIdempotent(t *testing.T) {
	feed := NewViewportFeed(0)
	e := newHydrated(t, Options{Viewport: feed})

	e.Mount()
	e.Mount()
	assert.Equal(t, 1, feed.Subscribers())
	assert.Equal(t, 10, e.PageSize())

	e.Unmount()
	assert.Equal(t, 0, feed.Subscribers())
}

func TestExplorer_CustomPaging(t *testing.T) {
	feed := NewViewportFeed(70)
	e := newHydrated(t, Options{
		Viewport: feed,
		Paging:   domain.Paging{Breakpoint: 80, Narrow: 3, Wide: 5},
	})
	e.Mount()
	defer e.Unmount()

	assert.Equal(t, 3, e.PageSize())
	feed.Publish(80)
	assert.Equal(t, 5, e.PageSize())
}
