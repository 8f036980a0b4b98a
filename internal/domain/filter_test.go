package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	issues := fixtureIssues()
	docs := issues[1]

	tests := []struct {
		name     string
		query    string
		language string
		labels   []string
		level    Level
		gfi      bool
		want     bool
	}{
		{"no criteria", "", FilterAll, nil, LevelAll, false, true},
		{"query in title", "document", FilterAll, nil, LevelAll, false, true},
		{"query in description", "usage", FilterAll, nil, LevelAll, false, true},
		{"query in repo", "bolt/cli", FilterAll, nil, LevelAll, false, true},
		{"query miss", "rustacean", FilterAll, nil, LevelAll, false, false},
		{"language match", "", "Python", nil, LevelAll, false, true},
		{"language miss", "", "Rust", nil, LevelAll, false, false},
		{"level match", "", FilterAll, nil, LevelIntermediate, false, true},
		{"level miss", "", FilterAll, nil, LevelAdvanced, false, false},
		{"single label", "", FilterAll, []string{"docs"}, LevelAll, false, true},
		{"all labels", "", FilterAll, []string{"docs", "help wanted"}, LevelAll, false, true},
		{"labels are AND", "", FilterAll, []string{"docs", "examples"}, LevelAll, false, false},
		{"good first required", "", FilterAll, nil, LevelAll, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(docs, NormalizeQuery(tt.query), tt.language, tt.labels, tt.level, tt.gfi)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatches_QueryIsCaseInsensitiveAndTrimmed(t *testing.T) {
	issue := fixtureIssues()[0]

	assert.True(t, Matches(issue, NormalizeQuery("  DARK Mode "), FilterAll, nil, LevelAll, false))
	assert.True(t, Matches(issue, NormalizeQuery("   "), FilterAll, nil, LevelAll, false))
}

func TestMatches_LabelCaseSensitive(t *testing.T) {
	issue := fixtureIssues()[1]
	assert.False(t, Matches(issue, "", FilterAll, []string{"Docs"}, LevelAll, false))
}

func TestFilterState_WithLabelToggled(t *testing.T) {
	f := DefaultFilter()

	on := f.WithLabelToggled("docs")
	assert.Equal(t, []string{"docs"}, on.Labels)
	assert.Empty(t, f.Labels, "receiver must not change")

	off := on.WithLabelToggled("docs")
	assert.Empty(t, off.Labels)
	assert.True(t, off.Equal(f))
}

func TestFilterState_Equal_LabelsAsSet(t *testing.T) {
	a := DefaultFilter().WithLabelToggled("docs").WithLabelToggled("examples")
	b := DefaultFilter().WithLabelToggled("examples").WithLabelToggled("docs")
	assert.True(t, a.Equal(b))

	b.SavedOnly = true
	assert.False(t, a.Equal(b))
}

func TestFilterState_IsDefault(t *testing.T) {
	assert.True(t, DefaultFilter().IsDefault())

	f := DefaultFilter()
	f.Query = "x"
	assert.False(t, f.IsDefault())

	f = DefaultFilter()
	f.OnlyGoodFirst = true
	assert.False(t, f.IsDefault())
}

func TestFilterState_Clone(t *testing.T) {
	f := DefaultFilter().WithLabelToggled("docs")
	c := f.Clone()
	c.Labels[0] = "changed"
	assert.Equal(t, "docs", f.Labels[0])

	var zero FilterState
	assert.NotNil(t, zero.Clone().Labels)
}

func TestParseLevelFilter(t *testing.T) {
	l, err := ParseLevelFilter("")
	assert.NoError(t, err)
	assert.Equal(t, LevelAll, l)

	l, err = ParseLevelFilter("advanced")
	assert.NoError(t, err)
	assert.Equal(t, LevelAdvanced, l)

	_, err = ParseLevelFilter("expert")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}
