package rules

import (
	"testing"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/infra/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_Match(t *testing.T) {
	issue := domain.Issue{
		ID:       "x",
		Labels:   []string{"docs", "good first issue"},
		Topics:   []string{"dx"},
		Language: "Go",
		Level:    domain.LevelFirstTimers,
		Stars:    1200,
	}

	tests := []struct {
		rule string
		want bool
	}{
		{`"docs" in labels`, true},
		{`"design" in labels`, false},
		{`any(labels, {# contains "doc"})`, true},
		{`"dx" in topics && language == "Go"`, true},
		{`stars > 5000`, false},
		{`level == "first-timers"`, true},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			got, err := e.Match(tt.rule, issue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluator_Compile_Invalid(t *testing.T) {
	e := New()

	_, err := e.Compile("")
	assert.ErrorIs(t, err, domain.ErrInvalidRule)

	_, err = e.Compile(`labels +`)
	assert.ErrorIs(t, err, domain.ErrInvalidRule)

	// Non-boolean result
	_, err = e.Compile(`stars`)
	assert.ErrorIs(t, err, domain.ErrInvalidRule)
}

func TestEvaluator_Compile_Caches(t *testing.T) {
	e := New()
	p1, err := e.Compile(`"docs" in labels`)
	require.NoError(t, err)
	p2, err := e.Compile(`"docs" in labels`)
	require.NoError(t, err)
	assert.Same(t, p1, p2)
}

func TestEvaluator_Members_BuiltinCollections(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)

	want := map[string][]string{
		"docs-trail":      {"next-auth-941", "trpc-5011", "pandas-554", "langchain-221", "godot-physics-788", "nuxt-content-421", "cobra-2145"},
		"frontend-polish": {"astro-image-143", "supabase-dashboard-231", "nuxt-content-421", "flutter-ui-180"},
		"typed-api":       {"remix-run-332"},
	}

	e := New()
	for _, col := range cat.Collections() {
		members, err := e.Members(cat, col)
		require.NoError(t, err)
		ids := make([]string, 0, len(members))
		for _, m := range members {
			ids = append(ids, m.ID)
		}
		assert.Equal(t, want[col.ID], ids, col.ID)
	}
}
