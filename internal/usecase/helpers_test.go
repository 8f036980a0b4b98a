package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/explorer"
	"github.com/runoshun/oss-curator/internal/infra/catalog"
	"github.com/runoshun/oss-curator/internal/testutil"
	"github.com/stretchr/testify/require"
)

func newExplorer(t *testing.T) (*explorer.Explorer, *testutil.MockStateStore) {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)

	store := testutil.NewMockStateStore()
	ex := explorer.New(cat, explorer.Options{Store: store, FeaturedLanguage: "Python"})
	ex.Hydrate(context.Background())
	return ex, store
}

func ptr[T any](v T) *T { return &v }

func ids(issues []domain.Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.ID
	}
	return out
}
