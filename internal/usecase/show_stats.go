package usecase

import (
	"context"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/explorer"
)

// ShowStatsInput contains the parameters for showing statistics.
type ShowStatsInput struct{}

// ShowStatsOutput contains statistics for the visible issues and the catalog.
type ShowStatsOutput struct {
	CountLabel string
	Breakdown  []domain.LanguageCount // Languages of the visible issues
	Stats      domain.Stats
	Catalog    domain.Summary
	Saved      int
}

// ShowStats is the use case for the statistics summary.
type ShowStats struct {
	ex *explorer.Explorer
}

// NewShowStats creates a new ShowStats use case.
func NewShowStats(ex *explorer.Explorer) *ShowStats {
	return &ShowStats{ex: ex}
}

// Execute computes the statistics under the current filters.
func (uc *ShowStats) Execute(_ context.Context, _ ShowStatsInput) (*ShowStatsOutput, error) {
	view := uc.ex.View()
	return &ShowStatsOutput{
		Stats:      view.Stats,
		Catalog:    uc.ex.Catalog().Summary(),
		Breakdown:  domain.LanguageBreakdown(view.Issues),
		CountLabel: uc.ex.CountLabel(),
		Saved:      uc.ex.SavedCount(),
	}, nil
}
