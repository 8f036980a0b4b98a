package usecase

import (
	"context"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/explorer"
)

// ResetFiltersInput contains the parameters for resetting filters.
type ResetFiltersInput struct{}

// ResetFiltersOutput contains the filters after the reset.
type ResetFiltersOutput struct {
	Filter     domain.FilterState
	CountLabel string
	SavedCount int
}

// ResetFilters is the use case for clearing every filter. Saved issues are kept.
type ResetFilters struct {
	ex *explorer.Explorer
}

// NewResetFilters creates a new ResetFilters use case.
func NewResetFilters(ex *explorer.Explorer) *ResetFilters {
	return &ResetFilters{ex: ex}
}

// Execute resets the filters.
func (uc *ResetFilters) Execute(_ context.Context, _ ResetFiltersInput) (*ResetFiltersOutput, error) {
	uc.ex.ResetFilters()
	return &ResetFiltersOutput{
		Filter:     uc.ex.Filter(),
		CountLabel: uc.ex.CountLabel(),
		SavedCount: uc.ex.SavedCount(),
	}, nil
}
