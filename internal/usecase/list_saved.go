package usecase

import (
	"context"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/explorer"
)

// ListSavedInput contains the parameters for listing saved issues.
type ListSavedInput struct{}

// ListSavedOutput contains the saved issues in catalog order.
type ListSavedOutput struct {
	Issues []domain.Issue
}

// ListSaved is the use case for listing the saved set.
type ListSaved struct {
	ex *explorer.Explorer
}

// NewListSaved creates a new ListSaved use case.
func NewListSaved(ex *explorer.Explorer) *ListSaved {
	return &ListSaved{ex: ex}
}

// Execute returns the saved issues.
func (uc *ListSaved) Execute(_ context.Context, _ ListSavedInput) (*ListSavedOutput, error) {
	return &ListSavedOutput{Issues: uc.ex.SavedIssues()}, nil
}
