package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/explorer"
)

// SaveMode selects how SaveIssue changes the saved set.
type SaveMode int

// Save modes.
const (
	SaveToggle SaveMode = iota
	SaveAdd
	SaveRemove
)

// SaveIssueInput contains the parameters for saving an issue.
type SaveIssueInput struct {
	ID   string // Issue ID (required)
	Mode SaveMode
}

// SaveIssueOutput contains the result of saving an issue.
type SaveIssueOutput struct {
	Issue   domain.Issue
	Count   int  // Saved issues afterwards
	Saved   bool // Whether the issue is saved afterwards
	Changed bool
}

// SaveIssue is the use case for adding issues to and removing them from
// the saved set.
type SaveIssue struct {
	ex *explorer.Explorer
}

// NewSaveIssue creates a new SaveIssue use case.
func NewSaveIssue(ex *explorer.Explorer) *SaveIssue {
	return &SaveIssue{ex: ex}
}

// Execute applies the change. Adding a saved issue or removing an unsaved
// one is a no-op.
func (uc *SaveIssue) Execute(_ context.Context, in SaveIssueInput) (*SaveIssueOutput, error) {
	issue, ok := uc.ex.Catalog().Get(in.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrIssueNotFound, in.ID)
	}

	was := uc.ex.IsSaved(in.ID)
	toggle := in.Mode == SaveToggle ||
		(in.Mode == SaveAdd && !was) ||
		(in.Mode == SaveRemove && was)
	if toggle {
		uc.ex.ToggleSaved(in.ID)
	}

	return &SaveIssueOutput{
		Issue:   issue,
		Saved:   uc.ex.IsSaved(in.ID),
		Changed: toggle,
		Count:   uc.ex.SavedCount(),
	}, nil
}
