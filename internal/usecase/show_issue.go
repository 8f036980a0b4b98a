package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/explorer"
)

// ShowIssueInput contains the parameters for showing an issue.
type ShowIssueInput struct {
	ID string // Issue ID (required)
}

// ShowIssueOutput contains the result of showing an issue.
type ShowIssueOutput struct {
	Issue       domain.Issue
	Updated     string   // Relative update time, e.g. "3 days ago"
	Collections []string // IDs of collections featuring the issue
	Saved       bool
}

// ShowIssue is the use case for displaying issue details.
type ShowIssue struct {
	ex      *explorer.Explorer
	matcher domain.CollectionMatcher
	clock   domain.Clock
}

// NewShowIssue creates a new ShowIssue use case.
func NewShowIssue(ex *explorer.Explorer, matcher domain.CollectionMatcher, clock domain.Clock) *ShowIssue {
	return &ShowIssue{ex: ex, matcher: matcher, clock: clock}
}

// Execute returns the issue details.
func (uc *ShowIssue) Execute(_ context.Context, in ShowIssueInput) (*ShowIssueOutput, error) {
	cat := uc.ex.Catalog()
	issue, ok := cat.Get(in.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrIssueNotFound, in.ID)
	}

	var collections []string
	for _, col := range cat.Collections() {
		members, err := uc.matcher.Members(cat, col)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			if m.ID == issue.ID {
				collections = append(collections, col.ID)
				break
			}
		}
	}

	return &ShowIssueOutput{
		Issue:       issue,
		Saved:       uc.ex.IsSaved(issue.ID),
		Updated:     domain.FormatRelativeTime(issue.UpdatedAt, uc.clock.Now()),
		Collections: collections,
	}, nil
}
