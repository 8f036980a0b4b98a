package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/oss-curator/internal/domain"
)

// OpenIssueInput contains the parameters for opening an issue link.
type OpenIssueInput struct {
	ID string // Issue ID (required)
}

// OpenIssueOutput contains the opened link.
type OpenIssueOutput struct {
	URL string
}

// OpenIssue is the use case for opening an issue's page in the browser.
type OpenIssue struct {
	catalog *domain.Catalog
	opener  domain.LinkOpener
	logger  domain.Logger
}

// NewOpenIssue creates a new OpenIssue use case.
func NewOpenIssue(catalog *domain.Catalog, opener domain.LinkOpener, logger domain.Logger) *OpenIssue {
	return &OpenIssue{catalog: catalog, opener: opener, logger: logger}
}

// Execute opens the issue link without waiting for the browser.
func (uc *OpenIssue) Execute(ctx context.Context, in OpenIssueInput) (*OpenIssueOutput, error) {
	issue, ok := uc.catalog.Get(in.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrIssueNotFound, in.ID)
	}
	if err := uc.opener.Open(ctx, issue.Link); err != nil {
		uc.logger.Warn("link", fmt.Sprintf("open %s: %v", issue.ID, err))
		return nil, err
	}
	uc.logger.Info("link", fmt.Sprintf("opened %s", issue.Link))
	return &OpenIssueOutput{URL: issue.Link}, nil
}
