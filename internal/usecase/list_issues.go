// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/explorer"
)

// ListIssuesInput contains the filter changes to apply before listing.
// Nil fields keep the persisted value.
type ListIssuesInput struct {
	Query     *string
	Language  *string
	Level     *string
	Labels    []string // Replaces the selected labels when non-nil
	GoodFirst *bool
	SavedOnly *bool
	Pages     int  // Pages to reveal; values below 1 reveal one page
	All       bool // Reveal every visible issue
}

// ListIssuesOutput contains the result of listing issues.
type ListIssuesOutput struct {
	Issues     []domain.Issue // Revealed issues
	Filter     domain.FilterState
	CountLabel string
	Stats      domain.Stats
	Visible    int
	HasMore    bool
}

// ListIssues is the use case for filtering and listing issues.
type ListIssues struct {
	ex *explorer.Explorer
}

// NewListIssues creates a new ListIssues use case.
func NewListIssues(ex *explorer.Explorer) *ListIssues {
	return &ListIssues{ex: ex}
}

// Execute validates and applies the filter changes, then lists issues.
// Nothing is applied when any value is invalid.
func (uc *ListIssues) Execute(_ context.Context, in ListIssuesInput) (*ListIssuesOutput, error) {
	cat := uc.ex.Catalog()

	if in.Language != nil && *in.Language != domain.FilterAll && !cat.HasLanguage(*in.Language) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, *in.Language)
	}
	var level domain.Level
	if in.Level != nil {
		l, err := domain.ParseLevelFilter(*in.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}
	for _, l := range in.Labels {
		if !cat.HasLabel(l) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLabel, l)
		}
	}

	if in.Query != nil {
		uc.ex.SetQuery(*in.Query)
	}
	if in.Language != nil {
		uc.ex.SetLanguage(*in.Language)
	}
	if in.Level != nil {
		uc.ex.SetLevel(level)
	}
	if in.Labels != nil {
		applyLabels(uc.ex, in.Labels)
	}
	if in.GoodFirst != nil && *in.GoodFirst != uc.ex.Filter().OnlyGoodFirst {
		uc.ex.ToggleGoodFirstOnly()
	}
	if in.SavedOnly != nil && *in.SavedOnly != uc.ex.Filter().SavedOnly {
		uc.ex.ToggleSavedOnly()
	}

	for i := 1; i < in.Pages && uc.ex.HasMore(); i++ {
		uc.ex.LoadMore()
	}
	for in.All && uc.ex.HasMore() {
		uc.ex.LoadMore()
	}

	view := uc.ex.View()
	return &ListIssuesOutput{
		Issues:     uc.ex.Revealed(),
		Filter:     uc.ex.Filter(),
		CountLabel: uc.ex.CountLabel(),
		Stats:      view.Stats,
		Visible:    len(view.Issues),
		HasMore:    uc.ex.HasMore(),
	}, nil
}

// applyLabels toggles labels until the selection equals want.
func applyLabels(ex *explorer.Explorer, want []string) {
	target := make(map[string]bool, len(want))
	for _, l := range want {
		target[l] = true
	}
	for _, l := range ex.Filter().Labels {
		if !target[l] {
			ex.ToggleLabel(l)
		}
	}
	current := ex.Filter()
	for _, l := range want {
		if !current.HasLabel(l) {
			ex.ToggleLabel(l)
			current = ex.Filter()
		}
	}
}
