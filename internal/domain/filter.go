package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"
)

// FilterAll is the "no restriction" value for the language filter.
const FilterAll = "all"

// FilterState holds the criteria narrowing the catalog.
// Labels keep insertion order; order does not affect matching.
type FilterState struct {
	Query         string
	Language      string
	Level         Level
	Labels        []string
	OnlyGoodFirst bool
	SavedOnly     bool
}

// DefaultFilter returns the filter that matches every issue.
func DefaultFilter() FilterState {
	return FilterState{
		Language: FilterAll,
		Level:    LevelAll,
		Labels:   []string{},
	}
}

// Clone returns a copy that shares no memory with f.
func (f FilterState) Clone() FilterState {
	f.Labels = slices.Clone(f.Labels)
	if f.Labels == nil {
		f.Labels = []string{}
	}
	return f
}

// IsDefault reports whether f equals DefaultFilter.
func (f FilterState) IsDefault() bool {
	return f.Query == "" &&
		f.Language == FilterAll &&
		f.Level == LevelAll &&
		len(f.Labels) == 0 &&
		!f.OnlyGoodFirst &&
		!f.SavedOnly
}

// HasLabel reports whether label is selected.
func (f FilterState) HasLabel(label string) bool {
	return slices.Contains(f.Labels, label)
}

// WithLabelToggled returns f with label removed if selected, appended otherwise.
func (f FilterState) WithLabelToggled(label string) FilterState {
	f = f.Clone()
	if i := slices.Index(f.Labels, label); i >= 0 {
		f.Labels = slices.Delete(f.Labels, i, i+1)
		return f
	}
	f.Labels = append(f.Labels, label)
	return f
}

// Equal reports whether two filters select the same criteria, comparing
// labels as sets.
func (f FilterState) Equal(o FilterState) bool {
	if f.Query != o.Query || f.Language != o.Language || f.Level != o.Level ||
		f.OnlyGoodFirst != o.OnlyGoodFirst || f.SavedOnly != o.SavedOnly {
		return false
	}
	if len(f.Labels) != len(o.Labels) {
		return false
	}
	for _, l := range f.Labels {
		if !slices.Contains(o.Labels, l) {
			return false
		}
	}
	return true
}

// fold lowercases s for case-insensitive comparison.
// A Caser is stateful, so one is built per call.
func fold(s string) string {
	return cases.Lower(xlanguage.Und).String(s)
}

// NormalizeQuery trims and lowercases free text for Matches.
func NormalizeQuery(q string) string {
	return fold(strings.TrimSpace(q))
}

// Matches reports whether issue satisfies every criterion.
// normalizedQuery must come from NormalizeQuery. Selected labels use AND
// semantics: the issue must carry all of them.
func Matches(issue Issue, normalizedQuery, language string, selectedLabels []string, level Level, onlyGoodFirst bool) bool {
	return matchesQuery(issue, normalizedQuery) &&
		(language == FilterAll || issue.Language == language) &&
		(level == LevelAll || issue.Level == level) &&
		matchesLabels(issue, selectedLabels) &&
		(!onlyGoodFirst || issue.GoodFirstIssue)
}

// MatchesFilter applies Matches with the criteria of f.
// SavedOnly is not considered here; see Derive.
func MatchesFilter(issue Issue, f FilterState) bool {
	return Matches(issue, NormalizeQuery(f.Query), f.Language, f.Labels, f.Level, f.OnlyGoodFirst)
}

func matchesQuery(issue Issue, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(fold(issue.Title), q) ||
		strings.Contains(fold(issue.Description), q) ||
		strings.Contains(fold(issue.Repo), q)
}

func matchesLabels(issue Issue, selected []string) bool {
	for _, l := range selected {
		if !issue.HasLabel(l) {
			return false
		}
	}
	return true
}
