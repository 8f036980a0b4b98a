package domain

import (
	"math"
	"sort"
)

// Stats aggregates the visible issues.
type Stats struct {
	FeaturedLanguage string
	Total            int
	Orgs             int
	GoodFirst        int
	FeaturedShare    int // percentage of visible issues in FeaturedLanguage
}

// View is the derived result of applying a filter to the catalog.
type View struct {
	Issues []Issue
	Stats  Stats
}

// Derive returns the catalog issues matching f, in catalog order, with their
// statistics. When f.SavedOnly is set only members of saved are kept.
// Derive has no side effects.
func Derive(c *Catalog, f FilterState, saved *SavedSet, featuredLanguage string) View {
	q := NormalizeQuery(f.Query)
	visible := make([]Issue, 0, c.Len())
	for _, issue := range c.issues {
		if f.SavedOnly && !saved.Has(issue.ID) {
			continue
		}
		if Matches(issue, q, f.Language, f.Labels, f.Level, f.OnlyGoodFirst) {
			visible = append(visible, issue)
		}
	}
	return View{
		Issues: visible,
		Stats:  ComputeStats(visible, featuredLanguage),
	}
}

// ComputeStats aggregates issues.
func ComputeStats(issues []Issue, featuredLanguage string) Stats {
	orgs := make(map[string]struct{})
	s := Stats{
		Total:            len(issues),
		FeaturedLanguage: featuredLanguage,
		FeaturedShare:    LanguageShare(issues, featuredLanguage),
	}
	for _, issue := range issues {
		orgs[issue.Org] = struct{}{}
		if issue.GoodFirstIssue {
			s.GoodFirst++
		}
	}
	s.Orgs = len(orgs)
	return s
}

// LanguageShare returns the rounded percentage of issues written in language.
// It is 0 for an empty slice.
func LanguageShare(issues []Issue, language string) int {
	if len(issues) == 0 {
		return 0
	}
	n := 0
	for _, issue := range issues {
		if issue.Language == language {
			n++
		}
	}
	return int(math.Round(100 * float64(n) / float64(len(issues))))
}

// LanguageCount is one row of a language breakdown.
type LanguageCount struct {
	Language string
	Count    int
	Share    int
}

// LanguageBreakdown returns per-language counts sorted by count desc, then name.
func LanguageBreakdown(issues []Issue) []LanguageCount {
	counts := make(map[string]int)
	for _, issue := range issues {
		counts[issue.Language]++
	}
	out := make([]LanguageCount, 0, len(counts))
	for lang, n := range counts {
		out = append(out, LanguageCount{
			Language: lang,
			Count:    n,
			Share:    LanguageShare(issues, lang),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Language < out[j].Language
	})
	return out
}
