package domain

import (
	"fmt"
	"slices"
	"sort"
)

// Collection is a themed bundle of issues selected by a rule expression.
type Collection struct {
	ID          string   `json:"id" yaml:"id" toml:"id" validate:"required"`
	Title       string   `json:"title" yaml:"title" toml:"title" validate:"required"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Rule        string   `json:"rule" yaml:"rule" toml:"rule" validate:"required"`
	Criteria    []string `json:"criteria" yaml:"criteria" toml:"criteria"`
}

// Catalog is the immutable, ordered collection of issues available for a
// session together with its distinct-value lookup tables.
type Catalog struct {
	index       map[string]int
	issues      []Issue
	languages   []string
	labels      []string
	collections []Collection
}

// NewCatalog builds a catalog preserving the order of issues.
// Identifiers must be unique.
func NewCatalog(issues []Issue, collections []Collection) (*Catalog, error) {
	c := &Catalog{
		index:       make(map[string]int, len(issues)),
		issues:      slices.Clone(issues),
		collections: slices.Clone(collections),
	}

	languages := make(map[string]struct{})
	labels := make(map[string]struct{})
	for i, issue := range c.issues {
		if _, dup := c.index[issue.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIssueID, issue.ID)
		}
		c.index[issue.ID] = i
		languages[issue.Language] = struct{}{}
		for _, l := range issue.Labels {
			labels[l] = struct{}{}
		}
	}

	c.languages = sortedKeys(languages)
	c.labels = sortedKeys(labels)
	return c, nil
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Issues returns the issues in catalog order.
func (c *Catalog) Issues() []Issue {
	return slices.Clone(c.issues)
}

// Len returns the number of issues in the catalog.
func (c *Catalog) Len() int {
	return len(c.issues)
}

// Get returns the issue with the given id.
func (c *Catalog) Get(id string) (Issue, bool) {
	i, ok := c.index[id]
	if !ok {
		return Issue{}, false
	}
	return c.issues[i], true
}

// Has reports whether id belongs to the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Position returns the catalog position of id, or -1.
func (c *Catalog) Position(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Languages returns the distinct languages, sorted.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.languages)
}

// Labels returns the distinct labels, sorted.
func (c *Catalog) Labels() []string {
	return slices.Clone(c.labels)
}

// Levels returns the issue levels.
func (c *Catalog) Levels() []Level {
	return AllLevels()
}

// Collections returns the spotlight collections.
func (c *Catalog) Collections() []Collection {
	return slices.Clone(c.collections)
}

// HasLanguage reports whether any issue is written in language.
func (c *Catalog) HasLanguage(language string) bool {
	_, found := slices.BinarySearch(c.languages, language)
	return found
}

// HasLabel reports whether any issue carries label.
func (c *Catalog) HasLabel(label string) bool {
	_, found := slices.BinarySearch(c.labels, label)
	return found
}

// Summary describes the whole catalog regardless of filters.
type Summary struct {
	Issues    int
	Orgs      int
	Languages int
	GoodFirst int
}

// Summary returns header statistics for the whole catalog.
func (c *Catalog) Summary() Summary {
	orgs := make(map[string]struct{})
	s := Summary{Issues: len(c.issues), Languages: len(c.languages)}
	for _, issue := range c.issues {
		orgs[issue.Org] = struct{}{}
		if issue.GoodFirstIssue {
			s.GoodFirst++
		}
	}
	s.Orgs = len(orgs)
	return s
}
