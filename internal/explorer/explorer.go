// Package explorer implements the issue explorer state machine: filter and
// saved-set transitions, the derived visible list, pagination, the
// saved-issues panel and the persistence bridge to durable storage.
//
// An Explorer is single-threaded. Every operation runs to completion and
// leaves the derived state consistent before returning.
package explorer

import (
	"fmt"

	"github.com/runoshun/oss-curator/internal/domain"
)

// Options configures an Explorer. Zero values select headless defaults.
type Options struct {
	Store            domain.StateStore
	Overlay          domain.Overlay
	Viewport         ViewportSource
	Keys             KeySource
	Logger           domain.Logger
	Key              string
	FeaturedLanguage string
	Paging           domain.Paging
}

// Explorer holds filter, saved and panel state over an immutable catalog.
type Explorer struct {
	catalog  *domain.Catalog
	store    domain.StateStore
	overlay  domain.Overlay
	logger   domain.Logger
	viewport ViewportSource
	keys     KeySource

	viewportSub Subscription
	keySub      Subscription

	saved *domain.SavedSet
	view  *domain.View

	filter domain.FilterState
	panel  domain.Panel
	pager  domain.Pager
	paging domain.Paging

	key      string
	featured string
	hydrated bool
}

// New creates an explorer with default filters and an empty saved set.
// Call Hydrate (or Restore) before mutations are persisted.
func New(catalog *domain.Catalog, opts Options) *Explorer {
	if opts.Store == nil {
		opts.Store = domain.NopStateStore{}
	}
	if opts.Overlay == nil {
		opts.Overlay = domain.NopOverlay{}
	}
	if opts.Logger == nil {
		opts.Logger = domain.NopLogger{}
	}
	if opts.Key == "" {
		opts.Key = domain.DefaultStateKey
	}
	if opts.Paging.Narrow < 1 || opts.Paging.Wide < 1 {
		opts.Paging = domain.DefaultPaging()
	}

	return &Explorer{
		catalog:  catalog,
		store:    opts.Store,
		overlay:  opts.Overlay,
		logger:   opts.Logger,
		viewport: opts.Viewport,
		keys:     opts.Keys,
		saved:    domain.NewSavedSet(),
		filter:   domain.DefaultFilter(),
		pager:    domain.NewPager(opts.Paging.Wide),
		paging:   opts.Paging,
		key:      opts.Key,
		featured: opts.FeaturedLanguage,
	}
}

// Mount subscribes to the viewport source and applies its current width.
func (e *Explorer) Mount() {
	if e.viewport == nil || e.viewportSub != nil {
		return
	}
	e.viewportSub = e.viewport.SubscribeViewport(e.handleResize)
	if w := e.viewport.Width(); w > 0 {
		e.handleResize(w)
	}
}

// Unmount drops every subscription held by the explorer.
func (e *Explorer) Unmount() {
	if e.viewportSub != nil {
		e.viewportSub.Unsubscribe()
		e.viewportSub = nil
	}
	e.unsubscribeKeys()
}

func (e *Explorer) handleResize(width int) {
	e.pager.Resize(e.paging.SizeFor(width))
}

// Catalog returns the catalog the explorer filters.
func (e *Explorer) Catalog() *domain.Catalog {
	return e.catalog
}

// Filter returns a copy of the current filter.
func (e *Explorer) Filter() domain.FilterState {
	return e.filter.Clone()
}

// SetQuery replaces the free-text query.
func (e *Explorer) SetQuery(q string) {
	if q == e.filter.Query {
		return
	}
	e.filter.Query = q
	e.filterChanged()
}

// SetLanguage replaces the language filter ("all" or a language).
func (e *Explorer) SetLanguage(language string) {
	if language == e.filter.Language {
		return
	}
	e.filter.Language = language
	e.filterChanged()
}

// SetLevel replaces the level filter.
func (e *Explorer) SetLevel(level domain.Level) {
	if level == e.filter.Level {
		return
	}
	e.filter.Level = level
	e.filterChanged()
}

// ToggleLabel selects label if unselected and unselects it otherwise.
func (e *Explorer) ToggleLabel(label string) {
	e.filter = e.filter.WithLabelToggled(label)
	e.filterChanged()
}

// ToggleGoodFirstOnly flips the good-first-issue restriction.
func (e *Explorer) ToggleGoodFirstOnly() {
	e.filter.OnlyGoodFirst = !e.filter.OnlyGoodFirst
	e.filterChanged()
}

// ToggleSavedOnly flips the restriction of the feed to saved issues.
func (e *Explorer) ToggleSavedOnly() {
	e.filter.SavedOnly = !e.filter.SavedOnly
	e.filterChanged()
}

// ResetFilters restores every filter field to its default in one update.
// The saved set is untouched.
func (e *Explorer) ResetFilters() {
	e.filter = domain.DefaultFilter()
	e.filterChanged()
}

func (e *Explorer) filterChanged() {
	e.view = nil
	e.pager.Reset()
	e.persist()
}

// ToggleSaved saves id if absent and removes it otherwise, returning whether
// it is saved afterwards. Ids outside the catalog are ignored.
func (e *Explorer) ToggleSaved(id string) bool {
	if !e.catalog.Has(id) {
		e.logger.Debug("saved", fmt.Sprintf("ignoring unknown issue %q", id))
		return false
	}
	saved := e.saved.Toggle(id)
	e.savedChanged()
	return saved
}

// IsSaved reports whether id is saved.
func (e *Explorer) IsSaved(id string) bool {
	return e.saved.Has(id)
}

// SavedIDs returns the saved ids in the order they were saved.
func (e *Explorer) SavedIDs() []string {
	return e.saved.IDs()
}

// SavedCount returns the number of saved issues.
func (e *Explorer) SavedCount() int {
	return e.saved.Len()
}

// SavedIssues returns the saved issues in catalog order.
func (e *Explorer) SavedIssues() []domain.Issue {
	out := make([]domain.Issue, 0, e.saved.Len())
	for _, issue := range e.catalog.Issues() {
		if e.saved.Has(issue.ID) {
			out = append(out, issue)
		}
	}
	return out
}

func (e *Explorer) savedOrder() []string {
	issues := e.SavedIssues()
	ids := make([]string, len(issues))
	for i, issue := range issues {
		ids[i] = issue.ID
	}
	return ids
}

func (e *Explorer) savedChanged() {
	e.view = nil
	// The saved set only shapes the feed in saved-only mode
	if e.filter.SavedOnly {
		e.pager.Reset()
	}
	e.settlePanel()
	e.persist()
}

// View returns the visible issues and their statistics.
func (e *Explorer) View() domain.View {
	if e.view == nil {
		v := domain.Derive(e.catalog, e.filter, e.saved, e.featured)
		e.view = &v
	}
	return *e.view
}

// CountLabel renders "<visible> of <catalog size> issues visible".
func (e *Explorer) CountLabel() string {
	return fmt.Sprintf("%d of %d issues visible", len(e.View().Issues), e.catalog.Len())
}

// Revealed returns the visible issues on the revealed pages.
func (e *Explorer) Revealed() []domain.Issue {
	return e.pager.Reveal(e.View().Issues)
}

// HasMore reports whether visible issues remain unrevealed.
func (e *Explorer) HasMore() bool {
	return e.pager.HasMore(len(e.View().Issues))
}

// LoadMore reveals one more page.
func (e *Explorer) LoadMore() {
	if e.HasMore() {
		e.pager.Next()
	}
}

// Page returns the number of revealed pages.
func (e *Explorer) Page() int {
	return e.pager.Page()
}

// PageSize returns the current page size.
func (e *Explorer) PageSize() int {
	return e.pager.Size()
}
