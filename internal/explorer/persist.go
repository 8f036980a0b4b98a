package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/runoshun/oss-curator/internal/domain"
)

// snapshot is the persisted subset of explorer state.
type snapshot struct {
	Query         string       `json:"query"`
	Language      string       `json:"language"`
	Level         domain.Level `json:"level"`
	Labels        []string     `json:"labels"`
	SavedIssueIDs []string     `json:"savedIssueIds"`
	OnlyGFI       bool         `json:"onlyGFI"`
	SavedOnly     bool         `json:"savedOnly"`
}

func (e *Explorer) snapshot() snapshot {
	f := e.filter.Clone()
	return snapshot{
		Query:         f.Query,
		Language:      f.Language,
		Labels:        f.Labels,
		Level:         f.Level,
		OnlyGFI:       f.OnlyGoodFirst,
		SavedOnly:     f.SavedOnly,
		SavedIssueIDs: e.saved.IDs(),
	}
}

// Hydrated reports whether the one-time restore has completed.
func (e *Explorer) Hydrated() bool {
	return e.hydrated
}

// ReadSnapshot reads the stored record. It only touches the store, so a
// host may call it off the event loop and hand the result to Restore.
func (e *Explorer) ReadSnapshot(ctx context.Context) ([]byte, error) {
	return e.store.Read(ctx, e.key)
}

// Hydrate restores persisted state once. Failures fall back to defaults.
func (e *Explorer) Hydrate(ctx context.Context) {
	e.Restore(e.ReadSnapshot(ctx))
}

// Restore applies a record read by ReadSnapshot and enables persistence.
// Each field is validated on its own; invalid or missing fields keep their
// defaults. Subsequent calls are ignored.
func (e *Explorer) Restore(raw []byte, readErr error) {
	if e.hydrated {
		return
	}
	defer func() { e.hydrated = true }()

	if readErr != nil {
		if errors.Is(readErr, domain.ErrStateNotFound) {
			e.logger.Debug("state", "no stored state, using defaults")
		} else {
			e.logger.Warn("state", fmt.Sprintf("read state: %v", readErr))
		}
		return
	}

	filter, saved, problems := decodeSnapshot(raw, e.catalog)
	for _, p := range problems {
		e.logger.Warn("state", p)
	}

	e.filter = filter
	e.saved = saved
	e.view = nil
	e.pager.Reset()
	e.settlePanel()
	e.logger.Info("state", fmt.Sprintf("restored %d saved issues", saved.Len()))
}

// persist mirrors the snapshot to the store. Writes before hydration are
// skipped so defaults never overwrite stored state. Failures are logged and
// otherwise ignored.
func (e *Explorer) persist() {
	if !e.hydrated {
		return
	}
	data, err := json.Marshal(e.snapshot())
	if err != nil {
		e.logger.Error("state", fmt.Sprintf("encode state: %v", err))
		return
	}
	if err := e.store.Write(context.Background(), e.key, data); err != nil {
		e.logger.Warn("state", fmt.Sprintf("write state: %v", err))
	}
}

// decodeSnapshot parses raw field by field. It never fails: problems are
// reported as messages and the affected fields keep their defaults.
func decodeSnapshot(raw []byte, catalog *domain.Catalog) (domain.FilterState, *domain.SavedSet, []string) {
	filter := domain.DefaultFilter()
	saved := domain.NewSavedSet()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return filter, saved, []string{fmt.Sprintf("discarding malformed state: %v", err)}
	}

	var problems []string
	field := func(name string, dst any) bool {
		v, ok := fields[name]
		if !ok {
			return false
		}
		if err := json.Unmarshal(v, dst); err != nil {
			problems = append(problems, fmt.Sprintf("ignoring %s: %v", name, err))
			return false
		}
		return true
	}

	var query string
	if field("query", &query) {
		filter.Query = query
	}

	var language string
	if field("language", &language) {
		if language == domain.FilterAll || catalog.HasLanguage(language) {
			filter.Language = language
		} else {
			problems = append(problems, fmt.Sprintf("ignoring language: %q not in catalog", language))
		}
	}

	var level string
	if field("level", &level) {
		if l := domain.Level(level); l.IsValidFilter() {
			filter.Level = l
		} else {
			problems = append(problems, fmt.Sprintf("ignoring level: %q", level))
		}
	}

	var onlyGFI bool
	if field("onlyGFI", &onlyGFI) {
		filter.OnlyGoodFirst = onlyGFI
	}

	var savedOnly bool
	if field("savedOnly", &savedOnly) {
		filter.SavedOnly = savedOnly
	}

	var labels []json.RawMessage
	if field("labels", &labels) {
		for _, l := range stringElements(labels) {
			if catalog.HasLabel(l) && !filter.HasLabel(l) {
				filter.Labels = append(filter.Labels, l)
			}
		}
	}

	var ids []json.RawMessage
	if field("savedIssueIds", &ids) {
		for _, id := range stringElements(ids) {
			if catalog.Has(id) {
				saved.Add(id)
			}
		}
	}

	return filter, saved, problems
}

// stringElements keeps the string elements of a JSON array.
func stringElements(elems []json.RawMessage) []string {
	out := make([]string, 0, len(elems))
	for _, raw := range elems {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			out = append(out, s)
		}
	}
	return out
}
