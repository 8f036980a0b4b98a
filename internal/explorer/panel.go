package explorer

import (
	"slices"

	"github.com/runoshun/oss-curator/internal/domain"
)

// escapeKey is the key that dismisses the panel.
const escapeKey = "esc"

// PanelOpen reports whether the saved-issues panel is shown.
func (e *Explorer) PanelOpen() bool {
	return e.panel.IsOpen()
}

// OpenPanel shows the saved-issues panel. The first saved issue in catalog
// order becomes active unless a still-saved issue was active before.
// Returns domain.ErrPanelEmpty when nothing is saved.
func (e *Explorer) OpenPanel() error {
	wasOpen := e.panel.IsOpen()
	if err := e.panel.Open(e.savedOrder()); err != nil {
		return err
	}
	if !wasOpen {
		e.subscribeKeys()
		e.overlay.Present()
		e.logger.Debug("panel", "opened")
	}
	return nil
}

// ClosePanel hides the saved-issues panel.
func (e *Explorer) ClosePanel() {
	if !e.panel.IsOpen() {
		return
	}
	e.panel.Close()
	e.panelClosed()
}

// SetActive switches the detailed saved issue.
func (e *Explorer) SetActive(id string) error {
	return e.panel.SetActive(id, e.savedOrder())
}

// MoveActive moves the active issue by delta positions in the saved list,
// clamped to its ends.
func (e *Explorer) MoveActive(delta int) {
	if !e.panel.IsOpen() {
		return
	}
	ids := e.savedOrder()
	if len(ids) == 0 {
		return
	}
	i := slices.Index(ids, e.panel.Active()) + delta
	i = max(0, min(i, len(ids)-1))
	_ = e.panel.SetActive(ids[i], ids)
}

// ActiveIssue returns the issue detailed in the open panel.
func (e *Explorer) ActiveIssue() (domain.Issue, bool) {
	if !e.panel.IsOpen() || !e.saved.Has(e.panel.Active()) {
		return domain.Issue{}, false
	}
	return e.catalog.Get(e.panel.Active())
}

// ActiveID returns the active id, or "" when none.
func (e *Explorer) ActiveID() string {
	return e.panel.Active()
}

func (e *Explorer) settlePanel() {
	if e.panel.Settle(e.savedOrder()) {
		e.logger.Debug("panel", "closed: no saved issues left")
		e.panelClosed()
	}
}

func (e *Explorer) panelClosed() {
	e.unsubscribeKeys()
	e.overlay.Dismiss()
	e.logger.Debug("panel", "closed")
}

func (e *Explorer) subscribeKeys() {
	if e.keys == nil || e.keySub != nil {
		return
	}
	e.keySub = e.keys.SubscribeKeys(func(key string) {
		if key == escapeKey {
			e.ClosePanel()
		}
	})
}

func (e *Explorer) unsubscribeKeys() {
	if e.keySub != nil {
		e.keySub.Unsubscribe()
		e.keySub = nil
	}
}
