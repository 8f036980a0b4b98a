package domain

import "slices"

// Panel is the saved-issues overlay: open or closed, plus the saved issue
// whose details are shown. The active id is kept across close/open so a
// reopened panel returns to the same issue while it stays saved.
type Panel struct {
	active string
	open   bool
}

// IsOpen reports whether the panel is shown.
func (p *Panel) IsOpen() bool {
	return p.open
}

// Active returns the active issue id, or "" when none.
func (p *Panel) Active() string {
	return p.active
}

// Open shows the panel over saved, ordered as it is presented.
func (p *Panel) Open(saved []string) error {
	if len(saved) == 0 {
		return ErrPanelEmpty
	}
	p.open = true
	p.Settle(saved)
	return nil
}

// Close hides the panel.
func (p *Panel) Close() {
	p.open = false
}

// SetActive switches the detailed issue. Only valid while open and for a
// saved id.
func (p *Panel) SetActive(id string, saved []string) error {
	if !p.open {
		return ErrPanelClosed
	}
	if !slices.Contains(saved, id) {
		return ErrNotSaved
	}
	p.active = id
	return nil
}

// Settle restores the panel invariants after saved changed:
// an empty saved list closes the panel and clears the active id, and an
// open panel without a valid active id selects the first saved issue.
// It reports whether the panel was closed by this call.
func (p *Panel) Settle(saved []string) bool {
	if len(saved) == 0 {
		closed := p.open
		p.open = false
		p.active = ""
		return closed
	}
	if p.open && !slices.Contains(saved, p.active) {
		p.active = saved[0]
	}
	return false
}
