package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/oss-curator/internal/app"
	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/explorer"
	"github.com/runoshun/oss-curator/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	ex        *explorer.Explorer
	viewport  *explorer.ViewportFeed
	keyFeed   *explorer.KeyFeed
	err       error

	// Lookup tables
	languages []string // "all" followed by the catalog languages
	labels    []string

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	search textinput.Model

	status      string
	prevQuery   string
	mode        Mode
	width       int
	height      int
	cursor      int
	labelCursor int
}

// panelOverlay switches the model in and out of panel mode when the
// explorer opens or closes the saved issues panel.
type panelOverlay struct {
	m *Model
}

func (o panelOverlay) Present() {
	o.m.mode = ModePanel
}

func (o panelOverlay) Dismiss() {
	if o.m.mode == ModePanel {
		o.m.mode = ModeNormal
	}
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	si := textinput.New()
	si.Placeholder = "Search title, repo, description..."
	si.CharLimit = 200

	m := &Model{
		container: c,
		viewport:  explorer.NewViewportFeed(0),
		keyFeed:   explorer.NewKeyFeed(),
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		search:    si,
		mode:      ModeNormal,
	}
	m.ex = c.NewExplorer(explorer.Options{
		Overlay:  panelOverlay{m: m},
		Viewport: m.viewport,
		Keys:     m.keyFeed,
	})
	m.ex.Mount()

	cat := c.Catalog
	m.languages = append([]string{domain.FilterAll}, cat.Languages()...)
	m.labels = cat.Labels()
	return m
}

// Explorer returns the explorer driven by the model.
func (m *Model) Explorer() *explorer.Explorer {
	return m.ex
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Init starts reading the stored explorer state.
func (m *Model) Init() tea.Cmd {
	return m.loadState()
}

// loadState returns a command that reads the stored record off the event loop.
func (m *Model) loadState() tea.Cmd {
	ex := m.ex
	return func() tea.Msg {
		raw, err := ex.ReadSnapshot(context.Background())
		return MsgStateLoaded{Raw: raw, Err: err}
	}
}

// openLink returns a command that opens the issue link in the browser.
func (m *Model) openLink(id string) tea.Cmd {
	uc := m.container.OpenIssueUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.OpenIssueInput{ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgLinkOpened{URL: out.URL}
	}
}

// SelectedIssue returns the issue under the cursor.
func (m *Model) SelectedIssue() (domain.Issue, bool) {
	issues := m.ex.Revealed()
	if m.cursor < 0 || m.cursor >= len(issues) {
		return domain.Issue{}, false
	}
	return issues[m.cursor], true
}

// clampCursor keeps the cursor on a revealed row.
func (m *Model) clampCursor() {
	n := len(m.ex.Revealed())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
