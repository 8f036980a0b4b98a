package tui

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/oss-curator/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(20, msg.Width-20)
		// The explorer resizes its pages from the viewport feed
		m.viewport.Publish(msg.Width)
		m.clampCursor()
		return m, nil

	case MsgStateLoaded:
		m.ex.Restore(msg.Raw, msg.Err)
		m.cursor = 0
		return m, nil

	case MsgLinkOpened:
		m.status = "Opened " + msg.URL
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	if m.mode == ModeSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Until the stored state is restored only quitting is possible
	if !m.ex.Hydrated() {
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m.quit()
		}
		return m, nil
	}

	// Clear messages on any key press
	m.err = nil
	m.status = ""

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeSearch:
		return m.handleSearchMode(msg)
	case ModeLabels:
		return m.handleLabelsMode(msg)
	case ModePanel:
		return m.handlePanelMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.ex.Unmount()
	return m, tea.Quit
}

// handleNormalMode handles keys in the issue feed.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ex.Revealed())-1 {
			m.cursor++
		} else if m.ex.HasMore() {
			m.ex.LoadMore()
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.LoadMore):
		if !m.ex.HasMore() {
			m.status = "All matching issues are shown"
			return m, nil
		}
		m.ex.LoadMore()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.prevQuery = m.ex.Filter().Query
		m.search.SetValue(m.prevQuery)
		m.search.CursorEnd()
		m.mode = ModeSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextLanguage):
		m.cycleLanguage(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevLanguage):
		m.cycleLanguage(-1)
		return m, nil

	case key.Matches(msg, m.keys.Level):
		m.cycleLevel()
		return m, nil

	case key.Matches(msg, m.keys.Labels):
		m.mode = ModeLabels
		return m, nil

	case key.Matches(msg, m.keys.GoodFirst):
		m.ex.ToggleGoodFirstOnly()
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.SavedOnly):
		m.ex.ToggleSavedOnly()
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.ex.ResetFilters()
		m.cursor = 0
		m.status = "Filters cleared"
		return m, nil

	case key.Matches(msg, m.keys.Save):
		issue, ok := m.SelectedIssue()
		if !ok {
			return m, nil
		}
		if m.ex.ToggleSaved(issue.ID) {
			m.status = "Saved " + issue.ID
		} else {
			m.status = "Removed " + issue.ID
		}
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Panel):
		if err := m.ex.OpenPanel(); err != nil {
			m.err = err
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		issue, ok := m.SelectedIssue()
		if !ok {
			return m, nil
		}
		return m, m.openLink(issue.ID)

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

func (m *Model) cycleLanguage(delta int) {
	i := slices.Index(m.languages, m.ex.Filter().Language)
	n := len(m.languages)
	i = ((i+delta)%n + n) % n
	m.ex.SetLanguage(m.languages[i])
	m.cursor = 0
}

func (m *Model) cycleLevel() {
	levels := append([]domain.Level{domain.LevelAll}, domain.AllLevels()...)
	i := slices.Index(levels, m.ex.Filter().Level)
	m.ex.SetLevel(levels[(i+1)%len(levels)])
	m.cursor = 0
}

// handleSearchMode edits the query. Every keystroke updates the feed.
func (m *Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.search.Blur()
		m.ex.SetQuery(m.prevQuery)
		m.cursor = 0
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = ModeNormal
		m.search.Blur()
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m.quit()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.ex.SetQuery(m.search.Value())
	m.cursor = 0
	return m, cmd
}

// handleLabelsMode handles the label picker.
func (m *Model) handleLabelsMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Labels):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Up):
		if m.labelCursor > 0 {
			m.labelCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.labelCursor < len(m.labels)-1 {
			m.labelCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.labelCursor < len(m.labels) {
			m.ex.ToggleLabel(m.labels[m.labelCursor])
			m.cursor = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		for _, l := range m.ex.Filter().Labels {
			m.ex.ToggleLabel(l)
		}
		m.cursor = 0
		return m, nil
	}

	return m, nil
}

// handlePanelMode handles the saved issues panel. Keys are also published
// to the explorer, which closes the panel on escape.
func (m *Model) handlePanelMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.keyFeed.Publish(msg.String())
	if m.mode != ModePanel {
		return m, nil
	}

	switch {
	case msg.String() == "ctrl+c" || msg.String() == "q":
		return m.quit()

	case key.Matches(msg, m.keys.Panel):
		m.ex.ClosePanel()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.ex.MoveActive(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.ex.MoveActive(1)
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		id := m.ex.ActiveID()
		if id == "" {
			return m, nil
		}
		m.ex.ToggleSaved(id)
		m.status = "Removed " + id
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		issue, ok := m.ex.ActiveIssue()
		if !ok {
			m.err = errors.New("no active issue")
			return m, nil
		}
		return m, m.openLink(issue.ID)
	}

	return m, nil
}

// handleHelpMode closes the help overlay.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return m, nil
}

// remaining describes the unrevealed part of the feed.
func (m *Model) remaining() string {
	n := len(m.ex.View().Issues) - len(m.ex.Revealed())
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d more", n)
}
