package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/oss-curator/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 || !m.ex.Hydrated() {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModePanel:
		content = m.viewPanel()
	case ModeNormal, ModeSearch, ModeLabels:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// contentWidth is the usable width inside the app padding.
func (m *Model) contentWidth() int {
	return max(40, m.width-6)
}

// viewMain renders the issue feed.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewStats())
	b.WriteString("\n")
	b.WriteString(m.viewFilterBar())
	b.WriteString("\n")

	b.WriteString(m.viewMessages())

	if m.mode == ModeSearch {
		b.WriteString(m.styles.InputPrompt.Render("Search: "))
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if m.mode == ModeLabels {
		b.WriteString(m.viewLabelPicker())
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewIssueList())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title and the visible count.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("OSS Issue Curator")

	countText := m.ex.CountLabel()
	if m.ex.HasMore() {
		countText += fmt.Sprintf(" · showing %d", len(m.ex.Revealed()))
	}
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(countText)

	spacing := max(1, m.contentWidth()-lipgloss.Width(title)-lipgloss.Width(rightText))
	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewStats renders the statistics of the visible issues.
func (m *Model) viewStats() string {
	s := m.ex.View().Stats
	parts := []string{
		fmt.Sprintf("%s issues", humanize.Comma(int64(s.Total))),
		fmt.Sprintf("%s orgs", humanize.Comma(int64(s.Orgs))),
		fmt.Sprintf("%s good first", humanize.Comma(int64(s.GoodFirst))),
	}
	if s.FeaturedLanguage != "" {
		parts = append(parts, fmt.Sprintf("%s %d%%", s.FeaturedLanguage, s.FeaturedShare))
	}
	parts = append(parts, m.styles.SavedMark.Render(fmt.Sprintf("★ %d saved", m.ex.SavedCount())))
	return m.styles.Stats.Render(strings.Join(parts, " · "))
}

// viewFilterBar renders the current filters. Active values are highlighted.
func (m *Model) viewFilterBar() string {
	f := m.ex.Filter()

	field := func(name, value string, active bool) string {
		if active {
			return name + " " + m.styles.FilterOn.Render(value)
		}
		return name + " " + value
	}
	toggle := func(name string, on bool) string {
		if on {
			return m.styles.FilterOn.Render("[x] " + name)
		}
		return "[ ] " + name
	}

	labels := "none"
	if len(f.Labels) > 0 {
		labels = strings.Join(f.Labels, ", ")
	}
	query := "-"
	if f.Query != "" {
		query = fmt.Sprintf("%q", f.Query)
	}

	parts := []string{
		field("query", query, f.Query != ""),
		field("language", f.Language, f.Language != domain.FilterAll),
		field("level", string(f.Level), f.Level != domain.LevelAll),
		field("labels", labels, len(f.Labels) > 0),
		toggle("good first", f.OnlyGoodFirst),
		toggle("saved", f.SavedOnly),
	}
	return m.styles.FilterBar.Render(strings.Join(parts, "  "))
}

func (m *Model) viewMessages() string {
	if m.err != nil {
		return m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n"
	}
	if m.status != "" {
		return m.styles.StatusMsg.Render(m.status) + "\n\n"
	}
	return ""
}

// viewIssueList renders the revealed issues.
func (m *Model) viewIssueList() string {
	issues := m.ex.Revealed()
	if len(issues) == 0 {
		return m.viewEmptyState()
	}

	var b strings.Builder
	rowWidth := m.contentWidth()
	for i, issue := range issues {
		selected := i == m.cursor
		line := m.renderIssueItem(issue, selected, rowWidth)
		if selected {
			b.WriteString(m.styles.IssueSelected.Width(rowWidth).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if rest := m.remaining(); rest != "" {
		b.WriteString(m.styles.LoadMore.Render(fmt.Sprintf("  %s · press m to load more", rest)))
		b.WriteString("\n")
	}

	return m.styles.IssueList.Render(b.String())
}

// viewEmptyState renders the message shown when no issue matches.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("  No issues match the current filters\n\n"))
	b.WriteString(m.styles.Footer.Render("  Press "))
	b.WriteString(m.styles.FooterKey.Render("r"))
	b.WriteString(m.styles.Footer.Render(" to reset filters"))
	b.WriteString("\n")
	return b.String()
}

// renderIssueItem renders a feed row as two lines:
// "> ★ Title" and the repo, language, level, stars and update time below.
func (m *Model) renderIssueItem(issue domain.Issue, selected bool, width int) string {
	indicator := " "
	if selected {
		indicator = m.styles.CursorSelected.Render(">")
	}

	mark := " "
	if m.ex.IsSaved(issue.ID) {
		mark = m.styles.SavedMark.Render("★")
	}

	title := runewidth.Truncate(issue.Title, width-6, "…")
	titleStyle, metaStyle := m.styles.IssueTitle, m.styles.IssueMeta
	if selected {
		titleStyle, metaStyle = m.styles.IssueTitleSelected, m.styles.IssueMetaSelected
	}

	meta := strings.Join([]string{
		issue.Repo,
		issue.Language,
		m.styles.LevelStyle(issue.Level).Render(string(issue.Level)),
		"★ " + humanize.Comma(int64(issue.Stars)),
		domain.FormatRelativeTime(issue.UpdatedAt, m.container.Clock.Now()),
	}, metaStyle.Render(" · "))
	if issue.GoodFirstIssue {
		meta += metaStyle.Render(" · ") + m.styles.LevelFirstTimers.Render("good first issue")
	}

	return fmt.Sprintf("%s %s %s\n    %s", indicator, mark, titleStyle.Render(title), metaStyle.Render(meta))
}

// viewLabelPicker renders the label picker dialog.
func (m *Model) viewLabelPicker() string {
	f := m.ex.Filter()
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Labels (all selected labels must match)"))
	b.WriteString("\n")
	for i, l := range m.labels {
		cursor := "  "
		if i == m.labelCursor {
			cursor = m.styles.CursorSelected.Render("> ")
		}
		check := "[ ]"
		if f.HasLabel(l) {
			check = m.styles.FilterOn.Render("[x]")
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, check, l)
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("space toggle · r clear · esc close"))
	return m.styles.Dialog.Render(b.String())
}

// viewPanel renders the saved issues panel with the active issue in detail.
func (m *Model) viewPanel() string {
	var list strings.Builder
	list.WriteString(m.styles.DialogTitle.Render(fmt.Sprintf("Saved issues (%d)", m.ex.SavedCount())))
	list.WriteString("\n")
	active := m.ex.ActiveID()
	for _, issue := range m.ex.SavedIssues() {
		if issue.ID == active {
			list.WriteString(m.styles.CursorSelected.Render("> " + issue.ID))
		} else {
			list.WriteString("  " + issue.ID)
		}
		list.WriteString("\n")
	}

	detail := "No saved issue selected"
	if issue, ok := m.ex.ActiveIssue(); ok {
		detail = m.detailContent(issue, max(30, m.contentWidth()/2))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "    ", detail)

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewMessages())
	b.WriteString(m.styles.Panel.Render(body))
	b.WriteString("\n")
	b.WriteString(m.help.View(panelKeyMap{k: m.keys}))
	return b.String()
}

// detailContent renders an issue's details.
func (m *Model) detailContent(issue domain.Issue, width int) string {
	row := func(label, value string) string {
		return m.styles.DetailLabel.Render(label) + m.styles.DetailValue.Render(value)
	}

	lines := []string{
		m.styles.DetailTitle.Width(width).Render(issue.Title),
		"",
		row("Repo", issue.Repo),
		row("Language", issue.Language),
		row("Level", string(issue.Level)),
		row("Stars", humanize.Comma(int64(issue.Stars))),
		row("Updated", domain.FormatRelativeTime(issue.UpdatedAt, m.container.Clock.Now())),
	}
	if len(issue.Labels) > 0 {
		lines = append(lines, row("Labels", strings.Join(issue.Labels, ", ")))
	}
	if issue.Description != "" {
		lines = append(lines, "", m.styles.DetailDesc.Width(width).Render(issue.Description))
	}
	lines = append(lines, "", m.styles.Footer.Render(issue.Link))
	return strings.Join(lines, "\n")
}

// viewFooter renders the footer with key hints.
func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeNormal:
		return m.help.View(m.keys)
	case ModeSearch:
		return m.styles.Footer.Render("enter apply · esc cancel")
	case ModeLabels, ModePanel, ModeHelp:
		// Hints are shown in the dialogs/views themselves
		return ""
	}
	return ""
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")

	sections := []string{"NAVIGATION", "FILTERS", "SAVED ISSUES", "GENERAL"}
	groups := m.keys.FullHelp()

	var col1, col2 strings.Builder
	for i, group := range groups {
		b := &col1
		if i >= 2 {
			b = &col2
		}
		b.WriteString(m.styles.Footer.Render(sections[i]))
		b.WriteString("\n")
		for _, bind := range group {
			h := bind.Help()
			fmt.Fprintf(b, "%s %s\n", m.styles.HelpKey.Width(8).Render(h.Key), m.styles.HelpDesc.Render(h.Desc))
		}
		b.WriteString("\n")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, col1.String(), "    ", col2.String())
	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content))
}
