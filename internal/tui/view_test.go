package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/oss-curator/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestView_LoadingUntilHydrated(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewMockStateStore())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, "Loading...", m.View())
}

func TestView_Feed(t *testing.T) {
	m, _ := newReadyModel(t)
	press(m, "s")

	out := m.View()
	assert.Contains(t, out, "14 of 14 issues visible")
	assert.Contains(t, out, "showing 10")
	assert.Contains(t, out, "withastro/astro")
	assert.Contains(t, out, "★ 1 saved")
	assert.Contains(t, out, "4 more")
	assert.Contains(t, out, "Saved astro-image-143")
}

func TestView_EmptyState(t *testing.T) {
	m, _ := newReadyModel(t)
	press(m, "v")

	out := m.View()
	assert.Contains(t, out, "0 of 14 issues visible")
	assert.Contains(t, out, "No issues match the current filters")
}

func TestView_Panel(t *testing.T) {
	m, _ := newReadyModel(t)
	press(m, "s", "p")

	out := m.View()
	assert.Contains(t, out, "Saved issues (1)")
	assert.Contains(t, out, "> astro-image-143")
	assert.Contains(t, out, "https://github.com/withastro/astro/issues/11820")
}

func TestView_LabelPicker(t *testing.T) {
	m, _ := newReadyModel(t)
	press(m, "t", " ")

	out := m.View()
	assert.Contains(t, out, "[x] "+m.labels[0])
}

func TestView_SearchPlaceholderNamesSearchedFields(t *testing.T) {
	m, _ := newReadyModel(t)
	assert.Equal(t, "Search title, repo, description...", m.search.Placeholder)
}
