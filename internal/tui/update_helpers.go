package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.togglePause()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.darkTheme = !m.darkTheme
		lipgloss.SetHasDarkBackground(m.darkTheme)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		return m, nil
	}

	return m, nil
}

// togglePause freezes or resumes the displayed elapsed time. The clock keeps
// running; the pause is absorbed into skew so the animation continues from
// where it stopped.
func (m *Model) togglePause() {
	if m.paused {
		m.skew += m.rawElapsed - m.pausedAtRaw
		m.paused = false
		return
	}
	m.pausedAtRaw = m.rawElapsed
	m.paused = true
}
