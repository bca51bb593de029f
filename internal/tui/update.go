package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marqueekit/marquee/internal/page"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model contract.
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(x)

	case tickMsg:
		m.rawElapsed = x.Elapsed
		if !m.paused {
			m.elapsed = x.Elapsed - m.skew
		}
		return m, m.listenForTicks()

	case clockStoppedMsg:
		m.quitting = true
		return m, tea.Quit

	case pageReloadMsg:
		m.applyReload(x.Page)
		return m, m.listenForReloads()

	case watchClosedMsg:
		return m, nil
	}

	return m, nil
}

// applyReload swaps in a re-loaded card. The watcher only emits validated
// pages, but a rebuild failure still keeps the old card on screen rather
// than killing the loop.
func (m *Model) applyReload(p page.Page) {
	rot, err := p.NewRotator()
	if err != nil {
		return
	}
	m.page = p
	m.rot = rot
}
