package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye.\n"
	}

	sections := []string{
		RenderCard(m.page, m.rot, m.elapsed),
		m.renderGauge(),
		renderFooter(m.paused),
	}
	if m.helpVisible {
		sections = append(sections, renderHelp())
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content + "\n"
}

// renderGauge shows the position within the repeating cycle.
func (m Model) renderGauge() string {
	cycle := m.rot.CycleDuration().Seconds()
	pos := math.Mod(m.elapsed.Seconds(), cycle) / cycle
	return m.progress.ViewAs(pos)
}

func renderFooter(paused bool) string {
	hints := "q: quit • p: pause • t: theme • h/?: help"
	if paused {
		hints = "paused • " + hints
	}
	return footerStyle.Render(hints)
}

func renderHelp() string {
	content := []string{
		"Help",
		"",
		"h/?: toggle this help",
		"q/esc/ctrl+c: quit",
		"p/space: pause or resume the rotation",
		"t: toggle light/dark theme",
	}
	return helpStyle.Render(strings.Join(content, "\n"))
}
