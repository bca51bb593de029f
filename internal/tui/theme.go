package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// The card itself is colorless; these adaptive pairs let the terminal's
// light or dark background pick the actual colors at render time.
//
//nolint:gochecknoglobals // Shared style table.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "255"})
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "246"})
	linkStyle    = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.AdaptiveColor{Light: "26", Dark: "39"})
	borderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.AdaptiveColor{Light: "250", Dark: "238"}).Padding(1, 3)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "248", Dark: "241"})
	helpStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Foreground(lipgloss.AdaptiveColor{Light: "26", Dark: "69"})

	// phraseRamp quantizes the rotator's 0..1 opacity onto terminal colors,
	// dimmest first.
	phraseRamp = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "253", Dark: "236"}),
		lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "249", Dark: "242"}),
		lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "248"}),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "54", Dark: "183"}),
	}
)

// opacityStyle maps an opacity sample to the closest step of the ramp.
func opacityStyle(opacity float64) lipgloss.Style {
	if opacity <= 0 {
		return phraseRamp[0]
	}
	idx := int(opacity * float64(len(phraseRamp)))
	if idx >= len(phraseRamp) {
		idx = len(phraseRamp) - 1
	}
	return phraseRamp[idx]
}

// ApplyTheme forces the light or dark palette, or leaves the ambient
// background detection in place for "auto".
func ApplyTheme(theme string) error {
	switch theme {
	case "", "auto":
		return nil
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return nil
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return nil
	default:
		return fmt.Errorf("unknown theme %q (want auto, light or dark)", theme)
	}
}
