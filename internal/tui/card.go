package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/marqueekit/marquee/internal/page"
	"github.com/marqueekit/marquee/internal/rotator"
)

// RenderCard draws the landing card at a single instant: name, the rotator
// viewport, tagline and link, inside a rounded border. It is pure with
// respect to elapsed time, so the snapshot command and the live view share
// it.
func RenderCard(pg page.Page, rot *rotator.Rotator, elapsed time.Duration) string {
	width := cardWidth(pg, rot)
	line := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	rows := make([]string, 0, slotHeight+4)
	rows = append(rows, line.Render(titleStyle.Render(pg.Name)))
	for _, r := range rotatorRows(rot, elapsed) {
		rows = append(rows, line.Render(r))
	}
	if pg.Tagline != "" {
		rows = append(rows, line.Render(taglineStyle.Render(pg.Tagline)))
	}
	if pg.Link.URL != "" {
		rows = append(rows, line.Render(hyperlink(pg.Link)))
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// rotatorRows paints every phrase with non-zero opacity into the slot: entry
// on the bottom row, hold in the middle, exit through the top.
func rotatorRows(rot *rotator.Rotator, elapsed time.Duration) []string {
	rows := make([]string, slotHeight)
	for i := 0; i < rot.Len(); i++ {
		f := rot.FrameAt(i, elapsed)
		if f.Opacity <= 0 {
			continue
		}
		rows[offsetToRow(f.Offset)] = opacityStyle(f.Opacity).Render(rot.Phrase(i))
	}
	return rows
}

// offsetToRow maps an offset in slot heights (+1 below baseline .. -1 above)
// to a viewport row, top row first.
func offsetToRow(offset float64) int {
	row := int(math.Round((offset + 1) / 2 * float64(slotHeight-1)))
	if row < 0 {
		row = 0
	}
	if row > slotHeight-1 {
		row = slotHeight - 1
	}
	return row
}

// hyperlink renders the outbound link as an OSC 8 hyperlink with its
// accessible label as the visible text.
func hyperlink(l page.Link) string {
	return termenv.Hyperlink(l.URL, linkStyle.Render(l.Label))
}

// cardWidth sizes the card to its widest line of content.
func cardWidth(pg page.Page, rot *rotator.Rotator) int {
	width := minCardWidth
	widen := func(s string) {
		if w := lipgloss.Width(s); w > width {
			width = w
		}
	}
	widen(pg.Name)
	widen(pg.Tagline)
	widen(pg.Link.Label)
	for i := 0; i < rot.Len(); i++ {
		widen(rot.Phrase(i))
	}
	return width
}
