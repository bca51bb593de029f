package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marqueekit/marquee/internal/page"
	"github.com/marqueekit/marquee/internal/rotator"
)

// Model is the root Bubble Tea model: the card being shown, its rotator, and
// the clock samples driving the animation. The rotator itself is pure; all
// mutable state lives here.
type Model struct {
	page page.Page
	rot  *rotator.Rotator

	// elapsed is what the rotator sees; rawElapsed is the latest clock
	// sample. skew accumulates time spent paused so resuming doesn't jump.
	elapsed     time.Duration
	rawElapsed  time.Duration
	skew        time.Duration
	pausedAtRaw time.Duration
	paused      bool

	// inbound channels from the clock driver and the config watcher
	ticks   <-chan time.Duration
	reloads <-chan page.Page

	progress    progress.Model
	keys        keyMap
	helpVisible bool
	darkTheme   bool
	width       int
	height      int
	quitting    bool
}

// NewModel constructs a Model with initial state. reloads may be nil when
// config watching is off.
func NewModel(pg page.Page, rot *rotator.Rotator, ticks <-chan time.Duration, reloads <-chan page.Page) Model {
	gauge := progress.New(progress.WithDefaultGradient())
	gauge.ShowPercentage = false
	gauge.Width = gaugeWidth
	return Model{
		page:      pg,
		rot:       rot,
		ticks:     ticks,
		reloads:   reloads,
		progress:  gauge,
		keys:      newKeyMap(),
		darkTheme: lipgloss.HasDarkBackground(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listenForTicks()}
	if m.reloads != nil {
		cmds = append(cmds, m.listenForReloads())
	}
	return tea.Batch(cmds...)
}

// listenForTicks returns a Tea command that waits for the next clock sample.
func (m Model) listenForTicks() tea.Cmd {
	return func() tea.Msg {
		elapsed, ok := <-m.ticks
		if !ok {
			return clockStoppedMsg{}
		}
		return tickMsg{Elapsed: elapsed}
	}
}

// listenForReloads returns a Tea command that waits for a re-loaded card.
func (m Model) listenForReloads() tea.Cmd {
	return func() tea.Msg {
		p, ok := <-m.reloads
		if !ok {
			return watchClosedMsg{}
		}
		return pageReloadMsg{Page: p}
	}
}
