package tui

import (
	"time"

	"github.com/marqueekit/marquee/internal/page"
)

// Message types for Bubble Tea update loop.

// tickMsg carries one elapsed-time sample from the free-running clock.
type tickMsg struct {
	Elapsed time.Duration
}

// clockStoppedMsg signals that the clock channel closed; the surface is done.
type clockStoppedMsg struct{}

// pageReloadMsg carries a freshly loaded card from the config watcher.
type pageReloadMsg struct {
	Page page.Page
}

// watchClosedMsg signals that the config watcher shut down.
type watchClosedMsg struct{}
