package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/marqueekit/marquee/internal/page"
	"github.com/marqueekit/marquee/internal/rotator"
)

// Options configures the live surface.
type Options struct {
	// FPS is the clock cadence; clamped to a sane range, 0 means default.
	FPS int
	// Watch re-loads the card when ConfigPath changes.
	Watch      bool
	ConfigPath string
}

// Run starts the Bubble Tea program: it builds the rotator from the card,
// starts the free-running clock (and the config watcher when asked), and
// blocks until the user quits. All timer and watcher resources are released
// on the way out.
func Run(ctx context.Context, pg page.Page, opts Options) error {
	rot, err := pg.NewRotator()
	if err != nil {
		return err
	}

	fps := opts.FPS
	if fps == 0 {
		fps = defaultFPS
	}
	if fps < minFPS {
		fps = minFPS
	}
	if fps > maxFPS {
		fps = maxFPS
	}

	clock := rotator.NewClock(time.Second / time.Duration(fps))
	ticks := clock.Start(ctx)
	defer clock.Stop()

	var reloads <-chan page.Page
	if opts.Watch && opts.ConfigPath != "" {
		ch, stopWatch, err := page.Watch(ctx, opts.ConfigPath)
		if err != nil {
			return err
		}
		defer stopWatch() //nolint:errcheck // Teardown only.
		reloads = ch
	}

	model := NewModel(pg, rot, ticks, reloads)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	_, err = p.Run()
	return err
}
