// Package rotator implements the cyclic phrase rotator: an ordered, fixed
// list of short phrases that slide into view one at a time, hold, slide out,
// and repeat forever. The schedule is a pure function of elapsed time, so the
// render surface (TUI, snapshot output, tests) only ever asks "what does
// phrase i look like at time t" and paints the answer.
package rotator

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/marqueekit/marquee/internal/validate"
)

// ErrInvalidConfig is returned by New for any configuration that must not
// start a cycle: empty phrase list, empty phrase, non-positive durations, or
// a malformed timing table. It is the only error this package produces; once
// a rotator exists, nothing can fail.
var ErrInvalidConfig = errors.New("invalid rotator configuration")

// DefaultCycleDuration is one full rotation through all phrases.
const DefaultCycleDuration = 4500 * time.Millisecond

// Phase is a phrase's transition state at a given instant.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseEntering
	PhaseVisible
	PhaseExiting
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseExiting:
		return "exiting"
	case PhaseHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// PhaseState is the result of PhaseAt: which phase a phrase is in and how far
// through it, 0..1, for interpolation.
type PhaseState struct {
	Phase    Phase   `json:"phase"`
	Progress float64 `json:"progress"`
}

// Frame is the render-surface contract: a vertical offset in slot heights
// (positive is below the baseline, negative above) and an opacity 0..1.
type Frame struct {
	Offset  float64 `json:"offset"`
	Opacity float64 `json:"opacity"`
}

// Timing holds the phase boundaries as fractions of a phrase's personal
// cycle-length timeline. The window before EnterStart is reported as entering
// with progress 0 (parked below the baseline, fully transparent), matching a
// keyframe lead-in hold.
type Timing struct {
	EnterStart float64 `yaml:"enter_start"`
	EnterEnd   float64 `yaml:"enter_end"`
	ExitStart  float64 `yaml:"exit_start"`
	ExitEnd    float64 `yaml:"exit_end"`
}

// DefaultTiming reproduces the reference schedule: enter 2%→10%, hold
// 10%→30%, exit 30%→1/3, hidden for the remaining two thirds.
func DefaultTiming() Timing {
	return Timing{EnterStart: 0.02, EnterEnd: 0.10, ExitStart: 0.30, ExitEnd: 1.0 / 3.0}
}

// valid reports whether the boundaries are strictly ordered within [0, 1].
func (t Timing) valid() bool {
	return t.EnterStart >= 0 &&
		t.EnterStart < t.EnterEnd &&
		t.EnterEnd < t.ExitStart &&
		t.ExitStart < t.ExitEnd &&
		t.ExitEnd <= 1
}

// Config describes a rotator. Zero values for CycleDuration, StaggerOffset
// and Timing select defaults; StaggerOffset defaults to CycleDuration/N so
// phrases are evenly spaced.
type Config struct {
	Phrases       []string      `validate:"required,min=1,dive,required"`
	CycleDuration time.Duration `validate:"gt=0"`
	StaggerOffset time.Duration
	Timing        Timing
}

// Rotator owns the immutable schedule. All methods are pure and safe for
// concurrent use.
type Rotator struct {
	phrases []string
	cycle   float64 // seconds
	stagger float64 // seconds
	timing  Timing

	cycleDuration   time.Duration
	staggerDuration time.Duration
}

// New validates cfg and constructs a rotator, failing fast on any broken
// configuration so a bad cycle never starts.
func New(cfg Config) (*Rotator, error) {
	if cfg.CycleDuration == 0 {
		cfg.CycleDuration = DefaultCycleDuration
	}
	if cfg.Timing == (Timing{}) {
		cfg.Timing = DefaultTiming()
	}
	if cfg.StaggerOffset == 0 && len(cfg.Phrases) > 0 {
		cfg.StaggerOffset = cfg.CycleDuration / time.Duration(len(cfg.Phrases))
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.StaggerOffset <= 0 {
		return nil, fmt.Errorf("%w: stagger offset must be positive, got %s", ErrInvalidConfig, cfg.StaggerOffset)
	}
	if !cfg.Timing.valid() {
		return nil, fmt.Errorf("%w: timing boundaries must be ordered fractions of [0,1], got %+v", ErrInvalidConfig, cfg.Timing)
	}
	phrases := make([]string, len(cfg.Phrases))
	copy(phrases, cfg.Phrases)
	return &Rotator{
		phrases:         phrases,
		cycle:           cfg.CycleDuration.Seconds(),
		stagger:         cfg.StaggerOffset.Seconds(),
		timing:          cfg.Timing,
		cycleDuration:   cfg.CycleDuration,
		staggerDuration: cfg.StaggerOffset,
	}, nil
}

// Len returns the number of phrases.
func (r *Rotator) Len() int { return len(r.phrases) }

// Phrase returns the phrase at index i (0..Len()-1).
func (r *Rotator) Phrase(i int) string { return r.phrases[i] }

// CycleDuration returns the repeating window of the whole pattern.
func (r *Rotator) CycleDuration() time.Duration { return r.cycleDuration }

// StaggerOffset returns the delay between consecutive phrase timelines.
func (r *Rotator) StaggerOffset() time.Duration { return r.staggerDuration }

// PhaseAt maps (phrase index, elapsed time since start) to the phrase's
// transition state. It is deterministic and keeps no cross-call state;
// negative elapsed times are clamped to zero rather than rejected, since the
// clock is free-running and a transient bad sample must never halt the loop.
func (r *Rotator) PhaseAt(i int, elapsed time.Duration) PhaseState {
	if elapsed < 0 {
		elapsed = 0
	}
	local := math.Mod(elapsed.Seconds()-float64(i)*r.stagger, r.cycle)
	if local < 0 {
		local += r.cycle
	}
	u := local / r.cycle
	t := r.timing
	switch {
	case u < t.EnterEnd:
		return PhaseState{Phase: PhaseEntering, Progress: clamp01((u - t.EnterStart) / (t.EnterEnd - t.EnterStart))}
	case u < t.ExitStart:
		return PhaseState{Phase: PhaseVisible, Progress: (u - t.EnterEnd) / (t.ExitStart - t.EnterEnd)}
	case u <= t.ExitEnd:
		// The exit window owns its end boundary: at the exact hand-off
		// instant the outgoing phrase reads as exiting with progress 1, not
		// hidden. The rendered frame is the same either way.
		return PhaseState{Phase: PhaseExiting, Progress: (u - t.ExitStart) / (t.ExitEnd - t.ExitStart)}
	default:
		rem := 1 - t.ExitEnd
		if rem <= 0 {
			return PhaseState{Phase: PhaseHidden}
		}
		return PhaseState{Phase: PhaseHidden, Progress: (u - t.ExitEnd) / rem}
	}
}

// FrameAt converts PhaseAt into the (offset, opacity) pair the render surface
// consumes: entering slides up from one slot height below while fading in,
// visible holds at the baseline, exiting slides one slot height above while
// fading out, hidden parks above at zero opacity.
func (r *Rotator) FrameAt(i int, elapsed time.Duration) Frame {
	s := r.PhaseAt(i, elapsed)
	switch s.Phase {
	case PhaseEntering:
		return Frame{Offset: 1 - s.Progress, Opacity: s.Progress}
	case PhaseVisible:
		return Frame{Offset: 0, Opacity: 1}
	case PhaseExiting:
		return Frame{Offset: -s.Progress, Opacity: 1 - s.Progress}
	default:
		return Frame{Offset: -1, Opacity: 0}
	}
}

// VisibleIndex returns the index of the phrase in its fully-visible plateau
// at the given elapsed time, if any. The schedule guarantees at most one.
func (r *Rotator) VisibleIndex(elapsed time.Duration) (int, bool) {
	for i := range r.phrases {
		if r.PhaseAt(i, elapsed).Phase == PhaseVisible {
			return i, true
		}
	}
	return 0, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
