package tui

// Package-level constants to avoid magic numbers and improve readability.
const (
	defaultFPS = 30
	minFPS     = 1
	maxFPS     = 120

	// slotHeight is the number of rows the rotating phrase travels through:
	// it enters from the bottom row, holds on the middle row, exits through
	// the top row.
	slotHeight = 3

	// minCardWidth keeps short cards from collapsing into a sliver.
	minCardWidth = 36
	// gaugeWidth is the cycle-position gauge under the card.
	gaugeWidth = 30
)
