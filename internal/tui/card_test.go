//nolint:testpackage // White-box tests cover the row mapping helpers.
package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marqueekit/marquee/internal/page"
)

func TestOffsetToRow(t *testing.T) {
	// +1 slot height below baseline enters on the bottom row, the baseline
	// holds the middle, -1 exits through the top.
	assert.Equal(t, slotHeight-1, offsetToRow(1))
	assert.Equal(t, 1, offsetToRow(0))
	assert.Equal(t, 0, offsetToRow(-1))
	// Out-of-range samples clamp instead of indexing out of the viewport.
	assert.Equal(t, slotHeight-1, offsetToRow(2.5))
	assert.Equal(t, 0, offsetToRow(-2.5))
}

func TestRenderCard_VisiblePhraseOnly(t *testing.T) {
	pg := page.Default()
	rot, err := pg.NewRotator()
	require.NoError(t, err)

	// 15% into the cycle: phrase 0 is on its plateau, the others are hidden.
	card := RenderCard(pg, rot, 675*time.Millisecond)
	assert.Contains(t, card, rot.Phrase(0))
	assert.NotContains(t, card, rot.Phrase(1))
	assert.NotContains(t, card, rot.Phrase(2))

	// One stagger later the second phrase holds the plateau.
	card = RenderCard(pg, rot, 675*time.Millisecond+rot.StaggerOffset())
	assert.NotContains(t, card, rot.Phrase(0))
	assert.Contains(t, card, rot.Phrase(1))
}

func TestRenderCard_StaticContent(t *testing.T) {
	pg := page.Default()
	rot, err := pg.NewRotator()
	require.NoError(t, err)

	card := RenderCard(pg, rot, 0)
	assert.Contains(t, card, pg.Name)
	assert.Contains(t, card, pg.Tagline)
	assert.Contains(t, card, pg.Link.Label)
	assert.Contains(t, card, pg.Link.URL, "link must carry its destination")
}

func TestRenderCard_RotatorViewportHeightStable(t *testing.T) {
	pg := page.Default()
	rot, err := pg.NewRotator()
	require.NoError(t, err)

	// The card must not change height as phrases move through the slot.
	base := strings.Count(RenderCard(pg, rot, 0), "\n")
	for _, at := range []time.Duration{200 * time.Millisecond, 675 * time.Millisecond, 1400 * time.Millisecond, 3 * time.Second} {
		assert.Equal(t, base, strings.Count(RenderCard(pg, rot, at), "\n"), "height changed at %s", at)
	}
}
