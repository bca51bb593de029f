package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marqueekit/marquee/internal/page"
)

const testConfig = `
name: example.dev
tagline: makes small things
link:
  url: https://example.dev
  label: visit example.dev
rotator:
  phrases: [thinks, builds, ships]
  cycle: 6s
  stagger: 2s
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marquee.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	return path
}

// execute runs the root command with the given args and returns stdout.
// Flags are package globals, so every call spells out its own values.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestSnapshot_Text(t *testing.T) {
	cfg := writeTestConfig(t)
	// 15% of the 6s cycle: the first phrase holds its plateau.
	out := execute(t, "snapshot", "--config", cfg, "--json=false", "--at", "900ms")

	assert.Contains(t, out, "example.dev")
	assert.Contains(t, out, "thinks")
	assert.NotContains(t, out, "builds")
}

func TestSnapshot_JSON(t *testing.T) {
	cfg := writeTestConfig(t)
	out := execute(t, "snapshot", "--config", cfg, "--json", "--at", "900ms")

	var samples []struct {
		Phrase  string  `json:"phrase"`
		Phase   string  `json:"phase"`
		Opacity float64 `json:"opacity"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &samples))
	require.Len(t, samples, 3)
	assert.Equal(t, "thinks", samples[0].Phrase)
	assert.Equal(t, "visible", samples[0].Phase)
	assert.InDelta(t, 1.0, samples[0].Opacity, 1e-9)
	assert.Equal(t, "hidden", samples[1].Phase)
	assert.Equal(t, "hidden", samples[2].Phase)
}

func TestTimeline_JSON(t *testing.T) {
	cfg := writeTestConfig(t)
	out := execute(t, "timeline", "--config", cfg, "--json", "--step", "500ms", "--cycles", "1")

	var entries []timelineEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 12) // 6s cycle at 500ms steps
	assert.Equal(t, "0s", entries[0].Elapsed)
	require.Len(t, entries[0].Samples, 3)
	assert.Equal(t, "entering", entries[0].Samples[0].Phase)
}

func TestTimeline_Text(t *testing.T) {
	cfg := writeTestConfig(t)
	out := execute(t, "timeline", "--config", cfg, "--json=false", "--step", "1s", "--cycles", "1")

	assert.Contains(t, out, "thinks")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "hidden")
}

func TestBuildTimeline_Bounds(t *testing.T) {
	pg := page.Default()
	rot, err := pg.NewRotator()
	require.NoError(t, err)

	entries := buildTimeline(rot, 0, 0)
	require.NotEmpty(t, entries)
	// Defaults kick in: one whole cycle, sane step, no sample at or past the
	// wraparound point.
	last, parseErr := time.ParseDuration(entries[len(entries)-1].Elapsed)
	require.NoError(t, parseErr)
	assert.Less(t, last, rot.CycleDuration())
}
