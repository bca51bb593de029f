package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/marqueekit/marquee/internal/page"
	"github.com/marqueekit/marquee/internal/rotator"
	"github.com/marqueekit/marquee/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configPath string
	verbose    bool
	jsonOutput bool
	themeFlag  string
	fps        int
	watchMode  bool

	snapshotAt     time.Duration
	timelineStep   time.Duration
	timelineCycles int

	rootCmd = &cobra.Command{
		Use:   "marquee",
		Short: "A single-binary landing card for your terminal.",
		Long: `marquee renders a small landing card: a site name, a rotating phrase,
a tagline and a link, animated in place and themed for your terminal's
light or dark background. The card is configured with a YAML file; without
one, a built-in example card is shown.`,
		Run: func(cmd *cobra.Command, args []string) {
			if jsonOutput {
				logrus.Fatal("--json applies to the snapshot and timeline commands only")
			}
			pg, source := loadPage()
			if watchMode && source == "" {
				logrus.Warn("No config file to watch; showing the built-in card")
			}
			opts := tui.Options{FPS: fps, Watch: watchMode, ConfigPath: source}
			if err := tui.Run(cmd.Context(), pg, opts); err != nil {
				logrus.Fatalf("Rendering failed: %v", err)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a page config file (default: well-known locations, then the built-in card)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output machine-readable JSON instead of rendered text")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "auto", "Color theme: auto, light or dark")

	rootCmd.Flags().IntVar(&fps, "fps", 0, "Animation frames per second (default 30)")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Reload the card when the config file changes")

	snapshotCmd.Flags().DurationVar(&snapshotAt, "at", 675*time.Millisecond, "Elapsed time to snapshot the card at")
	timelineCmd.Flags().DurationVar(&timelineStep, "step", 150*time.Millisecond, "Sampling step")
	timelineCmd.Flags().IntVar(&timelineCycles, "cycles", 1, "Whole cycles to sample")

	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(timelineCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// loadPage applies shared flags and resolves the card to show. Any problem
// with an explicit or discovered config is fatal before the first tick.
func loadPage() (page.Page, string) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if err := tui.ApplyTheme(themeFlag); err != nil {
		logrus.Fatal(err)
	}
	pg, source, err := page.LoadFirst(configPath)
	if err != nil {
		logrus.Fatalf("Unable to load page config: %v", err)
	}
	if source != "" {
		logrus.Debugf("Using page config %s", source)
	}
	return pg, source
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the card at a fixed instant and exit",
	Long:  "Render a single frame of the card, for a quick look or for piping. With --json, print every phrase's phase, progress, offset and opacity at that instant.",
	Run: func(cmd *cobra.Command, args []string) {
		pg, _ := loadPage()
		rot, err := pg.NewRotator()
		if err != nil {
			logrus.Fatal(err)
		}
		if jsonOutput {
			printJSON(cmd, rot.SampleAll(snapshotAt))
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderCard(pg, rot, snapshotAt))
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the rotation schedule over whole cycles",
	Long:  "Sample every phrase's phase over one or more cycles, for checking timings. Text output is one line per sample; --json emits the full table.",
	Run: func(cmd *cobra.Command, args []string) {
		pg, _ := loadPage()
		rot, err := pg.NewRotator()
		if err != nil {
			logrus.Fatal(err)
		}
		entries := buildTimeline(rot, timelineStep, timelineCycles)
		if jsonOutput {
			printJSON(cmd, entries)
			return
		}
		for _, e := range entries {
			parts := make([]string, 0, len(e.Samples))
			for _, s := range e.Samples {
				parts = append(parts, fmt.Sprintf("%s: %s(%.2f)", s.Phrase, s.Phase, s.Progress))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", e.Elapsed, strings.Join(parts, "  "))
		}
	},
}

// timelineEntry is one sampled instant of the schedule.
type timelineEntry struct {
	Elapsed string           `json:"elapsed"`
	Samples []rotator.Sample `json:"samples"`
}

// buildTimeline samples the schedule from zero through the requested number
// of whole cycles.
func buildTimeline(rot *rotator.Rotator, step time.Duration, cycles int) []timelineEntry {
	if step <= 0 {
		step = 150 * time.Millisecond
	}
	if cycles < 1 {
		cycles = 1
	}
	end := time.Duration(cycles) * rot.CycleDuration()
	var entries []timelineEntry
	for at := time.Duration(0); at < end; at += step {
		entries = append(entries, timelineEntry{
			Elapsed: at.String(),
			Samples: rot.SampleAll(at),
		})
	}
	return entries
}

func printJSON(cmd *cobra.Command, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}

func main() {
	Execute()
}
