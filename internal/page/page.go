// Package page holds the landing card content and its on-disk YAML format:
// the site name, tagline, outbound link, and the rotator's phrase list and
// timings. The card is read-only once loaded; editing happens in the file.
package page

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/marqueekit/marquee/internal/rotator"
	"github.com/marqueekit/marquee/internal/validate"
)

// Duration wraps time.Duration so YAML configs can say "4.5s".
type Duration time.Duration

// UnmarshalYAML parses durations in time.ParseDuration notation.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders durations back in the same notation.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Link is the card's single outbound hyperlink: a fixed destination and an
// accessible label.
type Link struct {
	URL   string `yaml:"url"   validate:"required,url"`
	Label string `yaml:"label" validate:"required"`
}

// RotatorSection configures the phrase rotator. Zero durations select the
// rotator package defaults.
type RotatorSection struct {
	Phrases []string `yaml:"phrases" validate:"required,min=1,dive,required"`
	Cycle   Duration `yaml:"cycle"`
	Stagger Duration `yaml:"stagger"`
}

// Page is one landing card.
type Page struct {
	Name    string         `yaml:"name" validate:"required"`
	Tagline string         `yaml:"tagline"`
	Link    Link           `yaml:"link"`
	Rotator RotatorSection `yaml:"rotator"`
}

// Default returns the built-in card rendered when no config file is found.
func Default() Page {
	return Page{
		Name:    "marquee",
		Tagline: "a landing card for your terminal",
		Link: Link{
			URL:   "https://github.com/marqueekit/marquee",
			Label: "source on GitHub",
		},
		Rotator: RotatorSection{
			Phrases: []string{
				"rotates phrases",
				"respects your colors",
				"lives in the terminal",
			},
			Cycle:   Duration(4500 * time.Millisecond),
			Stagger: Duration(1500 * time.Millisecond),
		},
	}
}

// Load reads and validates a card from a YAML file.
func Load(path string) (Page, error) {
	expanded, err := expandTilde(path)
	if err != nil {
		return Page{}, err
	}
	logrus.Debug("Loading page config from: ", expanded)
	data, err := os.ReadFile(expanded)
	if err != nil {
		return Page{}, err
	}
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Page{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Page{}, fmt.Errorf("validating %s: %w", path, err)
	}
	return p, nil
}

// Validate checks the card's fields, including that the rotator section can
// actually construct a rotator.
func (p Page) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	_, err := p.NewRotator()
	return err
}

// NewRotator builds the rotator described by the card.
func (p Page) NewRotator() (*rotator.Rotator, error) {
	return rotator.New(rotator.Config{
		Phrases:       p.Rotator.Phrases,
		CycleDuration: time.Duration(p.Rotator.Cycle),
		StaggerOffset: time.Duration(p.Rotator.Stagger),
	})
}
