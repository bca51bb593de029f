package page

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

// wellKnownPagePaths lists the config locations probed when no --config flag
// is given, in priority order. Project-local first, then per-user.
//
//nolint:gochecknoglobals // Static path tables.
var (
	wellKnownPagePathsProject = []string{
		"marquee.yaml",
		".marquee.yaml",
	}
	wellKnownPagePathsUnix = []string{
		"$XDG_CONFIG_HOME/marquee/marquee.yaml",
		"~/.config/marquee/marquee.yaml",
	}
	wellKnownPagePathsMacOS = []string{
		"~/Library/Application Support/marquee/marquee.yaml",
	}
	wellKnownPagePathsWindows = []string{
		"$APPDATA/marquee/marquee.yaml",
	}
)

// WellKnownPagePaths returns the config paths for the current operating
// system, with ~ and environment variables resolved.
func WellKnownPagePaths() []string {
	rawPaths := append([]string{}, wellKnownPagePathsProject...)
	switch runtime.GOOS {
	case "darwin":
		rawPaths = append(rawPaths, wellKnownPagePathsMacOS...)
		rawPaths = append(rawPaths, wellKnownPagePathsUnix...)
	case "linux":
		rawPaths = append(rawPaths, wellKnownPagePathsUnix...)
	case "windows":
		rawPaths = append(rawPaths, wellKnownPagePathsWindows...)
	}
	var expanded []string
	for _, path := range rawPaths {
		p, err := expandTilde(os.ExpandEnv(path))
		if err != nil {
			logrus.Debugf("Failed to expand path %q: %v", path, err)
			continue
		}
		expanded = append(expanded, p)
	}
	return expanded
}

// LoadFirst loads the explicit path when given, otherwise the first existing
// well-known config, otherwise the built-in default card. The returned source
// is the path actually used, or "" for the built-in.
func LoadFirst(explicit string) (Page, string, error) {
	if explicit != "" {
		p, err := Load(explicit)
		return p, explicit, err
	}
	for _, candidate := range WellKnownPagePaths() {
		if st, err := os.Stat(candidate); err != nil || st.IsDir() {
			continue
		}
		p, err := Load(candidate)
		if err != nil {
			return Page{}, candidate, err
		}
		return p, candidate, nil
	}
	return Default(), "", nil
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
