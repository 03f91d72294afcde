package config

import (
	"os"
	"path/filepath"
)

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their
// meanings. This is the single source of truth for default values and
// the TOML generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Core rendering
		{Key: "output", Default: "plain", Comment: "Default output mode for topic commands: plain|pretty|json|ndjson|markdown"},
		{Key: "pager", Default: true, Comment: "Pipe long output through $PAGER when stdout is a terminal"},

		// Local state and serving
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; progress DB is data_dir/progress.db"},
		{Key: "http_addr", Default: "127.0.0.1:8585", Comment: "HTTP listen address for the serve command"},

		// Sections (dotted keys for generator convenience)
		{Key: "style.theme", Default: "auto", Comment: "Glamour style for pretty output: auto|dark|light|notty or a style name"},
		{Key: "style.width", Default: 0, Comment: "Wrap width for pretty output; 0 detects the terminal width"},
		{Key: "progress.enabled", Default: true, Comment: "Record viewed topics when showing them"},
		{Key: "export.dir", Default: "docs", Comment: "Default directory for the export command"},
	}
}

// defaultDataDir resolves the default data dir:
// $XDG_DATA_HOME/medrax-guide or ~/.local/share/medrax-guide.
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "medrax-guide")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "medrax-guide")
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "medrax-guide", "config.toml")
}
