package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents,
// and environment overrides.
func Load(v *viper.Viper) error {
	// Configure search paths unless SetConfigFile was provided upstream.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "medrax-guide"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "medrax-guide"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: MEDRAX_* (highest among these sources)
	v.SetEnvPrefix("medrax")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Normalize dependent values post-merge
	if v.GetString("data_dir") == "" {
		v.Set("data_dir", defaultDataDir())
	}
	return nil
}

// Validate reports every invalid effective setting at once so a broken
// config file can be fixed in a single pass.
func Validate(v *viper.Viper) error {
	var problems []string
	switch v.GetString("output") {
	case "plain", "pretty", "json", "ndjson", "markdown", "md":
	default:
		problems = append(problems, fmt.Sprintf("output %q is not one of plain|pretty|json|ndjson|markdown", v.GetString("output")))
	}
	if v.GetString("data_dir") == "" {
		problems = append(problems, "data_dir is required")
	}
	if v.GetInt("style.width") < 0 {
		problems = append(problems, "style.width must not be negative")
	}
	if v.GetString("http_addr") == "" {
		problems = append(problems, "http_addr is required")
	}
	if v.GetString("export.dir") == "" {
		problems = append(problems, "export.dir is required")
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

// ResolveProgressDBPath returns the progress DB file path under
// data_dir, expanding a leading ~ for convenience.
func ResolveProgressDBPath(v *viper.Viper) string {
	dir := v.GetString("data_dir")
	if dir == "" {
		dir = defaultDataDir()
	}
	if len(dir) > 0 && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return filepath.Join(dir, "progress.db")
}
