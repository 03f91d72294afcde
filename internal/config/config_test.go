package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	v := viper.New()
	if err := Load(v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v.GetString("output"); got != "plain" {
		t.Fatalf("output default: %q", got)
	}
	if !v.GetBool("pager") {
		t.Fatalf("pager should default to true")
	}
	if !v.GetBool("progress.enabled") {
		t.Fatalf("progress.enabled should default to true")
	}
	if got := v.GetString("http_addr"); got != "127.0.0.1:8585" {
		t.Fatalf("http_addr default: %q", got)
	}
	if v.GetString("data_dir") == "" {
		t.Fatalf("data_dir must not be empty")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MEDRAX_OUTPUT", "json")
	t.Setenv("MEDRAX_STYLE_THEME", "dark")
	v := viper.New()
	if err := Load(v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v.GetString("output"); got != "json" {
		t.Fatalf("env override for output: %q", got)
	}
	if got := v.GetString("style.theme"); got != "dark" {
		t.Fatalf("env override for style.theme: %q", got)
	}
}

func TestLoadConfigFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	content := "output = \"markdown\"\n\n[style]\ntheme = \"dracula\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// File beats defaults.
	v := viper.New()
	v.SetConfigFile(cfgPath)
	if err := Load(v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v.GetString("output"); got != "markdown" {
		t.Fatalf("file should override default output, got %q", got)
	}
	if got := v.GetString("style.theme"); got != "dracula" {
		t.Fatalf("file should override default style.theme, got %q", got)
	}

	// Env beats file.
	t.Setenv("MEDRAX_OUTPUT", "ndjson")
	v2 := viper.New()
	v2.SetConfigFile(cfgPath)
	if err := Load(v2); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v2.GetString("output"); got != "ndjson" {
		t.Fatalf("env should override file output, got %q", got)
	}
}

func TestValidateValid(t *testing.T) {
	v := viper.New()
	v.Set("output", "pretty")
	v.Set("data_dir", "/tmp/medrax-guide")
	v.Set("style.width", 100)
	v.Set("http_addr", "127.0.0.1:0")
	v.Set("export.dir", "docs")

	if err := Validate(v); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	v := viper.New()
	v.Set("output", "fancy")
	v.Set("data_dir", "")
	v.Set("style.width", -1)
	v.Set("http_addr", "")
	v.Set("export.dir", "")

	err := Validate(v)
	if err == nil {
		t.Fatalf("expected error for invalid config")
	}
	msg := err.Error()
	expected := []string{
		"output \"fancy\"",
		"data_dir is required",
		"style.width must not be negative",
		"http_addr is required",
		"export.dir is required",
	}
	for _, want := range expected {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected error to contain %q, got %q", want, msg)
		}
	}
}

func TestResolveProgressDBPath(t *testing.T) {
	v := viper.New()
	v.Set("data_dir", "/var/lib/medrax-guide")
	if got := ResolveProgressDBPath(v); got != "/var/lib/medrax-guide/progress.db" {
		t.Fatalf("db path: %q", got)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	v.Set("data_dir", "~/state")
	if got := ResolveProgressDBPath(v); got != filepath.Join(home, "state", "progress.db") {
		t.Fatalf("tilde expansion: %q", got)
	}
}
