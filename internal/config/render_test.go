package config

import (
	"strings"
	"testing"
)

func TestRenderDefaultTOML(t *testing.T) {
	out := RenderDefaultTOML()

	for _, want := range []string{
		"output = \"plain\"",
		"pager = true",
		"http_addr = \"127.0.0.1:8585\"",
		"[style]",
		"theme = \"auto\"",
		"width = 0",
		"[progress]",
		"enabled = true",
		"[export]",
		"dir = \"docs\"",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered TOML missing %q:\n%s", want, out)
		}
	}
	if !strings.HasPrefix(out, "# medrax-guide configuration") {
		t.Fatalf("missing header comment:\n%s", out)
	}
}

func TestUpdateTOMLAddsMissingKeys(t *testing.T) {
	existing := "output = \"pretty\"\n"
	updated, changed := UpdateTOML(existing)
	if !changed {
		t.Fatalf("expected change for missing keys")
	}
	if !strings.Contains(updated, "output = \"pretty\"") {
		t.Fatalf("existing value must be preserved:\n%s", updated)
	}
	if !strings.Contains(updated, "# Added by config update") {
		t.Fatalf("missing merge marker:\n%s", updated)
	}
	if !strings.Contains(updated, "[style]") {
		t.Fatalf("missing style section:\n%s", updated)
	}
}

func TestUpdateTOMLCommentsUnknownKeys(t *testing.T) {
	updated, changed := UpdateTOML("legacy_option = 5\n")
	if !changed {
		t.Fatalf("expected change for unknown key")
	}
	if !strings.Contains(updated, "# OUTDATED: option removed from config schema") {
		t.Fatalf("missing outdated marker:\n%s", updated)
	}
	if !strings.Contains(updated, "# legacy_option = 5") {
		t.Fatalf("unknown key must be commented out, not dropped:\n%s", updated)
	}
}

func TestUpdateTOMLNoChangeWhenComplete(t *testing.T) {
	full := RenderDefaultTOML()
	_, changed := UpdateTOML(full)
	if changed {
		t.Fatalf("full config should not need updates")
	}
}
