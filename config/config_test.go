package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
tab_width = 8
line_numbers = false
regex = true
match_timeout = "500ms"
theme = "dracula"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TabWidth != 8 || cfg.LineNumbers || !cfg.Regex {
		t.Fatalf("decoded fields: %+v", cfg)
	}
	if cfg.MatchTimeout.Duration != 500*time.Millisecond {
		t.Fatalf("match_timeout: got %v", cfg.MatchTimeout)
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("theme: got %q", cfg.Theme)
	}
	if cfg.PreviewLength != 50 || !cfg.SystemClipboard {
		t.Fatalf("untouched keys lost defaults: %+v", cfg)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoad_DefaultLocationMissingIsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"tab width", "tab_width = 0", "tab_width"},
		{"preview", "preview_length = -1", "preview_length"},
		{"duration", `match_timeout = "soon"`, "config"},
		{"unknown key", `colour = "red"`, "unknown key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got err %v, want mention of %q", err, tt.want)
			}
		})
	}
}
