package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME at an empty directory and clears daytrace env vars
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DAYTRACE_VAULT", "")
	t.Setenv("DAYTRACE_EXCLUDE", "")
	t.Setenv("EDITOR", "")
	return home
}

func writeConfigFile(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "daytrace")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Default(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.VaultDir != filepath.Join(home, "daytrace") {
		t.Errorf("expected default vault, got %q", cfg.VaultDir)
	}
	if cfg.Editor != "vim" {
		t.Errorf("expected editor 'vim', got %q", cfg.Editor)
	}
	if cfg.DefaultView != ViewCalendar {
		t.Errorf("expected default view 'calendar', got %q", cfg.DefaultView)
	}
	if len(cfg.Exclude) != 0 {
		t.Errorf("expected no excludes, got %v", cfg.Exclude)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfigFile(t, home, `{"vault_dir": "~/notes", "exclude": ["Templates/**"], "editor": "nano", "default_view": "settings"}`)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.VaultDir != filepath.Join(home, "notes") {
		t.Errorf("expected vault from file, got %q", cfg.VaultDir)
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "Templates/**" {
		t.Errorf("expected exclude from file, got %v", cfg.Exclude)
	}
	if cfg.Editor != "nano" {
		t.Errorf("expected editor from file, got %q", cfg.Editor)
	}
	if cfg.DefaultView != ViewSettings {
		t.Errorf("expected settings view, got %q", cfg.DefaultView)
	}
}

func TestLoad_EnvVar(t *testing.T) {
	home := isolate(t)
	writeConfigFile(t, home, `{"vault_dir": "/tmp/file-vault"}`)
	t.Setenv("DAYTRACE_VAULT", "/tmp/env-vault")
	t.Setenv("DAYTRACE_EXCLUDE", "Archive/**:Templates/**")
	t.Setenv("EDITOR", "hx")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.VaultDir != "/tmp/env-vault" {
		t.Errorf("expected /tmp/env-vault, got %q", cfg.VaultDir)
	}
	if len(cfg.Exclude) != 2 {
		t.Fatalf("expected 2 excludes, got %d", len(cfg.Exclude))
	}
	if cfg.Exclude[1] != "Templates/**" {
		t.Errorf("expected Templates/**, got %q", cfg.Exclude[1])
	}
	if cfg.Editor != "hx" {
		t.Errorf("expected hx, got %q", cfg.Editor)
	}
}

func TestLoad_CLIFlags(t *testing.T) {
	isolate(t)
	t.Setenv("DAYTRACE_VAULT", "/tmp/env-vault")

	cfg, err := Load(CLIFlags{
		VaultDir:    "/tmp/cli-vault",
		Exclude:     []string{"Drafts/**"},
		DefaultView: "settings",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// CLI flags should override env vars
	if cfg.VaultDir != "/tmp/cli-vault" {
		t.Errorf("expected /tmp/cli-vault, got %q", cfg.VaultDir)
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "Drafts/**" {
		t.Errorf("expected CLI excludes, got %v", cfg.Exclude)
	}
	if cfg.DefaultView != ViewSettings {
		t.Errorf("expected settings view, got %q", cfg.DefaultView)
	}
}

func TestLoad_UnknownViewFallsBack(t *testing.T) {
	isolate(t)

	cfg, err := Load(CLIFlags{DefaultView: "kanban"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultView != ViewCalendar {
		t.Errorf("expected calendar view, got %q", cfg.DefaultView)
	}
}

func TestLoad_PathExpansion(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{VaultDir: "~/test-vault"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := filepath.Join(home, "test-vault")
	if cfg.VaultDir != expected {
		t.Errorf("expected %q, got %q", expected, cfg.VaultDir)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := isolate(t)

	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(home, ".config", "daytrace", "config.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.VaultDir != filepath.Join(home, "daytrace") {
		t.Errorf("expected default vault from written file, got %q", cfg.VaultDir)
	}

	// Existing file is left alone
	writeConfigFile(t, home, `{"editor": "nano"}`)
	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != `{"editor": "nano"}` {
		t.Errorf("expected file untouched, got %s", data)
	}
}

func TestEnsureVault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "vault")
	cfg := &Config{VaultDir: dir}

	if err := cfg.EnsureVault(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("expected vault directory to exist")
	}
}

func TestParseCommaSeparated(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"a", 1},
		{"a,b,c", 3},
		{" a , b , c ", 3},
		{"a,,b", 2},
	}

	for _, tt := range tests {
		result := ParseCommaSeparated(tt.input)
		if len(result) != tt.expected {
			t.Errorf("ParseCommaSeparated(%q): expected %d items, got %d", tt.input, tt.expected, len(result))
		}
	}
}
