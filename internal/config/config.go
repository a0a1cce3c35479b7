package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Views the TUI can start in
const (
	ViewCalendar = "calendar"
	ViewSettings = "settings"
)

// Config holds the unified application configuration
type Config struct {
	VaultDir    string   `json:"vault_dir"`
	Exclude     []string `json:"exclude"`
	Editor      string   `json:"editor"`
	DefaultView string   `json:"default_view"`
}

// Settings represents the config file structure
type Settings struct {
	VaultDir    string   `json:"vault_dir,omitempty"`
	Exclude     []string `json:"exclude,omitempty"`
	Editor      string   `json:"editor,omitempty"`
	DefaultView string   `json:"default_view,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	VaultDir    string
	Exclude     []string
	DefaultView string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		Editor:      "vim",
		DefaultView: ViewCalendar,
	}

	// Try loading config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.VaultDir != "" {
				cfg.VaultDir = expandPath(fileConfig.VaultDir)
			}
			if len(fileConfig.Exclude) > 0 {
				cfg.Exclude = fileConfig.Exclude
			}
			if fileConfig.Editor != "" {
				cfg.Editor = fileConfig.Editor
			}
			if fileConfig.DefaultView != "" {
				cfg.DefaultView = fileConfig.DefaultView
			}
		}
	}

	// Priority 2: Environment variables override config file
	if envVault := os.Getenv("DAYTRACE_VAULT"); envVault != "" {
		cfg.VaultDir = expandPath(envVault)
	}
	if envExclude := os.Getenv("DAYTRACE_EXCLUDE"); envExclude != "" {
		cfg.Exclude = parseColonSeparated(envExclude)
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		cfg.Editor = editor
	}

	// Priority 1: CLI flags override everything
	if flags.VaultDir != "" {
		cfg.VaultDir = expandPath(flags.VaultDir)
	}
	if len(flags.Exclude) > 0 {
		cfg.Exclude = flags.Exclude
	}
	if flags.DefaultView != "" {
		cfg.DefaultView = flags.DefaultView
	}

	// Default vault if nothing configured
	if cfg.VaultDir == "" {
		defaultDir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.VaultDir = defaultDir
	}

	if cfg.DefaultView != ViewSettings {
		cfg.DefaultView = ViewCalendar
	}

	return cfg, nil
}

// GetDefaultDir returns the default vault path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "daytrace"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "daytrace", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureVault creates the vault directory if it is missing
func (c *Config) EnsureVault() error {
	return os.MkdirAll(c.VaultDir, 0755)
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	settings := Settings{
		VaultDir:    defaultDir,
		Editor:      "vim",
		DefaultView: ViewCalendar,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	return splitList(s, ",")
}

func parseColonSeparated(s string) []string {
	return splitList(s, ":")
}

func splitList(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
