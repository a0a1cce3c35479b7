package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DataDir is the vault subfolder holding daytrace state
const DataDir = ".daytrace"

// StorePath returns the settings file location inside a vault.
func StorePath(vaultRoot string) string {
	return filepath.Join(vaultRoot, DataDir, "settings.json")
}

// Store persists Settings as a flat JSON record. Every successful Update is
// written through immediately.
type Store struct {
	path    string
	current Settings
}

// NewStore returns a store holding the defaults until Load is called.
func NewStore(path string) *Store {
	return &Store{path: path, current: Defaults()}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file and merges it over the defaults: missing
// keys keep their default, present keys override, and a stored palette
// replaces the default palette as a whole. A missing file is not an error.
// On a corrupt file the defaults are kept and the decode error returned.
func (s *Store) Load() (Settings, error) {
	s.current = Defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.Get(), nil
		}
		return s.Get(), err
	}

	loaded := Defaults()
	loaded.Palette = nil
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s.Get(), fmt.Errorf("parse %s: %w", s.path, err)
	}
	loaded.normalize()

	s.current = loaded
	return s.Get(), nil
}

// Get returns a copy of the current settings.
func (s *Store) Get() Settings {
	return s.current.Clone()
}

// Update applies fn to a copy of the settings and, when fn succeeds, saves
// and keeps the result. A failing fn or write leaves the store untouched.
func (s *Store) Update(fn func(*Settings) error) (Settings, error) {
	next := s.current.Clone()
	if err := fn(&next); err != nil {
		return s.Get(), err
	}
	next.normalize()

	if err := s.write(next); err != nil {
		return s.Get(), err
	}
	s.current = next
	return s.Get(), nil
}

// Save writes the current settings to disk.
func (s *Store) Save() error {
	return s.write(s.current)
}

func (s *Store) write(next Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}
