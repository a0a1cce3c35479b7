// Package app wires the vault, the settings store, the day index and the
// calendar renderer together. The TUI and the CLI both drive an App.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"daytrace/internal/calendar"
	"daytrace/internal/dates"
	"daytrace/internal/index"
	"daytrace/internal/logs"
	"daytrace/internal/notes"
	"daytrace/internal/settings"
	"daytrace/internal/vault"
)

// App is the life calendar over one vault. It is not safe for concurrent
// use; the TUI calls it only from its update loop.
type App struct {
	Vault    *vault.Vault
	Settings *settings.Store
	Index    *index.Index
	Now      func() time.Time
}

// New returns an App with an empty index. Call Refresh to fill it.
func New(v *vault.Vault, store *settings.Store) *App {
	return &App{
		Vault:    v,
		Settings: store,
		Index:    index.New(v),
		Now:      time.Now,
	}
}

// Open opens the vault at dir, loads its settings and indexes it. A corrupt
// settings file is logged and replaced by the defaults in memory.
func Open(dir string, exclude []string) (*App, error) {
	v, err := vault.Open(dir, exclude)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	store := settings.NewStore(settings.StorePath(v.Root))
	if _, err := store.Load(); err != nil {
		logs.Logger.Printf("Warning: could not load settings, using defaults: %v", err)
	}

	a := New(v, store)
	if err := a.Refresh(); err != nil {
		return nil, fmt.Errorf("index vault: %w", err)
	}
	return a, nil
}

// DataDir returns the vault folder holding settings and the log.
func (a *App) DataDir() string {
	return filepath.Join(a.Vault.Root, settings.DataDir)
}

// Refresh rebuilds the whole index under the configured folder.
func (a *App) Refresh() error {
	return a.Index.Rescan(a.Settings.Get().DailyNotesFolder)
}

// HandleEvent applies a vault change to the index and reports whether the
// calendar needs to be redrawn. Creates and edits patch one entry; a
// delete rebuilds everything since the index cannot tell which date the
// removed file held.
func (a *App) HandleEvent(ev vault.Event) (bool, error) {
	switch ev.Op {
	case vault.OpCreate, vault.OpModify:
		return a.Index.Update(ev.File), nil
	case vault.OpDelete:
		if err := a.Refresh(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Today returns the current day at local midnight.
func (a *App) Today() time.Time {
	return dates.Midnight(a.Now())
}

// Params returns the renderer inputs for the current settings and day.
func (a *App) Params() calendar.Params {
	return calendar.ParamsFrom(a.Settings.Get(), a.Now())
}

// Calendar computes every year block.
func (a *App) Calendar() []calendar.YearBlock {
	return calendar.Build(a.Params(), a.Index)
}

// Year computes the block for one age.
func (a *App) Year(age int) calendar.YearBlock {
	return calendar.BuildYear(a.Params(), a.Index, age)
}

// Stats summarizes the calendar.
func (a *App) Stats() calendar.Stats {
	return calendar.ComputeStats(a.Params(), a.Index.Len())
}

// CreateDayNote returns the note for date, creating it from the day-note
// template when it does not exist yet. created is false when an existing
// note was found. The configured folder is created first when missing.
func (a *App) CreateDayNote(date time.Time) (file vault.File, created bool, err error) {
	key := dates.Format(date)
	folder := a.Settings.Get().DailyNotesFolder
	rel := notes.DayNotePath(folder, key)

	if a.Vault.Exists(rel) {
		file, err = a.Vault.File(rel)
		if err != nil {
			return vault.File{}, false, fmt.Errorf("create day note %s: %w", key, err)
		}
		return file, false, nil
	}

	if folder != "" && !a.Vault.Exists(folder) {
		if err := a.Vault.CreateFolder(folder); err != nil {
			return vault.File{}, false, fmt.Errorf("create folder %s: %w", folder, err)
		}
	}

	file, err = a.Vault.Create(rel, notes.DayNoteContent(key))
	if errors.Is(err, vault.ErrExists) {
		file, err = a.Vault.File(rel)
		if err != nil {
			return vault.File{}, false, fmt.Errorf("create day note %s: %w", key, err)
		}
		return file, false, nil
	}
	if err != nil {
		return vault.File{}, false, fmt.Errorf("create day note %s: %w", key, err)
	}

	logs.Logger.Printf("Created day note %s", file.Path)
	a.Index.Update(file)
	return file, true, nil
}

// UpdateSettings applies and persists a settings change. A change of the
// daily notes folder rebuilds the index.
func (a *App) UpdateSettings(fn func(*settings.Settings) error) (settings.Settings, error) {
	before := a.Settings.Get().DailyNotesFolder

	s, err := a.Settings.Update(fn)
	if err != nil {
		return s, err
	}

	if s.DailyNotesFolder != before {
		if err := a.Refresh(); err != nil {
			return s, fmt.Errorf("reindex after folder change: %w", err)
		}
	}
	return s, nil
}

// Summary reads a note and returns its title and preview.
func (a *App) Summary(f vault.File) (notes.Summary, error) {
	content, err := a.Vault.Read(f)
	if err != nil {
		return notes.Summary{}, err
	}
	return notes.Summarize(content), nil
}
