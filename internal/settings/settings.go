package settings

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"
	"time"

	"daytrace/internal/dates"
)

// DefaultColorKey names the palette entry used when a day has no color of
// its own. It can never be removed from a palette.
const DefaultColorKey = "默认"

const (
	MinLifeExpectancy = 50
	MaxLifeExpectancy = 120
)

var (
	ErrInvalidBirthDate      = errors.New("birth date must be a valid YYYY-MM-DD date")
	ErrInvalidLifeExpectancy = fmt.Errorf("life expectancy must be between %d and %d", MinLifeExpectancy, MaxLifeExpectancy)
	ErrDefaultColor          = errors.New("cannot delete the default color")
	ErrEmptyColorName        = errors.New("color name must not be empty")
	ErrEmptyColorValue       = errors.New("color value must not be empty")
	ErrUnknownColor          = errors.New("no such color in palette")
)

// Settings is the persisted calendar configuration
type Settings struct {
	BirthDate        string            `json:"birthDate"`
	LifeExpectancy   int               `json:"lifeExpectancy"`
	DailyNotesFolder string            `json:"dailyNotesFolder"`
	Palette          map[string]string `json:"palette"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		BirthDate:        "2000-01-01",
		LifeExpectancy:   90,
		DailyNotesFolder: "",
		Palette: map[string]string{
			DefaultColorKey: "#D1D5DB",
			"里程碑":           "#FF8A00",
			"生日":            "#F59E0B",
			"成就":            "#10B981",
			"旅行":            "#3B82F6",
			"纪念日":           "#6366F1",
			"庆祝":            "#EC4899",
		},
	}
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	s.Palette = maps.Clone(s.Palette)
	return s
}

// Birth returns the birth date at local midnight. An unparseable stored
// value falls back to the default birth date.
func (s Settings) Birth() time.Time {
	if t, ok := dates.Parse(s.BirthDate); ok {
		return t
	}
	t, _ := dates.Parse(Defaults().BirthDate)
	return t
}

// SetBirthDate validates and stores a YYYY-MM-DD birth date.
func (s *Settings) SetBirthDate(value string) error {
	value = strings.TrimSpace(value)
	if _, ok := dates.Parse(value); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidBirthDate, value)
	}
	s.BirthDate = value
	return nil
}

// SetLifeExpectancy validates and stores the number of years to draw.
func (s *Settings) SetLifeExpectancy(years int) error {
	if years < MinLifeExpectancy || years > MaxLifeExpectancy {
		return fmt.Errorf("%w: %d", ErrInvalidLifeExpectancy, years)
	}
	s.LifeExpectancy = years
	return nil
}

// SetDailyNotesFolder stores the folder prefix; an empty value scans the
// whole vault.
func (s *Settings) SetDailyNotesFolder(folder string) {
	s.DailyNotesFolder = strings.TrimSpace(folder)
}

// SetColor adds a palette entry or changes an existing one.
func (s *Settings) SetColor(name, color string) error {
	name = strings.TrimSpace(name)
	color = strings.TrimSpace(color)
	if name == "" {
		return ErrEmptyColorName
	}
	if color == "" {
		return ErrEmptyColorValue
	}
	if s.Palette == nil {
		s.Palette = make(map[string]string)
	}
	s.Palette[name] = color
	return nil
}

// RemoveColor deletes a palette entry. The default entry is protected.
func (s *Settings) RemoveColor(name string) error {
	if name == DefaultColorKey {
		return ErrDefaultColor
	}
	if _, ok := s.Palette[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	delete(s.Palette, name)
	return nil
}

// ColorNames returns the palette keys with the default key first and the
// rest sorted.
func (s Settings) ColorNames() []string {
	return PaletteKeys(s.Palette)
}

// PaletteKeys orders palette keys with the default key first and the rest
// sorted.
func PaletteKeys(palette map[string]string) []string {
	keys := make([]string, 0, len(palette))
	for k := range palette {
		if k != DefaultColorKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := palette[DefaultColorKey]; ok {
		keys = append([]string{DefaultColorKey}, keys...)
	}
	return keys
}

// normalize repairs values that would break rendering: a missing default
// color, a non-positive life expectancy or a nil palette.
func (s *Settings) normalize() {
	defaults := Defaults()
	if s.Palette == nil {
		s.Palette = defaults.Palette
	}
	if _, ok := s.Palette[DefaultColorKey]; !ok {
		s.Palette[DefaultColorKey] = defaults.Palette[DefaultColorKey]
	}
	if s.LifeExpectancy <= 0 {
		s.LifeExpectancy = defaults.LifeExpectancy
	}
}
