package notes

import "daytrace/internal/vault"

// DayRecord is the indexed metadata of one calendar day backed by a note
type DayRecord struct {
	Date     string     // Canonical YYYY-MM-DD, from frontmatter `date` or the file name
	File     vault.File // Owned by the vault, only referenced here
	Color    string     // Explicit color override from `lifeCalendar.color`
	ColorKey string     // Palette key from `lifeCalendar` or `lifeCalendar.colorKey`
	Special  bool
}

// HasColorMetadata reports whether the note carried a lifeCalendar field
// that set a color or color key.
func (r DayRecord) HasColorMetadata() bool {
	return r.Color != "" || r.ColorKey != ""
}
