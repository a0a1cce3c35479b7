package notes

import (
	"strings"
	"time"

	"daytrace/internal/dates"
	"daytrace/internal/frontmatter"
	"daytrace/internal/vault"
)

const (
	fieldDate         = "date"
	fieldLifeCalendar = "lifeCalendar"
	fieldColorKey     = "colorKey"
	fieldColor        = "color"
	fieldSpecial      = "special"
)

// header date layouts accepted besides the plain YYYY-MM-DD form
var headerDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDayRecord extracts the day record of a note. A frontmatter `date`
// always wins over the file name; when it is present but not a real
// calendar day the note has no record. It also returns false when neither
// source yields a date.
func ParseDayRecord(file vault.File, content []byte) (DayRecord, bool) {
	fm, _ := frontmatter.Extract(content)

	date, present, ok := headerDate(fm)
	if !present {
		date, ok = filenameDate(file)
	}
	if !ok {
		return DayRecord{}, false
	}

	record := DayRecord{
		Date: date,
		File: file,
	}
	applyLifeCalendar(&record, fm)
	return record, true
}

// headerDate normalizes the frontmatter `date` field to a local calendar
// day. present is false when the field is missing, null or blank.
func headerDate(fm map[string]any) (date string, present, ok bool) {
	v, found := fm[fieldDate]
	if !found || v == nil {
		return "", false, false
	}

	// yaml.v3 keeps timestamp scalars as strings when decoding into any
	d, isString := v.(string)
	if !isString {
		return "", true, false
	}
	d = strings.TrimSpace(d)
	if d == "" {
		return "", false, false
	}

	if t, ok := dates.Parse(d); ok {
		return dates.Format(t), true, true
	}
	for _, layout := range headerDateLayouts {
		if t, err := time.ParseInLocation(layout, d, time.Local); err == nil {
			return dates.Format(t.Local()), true, true
		}
	}
	return "", true, false
}

// filenameDate uses the base name when it is exactly a valid YYYY-MM-DD date.
// 2024-02-30 matches the pattern but is rejected here.
func filenameDate(file vault.File) (string, bool) {
	name := file.Basename()
	if _, ok := dates.Parse(name); !ok {
		return "", false
	}
	return name, true
}

// applyLifeCalendar reads the polymorphic lifeCalendar field: a bare string
// is a palette key and marks the day special, a mapping carries colorKey,
// color and an explicit special flag.
func applyLifeCalendar(record *DayRecord, fm map[string]any) {
	if key, ok := frontmatter.String(fm, fieldLifeCalendar); ok {
		record.ColorKey = key
		record.Special = true
		return
	}

	lc, ok := frontmatter.Map(fm, fieldLifeCalendar)
	if !ok {
		return
	}
	record.ColorKey, _ = frontmatter.String(lc, fieldColorKey)
	record.Color, _ = frontmatter.String(lc, fieldColor)
	record.Special, _ = frontmatter.Bool(lc, fieldSpecial)
}
