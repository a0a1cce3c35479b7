package notes

import (
	"testing"
	"time"

	"daytrace/internal/dates"
	"daytrace/internal/vault"
)

func file(p string) vault.File {
	return vault.File{Path: p, AbsPath: "/vault/" + p}
}

func TestParseDayRecord_FilenameDate(t *testing.T) {
	names := []string{"2024-06-15", "1999-12-31", "2000-02-29"}

	for _, name := range names {
		record, ok := ParseDayRecord(file("Daily/"+name+".md"), []byte("# no header\n"))
		if !ok {
			t.Errorf("%s: expected a record", name)
			continue
		}
		if record.Date != name {
			t.Errorf("expected date %q, got %q", name, record.Date)
		}
		if record.HasColorMetadata() || record.Special {
			t.Errorf("%s: expected no color metadata, got %+v", name, record)
		}
	}
}

func TestParseDayRecord_HeaderDateWins(t *testing.T) {
	content := []byte("---\ndate: 2023-01-02\n---\n")

	record, ok := ParseDayRecord(file("2024-06-15.md"), content)
	if !ok {
		t.Fatal("expected a record")
	}
	if record.Date != "2023-01-02" {
		t.Errorf("expected header date 2023-01-02, got %q", record.Date)
	}
}

func TestParseDayRecord_HeaderDateOnly(t *testing.T) {
	tests := []struct {
		header   string
		expected string
	}{
		{"date: 2024-06-15", "2024-06-15"},
		{`date: "2024-06-15"`, "2024-06-15"},
		{"date: 2024-06-15T09:30", "2024-06-15"},
		{"date: 2024-06-15 21:10", "2024-06-15"},
	}

	for _, tt := range tests {
		content := []byte("---\n" + tt.header + "\n---\nbody")
		record, ok := ParseDayRecord(file("journal/trip to the coast.md"), content)
		if !ok {
			t.Errorf("%q: expected a record", tt.header)
			continue
		}
		if record.Date != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.header, tt.expected, record.Date)
		}
	}
}

func TestParseDayRecord_NoDate(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"plain name", "ideas.md", "# Ideas"},
		{"date with suffix", "2024-06-15 meeting.md", ""},
		{"header without date", "notes.md", "---\ntitle: x\n---\n"},
		{"unparseable header date", "notes.md", "---\ndate: someday\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if record, ok := ParseDayRecord(file(tt.path), []byte(tt.content)); ok {
				t.Errorf("expected no record, got %+v", record)
			}
		})
	}
}

func TestParseDayRecord_InvalidCalendarDate(t *testing.T) {
	// Matches YYYY-MM-DD but February has no 30th: rejected at parse time
	if record, ok := ParseDayRecord(file("2024-02-30.md"), nil); ok {
		t.Errorf("expected 2024-02-30 to be rejected, got %+v", record)
	}

	// An invalid header date still wins over the file name
	if record, ok := ParseDayRecord(file("2024-03-01.md"), []byte("---\ndate: 2024-02-30\n---\n")); ok {
		t.Errorf("expected no record, got %+v", record)
	}
}

func TestParseDayRecord_UnparsableHeaderDateRejected(t *testing.T) {
	for _, header := range []string{"date: someday", "date: 2024-02-30", "date: 2024/06/14", "date: 20240614"} {
		t.Run(header, func(t *testing.T) {
			content := []byte("---\n" + header + "\n---\n")
			if record, ok := ParseDayRecord(file("Daily/2024-06-15.md"), content); ok {
				t.Errorf("expected no record, got %+v", record)
			}
		})
	}
}

func TestParseDayRecord_BlankHeaderDateUsesFilename(t *testing.T) {
	for _, header := range []string{"date:", "date: ~", "date: \"\""} {
		t.Run(header, func(t *testing.T) {
			content := []byte("---\n" + header + "\n---\n")
			record, ok := ParseDayRecord(file("2024-06-15.md"), content)
			if !ok {
				t.Fatal("expected a record from the file name")
			}
			if record.Date != "2024-06-15" {
				t.Errorf("expected 2024-06-15, got %q", record.Date)
			}
		})
	}
}

func TestParseDayRecord_TimestampHeaderIsLocalDay(t *testing.T) {
	content := []byte("---\ndate: 2024-06-15T23:30:00Z\n---\n")
	want := dates.Format(time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC).Local())

	record, ok := ParseDayRecord(file("notes/trip.md"), content)
	if !ok {
		t.Fatal("expected a record")
	}
	if record.Date != want {
		t.Errorf("expected %s, got %q", want, record.Date)
	}
}

func TestParseDayRecord_MalformedHeaderFallsBackToFilename(t *testing.T) {
	content := []byte("---\nlifeCalendar: [oops\n---\n")

	record, ok := ParseDayRecord(file("2024-06-15.md"), content)
	if !ok {
		t.Fatal("expected a record from the file name")
	}
	if record.Date != "2024-06-15" {
		t.Errorf("expected 2024-06-15, got %q", record.Date)
	}
	if record.HasColorMetadata() {
		t.Errorf("expected no color metadata, got %+v", record)
	}
}

func TestParseDayRecord_LifeCalendarString(t *testing.T) {
	content := []byte("---\nlifeCalendar: 里程碑\n---\n")

	record, ok := ParseDayRecord(file("Daily Notes/2024-06-15.md"), content)
	if !ok {
		t.Fatal("expected a record")
	}
	if record.Date != "2024-06-15" {
		t.Errorf("expected 2024-06-15, got %q", record.Date)
	}
	if record.ColorKey != "里程碑" {
		t.Errorf("expected colorKey 里程碑, got %q", record.ColorKey)
	}
	if !record.Special {
		t.Error("expected bare string form to mark the day special")
	}
	if record.Color != "" {
		t.Errorf("expected no explicit color, got %q", record.Color)
	}
}

func TestParseDayRecord_LifeCalendarMapping(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		colorKey string
		color    string
		special  bool
	}{
		{
			name:     "all fields",
			header:   "lifeCalendar:\n  colorKey: 旅行\n  color: \"#FF0000\"\n  special: true",
			colorKey: "旅行",
			color:    "#FF0000",
			special:  true,
		},
		{
			name:     "special not inferred",
			header:   "lifeCalendar:\n  colorKey: 成就",
			colorKey: "成就",
		},
		{
			name:   "color only",
			header: "lifeCalendar: {color: \"#123456\"}",
			color:  "#123456",
		},
		{
			name:     "non-boolean special ignored",
			header:   "lifeCalendar:\n  colorKey: 生日\n  special: \"yes\"",
			colorKey: "生日",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte("---\n" + tt.header + "\n---\n")
			record, ok := ParseDayRecord(file("2024-06-15.md"), content)
			if !ok {
				t.Fatal("expected a record")
			}
			if record.ColorKey != tt.colorKey {
				t.Errorf("expected colorKey %q, got %q", tt.colorKey, record.ColorKey)
			}
			if record.Color != tt.color {
				t.Errorf("expected color %q, got %q", tt.color, record.Color)
			}
			if record.Special != tt.special {
				t.Errorf("expected special %v, got %v", tt.special, record.Special)
			}
		})
	}
}

func TestParseDayRecord_EmptyLifeCalendar(t *testing.T) {
	record, ok := ParseDayRecord(file("2024-06-15.md"), []byte("---\nlifeCalendar: \"\"\n---\n"))
	if !ok {
		t.Fatal("expected a record")
	}
	if record.HasColorMetadata() || record.Special {
		t.Errorf("expected empty lifeCalendar to carry nothing, got %+v", record)
	}
}

func TestParseDayRecord_KeepsFileReference(t *testing.T) {
	f := file("Daily Notes/2024-06-15.md")
	record, ok := ParseDayRecord(f, nil)
	if !ok {
		t.Fatal("expected a record")
	}
	if record.File != f {
		t.Errorf("expected file %+v, got %+v", f, record.File)
	}
}
