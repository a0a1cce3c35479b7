// Package index maintains the mapping from canonical date strings to day
// records. An Index is owned by a single viewer and is not safe for
// concurrent use.
package index

import (
	"sort"
	"strings"

	"daytrace/internal/logs"
	"daytrace/internal/notes"
	"daytrace/internal/vault"
)

// Source is the document store the index reads notes from
type Source interface {
	MarkdownFiles() ([]vault.File, error)
	Read(vault.File) ([]byte, error)
}

// Index maps a date string to the day record of the note for that day
type Index struct {
	source  Source
	records map[string]notes.DayRecord
}

// New returns an empty index reading from source.
func New(source Source) *Index {
	return &Index{
		source:  source,
		records: make(map[string]notes.DayRecord),
	}
}

// Rescan replaces the whole index with the day records of every note whose
// vault path starts with folderFilter. The filter is a literal string
// prefix: "Daily" also matches "DailyArchive/2024-01-01.md". When two
// files claim the same date the one enumerated last wins.
func (idx *Index) Rescan(folderFilter string) error {
	files, err := idx.source.MarkdownFiles()
	if err != nil {
		return err
	}

	idx.records = make(map[string]notes.DayRecord, len(files))
	for _, f := range files {
		if !isNote(f) {
			continue
		}
		if folderFilter != "" && !strings.HasPrefix(f.Path, folderFilter) {
			continue
		}
		if record, ok := idx.parse(f); ok {
			idx.records[record.Date] = record
		}
	}

	logs.Logger.Printf("Indexed %d day notes out of %d files", len(idx.records), len(files))
	return nil
}

// Update extracts the day record of a single file and inserts or
// overwrites it. It reports whether the index changed. The folder filter is
// not applied; a stale entry left by an edit that removed the date stays
// until the next Rescan.
func (idx *Index) Update(f vault.File) bool {
	if !isNote(f) {
		return false
	}
	record, ok := idx.parse(f)
	if !ok {
		return false
	}
	idx.records[record.Date] = record
	return true
}

func (idx *Index) parse(f vault.File) (notes.DayRecord, bool) {
	content, err := idx.source.Read(f)
	if err != nil {
		logs.Logger.Printf("Warning: could not read %s: %v", f.Path, err)
		return notes.DayRecord{}, false
	}
	return notes.ParseDayRecord(f, content)
}

// Get returns the record stored under date.
func (idx *Index) Get(date string) (notes.DayRecord, bool) {
	record, ok := idx.records[date]
	return record, ok
}

// Len returns the number of indexed days.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Dates returns the indexed date keys in ascending order.
func (idx *Index) Dates() []string {
	keys := make([]string, 0, len(idx.records))
	for k := range idx.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Records returns every record ordered by date.
func (idx *Index) Records() []notes.DayRecord {
	keys := idx.Dates()
	records := make([]notes.DayRecord, 0, len(keys))
	for _, k := range keys {
		records = append(records, idx.records[k])
	}
	return records
}

func isNote(f vault.File) bool {
	return strings.EqualFold(f.Ext(), vault.NoteExt)
}
