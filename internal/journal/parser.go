package journal

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/abhishek622/moodgap/pkg/model"
)

// Daylio export column names. Column order in the file is irrelevant;
// positions are resolved from the header row.
const (
	colFullDate   = "full_date"
	colDate       = "date"
	colWeekday    = "weekday"
	colTime       = "time"
	colMood       = "mood"
	colActivities = "activities"
	colNoteTitle  = "note_title"
	colNote       = "note"
)

// Parse converts Daylio CSV export text into entries, preserving row order.
// Rows may be shorter or longer than the header; missing optional cells are
// left empty and extra cells are ignored. Every cell is trimmed of
// surrounding whitespace. A data row that does not reach the full_date
// column fails the whole parse; the value itself is not validated here.
func Parse(raw string) ([]model.MoodEntry, error) {
	raw = strings.TrimPrefix(raw, "\uFEFF")

	r := csv.NewReader(strings.NewReader(raw))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return []model.MoodEntry{}, nil
	}

	// Map column name -> position. First occurrence wins; unknown names
	// are ignored.
	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		name = strings.TrimSpace(name)
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}

	entries := make([]model.MoodEntry, 0, len(records)-1)
	for n, row := range records[1:] {
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		if i, ok := cols[colFullDate]; !ok {
			return nil, fmt.Errorf("row %d: header has no %s column", n+2, colFullDate)
		} else if i >= len(row) {
			return nil, fmt.Errorf("row %d: missing %s value", n+2, colFullDate)
		}

		entries = append(entries, model.MoodEntry{
			FullDate:   cell(colFullDate),
			Date:       cell(colDate),
			Weekday:    cell(colWeekday),
			Time:       cell(colTime),
			Mood:       cell(colMood),
			Activities: cell(colActivities),
			NoteTitle:  cell(colNoteTitle),
			Note:       cell(colNote),
		})
	}

	return entries, nil
}
