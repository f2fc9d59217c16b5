package model

// MoodEntry is one row of a Daylio CSV export. Only FullDate is ever
// interpreted; every other field is carried through as-is and may be empty.
type MoodEntry struct {
	FullDate   string `json:"full_date"`
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Time       string `json:"time"`
	Mood       string `json:"mood"`
	Activities string `json:"activities"`
	NoteTitle  string `json:"note_title"`
	Note       string `json:"note"`
}

// IngestReport is the success payload for POST /log.
type IngestReport struct {
	MissingDates    []string `json:"missing_dates"`
	GapDays         int      `json:"gap_days"`
	LatestEntryDate string   `json:"latest_entry_date"`
	EntryCount      int      `json:"entry_count"`
}
