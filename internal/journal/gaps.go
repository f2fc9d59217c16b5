package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhishek622/moodgap/pkg/model"
)

// DateLayout is the wire format of full_date and of every date this
// package reports back.
const DateLayout = "2006-01-02"

var (
	ErrNoEntries   = errors.New("no entries")
	ErrInvalidDate = errors.New("invalid entry date")
)

// Latest returns the most recent full_date among the entries. Input order
// is not trusted: every date is parsed and compared.
func Latest(entries []model.MoodEntry) (time.Time, error) {
	if len(entries) == 0 {
		return time.Time{}, ErrNoEntries
	}

	var latest time.Time
	for i, e := range entries {
		d, err := time.ParseInLocation(DateLayout, e.FullDate, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: entry %d has full_date %q", ErrInvalidDate, i+1, e.FullDate)
		}
		if i == 0 || d.After(latest) {
			latest = d
		}
	}
	return latest, nil
}

// MissingDates returns the calendar dates with no entry, from the day after
// the latest recorded entry through today, most recent first. Today itself
// counts as missing whenever there is any gap, since today's entry has not
// been logged yet. When the journal is current, or the latest entry is
// ahead of the clock, the result is empty.
func MissingDates(entries []model.MoodEntry, today time.Time) ([]time.Time, error) {
	latest, err := Latest(entries)
	if err != nil {
		return nil, err
	}

	today = truncateToDay(today)
	// Both stamps are UTC midnights, so the difference is an exact whole
	// number of days.
	gapDays := int((today.Unix() - latest.Unix()) / 86400)
	if gapDays <= 0 {
		return []time.Time{}, nil
	}

	missing := make([]time.Time, 0, gapDays)
	for i := 0; i < gapDays; i++ {
		d := today.AddDate(0, 0, -i)
		if d.Year() < 1 {
			// Out of the representable calendar range; an empty
			// result beats a partial one.
			return []time.Time{}, nil
		}
		missing = append(missing, d)
	}
	return missing, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
