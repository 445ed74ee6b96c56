package booking

import (
	"fmt"
	"time"
)

// ===============================
// Slot Catalog
// ===============================

// TimeSlots is the fixed daily catalog: half-hour slots from 09:00 to 17:00
// with a 12:00-14:00 lunch gap.
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
}

// WindowDays is the rolling booking window, today included.
const WindowDays = 60

const DateLayout = "2006-01-02"

func IsValidSlot(ora string) bool {
	for _, slot := range TimeSlots {
		if slot == ora {
			return true
		}
	}
	return false
}

// time.Weekday is Sunday-based.
var weekdayAbbrev = [...]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"}

var monthAbbrev = [...]string{
	"gen", "feb", "mar", "apr", "mag", "giu",
	"lug", "ago", "set", "ott", "nov", "dic",
}

// FormatDateLabel renders the short Italian label shown in the booking
// calendar, e.g. "lun 03 mar".
func FormatDateLabel(t time.Time) string {
	return fmt.Sprintf("%s %02d %s",
		weekdayAbbrev[t.Weekday()],
		t.Day(),
		monthAbbrev[t.Month()-1],
	)
}

// Today returns the current UTC calendar day at midnight.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO calendar date.
func ParseDate(data string) (time.Time, error) {
	return time.Parse(DateLayout, data)
}

// WithinWindow reports whether date falls in [today, today+WindowDays-1].
func WithinWindow(date, today time.Time) bool {
	if date.Before(today) {
		return false
	}
	last := today.AddDate(0, 0, WindowDays-1)
	return !date.After(last)
}
