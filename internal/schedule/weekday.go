package schedule

import (
	"fmt"
	"time"
)

// Weekday is the day-of-week used across availability, activity schedules and
// calendar building. The numeric values follow the 0=Sunday convention; callers
// that persist or compare weekdays depend on this matching time.Weekday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayTokens = [7]string{
	"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY",
}

// lowercase values as stored in the day_of_week DB enums
var weekdayValues = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayOf maps a timestamp to its Weekday using the local wall clock.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

// String returns the API token (SUNDAY..SATURDAY).
func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayTokens[w]
}

// Value returns the lowercase enum value stored in the database.
func (w Weekday) Value() string {
	if w < Sunday || w > Saturday {
		return ""
	}
	return weekdayValues[w]
}

// ParseWeekday accepts either the API token or the DB enum value.
func ParseWeekday(s string) (Weekday, error) {
	for i := range weekdayTokens {
		if s == weekdayTokens[i] || s == weekdayValues[i] {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", s)
}
