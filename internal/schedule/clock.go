package schedule

import (
	"fmt"
	"regexp"
	"time"
)

// Clock times travel as zero-padded "HH:MM" strings. The padding makes plain
// string comparison equivalent to chronological comparison, which the overlap
// checks below rely on.

var clockRE = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidClock reports whether s is a well-formed 24-hour "HH:MM" string.
func ValidClock(s string) bool {
	return clockRE.MatchString(s)
}

// ClockOf formats the wall-clock time of t as "HH:MM".
func ClockOf(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MinutesOf converts "HH:MM" to minutes from midnight.
func MinutesOf(clock string) (int, error) {
	if !ValidClock(clock) {
		return 0, fmt.Errorf("invalid clock time: %q", clock)
	}
	var h, m int
	fmt.Sscanf(clock, "%02d:%02d", &h, &m)
	return h*60 + m, nil
}

// ClockFromMinutes converts minutes from midnight back to "HH:MM".
func ClockFromMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Combine anchors a "HH:MM" clock onto the calendar day of date, in date's
// location. clock must already be validated.
func Combine(date time.Time, clock string) time.Time {
	var h, m int
	fmt.Sscanf(clock, "%02d:%02d", &h, &m)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

// DayBounds returns the inclusive [00:00:00, 23:59:59.999999999] range of
// date's calendar day, used to filter timestamps belonging to that day.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), date.Location())
	return start, end
}

// InWindow reports whether date's calendar day falls inside the optional
// [start, end] validity window. A nil bound is open-ended. Bounds are
// compared at day granularity, so a date equal to either bound is inside.
func InWindow(date time.Time, start, end *time.Time) bool {
	dayStart, dayEnd := DayBounds(date)
	if start != nil && dayEnd.Before(*start) {
		return false
	}
	if end != nil && dayStart.After(*end) {
		return false
	}
	return true
}
