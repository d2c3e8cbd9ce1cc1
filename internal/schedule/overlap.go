package schedule

import "time"

// Overlaps is the appointment-conflict test between an existing interval
// [aStart,aEnd] and a candidate [s,e]. The three clauses are:
//
//	aStart <= s < aEnd    candidate starts inside the existing interval
//	aStart < e <= aEnd    candidate ends inside the existing interval
//	s <= aStart && e >= aEnd   candidate fully contains the existing interval
//
// The asymmetric <=/< boundaries are load-bearing: an appointment ending at
// 11:00 does not conflict with one starting at 11:00.
func Overlaps(aStart, aEnd, s, e time.Time) bool {
	if !aStart.After(s) && aEnd.After(s) {
		return true
	}
	if aStart.Before(e) && !aEnd.Before(e) {
		return true
	}
	if !s.After(aStart) && !e.Before(aEnd) {
		return true
	}
	return false
}

// ClockOverlaps is the same three-clause test in "HH:MM" string space, used
// for activity schedules which carry wall-clock windows rather than absolute
// timestamps. Zero-padded strings compare chronologically.
func ClockOverlaps(s, e, schedStart, schedEnd string) bool {
	if s >= schedStart && s < schedEnd {
		return true
	}
	if e > schedStart && e <= schedEnd {
		return true
	}
	if s <= schedStart && e >= schedEnd {
		return true
	}
	return false
}

// MinuteSpan is an occupied interval in minutes from midnight.
type MinuteSpan struct {
	Start int
	End   int
}

// spanOverlaps applies the three-clause test to minute offsets; used by the
// slot generator against a day's occupied blocks.
func spanOverlaps(start, end int, occ MinuteSpan) bool {
	if start >= occ.Start && start < occ.End {
		return true
	}
	if end > occ.Start && end <= occ.End {
		return true
	}
	if start <= occ.Start && end >= occ.End {
		return true
	}
	return false
}
