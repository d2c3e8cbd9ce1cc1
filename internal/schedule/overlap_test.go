package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 0, 0, time.Local)
}

func TestOverlaps(t *testing.T) {
	// existing appointment 10:00-11:00
	aStart, aEnd := at(10, 0), at(11, 0)

	tests := []struct {
		name string
		s, e time.Time
		want bool
	}{
		{"identical interval", at(10, 0), at(11, 0), true},
		{"starts inside", at(10, 30), at(11, 30), true},
		{"ends inside", at(9, 30), at(10, 30), true},
		{"fully contains", at(9, 0), at(12, 0), true},
		{"fully contained", at(10, 15), at(10, 45), true},
		{"starts exactly at existing start", at(10, 0), at(10, 30), true},
		{"ends exactly at existing end", at(10, 30), at(11, 0), true},
		{"back to back after", at(11, 0), at(12, 0), false},
		{"back to back before", at(9, 0), at(10, 0), false},
		{"well before", at(8, 0), at(9, 0), false},
		{"well after", at(12, 0), at(13, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(aStart, aEnd, tt.s, tt.e))
		})
	}
}

func TestClockOverlaps(t *testing.T) {
	// existing schedule 10:00-11:00
	tests := []struct {
		name string
		s, e string
		want bool
	}{
		{"identical window", "10:00", "11:00", true},
		{"starts inside", "10:30", "11:30", true},
		{"ends inside", "09:30", "10:30", true},
		{"contains", "09:00", "12:00", true},
		{"touching after", "11:00", "12:00", false},
		{"touching before", "09:00", "10:00", false},
		{"disjoint", "13:00", "14:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockOverlaps(tt.s, tt.e, "10:00", "11:00"))
		})
	}
}

func TestSpanOverlaps(t *testing.T) {
	occ := MinuteSpan{Start: 600, End: 660} // 10:00-11:00

	assert.True(t, spanOverlaps(600, 660, occ))
	assert.True(t, spanOverlaps(630, 690, occ))
	assert.True(t, spanOverlaps(570, 630, occ))
	assert.True(t, spanOverlaps(540, 720, occ))
	assert.False(t, spanOverlaps(660, 720, occ), "slot starting at block end is free")
	assert.False(t, spanOverlaps(540, 600, occ), "slot ending at block start is free")
}
