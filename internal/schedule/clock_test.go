package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "14:05", "23:59"}
	for _, s := range valid {
		assert.True(t, ValidClock(s), s)
	}

	invalid := []string{"24:00", "9:30", "09:60", "0930", "09:3", "", "09:30:00", "ab:cd"}
	for _, s := range invalid {
		assert.False(t, ValidClock(s), s)
	}
}

func TestMinutesOfAndBack(t *testing.T) {
	tests := []struct {
		clock string
		min   int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"14:30", 870},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := MinutesOf(tt.clock)
		require.NoError(t, err, tt.clock)
		assert.Equal(t, tt.min, got, tt.clock)
		assert.Equal(t, tt.clock, ClockFromMinutes(tt.min))
	}

	_, err := MinutesOf("25:00")
	assert.Error(t, err)
}

func TestClockOf(t *testing.T) {
	ts := time.Date(2025, 6, 2, 9, 5, 42, 0, time.Local)
	assert.Equal(t, "09:05", ClockOf(ts))
}

func TestCombine(t *testing.T) {
	date := time.Date(2025, 6, 2, 18, 44, 3, 12, time.Local)
	got := Combine(date, "09:30")

	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 2, got.Day())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, 0, got.Second())
	assert.Equal(t, 0, got.Nanosecond())
	assert.Equal(t, date.Location(), got.Location())
}

func TestDayBounds(t *testing.T) {
	date := time.Date(2025, 6, 2, 15, 20, 0, 0, time.Local)
	start, end := DayBounds(date)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, end.Before(start.AddDate(0, 0, 1)))

	// a timestamp at any point of the day sits inside the bounds
	noon := time.Date(2025, 6, 2, 12, 0, 0, 0, time.Local)
	assert.False(t, noon.Before(start))
	assert.False(t, noon.After(end))
}

func TestInWindow(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 9, d, 0, 0, 0, 0, time.UTC)
	}
	start := day(8)
	end := day(19)

	t.Run("open ended", func(t *testing.T) {
		assert.True(t, InWindow(day(1), nil, nil))
		assert.True(t, InWindow(day(1), nil, &end))
		assert.True(t, InWindow(day(30), &start, nil))
	})

	t.Run("inside", func(t *testing.T) {
		assert.True(t, InWindow(day(12), &start, &end))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, InWindow(day(8), &start, &end))
		assert.True(t, InWindow(day(19), &start, &end))

		// the time of day of the tested date does not matter
		noon := time.Date(2025, 9, 19, 12, 30, 0, 0, time.UTC)
		assert.True(t, InWindow(noon, &start, &end))
	})

	t.Run("outside", func(t *testing.T) {
		assert.False(t, InWindow(day(7), &start, &end))
		assert.False(t, InWindow(day(20), &start, &end))
	})
}
