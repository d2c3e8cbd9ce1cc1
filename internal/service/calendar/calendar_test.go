package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruizdev/fisioclinic_backend/internal/schedule"
)

func stubDay(date time.Time) (*schedule.DaySchedule, error) {
	return &schedule.DaySchedule{
		Date:      date.Format("2006-01-02"),
		DayOfWeek: schedule.WeekdayOf(date).String(),
	}, nil
}

func TestBuildWeekStartsAtRequestedDate(t *testing.T) {
	s := &calendarService{}

	// A Wednesday. The week must not snap back to the preceding Sunday.
	start := time.Date(2025, 6, 4, 0, 0, 0, 0, time.Local)

	week, err := s.buildWeek(start, stubDay)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-04", week.WeekStart)
	require.Len(t, week.Days, 7)
	assert.Equal(t, "2025-06-04", week.Days[0].Date)
	assert.Equal(t, "2025-06-10", week.Days[6].Date)
}

func TestBuildWeekDaysAreConsecutive(t *testing.T) {
	s := &calendarService{}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local) // a Sunday

	week, err := s.buildWeek(start, stubDay)
	require.NoError(t, err)
	require.Len(t, week.Days, 7)

	for i, day := range week.Days {
		want := start.AddDate(0, 0, i).Format("2006-01-02")
		assert.Equal(t, want, day.Date)
	}
}
