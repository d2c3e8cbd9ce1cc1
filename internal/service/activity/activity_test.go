package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entact "github.com/aruizdev/fisioclinic_backend/internal/repo/activity"
	"github.com/aruizdev/fisioclinic_backend/internal/schedule"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestValidateScheduleRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     AddScheduleRequest
		wantDay schedule.Weekday
		wantErr error
	}{
		{
			name:    "valid",
			req:     AddScheduleRequest{DayOfWeek: "monday", StartTime: "09:00", EndTime: "10:00"},
			wantDay: schedule.Monday,
		},
		{
			name:    "unknown weekday",
			req:     AddScheduleRequest{DayOfWeek: "someday", StartTime: "09:00", EndTime: "10:00"},
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "malformed start time",
			req:     AddScheduleRequest{DayOfWeek: "monday", StartTime: "9:00", EndTime: "10:00"},
			wantErr: ErrInvalidClock,
		},
		{
			name:    "end not after start",
			req:     AddScheduleRequest{DayOfWeek: "monday", StartTime: "10:00", EndTime: "10:00"},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "valid with window",
			req: AddScheduleRequest{
				DayOfWeek: "friday", StartTime: "09:00", EndTime: "10:00",
				StartDate: date(2025, time.September, 1),
				EndDate:   date(2025, time.December, 19),
			},
			wantDay: schedule.Friday,
		},
		{
			name: "window ends before it starts",
			req: AddScheduleRequest{
				DayOfWeek: "friday", StartTime: "09:00", EndTime: "10:00",
				StartDate: date(2025, time.December, 19),
				EndDate:   date(2025, time.September, 1),
			},
			wantErr: ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := validateScheduleRequest(tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDay, day)
		})
	}
}

func TestParseActivityType(t *testing.T) {
	typ, err := parseActivityType("PILATES")
	require.NoError(t, err)
	assert.Equal(t, entact.TypePilates, typ)

	typ, err = parseActivityType("functional_training")
	require.NoError(t, err)
	assert.Equal(t, entact.TypeFunctionalTraining, typ)

	_, err = parseActivityType("swimming")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestParseDifficulty(t *testing.T) {
	diff, err := parseDifficulty("Advanced")
	require.NoError(t, err)
	assert.Equal(t, entact.DifficultyAdvanced, diff)

	_, err = parseDifficulty("expert")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}
