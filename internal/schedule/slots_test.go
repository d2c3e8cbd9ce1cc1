package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotTimes(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestFreeSlotsAroundBusyBlock(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	hours := WorkingHours{Start: "09:00", End: "14:00"}
	blocks := []TimeBlock{
		{Type: BlockAppointment, StartTime: at(10, 0), EndTime: at(11, 0)},
	}

	slots, err := FreeSlots(date, hours, blocks, 60)
	require.NoError(t, err)

	// 09:30 and 10:30 candidates collide with the 10:00-11:00 block;
	// 11:00 starts right at the block end and is free.
	assert.Equal(t, []string{"09:00", "11:00", "11:30", "12:00", "12:30", "13:00"}, slotTimes(slots))

	for _, s := range slots {
		assert.Equal(t, 60, s.DurationMinutes)
		assert.Equal(t, s.Time, ClockOf(s.Datetime))
		assert.Equal(t, date.Day(), s.Datetime.Day())
	}
}

func TestFreeSlotsLastSlotEndsAtWorkEnd(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	hours := WorkingHours{Start: "09:00", End: "10:30"}

	slots, err := FreeSlots(date, hours, nil, 30)
	require.NoError(t, err)

	// 10:00-10:30 ends exactly at the window end and is included
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slotTimes(slots))
}

func TestFreeSlotsDurationLongerThanWindow(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	hours := WorkingHours{Start: "09:00", End: "10:00"}

	slots, err := FreeSlots(date, hours, nil, 90)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFreeSlotsFullyBookedDay(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	hours := WorkingHours{Start: "09:00", End: "12:00"}
	blocks := []TimeBlock{
		{StartTime: at(9, 0), EndTime: at(12, 0)},
	}

	slots, err := FreeSlots(date, hours, blocks, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFreeSlotsOffGridDuration(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	hours := WorkingHours{Start: "09:00", End: "10:00"}

	// candidates still start on the 30-minute grid even for a 45-minute duration
	slots, err := FreeSlots(date, hours, nil, 45)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slotTimes(slots))
}

func TestFreeSlotsRejectsMalformedHours(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

	_, err := FreeSlots(date, WorkingHours{Start: "9:00", End: "14:00"}, nil, 30)
	assert.Error(t, err)

	_, err = FreeSlots(date, WorkingHours{Start: "09:00", End: "24:00"}, nil, 30)
	assert.Error(t, err)
}
