package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortBlocksIsStable(t *testing.T) {
	blocks := []TimeBlock{
		{ID: "act-1", Type: BlockActivity, StartTime: at(14, 0), EndTime: at(15, 0)},
		{ID: "apt-1", Type: BlockAppointment, StartTime: at(9, 0), EndTime: at(10, 0)},
		{ID: "apt-2", Type: BlockAppointment, StartTime: at(14, 0), EndTime: at(14, 30)},
	}
	SortBlocks(blocks)

	assert.Equal(t, "apt-1", blocks[0].ID)
	// equal start times keep their original relative order
	assert.Equal(t, "act-1", blocks[1].ID)
	assert.Equal(t, "apt-2", blocks[2].ID)
}

func TestBusyMinutes(t *testing.T) {
	assert.Equal(t, 0, BusyMinutes(nil))

	blocks := []TimeBlock{
		{StartTime: at(9, 0), EndTime: at(10, 0)},
		{StartTime: at(14, 0), EndTime: at(14, 45)},
	}
	assert.Equal(t, 105, BusyMinutes(blocks))
}

func TestFormatBusyTime(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatBusyTime(0))
	assert.Equal(t, "0h 45m", FormatBusyTime(45))
	assert.Equal(t, "1h 0m", FormatBusyTime(60))
	assert.Equal(t, "2h 30m", FormatBusyTime(150))
}
