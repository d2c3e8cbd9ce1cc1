package schedule

import (
	"fmt"
	"sort"
	"time"
)

// BlockType tags the source a timeline block came from.
type BlockType string

const (
	BlockAppointment BlockType = "appointment"
	BlockActivity    BlockType = "activity"
)

// TimeBlock is one occupied interval on a day's timeline.
type TimeBlock struct {
	ID                string    `json:"id,omitempty"`
	Type              BlockType `json:"type"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	Title             string    `json:"title,omitempty"`
	Description       string    `json:"description,omitempty"`
	Status            string    `json:"status,omitempty"`
	PatientName       string    `json:"patient_name,omitempty"`
	ParticipantsCount int       `json:"participants_count,omitempty"`
}

// WorkingHours is a practitioner's availability window for one day.
type WorkingHours struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`
}

// Summary aggregates a day's timeline.
type Summary struct {
	TotalAppointments int    `json:"total_appointments"`
	TotalActivities   int    `json:"total_activities"`
	BusyTime          string `json:"busy_time"` // "Hh Mm"
}

// DaySchedule is the merged, ordered timeline of one calendar day.
type DaySchedule struct {
	Date         string        `json:"date"` // YYYY-MM-DD
	DayOfWeek    string        `json:"day_of_week"`
	IsWorkingDay bool          `json:"is_working_day"`
	WorkingHours *WorkingHours `json:"working_hours,omitempty"`
	Blocks       []TimeBlock   `json:"blocks"`
	Summary      *Summary      `json:"summary,omitempty"`
}

// SortBlocks orders blocks ascending by start time. The sort is stable, so
// blocks sharing a start time keep their emission order (appointments are
// appended before activities by the builders).
func SortBlocks(blocks []TimeBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartTime.Before(blocks[j].StartTime)
	})
}

// BusyMinutes sums block durations in whole minutes.
func BusyMinutes(blocks []TimeBlock) int {
	total := 0
	for _, b := range blocks {
		total += int(b.EndTime.Sub(b.StartTime) / time.Minute)
	}
	return total
}

// FormatBusyTime renders a minute total as "Hh Mm".
func FormatBusyTime(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
