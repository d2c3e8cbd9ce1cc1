package schedule

import "time"

// slotStep is the fixed stride of the bookable grid. Slots always start on a
// 30-minute boundary relative to the working-hours start, regardless of the
// requested duration, so the UI shows a predictable grid. A tightly-fitting
// off-grid slot is intentionally not offered.
const slotStep = 30

// Slot is a free bookable window of a requested duration.
type Slot struct {
	Time            string    `json:"time"` // "HH:MM"
	Datetime        time.Time `json:"datetime"`
	DurationMinutes int       `json:"duration_minutes"`
}

// FreeSlots walks the working-hours window in 30-minute steps and emits every
// candidate of durationMinutes that touches none of the occupied blocks.
// A slot ending exactly at the working-hours end is included.
func FreeSlots(date time.Time, hours WorkingHours, blocks []TimeBlock, durationMinutes int) ([]Slot, error) {
	workStart, err := MinutesOf(hours.Start)
	if err != nil {
		return nil, err
	}
	workEnd, err := MinutesOf(hours.End)
	if err != nil {
		return nil, err
	}

	occupied := make([]MinuteSpan, 0, len(blocks))
	for _, b := range blocks {
		occupied = append(occupied, MinuteSpan{
			Start: b.StartTime.Hour()*60 + b.StartTime.Minute(),
			End:   b.EndTime.Hour()*60 + b.EndTime.Minute(),
		})
	}

	var slots []Slot
	for t := workStart; t+durationMinutes <= workEnd; t += slotStep {
		end := t + durationMinutes
		free := true
		for _, occ := range occupied {
			if spanOverlaps(t, end, occ) {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		clock := ClockFromMinutes(t)
		slots = append(slots, Slot{
			Time:            clock,
			Datetime:        Combine(date, clock),
			DurationMinutes: durationMinutes,
		})
	}
	return slots, nil
}
