package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entact "github.com/aruizdev/fisioclinic_backend/internal/repo/activity"
	entassign "github.com/aruizdev/fisioclinic_backend/internal/repo/activityassignment"
	entsched "github.com/aruizdev/fisioclinic_backend/internal/repo/activityschedule"
	entappt "github.com/aruizdev/fisioclinic_backend/internal/repo/appointment"
	entavail "github.com/aruizdev/fisioclinic_backend/internal/repo/availability"
	"github.com/aruizdev/fisioclinic_backend/internal/schedule"
)

// validateAvailability is the conflict validator. It checks a candidate
// interval for one physiotherapist against the weekly availability template,
// existing appointments and assigned group-activity occurrences, in that
// order. excludeID skips one appointment (the one being rescheduled).
//
// The interval must lie within one calendar day; both checks and storage
// operate on day granularity.
func (s *appointmentService) validateAvailability(ctx context.Context, physioID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) error {
	if !end.After(start) {
		return ErrInvalidTimeRange
	}

	weekday := schedule.WeekdayOf(start)

	// 1. Availability template for this weekday.
	avail, err := s.db.Availability.Query().
		Where(
			entavail.PhysiotherapistID(physioID),
			entavail.DayOfWeekEQ(entavail.DayOfWeek(weekday.Value())),
			entavail.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNoAvailabilityForDay
		}
		return fmt.Errorf("query availability: %w", err)
	}

	startClock := schedule.ClockOf(start)
	endClock := schedule.ClockOf(end)
	if startClock < avail.StartTime || endClock > avail.EndTime {
		return ErrOutsideWorkingHours
	}

	// 2. Existing appointments on the same day, cancelled ones ignored.
	dayStart, dayEnd := schedule.DayBounds(start)
	q := s.db.Appointment.Query().
		Where(
			entappt.PhysiotherapistID(physioID),
			entappt.StatusNEQ(entappt.StatusCancelled),
			entappt.StartTimeGTE(dayStart),
			entappt.StartTimeLTE(dayEnd),
		)
	if excludeID != nil {
		q = q.Where(entappt.IDNEQ(*excludeID))
	}
	existing, err := q.All(ctx)
	if err != nil {
		return fmt.Errorf("query appointments: %w", err)
	}
	for _, a := range existing {
		if schedule.Overlaps(a.StartTime, a.EndTime, start, end) {
			return ErrAppointmentConflict
		}
	}

	// 3. Group-activity occurrences the physio is assigned to run.
	activityIDs, err := s.db.ActivityAssignment.Query().
		Where(
			entassign.PhysiotherapistID(physioID),
			entassign.IsActive(true),
		).
		Select(entassign.FieldActivityID).
		Strings(ctx)
	if err != nil {
		return fmt.Errorf("query assignments: %w", err)
	}
	if len(activityIDs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(activityIDs))
	for _, raw := range activityIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	activeIDs, err := s.db.Activity.Query().
		Where(
			entact.IDIn(ids...),
			entact.IsActive(true),
			entact.DeletedAtIsNil(),
		).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("query activities: %w", err)
	}
	if len(activeIDs) == 0 {
		return nil
	}

	scheds, err := s.db.ActivitySchedule.Query().
		Where(
			entsched.ActivityIDIn(activeIDs...),
			entsched.DayOfWeekEQ(entsched.DayOfWeek(weekday.Value())),
			entsched.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query activity schedules: %w", err)
	}
	for _, sc := range scheds {
		if !schedule.InWindow(start, sc.StartDate, sc.EndDate) {
			continue
		}
		if schedule.ClockOverlaps(startClock, endClock, sc.StartTime, sc.EndTime) {
			return ErrActivityConflict
		}
	}

	return nil
}
