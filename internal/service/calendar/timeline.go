package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entact "github.com/aruizdev/fisioclinic_backend/internal/repo/activity"
	entassign "github.com/aruizdev/fisioclinic_backend/internal/repo/activityassignment"
	entbooking "github.com/aruizdev/fisioclinic_backend/internal/repo/activitybooking"
	entsched "github.com/aruizdev/fisioclinic_backend/internal/repo/activityschedule"
	entappt "github.com/aruizdev/fisioclinic_backend/internal/repo/appointment"
	entavail "github.com/aruizdev/fisioclinic_backend/internal/repo/availability"
	entpatient "github.com/aruizdev/fisioclinic_backend/internal/repo/patient"
	entuser "github.com/aruizdev/fisioclinic_backend/internal/repo/user"
	"github.com/aruizdev/fisioclinic_backend/internal/schedule"
)

// buildPractitionerDay merges the physiotherapist's appointments and assigned
// group-activity occurrences into one ordered timeline. A day without an
// active availability entry is a non-working day with an empty timeline.
func (s *calendarService) buildPractitionerDay(ctx context.Context, physioID uuid.UUID, date time.Time) (*schedule.DaySchedule, error) {
	weekday := schedule.WeekdayOf(date)

	day := &schedule.DaySchedule{
		Date:      date.Format("2006-01-02"),
		DayOfWeek: weekday.String(),
		Blocks:    []schedule.TimeBlock{},
	}

	avail, err := s.db.Availability.Query().
		Where(
			entavail.PhysiotherapistID(physioID),
			entavail.DayOfWeekEQ(entavail.DayOfWeek(weekday.Value())),
			entavail.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return day, nil
		}
		return nil, fmt.Errorf("query availability: %w", err)
	}

	day.IsWorkingDay = true
	day.WorkingHours = &schedule.WorkingHours{Start: avail.StartTime, End: avail.EndTime}

	apptBlocks, err := s.appointmentBlocks(ctx, physioID, date)
	if err != nil {
		return nil, err
	}
	actBlocks, err := s.assignedActivityBlocks(ctx, physioID, date, weekday)
	if err != nil {
		return nil, err
	}

	day.Blocks = append(day.Blocks, apptBlocks...)
	day.Blocks = append(day.Blocks, actBlocks...)
	schedule.SortBlocks(day.Blocks)

	day.Summary = &schedule.Summary{
		TotalAppointments: len(apptBlocks),
		TotalActivities:   len(actBlocks),
		BusyTime:          schedule.FormatBusyTime(schedule.BusyMinutes(day.Blocks)),
	}
	return day, nil
}

func (s *calendarService) appointmentBlocks(ctx context.Context, physioID uuid.UUID, date time.Time) ([]schedule.TimeBlock, error) {
	dayStart, dayEnd := schedule.DayBounds(date)

	appts, err := s.db.Appointment.Query().
		Where(
			entappt.PhysiotherapistID(physioID),
			entappt.StatusNEQ(entappt.StatusCancelled),
			entappt.StartTimeGTE(dayStart),
			entappt.StartTimeLTE(dayEnd),
		).
		Order(entappt.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}

	names, err := s.patientNames(ctx, appts)
	if err != nil {
		return nil, err
	}

	blocks := make([]schedule.TimeBlock, 0, len(appts))
	for _, a := range appts {
		b := schedule.TimeBlock{
			ID:          a.ID.String(),
			Type:        schedule.BlockAppointment,
			StartTime:   a.StartTime,
			EndTime:     a.EndTime,
			Title:       "Appointment",
			Status:      string(a.Status),
			PatientName: names[a.PatientID],
		}
		if a.Notes != nil {
			b.Description = *a.Notes
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func (s *calendarService) assignedActivityBlocks(ctx context.Context, physioID uuid.UUID, date time.Time, weekday schedule.Weekday) ([]schedule.TimeBlock, error) {
	raw, err := s.db.ActivityAssignment.Query().
		Where(
			entassign.PhysiotherapistID(physioID),
			entassign.IsActive(true),
		).
		Select(entassign.FieldActivityID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		if id, err := uuid.Parse(r); err == nil {
			ids = append(ids, id)
		}
	}

	activities, err := s.db.Activity.Query().
		Where(
			entact.IDIn(ids...),
			entact.IsActive(true),
			entact.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	if len(activities) == 0 {
		return nil, nil
	}

	byID := make(map[uuid.UUID]*repo.Activity, len(activities))
	activeIDs := make([]uuid.UUID, 0, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
		activeIDs = append(activeIDs, a.ID)
	}

	scheds, err := s.db.ActivitySchedule.Query().
		Where(
			entsched.ActivityIDIn(activeIDs...),
			entsched.DayOfWeekEQ(entsched.DayOfWeek(weekday.Value())),
			entsched.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity schedules: %w", err)
	}

	var blocks []schedule.TimeBlock
	for _, sc := range scheds {
		act := byID[sc.ActivityID]
		if act == nil {
			continue
		}
		if !schedule.InWindow(date, sc.StartDate, sc.EndDate) {
			continue
		}

		count, err := s.participantCount(ctx, act.ID, date)
		if err != nil {
			return nil, err
		}

		b := schedule.TimeBlock{
			ID:                sc.ID.String(),
			Type:              schedule.BlockActivity,
			StartTime:         schedule.Combine(date, sc.StartTime),
			EndTime:           schedule.Combine(date, sc.EndTime),
			Title:             act.Name,
			ParticipantsCount: count,
		}
		if act.Description != nil {
			b.Description = *act.Description
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// buildPatientDay merges the patient's appointments and activity bookings. A
// booking whose schedule has been removed is silently dropped from the view;
// it still counts toward the activity total.
func (s *calendarService) buildPatientDay(ctx context.Context, patientID uuid.UUID, date time.Time) (*schedule.DaySchedule, error) {
	weekday := schedule.WeekdayOf(date)
	dayStart, dayEnd := schedule.DayBounds(date)

	day := &schedule.DaySchedule{
		Date:      date.Format("2006-01-02"),
		DayOfWeek: weekday.String(),
		Blocks:    []schedule.TimeBlock{},
	}

	appts, err := s.db.Appointment.Query().
		Where(
			entappt.PatientID(patientID),
			entappt.StatusNEQ(entappt.StatusCancelled),
			entappt.StartTimeGTE(dayStart),
			entappt.StartTimeLTE(dayEnd),
		).
		Order(entappt.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}

	for _, a := range appts {
		b := schedule.TimeBlock{
			ID:        a.ID.String(),
			Type:      schedule.BlockAppointment,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
			Title:     "Appointment",
			Status:    string(a.Status),
		}
		if name, err := s.physioNameByID(ctx, a.PhysiotherapistID); err == nil && name != "" {
			b.Description = name
		}
		day.Blocks = append(day.Blocks, b)
	}

	bookings, err := s.db.ActivityBooking.Query().
		Where(
			entbooking.PatientID(patientID),
			entbooking.StatusNEQ(entbooking.StatusCancelled),
			entbooking.SessionDateGTE(dayStart),
			entbooking.SessionDateLTE(dayEnd),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}

	for _, bk := range bookings {
		sc, err := s.db.ActivitySchedule.Query().
			Where(entsched.ID(bk.ScheduleID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				s.logger.Debug("dropping booking with missing schedule",
					"booking_id", bk.ID, "schedule_id", bk.ScheduleID)
				continue
			}
			return nil, fmt.Errorf("query schedule: %w", err)
		}

		act, err := s.db.Activity.Get(ctx, bk.ActivityID)
		if err != nil {
			if repo.IsNotFound(err) {
				s.logger.Debug("dropping booking with missing activity",
					"booking_id", bk.ID, "activity_id", bk.ActivityID)
				continue
			}
			return nil, fmt.Errorf("query activity: %w", err)
		}

		day.Blocks = append(day.Blocks, schedule.TimeBlock{
			ID:        bk.ID.String(),
			Type:      schedule.BlockActivity,
			StartTime: schedule.Combine(date, sc.StartTime),
			EndTime:   schedule.Combine(date, sc.EndTime),
			Title:     act.Name,
			Status:    string(bk.Status),
		})
	}

	schedule.SortBlocks(day.Blocks)

	day.Summary = &schedule.Summary{
		TotalAppointments: len(appts),
		TotalActivities:   len(bookings),
		BusyTime:          schedule.FormatBusyTime(schedule.BusyMinutes(day.Blocks)),
	}
	return day, nil
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

func (s *calendarService) participantCount(ctx context.Context, activityID uuid.UUID, date time.Time) (int, error) {
	dayStart, dayEnd := schedule.DayBounds(date)

	count, err := s.db.ActivityBooking.Query().
		Where(
			entbooking.ActivityID(activityID),
			entbooking.StatusNEQ(entbooking.StatusCancelled),
			entbooking.SessionDateGTE(dayStart),
			entbooking.SessionDateLTE(dayEnd),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return count, nil
}

func (s *calendarService) patientNames(ctx context.Context, appts []*repo.Appointment) (map[uuid.UUID]string, error) {
	if len(appts) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(appts))
	seen := make(map[uuid.UUID]struct{}, len(appts))
	for _, a := range appts {
		if _, ok := seen[a.PatientID]; ok {
			continue
		}
		seen[a.PatientID] = struct{}{}
		ids = append(ids, a.PatientID)
	}

	patients, err := s.db.Patient.Query().
		Where(entpatient.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query patients: %w", err)
	}

	names := make(map[uuid.UUID]string, len(patients))
	for _, p := range patients {
		names[p.ID] = p.FirstName + " " + p.LastName
	}
	return names, nil
}

func (s *calendarService) checkPatient(ctx context.Context, clinicID, patientID uuid.UUID) error {
	ok, err := s.db.Patient.Query().
		Where(
			entpatient.ID(patientID),
			entpatient.ClinicID(clinicID),
			entpatient.DeletedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return ErrPatientNotFound
	}
	return nil
}

func (s *calendarService) physioName(ctx context.Context, p *repo.Physiotherapist) string {
	u, err := s.db.User.Query().
		Where(entuser.ID(p.UserID)).
		Only(ctx)
	if err != nil {
		return ""
	}
	return u.FirstName + " " + u.LastName
}

func (s *calendarService) physioNameByID(ctx context.Context, physioID uuid.UUID) (string, error) {
	p, err := s.db.Physiotherapist.Get(ctx, physioID)
	if err != nil {
		return "", err
	}
	return s.physioName(ctx, p), nil
}
