package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entbooking "github.com/aruizdev/fisioclinic_backend/internal/repo/activitybooking"
	entsched "github.com/aruizdev/fisioclinic_backend/internal/repo/activityschedule"
	entpatient "github.com/aruizdev/fisioclinic_backend/internal/repo/patient"
	"github.com/aruizdev/fisioclinic_backend/internal/schedule"
	"github.com/aruizdev/fisioclinic_backend/pkg/lock"
)

// SubjectBookingCreated is published with the booking ID as payload.
const SubjectBookingCreated = "fisio.booking.created"

// Capacity is the occupancy snapshot for one activity session day.
type Capacity struct {
	CurrentParticipants int  `json:"current_participants"`
	MaxParticipants     int  `json:"max_participants"`
	AvailableSlots      int  `json:"available_slots"`
	IsFull              bool `json:"is_full"`
}

type BookRequest struct {
	ScheduleID  uuid.UUID
	PatientID   uuid.UUID
	SessionDate time.Time
	Notes       *string
}

// Bookings is the booking half of the activity service.
type Bookings interface {
	CountParticipants(ctx context.Context, clinicID, activityID uuid.UUID, sessionDate time.Time) (*Capacity, error)
	ListBookings(ctx context.Context, clinicID, activityID uuid.UUID, sessionDate *time.Time) ([]*repo.ActivityBooking, error)
	CreateBooking(ctx context.Context, a actor.Actor, clinicID, activityID uuid.UUID, req BookRequest) (*repo.ActivityBooking, error)
	CancelBooking(ctx context.Context, a actor.Actor, clinicID, bookingID uuid.UUID, reason *string) error
	SetBookingStatus(ctx context.Context, a actor.Actor, clinicID, bookingID uuid.UUID, status string) error
}

func (s *activityService) CountParticipants(ctx context.Context, clinicID, activityID uuid.UUID, sessionDate time.Time) (*Capacity, error) {
	act, err := s.GetByID(ctx, clinicID, activityID)
	if err != nil {
		return nil, err
	}
	return s.countParticipants(ctx, act, sessionDate)
}

// countParticipants counts non-cancelled bookings for the activity on the
// session's calendar day. AvailableSlots can go negative if a race overbooked
// the session before the advisory lock existed.
func (s *activityService) countParticipants(ctx context.Context, act *repo.Activity, sessionDate time.Time) (*Capacity, error) {
	dayStart, dayEnd := schedule.DayBounds(sessionDate)

	current, err := s.db.ActivityBooking.Query().
		Where(
			entbooking.ActivityID(act.ID),
			entbooking.StatusNEQ(entbooking.StatusCancelled),
			entbooking.SessionDateGTE(dayStart),
			entbooking.SessionDateLTE(dayEnd),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return &Capacity{
		CurrentParticipants: current,
		MaxParticipants:     act.MaxParticipants,
		AvailableSlots:      act.MaxParticipants - current,
		IsFull:              current >= act.MaxParticipants,
	}, nil
}

func (s *activityService) ListBookings(ctx context.Context, clinicID, activityID uuid.UUID, sessionDate *time.Time) ([]*repo.ActivityBooking, error) {
	if _, err := s.GetByID(ctx, clinicID, activityID); err != nil {
		return nil, err
	}

	q := s.db.ActivityBooking.Query().
		Where(entbooking.ActivityID(activityID))

	if sessionDate != nil {
		dayStart, dayEnd := schedule.DayBounds(*sessionDate)
		q = q.Where(
			entbooking.SessionDateGTE(dayStart),
			entbooking.SessionDateLTE(dayEnd),
		)
	}

	bookings, err := q.Order(entbooking.BySessionDate()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *activityService) CreateBooking(ctx context.Context, a actor.Actor, clinicID, activityID uuid.UUID, req BookRequest) (*repo.ActivityBooking, error) {
	if !actor.CanBookForPatient(a, req.PatientID, clinicID) {
		return nil, ErrForbidden
	}

	act, err := s.GetByID(ctx, clinicID, activityID)
	if err != nil {
		return nil, err
	}
	if !act.IsActive {
		return nil, ErrNotFound
	}

	sched, err := s.db.ActivitySchedule.Query().
		Where(
			entsched.ID(req.ScheduleID),
			entsched.ActivityID(activityID),
			entsched.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	if schedule.WeekdayOf(req.SessionDate).Value() != string(sched.DayOfWeek) {
		return nil, ErrWrongDay
	}
	if !schedule.InWindow(req.SessionDate, sched.StartDate, sched.EndDate) {
		return nil, ErrOutsideWindow
	}

	// The session starts at the schedule's wall clock on the requested day.
	if schedule.Combine(req.SessionDate, sched.StartTime).Before(time.Now()) {
		return nil, ErrPastSession
	}

	ok, err := s.db.Patient.Query().
		Where(
			entpatient.ID(req.PatientID),
			entpatient.ClinicID(clinicID),
			entpatient.IsActive(true),
			entpatient.DeletedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return nil, ErrPatientNotFound
	}

	dayStart, dayEnd := schedule.DayBounds(req.SessionDate)

	var booking *repo.ActivityBooking
	err = s.locker.WithLock(ctx, lock.ActivityDayKey(activityID, req.SessionDate), func(ctx context.Context) error {
		occupancy, err := s.countParticipants(ctx, act, req.SessionDate)
		if err != nil {
			return err
		}
		if occupancy.IsFull {
			return ErrSessionFull
		}

		dup, err := s.db.ActivityBooking.Query().
			Where(
				entbooking.ActivityID(activityID),
				entbooking.PatientID(req.PatientID),
				entbooking.StatusNEQ(entbooking.StatusCancelled),
				entbooking.SessionDateGTE(dayStart),
				entbooking.SessionDateLTE(dayEnd),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check duplicate booking: %w", err)
		}
		if dup {
			return ErrAlreadyBooked
		}

		c := s.db.ActivityBooking.Create().
			SetActivityID(activityID).
			SetScheduleID(sched.ID).
			SetPatientID(req.PatientID).
			SetSessionDate(req.SessionDate).
			SetStatus(entbooking.StatusConfirmed)

		if req.Notes != nil {
			c = c.SetNillableNotes(req.Notes)
		}

		created, err := c.Save(ctx)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		booking = created
		return nil
	})
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, ErrBusy
		}
		return nil, err
	}

	s.auditor.Record(ctx, a, "booking.create", "activity_booking", booking.ID, map[string]any{
		"activity_id":  activityID,
		"patient_id":   req.PatientID,
		"session_date": req.SessionDate,
	})
	if s.nc != nil {
		_ = s.nc.Publish(SubjectBookingCreated, []byte(booking.ID.String()))
	}

	return booking, nil
}

func (s *activityService) CancelBooking(ctx context.Context, a actor.Actor, clinicID, bookingID uuid.UUID, reason *string) error {
	booking, err := s.getBooking(ctx, clinicID, bookingID)
	if err != nil {
		return err
	}

	if !a.OwnsPatient(booking.PatientID) && !(a.IsStaff() && a.InClinic(clinicID)) {
		return ErrForbidden
	}

	switch booking.Status {
	case entbooking.StatusCancelled:
		return ErrAlreadyCancelled
	case entbooking.StatusAttended:
		return ErrAlreadyAttended
	}

	upd := s.db.ActivityBooking.UpdateOne(booking).
		SetStatus(entbooking.StatusCancelled).
		SetCancelledAt(time.Now()).
		SetCancelledBy(a.UserID)
	if reason != nil {
		upd = upd.SetNillableCancellationReason(reason)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.auditor.Record(ctx, a, "booking.cancel", "activity_booking", booking.ID, map[string]any{
		"cancelled_by": a.UserID,
	})
	return nil
}

func (s *activityService) SetBookingStatus(ctx context.Context, a actor.Actor, clinicID, bookingID uuid.UUID, status string) error {
	if !actor.CanSetBookingAttendance(a, clinicID) {
		return ErrForbidden
	}

	booking, err := s.getBooking(ctx, clinicID, bookingID)
	if err != nil {
		return err
	}

	var target entbooking.Status
	switch status {
	case string(entbooking.StatusAttended):
		target = entbooking.StatusAttended
	case string(entbooking.StatusNoShow):
		target = entbooking.StatusNoShow
	default:
		return ErrInvalidTransition
	}

	// Attendance is only decidable for live bookings.
	switch booking.Status {
	case entbooking.StatusCancelled:
		return ErrAlreadyCancelled
	case entbooking.StatusAttended, entbooking.StatusNoShow:
		return ErrInvalidTransition
	}

	if err := s.db.ActivityBooking.UpdateOne(booking).
		SetStatus(target).
		Exec(ctx); err != nil {
		return fmt.Errorf("set booking status: %w", err)
	}

	s.auditor.Record(ctx, a, "booking.status", "activity_booking", booking.ID, map[string]any{
		"status": status,
	})
	return nil
}

// getBooking loads a booking and verifies, through its activity, that it
// belongs to clinicID.
func (s *activityService) getBooking(ctx context.Context, clinicID, bookingID uuid.UUID) (*repo.ActivityBooking, error) {
	booking, err := s.db.ActivityBooking.Get(ctx, bookingID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if _, err := s.GetByID(ctx, clinicID, booking.ActivityID); err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}
