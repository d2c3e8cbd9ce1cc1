// Package calendar builds merged day and week timelines for practitioners,
// patients and whole clinics, and derives free bookable slots from them.
package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entphysio "github.com/aruizdev/fisioclinic_backend/internal/repo/physiotherapist"
	"github.com/aruizdev/fisioclinic_backend/internal/schedule"
)

// WeekSchedule is seven consecutive day timelines starting at WeekStart.
type WeekSchedule struct {
	WeekStart string                  `json:"week_start"` // YYYY-MM-DD
	Days      []*schedule.DaySchedule `json:"days"`
}

// ClinicDay is the admin overview: every active practitioner's day side by side.
type ClinicDay struct {
	Date             string            `json:"date"`
	Physiotherapists []PractitionerDay `json:"physiotherapists"`
}

type PractitionerDay struct {
	PhysiotherapistID uuid.UUID             `json:"physiotherapist_id"`
	Name              string                `json:"name"`
	Schedule          *schedule.DaySchedule `json:"schedule"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	PractitionerDaySchedule(ctx context.Context, a actor.Actor, clinicID, physioID uuid.UUID, date time.Time) (*schedule.DaySchedule, error)
	PractitionerWeekSchedule(ctx context.Context, a actor.Actor, clinicID, physioID uuid.UUID, date time.Time) (*WeekSchedule, error)
	PatientDaySchedule(ctx context.Context, a actor.Actor, clinicID, patientID uuid.UUID, date time.Time) (*schedule.DaySchedule, error)
	PatientWeekSchedule(ctx context.Context, a actor.Actor, clinicID, patientID uuid.UUID, date time.Time) (*WeekSchedule, error)
	ClinicDaySchedule(ctx context.Context, a actor.Actor, clinicID uuid.UUID, date time.Time) (*ClinicDay, error)
	AvailableSlots(ctx context.Context, clinicID, physioID uuid.UUID, date time.Time, durationMinutes int) ([]schedule.Slot, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type calendarService struct {
	db     *repo.Client
	logger *slog.Logger
}

func New(db *repo.Client, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &calendarService{db: db, logger: logger}
}

func (s *calendarService) PractitionerDaySchedule(ctx context.Context, a actor.Actor, clinicID, physioID uuid.UUID, date time.Time) (*schedule.DaySchedule, error) {
	if !actor.CanViewPractitionerCalendar(a, physioID, clinicID) {
		return nil, ErrForbidden
	}
	if err := s.checkPhysio(ctx, clinicID, physioID); err != nil {
		return nil, err
	}
	return s.buildPractitionerDay(ctx, physioID, date)
}

func (s *calendarService) PractitionerWeekSchedule(ctx context.Context, a actor.Actor, clinicID, physioID uuid.UUID, date time.Time) (*WeekSchedule, error) {
	if !actor.CanViewPractitionerCalendar(a, physioID, clinicID) {
		return nil, ErrForbidden
	}
	if err := s.checkPhysio(ctx, clinicID, physioID); err != nil {
		return nil, err
	}

	return s.buildWeek(date, func(day time.Time) (*schedule.DaySchedule, error) {
		return s.buildPractitionerDay(ctx, physioID, day)
	})
}

func (s *calendarService) PatientDaySchedule(ctx context.Context, a actor.Actor, clinicID, patientID uuid.UUID, date time.Time) (*schedule.DaySchedule, error) {
	if !actor.CanViewPatientRecords(a, patientID, clinicID) {
		return nil, ErrForbidden
	}
	if err := s.checkPatient(ctx, clinicID, patientID); err != nil {
		return nil, err
	}
	return s.buildPatientDay(ctx, patientID, date)
}

func (s *calendarService) PatientWeekSchedule(ctx context.Context, a actor.Actor, clinicID, patientID uuid.UUID, date time.Time) (*WeekSchedule, error) {
	if !actor.CanViewPatientRecords(a, patientID, clinicID) {
		return nil, ErrForbidden
	}
	if err := s.checkPatient(ctx, clinicID, patientID); err != nil {
		return nil, err
	}

	return s.buildWeek(date, func(day time.Time) (*schedule.DaySchedule, error) {
		return s.buildPatientDay(ctx, patientID, day)
	})
}

func (s *calendarService) ClinicDaySchedule(ctx context.Context, a actor.Actor, clinicID uuid.UUID, date time.Time) (*ClinicDay, error) {
	if !(a.IsAdmin() && a.InClinic(clinicID)) {
		return nil, ErrForbidden
	}

	physios, err := s.db.Physiotherapist.Query().
		Where(
			entphysio.ClinicID(clinicID),
			entphysio.IsActive(true),
			entphysio.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list physiotherapists: %w", err)
	}

	overview := &ClinicDay{
		Date:             date.Format("2006-01-02"),
		Physiotherapists: make([]PractitionerDay, 0, len(physios)),
	}
	for _, p := range physios {
		day, err := s.buildPractitionerDay(ctx, p.ID, date)
		if err != nil {
			return nil, err
		}
		overview.Physiotherapists = append(overview.Physiotherapists, PractitionerDay{
			PhysiotherapistID: p.ID,
			Name:              s.physioName(ctx, p),
			Schedule:          day,
		})
	}
	return overview, nil
}

// AvailableSlots is callable by any authenticated clinic member: patients use
// it to pick a bookable time without seeing who occupies the rest of the day.
func (s *calendarService) AvailableSlots(ctx context.Context, clinicID, physioID uuid.UUID, date time.Time, durationMinutes int) ([]schedule.Slot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if err := s.checkPhysio(ctx, clinicID, physioID); err != nil {
		return nil, err
	}

	day, err := s.buildPractitionerDay(ctx, physioID, date)
	if err != nil {
		return nil, err
	}
	if !day.IsWorkingDay || day.WorkingHours == nil {
		return []schedule.Slot{}, nil
	}

	slots, err := schedule.FreeSlots(date, *day.WorkingHours, day.Blocks, durationMinutes)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []schedule.Slot{}
	}
	return slots, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *calendarService) buildWeek(date time.Time, buildDay func(time.Time) (*schedule.DaySchedule, error)) (*WeekSchedule, error) {
	// The week runs 7 consecutive days from the requested date, whatever
	// weekday that is.
	week := &WeekSchedule{
		WeekStart: date.Format("2006-01-02"),
		Days:      make([]*schedule.DaySchedule, 0, 7),
	}
	for i := 0; i < 7; i++ {
		day, err := buildDay(date.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		week.Days = append(week.Days, day)
	}
	return week, nil
}

func (s *calendarService) checkPhysio(ctx context.Context, clinicID, physioID uuid.UUID) error {
	ok, err := s.db.Physiotherapist.Query().
		Where(
			entphysio.ID(physioID),
			entphysio.ClinicID(clinicID),
			entphysio.DeletedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check physiotherapist: %w", err)
	}
	if !ok {
		return ErrPhysioNotFound
	}
	return nil
}
