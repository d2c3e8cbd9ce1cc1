package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/audit"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entappt "github.com/aruizdev/fisioclinic_backend/internal/repo/appointment"
	entpatient "github.com/aruizdev/fisioclinic_backend/internal/repo/patient"
	entphysio "github.com/aruizdev/fisioclinic_backend/internal/repo/physiotherapist"
	"github.com/aruizdev/fisioclinic_backend/pkg/lock"
)

// NATS subjects published on appointment lifecycle changes. Payload is the
// appointment ID.
const (
	SubjectCreated   = "fisio.appointment.created"
	SubjectCancelled = "fisio.appointment.cancelled"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	PhysiotherapistID *uuid.UUID
	PatientID         *uuid.UUID
	Status            *string
	From              *time.Time
	To                *time.Time
	Page              int
	PerPage           int
}

type CreateRequest struct {
	PhysiotherapistID uuid.UUID
	PatientID         uuid.UUID
	StartTime         time.Time
	EndTime           time.Time
	Reason            *string // reason for the visit
	Notes             *string
}

type RescheduleRequest struct {
	StartTime time.Time
	EndTime   time.Time
}

type CancelRequest struct {
	Reason *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)
	GetByID(ctx context.Context, a actor.Actor, clinicID, apptID uuid.UUID) (*repo.Appointment, error)
	Create(ctx context.Context, a actor.Actor, clinicID uuid.UUID, req CreateRequest) (*repo.Appointment, error)
	Reschedule(ctx context.Context, a actor.Actor, clinicID, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error)
	Confirm(ctx context.Context, a actor.Actor, clinicID, apptID uuid.UUID) error
	Complete(ctx context.Context, a actor.Actor, clinicID, apptID uuid.UUID) error
	Cancel(ctx context.Context, a actor.Actor, clinicID, apptID uuid.UUID, req CancelRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db      *repo.Client
	locker  lock.Locker
	auditor audit.Recorder
	nc      *nats.Conn
}

func New(db *repo.Client, locker lock.Locker, auditor audit.Recorder, nc *nats.Conn) Service {
	return &appointmentService{db: db, locker: locker, auditor: auditor, nc: nc}
}

func (s *appointmentService) List(ctx context.Context, clinicID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query().
		Where(entappt.ClinicID(clinicID))

	if req.PhysiotherapistID != nil {
		q = q.Where(entappt.PhysiotherapistID(*req.PhysiotherapistID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.StartTimeLT(*req.To))
	}

	q = q.Order(entappt.ByStartTime(sql.OrderDesc()))

	appts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) GetByID(ctx context.Context, a actor.Actor, clinicID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.get(ctx, clinicID, apptID)
	if err != nil {
		return nil, err
	}
	if !actor.CanViewPatientRecords(a, appt.PatientID, clinicID) &&
		!a.OwnsPractitioner(appt.PhysiotherapistID) {
		return nil, ErrForbidden
	}
	return appt, nil
}

func (s *appointmentService) Create(ctx context.Context, a actor.Actor, clinicID uuid.UUID, req CreateRequest) (*repo.Appointment, error) {
	if !actor.CanBookForPatient(a, req.PatientID, clinicID) {
		return nil, ErrForbidden
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	if req.StartTime.Before(time.Now()) {
		return nil, ErrPastAppointment
	}

	if err := s.checkParticipants(ctx, clinicID, req.PhysiotherapistID, req.PatientID); err != nil {
		return nil, err
	}

	// Patient-initiated appointments need staff confirmation; staff-created
	// ones are confirmed immediately.
	status := entappt.StatusConfirmed
	if a.Kind == actor.KindPatient {
		status = entappt.StatusPending
	}

	var appt *repo.Appointment
	err := s.locker.WithLock(ctx, lock.PractitionerDayKey(req.PhysiotherapistID, req.StartTime), func(ctx context.Context) error {
		if err := s.validateAvailability(ctx, req.PhysiotherapistID, req.StartTime, req.EndTime, nil); err != nil {
			return err
		}

		c := s.db.Appointment.Create().
			SetClinicID(clinicID).
			SetPhysiotherapistID(req.PhysiotherapistID).
			SetPatientID(req.PatientID).
			SetStartTime(req.StartTime).
			SetEndTime(req.EndTime).
			SetStatus(status)

		if req.Reason != nil {
			c = c.SetNillableReason(req.Reason)
		}
		if req.Notes != nil {
			c = c.SetNillableNotes(req.Notes)
		}

		created, err := c.Save(ctx)
		if err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		appt = created
		return nil
	})
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, ErrBusy
		}
		return nil, err
	}

	s.auditor.Record(ctx, a, "appointment.create", "appointment", appt.ID, map[string]any{
		"physiotherapist_id": appt.PhysiotherapistID,
		"patient_id":         appt.PatientID,
		"start_time":         appt.StartTime,
	})
	s.publish(SubjectCreated, appt.ID)

	return appt, nil
}

func (s *appointmentService) Reschedule(ctx context.Context, a actor.Actor, clinicID, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error) {
	appt, err := s.get(ctx, clinicID, apptID)
	if err != nil {
		return nil, err
	}
	if !actor.CanBookForPatient(a, appt.PatientID, clinicID) &&
		!a.OwnsPractitioner(appt.PhysiotherapistID) {
		return nil, ErrForbidden
	}

	switch appt.Status {
	case entappt.StatusCancelled:
		return nil, ErrAlreadyCancelled
	case entappt.StatusCompleted:
		return nil, ErrAlreadyCompleted
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	if req.StartTime.Before(time.Now()) {
		return nil, ErrPastAppointment
	}

	var updated *repo.Appointment
	err = s.locker.WithLock(ctx, lock.PractitionerDayKey(appt.PhysiotherapistID, req.StartTime), func(ctx context.Context) error {
		if err := s.validateAvailability(ctx, appt.PhysiotherapistID, req.StartTime, req.EndTime, &appt.ID); err != nil {
			return err
		}

		u, err := s.db.Appointment.UpdateOne(appt).
			SetStartTime(req.StartTime).
			SetEndTime(req.EndTime).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("reschedule appointment: %w", err)
		}
		updated = u
		return nil
	})
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, ErrBusy
		}
		return nil, err
	}

	s.auditor.Record(ctx, a, "appointment.reschedule", "appointment", appt.ID, map[string]any{
		"start_time": req.StartTime,
		"end_time":   req.EndTime,
	})

	return updated, nil
}

func (s *appointmentService) Confirm(ctx context.Context, a actor.Actor, clinicID, apptID uuid.UUID) error {
	appt, err := s.get(ctx, clinicID, apptID)
	if err != nil {
		return err
	}
	if !a.IsStaff() || !a.InClinic(clinicID) {
		return ErrForbidden
	}

	switch appt.Status {
	case entappt.StatusCancelled:
		return ErrAlreadyCancelled
	case entappt.StatusCompleted:
		return ErrAlreadyCompleted
	case entappt.StatusConfirmed:
		return nil // idempotent
	}

	if err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusConfirmed).
		Exec(ctx); err != nil {
		return fmt.Errorf("confirm appointment: %w", err)
	}

	s.auditor.Record(ctx, a, "appointment.confirm", "appointment", appt.ID, nil)
	return nil
}

func (s *appointmentService) Complete(ctx context.Context, a actor.Actor, clinicID, apptID uuid.UUID) error {
	appt, err := s.get(ctx, clinicID, apptID)
	if err != nil {
		return err
	}
	if !actor.CanCompleteAppointment(a, appt.PhysiotherapistID) {
		return ErrForbidden
	}

	switch appt.Status {
	case entappt.StatusCancelled:
		return ErrAlreadyCancelled
	case entappt.StatusCompleted:
		return ErrAlreadyCompleted
	case entappt.StatusPending:
		return ErrInvalidTransition
	}

	if err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("complete appointment: %w", err)
	}

	s.auditor.Record(ctx, a, "appointment.complete", "appointment", appt.ID, nil)
	return nil
}

func (s *appointmentService) Cancel(ctx context.Context, a actor.Actor, clinicID, apptID uuid.UUID, req CancelRequest) error {
	appt, err := s.get(ctx, clinicID, apptID)
	if err != nil {
		return err
	}
	if !actor.CanCancelAppointment(a, appt.PatientID, appt.PhysiotherapistID, clinicID) {
		return ErrForbidden
	}

	switch appt.Status {
	case entappt.StatusCancelled:
		return ErrAlreadyCancelled
	case entappt.StatusCompleted:
		return ErrAlreadyCompleted
	}

	upd := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(time.Now()).
		SetCancelledBy(a.UserID)

	if req.Reason != nil {
		upd = upd.SetCancellationReason(*req.Reason)
	}

	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	s.auditor.Record(ctx, a, "appointment.cancel", "appointment", appt.ID, map[string]any{
		"cancelled_by": a.UserID,
	})
	s.publish(SubjectCancelled, appt.ID)

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) get(ctx context.Context, clinicID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID), entappt.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

// checkParticipants verifies that both parties exist in this clinic and are
// active.
func (s *appointmentService) checkParticipants(ctx context.Context, clinicID, physioID, patientID uuid.UUID) error {
	ok, err := s.db.Physiotherapist.Query().
		Where(
			entphysio.ID(physioID),
			entphysio.ClinicID(clinicID),
			entphysio.IsActive(true),
			entphysio.DeletedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check physiotherapist: %w", err)
	}
	if !ok {
		return ErrPhysioNotFound
	}

	ok, err = s.db.Patient.Query().
		Where(
			entpatient.ID(patientID),
			entpatient.ClinicID(clinicID),
			entpatient.IsActive(true),
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

func (s *appointmentService) publish(subject string, id uuid.UUID) {
	if s.nc != nil {
		_ = s.nc.Publish(subject, []byte(id.String()))
	}
}
