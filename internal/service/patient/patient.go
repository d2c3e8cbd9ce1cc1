package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/audit"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entpatient "github.com/aruizdev/fisioclinic_backend/internal/repo/patient"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FirstName   string
	LastName    string
	Phone       *string
	DateOfBirth *time.Time
	UserID      *uuid.UUID
	Notes       *string
}

type UpdateRequest struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	DateOfBirth *time.Time
	Notes       *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, a actor.Actor, clinicID uuid.UUID, search string, page, perPage int) ([]*repo.Patient, error)
	GetByID(ctx context.Context, a actor.Actor, clinicID, patientID uuid.UUID) (*repo.Patient, error)
	Create(ctx context.Context, a actor.Actor, clinicID uuid.UUID, req CreateRequest) (*repo.Patient, error)
	Update(ctx context.Context, a actor.Actor, clinicID, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	Deactivate(ctx context.Context, a actor.Actor, clinicID, patientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db      *repo.Client
	auditor audit.Recorder
}

func New(db *repo.Client, auditor audit.Recorder) Service {
	return &patientService{db: db, auditor: auditor}
}

func (s *patientService) List(ctx context.Context, a actor.Actor, clinicID uuid.UUID, search string, page, perPage int) ([]*repo.Patient, error) {
	if !(a.IsStaff() && a.InClinic(clinicID)) {
		return nil, ErrForbidden
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.Patient.Query().
		Where(
			entpatient.ClinicID(clinicID),
			entpatient.DeletedAtIsNil(),
		)
	if search != "" {
		q = q.Where(
			entpatient.Or(
				entpatient.FirstNameContainsFold(search),
				entpatient.LastNameContainsFold(search),
			),
		)
	}

	patients, err := q.
		Order(entpatient.ByLastName(), entpatient.ByFirstName()).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *patientService) GetByID(ctx context.Context, a actor.Actor, clinicID, patientID uuid.UUID) (*repo.Patient, error) {
	if !actor.CanViewPatientRecords(a, patientID, clinicID) {
		return nil, ErrForbidden
	}

	p, err := s.db.Patient.Query().
		Where(
			entpatient.ID(patientID),
			entpatient.ClinicID(clinicID),
			entpatient.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Create(ctx context.Context, a actor.Actor, clinicID uuid.UUID, req CreateRequest) (*repo.Patient, error) {
	if !(a.IsStaff() && a.InClinic(clinicID)) {
		return nil, ErrForbidden
	}
	if req.FirstName == "" || req.LastName == "" {
		return nil, ErrEmptyName
	}

	c := s.db.Patient.Create().
		SetClinicID(clinicID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)

	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}
	if req.DateOfBirth != nil {
		c = c.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.UserID != nil {
		c = c.SetNillableUserID(req.UserID)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}

	s.auditor.Record(ctx, a, "patient.create", "patient", p.ID, nil)
	return p, nil
}

func (s *patientService) Update(ctx context.Context, a actor.Actor, clinicID, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, a, clinicID, patientID)
	if err != nil {
		return nil, err
	}

	// Patients may fix their own contact details; clinical notes are staff-only.
	if !(a.IsStaff() && a.InClinic(clinicID)) {
		if !a.OwnsPatient(patientID) {
			return nil, ErrForbidden
		}
		req.Notes = nil
	}

	upd := s.db.Patient.UpdateOne(p)
	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Phone != nil {
		upd = upd.SetNillablePhone(req.Phone)
	}
	if req.DateOfBirth != nil {
		upd = upd.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.Notes != nil {
		upd = upd.SetNillableNotes(req.Notes)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}

	s.auditor.Record(ctx, a, "patient.update", "patient", p.ID, nil)
	return updated, nil
}

func (s *patientService) Deactivate(ctx context.Context, a actor.Actor, clinicID, patientID uuid.UUID) error {
	if !(a.IsAdmin() && a.InClinic(clinicID)) {
		return ErrForbidden
	}

	p, err := s.db.Patient.Query().
		Where(
			entpatient.ID(patientID),
			entpatient.ClinicID(clinicID),
			entpatient.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get patient: %w", err)
	}

	if err := s.db.Patient.UpdateOne(p).
		SetIsActive(false).
		SetDeletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("deactivate patient: %w", err)
	}

	s.auditor.Record(ctx, a, "patient.deactivate", "patient", p.ID, nil)
	return nil
}
