package physiotherapist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/audit"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entact "github.com/aruizdev/fisioclinic_backend/internal/repo/activity"
	entassign "github.com/aruizdev/fisioclinic_backend/internal/repo/activityassignment"
	entavail "github.com/aruizdev/fisioclinic_backend/internal/repo/availability"
	entphysio "github.com/aruizdev/fisioclinic_backend/internal/repo/physiotherapist"
	"github.com/aruizdev/fisioclinic_backend/internal/schedule"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SetAvailabilityRequest struct {
	DayOfWeek string // API weekday token or DB enum value
	StartTime string // "HH:MM"
	EndTime   string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, clinicID uuid.UUID, includeInactive bool) ([]*repo.Physiotherapist, error)
	GetByID(ctx context.Context, clinicID, physioID uuid.UUID) (*repo.Physiotherapist, error)
	Deactivate(ctx context.Context, a actor.Actor, clinicID, physioID uuid.UUID) error

	ListAvailability(ctx context.Context, clinicID, physioID uuid.UUID) ([]*repo.Availability, error)
	SetAvailability(ctx context.Context, a actor.Actor, clinicID, physioID uuid.UUID, req SetAvailabilityRequest) (*repo.Availability, error)
	RemoveAvailability(ctx context.Context, a actor.Actor, clinicID, physioID uuid.UUID, dayOfWeek string) error

	ListAssignments(ctx context.Context, clinicID, physioID uuid.UUID) ([]*repo.Activity, error)
	AssignActivity(ctx context.Context, a actor.Actor, clinicID, physioID, activityID uuid.UUID) error
	UnassignActivity(ctx context.Context, a actor.Actor, clinicID, physioID, activityID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type physioService struct {
	db      *repo.Client
	auditor audit.Recorder
}

func New(db *repo.Client, auditor audit.Recorder) Service {
	return &physioService{db: db, auditor: auditor}
}

func (s *physioService) List(ctx context.Context, clinicID uuid.UUID, includeInactive bool) ([]*repo.Physiotherapist, error) {
	q := s.db.Physiotherapist.Query().
		Where(
			entphysio.ClinicID(clinicID),
			entphysio.DeletedAtIsNil(),
		)
	if !includeInactive {
		q = q.Where(entphysio.IsActive(true))
	}

	physios, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list physiotherapists: %w", err)
	}
	return physios, nil
}

func (s *physioService) GetByID(ctx context.Context, clinicID, physioID uuid.UUID) (*repo.Physiotherapist, error) {
	physio, err := s.db.Physiotherapist.Query().
		Where(
			entphysio.ID(physioID),
			entphysio.ClinicID(clinicID),
			entphysio.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get physiotherapist: %w", err)
	}
	return physio, nil
}

func (s *physioService) Deactivate(ctx context.Context, a actor.Actor, clinicID, physioID uuid.UUID) error {
	if !(a.IsAdmin() && a.InClinic(clinicID)) {
		return ErrForbidden
	}

	physio, err := s.GetByID(ctx, clinicID, physioID)
	if err != nil {
		return err
	}

	if err := s.db.Physiotherapist.UpdateOne(physio).
		SetIsActive(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("deactivate physiotherapist: %w", err)
	}

	// The weekly template goes dormant with the practitioner.
	if err := s.db.Availability.Update().
		Where(entavail.PhysiotherapistID(physioID)).
		SetIsActive(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("deactivate availability: %w", err)
	}

	s.auditor.Record(ctx, a, "physiotherapist.deactivate", "physiotherapist", physio.ID, nil)
	return nil
}

// ---------------------------------------------------------------------------
// Availability template
// ---------------------------------------------------------------------------

func (s *physioService) ListAvailability(ctx context.Context, clinicID, physioID uuid.UUID) ([]*repo.Availability, error) {
	if _, err := s.GetByID(ctx, clinicID, physioID); err != nil {
		return nil, err
	}

	avails, err := s.db.Availability.Query().
		Where(
			entavail.PhysiotherapistID(physioID),
			entavail.IsActive(true),
		).
		Order(entavail.ByDayOfWeek()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return avails, nil
}

// SetAvailability creates or replaces the entry for one weekday.
func (s *physioService) SetAvailability(ctx context.Context, a actor.Actor, clinicID, physioID uuid.UUID, req SetAvailabilityRequest) (*repo.Availability, error) {
	if !actor.CanManageAvailability(a, physioID, clinicID) {
		return nil, ErrForbidden
	}
	if _, err := s.GetByID(ctx, clinicID, physioID); err != nil {
		return nil, err
	}

	day, err := schedule.ParseWeekday(req.DayOfWeek)
	if err != nil {
		return nil, ErrInvalidWeekday
	}
	if !schedule.ValidClock(req.StartTime) || !schedule.ValidClock(req.EndTime) {
		return nil, ErrInvalidClock
	}
	if req.StartTime >= req.EndTime {
		return nil, ErrInvalidTimeRange
	}

	existing, err := s.db.Availability.Query().
		Where(
			entavail.PhysiotherapistID(physioID),
			entavail.DayOfWeekEQ(entavail.DayOfWeek(day.Value())),
		).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	var avail *repo.Availability
	if existing != nil {
		avail, err = s.db.Availability.UpdateOne(existing).
			SetStartTime(req.StartTime).
			SetEndTime(req.EndTime).
			SetIsActive(true).
			Save(ctx)
	} else {
		avail, err = s.db.Availability.Create().
			SetClinicID(clinicID).
			SetPhysiotherapistID(physioID).
			SetDayOfWeek(entavail.DayOfWeek(day.Value())).
			SetStartTime(req.StartTime).
			SetEndTime(req.EndTime).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("set availability: %w", err)
	}

	s.auditor.Record(ctx, a, "availability.set", "availability", avail.ID, map[string]any{
		"physiotherapist_id": physioID,
		"day_of_week":        day.String(),
		"start_time":         req.StartTime,
		"end_time":           req.EndTime,
	})
	return avail, nil
}

func (s *physioService) RemoveAvailability(ctx context.Context, a actor.Actor, clinicID, physioID uuid.UUID, dayOfWeek string) error {
	if !actor.CanManageAvailability(a, physioID, clinicID) {
		return ErrForbidden
	}
	if _, err := s.GetByID(ctx, clinicID, physioID); err != nil {
		return err
	}

	day, err := schedule.ParseWeekday(dayOfWeek)
	if err != nil {
		return ErrInvalidWeekday
	}

	avail, err := s.db.Availability.Query().
		Where(
			entavail.PhysiotherapistID(physioID),
			entavail.DayOfWeekEQ(entavail.DayOfWeek(day.Value())),
			entavail.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil // nothing to remove
		}
		return fmt.Errorf("get availability: %w", err)
	}

	if err := s.db.Availability.UpdateOne(avail).
		SetIsActive(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("remove availability: %w", err)
	}

	s.auditor.Record(ctx, a, "availability.remove", "availability", avail.ID, map[string]any{
		"day_of_week": day.String(),
	})
	return nil
}

// ---------------------------------------------------------------------------
// Activity assignments
// ---------------------------------------------------------------------------

func (s *physioService) ListAssignments(ctx context.Context, clinicID, physioID uuid.UUID) ([]*repo.Activity, error) {
	if _, err := s.GetByID(ctx, clinicID, physioID); err != nil {
		return nil, err
	}

	ids, err := s.db.ActivityAssignment.Query().
		Where(
			entassign.PhysiotherapistID(physioID),
			entassign.IsActive(true),
		).
		Select(entassign.FieldActivityID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	if len(ids) == 0 {
		return []*repo.Activity{}, nil
	}

	activityIDs := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		activityIDs = append(activityIDs, id)
	}

	acts, err := s.db.Activity.Query().
		Where(
			entact.IDIn(activityIDs...),
			entact.ClinicID(clinicID),
			entact.DeletedAtIsNil(),
		).
		Order(entact.ByName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assigned activities: %w", err)
	}
	return acts, nil
}

func (s *physioService) AssignActivity(ctx context.Context, a actor.Actor, clinicID, physioID, activityID uuid.UUID) error {
	if !actor.CanManageActivities(a, clinicID) {
		return ErrForbidden
	}
	if _, err := s.GetByID(ctx, clinicID, physioID); err != nil {
		return err
	}

	ok, err := s.db.Activity.Query().
		Where(
			entact.ID(activityID),
			entact.ClinicID(clinicID),
			entact.DeletedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check activity: %w", err)
	}
	if !ok {
		return ErrActivityNotFound
	}

	existing, err := s.db.ActivityAssignment.Query().
		Where(
			entassign.ActivityID(activityID),
			entassign.PhysiotherapistID(physioID),
		).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return fmt.Errorf("check assignment: %w", err)
	}

	var assignmentID uuid.UUID
	switch {
	case existing != nil && existing.IsActive:
		return ErrAlreadyAssigned
	case existing != nil:
		// Inactive row from an earlier unassign; reactivate it.
		if err := s.db.ActivityAssignment.UpdateOne(existing).
			SetIsActive(true).
			SetAssignedAt(time.Now()).
			SetAssignedBy(a.UserID).
			Exec(ctx); err != nil {
			return fmt.Errorf("reassign activity: %w", err)
		}
		assignmentID = existing.ID
	default:
		assignment, err := s.db.ActivityAssignment.Create().
			SetActivityID(activityID).
			SetPhysiotherapistID(physioID).
			SetAssignedAt(time.Now()).
			SetAssignedBy(a.UserID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("assign activity: %w", err)
		}
		assignmentID = assignment.ID
	}

	s.auditor.Record(ctx, a, "physiotherapist.assign_activity", "activity_assignment", assignmentID, map[string]any{
		"activity_id":        activityID,
		"physiotherapist_id": physioID,
	})
	return nil
}

func (s *physioService) UnassignActivity(ctx context.Context, a actor.Actor, clinicID, physioID, activityID uuid.UUID) error {
	if !actor.CanManageActivities(a, clinicID) {
		return ErrForbidden
	}
	if _, err := s.GetByID(ctx, clinicID, physioID); err != nil {
		return err
	}

	// Deactivate rather than delete so the assignment history survives.
	n, err := s.db.ActivityAssignment.Update().
		Where(
			entassign.ActivityID(activityID),
			entassign.PhysiotherapistID(physioID),
			entassign.IsActive(true),
		).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("unassign activity: %w", err)
	}
	if n == 0 {
		return ErrNotAssigned
	}

	s.auditor.Record(ctx, a, "physiotherapist.unassign_activity", "activity_assignment", activityID, map[string]any{
		"physiotherapist_id": physioID,
	})
	return nil
}
