package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/audit"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entact "github.com/aruizdev/fisioclinic_backend/internal/repo/activity"
	entsched "github.com/aruizdev/fisioclinic_backend/internal/repo/activityschedule"
	entphysio "github.com/aruizdev/fisioclinic_backend/internal/repo/physiotherapist"
	"github.com/aruizdev/fisioclinic_backend/internal/schedule"
	"github.com/aruizdev/fisioclinic_backend/pkg/lock"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PhysiotherapistID uuid.UUID // the physiotherapist responsible for the activity
	Name              string
	Description       *string
	Type              string // activity type token, e.g. "pilates"
	Difficulty        string // "beginner", "intermediate" or "advanced"
	MaxParticipants   int
	DurationMinutes   int
	PriceCents        *int64
	Location          *string
}

type UpdateRequest struct {
	PhysiotherapistID *uuid.UUID
	Name              *string
	Description       *string
	Type              *string
	Difficulty        *string
	MaxParticipants   *int
	DurationMinutes   *int
	PriceCents        *int64
	Location          *string
	IsActive          *bool
}

type AddScheduleRequest struct {
	DayOfWeek string // API weekday token or DB enum value
	StartTime string // "HH:MM"
	EndTime   string
	StartDate *time.Time // optional validity window, inclusive on both ends
	EndDate   *time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, clinicID uuid.UUID, includeInactive bool) ([]*repo.Activity, error)
	GetByID(ctx context.Context, clinicID, activityID uuid.UUID) (*repo.Activity, error)
	Create(ctx context.Context, a actor.Actor, clinicID uuid.UUID, req CreateRequest) (*repo.Activity, error)
	Update(ctx context.Context, a actor.Actor, clinicID, activityID uuid.UUID, req UpdateRequest) (*repo.Activity, error)
	Delete(ctx context.Context, a actor.Actor, clinicID, activityID uuid.UUID) error

	ListSchedules(ctx context.Context, clinicID, activityID uuid.UUID) ([]*repo.ActivitySchedule, error)
	AddSchedule(ctx context.Context, a actor.Actor, clinicID, activityID uuid.UUID, req AddScheduleRequest) (*repo.ActivitySchedule, error)
	RemoveSchedule(ctx context.Context, a actor.Actor, clinicID, scheduleID uuid.UUID) error

	Bookings
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type activityService struct {
	db      *repo.Client
	locker  lock.Locker
	auditor audit.Recorder
	nc      *nats.Conn
}

func New(db *repo.Client, locker lock.Locker, auditor audit.Recorder, nc *nats.Conn) Service {
	return &activityService{db: db, locker: locker, auditor: auditor, nc: nc}
}

func (s *activityService) List(ctx context.Context, clinicID uuid.UUID, includeInactive bool) ([]*repo.Activity, error) {
	q := s.db.Activity.Query().
		Where(
			entact.ClinicID(clinicID),
			entact.DeletedAtIsNil(),
		)
	if !includeInactive {
		q = q.Where(entact.IsActive(true))
	}

	acts, err := q.Order(entact.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return acts, nil
}

func (s *activityService) GetByID(ctx context.Context, clinicID, activityID uuid.UUID) (*repo.Activity, error) {
	act, err := s.db.Activity.Query().
		Where(
			entact.ID(activityID),
			entact.ClinicID(clinicID),
			entact.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return act, nil
}

func (s *activityService) Create(ctx context.Context, a actor.Actor, clinicID uuid.UUID, req CreateRequest) (*repo.Activity, error) {
	if !actor.CanManageActivities(a, clinicID) {
		return nil, ErrForbidden
	}

	typ, err := parseActivityType(req.Type)
	if err != nil {
		return nil, err
	}
	diff, err := parseDifficulty(req.Difficulty)
	if err != nil {
		return nil, err
	}
	if req.DurationMinutes < 15 || req.DurationMinutes > 240 {
		return nil, ErrInvalidDuration
	}
	if err := s.checkPhysio(ctx, clinicID, req.PhysiotherapistID); err != nil {
		return nil, err
	}

	c := s.db.Activity.Create().
		SetClinicID(clinicID).
		SetPhysiotherapistID(req.PhysiotherapistID).
		SetName(req.Name).
		SetType(typ).
		SetDifficulty(diff).
		SetMaxParticipants(req.MaxParticipants).
		SetDurationMinutes(req.DurationMinutes)

	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.PriceCents != nil {
		c = c.SetNillablePriceCents(req.PriceCents)
	}
	if req.Location != nil {
		c = c.SetNillableLocation(req.Location)
	}

	act, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.auditor.Record(ctx, a, "activity.create", "activity", act.ID, map[string]any{
		"name":               act.Name,
		"physiotherapist_id": act.PhysiotherapistID,
		"type":               string(act.Type),
		"max_participants":   act.MaxParticipants,
	})
	return act, nil
}

func (s *activityService) Update(ctx context.Context, a actor.Actor, clinicID, activityID uuid.UUID, req UpdateRequest) (*repo.Activity, error) {
	if !actor.CanManageActivities(a, clinicID) {
		return nil, ErrForbidden
	}

	act, err := s.GetByID(ctx, clinicID, activityID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Activity.UpdateOne(act)
	if req.PhysiotherapistID != nil {
		if err := s.checkPhysio(ctx, clinicID, *req.PhysiotherapistID); err != nil {
			return nil, err
		}
		upd = upd.SetPhysiotherapistID(*req.PhysiotherapistID)
	}
	if req.Name != nil {
		upd = upd.SetName(*req.Name)
	}
	if req.Description != nil {
		upd = upd.SetNillableDescription(req.Description)
	}
	if req.Type != nil {
		typ, err := parseActivityType(*req.Type)
		if err != nil {
			return nil, err
		}
		upd = upd.SetType(typ)
	}
	if req.Difficulty != nil {
		diff, err := parseDifficulty(*req.Difficulty)
		if err != nil {
			return nil, err
		}
		upd = upd.SetDifficulty(diff)
	}
	if req.MaxParticipants != nil {
		upd = upd.SetMaxParticipants(*req.MaxParticipants)
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 15 || *req.DurationMinutes > 240 {
			return nil, ErrInvalidDuration
		}
		upd = upd.SetDurationMinutes(*req.DurationMinutes)
	}
	if req.PriceCents != nil {
		upd = upd.SetNillablePriceCents(req.PriceCents)
	}
	if req.Location != nil {
		upd = upd.SetNillableLocation(req.Location)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	s.auditor.Record(ctx, a, "activity.update", "activity", act.ID, nil)
	return updated, nil
}

func (s *activityService) Delete(ctx context.Context, a actor.Actor, clinicID, activityID uuid.UUID) error {
	if !actor.CanManageActivities(a, clinicID) {
		return ErrForbidden
	}

	act, err := s.GetByID(ctx, clinicID, activityID)
	if err != nil {
		return err
	}

	// Soft delete; future occurrences stop appearing but history survives.
	if err := s.db.Activity.UpdateOne(act).
		SetIsActive(false).
		SetDeletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	s.auditor.Record(ctx, a, "activity.delete", "activity", act.ID, nil)
	return nil
}

// ---------------------------------------------------------------------------
// Schedules
// ---------------------------------------------------------------------------

func (s *activityService) ListSchedules(ctx context.Context, clinicID, activityID uuid.UUID) ([]*repo.ActivitySchedule, error) {
	if _, err := s.GetByID(ctx, clinicID, activityID); err != nil {
		return nil, err
	}

	scheds, err := s.db.ActivitySchedule.Query().
		Where(
			entsched.ActivityID(activityID),
			entsched.IsActive(true),
		).
		Order(entsched.ByDayOfWeek(), entsched.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return scheds, nil
}

func (s *activityService) AddSchedule(ctx context.Context, a actor.Actor, clinicID, activityID uuid.UUID, req AddScheduleRequest) (*repo.ActivitySchedule, error) {
	if !actor.CanManageActivities(a, clinicID) {
		return nil, ErrForbidden
	}
	if _, err := s.GetByID(ctx, clinicID, activityID); err != nil {
		return nil, err
	}

	day, err := validateScheduleRequest(req)
	if err != nil {
		return nil, err
	}

	c := s.db.ActivitySchedule.Create().
		SetActivityID(activityID).
		SetDayOfWeek(entsched.DayOfWeek(day.Value())).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime)

	if req.StartDate != nil {
		c = c.SetNillableStartDate(req.StartDate)
	}
	if req.EndDate != nil {
		c = c.SetNillableEndDate(req.EndDate)
	}

	sched, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("add schedule: %w", err)
	}

	s.auditor.Record(ctx, a, "activity.schedule.add", "activity_schedule", sched.ID, map[string]any{
		"activity_id": activityID,
		"day_of_week": day.String(),
	})
	return sched, nil
}

func (s *activityService) RemoveSchedule(ctx context.Context, a actor.Actor, clinicID, scheduleID uuid.UUID) error {
	if !actor.CanManageActivities(a, clinicID) {
		return ErrForbidden
	}

	sched, err := s.db.ActivitySchedule.Query().
		Where(entsched.ID(scheduleID), entsched.IsActive(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrScheduleNotFound
		}
		return fmt.Errorf("get schedule: %w", err)
	}

	// Clinic scoping goes through the owning activity.
	if _, err := s.GetByID(ctx, clinicID, sched.ActivityID); err != nil {
		return ErrScheduleNotFound
	}

	// Soft removal keeps historical bookings resolvable.
	if err := s.db.ActivitySchedule.UpdateOne(sched).
		SetIsActive(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("remove schedule: %w", err)
	}

	s.auditor.Record(ctx, a, "activity.schedule.remove", "activity_schedule", sched.ID, nil)
	return nil
}

// validateScheduleRequest checks the weekday token, the HH:MM range and the
// optional validity window of a new recurring schedule.
func validateScheduleRequest(req AddScheduleRequest) (schedule.Weekday, error) {
	day, err := schedule.ParseWeekday(req.DayOfWeek)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidWeekday, req.DayOfWeek)
	}
	if !schedule.ValidClock(req.StartTime) || !schedule.ValidClock(req.EndTime) {
		return 0, ErrInvalidClock
	}
	if req.StartTime >= req.EndTime {
		return 0, ErrInvalidTimeRange
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return 0, ErrInvalidDateRange
	}
	return day, nil
}

func parseActivityType(s string) (entact.Type, error) {
	typ := entact.Type(strings.ToLower(s))
	switch typ {
	case entact.TypePilates, entact.TypeYoga, entact.TypeRehabilitation,
		entact.TypeFunctionalTraining, entact.TypeOther:
		return typ, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidType, s)
}

func parseDifficulty(s string) (entact.Difficulty, error) {
	diff := entact.Difficulty(strings.ToLower(s))
	switch diff {
	case entact.DifficultyBeginner, entact.DifficultyIntermediate, entact.DifficultyAdvanced:
		return diff, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidDifficulty, s)
}

// checkPhysio verifies the owning physiotherapist exists and is active in the
// clinic.
func (s *activityService) checkPhysio(ctx context.Context, clinicID, physioID uuid.UUID) error {
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
	return nil
}
