// Package clinic manages tenant records. Clinics are created and listed by
// platform super admins; clinic admins can read and update their own clinic.
package clinic

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entclinic "github.com/aruizdev/fisioclinic_backend/internal/repo/clinic"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page    int
	PerPage int
	Active  *bool
}

type CreateRequest struct {
	Name        string
	Slug        string
	Description string
	Phone       string
	Address     string
	City        string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Phone       *string
	Address     *string
	City        *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, a actor.Actor, req CreateRequest) (*repo.Clinic, error)
	GetByID(ctx context.Context, a actor.Actor, clinicID uuid.UUID) (*repo.Clinic, error)
	GetBySlug(ctx context.Context, slug string) (*repo.Clinic, error)
	List(ctx context.Context, a actor.Actor, req ListRequest) (*PaginatedResult[*repo.Clinic], error)
	Update(ctx context.Context, a actor.Actor, clinicID uuid.UUID, req UpdateRequest) (*repo.Clinic, error)
	Deactivate(ctx context.Context, a actor.Actor, clinicID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clinicService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &clinicService{db: db}
}

func (s *clinicService) Create(ctx context.Context, a actor.Actor, req CreateRequest) (*repo.Clinic, error) {
	if a.Kind != actor.KindSuperAdmin {
		return nil, ErrForbidden
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrEmptyName
	}
	req.Slug = strings.TrimSpace(strings.ToLower(req.Slug))
	if req.Slug == "" {
		req.Slug = slugify(req.Name)
	}

	exists, err := s.db.Clinic.Query().Where(entclinic.Slug(req.Slug)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	c, err := s.db.Clinic.Create().
		SetName(req.Name).
		SetSlug(req.Slug).
		SetNillableDescription(nilIfEmpty(req.Description)).
		SetNillablePhone(nilIfEmpty(req.Phone)).
		SetNillableAddress(nilIfEmpty(req.Address)).
		SetNillableCity(nilIfEmpty(req.City)).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create clinic: %w", err)
	}
	return c, nil
}

func (s *clinicService) GetByID(ctx context.Context, a actor.Actor, clinicID uuid.UUID) (*repo.Clinic, error) {
	if !a.InClinic(clinicID) {
		return nil, ErrForbidden
	}
	return s.get(ctx, clinicID)
}

func (s *clinicService) GetBySlug(ctx context.Context, slug string) (*repo.Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.Slug(slug), entclinic.DeletedAtIsNil(), entclinic.IsActive(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get clinic by slug: %w", err)
	}
	return c, nil
}

func (s *clinicService) List(ctx context.Context, a actor.Actor, req ListRequest) (*PaginatedResult[*repo.Clinic], error) {
	if a.Kind != actor.KindSuperAdmin {
		return nil, ErrForbidden
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Clinic.Query().Where(entclinic.DeletedAtIsNil())
	if req.Active != nil {
		q = q.Where(entclinic.IsActive(*req.Active))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clinics: %w", err)
	}

	clinics, err := q.Order(entclinic.ByName()).Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Clinic]{
		Data:       clinics,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *clinicService) Update(ctx context.Context, a actor.Actor, clinicID uuid.UUID, req UpdateRequest) (*repo.Clinic, error) {
	if !a.IsAdmin() || !a.InClinic(clinicID) {
		return nil, ErrForbidden
	}

	c, err := s.get(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Clinic.UpdateOne(c)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		upd = upd.SetName(name)
	}
	if req.Description != nil {
		upd = upd.SetNillableDescription(req.Description)
	}
	if req.Phone != nil {
		upd = upd.SetNillablePhone(req.Phone)
	}
	if req.Address != nil {
		upd = upd.SetNillableAddress(req.Address)
	}
	if req.City != nil {
		upd = upd.SetNillableCity(req.City)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update clinic: %w", err)
	}
	return updated, nil
}

func (s *clinicService) Deactivate(ctx context.Context, a actor.Actor, clinicID uuid.UUID) error {
	if a.Kind != actor.KindSuperAdmin {
		return ErrForbidden
	}

	c, err := s.get(ctx, clinicID)
	if err != nil {
		return err
	}
	return s.db.Clinic.UpdateOne(c).SetIsActive(false).Exec(ctx)
}

func (s *clinicService) get(ctx context.Context, clinicID uuid.UUID) (*repo.Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.ID(clinicID), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == ' ' || r == '-' {
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
