// Package user provisions and resolves login identities. Creating a patient or
// practitioner account also creates the linked profile row in the same
// transaction, so an account never exists without its domain record.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entuser "github.com/aruizdev/fisioclinic_backend/internal/repo/user"
	"github.com/aruizdev/fisioclinic_backend/pkg/authorize"
	"github.com/aruizdev/fisioclinic_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Email     string
	Password  string // generated when empty
	FirstName string
	LastName  string
	Phone     string
	Role      string
	ClinicID  uuid.UUID
	// Specialty and LicenseNumber are only used when Role is practitioner.
	Specialty     string
	LicenseNumber string
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, a actor.Actor, req CreateRequest) (*repo.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	GetByEmail(ctx context.Context, email string) (*repo.User, error)
	List(ctx context.Context, a actor.Actor, clinicID uuid.UUID, role string) ([]*repo.User, error)
	Update(ctx context.Context, a actor.Actor, id uuid.UUID, req UpdateRequest) (*repo.User, error)
	Deactivate(ctx context.Context, a actor.Actor, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &userService{db: db, auth: auth}
}

func (s *userService) Create(ctx context.Context, a actor.Actor, req CreateRequest) (*repo.User, error) {
	role, err := actor.ParseKind(req.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	// Only super admins mint other super admins or cross-clinic accounts.
	switch {
	case role == actor.KindSuperAdmin:
		if a.Kind != actor.KindSuperAdmin {
			return nil, ErrForbidden
		}
	default:
		if !a.IsAdmin() || !a.InClinic(req.ClinicID) {
			return nil, ErrForbidden
		}
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, ErrInvalidEmail
	}

	exists, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	if req.Password == "" {
		req.Password = password.Generate(16)
	}
	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	c := tx.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetRole(entuser.Role(role)).
		SetIsActive(true)
	if req.Phone != "" {
		c = c.SetPhone(req.Phone)
	}
	if role != actor.KindSuperAdmin {
		c = c.SetClinicID(req.ClinicID)
	}

	u, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Linked profile row, same tx.
	switch role {
	case actor.KindPatient:
		_, err = tx.Patient.Create().
			SetClinicID(req.ClinicID).
			SetUserID(u.ID).
			SetFirstName(req.FirstName).
			SetLastName(req.LastName).
			SetIsActive(true).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create patient profile: %w", err)
		}
	case actor.KindPractitioner:
		pc := tx.Physiotherapist.Create().
			SetClinicID(req.ClinicID).
			SetUserID(u.ID).
			SetIsActive(true)
		if req.Specialty != "" {
			pc = pc.SetSpecialty(req.Specialty)
		}
		if req.LicenseNumber != "" {
			pc = pc.SetLicenseNumber(req.LicenseNumber)
		}
		if _, err = pc.Save(ctx); err != nil {
			return nil, fmt.Errorf("create physiotherapist profile: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.assignRoles(ctx, u.ID, role, req.ClinicID)
	return u, nil
}

// assignRoles is best-effort: a failed grant is repairable and must not roll
// back the committed user row.
func (s *userService) assignRoles(ctx context.Context, userID uuid.UUID, role actor.Kind, clinicID uuid.UUID) {
	if err := authorize.AssignUserSelfRole(ctx, s.auth, userID.String()); err != nil {
		slog.Warn("assign self role", "user_id", userID, "error", err)
	}
	if role == actor.KindSuperAdmin {
		if err := authorize.AssignSuperAdminRole(ctx, s.auth, userID.String()); err != nil {
			slog.Warn("assign super admin role", "user_id", userID, "error", err)
		}
		return
	}
	if rbacRole, ok := authorize.UserRoleToRBACRole[string(role)]; ok {
		if err := authorize.AssignClinicRole(ctx, s.auth, userID.String(), clinicID.String(), rbacRole); err != nil {
			slog.Warn("assign clinic role", "user_id", userID, "role", rbacRole, "error", err)
		}
	}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.Email(strings.TrimSpace(strings.ToLower(email))), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, a actor.Actor, clinicID uuid.UUID, role string) ([]*repo.User, error) {
	if !a.IsAdmin() || !a.InClinic(clinicID) {
		return nil, ErrForbidden
	}

	q := s.db.User.Query().
		Where(entuser.ClinicID(clinicID), entuser.DeletedAtIsNil())
	if role != "" {
		if _, err := actor.ParseKind(role); err != nil {
			return nil, ErrInvalidRole
		}
		q = q.Where(entuser.RoleEQ(entuser.Role(role)))
	}

	users, err := q.Order(entuser.ByLastName(), entuser.ByFirstName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, a actor.Actor, id uuid.UUID, req UpdateRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Users may edit themselves; admins may edit anyone in their clinic.
	self := a.UserID == u.ID
	admin := a.IsAdmin() && u.ClinicID != nil && a.InClinic(*u.ClinicID)
	if !self && !admin {
		return nil, ErrForbidden
	}

	upd := s.db.User.UpdateOne(u)
	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Phone != nil {
		upd = upd.SetNillablePhone(req.Phone)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (s *userService) Deactivate(ctx context.Context, a actor.Actor, id uuid.UUID) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.ClinicID == nil {
		// Super admin accounts are only managed by other super admins.
		if a.Kind != actor.KindSuperAdmin || a.UserID == u.ID {
			return ErrForbidden
		}
	} else if !a.IsAdmin() || !a.InClinic(*u.ClinicID) {
		return ErrForbidden
	}

	return s.db.User.UpdateOne(u).SetIsActive(false).Exec(ctx)
}
