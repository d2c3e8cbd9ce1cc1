package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entclinic "github.com/aruizdev/fisioclinic_backend/internal/repo/clinic"
	entpatient "github.com/aruizdev/fisioclinic_backend/internal/repo/patient"
	entphysio "github.com/aruizdev/fisioclinic_backend/internal/repo/physiotherapist"
	entuser "github.com/aruizdev/fisioclinic_backend/internal/repo/user"
	pasetotoken "github.com/aruizdev/fisioclinic_backend/pkg/paseto"
)

const LocalsActor = "actor"

// ResolveActor loads the authenticated user and its profile row and stores the
// resulting actor.Actor in Locals. Runs after AuthRequired.
func ResolveActor(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		u, err := db.User.Query().
			Where(entuser.ID(claims.UserID), entuser.DeletedAtIsNil(), entuser.IsActive(true)).
			Only(c.Context())
		if err != nil {
			if repo.IsNotFound(err) {
				return fiber.ErrUnauthorized
			}
			return err
		}

		var a actor.Actor
		switch u.Role {
		case entuser.RoleSuperAdmin:
			a = actor.SuperAdmin(u.ID)
		case entuser.RoleClinicAdmin:
			if u.ClinicID == nil {
				return fiber.ErrForbidden
			}
			a = actor.ClinicAdmin(u.ID, *u.ClinicID)
		case entuser.RolePractitioner:
			p, err := db.Physiotherapist.Query().
				Where(entphysio.UserID(u.ID), entphysio.DeletedAtIsNil()).
				Only(c.Context())
			if err != nil {
				if repo.IsNotFound(err) {
					return fiber.ErrForbidden
				}
				return err
			}
			a = actor.Practitioner(u.ID, p.ID, p.ClinicID)
		case entuser.RolePatient:
			p, err := db.Patient.Query().
				Where(entpatient.UserID(u.ID), entpatient.DeletedAtIsNil()).
				Only(c.Context())
			if err != nil {
				if repo.IsNotFound(err) {
					return fiber.ErrForbidden
				}
				return err
			}
			a = actor.Patient(u.ID, p.ID, p.ClinicID)
		default:
			return fiber.ErrForbidden
		}

		c.Locals(LocalsActor, a)
		c.SetContext(actor.WithActor(c.Context(), a))
		return c.Next()
	}
}

// ActorFromFiber retrieves the resolved actor stored by ResolveActor.
func ActorFromFiber(c fiber.Ctx) (actor.Actor, bool) {
	a, ok := c.Locals(LocalsActor).(actor.Actor)
	return a, ok
}

// ClinicScope reads the clinic ID from the X-Clinic-ID header, validates the
// clinic is active, and checks the resolved actor may act within it. On
// success it sets LocalsClinicID for RequirePermission and handlers.
func ClinicScope(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get("X-Clinic-ID")
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Clinic-ID header is required")
		}

		clinicID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid X-Clinic-ID value")
		}

		exists, err := db.Clinic.Query().
			Where(entclinic.ID(clinicID), entclinic.IsActive(true), entclinic.DeletedAtIsNil()).
			Exist(c.Context())
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}

		a, ok := ActorFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		if !a.InClinic(clinicID) {
			return fiber.ErrForbidden
		}

		c.Locals(LocalsClinicID, clinicID.String())
		return c.Next()
	}
}
