package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/aruizdev/fisioclinic_backend/pkg/authorize"
)

const LocalsClinicID = "clinic_id"

// RequirePermission checks if the authenticated user has the given permission
// in the current clinic domain (set by ClinicScope) or sys domain.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		// AuthRequired stored the verified claims in the request context.
		subject, err := authorize.SubjectFromContext(c.Context())
		if err != nil {
			return fiber.ErrUnauthorized
		}

		var domain authorize.Domain
		if cid, ok := c.Locals(LocalsClinicID).(string); ok && cid != "" {
			domain = authorize.ClinicDomain(cid)
		} else {
			domain = authorize.DomainSys
		}

		err = auth.MustEnforce(c.Context(), subject, domain, resource, action)
		if errors.Is(err, authorize.ErrForbidden) && action != authorize.ActionManage {
			// manage subsumes the per-verb actions on a resource
			err = auth.MustEnforce(c.Context(), subject, domain, resource, authorize.ActionManage)
		}
		if err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
