package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidEmail), errors.Is(err, user.ErrInvalidRole):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrForbidden):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// GET /users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), a.UserID)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// POST /users
func (h *UserHandler) Create(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body struct {
		Email         string `json:"email"`
		Password      string `json:"password"`
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		Phone         string `json:"phone"`
		Role          string `json:"role"`
		Specialty     string `json:"specialty"`
		LicenseNumber string `json:"license_number"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Create(c.Context(), a, user.CreateRequest{
		Email:         body.Email,
		Password:      body.Password,
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		Phone:         body.Phone,
		Role:          body.Role,
		ClinicID:      clinicID,
		Specialty:     body.Specialty,
		LicenseNumber: body.LicenseNumber,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return created(c, u)
}

// GET /users
func (h *UserHandler) List(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	users, err := h.svc.List(c.Context(), a, clinicID, c.Query("role"))
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, users)
}

// GET /users/:id
func (h *UserHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// PATCH /users/:id
func (h *UserHandler) Update(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Phone     *string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Update(c.Context(), a, id, user.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// DELETE /users/:id
func (h *UserHandler) Deactivate(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.Deactivate(c.Context(), a, id); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}
