package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/service/clinic"
)

type ClinicHandler struct {
	svc clinic.Service
}

func NewClinicHandler(svc clinic.Service) *ClinicHandler {
	return &ClinicHandler{svc: svc}
}

func mapClinicError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, clinic.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinic.ErrSlugAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, clinic.ErrEmptyName):
		return badRequest(c, err.Error())
	case errors.Is(err, clinic.ErrForbidden):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /clinics
func (h *ClinicHandler) Create(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	var body struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Phone       string `json:"phone"`
		Address     string `json:"address"`
		City        string `json:"city"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cl, err := h.svc.Create(c.Context(), a, clinic.CreateRequest{
		Name:        body.Name,
		Slug:        body.Slug,
		Description: body.Description,
		Phone:       body.Phone,
		Address:     body.Address,
		City:        body.City,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return created(c, cl)
}

// GET /clinics
func (h *ClinicHandler) List(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Active  string `query:"active"`
	}
	_ = c.Bind().Query(&q)

	req := clinic.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Active != "" {
		if b, err := strconv.ParseBool(q.Active); err == nil {
			req.Active = &b
		}
	}

	result, err := h.svc.List(c.Context(), a, req)
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, fiber.Map{
		"clinics":     result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /clinics/:id
func (h *ClinicHandler) GetByID(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	cl, err := h.svc.GetByID(c.Context(), a, id)
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, cl)
}

// GET /clinics/slug/:slug
func (h *ClinicHandler) GetBySlug(c fiber.Ctx) error {
	cl, err := h.svc.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, cl)
}

// PATCH /clinics/:id
func (h *ClinicHandler) Update(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Phone       *string `json:"phone"`
		Address     *string `json:"address"`
		City        *string `json:"city"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cl, err := h.svc.Update(c.Context(), a, id, clinic.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Phone:       body.Phone,
		Address:     body.Address,
		City:        body.City,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, cl)
}

// DELETE /clinics/:id
func (h *ClinicHandler) Deactivate(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid clinic id")
	}

	if err := h.svc.Deactivate(c.Context(), a, id); err != nil {
		return mapClinicError(c, err)
	}
	return noContent(c)
}
