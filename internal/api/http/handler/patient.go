package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrEmptyName):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrForbidden):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// parseDate accepts "YYYY-MM-DD".
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	patients, err := h.svc.List(c.Context(), a, clinicID, q.Search, q.Page, q.PerPage)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, patients)
}

// GET /patients/:id
func (h *PatientHandler) GetByID(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), a, clinicID, id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body struct {
		FirstName   string  `json:"first_name"`
		LastName    string  `json:"last_name"`
		Phone       *string `json:"phone"`
		DateOfBirth *string `json:"date_of_birth"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.CreateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Notes:     body.Notes,
	}
	if body.DateOfBirth != nil {
		dob, err := parseDate(*body.DateOfBirth)
		if err != nil {
			return badRequest(c, "date_of_birth must be YYYY-MM-DD")
		}
		req.DateOfBirth = &dob
	}

	p, err := h.svc.Create(c.Context(), a, clinicID, req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		Phone       *string `json:"phone"`
		DateOfBirth *string `json:"date_of_birth"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Notes:     body.Notes,
	}
	if body.DateOfBirth != nil {
		dob, err := parseDate(*body.DateOfBirth)
		if err != nil {
			return badRequest(c, "date_of_birth must be YYYY-MM-DD")
		}
		req.DateOfBirth = &dob
	}

	p, err := h.svc.Update(c.Context(), a, clinicID, id, req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Deactivate(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Deactivate(c.Context(), a, clinicID, id); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}
