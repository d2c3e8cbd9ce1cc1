package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/service/physiotherapist"
)

type PhysiotherapistHandler struct {
	svc physiotherapist.Service
}

func NewPhysiotherapistHandler(svc physiotherapist.Service) *PhysiotherapistHandler {
	return &PhysiotherapistHandler{svc: svc}
}

func mapPhysioError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, physiotherapist.ErrNotFound),
		errors.Is(err, physiotherapist.ErrActivityNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, physiotherapist.ErrForbidden):
		return forbidden(c)
	case errors.Is(err, physiotherapist.ErrInvalidClock),
		errors.Is(err, physiotherapist.ErrInvalidTimeRange),
		errors.Is(err, physiotherapist.ErrInvalidWeekday):
		return badRequest(c, err.Error())
	case errors.Is(err, physiotherapist.ErrDayTaken),
		errors.Is(err, physiotherapist.ErrAlreadyAssigned):
		return conflict(c, err.Error())
	case errors.Is(err, physiotherapist.ErrNotAssigned):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /physiotherapists
func (h *PhysiotherapistHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))

	physios, err := h.svc.List(c.Context(), clinicID, includeInactive)
	if err != nil {
		return mapPhysioError(c, err)
	}
	return ok(c, physios)
}

// GET /physiotherapists/:id
func (h *PhysiotherapistHandler) GetByID(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid physiotherapist id")
	}

	p, err := h.svc.GetByID(c.Context(), clinicID, id)
	if err != nil {
		return mapPhysioError(c, err)
	}
	return ok(c, p)
}

// DELETE /physiotherapists/:id
func (h *PhysiotherapistHandler) Deactivate(c fiber.Ctx) error {
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
		return badRequest(c, "invalid physiotherapist id")
	}

	if err := h.svc.Deactivate(c.Context(), a, clinicID, id); err != nil {
		return mapPhysioError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Availability
// ---------------------------------------------------------------------------

// GET /physiotherapists/:id/availabilities
func (h *PhysiotherapistHandler) ListAvailability(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid physiotherapist id")
	}

	avails, err := h.svc.ListAvailability(c.Context(), clinicID, id)
	if err != nil {
		return mapPhysioError(c, err)
	}
	return ok(c, avails)
}

// PUT /physiotherapists/:id/availabilities
func (h *PhysiotherapistHandler) SetAvailability(c fiber.Ctx) error {
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
		return badRequest(c, "invalid physiotherapist id")
	}

	var body struct {
		DayOfWeek string `json:"day_of_week"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	av, err := h.svc.SetAvailability(c.Context(), a, clinicID, id, physiotherapist.SetAvailabilityRequest{
		DayOfWeek: body.DayOfWeek,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		return mapPhysioError(c, err)
	}
	return ok(c, av)
}

// DELETE /physiotherapists/:id/availabilities/:day
func (h *PhysiotherapistHandler) RemoveAvailability(c fiber.Ctx) error {
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
		return badRequest(c, "invalid physiotherapist id")
	}

	if err := h.svc.RemoveAvailability(c.Context(), a, clinicID, id, c.Params("day")); err != nil {
		return mapPhysioError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Activity assignments
// ---------------------------------------------------------------------------

// GET /physiotherapists/:id/activities
func (h *PhysiotherapistHandler) ListAssignments(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid physiotherapist id")
	}

	activities, err := h.svc.ListAssignments(c.Context(), clinicID, id)
	if err != nil {
		return mapPhysioError(c, err)
	}
	return ok(c, activities)
}

// POST /physiotherapists/:id/activities/:activity_id
func (h *PhysiotherapistHandler) AssignActivity(c fiber.Ctx) error {
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
		return badRequest(c, "invalid physiotherapist id")
	}
	activityID, err := uuid.Parse(c.Params("activity_id"))
	if err != nil {
		return badRequest(c, "invalid activity id")
	}

	if err := h.svc.AssignActivity(c.Context(), a, clinicID, id, activityID); err != nil {
		return mapPhysioError(c, err)
	}
	return created(c, fiber.Map{"assigned": true})
}

// DELETE /physiotherapists/:id/activities/:activity_id
func (h *PhysiotherapistHandler) UnassignActivity(c fiber.Ctx) error {
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
		return badRequest(c, "invalid physiotherapist id")
	}
	activityID, err := uuid.Parse(c.Params("activity_id"))
	if err != nil {
		return badRequest(c, "invalid activity id")
	}

	if err := h.svc.UnassignActivity(c.Context(), a, clinicID, id, activityID); err != nil {
		return mapPhysioError(c, err)
	}
	return noContent(c)
}
