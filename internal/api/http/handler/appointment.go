package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrPhysioNotFound),
		errors.Is(err, appointment.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrForbidden):
		return forbidden(c)
	case errors.Is(err, appointment.ErrInvalidTimeRange),
		errors.Is(err, appointment.ErrPastAppointment):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrNoAvailabilityForDay),
		errors.Is(err, appointment.ErrOutsideWorkingHours):
		return unprocessable(c, err.Error())
	case errors.Is(err, appointment.ErrAppointmentConflict),
		errors.Is(err, appointment.ErrActivityConflict),
		errors.Is(err, appointment.ErrAlreadyCompleted),
		errors.Is(err, appointment.ErrAlreadyCancelled),
		errors.Is(err, appointment.ErrInvalidTransition):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrBusy):
		return tooManyRequests(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		PhysiotherapistID string `query:"physiotherapist_id"`
		PatientID         string `query:"patient_id"`
		Status            string `query:"status"`
		From              string `query:"from"`
		To                string `query:"to"`
		Page              int    `query:"page"`
		PerPage           int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.PhysiotherapistID != "" {
		id, err := uuid.Parse(q.PhysiotherapistID)
		if err != nil {
			return badRequest(c, "invalid physiotherapist_id")
		}
		req.PhysiotherapistID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	// Patients only ever see their own appointments.
	if a, okActor := actorFromLocals(c); okActor && a.Kind == actor.KindPatient {
		req.PatientID = &a.PatientID
	}

	appts, err := h.svc.List(c.Context(), clinicID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), a, clinicID, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var body struct {
		PhysiotherapistID string  `json:"physiotherapist_id"`
		PatientID         string  `json:"patient_id"`
		StartTime         string  `json:"start_time"`
		EndTime           string  `json:"end_time"`
		Reason            *string `json:"reason"`
		Notes             *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	physioID, err := uuid.Parse(body.PhysiotherapistID)
	if err != nil {
		return badRequest(c, "invalid physiotherapist_id")
	}
	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	start, err := time.Parse(time.RFC3339, body.StartTime)
	if err != nil {
		return badRequest(c, "start_time must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, body.EndTime)
	if err != nil {
		return badRequest(c, "end_time must be RFC3339")
	}

	appt, err := h.svc.Create(c.Context(), a, clinicID, appointment.CreateRequest{
		PhysiotherapistID: physioID,
		PatientID:         patientID,
		StartTime:         start,
		EndTime:           end,
		Reason:            body.Reason,
		Notes:             body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, appt)
}

// PATCH /appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	start, err := time.Parse(time.RFC3339, body.StartTime)
	if err != nil {
		return badRequest(c, "start_time must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, body.EndTime)
	if err != nil {
		return badRequest(c, "end_time must be RFC3339")
	}

	appt, err := h.svc.Reschedule(c.Context(), a, clinicID, apptID, appointment.RescheduleRequest{
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// PATCH /appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c fiber.Ctx) error {
	return h.transition(c, h.svc.Confirm)
}

// PATCH /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	return h.transition(c, h.svc.Complete)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().JSON(&body)

	if err := h.svc.Cancel(c.Context(), a, clinicID, apptID, appointment.CancelRequest{Reason: body.Reason}); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}

func (h *AppointmentHandler) transition(c fiber.Ctx, fn func(ctx context.Context, a actor.Actor, clinicID, apptID uuid.UUID) error) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := fn(c.Context(), a, clinicID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}
