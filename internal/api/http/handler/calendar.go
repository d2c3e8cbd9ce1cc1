package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/service/calendar"
)

type CalendarHandler struct {
	svc calendar.Service
}

func NewCalendarHandler(svc calendar.Service) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

func mapCalendarError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, calendar.ErrPhysioNotFound),
		errors.Is(err, calendar.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, calendar.ErrForbidden):
		return forbidden(c)
	case errors.Is(err, calendar.ErrInvalidDuration):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// dateQuery reads ?date=YYYY-MM-DD, defaulting to today.
func dateQuery(c fiber.Ctx) (time.Time, error) {
	s := c.Query("date")
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	return parseDate(s)
}

// GET /calendar/physiotherapists/:id/day
func (h *CalendarHandler) PractitionerDay(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	physioID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid physiotherapist id")
	}
	date, err := dateQuery(c)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	day, err := h.svc.PractitionerDaySchedule(c.Context(), a, clinicID, physioID, date)
	if err != nil {
		return mapCalendarError(c, err)
	}
	return ok(c, day)
}

// GET /calendar/physiotherapists/:id/week
func (h *CalendarHandler) PractitionerWeek(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	physioID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid physiotherapist id")
	}
	date, err := dateQuery(c)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	week, err := h.svc.PractitionerWeekSchedule(c.Context(), a, clinicID, physioID, date)
	if err != nil {
		return mapCalendarError(c, err)
	}
	return ok(c, week)
}

// GET /calendar/patients/:id/day
func (h *CalendarHandler) PatientDay(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}
	date, err := dateQuery(c)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	day, err := h.svc.PatientDaySchedule(c.Context(), a, clinicID, patientID, date)
	if err != nil {
		return mapCalendarError(c, err)
	}
	return ok(c, day)
}

// GET /calendar/patients/:id/week
func (h *CalendarHandler) PatientWeek(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}
	date, err := dateQuery(c)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	week, err := h.svc.PatientWeekSchedule(c.Context(), a, clinicID, patientID, date)
	if err != nil {
		return mapCalendarError(c, err)
	}
	return ok(c, week)
}

// GET /calendar/me/day and /calendar/me/week dispatch on the caller's kind so
// patients and practitioners see their own schedule without knowing their
// profile ID.
func (h *CalendarHandler) MyDay(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	date, err := dateQuery(c)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	switch a.Kind {
	case actor.KindPractitioner:
		day, err := h.svc.PractitionerDaySchedule(c.Context(), a, clinicID, a.PractitionerID, date)
		if err != nil {
			return mapCalendarError(c, err)
		}
		return ok(c, day)
	case actor.KindPatient:
		day, err := h.svc.PatientDaySchedule(c.Context(), a, clinicID, a.PatientID, date)
		if err != nil {
			return mapCalendarError(c, err)
		}
		return ok(c, day)
	default:
		return forbidden(c)
	}
}

func (h *CalendarHandler) MyWeek(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	date, err := dateQuery(c)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	switch a.Kind {
	case actor.KindPractitioner:
		week, err := h.svc.PractitionerWeekSchedule(c.Context(), a, clinicID, a.PractitionerID, date)
		if err != nil {
			return mapCalendarError(c, err)
		}
		return ok(c, week)
	case actor.KindPatient:
		week, err := h.svc.PatientWeekSchedule(c.Context(), a, clinicID, a.PatientID, date)
		if err != nil {
			return mapCalendarError(c, err)
		}
		return ok(c, week)
	default:
		return forbidden(c)
	}
}

// GET /calendar/clinic/day
func (h *CalendarHandler) ClinicDay(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}
	date, err := dateQuery(c)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	day, err := h.svc.ClinicDaySchedule(c.Context(), a, clinicID, date)
	if err != nil {
		return mapCalendarError(c, err)
	}
	return ok(c, day)
}

// GET /calendar/physiotherapists/:id/slots?date=YYYY-MM-DD&duration=60
func (h *CalendarHandler) AvailableSlots(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	physioID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid physiotherapist id")
	}
	date, err := dateQuery(c)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	var q struct {
		Duration int `query:"duration"`
	}
	_ = c.Bind().Query(&q)

	slots, err := h.svc.AvailableSlots(c.Context(), clinicID, physioID, date, q.Duration)
	if err != nil {
		return mapCalendarError(c, err)
	}
	return ok(c, slots)
}
