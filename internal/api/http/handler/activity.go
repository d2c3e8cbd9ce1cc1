package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/service/activity"
)

type ActivityHandler struct {
	svc activity.Service
}

func NewActivityHandler(svc activity.Service) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

func mapActivityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, activity.ErrNotFound),
		errors.Is(err, activity.ErrScheduleNotFound),
		errors.Is(err, activity.ErrBookingNotFound),
		errors.Is(err, activity.ErrPatientNotFound),
		errors.Is(err, activity.ErrPhysioNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, activity.ErrForbidden):
		return forbidden(c)
	case errors.Is(err, activity.ErrInvalidClock),
		errors.Is(err, activity.ErrInvalidWeekday),
		errors.Is(err, activity.ErrInvalidTimeRange),
		errors.Is(err, activity.ErrInvalidDateRange),
		errors.Is(err, activity.ErrInvalidType),
		errors.Is(err, activity.ErrInvalidDifficulty),
		errors.Is(err, activity.ErrInvalidDuration),
		errors.Is(err, activity.ErrPastSession):
		return badRequest(c, err.Error())
	case errors.Is(err, activity.ErrWrongDay),
		errors.Is(err, activity.ErrOutsideWindow):
		return unprocessable(c, err.Error())
	case errors.Is(err, activity.ErrSessionFull),
		errors.Is(err, activity.ErrAlreadyBooked),
		errors.Is(err, activity.ErrAlreadyCancelled),
		errors.Is(err, activity.ErrAlreadyAttended),
		errors.Is(err, activity.ErrInvalidTransition):
		return conflict(c, err.Error())
	case errors.Is(err, activity.ErrBusy):
		return tooManyRequests(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Activities
// ---------------------------------------------------------------------------

// GET /activities
func (h *ActivityHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))

	activities, err := h.svc.List(c.Context(), clinicID, includeInactive)
	if err != nil {
		return mapActivityError(c, err)
	}
	return ok(c, activities)
}

// GET /activities/:id
func (h *ActivityHandler) GetByID(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid activity id")
	}

	act, err := h.svc.GetByID(c.Context(), clinicID, id)
	if err != nil {
		return mapActivityError(c, err)
	}
	return ok(c, act)
}

// POST /activities
func (h *ActivityHandler) Create(c fiber.Ctx) error {
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
		Name              string  `json:"name"`
		Description       *string `json:"description"`
		Type              string  `json:"type"`
		Difficulty        string  `json:"difficulty"`
		MaxParticipants   int     `json:"max_participants"`
		DurationMinutes   int     `json:"duration_minutes"`
		PriceCents        *int64  `json:"price_cents"`
		Location          *string `json:"location"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	physioID, err := uuid.Parse(body.PhysiotherapistID)
	if err != nil {
		return badRequest(c, "invalid physiotherapist_id")
	}

	act, err := h.svc.Create(c.Context(), a, clinicID, activity.CreateRequest{
		PhysiotherapistID: physioID,
		Name:              body.Name,
		Description:       body.Description,
		Type:              body.Type,
		Difficulty:        body.Difficulty,
		MaxParticipants:   body.MaxParticipants,
		DurationMinutes:   body.DurationMinutes,
		PriceCents:        body.PriceCents,
		Location:          body.Location,
	})
	if err != nil {
		return mapActivityError(c, err)
	}
	return created(c, act)
}

// PATCH /activities/:id
func (h *ActivityHandler) Update(c fiber.Ctx) error {
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
		return badRequest(c, "invalid activity id")
	}

	var body struct {
		PhysiotherapistID *string `json:"physiotherapist_id"`
		Name              *string `json:"name"`
		Description       *string `json:"description"`
		Type              *string `json:"type"`
		Difficulty        *string `json:"difficulty"`
		MaxParticipants   *int    `json:"max_participants"`
		DurationMinutes   *int    `json:"duration_minutes"`
		PriceCents        *int64  `json:"price_cents"`
		Location          *string `json:"location"`
		IsActive          *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	var physioID *uuid.UUID
	if body.PhysiotherapistID != nil {
		parsed, err := uuid.Parse(*body.PhysiotherapistID)
		if err != nil {
			return badRequest(c, "invalid physiotherapist_id")
		}
		physioID = &parsed
	}

	act, err := h.svc.Update(c.Context(), a, clinicID, id, activity.UpdateRequest{
		PhysiotherapistID: physioID,
		Name:              body.Name,
		Description:       body.Description,
		Type:              body.Type,
		Difficulty:        body.Difficulty,
		MaxParticipants:   body.MaxParticipants,
		DurationMinutes:   body.DurationMinutes,
		PriceCents:        body.PriceCents,
		Location:          body.Location,
		IsActive:          body.IsActive,
	})
	if err != nil {
		return mapActivityError(c, err)
	}
	return ok(c, act)
}

// DELETE /activities/:id
func (h *ActivityHandler) Delete(c fiber.Ctx) error {
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
		return badRequest(c, "invalid activity id")
	}

	if err := h.svc.Delete(c.Context(), a, clinicID, id); err != nil {
		return mapActivityError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Schedules
// ---------------------------------------------------------------------------

// GET /activities/:id/schedules
func (h *ActivityHandler) ListSchedules(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid activity id")
	}

	schedules, err := h.svc.ListSchedules(c.Context(), clinicID, id)
	if err != nil {
		return mapActivityError(c, err)
	}
	return ok(c, schedules)
}

// POST /activities/:id/schedules
func (h *ActivityHandler) AddSchedule(c fiber.Ctx) error {
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
		return badRequest(c, "invalid activity id")
	}

	var body struct {
		DayOfWeek string  `json:"day_of_week"`
		StartTime string  `json:"start_time"`
		EndTime   string  `json:"end_time"`
		StartDate *string `json:"start_date"`
		EndDate   *string `json:"end_date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := activity.AddScheduleRequest{
		DayOfWeek: body.DayOfWeek,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	}
	if body.StartDate != nil {
		d, err := parseDate(*body.StartDate)
		if err != nil {
			return badRequest(c, "start_date must be YYYY-MM-DD")
		}
		req.StartDate = &d
	}
	if body.EndDate != nil {
		d, err := parseDate(*body.EndDate)
		if err != nil {
			return badRequest(c, "end_date must be YYYY-MM-DD")
		}
		req.EndDate = &d
	}

	sched, err := h.svc.AddSchedule(c.Context(), a, clinicID, id, req)
	if err != nil {
		return mapActivityError(c, err)
	}
	return created(c, sched)
}

// DELETE /activities/schedules/:schedule_id
func (h *ActivityHandler) RemoveSchedule(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	scheduleID, err := uuid.Parse(c.Params("schedule_id"))
	if err != nil {
		return badRequest(c, "invalid schedule id")
	}

	if err := h.svc.RemoveSchedule(c.Context(), a, clinicID, scheduleID); err != nil {
		return mapActivityError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Bookings
// ---------------------------------------------------------------------------

// GET /activities/:id/capacity?date=YYYY-MM-DD
func (h *ActivityHandler) Capacity(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid activity id")
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	capy, err := h.svc.CountParticipants(c.Context(), clinicID, id, date)
	if err != nil {
		return mapActivityError(c, err)
	}
	return ok(c, capy)
}

// GET /activities/:id/bookings?date=YYYY-MM-DD
func (h *ActivityHandler) ListBookings(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid activity id")
	}

	var date *time.Time
	if s := c.Query("date"); s != "" {
		d, err := parseDate(s)
		if err != nil {
			return badRequest(c, "date must be YYYY-MM-DD")
		}
		date = &d
	}

	bookings, err := h.svc.ListBookings(c.Context(), clinicID, id, date)
	if err != nil {
		return mapActivityError(c, err)
	}
	return ok(c, bookings)
}

// POST /activities/:id/bookings
func (h *ActivityHandler) CreateBooking(c fiber.Ctx) error {
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
		return badRequest(c, "invalid activity id")
	}

	var body struct {
		ScheduleID  string  `json:"schedule_id"`
		PatientID   string  `json:"patient_id"`
		SessionDate string  `json:"session_date"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	scheduleID, err := uuid.Parse(body.ScheduleID)
	if err != nil {
		return badRequest(c, "invalid schedule_id")
	}
	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	sessionDate, err := parseDate(body.SessionDate)
	if err != nil {
		return badRequest(c, "session_date must be YYYY-MM-DD")
	}

	booking, err := h.svc.CreateBooking(c.Context(), a, clinicID, id, activity.BookRequest{
		ScheduleID:  scheduleID,
		PatientID:   patientID,
		SessionDate: sessionDate,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapActivityError(c, err)
	}
	return created(c, booking)
}

// PATCH /activities/bookings/:booking_id/cancel
func (h *ActivityHandler) CancelBooking(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	bookingID, err := uuid.Parse(c.Params("booking_id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().JSON(&body)

	if err := h.svc.CancelBooking(c.Context(), a, clinicID, bookingID, body.Reason); err != nil {
		return mapActivityError(c, err)
	}
	return noContent(c)
}

// PATCH /activities/bookings/:booking_id/status
func (h *ActivityHandler) SetBookingStatus(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	bookingID, err := uuid.Parse(c.Params("booking_id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SetBookingStatus(c.Context(), a, clinicID, bookingID, body.Status); err != nil {
		return mapActivityError(c, err)
	}
	return noContent(c)
}
