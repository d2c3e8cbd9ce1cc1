package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aruizdev/fisioclinic_backend/internal/api/http/handler"
	"github.com/aruizdev/fisioclinic_backend/pkg/authorize"
)

func (r *Router) registerCalendarRoutes(
	api fiber.Router,
	h *handler.CalendarHandler,
	authRequired, resolveActor, clinicScope fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	cal := api.Group("/calendar", authRequired, resolveActor, clinicScope,
		requirePerm(authorize.ResourceCalendar, authorize.ActionRead))

	cal.Get("/physiotherapists/:id/day", h.PractitionerDay)
	cal.Get("/physiotherapists/:id/week", h.PractitionerWeek)
	cal.Get("/physiotherapists/:id/slots", h.AvailableSlots)

	cal.Get("/patients/:id/day", h.PatientDay)
	cal.Get("/patients/:id/week", h.PatientWeek)

	cal.Get("/me/day", h.MyDay)
	cal.Get("/me/week", h.MyWeek)

	cal.Get("/clinic/day", h.ClinicDay)
}
