package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aruizdev/fisioclinic_backend/internal/api/http/handler"
	"github.com/aruizdev/fisioclinic_backend/pkg/authorize"
)

func (r *Router) registerActivityRoutes(
	api fiber.Router,
	h *handler.ActivityHandler,
	authRequired, resolveActor, clinicScope fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	activities := api.Group("/activities", authRequired, resolveActor, clinicScope)

	activities.Get("/", requirePerm(authorize.ResourceActivity, authorize.ActionList), h.List)
	activities.Post("/", requirePerm(authorize.ResourceActivity, authorize.ActionCreate), h.Create)

	// Booking state changes address the booking directly; registered before
	// the /:id group so "bookings" is not captured as an activity id.
	activities.Delete("/schedules/:schedule_id", requirePerm(authorize.ResourceActivitySchedule, authorize.ActionDelete), h.RemoveSchedule)
	activities.Patch("/bookings/:booking_id/cancel", requirePerm(authorize.ResourceActivityBooking, authorize.ActionCancel), h.CancelBooking)
	activities.Patch("/bookings/:booking_id/status", requirePerm(authorize.ResourceActivityBooking, authorize.ActionUpdate), h.SetBookingStatus)

	act := activities.Group("/:id")
	act.Get("/", requirePerm(authorize.ResourceActivity, authorize.ActionRead), h.GetByID)
	act.Patch("/", requirePerm(authorize.ResourceActivity, authorize.ActionUpdate), h.Update)
	act.Delete("/", requirePerm(authorize.ResourceActivity, authorize.ActionDelete), h.Delete)

	act.Get("/schedules", requirePerm(authorize.ResourceActivitySchedule, authorize.ActionRead), h.ListSchedules)
	act.Post("/schedules", requirePerm(authorize.ResourceActivitySchedule, authorize.ActionCreate), h.AddSchedule)
	act.Get("/capacity", requirePerm(authorize.ResourceActivity, authorize.ActionRead), h.Capacity)

	act.Get("/bookings", requirePerm(authorize.ResourceActivityBooking, authorize.ActionList), h.ListBookings)
	act.Post("/bookings", requirePerm(authorize.ResourceActivityBooking, authorize.ActionBook), h.CreateBooking)
}
