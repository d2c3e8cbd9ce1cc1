package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aruizdev/fisioclinic_backend/internal/api/http/handler"
	"github.com/aruizdev/fisioclinic_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	h *handler.AppointmentHandler,
	authRequired, resolveActor, clinicScope fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired, resolveActor, clinicScope)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), h.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionBook), h.Create)

	ap := appts.Group("/:id")
	ap.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), h.GetByID)
	ap.Patch("/reschedule", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.Reschedule)
	ap.Patch("/confirm", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.Confirm)
	ap.Patch("/complete", requirePerm(authorize.ResourceAppointment, authorize.ActionComplete), h.Complete)
	ap.Patch("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionCancel), h.Cancel)
}
