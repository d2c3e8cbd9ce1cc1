package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aruizdev/fisioclinic_backend/internal/api/http/handler"
	"github.com/aruizdev/fisioclinic_backend/pkg/authorize"
)

func (r *Router) registerPhysiotherapistRoutes(
	api fiber.Router,
	h *handler.PhysiotherapistHandler,
	authRequired, resolveActor, clinicScope fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	physios := api.Group("/physiotherapists", authRequired, resolveActor, clinicScope)

	physios.Get("/", requirePerm(authorize.ResourcePhysiotherapist, authorize.ActionList), h.List)

	p := physios.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePhysiotherapist, authorize.ActionRead), h.GetByID)
	p.Delete("/", requirePerm(authorize.ResourcePhysiotherapist, authorize.ActionDelete), h.Deactivate)

	// Weekly availability template.
	p.Get("/availabilities", requirePerm(authorize.ResourceAvailability, authorize.ActionRead), h.ListAvailability)
	p.Put("/availabilities", requirePerm(authorize.ResourceAvailability, authorize.ActionUpdate), h.SetAvailability)
	p.Delete("/availabilities/:day", requirePerm(authorize.ResourceAvailability, authorize.ActionDelete), h.RemoveAvailability)

	// Group activity assignments.
	p.Get("/activities", requirePerm(authorize.ResourcePhysiotherapist, authorize.ActionRead), h.ListAssignments)
	p.Post("/activities/:activity_id", requirePerm(authorize.ResourceActivity, authorize.ActionUpdate), h.AssignActivity)
	p.Delete("/activities/:activity_id", requirePerm(authorize.ResourceActivity, authorize.ActionUpdate), h.UnassignActivity)
}
