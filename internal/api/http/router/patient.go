package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aruizdev/fisioclinic_backend/internal/api/http/handler"
	"github.com/aruizdev/fisioclinic_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	h *handler.PatientHandler,
	authRequired, resolveActor, clinicScope fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired, resolveActor, clinicScope)

	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), h.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), h.Create)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.GetByID)
	p.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), h.Update)
	p.Delete("/", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), h.Deactivate)
}
