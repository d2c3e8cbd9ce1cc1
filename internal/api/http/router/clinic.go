package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aruizdev/fisioclinic_backend/internal/api/http/handler"
)

func (r *Router) registerClinicRoutes(
	api fiber.Router,
	h *handler.ClinicHandler,
	authRequired, resolveActor fiber.Handler,
) {
	// Public: clinic lookup for booking front-ends.
	api.Get("/clinics/slug/:slug", h.GetBySlug)

	// Tenant management is actor-scoped, not clinic-header scoped: the
	// service itself decides who may see or change what.
	clinics := api.Group("/clinics", authRequired, resolveActor)
	clinics.Get("/", h.List)
	clinics.Post("/", h.Create)

	cl := clinics.Group("/:id")
	cl.Get("/", h.GetByID)
	cl.Patch("/", h.Update)
	cl.Delete("/", h.Deactivate)
}
