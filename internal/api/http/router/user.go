package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aruizdev/fisioclinic_backend/internal/api/http/handler"
	"github.com/aruizdev/fisioclinic_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired, resolveActor, clinicScope fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	api.Get("/users/me", authRequired, resolveActor, h.Me)

	users := api.Group("/users", authRequired, resolveActor, clinicScope)
	users.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), h.List)
	users.Post("/", requirePerm(authorize.ResourceUser, authorize.ActionCreate), h.Create)

	u := users.Group("/:id")
	u.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionRead), h.GetByID)
	u.Patch("/", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Update)
	u.Delete("/", requirePerm(authorize.ResourceUser, authorize.ActionDelete), h.Deactivate)
}
