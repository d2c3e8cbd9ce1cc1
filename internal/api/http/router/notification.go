package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aruizdev/fisioclinic_backend/internal/api/http/handler"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	h *handler.NotificationHandler,
	authRequired, resolveActor fiber.Handler,
) {
	// Notifications belong to the authenticated user, not to a clinic scope.
	notifs := api.Group("/notifications", authRequired, resolveActor)

	notifs.Get("/", h.List)
	notifs.Get("/unread-count", h.UnreadCount)
	notifs.Patch("/read-all", h.MarkAllRead)
	notifs.Patch("/:id/read", h.MarkRead)
}
