package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/service/notification"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func mapNotificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /notifications
func (h *NotificationHandler) List(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	var q struct {
		UnreadOnly string `query:"unread_only"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)
	unreadOnly, _ := strconv.ParseBool(q.UnreadOnly)

	notifs, err := h.svc.List(c.Context(), a.UserID, unreadOnly, q.Page, q.PerPage)
	if err != nil {
		return mapNotificationError(c, err)
	}
	return ok(c, notifs)
}

// GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	n, err := h.svc.UnreadCount(c.Context(), a.UserID)
	if err != nil {
		return mapNotificationError(c, err)
	}
	return ok(c, fiber.Map{"unread": n})
}

// PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	if err := h.svc.MarkRead(c.Context(), id, a.UserID); err != nil {
		return mapNotificationError(c, err)
	}
	return noContent(c)
}

// PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	a, okActor := actorFromLocals(c)
	if !okActor {
		return unauthorized(c)
	}

	if err := h.svc.MarkAllRead(c.Context(), a.UserID); err != nil {
		return mapNotificationError(c, err)
	}
	return noContent(c)
}
