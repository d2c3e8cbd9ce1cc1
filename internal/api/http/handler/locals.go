package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/api/http/middleware"
)

func clinicIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	s, hasKey := c.Locals(middleware.LocalsClinicID).(string)
	if !hasKey || s == "" {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func actorFromLocals(c fiber.Ctx) (actor.Actor, bool) {
	return middleware.ActorFromFiber(c)
}
