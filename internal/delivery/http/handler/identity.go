package handler

import (
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/domain/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// callerIdentity pulls the authenticated user out of the request locals set
// by the auth middleware.
func callerIdentity(c fiber.Ctx) (uuid.UUID, user.Role, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, "", false
	}
	role, ok := c.Locals(middleware.CtxRoleKey).(user.Role)
	if !ok {
		return uuid.Nil, "", false
	}
	return id, role, true
}
