// file: internals/helpers/auth/token.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"emaktab_backend/internals/constants"
)

// Locals keys yang dihydrate oleh middleware AuthJWT.
const (
	LocUserID    = "user_id"
	LocTeacherID = "teacher_id"
	LocRole      = "role"
)

// GetUserIDFromToken mengambil user_id dari c.Locals.
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID)
}

// GetTeacherIDFromToken: id guru (kalau token milik guru), uuid.Nil kalau bukan.
func GetTeacherIDFromToken(c *fiber.Ctx) uuid.UUID {
	id, err := localUUID(c, LocTeacherID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}
	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID pada token tidak valid")
	}
}

func roleOf(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool   { return roleOf(c) == constants.RoleAdmin || IsOwner(c) }
func IsTeacher(c *fiber.Ctx) bool { return roleOf(c) == constants.RoleTeacher }
func IsOwner(c *fiber.Ctx) bool   { return roleOf(c) == constants.RoleOwner }
