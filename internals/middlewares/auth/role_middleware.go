// file: internals/middlewares/auth/role_middleware.go
package middleware

import (
	"github.com/gofiber/fiber/v2"

	"emaktab_backend/internals/constants"
	helperAuth "emaktab_backend/internals/helpers/auth"
)

// RequireTeacherOrAdmin: guard untuk endpoint tulis akademik
// (absensi, nilai, rapot). Role resolusi datang dari token.
func RequireTeacherOrAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.IsTeacher(c) || helperAuth.IsAdmin(c) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher(feature))
	}
}

// RequireAdmin: guard untuk endpoint administratif (term, section, agenda).
func RequireAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.IsAdmin(c) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
	}
}
