// file: internals/middlewares/recovery_middleware.go
package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic handler dan mengubahnya jadi 500,
// supaya satu request rusak tidak menjatuhkan server absensi/penilaian.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("🛑 panic di %s %s: %v\n%s", c.Method(), c.Path(), e, debug.Stack())
		},
	})
}
