// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	authMiddleware "emaktab_backend/internals/middlewares/auth"
	routeDetails "emaktab_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	// Siswa/wali: baca jadwal, absensi sendiri, nilai, rapor.
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	routeDetails.SchoolUserRoutes(user, db)

	// ===================== ADMIN / GURU =====================
	// Guard peran per-route di masing-masing feature route.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	routeDetails.SchoolAdminRoutes(admin, db)
}
