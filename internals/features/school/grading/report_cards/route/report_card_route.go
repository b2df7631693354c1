// file: internals/features/school/grading/report_cards/route/report_card_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cardCtl "emaktab_backend/internals/features/school/grading/report_cards/controller"
	"emaktab_backend/internals/middlewares"
	authMiddleware "emaktab_backend/internals/middlewares/auth"
)

// ReportCardTeacherRoutes: generate rapor (guru/admin).
func ReportCardTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := cardCtl.NewReportCardController(db)

	base := api.Group("", authMiddleware.RequireTeacherOrAdmin("mengelola rapor"))
	base.Post("/report-cards/generate", ctl.Generate)
	// generate satu kelas sekaligus: rate limit khusus tulis massal
	base.Post("/report-cards/generate-class", middlewares.BulkWriteRateLimiter(), ctl.GenerateForClass)
}

// ReportCardUserRoutes: baca rapor (siswa/wali).
func ReportCardUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := cardCtl.NewReportCardController(db)

	api.Get("/report-cards", ctl.List)
	api.Get("/report-cards/:id", ctl.GetByID)
}
