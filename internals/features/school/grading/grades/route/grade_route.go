// file: internals/features/school/grading/grades/route/grade_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeCtl "emaktab_backend/internals/features/school/grading/grades/controller"
	authMiddleware "emaktab_backend/internals/middlewares/auth"
)

// GradeTeacherRoutes: input nilai oleh guru/admin.
func GradeTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := gradeCtl.NewGradeController(db)

	base := api.Group("", authMiddleware.RequireTeacherOrAdmin("mengelola nilai"))
	base.Get("/grades/eligibility", ctl.Eligibility)
	base.Post("/grades", ctl.Submit)
}

// GradeUserRoutes: read-only (siswa/wali).
func GradeUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := gradeCtl.NewGradeController(db)

	api.Get("/grades", ctl.List)
}
