// file: internals/features/school/academics/academic_terms/route/academic_term_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	termCtl "emaktab_backend/internals/features/school/academics/academic_terms/controller"
	authMiddleware "emaktab_backend/internals/middlewares/auth"
)

// AcademicTermAdminRoutes: CRUD term (admin only).
func AcademicTermAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := termCtl.NewAcademicTermController(db)

	base := api.Group("", authMiddleware.RequireAdmin("mengelola term akademik"))
	base.Post("/academic-terms", ctl.Create)
	base.Patch("/academic-terms/:id", ctl.Update)
	base.Delete("/academic-terms/:id", ctl.Delete)
}

// AcademicTermUserRoutes: read-only untuk semua user login.
func AcademicTermUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := termCtl.NewAcademicTermController(db)

	api.Get("/academic-terms", ctl.List)
	api.Get("/academic-terms/active", ctl.GetActive)
	api.Get("/academic-terms/:id", ctl.GetByID)
}
