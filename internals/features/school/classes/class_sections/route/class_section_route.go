// file: internals/features/school/classes/class_sections/route/class_section_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sectionCtl "emaktab_backend/internals/features/school/classes/class_sections/controller"
)

// ClassSectionUserRoutes: read-only (roster dimiliki modul kesiswaan).
func ClassSectionUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := sectionCtl.NewClassSectionController(db)

	api.Get("/class-sections", ctl.List)
	api.Get("/class-sections/:id", ctl.GetByID)
	api.Get("/class-sections/:id/students", ctl.ListStudents)
}
