// file: internals/features/school/classes/class_agendas/route/class_agenda_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agendaCtl "emaktab_backend/internals/features/school/classes/class_agendas/controller"
	authMiddleware "emaktab_backend/internals/middlewares/auth"
)

// ClassAgendaAdminRoutes: kelola slot mapel (admin).
func ClassAgendaAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := agendaCtl.NewClassAgendaController(db)

	base := api.Group("", authMiddleware.RequireAdmin("mengelola agenda mapel"))
	base.Post("/class-agendas", ctl.Create)
	base.Patch("/class-agendas/:id", ctl.Update)
	base.Delete("/class-agendas/:id", ctl.Delete)
}

// ClassAgendaUserRoutes: read-only.
func ClassAgendaUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := agendaCtl.NewClassAgendaController(db)

	api.Get("/class-agendas", ctl.List)
	api.Get("/class-agendas/:id", ctl.GetByID)
}
