// file: internals/features/school/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardCtl "emaktab_backend/internals/features/school/dashboard/controller"
	authMiddleware "emaktab_backend/internals/middlewares/auth"
)

// DashboardRoutes: ringkasan read-only untuk guru/admin.
func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctl := dashboardCtl.NewDashboardController(db)

	base := api.Group("/dashboard", authMiddleware.RequireTeacherOrAdmin("melihat dashboard"))
	base.Get("/", ctl.Overview)
	base.Get("/class-summary", ctl.ClassSummary)
	base.Get("/recent-sessions", ctl.RecentSessions)
	base.Get("/needs-attention", ctl.NeedsAttention)
}
