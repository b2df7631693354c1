// file: internals/features/school/attendance/class_meetings/route/class_meeting_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	meetingCtl "emaktab_backend/internals/features/school/attendance/class_meetings/controller"
	authMiddleware "emaktab_backend/internals/middlewares/auth"
)

// ClassMeetingTeacherRoutes: kelola pertemuan (guru/admin).
func ClassMeetingTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := meetingCtl.NewClassMeetingController(db)

	base := api.Group("", authMiddleware.RequireTeacherOrAdmin("mengelola pertemuan kelas"))
	base.Post("/class-meetings", ctl.Create)
	base.Patch("/class-meetings/:id", ctl.Update)
	base.Post("/class-meetings/:id/transition", ctl.Transition)
	base.Delete("/class-meetings/:id", ctl.Delete)
}

// ClassMeetingUserRoutes: read-only.
func ClassMeetingUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := meetingCtl.NewClassMeetingController(db)

	api.Get("/class-meetings", ctl.List)
	api.Get("/class-meetings/:id", ctl.GetByID)
}
