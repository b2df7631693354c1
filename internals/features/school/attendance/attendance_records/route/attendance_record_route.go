// file: internals/features/school/attendance/attendance_records/route/attendance_record_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtl "emaktab_backend/internals/features/school/attendance/attendance_records/controller"
	middlewares "emaktab_backend/internals/middlewares"
	authMiddleware "emaktab_backend/internals/middlewares/auth"
)

// AttendanceTeacherRoutes: tulis absensi (guru/admin).
func AttendanceTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceRecordController(db)

	base := api.Group("", authMiddleware.RequireTeacherOrAdmin("mengisi absensi"))
	base.Get("/class-meetings/:id/attendance", ctl.OpenAttendance)
	base.Post("/class-meetings/:id/attendance", middlewares.BulkWriteRateLimiter(), ctl.SaveAttendance)
}

// AttendanceUserRoutes: read-only.
func AttendanceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewAttendanceRecordController(db)

	api.Get("/attendance-records", ctl.List)
}
