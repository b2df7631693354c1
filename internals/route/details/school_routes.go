// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	termRoute "emaktab_backend/internals/features/school/academics/academic_terms/route"
	attendanceRoute "emaktab_backend/internals/features/school/attendance/attendance_records/route"
	meetingRoute "emaktab_backend/internals/features/school/attendance/class_meetings/route"
	agendaRoute "emaktab_backend/internals/features/school/classes/class_agendas/route"
	sectionRoute "emaktab_backend/internals/features/school/classes/class_sections/route"
	dashboardRoute "emaktab_backend/internals/features/school/dashboard/route"
	gradeRoute "emaktab_backend/internals/features/school/grading/grades/route"
	reportCardRoute "emaktab_backend/internals/features/school/grading/report_cards/route"
)

// SchoolUserRoutes: akses baca siswa/wali (sudah lewat AuthJWT).
func SchoolUserRoutes(api fiber.Router, db *gorm.DB) {
	termRoute.AcademicTermUserRoutes(api, db)
	sectionRoute.ClassSectionUserRoutes(api, db)
	agendaRoute.ClassAgendaUserRoutes(api, db)
	meetingRoute.ClassMeetingUserRoutes(api, db)
	attendanceRoute.AttendanceUserRoutes(api, db)
	gradeRoute.GradeUserRoutes(api, db)
	reportCardRoute.ReportCardUserRoutes(api, db)
}

// SchoolAdminRoutes: kelola data oleh guru/admin (guard peran di
// masing-masing feature route).
func SchoolAdminRoutes(api fiber.Router, db *gorm.DB) {
	termRoute.AcademicTermAdminRoutes(api, db)
	agendaRoute.ClassAgendaAdminRoutes(api, db)
	meetingRoute.ClassMeetingTeacherRoutes(api, db)
	attendanceRoute.AttendanceTeacherRoutes(api, db)
	gradeRoute.GradeTeacherRoutes(api, db)
	reportCardRoute.ReportCardTeacherRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
}
