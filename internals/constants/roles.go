package constants

import "fmt"

// Role pada token JWT
const (
	RoleUser    = "user" // siswa / wali
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
	RoleOwner   = "owner" // pengurus yayasan
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}
)
