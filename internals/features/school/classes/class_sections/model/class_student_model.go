// file: internals/features/school/classes/class_sections/model/class_student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassStudentStatus string

const (
	ClassStudentStatusActive   ClassStudentStatus = "active"
	ClassStudentStatusInactive ClassStudentStatus = "inactive"
	ClassStudentStatusMoved    ClassStudentStatus = "moved"
)

// ClassStudentModel: keanggotaan siswa pada satu section (roster).
// Unique: (class_student_section_id, class_student_student_id) — dijaga index DB.
type ClassStudentModel struct {
	ClassStudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_student_id" json:"class_student_id"`

	ClassStudentSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:class_student_section_id" json:"class_student_section_id"`
	ClassStudentStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:class_student_student_id" json:"class_student_student_id"`

	// Snapshot nama untuk tampilan (roster dimiliki modul eksternal).
	ClassStudentStudentName string `gorm:"type:text;not null;column:class_student_student_name" json:"class_student_student_name"`

	ClassStudentStatus   ClassStudentStatus `gorm:"type:text;not null;default:'active';column:class_student_status" json:"class_student_status"`
	ClassStudentJoinedAt time.Time          `gorm:"type:date;not null;column:class_student_joined_at" json:"class_student_joined_at"`
	ClassStudentLeftAt   *time.Time         `gorm:"type:date;column:class_student_left_at" json:"class_student_left_at,omitempty"`

	ClassStudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_student_created_at" json:"class_student_created_at"`
	ClassStudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_student_updated_at" json:"class_student_updated_at"`
	ClassStudentDeletedAt gorm.DeletedAt `gorm:"column:class_student_deleted_at;index" json:"class_student_deleted_at,omitempty"`
}

func (ClassStudentModel) TableName() string { return "class_students" }

// ActiveOn: siswa tercatat aktif pada tanggal tertentu.
func (m *ClassStudentModel) ActiveOn(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	joined := time.Date(m.ClassStudentJoinedAt.Year(), m.ClassStudentJoinedAt.Month(), m.ClassStudentJoinedAt.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(joined) {
		return false
	}
	if m.ClassStudentLeftAt != nil {
		left := time.Date(m.ClassStudentLeftAt.Year(), m.ClassStudentLeftAt.Month(), m.ClassStudentLeftAt.Day(), 0, 0, 0, 0, time.UTC)
		return !day.After(left)
	}
	return m.ClassStudentStatus == ClassStudentStatusActive
}
