// file: internals/features/school/grading/grades/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type GradePassStatus string

const (
	GradePassStatusPassed    GradePassStatus = "passed"
	GradePassStatusFailed    GradePassStatus = "failed"
	GradePassStatusNotGraded GradePassStatus = "not_graded" // belum dinilai ≠ gagal
)

/* =========================================
   Model: grades
   Unik per (student, section, term, agenda).
   Letter/description/pass status SELALU diturunkan dari score —
   tidak pernah diedit terpisah.
========================================= */

type GradeModel struct {
	// PK
	GradeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_id" json:"grade_id"`

	// Kunci logis
	GradeStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:grade_student_id" json:"grade_student_id"`
	GradeSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:grade_section_id" json:"grade_section_id"`
	GradeTermID    uuid.UUID `gorm:"type:uuid;not null;index;column:grade_term_id" json:"grade_term_id"`
	GradeAgendaID  uuid.UUID `gorm:"type:uuid;not null;index;column:grade_agenda_id" json:"grade_agenda_id"`

	// Skor 0–100; NULL = belum dinilai
	GradeScore *int `gorm:"column:grade_score" json:"grade_score,omitempty"`

	// Derivasi (recompute tiap tulis)
	GradeLetter      *string         `gorm:"type:varchar(1);column:grade_letter" json:"grade_letter,omitempty"`
	GradeDescription *string         `gorm:"type:text;column:grade_description" json:"grade_description,omitempty"`
	GradePassStatus  GradePassStatus `gorm:"type:text;not null;default:'not_graded';column:grade_pass_status" json:"grade_pass_status"`

	// Catatan bebas guru
	GradeNote *string `gorm:"type:text;column:grade_note" json:"grade_note,omitempty"`

	// Snapshot kehadiran saat nilai disimpan (info, bukan sumber kebenaran)
	GradeAttendancePct *float64 `gorm:"column:grade_attendance_pct" json:"grade_attendance_pct,omitempty"`

	// Audit
	GradeCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grade_created_at" json:"grade_created_at"`
	GradeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grade_updated_at" json:"grade_updated_at"`
	GradeDeletedAt gorm.DeletedAt `gorm:"column:grade_deleted_at;index" json:"grade_deleted_at,omitempty"`
}

func (GradeModel) TableName() string { return "grades" }
