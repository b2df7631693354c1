// file: internals/features/school/academics/academic_terms/model/academic_term_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicTermModel struct {
	// ============ PK ============
	AcademicTermID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_term_id" json:"academic_term_id"`

	// ============ Identitas ============
	// Example academic_year: "2026/2027"
	AcademicTermAcademicYear string `gorm:"type:text;not null;column:academic_term_academic_year" json:"academic_term_academic_year"`
	// Example name: "Ganjil" | "Genap" | "Pendek"
	AcademicTermName string `gorm:"type:text;not null;column:academic_term_name" json:"academic_term_name"`

	AcademicTermStartDate time.Time `gorm:"type:date;not null;column:academic_term_start_date" json:"academic_term_start_date"`
	AcademicTermEndDate   time.Time `gorm:"type:date;not null;column:academic_term_end_date" json:"academic_term_end_date"`
	// Maksimal satu term aktif; dijaga oleh partial unique index di DB.
	AcademicTermIsActive bool `gorm:"not null;default:false;column:academic_term_is_active" json:"academic_term_is_active"`

	AcademicTermDescription *string `gorm:"type:text;column:academic_term_description" json:"academic_term_description,omitempty"`

	// ============ Audit / Soft delete ============
	AcademicTermCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:academic_term_created_at" json:"academic_term_created_at"`
	AcademicTermUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:academic_term_updated_at" json:"academic_term_updated_at"`
	AcademicTermDeletedAt gorm.DeletedAt `gorm:"column:academic_term_deleted_at;index" json:"academic_term_deleted_at,omitempty"`
}

func (AcademicTermModel) TableName() string { return "academic_terms" }

// ContainsDate: true jika tanggal jatuh pada rentang term (inklusif).
func (m *AcademicTermModel) ContainsDate(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(m.AcademicTermStartDate.Year(), m.AcademicTermStartDate.Month(), m.AcademicTermStartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(m.AcademicTermEndDate.Year(), m.AcademicTermEndDate.Month(), m.AcademicTermEndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
