// file: internals/features/school/classes/class_sections/model/class_section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassSectionModel struct {
	// ============ PK ============
	ClassSectionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_section_id" json:"class_section_id"`

	// ============ Identitas ============
	ClassSectionName    string  `gorm:"type:text;not null;column:class_section_name" json:"class_section_name"`
	ClassSectionProgram *string `gorm:"type:text;column:class_section_program" json:"class_section_program,omitempty"` // mis. "tahfidz", "reguler"
	ClassSectionCohort  *string `gorm:"type:text;column:class_section_cohort" json:"class_section_cohort,omitempty"`   // label angkatan/rombel

	// Term yang berjalan untuk section ini
	ClassSectionTermID uuid.UUID `gorm:"type:uuid;not null;column:class_section_term_id" json:"class_section_term_id"`

	ClassSectionIsActive bool `gorm:"not null;default:true;column:class_section_is_active" json:"class_section_is_active"`

	// ============ Audit / Soft delete ============
	ClassSectionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_section_created_at" json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_section_updated_at" json:"class_section_updated_at"`
	ClassSectionDeletedAt gorm.DeletedAt `gorm:"column:class_section_deleted_at;index" json:"class_section_deleted_at,omitempty"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }
