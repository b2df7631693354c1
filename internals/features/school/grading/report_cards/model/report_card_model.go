// file: internals/features/school/grading/report_cards/model/report_card_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: report_cards
   Satu rapor per (student, section, term); generate ulang = replace.
========================================= */

type ReportCardModel struct {
	// PK
	ReportCardID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:report_card_id" json:"report_card_id"`

	// Kunci logis (unique index di DB)
	ReportCardStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:report_card_student_id" json:"report_card_student_id"`
	ReportCardSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:report_card_section_id" json:"report_card_section_id"`
	ReportCardTermID    uuid.UUID `gorm:"type:uuid;not null;index;column:report_card_term_id" json:"report_card_term_id"`

	// Agregat nilai
	ReportCardTotalSubjects  int      `gorm:"not null;default:0;column:report_card_total_subjects" json:"report_card_total_subjects"`
	ReportCardSubjectsGraded int      `gorm:"not null;default:0;column:report_card_subjects_graded" json:"report_card_subjects_graded"`
	ReportCardSubjectsPassed int      `gorm:"not null;default:0;column:report_card_subjects_passed" json:"report_card_subjects_passed"`
	ReportCardSubjectsFailed int      `gorm:"not null;default:0;column:report_card_subjects_failed" json:"report_card_subjects_failed"`
	ReportCardAverageScore   *float64 `gorm:"column:report_card_average_score" json:"report_card_average_score,omitempty"`

	// Agregat kehadiran lintas agenda
	ReportCardAttendanceAttended int     `gorm:"not null;default:0;column:report_card_attendance_attended" json:"report_card_attendance_attended"`
	ReportCardAttendanceTotal    int     `gorm:"not null;default:0;column:report_card_attendance_total" json:"report_card_attendance_total"`
	ReportCardAttendancePct      float64 `gorm:"not null;default:0;column:report_card_attendance_pct" json:"report_card_attendance_pct"`

	// Hasil akhir
	ReportCardPredicate string  `gorm:"type:text;not null;column:report_card_predicate" json:"report_card_predicate"`
	ReportCardPassed    bool    `gorm:"not null;default:false;column:report_card_passed" json:"report_card_passed"`
	ReportCardNotes     *string `gorm:"type:text;column:report_card_notes" json:"report_card_notes,omitempty"`

	// Audit
	ReportCardGeneratedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:report_card_generated_at" json:"report_card_generated_at"`
	ReportCardCreatedAt   time.Time      `gorm:"type:timestamptz;not null;default:now();column:report_card_created_at" json:"report_card_created_at"`
	ReportCardUpdatedAt   time.Time      `gorm:"type:timestamptz;not null;default:now();column:report_card_updated_at" json:"report_card_updated_at"`
	ReportCardDeletedAt   gorm.DeletedAt `gorm:"column:report_card_deleted_at;index" json:"report_card_deleted_at,omitempty"`
}

func (ReportCardModel) TableName() string { return "report_cards" }
