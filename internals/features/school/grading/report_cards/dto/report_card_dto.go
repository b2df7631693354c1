// file: internals/features/school/grading/report_cards/dto/report_card_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"emaktab_backend/internals/features/school/grading/report_cards/model"
)

/* =========================
   Request
========================= */

type GenerateReportCardRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SectionID uuid.UUID `json:"section_id" validate:"required"`
	TermID    uuid.UUID `json:"term_id" validate:"required"`
	Notes     *string   `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *GenerateReportCardRequest) Normalize() {
	if r.Notes != nil {
		n := strings.TrimSpace(*r.Notes)
		if n == "" {
			r.Notes = nil
		} else {
			r.Notes = &n
		}
	}
}

type GenerateClassReportCardsRequest struct {
	SectionID uuid.UUID `json:"section_id" validate:"required"`
	TermID    uuid.UUID `json:"term_id" validate:"required"`
}

/* =========================
   Response
========================= */

type ReportCardResponse struct {
	ReportCardID       uuid.UUID `json:"report_card_id"`
	StudentID          uuid.UUID `json:"student_id"`
	SectionID          uuid.UUID `json:"section_id"`
	TermID             uuid.UUID `json:"term_id"`
	TotalSubjects      int       `json:"total_subjects"`
	SubjectsGraded     int       `json:"subjects_graded"`
	SubjectsPassed     int       `json:"subjects_passed"`
	SubjectsFailed     int       `json:"subjects_failed"`
	AverageScore       *float64  `json:"average_score,omitempty"`
	AttendanceAttended int       `json:"attendance_attended"`
	AttendanceTotal    int       `json:"attendance_total"`
	AttendancePct      float64   `json:"attendance_pct"`
	Predicate          string    `json:"predicate"`
	Passed             bool      `json:"passed"`
	Notes              *string   `json:"notes,omitempty"`
	GeneratedAt        time.Time `json:"generated_at"`
}

func FromModel(m *model.ReportCardModel) ReportCardResponse {
	return ReportCardResponse{
		ReportCardID:       m.ReportCardID,
		StudentID:          m.ReportCardStudentID,
		SectionID:          m.ReportCardSectionID,
		TermID:             m.ReportCardTermID,
		TotalSubjects:      m.ReportCardTotalSubjects,
		SubjectsGraded:     m.ReportCardSubjectsGraded,
		SubjectsPassed:     m.ReportCardSubjectsPassed,
		SubjectsFailed:     m.ReportCardSubjectsFailed,
		AverageScore:       m.ReportCardAverageScore,
		AttendanceAttended: m.ReportCardAttendanceAttended,
		AttendanceTotal:    m.ReportCardAttendanceTotal,
		AttendancePct:      m.ReportCardAttendancePct,
		Predicate:          m.ReportCardPredicate,
		Passed:             m.ReportCardPassed,
		Notes:              m.ReportCardNotes,
		GeneratedAt:        m.ReportCardGeneratedAt,
	}
}

func FromModels(ms []model.ReportCardModel) []ReportCardResponse {
	out := make([]ReportCardResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
