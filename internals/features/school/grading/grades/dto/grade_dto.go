// file: internals/features/school/grading/grades/dto/grade_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"emaktab_backend/internals/features/school/grading/grades/model"
)

/* =========================
   Request
========================= */

type SubmitGradeRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SectionID uuid.UUID `json:"section_id" validate:"required"`
	TermID    uuid.UUID `json:"term_id" validate:"required"`
	AgendaID  uuid.UUID `json:"agenda_id" validate:"required"`
	Score     int       `json:"score" validate:"min=0,max=100"`
	Note      *string   `json:"note,omitempty" validate:"omitempty,max=500"`
}

func (r *SubmitGradeRequest) Normalize() {
	if r.Note != nil {
		n := strings.TrimSpace(*r.Note)
		if n == "" {
			r.Note = nil
		} else {
			r.Note = &n
		}
	}
}

/* =========================
   Response
========================= */

type GradeResponse struct {
	GradeID       uuid.UUID             `json:"grade_id"`
	StudentID     uuid.UUID             `json:"student_id"`
	SectionID     uuid.UUID             `json:"section_id"`
	TermID        uuid.UUID             `json:"term_id"`
	AgendaID      uuid.UUID             `json:"agenda_id"`
	Score         *int                  `json:"score,omitempty"`
	Letter        *string               `json:"letter,omitempty"`
	Description   *string               `json:"description,omitempty"`
	PassStatus    model.GradePassStatus `json:"pass_status"`
	Note          *string               `json:"note,omitempty"`
	AttendancePct *float64              `json:"attendance_pct,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func FromModel(m *model.GradeModel) GradeResponse {
	return GradeResponse{
		GradeID:       m.GradeID,
		StudentID:     m.GradeStudentID,
		SectionID:     m.GradeSectionID,
		TermID:        m.GradeTermID,
		AgendaID:      m.GradeAgendaID,
		Score:         m.GradeScore,
		Letter:        m.GradeLetter,
		Description:   m.GradeDescription,
		PassStatus:    m.GradePassStatus,
		Note:          m.GradeNote,
		AttendancePct: m.GradeAttendancePct,
		CreatedAt:     m.GradeCreatedAt,
		UpdatedAt:     m.GradeUpdatedAt,
	}
}

func FromModels(ms []model.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
