// file: internals/features/school/classes/class_sections/dto/class_section_dto.go
package dto

import (
	"time"

	model "emaktab_backend/internals/features/school/classes/class_sections/model"

	"github.com/google/uuid"
)

type ClassSectionResponse struct {
	ClassSectionID       uuid.UUID `json:"class_section_id"`
	ClassSectionName     string    `json:"class_section_name"`
	ClassSectionProgram  *string   `json:"class_section_program,omitempty"`
	ClassSectionCohort   *string   `json:"class_section_cohort,omitempty"`
	ClassSectionTermID   uuid.UUID `json:"class_section_term_id"`
	ClassSectionIsActive bool      `json:"class_section_is_active"`
}

func FromSectionModel(m *model.ClassSectionModel) ClassSectionResponse {
	return ClassSectionResponse{
		ClassSectionID:       m.ClassSectionID,
		ClassSectionName:     m.ClassSectionName,
		ClassSectionProgram:  m.ClassSectionProgram,
		ClassSectionCohort:   m.ClassSectionCohort,
		ClassSectionTermID:   m.ClassSectionTermID,
		ClassSectionIsActive: m.ClassSectionIsActive,
	}
}

func FromSectionModels(ms []model.ClassSectionModel) []ClassSectionResponse {
	out := make([]ClassSectionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromSectionModel(&ms[i]))
	}
	return out
}

type ClassStudentResponse struct {
	ClassStudentID          uuid.UUID                `json:"class_student_id"`
	ClassStudentStudentID   uuid.UUID                `json:"class_student_student_id"`
	ClassStudentStudentName string                   `json:"class_student_student_name"`
	ClassStudentStatus      model.ClassStudentStatus `json:"class_student_status"`
	ClassStudentJoinedAt    time.Time                `json:"class_student_joined_at"`
	ClassStudentLeftAt      *time.Time               `json:"class_student_left_at,omitempty"`
}

func FromStudentModel(m *model.ClassStudentModel) ClassStudentResponse {
	return ClassStudentResponse{
		ClassStudentID:          m.ClassStudentID,
		ClassStudentStudentID:   m.ClassStudentStudentID,
		ClassStudentStudentName: m.ClassStudentStudentName,
		ClassStudentStatus:      m.ClassStudentStatus,
		ClassStudentJoinedAt:    m.ClassStudentJoinedAt,
		ClassStudentLeftAt:      m.ClassStudentLeftAt,
	}
}

func FromStudentModels(ms []model.ClassStudentModel) []ClassStudentResponse {
	out := make([]ClassStudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromStudentModel(&ms[i]))
	}
	return out
}
