// file: internals/features/school/classes/class_agendas/dto/class_agenda_dto.go
package dto

import (
	"strings"

	model "emaktab_backend/internals/features/school/classes/class_agendas/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===============================
   Request
=================================*/

type CreateClassAgendaRequest struct {
	ClassAgendaSectionID uuid.UUID `json:"class_agenda_section_id" validate:"required"`
	ClassAgendaTeacherID uuid.UUID `json:"class_agenda_teacher_id" validate:"required"`
	ClassAgendaSubject   string    `json:"class_agenda_subject" validate:"required,min=2,max=120"`
	ClassAgendaStartTime *string   `json:"class_agenda_start_time,omitempty" validate:"omitempty,len=5"`
	ClassAgendaEndTime   *string   `json:"class_agenda_end_time,omitempty" validate:"omitempty,len=5"`
	ClassAgendaIsActive  *bool     `json:"class_agenda_is_active,omitempty"`

	// Snapshot guru dari modul kepegawaian (nama, kode, dsb).
	ClassAgendaTeacherSnapshot map[string]any `json:"class_agenda_teacher_snapshot,omitempty"`
}

func (r *CreateClassAgendaRequest) Normalize() {
	r.ClassAgendaSubject = strings.TrimSpace(r.ClassAgendaSubject)
	r.ClassAgendaStartTime = trimPtr(r.ClassAgendaStartTime)
	r.ClassAgendaEndTime = trimPtr(r.ClassAgendaEndTime)
}

func (r *CreateClassAgendaRequest) ToModel() *model.ClassAgendaModel {
	m := &model.ClassAgendaModel{
		ClassAgendaSectionID: r.ClassAgendaSectionID,
		ClassAgendaTeacherID: r.ClassAgendaTeacherID,
		ClassAgendaSubject:   r.ClassAgendaSubject,
		ClassAgendaStartTime: r.ClassAgendaStartTime,
		ClassAgendaEndTime:   r.ClassAgendaEndTime,
		ClassAgendaIsActive:  true,
	}
	if r.ClassAgendaIsActive != nil {
		m.ClassAgendaIsActive = *r.ClassAgendaIsActive
	}
	if len(r.ClassAgendaTeacherSnapshot) > 0 {
		m.ClassAgendaTeacherSnapshot = datatypes.JSONMap(r.ClassAgendaTeacherSnapshot)
	}
	return m
}

type UpdateClassAgendaRequest struct {
	ClassAgendaTeacherID *uuid.UUID `json:"class_agenda_teacher_id,omitempty"`
	ClassAgendaSubject   *string    `json:"class_agenda_subject,omitempty" validate:"omitempty,min=2,max=120"`
	ClassAgendaStartTime *string    `json:"class_agenda_start_time,omitempty" validate:"omitempty,len=5"`
	ClassAgendaEndTime   *string    `json:"class_agenda_end_time,omitempty" validate:"omitempty,len=5"`
	ClassAgendaIsActive  *bool      `json:"class_agenda_is_active,omitempty"`

	ClassAgendaTeacherSnapshot map[string]any `json:"class_agenda_teacher_snapshot,omitempty"`
}

func (r *UpdateClassAgendaRequest) Apply(m *model.ClassAgendaModel) {
	if r.ClassAgendaTeacherID != nil {
		m.ClassAgendaTeacherID = *r.ClassAgendaTeacherID
	}
	if r.ClassAgendaSubject != nil {
		m.ClassAgendaSubject = strings.TrimSpace(*r.ClassAgendaSubject)
	}
	if r.ClassAgendaStartTime != nil {
		m.ClassAgendaStartTime = trimPtr(r.ClassAgendaStartTime)
	}
	if r.ClassAgendaEndTime != nil {
		m.ClassAgendaEndTime = trimPtr(r.ClassAgendaEndTime)
	}
	if r.ClassAgendaIsActive != nil {
		m.ClassAgendaIsActive = *r.ClassAgendaIsActive
	}
	if len(r.ClassAgendaTeacherSnapshot) > 0 {
		m.ClassAgendaTeacherSnapshot = datatypes.JSONMap(r.ClassAgendaTeacherSnapshot)
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ===============================
   Response
=================================*/

type ClassAgendaResponse struct {
	ClassAgendaID              uuid.UUID      `json:"class_agenda_id"`
	ClassAgendaSectionID       uuid.UUID      `json:"class_agenda_section_id"`
	ClassAgendaTeacherID       uuid.UUID      `json:"class_agenda_teacher_id"`
	ClassAgendaSubject         string         `json:"class_agenda_subject"`
	ClassAgendaStartTime       *string        `json:"class_agenda_start_time,omitempty"`
	ClassAgendaEndTime         *string        `json:"class_agenda_end_time,omitempty"`
	ClassAgendaIsActive        bool           `json:"class_agenda_is_active"`
	ClassAgendaTeacherSnapshot map[string]any `json:"class_agenda_teacher_snapshot,omitempty"`
}

func FromModel(m *model.ClassAgendaModel) ClassAgendaResponse {
	return ClassAgendaResponse{
		ClassAgendaID:              m.ClassAgendaID,
		ClassAgendaSectionID:       m.ClassAgendaSectionID,
		ClassAgendaTeacherID:       m.ClassAgendaTeacherID,
		ClassAgendaSubject:         m.ClassAgendaSubject,
		ClassAgendaStartTime:       m.ClassAgendaStartTime,
		ClassAgendaEndTime:         m.ClassAgendaEndTime,
		ClassAgendaIsActive:        m.ClassAgendaIsActive,
		ClassAgendaTeacherSnapshot: m.ClassAgendaTeacherSnapshot,
	}
}

func FromModels(ms []model.ClassAgendaModel) []ClassAgendaResponse {
	out := make([]ClassAgendaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
