// file: internals/features/school/attendance/class_meetings/dto/class_meeting_dto.go
package dto

import (
	"strings"
	"time"

	model "emaktab_backend/internals/features/school/attendance/class_meetings/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===============================
   Request
=================================*/

type CreateClassMeetingRequest struct {
	ClassMeetingSectionID uuid.UUID  `json:"class_meeting_section_id" validate:"required"`
	ClassMeetingAgendaID  *uuid.UUID `json:"class_meeting_agenda_id,omitempty"` // NULL = pertemuan manual
	ClassMeetingDate      time.Time  `json:"class_meeting_date" validate:"required"`
	ClassMeetingMaterial  *string    `json:"class_meeting_material,omitempty" validate:"omitempty,max=2000"`
	ClassMeetingTeacherID *uuid.UUID `json:"class_meeting_teacher_id,omitempty"`

	ClassMeetingTeacherSnapshot map[string]any `json:"class_meeting_teacher_snapshot,omitempty"`
}

func (r *CreateClassMeetingRequest) Normalize() {
	// Tanggal dinormalisasi ke awal hari lokal (kolom date).
	d := r.ClassMeetingDate.In(time.Local)
	r.ClassMeetingDate = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)

	if r.ClassMeetingMaterial != nil {
		v := strings.TrimSpace(*r.ClassMeetingMaterial)
		if v == "" {
			r.ClassMeetingMaterial = nil
		} else {
			r.ClassMeetingMaterial = &v
		}
	}
	// Zero-UUID agenda → nil (pertemuan manual)
	if r.ClassMeetingAgendaID != nil && *r.ClassMeetingAgendaID == uuid.Nil {
		r.ClassMeetingAgendaID = nil
	}
	if r.ClassMeetingTeacherID != nil && *r.ClassMeetingTeacherID == uuid.Nil {
		r.ClassMeetingTeacherID = nil
	}
}

func (r *CreateClassMeetingRequest) ToModel() *model.ClassMeetingModel {
	m := &model.ClassMeetingModel{
		ClassMeetingSectionID: r.ClassMeetingSectionID,
		ClassMeetingAgendaID:  r.ClassMeetingAgendaID,
		ClassMeetingDate:      r.ClassMeetingDate,
		ClassMeetingMaterial:  r.ClassMeetingMaterial,
		ClassMeetingTeacherID: r.ClassMeetingTeacherID,
		ClassMeetingStatus:    model.MeetingStatusScheduled,
	}
	if len(r.ClassMeetingTeacherSnapshot) > 0 {
		m.ClassMeetingTeacherSnapshot = datatypes.JSONMap(r.ClassMeetingTeacherSnapshot)
	}
	return m
}

type TransitionClassMeetingRequest struct {
	ClassMeetingStatus model.MeetingStatus `json:"class_meeting_status" validate:"required"`
}

type UpdateClassMeetingRequest struct {
	ClassMeetingMaterial  *string    `json:"class_meeting_material,omitempty" validate:"omitempty,max=2000"`
	ClassMeetingTeacherID *uuid.UUID `json:"class_meeting_teacher_id,omitempty"`
}

/* ===============================
   Response
=================================*/

type ClassMeetingResponse struct {
	ClassMeetingID              uuid.UUID           `json:"class_meeting_id"`
	ClassMeetingSectionID       uuid.UUID           `json:"class_meeting_section_id"`
	ClassMeetingAgendaID        *uuid.UUID          `json:"class_meeting_agenda_id,omitempty"`
	ClassMeetingDate            time.Time           `json:"class_meeting_date"`
	ClassMeetingStatus          model.MeetingStatus `json:"class_meeting_status"`
	ClassMeetingMaterial        *string             `json:"class_meeting_material,omitempty"`
	ClassMeetingTeacherID       *uuid.UUID          `json:"class_meeting_teacher_id,omitempty"`
	ClassMeetingTeacherSnapshot map[string]any      `json:"class_meeting_teacher_snapshot,omitempty"`
	ClassMeetingCreatedAt       time.Time           `json:"class_meeting_created_at"`
	ClassMeetingUpdatedAt       time.Time           `json:"class_meeting_updated_at"`
}

func FromModel(m *model.ClassMeetingModel) ClassMeetingResponse {
	return ClassMeetingResponse{
		ClassMeetingID:              m.ClassMeetingID,
		ClassMeetingSectionID:       m.ClassMeetingSectionID,
		ClassMeetingAgendaID:        m.ClassMeetingAgendaID,
		ClassMeetingDate:            m.ClassMeetingDate,
		ClassMeetingStatus:          m.ClassMeetingStatus,
		ClassMeetingMaterial:        m.ClassMeetingMaterial,
		ClassMeetingTeacherID:       m.ClassMeetingTeacherID,
		ClassMeetingTeacherSnapshot: m.ClassMeetingTeacherSnapshot,
		ClassMeetingCreatedAt:       m.ClassMeetingCreatedAt,
		ClassMeetingUpdatedAt:       m.ClassMeetingUpdatedAt,
	}
}

func FromModels(ms []model.ClassMeetingModel) []ClassMeetingResponse {
	out := make([]ClassMeetingResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
