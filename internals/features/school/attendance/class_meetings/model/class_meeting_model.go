// file: internals/features/school/attendance/class_meetings/model/class_meeting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusOngoing   MeetingStatus = "ongoing"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCanceled  MeetingStatus = "canceled"
	MeetingStatusPostponed MeetingStatus = "postponed"
)

func (s MeetingStatus) Valid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusOngoing, MeetingStatusCompleted,
		MeetingStatusCanceled, MeetingStatusPostponed:
		return true
	default:
		return false
	}
}

/* =========================================
   Model: class_meetings
========================================= */

type ClassMeetingModel struct {
	// PK
	ClassMeetingID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_meeting_id" json:"class_meeting_id"`

	// Relasi utama
	ClassMeetingSectionID uuid.UUID  `gorm:"type:uuid;not null;index;column:class_meeting_section_id" json:"class_meeting_section_id"`
	ClassMeetingAgendaID  *uuid.UUID `gorm:"type:uuid;index;column:class_meeting_agenda_id" json:"class_meeting_agenda_id,omitempty"` // NULL = pertemuan manual

	// Occurrence
	ClassMeetingDate time.Time `gorm:"type:date;not null;column:class_meeting_date" json:"class_meeting_date"`

	// Lifecycle
	ClassMeetingStatus MeetingStatus `gorm:"type:text;not null;default:'scheduled';column:class_meeting_status" json:"class_meeting_status"`

	// Materi / topik bebas
	ClassMeetingMaterial *string `gorm:"type:text;column:class_meeting_material" json:"class_meeting_material,omitempty"`

	// Override guru (opsional) → jika NULL pakai guru agenda
	ClassMeetingTeacherID       *uuid.UUID        `gorm:"type:uuid;column:class_meeting_teacher_id" json:"class_meeting_teacher_id,omitempty"`
	ClassMeetingTeacherSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:class_meeting_teacher_snapshot" json:"class_meeting_teacher_snapshot,omitempty"`

	// Audit
	ClassMeetingCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_meeting_created_at" json:"class_meeting_created_at"`
	ClassMeetingUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_meeting_updated_at" json:"class_meeting_updated_at"`
	ClassMeetingDeletedAt gorm.DeletedAt `gorm:"column:class_meeting_deleted_at;index" json:"class_meeting_deleted_at,omitempty"`
}

func (ClassMeetingModel) TableName() string { return "class_meetings" }
