// file: internals/features/school/classes/class_agendas/model/class_agenda_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClassAgendaModel: slot mapel berulang pada satu section
// (mapel + guru pengampu + jam terjadwal). Satu section boleh punya
// banyak agenda paralel.
type ClassAgendaModel struct {
	// ============ PK ============
	ClassAgendaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_agenda_id" json:"class_agenda_id"`

	// ============ Relasi ============
	ClassAgendaSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:class_agenda_section_id" json:"class_agenda_section_id"`
	ClassAgendaTeacherID uuid.UUID `gorm:"type:uuid;not null;column:class_agenda_teacher_id" json:"class_agenda_teacher_id"`

	// ============ Identitas ============
	ClassAgendaSubject string `gorm:"type:text;not null;column:class_agenda_subject" json:"class_agenda_subject"`

	// Jam terjadwal, format "HH:MM" (jadwal harian berulang)
	ClassAgendaStartTime *string `gorm:"type:varchar(5);column:class_agenda_start_time" json:"class_agenda_start_time,omitempty"`
	ClassAgendaEndTime   *string `gorm:"type:varchar(5);column:class_agenda_end_time" json:"class_agenda_end_time,omitempty"`

	ClassAgendaIsActive bool `gorm:"not null;default:true;column:class_agenda_is_active" json:"class_agenda_is_active"`

	// Snapshot guru (nama/kode) — guru dimiliki modul eksternal.
	ClassAgendaTeacherSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:class_agenda_teacher_snapshot" json:"class_agenda_teacher_snapshot,omitempty"`

	// ============ Audit / Soft delete ============
	ClassAgendaCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_agenda_created_at" json:"class_agenda_created_at"`
	ClassAgendaUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_agenda_updated_at" json:"class_agenda_updated_at"`
	ClassAgendaDeletedAt gorm.DeletedAt `gorm:"column:class_agenda_deleted_at;index" json:"class_agenda_deleted_at,omitempty"`
}

func (ClassAgendaModel) TableName() string { return "class_agendas" }
