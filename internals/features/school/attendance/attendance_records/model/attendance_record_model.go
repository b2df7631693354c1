// file: internals/features/school/attendance/attendance_records/model/attendance_record_model.go
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

type AttendanceStatus string

const (
	AttendanceStatusPresent      AttendanceStatus = "present"
	AttendanceStatusExcused      AttendanceStatus = "excused"
	AttendanceStatusSick         AttendanceStatus = "sick"
	AttendanceStatusDispensation AttendanceStatus = "dispensation"
	AttendanceStatusAbsent       AttendanceStatus = "absent"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusExcused, AttendanceStatusSick,
		AttendanceStatusDispensation, AttendanceStatusAbsent:
		return true
	default:
		return false
	}
}

/* =========================================
   Model: attendance_records
   Unik per (student, section, date, agenda) — upsert, jangan duplikat.
   DDL kunci (PG15+; NULLS NOT DISTINCT wajib supaya baris sesi manual
   dengan agenda NULL tetap kena ON CONFLICT, bukan jadi baris baru):
     ALTER TABLE attendance_records
       ADD CONSTRAINT uq_attendance_records_session
       UNIQUE NULLS NOT DISTINCT (
         attendance_record_student_id,
         attendance_record_section_id,
         attendance_record_date,
         attendance_record_agenda_id
       );
========================================= */

type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	// Kunci logis
	AttendanceRecordStudentID uuid.UUID  `gorm:"type:uuid;not null;index;column:attendance_record_student_id" json:"attendance_record_student_id"`
	AttendanceRecordSectionID uuid.UUID  `gorm:"type:uuid;not null;index;column:attendance_record_section_id" json:"attendance_record_section_id"`
	AttendanceRecordDate      time.Time  `gorm:"type:date;not null;column:attendance_record_date" json:"attendance_record_date"`
	AttendanceRecordAgendaID  *uuid.UUID `gorm:"type:uuid;index;column:attendance_record_agenda_id" json:"attendance_record_agenda_id,omitempty"` // NULL = sesi manual

	AttendanceRecordStatus AttendanceStatus `gorm:"type:text;not null;column:attendance_record_status" json:"attendance_record_status"`

	// Snapshot materi & guru saat absen disimpan
	AttendanceRecordMaterial        *string           `gorm:"type:text;column:attendance_record_material" json:"attendance_record_material,omitempty"`
	AttendanceRecordTeacherSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:attendance_record_teacher_snapshot" json:"attendance_record_teacher_snapshot,omitempty"`

	// Audit
	AttendanceRecordCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_record_created_at" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_record_updated_at" json:"attendance_record_updated_at"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;index" json:"attendance_record_deleted_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
