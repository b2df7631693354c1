// file: internals/features/school/attendance/attendance_records/dto/attendance_record_dto.go
package dto

import (
	"strings"
	"time"

	model "emaktab_backend/internals/features/school/attendance/attendance_records/model"

	"github.com/google/uuid"
)

/* ===============================
   Request
=================================*/

type AttendanceEntry struct {
	StudentID uuid.UUID              `json:"student_id" validate:"required"`
	Status    model.AttendanceStatus `json:"status" validate:"required"`
}

// SaveAttendanceRequest: simpan absensi satu pertemuan (batch).
type SaveAttendanceRequest struct {
	Entries []AttendanceEntry `json:"entries" validate:"dive"`
	// DefaultFill: siswa roster yang tidak dikirim & belum tercatat → present.
	// Tanpa flag ini TIDAK ada pengisian diam-diam.
	DefaultFill bool    `json:"default_fill"`
	Material    *string `json:"material,omitempty" validate:"omitempty,max=2000"`
}

func (r *SaveAttendanceRequest) Normalize() {
	if r.Material != nil {
		v := strings.TrimSpace(*r.Material)
		if v == "" {
			r.Material = nil
		} else {
			r.Material = &v
		}
	}
}

// ValidStatuses: cek enum sebelum masuk service.
func (r *SaveAttendanceRequest) ValidStatuses() bool {
	for i := range r.Entries {
		if !r.Entries[i].Status.Valid() {
			return false
		}
	}
	return true
}

/* ===============================
   Response
=================================*/

type AttendanceRecordResponse struct {
	AttendanceRecordID        uuid.UUID              `json:"attendance_record_id"`
	AttendanceRecordStudentID uuid.UUID              `json:"attendance_record_student_id"`
	AttendanceRecordSectionID uuid.UUID              `json:"attendance_record_section_id"`
	AttendanceRecordDate      time.Time              `json:"attendance_record_date"`
	AttendanceRecordAgendaID  *uuid.UUID             `json:"attendance_record_agenda_id,omitempty"`
	AttendanceRecordStatus    model.AttendanceStatus `json:"attendance_record_status"`
	AttendanceRecordMaterial  *string                `json:"attendance_record_material,omitempty"`
}

func FromModel(m *model.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordID:        m.AttendanceRecordID,
		AttendanceRecordStudentID: m.AttendanceRecordStudentID,
		AttendanceRecordSectionID: m.AttendanceRecordSectionID,
		AttendanceRecordDate:      m.AttendanceRecordDate,
		AttendanceRecordAgendaID:  m.AttendanceRecordAgendaID,
		AttendanceRecordStatus:    m.AttendanceRecordStatus,
		AttendanceRecordMaterial:  m.AttendanceRecordMaterial,
	}
}

func FromModels(ms []model.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// RosterAttendanceRow: baris lembar absensi (roster + status saat ini).
type RosterAttendanceRow struct {
	StudentID   uuid.UUID               `json:"student_id"`
	StudentName string                  `json:"student_name"`
	Status      *model.AttendanceStatus `json:"status,omitempty"` // nil = belum diabsen
}
