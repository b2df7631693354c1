// file: internals/features/school/attendance/attendance_records/service/session_key.go
package service

import (
	"time"

	"github.com/google/uuid"
)

// Sesi logis = satu kejadian pertemuan nyata, diidentifikasi
// (tanggal, agenda-atau-"manual", section) — berapapun baris absensi
// yang menunjuk ke sana. SEMUA agregasi (persentase, gate nilai,
// dashboard) wajib lewat kunci ini supaya tidak ada double counting.

const manualAgendaKey = "manual"

// SessionKey membentuk kunci sesi logis.
func SessionKey(sectionID uuid.UUID, date time.Time, agendaID *uuid.UUID) string {
	agenda := manualAgendaKey
	if agendaID != nil && *agendaID != uuid.Nil {
		agenda = agendaID.String()
	}
	return sectionID.String() + "|" + date.Format("2006-01-02") + "|" + agenda
}
