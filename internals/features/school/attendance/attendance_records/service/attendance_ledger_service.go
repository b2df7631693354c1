// file: internals/features/school/attendance/attendance_records/service/attendance_ledger_service.go
package service

import (
	"errors"
	"time"

	model "emaktab_backend/internals/features/school/attendance/attendance_records/model"
	meetingModel "emaktab_backend/internals/features/school/attendance/class_meetings/model"
	meetingService "emaktab_backend/internals/features/school/attendance/class_meetings/service"
	sectionModel "emaktab_backend/internals/features/school/classes/class_sections/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrMeetingNotOpen: absensi ditulis ke pertemuan yang belum/tidak dibuka.
	ErrMeetingNotOpen = errors.New("pertemuan belum dibuka untuk absensi")
	// ErrConflict: upsert kalah race dua kali berturut-turut.
	ErrConflict = errors.New("konflik penyimpanan absensi, silakan ulangi")
)

/* =========================
   Tipe hasil
========================= */

type PercentageResult struct {
	Attended int     `json:"attended"`
	Total    int     `json:"total"`
	Pct      float64 `json:"pct"`
}

type StudentEntry struct {
	StudentID uuid.UUID
	Status    model.AttendanceStatus
}

type BatchResult struct {
	Saved     int `json:"saved"`
	Defaulted int `json:"defaulted"`
	Skipped   int `json:"skipped"` // payload di luar roster aktif
}

type AttendanceLedgerService struct{ DB *gorm.DB }

func NewAttendanceLedgerService(db *gorm.DB) *AttendanceLedgerService {
	return &AttendanceLedgerService{DB: db}
}

/* =========================
   Perhitungan murni
========================= */

// ComputePercentage menghitung {attended,total,pct} dari baris absensi
// satu siswa. Baris yang jatuh ke sesi logis sama (SessionKey) dihitung
// SEKALI; hadir menang atas status lain di sesi yang sama.
func ComputePercentage(rows []model.AttendanceRecordModel) PercentageResult {
	type sessionAgg struct{ present bool }
	sessions := make(map[string]*sessionAgg, len(rows))

	for i := range rows {
		r := &rows[i]
		key := SessionKey(r.AttendanceRecordSectionID, r.AttendanceRecordDate, r.AttendanceRecordAgendaID)
		agg, ok := sessions[key]
		if !ok {
			agg = &sessionAgg{}
			sessions[key] = agg
		}
		if r.AttendanceRecordStatus == model.AttendanceStatusPresent {
			agg.present = true
		}
	}

	res := PercentageResult{Total: len(sessions)}
	for _, agg := range sessions {
		if agg.present {
			res.Attended++
		}
	}
	if res.Total > 0 {
		res.Pct = float64(res.Attended) / float64(res.Total) * 100
	}
	return res
}

/* =========================
   Tulis (upsert)
========================= */

// upsertColumns harus sama persis dengan constraint
// uq_attendance_records_session (UNIQUE NULLS NOT DISTINCT, lihat model):
// daftar kolom polos hanya bisa di-infer Postgres ke constraint itu, dan
// NULLS NOT DISTINCT-lah yang membuat baris agenda NULL ikut konflik.
var upsertColumns = []clause.Column{
	{Name: "attendance_record_student_id"},
	{Name: "attendance_record_section_id"},
	{Name: "attendance_record_date"},
	{Name: "attendance_record_agenda_id"},
}

// upsertAssignments: kolom yang boleh diganti saat konflik — kolom kunci
// tidak pernah ikut, supaya simpan kedua meng-update baris yang sama.
var upsertAssignments = []string{
	"attendance_record_status",
	"attendance_record_material",
	"attendance_record_teacher_snapshot",
	"attendance_record_updated_at",
}

// Record meng-upsert satu baris absensi untuk satu pertemuan.
// Gate: pertemuan harus ongoing/completed (ErrMeetingNotOpen).
func (s *AttendanceLedgerService) Record(tx *gorm.DB, meeting *meetingModel.ClassMeetingModel, studentID uuid.UUID, status model.AttendanceStatus, material *string) error {
	if !meetingService.OpenForAttendance(meeting.ClassMeetingStatus) {
		return ErrMeetingNotOpen
	}

	rec := model.AttendanceRecordModel{
		AttendanceRecordStudentID:       studentID,
		AttendanceRecordSectionID:       meeting.ClassMeetingSectionID,
		AttendanceRecordDate:            meeting.ClassMeetingDate,
		AttendanceRecordAgendaID:        meeting.ClassMeetingAgendaID,
		AttendanceRecordStatus:          status,
		AttendanceRecordMaterial:        material,
		AttendanceRecordTeacherSnapshot: meeting.ClassMeetingTeacherSnapshot,
	}

	upsert := func() error {
		return tx.Clauses(clause.OnConflict{
			Columns:   upsertColumns,
			DoUpdates: clause.AssignmentColumns(upsertAssignments),
		}).Create(&rec).Error
	}

	// Race upsert vs upsert: coba sekali lagi sebelum menyerah.
	if err := upsert(); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err2 := upsert(); err2 != nil {
				return ErrConflict
			}
			return nil
		}
		return err
	}
	return nil
}

// DefaultFillCandidates memilih siswa yang diisi "present" otomatis:
// anggota roster aktif yang TIDAK ada di payload dan BELUM punya baris
// absensi di sesi logis yang sama. Tanpa flag defaultFill hasilnya selalu
// kosong — tidak pernah ada pengisian diam-diam, dan baris yang sudah ada
// tidak pernah ditimpa.
func DefaultFillCandidates(defaultFill bool, active, submitted map[uuid.UUID]bool, existing []uuid.UUID) []uuid.UUID {
	if !defaultFill {
		return nil
	}
	hasRecord := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		hasRecord[id] = true
	}
	var out []uuid.UUID
	for id := range active {
		if !active[id] || submitted[id] || hasRecord[id] {
			continue
		}
		out = append(out, id)
	}
	return out
}

// BatchRecord menyimpan absensi satu pertemuan untuk banyak siswa sekaligus.
//   - Hanya anggota roster yang aktif pada tanggal pertemuan yang diproses.
//   - defaultFill=true → siswa roster yang TIDAK ada di payload dan BELUM
//     punya baris absensi diisi "present". Tanpa defaultFill, siswa yang
//     tidak dikirim dibiarkan apa adanya.
//   - Sesudah simpan, pertemuan ongoing diselesaikan implisit (idempoten).
func (s *AttendanceLedgerService) BatchRecord(tx *gorm.DB, meetingID uuid.UUID, entries []StudentEntry, defaultFill bool, material *string) (*BatchResult, error) {
	var meeting meetingModel.ClassMeetingModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&meeting, "class_meeting_id = ?", meetingID).Error; err != nil {
		return nil, err
	}
	if !meetingService.OpenForAttendance(meeting.ClassMeetingStatus) {
		return nil, ErrMeetingNotOpen
	}

	// Roster aktif pada tanggal pertemuan
	var members []sectionModel.ClassStudentModel
	if err := tx.
		Where("class_student_section_id = ?", meeting.ClassMeetingSectionID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	activeSet := make(map[uuid.UUID]bool, len(members))
	for i := range members {
		if members[i].ActiveOn(meeting.ClassMeetingDate) {
			activeSet[members[i].ClassStudentStudentID] = true
		}
	}

	res := &BatchResult{}
	submitted := make(map[uuid.UUID]bool, len(entries))
	for _, e := range entries {
		if !activeSet[e.StudentID] {
			res.Skipped++
			continue
		}
		submitted[e.StudentID] = true
		if err := s.Record(tx, &meeting, e.StudentID, e.Status, material); err != nil {
			return nil, err
		}
		res.Saved++
	}

	if defaultFill {
		var existing []uuid.UUID
		q := tx.Model(&model.AttendanceRecordModel{}).
			Where("attendance_record_section_id = ? AND attendance_record_date = ?",
				meeting.ClassMeetingSectionID, meeting.ClassMeetingDate)
		if meeting.ClassMeetingAgendaID == nil {
			q = q.Where("attendance_record_agenda_id IS NULL")
		} else {
			q = q.Where("attendance_record_agenda_id = ?", *meeting.ClassMeetingAgendaID)
		}
		if err := q.Pluck("attendance_record_student_id", &existing).Error; err != nil {
			return nil, err
		}
		for _, studentID := range DefaultFillCandidates(defaultFill, activeSet, submitted, existing) {
			if err := s.Record(tx, &meeting, studentID, model.AttendanceStatusPresent, material); err != nil {
				return nil, err
			}
			res.Defaulted++
		}
	}

	// Update materi pertemuan bila dikirim
	if material != nil {
		if err := tx.Model(&meetingModel.ClassMeetingModel{}).
			Where("class_meeting_id = ?", meeting.ClassMeetingID).
			Update("class_meeting_material", material).Error; err != nil {
			return nil, err
		}
	}

	// Penyelesaian implisit (idempoten)
	lifecycle := meetingService.NewMeetingLifecycleService(s.DB)
	if err := lifecycle.CompleteForAttendance(tx, &meeting); err != nil {
		return nil, err
	}

	return res, nil
}

/* =========================
   Baca / agregasi
========================= */

// Percentage: sumber kebenaran tunggal untuk gate nilai.
// total = jumlah sesi logis yang punya baris absensi siswa ini dalam
// rentang term; attended = sesi berstatus present; pct aman dari nol.
func (s *AttendanceLedgerService) Percentage(tx *gorm.DB, studentID, sectionID uuid.UUID, agendaID *uuid.UUID, termStart, termEnd time.Time) (PercentageResult, error) {
	var rows []model.AttendanceRecordModel
	if err := tx.
		Where("attendance_record_student_id = ? AND attendance_record_section_id = ?", studentID, sectionID).
		Where("attendance_record_date >= ? AND attendance_record_date <= ?", termStart, termEnd).
		Scopes(agendaScope(agendaID)).
		Find(&rows).Error; err != nil {
		return PercentageResult{}, err
	}
	return ComputePercentage(rows), nil
}

// StudentTermAggregate: rekap kehadiran LINTAS agenda untuk rapot
// (rollup level siswa, bukan per mapel).
func (s *AttendanceLedgerService) StudentTermAggregate(tx *gorm.DB, studentID, sectionID uuid.UUID, termStart, termEnd time.Time) (PercentageResult, error) {
	var rows []model.AttendanceRecordModel
	if err := tx.
		Where("attendance_record_student_id = ? AND attendance_record_section_id = ?", studentID, sectionID).
		Where("attendance_record_date >= ? AND attendance_record_date <= ?", termStart, termEnd).
		Find(&rows).Error; err != nil {
		return PercentageResult{}, err
	}
	return ComputePercentage(rows), nil
}

// agendaScope: filter agenda dengan NULL = sesi manual; nil pointer = tanpa filter agenda.
func agendaScope(agendaID *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if agendaID == nil {
			return db
		}
		if *agendaID == uuid.Nil {
			return db.Where("attendance_record_agenda_id IS NULL")
		}
		return db.Where("attendance_record_agenda_id = ?", *agendaID)
	}
}
