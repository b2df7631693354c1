// file: internals/features/school/dashboard/service/dashboard_service.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"emaktab_backend/internals/constants"
	attendanceModel "emaktab_backend/internals/features/school/attendance/attendance_records/model"
	attendanceService "emaktab_backend/internals/features/school/attendance/attendance_records/service"
	sectionModel "emaktab_backend/internals/features/school/classes/class_sections/model"
)

/* =========================
   Tipe hasil
========================= */

type ClassSummary struct {
	SectionID        uuid.UUID      `json:"section_id"`
	SectionName      string         `json:"section_name"`
	Program          string         `json:"program"`
	StudentCount     int            `json:"student_count"`
	AvgAttendancePct float64        `json:"avg_attendance_pct"`
	StatusCounts     map[string]int `json:"status_counts"`
	LastSessionDate  *string        `json:"last_session_date,omitempty"` // YYYY-MM-DD
}

type SessionFeedItem struct {
	SectionID   uuid.UUID  `json:"section_id"`
	SectionName string     `json:"section_name"`
	Date        string     `json:"date"`                // YYYY-MM-DD
	AgendaID    *uuid.UUID `json:"agenda_id,omitempty"` // nil = manual
	Present     int        `json:"present"`
	Recorded    int        `json:"recorded"`
}

type AttentionItem struct {
	StudentID     uuid.UUID `json:"student_id"`
	StudentName   string    `json:"student_name"`
	SectionID     uuid.UUID `json:"section_id"`
	SectionName   string    `json:"section_name"`
	AbsentCount   int       `json:"absent_count"`
	AttendancePct float64   `json:"attendance_pct"`
}

/* =========================================
   Agregasi murni di atas baris absensi.
   Semua pakai SessionKey yang sama dgn ledger — dedup konsisten.
========================================= */

type sectionInfo struct {
	Name    string
	Program string
}

// SummarizeClasses: rata-rata persentase kehadiran per section.
// Urut: rata-rata turun, lalu nama section naik.
func SummarizeClasses(rows []attendanceModel.AttendanceRecordModel, sections map[uuid.UUID]sectionInfo) []ClassSummary {
	type key struct {
		section uuid.UUID
		student uuid.UUID
	}
	byStudent := make(map[key][]attendanceModel.AttendanceRecordModel)
	for i := range rows {
		k := key{rows[i].AttendanceRecordSectionID, rows[i].AttendanceRecordStudentID}
		byStudent[k] = append(byStudent[k], rows[i])
	}

	type acc struct {
		sum      float64
		count    int
		statuses map[string]int
		lastDate time.Time
	}
	bySection := make(map[uuid.UUID]*acc)
	for k, studentRows := range byStudent {
		pr := attendanceService.ComputePercentage(studentRows)
		a := bySection[k.section]
		if a == nil {
			a = &acc{statuses: make(map[string]int)}
			bySection[k.section] = a
		}
		a.sum += pr.Pct
		a.count++
		for i := range studentRows {
			a.statuses[string(studentRows[i].AttendanceRecordStatus)]++
			if studentRows[i].AttendanceRecordDate.After(a.lastDate) {
				a.lastDate = studentRows[i].AttendanceRecordDate
			}
		}
	}

	out := make([]ClassSummary, 0, len(bySection))
	for sectionID, a := range bySection {
		info := sections[sectionID]
		avg := 0.0
		if a.count > 0 {
			avg = a.sum / float64(a.count)
		}
		var lastDate *string
		if !a.lastDate.IsZero() {
			d := a.lastDate.Format("2006-01-02")
			lastDate = &d
		}
		out = append(out, ClassSummary{
			SectionID:        sectionID,
			SectionName:      info.Name,
			Program:          info.Program,
			StudentCount:     a.count,
			AvgAttendancePct: avg,
			StatusCounts:     a.statuses,
			LastSessionDate:  lastDate,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgAttendancePct != out[j].AvgAttendancePct {
			return out[i].AvgAttendancePct > out[j].AvgAttendancePct
		}
		return out[i].SectionName < out[j].SectionName
	})
	return out
}

// BuildSessionFeed: sesi logis terbaru dari baris absensi.
// Dedup per SessionKey, urut tanggal turun, ambil n teratas.
func BuildSessionFeed(rows []attendanceModel.AttendanceRecordModel, sections map[uuid.UUID]sectionInfo, n int) []SessionFeedItem {
	byKey := make(map[string]*SessionFeedItem)
	dates := make(map[string]time.Time)
	for i := range rows {
		r := &rows[i]
		k := attendanceService.SessionKey(r.AttendanceRecordSectionID, r.AttendanceRecordDate, r.AttendanceRecordAgendaID)
		item := byKey[k]
		if item == nil {
			item = &SessionFeedItem{
				SectionID:   r.AttendanceRecordSectionID,
				SectionName: sections[r.AttendanceRecordSectionID].Name,
				Date:        r.AttendanceRecordDate.Format("2006-01-02"),
				AgendaID:    r.AttendanceRecordAgendaID,
			}
			byKey[k] = item
			dates[k] = r.AttendanceRecordDate
		}
		item.Recorded++
		if r.AttendanceRecordStatus == attendanceModel.AttendanceStatusPresent {
			item.Present++
		}
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if !dates[keys[i]].Equal(dates[keys[j]]) {
			return dates[keys[i]].After(dates[keys[j]])
		}
		return keys[i] < keys[j] // tie-break stabil
	})
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}

	out := make([]SessionFeedItem, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byKey[k])
	}
	return out
}

// RankNeedsAttention: siswa dengan absen tanpa keterangan atau kehadiran
// rendah. Urut: jumlah absen turun, lalu persentase naik.
func RankNeedsAttention(rows []attendanceModel.AttendanceRecordModel, names map[uuid.UUID]string, sections map[uuid.UUID]sectionInfo, n int) []AttentionItem {
	type key struct {
		section uuid.UUID
		student uuid.UUID
	}
	byStudent := make(map[key][]attendanceModel.AttendanceRecordModel)
	for i := range rows {
		k := key{rows[i].AttendanceRecordSectionID, rows[i].AttendanceRecordStudentID}
		byStudent[k] = append(byStudent[k], rows[i])
	}

	out := make([]AttentionItem, 0)
	for k, studentRows := range byStudent {
		pr := attendanceService.ComputePercentage(studentRows)
		absent := 0
		for i := range studentRows {
			if studentRows[i].AttendanceRecordStatus == attendanceModel.AttendanceStatusAbsent {
				absent++
			}
		}
		if absent == 0 && pr.Pct >= constants.AttentionAttendanceMinPct {
			continue
		}
		out = append(out, AttentionItem{
			StudentID:     k.student,
			StudentName:   names[k.student],
			SectionID:     k.section,
			SectionName:   sections[k.section].Name,
			AbsentCount:   absent,
			AttendancePct: pr.Pct,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AbsentCount != out[j].AbsentCount {
			return out[i].AbsentCount > out[j].AbsentCount
		}
		if out[i].AttendancePct != out[j].AttendancePct {
			return out[i].AttendancePct < out[j].AttendancePct
		}
		return out[i].StudentName < out[j].StudentName
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

/* =========================
   Service (akses data)
========================= */

type DashboardService struct{ DB *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// loadSections: peta section → info, untuk join di memori (hindari N+1).
func (s *DashboardService) loadSections(db *gorm.DB, program string) (map[uuid.UUID]sectionInfo, error) {
	q := db.Model(&sectionModel.ClassSectionModel{}).
		Where("class_section_is_active = ?", true)
	if program != "" {
		q = q.Where("class_section_program = ?", program)
	}

	var rows []sectionModel.ClassSectionModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]sectionInfo, len(rows))
	for i := range rows {
		program := ""
		if rows[i].ClassSectionProgram != nil {
			program = *rows[i].ClassSectionProgram
		}
		out[rows[i].ClassSectionID] = sectionInfo{
			Name:    rows[i].ClassSectionName,
			Program: program,
		}
	}
	return out, nil
}

func (s *DashboardService) loadRecords(db *gorm.DB, sections map[uuid.UUID]sectionInfo, from, to time.Time) ([]attendanceModel.AttendanceRecordModel, error) {
	ids := make([]uuid.UUID, 0, len(sections))
	for id := range sections {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []attendanceModel.AttendanceRecordModel
	err := db.
		Where("attendance_record_section_id IN ?", ids).
		Where("attendance_record_date >= ? AND attendance_record_date <= ?", from, to).
		Find(&rows).Error
	return rows, err
}

// ClassSummaries: ringkasan kehadiran per kelas dalam rentang tanggal.
func (s *DashboardService) ClassSummaries(db *gorm.DB, program string, from, to time.Time) ([]ClassSummary, error) {
	sections, err := s.loadSections(db, program)
	if err != nil {
		return nil, err
	}
	rows, err := s.loadRecords(db, sections, from, to)
	if err != nil {
		return nil, err
	}
	return SummarizeClasses(rows, sections), nil
}

// RecentSessions: feed sesi absensi terbaru.
func (s *DashboardService) RecentSessions(db *gorm.DB, program string, from, to time.Time, limit int) ([]SessionFeedItem, error) {
	sections, err := s.loadSections(db, program)
	if err != nil {
		return nil, err
	}
	rows, err := s.loadRecords(db, sections, from, to)
	if err != nil {
		return nil, err
	}
	return BuildSessionFeed(rows, sections, limit), nil
}

// Overview: ketiga rollup sekaligus dari satu snapshot baca yang sama,
// supaya angka antar-panel konsisten.
type Overview struct {
	PerClass       []ClassSummary    `json:"per_class"`
	RecentSessions []SessionFeedItem `json:"recent_sessions"`
	AttentionList  []AttentionItem   `json:"attention_list"`
}

func (s *DashboardService) BuildOverview(db *gorm.DB, program string, from, to time.Time, limit int) (*Overview, error) {
	sections, err := s.loadSections(db, program)
	if err != nil {
		return nil, err
	}
	rows, err := s.loadRecords(db, sections, from, to)
	if err != nil {
		return nil, err
	}
	names, err := s.loadStudentNames(db, sections)
	if err != nil {
		return nil, err
	}
	return &Overview{
		PerClass:       SummarizeClasses(rows, sections),
		RecentSessions: BuildSessionFeed(rows, sections, limit),
		AttentionList:  RankNeedsAttention(rows, names, sections, limit),
	}, nil
}

// NeedsAttention: siswa yang perlu perhatian wali kelas.
func (s *DashboardService) NeedsAttention(db *gorm.DB, program string, from, to time.Time, limit int) ([]AttentionItem, error) {
	sections, err := s.loadSections(db, program)
	if err != nil {
		return nil, err
	}
	rows, err := s.loadRecords(db, sections, from, to)
	if err != nil {
		return nil, err
	}

	names, err := s.loadStudentNames(db, sections)
	if err != nil {
		return nil, err
	}
	return RankNeedsAttention(rows, names, sections, limit), nil
}

func (s *DashboardService) loadStudentNames(db *gorm.DB, sections map[uuid.UUID]sectionInfo) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(sections))
	for id := range sections {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	var members []sectionModel.ClassStudentModel
	if err := db.
		Where("class_student_section_id IN ?", ids).
		Find(&members).Error; err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]string, len(members))
	for i := range members {
		out[members[i].ClassStudentStudentID] = members[i].ClassStudentStudentName
	}
	return out, nil
}
