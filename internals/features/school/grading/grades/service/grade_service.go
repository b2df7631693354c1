// file: internals/features/school/grading/grades/service/grade_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"emaktab_backend/internals/constants"
	attendanceService "emaktab_backend/internals/features/school/attendance/attendance_records/service"
	"emaktab_backend/internals/features/school/grading/grades/model"
)

var (
	// ErrAttendanceBelowThreshold: kehadiran siswa di bawah gerbang minimum.
	ErrAttendanceBelowThreshold = errors.New("kehadiran di bawah ambang minimum penilaian")
	// ErrScoreOutOfRange: skor di luar 0–100.
	ErrScoreOutOfRange = errors.New("skor harus 0–100")
)

// GateError membungkus ErrAttendanceBelowThreshold plus angka kehadiran
// aktual, supaya controller bisa menampilkan persentase ke guru.
type GateError struct {
	Pct      float64
	Attended int
	Total    int
	MinPct   float64
}

func (e *GateError) Error() string {
	return fmt.Sprintf("%v (%.1f%% < %.0f%%)", ErrAttendanceBelowThreshold, e.Pct, e.MinPct)
}

func (e *GateError) Unwrap() error { return ErrAttendanceBelowThreshold }

// CheckGate membandingkan kehadiran dengan ambang minimum penilaian.
// nil = lolos; selain itu *GateError membawa angka kehadiran aktual.
func CheckGate(pr attendanceService.PercentageResult) *GateError {
	if pr.Pct >= constants.GradingAttendanceMinPct {
		return nil
	}
	return &GateError{
		Pct:      pr.Pct,
		Attended: pr.Attended,
		Total:    pr.Total,
		MinPct:   constants.GradingAttendanceMinPct,
	}
}

/* =========================
   Service
========================= */

type GradeService struct {
	DB         *gorm.DB
	Attendance *attendanceService.AttendanceLedgerService
}

func NewGradeService(db *gorm.DB) *GradeService {
	return &GradeService{
		DB:         db,
		Attendance: attendanceService.NewAttendanceLedgerService(db),
	}
}

// Eligibility mengembalikan kehadiran siswa utk satu agenda dalam rentang
// term, plus apakah sudah lolos gerbang penilaian. Read-only.
type EligibilityResult struct {
	Attended int     `json:"attended"`
	Total    int     `json:"total"`
	Pct      float64 `json:"pct"`
	MinPct   float64 `json:"min_pct"`
	Eligible bool    `json:"eligible"`
}

func (s *GradeService) Eligibility(tx *gorm.DB, studentID, sectionID, agendaID uuid.UUID, termStart, termEnd time.Time) (EligibilityResult, error) {
	pr, err := s.Attendance.Percentage(tx, studentID, sectionID, &agendaID, termStart, termEnd)
	if err != nil {
		return EligibilityResult{}, err
	}
	return EligibilityResult{
		Attended: pr.Attended,
		Total:    pr.Total,
		Pct:      pr.Pct,
		MinPct:   constants.GradingAttendanceMinPct,
		Eligible: CheckGate(pr) == nil,
	}, nil
}

/* =========================================
   SubmitGrade
   Urutan di dalam transaksi:
     1. kunci / buat baris nilai (write intent dulu),
     2. BARU baca ulang persentase kehadiran,
     3. gerbang + derivasi + simpan.
   Absensi susulan yang masuk setelah langkah 1 akan antre di belakang
   transaksi ini, jadi gerbang tidak pernah menilai data basi.
========================================= */

func (s *GradeService) SubmitGrade(tx *gorm.DB, studentID, sectionID, termID, agendaID uuid.UUID, score int, note *string, termStart, termEnd time.Time) (*model.GradeModel, error) {
	if score < 0 || score > 100 {
		return nil, ErrScoreOutOfRange
	}

	// 1) Ambil baris existing FOR UPDATE; kalau belum ada, tanam baris
	//    not_graded dulu sebagai write intent lalu kunci.
	var g model.GradeModel
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("grade_student_id = ? AND grade_section_id = ? AND grade_term_id = ? AND grade_agenda_id = ?",
			studentID, sectionID, termID, agendaID).
		First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed := model.GradeModel{
			GradeStudentID:  studentID,
			GradeSectionID:  sectionID,
			GradeTermID:     termID,
			GradeAgendaID:   agendaID,
			GradePassStatus: model.GradePassStatusNotGraded,
		}
		if err := tx.
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "grade_student_id"},
					{Name: "grade_section_id"},
					{Name: "grade_term_id"},
					{Name: "grade_agenda_id"},
				},
				DoNothing: true,
			}).
			Create(&seed).Error; err != nil {
			return nil, err
		}
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("grade_student_id = ? AND grade_section_id = ? AND grade_term_id = ? AND grade_agenda_id = ?",
				studentID, sectionID, termID, agendaID).
			First(&g).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	// 2) Baca ulang kehadiran SETELAH baris terkunci.
	pr, err := s.Attendance.Percentage(tx, studentID, sectionID, &agendaID, termStart, termEnd)
	if err != nil {
		return nil, err
	}

	// 3) Gerbang kehadiran.
	if ge := CheckGate(pr); ge != nil {
		return nil, ge
	}

	lg := DeriveLetter(score)
	pass := model.GradePassStatusFailed
	if lg.Passed {
		pass = model.GradePassStatusPassed
	}

	g.GradeScore = &score
	g.GradeLetter = &lg.Letter
	g.GradeDescription = &lg.Description
	g.GradePassStatus = pass
	g.GradeNote = note
	g.GradeAttendancePct = &pr.Pct
	g.GradeUpdatedAt = time.Now()

	if err := tx.Save(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}
