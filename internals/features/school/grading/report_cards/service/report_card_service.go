// file: internals/features/school/grading/report_cards/service/report_card_service.go
package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"emaktab_backend/internals/constants"
	attendanceService "emaktab_backend/internals/features/school/attendance/attendance_records/service"
	sectionModel "emaktab_backend/internals/features/school/classes/class_sections/model"
	gradeModel "emaktab_backend/internals/features/school/grading/grades/model"
	"emaktab_backend/internals/features/school/grading/report_cards/model"
)

/* =========================
   Perhitungan murni
========================= */

// Predicate memetakan rata-rata nilai ke predikat rapor.
func Predicate(avg float64) string {
	switch {
	case avg >= constants.PredicateSangatMemuaskanMin:
		return constants.PredicateSangatMemuaskan
	case avg >= constants.PredicateMemuaskanMin:
		return constants.PredicateMemuaskan
	case avg >= constants.PredicateCukupMin:
		return constants.PredicateCukup
	default:
		return constants.PredicateKurang
	}
}

type ReportSummary struct {
	TotalSubjects  int
	SubjectsGraded int
	SubjectsPassed int
	SubjectsFailed int
	AverageScore   *float64 // nil jika belum ada yang dinilai
	Predicate      string
	Passed         bool
}

// Summarize merangkum nilai satu siswa jadi satu rapor.
// Aturan kelulusan: gagal jika ada mapel E, kehadiran di bawah ambang,
// atau belum ada satu pun mapel yang dinilai.
func Summarize(totalSubjects int, grades []gradeModel.GradeModel, attendancePct float64) ReportSummary {
	sum := ReportSummary{TotalSubjects: totalSubjects}

	var scoreSum int
	for i := range grades {
		if grades[i].GradeScore == nil {
			continue // belum dinilai, tidak ikut hitungan apa pun
		}
		sum.SubjectsGraded++
		scoreSum += *grades[i].GradeScore
		if grades[i].GradePassStatus == gradeModel.GradePassStatusPassed {
			sum.SubjectsPassed++
		} else {
			sum.SubjectsFailed++
		}
	}

	if sum.SubjectsGraded > 0 {
		avg := float64(scoreSum) / float64(sum.SubjectsGraded)
		sum.AverageScore = &avg
		sum.Predicate = Predicate(avg)
	} else {
		sum.Predicate = constants.PredicateKurang
	}

	sum.Passed = sum.SubjectsGraded > 0 &&
		sum.SubjectsFailed == 0 &&
		attendancePct >= constants.ReportPassAttendanceMinPct
	return sum
}

/* =========================
   Service
========================= */

type ReportCardService struct {
	DB         *gorm.DB
	Attendance *attendanceService.AttendanceLedgerService
}

func NewReportCardService(db *gorm.DB) *ReportCardService {
	return &ReportCardService{
		DB:         db,
		Attendance: attendanceService.NewAttendanceLedgerService(db),
	}
}

// countActiveAgendas: jumlah mapel (agenda aktif) di section — jadi
// penyebut total_subjects. Agenda nonaktif tidak dihitung.
func (s *ReportCardService) countActiveAgendas(tx *gorm.DB, sectionID uuid.UUID) (int, error) {
	var n int64
	err := tx.Table("class_agendas").
		Where("class_agenda_section_id = ? AND class_agenda_is_active = ? AND class_agenda_deleted_at IS NULL",
			sectionID, true).
		Count(&n).Error
	return int(n), err
}

// aggregateUnchanged: true jika isi rapor identik di seluruh permukaan
// hitung (totals, rata-rata, kehadiran, predikat, verdict, catatan).
// Kolom audit created/updated_at di luar permukaan banding.
func aggregateUnchanged(old, next *model.ReportCardModel) bool {
	return old.ReportCardTotalSubjects == next.ReportCardTotalSubjects &&
		old.ReportCardSubjectsGraded == next.ReportCardSubjectsGraded &&
		old.ReportCardSubjectsPassed == next.ReportCardSubjectsPassed &&
		old.ReportCardSubjectsFailed == next.ReportCardSubjectsFailed &&
		eqFloatPtr(old.ReportCardAverageScore, next.ReportCardAverageScore) &&
		old.ReportCardAttendanceAttended == next.ReportCardAttendanceAttended &&
		old.ReportCardAttendanceTotal == next.ReportCardAttendanceTotal &&
		old.ReportCardAttendancePct == next.ReportCardAttendancePct &&
		old.ReportCardPredicate == next.ReportCardPredicate &&
		old.ReportCardPassed == next.ReportCardPassed &&
		eqStrPtr(old.ReportCardNotes, next.ReportCardNotes)
}

func eqFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func eqStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Generate membuat (atau mengganti) rapor satu siswa. Idempoten:
// generate ulang dengan data sama menghasilkan rapor identik —
// generated_at hanya bergeser kalau isi rapornya berubah.
func (s *ReportCardService) Generate(tx *gorm.DB, studentID, sectionID, termID uuid.UUID, termStart, termEnd time.Time, notes *string) (*model.ReportCardModel, error) {
	totalSubjects, err := s.countActiveAgendas(tx, sectionID)
	if err != nil {
		return nil, err
	}

	var grades []gradeModel.GradeModel
	if err := tx.
		Where("grade_student_id = ? AND grade_section_id = ? AND grade_term_id = ?",
			studentID, sectionID, termID).
		Find(&grades).Error; err != nil {
		return nil, err
	}

	att, err := s.Attendance.StudentTermAggregate(tx, studentID, sectionID, termStart, termEnd)
	if err != nil {
		return nil, err
	}

	sum := Summarize(totalSubjects, grades, att.Pct)

	card := model.ReportCardModel{
		ReportCardStudentID:          studentID,
		ReportCardSectionID:          sectionID,
		ReportCardTermID:             termID,
		ReportCardTotalSubjects:      sum.TotalSubjects,
		ReportCardSubjectsGraded:     sum.SubjectsGraded,
		ReportCardSubjectsPassed:     sum.SubjectsPassed,
		ReportCardSubjectsFailed:     sum.SubjectsFailed,
		ReportCardAverageScore:       sum.AverageScore,
		ReportCardAttendanceAttended: att.Attended,
		ReportCardAttendanceTotal:    att.Total,
		ReportCardAttendancePct:      att.Pct,
		ReportCardPredicate:          sum.Predicate,
		ReportCardPassed:             sum.Passed,
		ReportCardNotes:              notes,
		ReportCardGeneratedAt:        time.Now(),
	}

	// Rapor lama dengan isi sama → pertahankan generated_at lamanya.
	var prev model.ReportCardModel
	errPrev := tx.
		Where("report_card_student_id = ? AND report_card_section_id = ? AND report_card_term_id = ?",
			studentID, sectionID, termID).
		First(&prev).Error
	switch {
	case errPrev == nil:
		if aggregateUnchanged(&prev, &card) {
			card.ReportCardGeneratedAt = prev.ReportCardGeneratedAt
		}
	case !errors.Is(errPrev, gorm.ErrRecordNotFound):
		return nil, errPrev
	}

	if err := tx.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "report_card_student_id"},
				{Name: "report_card_section_id"},
				{Name: "report_card_term_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"report_card_total_subjects",
				"report_card_subjects_graded",
				"report_card_subjects_passed",
				"report_card_subjects_failed",
				"report_card_average_score",
				"report_card_attendance_attended",
				"report_card_attendance_total",
				"report_card_attendance_pct",
				"report_card_predicate",
				"report_card_passed",
				"report_card_notes",
				"report_card_generated_at",
				"report_card_updated_at",
			}),
		}).
		Create(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

/* =========================================
   Generate satu kelas: fan-out per siswa dgn worker terbatas.
   Tiap siswa transaksinya sendiri — satu gagal tidak membatalkan
   yang lain; kegagalan dilaporkan per siswa.
========================================= */

type ClassGenerateFailure struct {
	StudentID uuid.UUID `json:"student_id"`
	Reason    string    `json:"reason"`
}

type ClassGenerateResult struct {
	Succeeded int                    `json:"succeeded"`
	Failed    []ClassGenerateFailure `json:"failed"`
}

const classGenerateWorkers = 4

func (s *ReportCardService) GenerateForClass(db *gorm.DB, sectionID, termID uuid.UUID, termStart, termEnd time.Time) (*ClassGenerateResult, error) {
	var members []sectionModel.ClassStudentModel
	if err := db.
		Where("class_student_section_id = ?", sectionID).
		Find(&members).Error; err != nil {
		return nil, err
	}

	studentIDs := make([]uuid.UUID, 0, len(members))
	for i := range members {
		if members[i].ActiveOn(termEnd) || members[i].ActiveOn(termStart) {
			studentIDs = append(studentIDs, members[i].ClassStudentStudentID)
		}
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result ClassGenerateResult
	)
	sem := make(chan struct{}, classGenerateWorkers)

	for _, sid := range studentIDs {
		sid := sid
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			err := db.Transaction(func(tx *gorm.DB) error {
				_, err := s.Generate(tx, sid, sectionID, termID, termStart, termEnd, nil)
				return err
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, ClassGenerateFailure{StudentID: sid, Reason: err.Error()})
			} else {
				result.Succeeded++
			}
		}()
	}
	wg.Wait()

	return &result, nil
}
