// file: internals/features/school/grading/report_cards/service/report_card_service_test.go
package service

import (
	"testing"

	"emaktab_backend/internals/constants"
	gradeModel "emaktab_backend/internals/features/school/grading/grades/model"
	"emaktab_backend/internals/features/school/grading/report_cards/model"
)

func graded(score int) gradeModel.GradeModel {
	s := score
	pass := gradeModel.GradePassStatusPassed
	if score < 60 {
		pass = gradeModel.GradePassStatusFailed
	}
	return gradeModel.GradeModel{GradeScore: &s, GradePassStatus: pass}
}

func TestPredicate(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{95, constants.PredicateSangatMemuaskan},
		{90, constants.PredicateSangatMemuaskan},
		{89.9, constants.PredicateMemuaskan},
		{80, constants.PredicateMemuaskan},
		{79.5, constants.PredicateCukup},
		{70, constants.PredicateCukup},
		{69.9, constants.PredicateKurang},
		{0, constants.PredicateKurang},
	}
	for _, c := range cases {
		if got := Predicate(c.avg); got != c.want {
			t.Errorf("Predicate(%.1f) = %q, mau %q", c.avg, got, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Run("satu mapel E menggagalkan rapor meski kehadiran cukup", func(t *testing.T) {
		// A, B, E dengan kehadiran 65%
		grades := []gradeModel.GradeModel{graded(92), graded(85), graded(40)}
		sum := Summarize(3, grades, 65)

		if sum.SubjectsGraded != 3 {
			t.Fatalf("graded = %d, mau 3", sum.SubjectsGraded)
		}
		if sum.SubjectsPassed != 2 || sum.SubjectsFailed != 1 {
			t.Fatalf("passed/failed = %d/%d, mau 2/1", sum.SubjectsPassed, sum.SubjectsFailed)
		}
		if sum.Passed {
			t.Fatalf("rapor harus gagal karena ada mapel E")
		}
	})

	t.Run("semua lulus dan kehadiran cukup", func(t *testing.T) {
		grades := []gradeModel.GradeModel{graded(90), graded(80)}
		sum := Summarize(2, grades, 75)

		if !sum.Passed {
			t.Fatalf("rapor harus lulus")
		}
		if sum.AverageScore == nil || *sum.AverageScore != 85 {
			t.Fatalf("average = %v, mau 85", sum.AverageScore)
		}
		if sum.Predicate != constants.PredicateMemuaskan {
			t.Fatalf("predicate = %q, mau %q", sum.Predicate, constants.PredicateMemuaskan)
		}
	})

	t.Run("kehadiran di bawah ambang menggagalkan rapor", func(t *testing.T) {
		grades := []gradeModel.GradeModel{graded(90), graded(80)}
		sum := Summarize(2, grades, 59.9)

		if sum.Passed {
			t.Fatalf("rapor harus gagal karena kehadiran < %v%%", constants.ReportPassAttendanceMinPct)
		}
	})

	t.Run("belum ada nilai berarti gagal", func(t *testing.T) {
		sum := Summarize(3, nil, 100)

		if sum.Passed {
			t.Fatalf("tanpa mapel dinilai rapor tidak boleh lulus")
		}
		if sum.AverageScore != nil {
			t.Fatalf("average harus nil, dapat %v", *sum.AverageScore)
		}
		if sum.Predicate != constants.PredicateKurang {
			t.Fatalf("predicate = %q, mau %q", sum.Predicate, constants.PredicateKurang)
		}
	})

	t.Run("generate ulang data sama tidak menggeser generated_at", func(t *testing.T) {
		avg := 85.0
		notes := "catatan wali kelas"
		base := model.ReportCardModel{
			ReportCardTotalSubjects:      3,
			ReportCardSubjectsGraded:     2,
			ReportCardSubjectsPassed:     2,
			ReportCardAverageScore:       &avg,
			ReportCardAttendanceAttended: 8,
			ReportCardAttendanceTotal:    10,
			ReportCardAttendancePct:      80,
			ReportCardPredicate:          constants.PredicateMemuaskan,
			ReportCardPassed:             true,
			ReportCardNotes:              &notes,
		}

		same := base
		sameAvg := avg
		sameNotes := notes
		same.ReportCardAverageScore = &sameAvg
		same.ReportCardNotes = &sameNotes
		if !aggregateUnchanged(&base, &same) {
			t.Fatalf("isi identik harus dianggap tidak berubah")
		}

		avgChanged := base
		otherAvg := 90.0
		avgChanged.ReportCardAverageScore = &otherAvg
		if aggregateUnchanged(&base, &avgChanged) {
			t.Fatalf("rata-rata berubah harus terdeteksi")
		}

		avgNil := base
		avgNil.ReportCardAverageScore = nil
		if aggregateUnchanged(&base, &avgNil) {
			t.Fatalf("rata-rata nil vs terisi harus terdeteksi")
		}

		notesChanged := base
		otherNotes := "catatan lain"
		notesChanged.ReportCardNotes = &otherNotes
		if aggregateUnchanged(&base, &notesChanged) {
			t.Fatalf("catatan berubah harus terdeteksi")
		}

		verdictChanged := base
		verdictChanged.ReportCardPassed = false
		if aggregateUnchanged(&base, &verdictChanged) {
			t.Fatalf("verdict berubah harus terdeteksi")
		}
	})

	t.Run("baris not_graded tidak ikut hitungan", func(t *testing.T) {
		grades := []gradeModel.GradeModel{
			graded(80),
			{GradePassStatus: gradeModel.GradePassStatusNotGraded}, // score NULL
		}
		sum := Summarize(2, grades, 90)

		if sum.SubjectsGraded != 1 {
			t.Fatalf("graded = %d, mau 1", sum.SubjectsGraded)
		}
		if sum.AverageScore == nil || *sum.AverageScore != 80 {
			t.Fatalf("average = %v, mau 80", sum.AverageScore)
		}
		if !sum.Passed {
			t.Fatalf("mapel belum dinilai bukan alasan gagal selama ada yang lulus")
		}
	})
}
