// file: internals/features/school/dashboard/service/dashboard_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	attendanceModel "emaktab_backend/internals/features/school/attendance/attendance_records/model"
)

var (
	sectionA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	sectionB = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	studentX = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	studentY = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
)

func row(section, student uuid.UUID, d int, status attendanceModel.AttendanceStatus) attendanceModel.AttendanceRecordModel {
	return attendanceModel.AttendanceRecordModel{
		AttendanceRecordSectionID: section,
		AttendanceRecordStudentID: student,
		AttendanceRecordDate:      time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC),
		AttendanceRecordStatus:    status,
	}
}

func testSections() map[uuid.UUID]sectionInfo {
	return map[uuid.UUID]sectionInfo{
		sectionA: {Name: "Tahfidz 1A", Program: "tahfidz"},
		sectionB: {Name: "Reguler 2B", Program: "reguler"},
	}
}

func TestSummarizeClasses(t *testing.T) {
	rows := []attendanceModel.AttendanceRecordModel{
		// section A: X hadir 2/2, Y hadir 1/2 → rata-rata 75
		row(sectionA, studentX, 1, attendanceModel.AttendanceStatusPresent),
		row(sectionA, studentX, 2, attendanceModel.AttendanceStatusPresent),
		row(sectionA, studentY, 1, attendanceModel.AttendanceStatusPresent),
		row(sectionA, studentY, 2, attendanceModel.AttendanceStatusAbsent),
		// section B: X hadir 2/2 → rata-rata 100
		row(sectionB, studentX, 1, attendanceModel.AttendanceStatusPresent),
		row(sectionB, studentX, 2, attendanceModel.AttendanceStatusPresent),
	}

	got := SummarizeClasses(rows, testSections())
	if len(got) != 2 {
		t.Fatalf("jumlah kelas = %d, mau 2", len(got))
	}
	// urut desc: B (100) sebelum A (75)
	if got[0].SectionID != sectionB || got[1].SectionID != sectionA {
		t.Fatalf("urutan salah: %v lalu %v", got[0].SectionName, got[1].SectionName)
	}
	if got[0].AvgAttendancePct != 100 {
		t.Errorf("avg B = %v, mau 100", got[0].AvgAttendancePct)
	}
	if got[1].AvgAttendancePct != 75 {
		t.Errorf("avg A = %v, mau 75", got[1].AvgAttendancePct)
	}
	if got[1].StudentCount != 2 {
		t.Errorf("student count A = %d, mau 2", got[1].StudentCount)
	}
	if got[1].StatusCounts["present"] != 3 || got[1].StatusCounts["absent"] != 1 {
		t.Errorf("status counts A = %v, mau present:3 absent:1", got[1].StatusCounts)
	}
	if got[1].LastSessionDate == nil || *got[1].LastSessionDate != "2026-03-02" {
		t.Errorf("last session A = %v, mau 2026-03-02", got[1].LastSessionDate)
	}
}

func TestSummarizeClassesTieBreakByName(t *testing.T) {
	rows := []attendanceModel.AttendanceRecordModel{
		row(sectionA, studentX, 1, attendanceModel.AttendanceStatusPresent),
		row(sectionB, studentY, 1, attendanceModel.AttendanceStatusPresent),
	}
	got := SummarizeClasses(rows, testSections())
	// kedua kelas 100%; "Reguler 2B" < "Tahfidz 1A" secara leksikal
	if got[0].SectionName != "Reguler 2B" {
		t.Fatalf("tie-break nama salah: %q duluan", got[0].SectionName)
	}
}

func TestBuildSessionFeed(t *testing.T) {
	agenda := uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc")
	rows := []attendanceModel.AttendanceRecordModel{
		row(sectionA, studentX, 1, attendanceModel.AttendanceStatusPresent),
		row(sectionA, studentY, 1, attendanceModel.AttendanceStatusAbsent),
		row(sectionA, studentX, 3, attendanceModel.AttendanceStatusPresent),
	}
	// sesi ber-agenda di tanggal sama dgn sesi manual = sesi terpisah
	withAgenda := row(sectionA, studentX, 1, attendanceModel.AttendanceStatusPresent)
	withAgenda.AttendanceRecordAgendaID = &agenda
	rows = append(rows, withAgenda)

	got := BuildSessionFeed(rows, testSections(), 0)
	if len(got) != 3 {
		t.Fatalf("jumlah sesi = %d, mau 3", len(got))
	}
	// terbaru dulu
	if got[0].Date != "2026-03-03" {
		t.Fatalf("sesi pertama %q, mau 2026-03-03", got[0].Date)
	}
	// sesi manual tgl 1: 1 hadir dari 2 tercatat
	for _, item := range got {
		if item.Date == "2026-03-01" && item.AgendaID == nil {
			if item.Present != 1 || item.Recorded != 2 {
				t.Fatalf("sesi manual: present/recorded = %d/%d, mau 1/2", item.Present, item.Recorded)
			}
		}
	}

	limited := BuildSessionFeed(rows, testSections(), 2)
	if len(limited) != 2 {
		t.Fatalf("limit 2 menghasilkan %d sesi", len(limited))
	}
}

func TestRankNeedsAttention(t *testing.T) {
	names := map[uuid.UUID]string{studentX: "Ahmad", studentY: "Budi"}

	rows := []attendanceModel.AttendanceRecordModel{
		// X: 2 absen dari 4 sesi → 50%, 2 alpa
		row(sectionA, studentX, 1, attendanceModel.AttendanceStatusAbsent),
		row(sectionA, studentX, 2, attendanceModel.AttendanceStatusAbsent),
		row(sectionA, studentX, 3, attendanceModel.AttendanceStatusPresent),
		row(sectionA, studentX, 4, attendanceModel.AttendanceStatusPresent),
		// Y: 0 alpa tapi sakit terus → 25%, tetap masuk daftar
		row(sectionA, studentY, 1, attendanceModel.AttendanceStatusSick),
		row(sectionA, studentY, 2, attendanceModel.AttendanceStatusSick),
		row(sectionA, studentY, 3, attendanceModel.AttendanceStatusSick),
		row(sectionA, studentY, 4, attendanceModel.AttendanceStatusPresent),
	}

	got := RankNeedsAttention(rows, names, testSections(), 0)
	if len(got) != 2 {
		t.Fatalf("jumlah siswa = %d, mau 2", len(got))
	}
	// alpa terbanyak duluan
	if got[0].StudentID != studentX || got[0].AbsentCount != 2 {
		t.Fatalf("peringkat pertama salah: %+v", got[0])
	}
	if got[1].StudentID != studentY || got[1].AttendancePct != 25 {
		t.Fatalf("peringkat kedua salah: %+v", got[1])
	}
}

func TestRankNeedsAttentionSkipsHealthy(t *testing.T) {
	names := map[uuid.UUID]string{studentX: "Ahmad"}
	rows := []attendanceModel.AttendanceRecordModel{
		row(sectionA, studentX, 1, attendanceModel.AttendanceStatusPresent),
		row(sectionA, studentX, 2, attendanceModel.AttendanceStatusPresent),
		row(sectionA, studentX, 3, attendanceModel.AttendanceStatusPresent),
		row(sectionA, studentX, 4, attendanceModel.AttendanceStatusSick), // 75%, 0 alpa
	}
	got := RankNeedsAttention(rows, names, testSections(), 0)
	if len(got) != 0 {
		t.Fatalf("siswa 75%% tanpa alpa tidak boleh masuk daftar, dapat %d", len(got))
	}
}
