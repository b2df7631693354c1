// file: internals/features/school/grading/grades/service/gate_test.go
package service

import (
	"errors"
	"testing"

	attendanceService "emaktab_backend/internals/features/school/attendance/attendance_records/service"
)

func TestCheckGate(t *testing.T) {
	cases := []struct {
		name string
		pr   attendanceService.PercentageResult
		pass bool
	}{
		{"nol persen gagal", attendanceService.PercentageResult{Attended: 0, Total: 10, Pct: 0}, false},
		{"tepat di bawah ambang gagal", attendanceService.PercentageResult{Attended: 599, Total: 1000, Pct: 59.9}, false},
		{"tepat di ambang lolos", attendanceService.PercentageResult{Attended: 6, Total: 10, Pct: 60}, true},
		{"jauh di atas ambang lolos", attendanceService.PercentageResult{Attended: 10, Total: 10, Pct: 100}, true},
		{"tanpa sesi sama sekali gagal", attendanceService.PercentageResult{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ge := CheckGate(c.pr)
			if (ge == nil) != c.pass {
				t.Fatalf("CheckGate(pct=%v) lolos=%v, mau %v", c.pr.Pct, ge == nil, c.pass)
			}
			if ge == nil {
				return
			}
			if !errors.Is(ge, ErrAttendanceBelowThreshold) {
				t.Errorf("GateError harus membungkus ErrAttendanceBelowThreshold")
			}
			if ge.Attended != c.pr.Attended || ge.Total != c.pr.Total || ge.Pct != c.pr.Pct {
				t.Errorf("angka kehadiran di GateError = %d/%d %.1f%%, mau %d/%d %.1f%%",
					ge.Attended, ge.Total, ge.Pct, c.pr.Attended, c.pr.Total, c.pr.Pct)
			}
		})
	}
}
