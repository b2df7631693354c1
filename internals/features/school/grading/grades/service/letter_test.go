// file: internals/features/school/grading/grades/service/letter_test.go
package service

import "testing"

func TestDeriveLetter(t *testing.T) {
	cases := []struct {
		score  int
		letter string
		desc   string
		passed bool
	}{
		{0, "E", "Sangat Kurang", false},
		{59, "E", "Sangat Kurang", false},
		{60, "D", "Kurang", true},
		{69, "D", "Kurang", true},
		{70, "C", "Cukup", true},
		{79, "C", "Cukup", true},
		{80, "B", "Baik", true},
		{89, "B", "Baik", true},
		{90, "A", "Sangat Baik", true},
		{100, "A", "Sangat Baik", true},
	}
	for _, c := range cases {
		got := DeriveLetter(c.score)
		if got.Letter != c.letter {
			t.Errorf("DeriveLetter(%d).Letter = %q, mau %q", c.score, got.Letter, c.letter)
		}
		if got.Description != c.desc {
			t.Errorf("DeriveLetter(%d).Description = %q, mau %q", c.score, got.Description, c.desc)
		}
		if got.Passed != c.passed {
			t.Errorf("DeriveLetter(%d).Passed = %v, mau %v", c.score, got.Passed, c.passed)
		}
	}
}

func TestGateErrorUnwrap(t *testing.T) {
	ge := &GateError{Pct: 40, Attended: 4, Total: 10, MinPct: 60}
	if ge.Unwrap() != ErrAttendanceBelowThreshold {
		t.Fatalf("GateError harus membungkus ErrAttendanceBelowThreshold")
	}
	if ge.Error() == "" {
		t.Fatalf("pesan GateError kosong")
	}
}
