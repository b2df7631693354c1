package constants

import (
	"log"
	"os"
	"strconv"
)

// Ambang batas bisnis akademik. Nilai default sesuai kebijakan yayasan,
// bisa dioverride lewat ENV supaya tidak jadi magic number di kode.
var (
	// Minimal persentase kehadiran sebelum nilai boleh diinput.
	GradingAttendanceMinPct = 60.0

	// Di bawah ini siswa masuk daftar "perlu perhatian" di dashboard.
	AttentionAttendanceMinPct = 75.0

	// Minimal persentase kehadiran agar lulus semester di rapot.
	ReportPassAttendanceMinPct = 60.0

	// Batas bawah band predikat rapot (monoton turun).
	PredicateSangatMemuaskanMin = 90.0
	PredicateMemuaskanMin       = 80.0
	PredicateCukupMin           = 70.0
)

// Label predikat rapot.
const (
	PredicateSangatMemuaskan = "Sangat Memuaskan"
	PredicateMemuaskan       = "Memuaskan"
	PredicateCukup           = "Cukup"
	PredicateKurang          = "Kurang"
)

// LoadThresholds membaca override dari ENV (dipanggil sekali di main).
func LoadThresholds() {
	GradingAttendanceMinPct = envFloat("GRADING_ATTENDANCE_MIN_PCT", GradingAttendanceMinPct)
	AttentionAttendanceMinPct = envFloat("ATTENTION_ATTENDANCE_MIN_PCT", AttentionAttendanceMinPct)
	ReportPassAttendanceMinPct = envFloat("REPORT_PASS_ATTENDANCE_MIN_PCT", ReportPassAttendanceMinPct)
	PredicateSangatMemuaskanMin = envFloat("PREDICATE_SANGAT_MEMUASKAN_MIN", PredicateSangatMemuaskanMin)
	PredicateMemuaskanMin = envFloat("PREDICATE_MEMUASKAN_MIN", PredicateMemuaskanMin)
	PredicateCukupMin = envFloat("PREDICATE_CUKUP_MIN", PredicateCukupMin)
}

func envFloat(key string, def float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("⚠️ %s tidak valid (%q), pakai default %.0f", key, s, def)
		return def
	}
	return v
}
