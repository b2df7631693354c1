package service

import (
	"testing"
	"time"

	model "emaktab_backend/internals/features/school/attendance/attendance_records/model"

	"github.com/google/uuid"
)

var (
	sectionA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	agendaA  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	agendaB  = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func rec(d int, agenda *uuid.UUID, status model.AttendanceStatus) model.AttendanceRecordModel {
	return model.AttendanceRecordModel{
		AttendanceRecordSectionID: sectionA,
		AttendanceRecordDate:      day(d),
		AttendanceRecordAgendaID:  agenda,
		AttendanceRecordStatus:    status,
	}
}

func TestSessionKey(t *testing.T) {
	tests := []struct {
		name     string
		a, b     model.AttendanceRecordModel
		sameness bool
	}{
		{
			name:     "same date same agenda collapse",
			a:        rec(1, &agendaA, model.AttendanceStatusPresent),
			b:        rec(1, &agendaA, model.AttendanceStatusAbsent),
			sameness: true,
		},
		{
			name:     "same date different agenda stay apart",
			a:        rec(1, &agendaA, model.AttendanceStatusPresent),
			b:        rec(1, &agendaB, model.AttendanceStatusPresent),
			sameness: false,
		},
		{
			name:     "nil agenda and zero agenda both manual",
			a:        rec(1, nil, model.AttendanceStatusPresent),
			b:        rec(1, &uuid.Nil, model.AttendanceStatusPresent),
			sameness: true,
		},
		{
			name:     "different dates stay apart",
			a:        rec(1, &agendaA, model.AttendanceStatusPresent),
			b:        rec(2, &agendaA, model.AttendanceStatusPresent),
			sameness: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka := SessionKey(tt.a.AttendanceRecordSectionID, tt.a.AttendanceRecordDate, tt.a.AttendanceRecordAgendaID)
			kb := SessionKey(tt.b.AttendanceRecordSectionID, tt.b.AttendanceRecordDate, tt.b.AttendanceRecordAgendaID)
			if (ka == kb) != tt.sameness {
				t.Errorf("SessionKey sameness = %v, want %v (%s vs %s)", ka == kb, tt.sameness, ka, kb)
			}
		})
	}
}

// Target ON CONFLICT harus identik dengan constraint
// uq_attendance_records_session; kolom kunci tidak boleh ikut di-update
// supaya simpan kedua meng-update baris yang sama, bukan menduplikat.
func TestUpsertClauseMatchesSessionConstraint(t *testing.T) {
	wantKey := []string{
		"attendance_record_student_id",
		"attendance_record_section_id",
		"attendance_record_date",
		"attendance_record_agenda_id",
	}
	if len(upsertColumns) != len(wantKey) {
		t.Fatalf("upsertColumns punya %d kolom, want %d", len(upsertColumns), len(wantKey))
	}
	for i, col := range upsertColumns {
		if col.Name != wantKey[i] {
			t.Errorf("upsertColumns[%d] = %s, want %s", i, col.Name, wantKey[i])
		}
	}

	key := make(map[string]bool, len(wantKey))
	for _, c := range wantKey {
		key[c] = true
	}
	for _, col := range upsertAssignments {
		if key[col] {
			t.Errorf("kolom kunci %s ikut di DoUpdates", col)
		}
	}
}

func TestDefaultFillCandidates(t *testing.T) {
	studentA := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	studentB := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	studentC := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003")
	active := map[uuid.UUID]bool{studentA: true, studentB: true, studentC: true}

	tests := []struct {
		name        string
		defaultFill bool
		submitted   map[uuid.UUID]bool
		existing    []uuid.UUID
		want        map[uuid.UUID]bool
	}{
		{
			name:        "tanpa flag tidak ada yang diisi",
			defaultFill: false,
			submitted:   map[uuid.UUID]bool{},
			want:        map[uuid.UUID]bool{},
		},
		{
			name:        "semua kosong terisi",
			defaultFill: true,
			submitted:   map[uuid.UUID]bool{},
			want:        map[uuid.UUID]bool{studentA: true, studentB: true, studentC: true},
		},
		{
			name:        "yang dikirim dan yang sudah punya baris dilewati",
			defaultFill: true,
			submitted:   map[uuid.UUID]bool{studentA: true},
			existing:    []uuid.UUID{studentB},
			want:        map[uuid.UUID]bool{studentC: true},
		},
		{
			name:        "baris existing tidak pernah ditimpa",
			defaultFill: true,
			submitted:   map[uuid.UUID]bool{},
			existing:    []uuid.UUID{studentA, studentB, studentC},
			want:        map[uuid.UUID]bool{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultFillCandidates(tt.defaultFill, active, tt.submitted, tt.existing)
			if len(got) != len(tt.want) {
				t.Fatalf("DefaultFillCandidates() = %v, want %d kandidat", got, len(tt.want))
			}
			for _, id := range got {
				if !tt.want[id] {
					t.Errorf("kandidat tak terduga: %s", id)
				}
			}
		})
	}
}

func TestComputePercentage(t *testing.T) {
	tests := []struct {
		name         string
		rows         []model.AttendanceRecordModel
		wantAttended int
		wantTotal    int
		wantPct      float64
	}{
		{
			name:    "no rows means zero not panic",
			rows:    nil,
			wantPct: 0,
		},
		{
			name: "5 of 10 sessions attended",
			rows: func() []model.AttendanceRecordModel {
				var out []model.AttendanceRecordModel
				for d := 1; d <= 5; d++ {
					out = append(out, rec(d, &agendaA, model.AttendanceStatusPresent))
				}
				for d := 6; d <= 10; d++ {
					out = append(out, rec(d, &agendaA, model.AttendanceStatusAbsent))
				}
				return out
			}(),
			wantAttended: 5, wantTotal: 10, wantPct: 50,
		},
		{
			name: "duplicate rows on one logical session count once",
			rows: []model.AttendanceRecordModel{
				rec(1, &agendaA, model.AttendanceStatusAbsent),
				rec(1, &agendaA, model.AttendanceStatusPresent),
				rec(2, &agendaA, model.AttendanceStatusPresent),
			},
			wantAttended: 2, wantTotal: 2, wantPct: 100,
		},
		{
			name: "sick and excused are not attended",
			rows: []model.AttendanceRecordModel{
				rec(1, &agendaA, model.AttendanceStatusSick),
				rec(2, &agendaA, model.AttendanceStatusExcused),
				rec(3, &agendaA, model.AttendanceStatusDispensation),
				rec(4, &agendaA, model.AttendanceStatusPresent),
			},
			wantAttended: 1, wantTotal: 4, wantPct: 25,
		},
		{
			name: "manual and agenda sessions on same day both count",
			rows: []model.AttendanceRecordModel{
				rec(1, nil, model.AttendanceStatusPresent),
				rec(1, &agendaA, model.AttendanceStatusPresent),
			},
			wantAttended: 2, wantTotal: 2, wantPct: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePercentage(tt.rows)
			if got.Attended != tt.wantAttended || got.Total != tt.wantTotal || got.Pct != tt.wantPct {
				t.Errorf("ComputePercentage() = %+v, want attended=%d total=%d pct=%v",
					got, tt.wantAttended, tt.wantTotal, tt.wantPct)
			}
		})
	}
}
