// file: internals/features/school/attendance/class_meetings/service/meeting_lifecycle_service.go
package service

import (
	"errors"
	"fmt"

	model "emaktab_backend/internals/features/school/attendance/class_meetings/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidTransition: perubahan status tidak diizinkan state machine.
var ErrInvalidTransition = errors.New("transisi status pertemuan tidak diizinkan")

/*
State machine pertemuan:

	scheduled → ongoing → completed (terminal)
	scheduled → canceled (terminal)
	scheduled → postponed → scheduled (boleh dijadwalkan ulang)
*/
var allowedTransitions = map[model.MeetingStatus][]model.MeetingStatus{
	model.MeetingStatusScheduled: {model.MeetingStatusOngoing, model.MeetingStatusCanceled, model.MeetingStatusPostponed},
	model.MeetingStatusOngoing:   {model.MeetingStatusCompleted},
	model.MeetingStatusPostponed: {model.MeetingStatusScheduled},
}

// CanTransition: cek matrix transisi. Status sama selalu no-op (idempoten).
func CanTransition(from, to model.MeetingStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// OpenForAttendance: satu-satunya gerbang otorisasi untuk tulis absensi.
func OpenForAttendance(status model.MeetingStatus) bool {
	return status == model.MeetingStatusOngoing || status == model.MeetingStatusCompleted
}

// ImplicitCompleteAllowed: penyelesaian implisit lewat flow simpan absensi.
// Dari completed = no-op; dari ongoing = transisi normal.
func ImplicitCompleteAllowed(from model.MeetingStatus) bool {
	return from == model.MeetingStatusOngoing || from == model.MeetingStatusCompleted
}

type MeetingLifecycleService struct{ DB *gorm.DB }

func NewMeetingLifecycleService(db *gorm.DB) *MeetingLifecycleService {
	return &MeetingLifecycleService{DB: db}
}

// Transition memindahkan status pertemuan (dengan lock baris supaya dua
// request bersamaan tidak saling menimpa).
func (s *MeetingLifecycleService) Transition(tx *gorm.DB, meetingID uuid.UUID, to model.MeetingStatus) (*model.ClassMeetingModel, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: status %q tidak dikenal", ErrInvalidTransition, to)
	}

	var m model.ClassMeetingModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "class_meeting_id = ?", meetingID).Error; err != nil {
		return nil, err
	}

	if m.ClassMeetingStatus == to {
		return &m, nil // idempoten
	}
	if !CanTransition(m.ClassMeetingStatus, to) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, m.ClassMeetingStatus, to)
	}

	m.ClassMeetingStatus = to
	if err := tx.Model(&model.ClassMeetingModel{}).
		Where("class_meeting_id = ?", meetingID).
		Update("class_meeting_status", to).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// CompleteForAttendance: penyelesaian implisit setelah simpan absensi.
// Harus idempoten: pertemuan yang sudah completed bukan error.
func (s *MeetingLifecycleService) CompleteForAttendance(tx *gorm.DB, m *model.ClassMeetingModel) error {
	if m.ClassMeetingStatus == model.MeetingStatusCompleted {
		return nil
	}
	if !ImplicitCompleteAllowed(m.ClassMeetingStatus) {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, m.ClassMeetingStatus, model.MeetingStatusCompleted)
	}
	m.ClassMeetingStatus = model.MeetingStatusCompleted
	return tx.Model(&model.ClassMeetingModel{}).
		Where("class_meeting_id = ?", m.ClassMeetingID).
		Update("class_meeting_status", model.MeetingStatusCompleted).Error
}
