package service

import (
	"testing"

	model "emaktab_backend/internals/features/school/attendance/class_meetings/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from model.MeetingStatus
		to   model.MeetingStatus
		want bool
	}{
		{name: "scheduled to ongoing", from: model.MeetingStatusScheduled, to: model.MeetingStatusOngoing, want: true},
		{name: "scheduled to canceled", from: model.MeetingStatusScheduled, to: model.MeetingStatusCanceled, want: true},
		{name: "scheduled to postponed", from: model.MeetingStatusScheduled, to: model.MeetingStatusPostponed, want: true},
		{name: "scheduled to completed", from: model.MeetingStatusScheduled, to: model.MeetingStatusCompleted, want: false},
		{name: "ongoing to completed", from: model.MeetingStatusOngoing, to: model.MeetingStatusCompleted, want: true},
		{name: "ongoing to canceled", from: model.MeetingStatusOngoing, to: model.MeetingStatusCanceled, want: false},
		{name: "ongoing to scheduled", from: model.MeetingStatusOngoing, to: model.MeetingStatusScheduled, want: false},
		{name: "postponed to scheduled", from: model.MeetingStatusPostponed, to: model.MeetingStatusScheduled, want: true},
		{name: "postponed to ongoing", from: model.MeetingStatusPostponed, to: model.MeetingStatusOngoing, want: false},
		{name: "completed to ongoing", from: model.MeetingStatusCompleted, to: model.MeetingStatusOngoing, want: false},
		{name: "canceled to scheduled", from: model.MeetingStatusCanceled, to: model.MeetingStatusScheduled, want: false},
		// status sama = no-op idempoten, bukan error
		{name: "completed to completed", from: model.MeetingStatusCompleted, to: model.MeetingStatusCompleted, want: true},
		{name: "canceled to canceled", from: model.MeetingStatusCanceled, to: model.MeetingStatusCanceled, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOpenForAttendance(t *testing.T) {
	tests := []struct {
		status model.MeetingStatus
		want   bool
	}{
		{model.MeetingStatusScheduled, false},
		{model.MeetingStatusOngoing, true},
		{model.MeetingStatusCompleted, true},
		{model.MeetingStatusCanceled, false},
		{model.MeetingStatusPostponed, false},
	}
	for _, tt := range tests {
		if got := OpenForAttendance(tt.status); got != tt.want {
			t.Errorf("OpenForAttendance(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestImplicitCompleteAllowed(t *testing.T) {
	tests := []struct {
		status model.MeetingStatus
		want   bool
	}{
		{model.MeetingStatusOngoing, true},
		{model.MeetingStatusCompleted, true}, // no-op, bukan error
		{model.MeetingStatusScheduled, false},
		{model.MeetingStatusCanceled, false},
		{model.MeetingStatusPostponed, false},
	}
	for _, tt := range tests {
		if got := ImplicitCompleteAllowed(tt.status); got != tt.want {
			t.Errorf("ImplicitCompleteAllowed(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
