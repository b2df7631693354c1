// file: internals/features/school/attendance/attendance_records/controller/attendance_record_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	helper "emaktab_backend/internals/helpers"

	attendanceDTO "emaktab_backend/internals/features/school/attendance/attendance_records/dto"
	attendanceModel "emaktab_backend/internals/features/school/attendance/attendance_records/model"
	attendanceService "emaktab_backend/internals/features/school/attendance/attendance_records/service"
	meetingModel "emaktab_backend/internals/features/school/attendance/class_meetings/model"
	sectionModel "emaktab_backend/internals/features/school/classes/class_sections/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRecordController struct {
	DB     *gorm.DB
	Ledger *attendanceService.AttendanceLedgerService
}

func NewAttendanceRecordController(db *gorm.DB) *AttendanceRecordController {
	return &AttendanceRecordController{
		DB:     db,
		Ledger: attendanceService.NewAttendanceLedgerService(db),
	}
}

// GET /class-meetings/:id/attendance
// Lembar absensi: roster aktif pada tanggal pertemuan + status tercatat.
func (ctrl *AttendanceRecordController) OpenAttendance(c *fiber.Ctx) error {
	meetingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var meeting meetingModel.ClassMeetingModel
	err = db.First(&meeting, "class_meeting_id = ?", meetingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertemuan tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var members []sectionModel.ClassStudentModel
	if err := db.
		Where("class_student_section_id = ?", meeting.ClassMeetingSectionID).
		Order("class_student_student_name ASC").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var records []attendanceModel.AttendanceRecordModel
	q := db.Where("attendance_record_section_id = ? AND attendance_record_date = ?",
		meeting.ClassMeetingSectionID, meeting.ClassMeetingDate)
	if meeting.ClassMeetingAgendaID != nil {
		q = q.Where("attendance_record_agenda_id = ?", *meeting.ClassMeetingAgendaID)
	} else {
		q = q.Where("attendance_record_agenda_id IS NULL")
	}
	if err := q.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	statusByStudent := make(map[uuid.UUID]attendanceModel.AttendanceStatus, len(records))
	for i := range records {
		statusByStudent[records[i].AttendanceRecordStudentID] = records[i].AttendanceRecordStatus
	}

	rows := make([]attendanceDTO.RosterAttendanceRow, 0, len(members))
	for i := range members {
		if !members[i].ActiveOn(meeting.ClassMeetingDate) {
			continue
		}
		row := attendanceDTO.RosterAttendanceRow{
			StudentID:   members[i].ClassStudentStudentID,
			StudentName: members[i].ClassStudentStudentName,
		}
		if st, ok := statusByStudent[row.StudentID]; ok {
			row.Status = &st
		}
		rows = append(rows, row)
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"meeting_id":     meeting.ClassMeetingID,
		"meeting_date":   meeting.ClassMeetingDate.Format("2006-01-02"),
		"meeting_status": meeting.ClassMeetingStatus,
		"roster":         rows,
	})
}

// POST /class-meetings/:id/attendance
// Simpan absensi batch; pertemuan ongoing diselesaikan implisit.
func (ctrl *AttendanceRecordController) SaveAttendance(c *fiber.Ctx) error {
	meetingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req attendanceDTO.SaveAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if !req.ValidStatuses() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status absensi tidak dikenal")
	}

	entries := make([]attendanceService.StudentEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, attendanceService.StudentEntry{StudentID: e.StudentID, Status: e.Status})
	}

	var result *attendanceService.BatchResult
	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		r, err := ctrl.Ledger.BatchRecord(tx, meetingID, entries, req.DefaultFill, req.Material)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Pertemuan tidak ditemukan")
		case errors.Is(err, attendanceService.ErrMeetingNotOpen):
			return helper.JsonErrorCode(c, fiber.StatusConflict, "MEETING_NOT_OPEN",
				"Pertemuan belum dibuka untuk absensi, ubah status dulu", nil)
		case errors.Is(err, attendanceService.ErrConflict):
			return helper.JsonErrorCode(c, fiber.StatusConflict, "CONFLICT", err.Error(), nil)
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonOK(c, "Absensi tersimpan", result)
}

// GET /attendance-records?section_id=&student_id=&agenda_id=&date=
func (ctrl *AttendanceRecordController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 30, 200)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&attendanceModel.AttendanceRecordModel{})
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		q = q.Where("attendance_record_section_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("attendance_record_student_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("agenda_id")); v != "" {
		if strings.EqualFold(v, "manual") {
			q = q.Where("attendance_record_agenda_id IS NULL")
		} else {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "agenda_id tidak valid")
			}
			q = q.Where("attendance_record_agenda_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter date harus YYYY-MM-DD")
		}
		q = q.Where("attendance_record_date = ?", d)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []attendanceModel.AttendanceRecordModel
	if err := q.Order("attendance_record_date DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", attendanceDTO.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
