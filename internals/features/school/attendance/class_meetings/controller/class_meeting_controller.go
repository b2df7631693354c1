// file: internals/features/school/attendance/class_meetings/controller/class_meeting_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	helper "emaktab_backend/internals/helpers"

	meetingDTO "emaktab_backend/internals/features/school/attendance/class_meetings/dto"
	meetingModel "emaktab_backend/internals/features/school/attendance/class_meetings/model"
	meetingService "emaktab_backend/internals/features/school/attendance/class_meetings/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassMeetingController struct {
	DB        *gorm.DB
	Lifecycle *meetingService.MeetingLifecycleService
}

func NewClassMeetingController(db *gorm.DB) *ClassMeetingController {
	return &ClassMeetingController{
		DB:        db,
		Lifecycle: meetingService.NewMeetingLifecycleService(db),
	}
}

// POST /class-meetings
func (ctrl *ClassMeetingController) Create(c *fiber.Ctx) error {
	var req meetingDTO.CreateClassMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Pertemuan berhasil dibuat", meetingDTO.FromModel(m))
}

// GET /class-meetings?section_id=&agenda_id=&month=YYYY-MM&status=
func (ctrl *ClassMeetingController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&meetingModel.ClassMeetingModel{})
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		q = q.Where("class_meeting_section_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("agenda_id")); v != "" {
		if strings.EqualFold(v, "manual") {
			q = q.Where("class_meeting_agenda_id IS NULL")
		} else {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "agenda_id tidak valid")
			}
			q = q.Where("class_meeting_agenda_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("month")); v != "" {
		start, err := time.ParseInLocation("2006-01", v, time.Local)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter month harus YYYY-MM")
		}
		end := start.AddDate(0, 1, 0)
		q = q.Where("class_meeting_date >= ? AND class_meeting_date < ?", start, end)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		st := meetingModel.MeetingStatus(strings.ToLower(v))
		if !st.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak dikenal")
		}
		q = q.Where("class_meeting_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []meetingModel.ClassMeetingModel
	if err := q.Order("class_meeting_date DESC, class_meeting_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", meetingDTO.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /class-meetings/:id
func (ctrl *ClassMeetingController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m meetingModel.ClassMeetingModel
	err = ctrl.DB.WithContext(c.UserContext()).
		First(&m, "class_meeting_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertemuan tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", meetingDTO.FromModel(&m))
}

// PATCH /class-meetings/:id (materi / guru pengganti; bukan status)
func (ctrl *ClassMeetingController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req meetingDTO.UpdateClassMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m meetingModel.ClassMeetingModel
	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "class_meeting_id = ?", id).Error; err != nil {
			return err
		}
		if req.ClassMeetingMaterial != nil {
			v := strings.TrimSpace(*req.ClassMeetingMaterial)
			if v == "" {
				m.ClassMeetingMaterial = nil
			} else {
				m.ClassMeetingMaterial = &v
			}
		}
		if req.ClassMeetingTeacherID != nil {
			if *req.ClassMeetingTeacherID == uuid.Nil {
				m.ClassMeetingTeacherID = nil
			} else {
				m.ClassMeetingTeacherID = req.ClassMeetingTeacherID
			}
		}
		return tx.Save(&m).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pertemuan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Pertemuan diperbarui", meetingDTO.FromModel(&m))
}

// POST /class-meetings/:id/transition
func (ctrl *ClassMeetingController) Transition(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req meetingDTO.TransitionClassMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var out *meetingModel.ClassMeetingModel
	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		m, err := ctrl.Lifecycle.Transition(tx, id, req.ClassMeetingStatus)
		if err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pertemuan tidak ditemukan")
		}
		if errors.Is(err, meetingService.ErrInvalidTransition) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, "INVALID_TRANSITION", err.Error(), nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Status pertemuan diperbarui", meetingDTO.FromModel(out))
}

// DELETE /class-meetings/:id (soft delete, hanya scheduled/postponed)
func (ctrl *ClassMeetingController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m meetingModel.ClassMeetingModel
		if err := tx.First(&m, "class_meeting_id = ?", id).Error; err != nil {
			return err
		}
		if m.ClassMeetingStatus != meetingModel.MeetingStatusScheduled &&
			m.ClassMeetingStatus != meetingModel.MeetingStatusPostponed {
			return fiber.NewError(fiber.StatusConflict, "Pertemuan yang sudah berjalan tidak bisa dihapus")
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pertemuan tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Pertemuan dihapus", fiber.Map{"class_meeting_id": id})
}
