// file: internals/features/school/classes/class_agendas/controller/class_agenda_controller.go
package controller

import (
	"errors"
	"strings"

	helper "emaktab_backend/internals/helpers"

	agendaDTO "emaktab_backend/internals/features/school/classes/class_agendas/dto"
	agendaModel "emaktab_backend/internals/features/school/classes/class_agendas/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassAgendaController struct{ DB *gorm.DB }

func NewClassAgendaController(db *gorm.DB) *ClassAgendaController {
	return &ClassAgendaController{DB: db}
}

// POST /class-agendas
func (ctrl *ClassAgendaController) Create(c *fiber.Ctx) error {
	var req agendaDTO.CreateClassAgendaRequest
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
	return helper.JsonCreated(c, "Agenda mapel berhasil dibuat", agendaDTO.FromModel(m))
}

// GET /class-agendas?section_id=&active=
func (ctrl *ClassAgendaController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&agendaModel.ClassAgendaModel{})
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
		}
		q = q.Where("class_agenda_section_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		q = q.Where("class_agenda_is_active = ?", v == "1" || strings.EqualFold(v, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []agendaModel.ClassAgendaModel
	if err := q.Order("class_agenda_subject ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", agendaDTO.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /class-agendas/:id
func (ctrl *ClassAgendaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m agendaModel.ClassAgendaModel
	err = ctrl.DB.WithContext(c.UserContext()).
		First(&m, "class_agenda_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", agendaDTO.FromModel(&m))
}

// PATCH /class-agendas/:id
func (ctrl *ClassAgendaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req agendaDTO.UpdateClassAgendaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m agendaModel.ClassAgendaModel
	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "class_agenda_id = ?", id).Error; err != nil {
			return err
		}
		req.Apply(&m)
		return tx.Save(&m).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Agenda mapel diperbarui", agendaDTO.FromModel(&m))
}

// DELETE /class-agendas/:id (soft delete)
func (ctrl *ClassAgendaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&agendaModel.ClassAgendaModel{}, "class_agenda_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Agenda mapel dihapus", fiber.Map{"class_agenda_id": id})
}
