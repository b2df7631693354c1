// file: internals/features/school/classes/class_sections/controller/class_section_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	helper "emaktab_backend/internals/helpers"

	sectionDTO "emaktab_backend/internals/features/school/classes/class_sections/dto"
	sectionModel "emaktab_backend/internals/features/school/classes/class_sections/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section & roster dimiliki modul kesiswaan (eksternal); di sini read-only.
type ClassSectionController struct{ DB *gorm.DB }

func NewClassSectionController(db *gorm.DB) *ClassSectionController {
	return &ClassSectionController{DB: db}
}

// GET /class-sections?term_id=&program=&q=
func (ctrl *ClassSectionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&sectionModel.ClassSectionModel{})
	if v := strings.TrimSpace(c.Query("term_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "term_id tidak valid")
		}
		q = q.Where("class_section_term_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("program")); v != "" {
		q = q.Where("class_section_program = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("class_section_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []sectionModel.ClassSectionModel
	if err := q.Order("class_section_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", sectionDTO.FromSectionModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /class-sections/:id
func (ctrl *ClassSectionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m sectionModel.ClassSectionModel
	err = ctrl.DB.WithContext(c.UserContext()).
		First(&m, "class_section_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", sectionDTO.FromSectionModel(&m))
}

// GET /class-sections/:id/students?on=YYYY-MM-DD
// Roster aktif per tanggal (default: hari ini).
func (ctrl *ClassSectionController) ListStudents(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	on := time.Now()
	if v := strings.TrimSpace(c.Query("on")); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter on harus YYYY-MM-DD")
		}
		on = d
	}

	var rows []sectionModel.ClassStudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("class_student_section_id = ?", id).
		Order("class_student_student_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	active := make([]sectionModel.ClassStudentModel, 0, len(rows))
	for i := range rows {
		if rows[i].ActiveOn(on) {
			active = append(active, rows[i])
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"on":       on.Format("2006-01-02"),
		"students": sectionDTO.FromStudentModels(active),
	})
}
