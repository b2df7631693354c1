// file: internals/features/school/academics/academic_terms/controller/academic_term_controller.go
package controller

import (
	"errors"
	"strings"

	helper "emaktab_backend/internals/helpers"

	termDTO "emaktab_backend/internals/features/school/academics/academic_terms/dto"
	termModel "emaktab_backend/internals/features/school/academics/academic_terms/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicTermController struct{ DB *gorm.DB }

func NewAcademicTermController(db *gorm.DB) *AcademicTermController {
	return &AcademicTermController{DB: db}
}

// POST /academic-terms
func (ctrl *AcademicTermController) Create(c *fiber.Ctx) error {
	var req termDTO.CreateAcademicTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		// Hanya satu term aktif: nonaktifkan yang lain dulu.
		if m.AcademicTermIsActive {
			if err := tx.Model(&termModel.AcademicTermModel{}).
				Where("academic_term_is_active = TRUE").
				Update("academic_term_is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Term akademik berhasil dibuat", termDTO.FromModel(m))
}

// GET /academic-terms?year=&active=
func (ctrl *AcademicTermController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&termModel.AcademicTermModel{})
	if y := strings.TrimSpace(c.Query("year")); y != "" {
		q = q.Where("academic_term_academic_year = ?", y)
	}
	if a := strings.TrimSpace(c.Query("active")); a != "" {
		q = q.Where("academic_term_is_active = ?", a == "1" || strings.EqualFold(a, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []termModel.AcademicTermModel
	if err := q.Order("academic_term_start_date DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", termDTO.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /academic-terms/active
func (ctrl *AcademicTermController) GetActive(c *fiber.Ctx) error {
	var m termModel.AcademicTermModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("academic_term_is_active = TRUE").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada term aktif")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", termDTO.FromModel(&m))
}

// GET /academic-terms/:id
func (ctrl *AcademicTermController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m termModel.AcademicTermModel
	err = ctrl.DB.WithContext(c.UserContext()).
		First(&m, "academic_term_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Term tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", termDTO.FromModel(&m))
}

// PATCH /academic-terms/:id
func (ctrl *AcademicTermController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req termDTO.UpdateAcademicTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m termModel.AcademicTermModel
	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "academic_term_id = ?", id).Error; err != nil {
			return err
		}
		req.Apply(&m)
		if m.AcademicTermEndDate.Before(m.AcademicTermStartDate) {
			return fiber.NewError(fiber.StatusBadRequest, "Tanggal akhir sebelum tanggal mulai")
		}
		if req.AcademicTermIsActive != nil && *req.AcademicTermIsActive {
			if err := tx.Model(&termModel.AcademicTermModel{}).
				Where("academic_term_is_active = TRUE AND academic_term_id <> ?", id).
				Update("academic_term_is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(&m).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Term tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Term akademik diperbarui", termDTO.FromModel(&m))
}

// DELETE /academic-terms/:id (soft delete)
func (ctrl *AcademicTermController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&termModel.AcademicTermModel{}, "academic_term_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Term tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Term akademik dihapus", fiber.Map{"academic_term_id": id})
}
