// file: internals/features/school/grading/report_cards/controller/report_card_controller.go
package controller

import (
	"errors"
	"strings"

	helper "emaktab_backend/internals/helpers"

	termModel "emaktab_backend/internals/features/school/academics/academic_terms/model"
	cardDTO "emaktab_backend/internals/features/school/grading/report_cards/dto"
	cardModel "emaktab_backend/internals/features/school/grading/report_cards/model"
	cardService "emaktab_backend/internals/features/school/grading/report_cards/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportCardController struct {
	DB      *gorm.DB
	Service *cardService.ReportCardService
}

func NewReportCardController(db *gorm.DB) *ReportCardController {
	return &ReportCardController{DB: db, Service: cardService.NewReportCardService(db)}
}

func (ctrl *ReportCardController) loadTerm(db *gorm.DB, termID uuid.UUID) (*termModel.AcademicTermModel, error) {
	var term termModel.AcademicTermModel
	if err := db.First(&term, "academic_term_id = ?", termID).Error; err != nil {
		return nil, err
	}
	return &term, nil
}

// POST /report-cards/generate
// Generate (ulang) rapor satu siswa.
func (ctrl *ReportCardController) Generate(c *fiber.Ctx) error {
	var req cardDTO.GenerateReportCardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	db := ctrl.DB.WithContext(c.UserContext())
	term, err := ctrl.loadTerm(db, req.TermID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Term tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var card *cardModel.ReportCardModel
	err = db.Transaction(func(tx *gorm.DB) error {
		g, err := ctrl.Service.Generate(tx, req.StudentID, req.SectionID, req.TermID,
			term.AcademicTermStartDate, term.AcademicTermEndDate, req.Notes)
		if err != nil {
			return err
		}
		card = g
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Rapor dibuat", cardDTO.FromModel(card))
}

// POST /report-cards/generate-class
// Generate rapor seluruh siswa satu section; hasil per siswa.
func (ctrl *ReportCardController) GenerateForClass(c *fiber.Ctx) error {
	var req cardDTO.GenerateClassReportCardsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	db := ctrl.DB.WithContext(c.UserContext())
	term, err := ctrl.loadTerm(db, req.TermID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Term tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	result, err := ctrl.Service.GenerateForClass(db, req.SectionID, req.TermID,
		term.AcademicTermStartDate, term.AcademicTermEndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Generate rapor kelas selesai", result)
}

// GET /report-cards?student_id=&section_id=&term_id=
func (ctrl *ReportCardController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 30, 200)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&cardModel.ReportCardModel{})
	for param, col := range map[string]string{
		"student_id": "report_card_student_id",
		"section_id": "report_card_section_id",
		"term_id":    "report_card_term_id",
	} {
		if v := strings.TrimSpace(c.Query(param)); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, param+" tidak valid")
			}
			q = q.Where(col+" = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []cardModel.ReportCardModel
	if err := q.
		Order("report_card_generated_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", cardDTO.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /report-cards/:id
func (ctrl *ReportCardController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var card cardModel.ReportCardModel
	err = ctrl.DB.WithContext(c.UserContext()).
		First(&card, "report_card_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Rapor tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", cardDTO.FromModel(&card))
}
