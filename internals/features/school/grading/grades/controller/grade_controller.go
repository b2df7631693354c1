// file: internals/features/school/grading/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"strings"

	helper "emaktab_backend/internals/helpers"

	termModel "emaktab_backend/internals/features/school/academics/academic_terms/model"
	gradeDTO "emaktab_backend/internals/features/school/grading/grades/dto"
	gradeModel "emaktab_backend/internals/features/school/grading/grades/model"
	gradeService "emaktab_backend/internals/features/school/grading/grades/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GradeController struct {
	DB      *gorm.DB
	Service *gradeService.GradeService
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db, Service: gradeService.NewGradeService(db)}
}

func (ctrl *GradeController) loadTerm(db *gorm.DB, termID uuid.UUID) (*termModel.AcademicTermModel, error) {
	var term termModel.AcademicTermModel
	if err := db.First(&term, "academic_term_id = ?", termID).Error; err != nil {
		return nil, err
	}
	return &term, nil
}

// GET /grades/eligibility?student_id=&section_id=&term_id=&agenda_id=
// Cek gerbang kehadiran sebelum guru membuka form nilai.
func (ctrl *GradeController) Eligibility(c *fiber.Ctx) error {
	parse := func(name string) (uuid.UUID, error) {
		return uuid.Parse(strings.TrimSpace(c.Query(name)))
	}
	studentID, err := parse("student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	sectionID, err := parse("section_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "section_id tidak valid")
	}
	termID, err := parse("term_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "term_id tidak valid")
	}
	agendaID, err := parse("agenda_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "agenda_id tidak valid")
	}

	db := ctrl.DB.WithContext(c.UserContext())
	term, err := ctrl.loadTerm(db, termID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Term tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	res, err := ctrl.Service.Eligibility(db, studentID, sectionID, agendaID,
		term.AcademicTermStartDate, term.AcademicTermEndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", res)
}

// POST /grades
// Simpan nilai; ditolak jika kehadiran siswa di bawah ambang.
func (ctrl *GradeController) Submit(c *fiber.Ctx) error {
	var req gradeDTO.SubmitGradeRequest
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

	var saved *gradeModel.GradeModel
	err = db.Transaction(func(tx *gorm.DB) error {
		g, err := ctrl.Service.SubmitGrade(tx,
			req.StudentID, req.SectionID, req.TermID, req.AgendaID,
			req.Score, req.Note,
			term.AcademicTermStartDate, term.AcademicTermEndDate)
		if err != nil {
			return err
		}
		saved = g
		return nil
	})
	if err != nil {
		var ge *gradeService.GateError
		switch {
		case errors.As(err, &ge):
			return helper.JsonErrorCode(c, fiber.StatusConflict, "ATTENDANCE_BELOW_THRESHOLD",
				"Kehadiran siswa di bawah ambang minimum penilaian", fiber.Map{
					"attended": ge.Attended,
					"total":    ge.Total,
					"pct":      ge.Pct,
					"min_pct":  ge.MinPct,
				})
		case errors.Is(err, gradeService.ErrScoreOutOfRange):
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, "SCORE_OUT_OF_RANGE", err.Error(), nil)
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonOK(c, "Nilai tersimpan", gradeDTO.FromModel(saved))
}

// GET /grades?student_id=&section_id=&term_id=&agenda_id=
func (ctrl *GradeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 30, 200)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&gradeModel.GradeModel{})
	for param, col := range map[string]string{
		"student_id": "grade_student_id",
		"section_id": "grade_section_id",
		"term_id":    "grade_term_id",
		"agenda_id":  "grade_agenda_id",
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

	var rows []gradeModel.GradeModel
	if err := q.
		Order("grade_updated_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", gradeDTO.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
