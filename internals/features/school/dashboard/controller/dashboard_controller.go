// file: internals/features/school/dashboard/controller/dashboard_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	helper "emaktab_backend/internals/helpers"

	termModel "emaktab_backend/internals/features/school/academics/academic_terms/model"
	dashboardService "emaktab_backend/internals/features/school/dashboard/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB      *gorm.DB
	Service *dashboardService.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db, Service: dashboardService.NewDashboardService(db)}
}

// resolveWindow: pakai ?month=YYYY-MM bila ada; selain itu rentang term
// aktif. Tanpa term aktif dan tanpa month → error.
func (ctrl *DashboardController) resolveWindow(c *fiber.Ctx, db *gorm.DB) (time.Time, time.Time, error) {
	if m := strings.TrimSpace(c.Query("month")); m != "" {
		start, err := time.Parse("2006-01", m)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("month harus format YYYY-MM")
		}
		end := start.AddDate(0, 1, -1)
		return start, end, nil
	}

	var term termModel.AcademicTermModel
	err := db.First(&term, "academic_term_is_active = ?", true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, time.Time{}, errors.New("tidak ada term aktif; kirim ?month=YYYY-MM")
	}
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return term.AcademicTermStartDate, term.AcademicTermEndDate, nil
}

func limitQuery(c *fiber.Ctx, def, max int) int {
	n, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// GET /dashboard?program=&month=&limit=
// Ketiga panel dalam satu snapshot konsisten.
func (ctrl *DashboardController) Overview(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	from, to, err := ctrl.resolveWindow(c, db)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	out, err := ctrl.Service.BuildOverview(db, strings.TrimSpace(c.Query("program")),
		from, to, limitQuery(c, 10, 50))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /dashboard/class-summary?program=&month=
func (ctrl *DashboardController) ClassSummary(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	from, to, err := ctrl.resolveWindow(c, db)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	out, err := ctrl.Service.ClassSummaries(db, strings.TrimSpace(c.Query("program")), from, to)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"from":    from.Format("2006-01-02"),
		"to":      to.Format("2006-01-02"),
		"classes": out,
	})
}

// GET /dashboard/recent-sessions?program=&month=&limit=
func (ctrl *DashboardController) RecentSessions(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	from, to, err := ctrl.resolveWindow(c, db)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	out, err := ctrl.Service.RecentSessions(db, strings.TrimSpace(c.Query("program")),
		from, to, limitQuery(c, 10, 50))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", fiber.Map{"sessions": out})
}

// GET /dashboard/needs-attention?program=&month=&limit=
func (ctrl *DashboardController) NeedsAttention(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	from, to, err := ctrl.resolveWindow(c, db)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	out, err := ctrl.Service.NeedsAttention(db, strings.TrimSpace(c.Query("program")),
		from, to, limitQuery(c, 10, 50))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", fiber.Map{"students": out})
}
