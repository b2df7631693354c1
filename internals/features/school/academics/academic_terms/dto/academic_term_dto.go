// file: internals/features/school/academics/academic_terms/dto/academic_term_dto.go
package dto

import (
	"strings"
	"time"

	model "emaktab_backend/internals/features/school/academics/academic_terms/model"

	"github.com/google/uuid"
)

/* ===============================
   Request
=================================*/

type CreateAcademicTermRequest struct {
	AcademicTermAcademicYear string    `json:"academic_term_academic_year" validate:"required,min=4,max=20"`
	AcademicTermName         string    `json:"academic_term_name" validate:"required,min=3,max=40"`
	AcademicTermStartDate    time.Time `json:"academic_term_start_date" validate:"required"`
	AcademicTermEndDate      time.Time `json:"academic_term_end_date" validate:"required,gtfield=AcademicTermStartDate"`
	AcademicTermIsActive     *bool     `json:"academic_term_is_active,omitempty"`
	AcademicTermDescription  *string   `json:"academic_term_description,omitempty" validate:"omitempty,max=500"`
}

func (r *CreateAcademicTermRequest) Normalize() {
	r.AcademicTermAcademicYear = strings.TrimSpace(r.AcademicTermAcademicYear)
	r.AcademicTermName = strings.TrimSpace(r.AcademicTermName)
	if r.AcademicTermDescription != nil {
		d := strings.TrimSpace(*r.AcademicTermDescription)
		if d == "" {
			r.AcademicTermDescription = nil
		} else {
			r.AcademicTermDescription = &d
		}
	}
}

func (r *CreateAcademicTermRequest) ToModel() *model.AcademicTermModel {
	m := &model.AcademicTermModel{
		AcademicTermAcademicYear: r.AcademicTermAcademicYear,
		AcademicTermName:         r.AcademicTermName,
		AcademicTermStartDate:    r.AcademicTermStartDate,
		AcademicTermEndDate:      r.AcademicTermEndDate,
		AcademicTermDescription:  r.AcademicTermDescription,
	}
	if r.AcademicTermIsActive != nil {
		m.AcademicTermIsActive = *r.AcademicTermIsActive
	}
	return m
}

type UpdateAcademicTermRequest struct {
	AcademicTermAcademicYear *string    `json:"academic_term_academic_year,omitempty" validate:"omitempty,min=4,max=20"`
	AcademicTermName         *string    `json:"academic_term_name,omitempty" validate:"omitempty,min=3,max=40"`
	AcademicTermStartDate    *time.Time `json:"academic_term_start_date,omitempty"`
	AcademicTermEndDate      *time.Time `json:"academic_term_end_date,omitempty"`
	AcademicTermIsActive     *bool      `json:"academic_term_is_active,omitempty"`
	AcademicTermDescription  *string    `json:"academic_term_description,omitempty" validate:"omitempty,max=500"`
}

// Apply menyalin field yang dikirim saja ke model.
func (r *UpdateAcademicTermRequest) Apply(m *model.AcademicTermModel) {
	if r.AcademicTermAcademicYear != nil {
		m.AcademicTermAcademicYear = strings.TrimSpace(*r.AcademicTermAcademicYear)
	}
	if r.AcademicTermName != nil {
		m.AcademicTermName = strings.TrimSpace(*r.AcademicTermName)
	}
	if r.AcademicTermStartDate != nil {
		m.AcademicTermStartDate = *r.AcademicTermStartDate
	}
	if r.AcademicTermEndDate != nil {
		m.AcademicTermEndDate = *r.AcademicTermEndDate
	}
	if r.AcademicTermIsActive != nil {
		m.AcademicTermIsActive = *r.AcademicTermIsActive
	}
	if r.AcademicTermDescription != nil {
		d := strings.TrimSpace(*r.AcademicTermDescription)
		if d == "" {
			m.AcademicTermDescription = nil
		} else {
			m.AcademicTermDescription = &d
		}
	}
}

/* ===============================
   Response
=================================*/

type AcademicTermResponse struct {
	AcademicTermID           uuid.UUID `json:"academic_term_id"`
	AcademicTermAcademicYear string    `json:"academic_term_academic_year"`
	AcademicTermName         string    `json:"academic_term_name"`
	AcademicTermStartDate    time.Time `json:"academic_term_start_date"`
	AcademicTermEndDate      time.Time `json:"academic_term_end_date"`
	AcademicTermIsActive     bool      `json:"academic_term_is_active"`
	AcademicTermDescription  *string   `json:"academic_term_description,omitempty"`
	AcademicTermCreatedAt    time.Time `json:"academic_term_created_at"`
	AcademicTermUpdatedAt    time.Time `json:"academic_term_updated_at"`
}

func FromModel(m *model.AcademicTermModel) AcademicTermResponse {
	return AcademicTermResponse{
		AcademicTermID:           m.AcademicTermID,
		AcademicTermAcademicYear: m.AcademicTermAcademicYear,
		AcademicTermName:         m.AcademicTermName,
		AcademicTermStartDate:    m.AcademicTermStartDate,
		AcademicTermEndDate:      m.AcademicTermEndDate,
		AcademicTermIsActive:     m.AcademicTermIsActive,
		AcademicTermDescription:  m.AcademicTermDescription,
		AcademicTermCreatedAt:    m.AcademicTermCreatedAt,
		AcademicTermUpdatedAt:    m.AcademicTermUpdatedAt,
	}
}

func FromModels(ms []model.AcademicTermModel) []AcademicTermResponse {
	out := make([]AcademicTermResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
