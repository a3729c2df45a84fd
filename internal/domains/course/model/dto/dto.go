package dto

import (
	"nutricoach/internal/domains/course/model"
	"nutricoach/shared"
	gDto "nutricoach/shared/dto"
	gModel "nutricoach/shared/model"
	"nutricoach/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type VerifyAccessRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyAccessResponse struct {
	Granted bool `json:"granted"`
}

type GrantAccessRequest struct {
	Email          string `json:"email"            validate:"required,email"`
	ClientName     string `json:"client_name"      validate:"required,min=2,max=200"`
	CoachingCallID string `json:"coaching_call_id" validate:"omitempty,uuid"`
}

func (g *GrantAccessRequest) ToModel(grantedBy string) model.CourseAccess {
	now := timezone.Now()

	access := model.CourseAccess{
		ID:         uuid.NewString(),
		Email:      strings.ToLower(g.Email),
		ClientName: g.ClientName,
		Active:     true,
		GrantedAt:  now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  grantedBy,
			ModifiedBy: grantedBy,
		},
	}

	if g.CoachingCallID != "" {
		access.CoachingCallID = &g.CoachingCallID
	}

	return access
}

type CourseAccessResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	ClientName     string `json:"client_name"`
	CoachingCallID string `json:"coaching_call_id,omitempty"`
	Active         bool   `json:"active"`
	GrantedAt      string `json:"granted_at"`
	gDto.Metadata
}

func (r *CourseAccessResponse) FromModel(m model.CourseAccess) {
	r.ID = m.ID
	r.Email = m.Email
	r.ClientName = m.ClientName
	r.Active = m.Active
	r.GrantedAt = timezone.Format(m.GrantedAt, "2006-01-02T15:04:05Z07:00")

	if m.CoachingCallID != nil {
		r.CoachingCallID = *m.CoachingCallID
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetCourseAccessResponse struct {
	CourseAccess []CourseAccessResponse `json:"course_access"`
	TotalPage    int                    `json:"total_page"`
	TotalData    int                    `json:"total_data"`
}

func (r *GetCourseAccessResponse) FromModels(models []model.CourseAccess, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CourseAccess = make([]CourseAccessResponse, len(models))
	for i, m := range models {
		r.CourseAccess[i].FromModel(m)
	}
}
