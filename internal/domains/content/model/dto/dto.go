package dto

import (
	"mime/multipart"
	"nutricoach/internal/domains/content/model"
	"nutricoach/shared"
	gDto "nutricoach/shared/dto"
	gModel "nutricoach/shared/model"
	"nutricoach/shared/timezone"

	"github.com/google/uuid"
)

// CreateTestimonialRequest arrives as a multipart form; the photo is optional.
type CreateTestimonialRequest struct {
	ClientName string                `json:"client_name" validate:"required,min=2,max=200"`
	Quote      string                `json:"quote"       validate:"required,max=2000"`
	SortOrder  int                   `json:"sort_order"  validate:"omitempty,min=0"`
	Active     *bool                 `json:"active"      validate:"omitempty"`
	PhotoFile  multipart.File        `json:"-"`
	Photo      *multipart.FileHeader `json:"-"`
}

func (c *CreateTestimonialRequest) ToModel(imageURL, user string) model.Testimonial {
	now := timezone.Now()

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Testimonial{
		ID:         uuid.NewString(),
		ClientName: c.ClientName,
		Quote:      c.Quote,
		ImageURL:   imageURL,
		SortOrder:  c.SortOrder,
		Active:     active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTestimonialRequest struct {
	ClientName string                `json:"client_name" validate:"omitempty,min=2,max=200" db:"client_name"`
	Quote      string                `json:"quote"       validate:"omitempty,max=2000"      db:"quote"`
	SortOrder  *int                  `json:"sort_order"  validate:"omitempty"               db:"sort_order"`
	Active     *bool                 `json:"active"      validate:"omitempty"               db:"active"`
	PhotoFile  multipart.File        `json:"-"`
	Photo      *multipart.FileHeader `json:"-"`
}

type TestimonialResponse struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Quote      string `json:"quote"`
	ImageURL   string `json:"image_url,omitempty"`
	SortOrder  int    `json:"sort_order"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(m model.Testimonial) {
	r.ID = m.ID
	r.ClientName = m.ClientName
	r.Quote = m.Quote
	r.ImageURL = m.ImageURL
	r.SortOrder = m.SortOrder
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

// PublicTestimonialsResponse is the unauthenticated site listing, active
// entries only.
type PublicTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
}

func (r *PublicTestimonialsResponse) FromModels(models []model.Testimonial) {
	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, m := range models {
		r.Testimonials[i].FromModel(m)
	}
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, m := range models {
		r.Testimonials[i].FromModel(m)
	}
}
