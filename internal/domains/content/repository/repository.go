package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"nutricoach/infras/otel"
	"nutricoach/infras/postgres"
	"nutricoach/internal/domains/content/model"
	gDto "nutricoach/shared/dto"
	gRepo "nutricoach/shared/repository"
)

type Testimonial interface {
	Insert(ctx context.Context, model model.Testimonial) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Testimonial, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Testimonial, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type testimonialImpl struct {
	gRepo.Repository[model.Testimonial]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTestimonial(db *postgres.Connection, otel otel.Otel) Testimonial {
	return &testimonialImpl{
		Repository: gRepo.NewRepository[model.Testimonial](model.TestimonialEntityName, model.TestimonialTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
