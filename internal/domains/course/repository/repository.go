package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"nutricoach/infras/otel"
	"nutricoach/infras/postgres"
	"nutricoach/internal/domains/course/model"
	gDto "nutricoach/shared/dto"
	gRepo "nutricoach/shared/repository"
)

type CourseAccess interface {
	Insert(ctx context.Context, model model.CourseAccess) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CourseAccess, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CourseAccess, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type courseAccessImpl struct {
	gRepo.Repository[model.CourseAccess]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCourseAccess(db *postgres.Connection, otel otel.Otel) CourseAccess {
	return &courseAccessImpl{
		Repository: gRepo.NewRepository[model.CourseAccess](model.AccessEntityName, model.AccessTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
