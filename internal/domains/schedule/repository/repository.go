package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"nutricoach/infras/otel"
	"nutricoach/infras/postgres"
	"nutricoach/internal/domains/schedule/model"
	gDto "nutricoach/shared/dto"
	gRepo "nutricoach/shared/repository"
)

type SlotTemplate interface {
	Insert(ctx context.Context, model model.SlotTemplate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SlotTemplate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SlotTemplate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type AvailabilityWindow interface {
	Insert(ctx context.Context, model model.AvailabilityWindow) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AvailabilityWindow, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AvailabilityWindow, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type DateOverride interface {
	Insert(ctx context.Context, model model.DateOverride) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DateOverride, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DateOverride, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type slotTemplateImpl struct {
	gRepo.Repository[model.SlotTemplate]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSlotTemplate(db *postgres.Connection, otel otel.Otel) SlotTemplate {
	return &slotTemplateImpl{
		Repository: gRepo.NewRepository[model.SlotTemplate](model.TemplateEntityName, model.TemplateTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type availabilityWindowImpl struct {
	gRepo.Repository[model.AvailabilityWindow]
	db   *postgres.Connection
	otel otel.Otel
}

func NewAvailabilityWindow(db *postgres.Connection, otel otel.Otel) AvailabilityWindow {
	return &availabilityWindowImpl{
		Repository: gRepo.NewRepository[model.AvailabilityWindow](model.WindowEntityName, model.WindowTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type dateOverrideImpl struct {
	gRepo.Repository[model.DateOverride]
	db   *postgres.Connection
	otel otel.Otel
}

func NewDateOverride(db *postgres.Connection, otel otel.Otel) DateOverride {
	return &dateOverrideImpl{
		Repository: gRepo.NewRepository[model.DateOverride](model.OverrideEntityName, model.OverrideTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
