package service

import (
	"context"
	"fmt"
	"nutricoach/config"
	"nutricoach/infras/otel"
	"nutricoach/internal/domains/course/model"
	"nutricoach/internal/domains/course/model/dto"
	"nutricoach/internal/domains/course/repository"
	"nutricoach/shared"
	"nutricoach/shared/cache"
	"nutricoach/shared/constant"
	gDto "nutricoach/shared/dto"
	"nutricoach/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheVerifyAccess = "course:verify"
	cacheGetAllAccess = "course:access:get_all"
)

type Course interface {
	VerifyAccess(ctx context.Context, req dto.VerifyAccessRequest) (dto.VerifyAccessResponse, error)
	GrantAccess(ctx context.Context, req dto.GrantAccessRequest) (dto.CourseAccessResponse, error)
	GetAllAccess(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCourseAccessResponse, error)
	RevokeAccess(ctx context.Context, id string) error
}

type serviceImpl struct {
	access repository.CourseAccess
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(access repository.CourseAccess, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Course {
	return &serviceImpl{
		access: access,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// VerifyAccess answers whether an email may enter the course area. The answer
// is cached per email; grants and revocations clear the prefix.
func (s *serviceImpl) VerifyAccess(ctx context.Context, req dto.VerifyAccessRequest) (res dto.VerifyAccessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyAccess")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := strings.ToLower(req.Email)
	cacheKey := shared.BuildCacheKey(cacheVerifyAccess, email)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	granted, err := s.access.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq, Table: model.AccessTableName},
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.AccessTableName, ArgName: "active"},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to verify course access")

		return res, err
	}

	res.Granted = granted

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GrantAccess(ctx context.Context, req dto.GrantAccessRequest) (res dto.CourseAccessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GrantAccess")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	access := req.ToModel(user)

	exist, err := s.access.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Value: access.Email, Operator: gDto.FilterOperatorEq, Table: model.AccessTableName},
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.AccessTableName, ArgName: "active"},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing course access")

		return res, err
	}

	if exist {
		return res, failure.Conflict("course access already granted for this email")
	}

	if err = s.access.Insert(ctx, access); err != nil {
		log.Error().Err(err).Msg("failed to grant course access")

		return res, err
	}

	s.invalidateCaches(ctx)

	res.FromModel(access)

	return res, nil
}

func (s *serviceImpl) GetAllAccess(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCourseAccessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllAccess")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAccess, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.access.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count course access records")

		return res, err
	}

	records, err := s.access.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get course access records")

		return res, err
	}

	res.FromModels(records, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) RevokeAccess(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RevokeAccess")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.AccessTableName)

	exist, err := s.access.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check course access")

		return fmt.Errorf("failed to check course access: %w", err)
	}

	if !exist {
		return failure.NotFound("course access not found")
	}

	if err = s.access.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to revoke course access")

		return err
	}

	s.invalidateCaches(ctx)

	return nil
}

func (s *serviceImpl) invalidateCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheVerifyAccess)
		shared.InvalidateCaches(c, s.cache, cacheGetAllAccess)
	}()
}

func (s *serviceImpl) saveCache(ctx context.Context, cacheKey string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save cache")
		}
	}()
}
