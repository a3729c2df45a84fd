package service

import (
	"context"
	"fmt"
	"nutricoach/config"
	"nutricoach/infras/otel"
	"nutricoach/infras/s3"
	"nutricoach/internal/domains/content/model"
	"nutricoach/internal/domains/content/model/dto"
	"nutricoach/internal/domains/content/repository"
	"nutricoach/shared"
	"nutricoach/shared/cache"
	"nutricoach/shared/constant"
	gDto "nutricoach/shared/dto"
	"nutricoach/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cachePublicTestimonials = "content:testimonials:public"
	cacheGetAllTestimonials = "content:testimonials:get_all"
)

type Content interface {
	GetPublicTestimonials(ctx context.Context) (dto.PublicTestimonialsResponse, error)
	GetAllTestimonials(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTestimonialsResponse, error)
	CreateTestimonial(ctx context.Context, req dto.CreateTestimonialRequest) (dto.TestimonialResponse, error)
	UpdateTestimonial(ctx context.Context, id string, req dto.UpdateTestimonialRequest) error
	DeleteTestimonial(ctx context.Context, id string) error
}

type serviceImpl struct {
	testimonials repository.Testimonial
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
}

func New(testimonials repository.Testimonial, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Content {
	return &serviceImpl{
		testimonials: testimonials,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
	}
}

// GetPublicTestimonials lists active testimonials in display order for the
// marketing site.
func (s *serviceImpl) GetPublicTestimonials(ctx context.Context) (res dto.PublicTestimonialsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPublicTestimonials")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cachePublicTestimonials, &res)
	if err == nil {
		return res, nil
	}

	testimonials, err := s.testimonials.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldSortOrder, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TestimonialTableName},
			},
		},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonials")

		return res, err
	}

	res.FromModels(testimonials)

	s.saveCache(ctx, cachePublicTestimonials, res)

	return res, nil
}

func (s *serviceImpl) GetAllTestimonials(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTestimonialsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllTestimonials")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTestimonials, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.testimonials.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count testimonials")

		return res, err
	}

	testimonials, err := s.testimonials.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonials")

		return res, err
	}

	res.FromModels(testimonials, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) CreateTestimonial(ctx context.Context, req dto.CreateTestimonialRequest) (res dto.TestimonialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTestimonial")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var imageURL string

	if req.Photo != nil {
		imageURL, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.TestimonialEntityName, req.PhotoFile, req.Photo, req.Photo.Filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload testimonial photo to S3")

			return res, fmt.Errorf("failed to upload testimonial photo: %w", err)
		}
	}

	testimonial := req.ToModel(imageURL, user)

	if err = s.testimonials.Insert(ctx, testimonial); err != nil {
		log.Error().Err(err).Msg("failed to create testimonial")

		return res, err
	}

	s.invalidateCaches(ctx)

	res.FromModel(testimonial)

	return res, nil
}

func (s *serviceImpl) UpdateTestimonial(ctx context.Context, id string, req dto.UpdateTestimonialRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTestimonial")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TestimonialTableName)

	existing, err := s.testimonials.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonial")

		return fmt.Errorf("failed to get testimonial: %w", err)
	}

	if existing.ID == constant.Empty {
		return failure.NotFound("testimonial not found")
	}

	fields := shared.TransformFields(req, user)

	if req.Photo != nil {
		imageURL, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.TestimonialEntityName, req.PhotoFile, req.Photo, req.Photo.Filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload testimonial photo to S3")

			return fmt.Errorf("failed to upload testimonial photo: %w", err)
		}

		fields[model.FieldImageURL] = imageURL

		s.removeObject(ctx, existing.ImageURL)
	}

	if err = s.testimonials.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update testimonial")

		return err
	}

	s.invalidateCaches(ctx)

	return nil
}

func (s *serviceImpl) DeleteTestimonial(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTestimonial")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TestimonialTableName)

	existing, err := s.testimonials.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonial")

		return fmt.Errorf("failed to get testimonial: %w", err)
	}

	if existing.ID == constant.Empty {
		return failure.NotFound("testimonial not found")
	}

	if err = s.testimonials.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete testimonial")

		return err
	}

	s.removeObject(ctx, existing.ImageURL)
	s.invalidateCaches(ctx)

	return nil
}

// removeObject deletes the backing S3 object best-effort; the record is
// already gone or repointed, so a leaked object only costs storage.
func (s *serviceImpl) removeObject(ctx context.Context, imageURL string) {
	if imageURL == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)
		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.TestimonialEntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
		}
	}()
}

func (s *serviceImpl) invalidateCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cachePublicTestimonials); err != nil {
			log.Error().Err(err).Msg("failed to delete public testimonials cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTestimonials)
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
