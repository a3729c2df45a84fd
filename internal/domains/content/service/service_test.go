package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nutricoach/config"
	otelMocks "nutricoach/infras/otel/mocks"
	s3Mocks "nutricoach/infras/s3/mocks"
	contentMocks "nutricoach/internal/domains/content/mocks"
	"nutricoach/internal/domains/content/model"
	"nutricoach/internal/domains/content/model/dto"
	"nutricoach/internal/domains/content/service"
	cacheMocks "nutricoach/shared/cache/mocks"
	gDto "nutricoach/shared/dto"
)

type contentFixture struct {
	testimonials *contentMocks.MockTestimonial
	cache        *cacheMocks.MockRedisCache
	s3           *s3Mocks.MockS3
	svc          service.Content
}

func newContentFixture(ctrl *gomock.Controller) *contentFixture {
	f := &contentFixture{
		testimonials: contentMocks.NewMockTestimonial(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		s3:           s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.External.S3.BucketName = "nutricoach-media"

	f.svc = service.New(f.testimonials, cfg, f.cache, otelMocks.NewOtel(), f.s3)

	return f
}

func testimonial(id string, sortOrder int) model.Testimonial {
	return model.Testimonial{
		ID:         id,
		ClientName: "Jamie Rivera",
		Quote:      "Down 20 pounds and feeling great.",
		SortOrder:  sortOrder,
		Active:     true,
	}
}

func TestContentService_GetPublicTestimonials(t *testing.T) {
	t.Run("active testimonials in display order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newContentFixture(ctrl)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.testimonials.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Testimonial, error) {
				assert.Equal(t, model.FieldSortOrder, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return []model.Testimonial{testimonial("t-1", 1), testimonial("t-2", 2)}, nil
			})
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.GetPublicTestimonials(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Testimonials, 2)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newContentFixture(ctrl)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.GetPublicTestimonials(context.Background())

		assert.NoError(t, err)
	})
}

func TestContentService_CreateTestimonial(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateTestimonialRequest
		setupMock func(f *contentFixture)
		wantErr   bool
	}{
		{
			name: "created without photo",
			req: dto.CreateTestimonialRequest{
				ClientName: "Jamie Rivera",
				Quote:      "Down 20 pounds and feeling great.",
			},
			setupMock: func(f *contentFixture) {
				f.testimonials.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Testimonial) error {
						assert.Empty(t, m.ImageURL)
						assert.True(t, m.Active)

						return nil
					})
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "repository error",
			req: dto.CreateTestimonialRequest{
				ClientName: "Jamie Rivera",
				Quote:      "Down 20 pounds and feeling great.",
			},
			setupMock: func(f *contentFixture) {
				f.testimonials.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newContentFixture(ctrl)
			tt.setupMock(f)

			res, err := f.svc.CreateTestimonial(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestContentService_UpdateTestimonial(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *contentFixture)
		wantErr   bool
	}{
		{
			name: "successful update",
			setupMock: func(f *contentFixture) {
				f.testimonials.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(testimonial("t-1", 1), nil)
				f.testimonials.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "not found",
			setupMock: func(f *contentFixture) {
				f.testimonials.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Testimonial{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newContentFixture(ctrl)
			tt.setupMock(f)

			err := f.svc.UpdateTestimonial(context.Background(), "t-1", dto.UpdateTestimonialRequest{Quote: "Updated quote."})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentService_DeleteTestimonial(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *contentFixture)
		wantErr   bool
	}{
		{
			name: "delete removes the record and its photo",
			setupMock: func(f *contentFixture) {
				existing := testimonial("t-1", 1)
				existing.ImageURL = "https://media.example.com/testimonial/photo.jpg"

				f.testimonials.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.testimonials.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.s3.EXPECT().GetObjectNameFromURL(gomock.Any(), existing.ImageURL).Return("photo.jpg").AnyTimes()
				f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "not found",
			setupMock: func(f *contentFixture) {
				f.testimonials.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Testimonial{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newContentFixture(ctrl)
			tt.setupMock(f)

			err := f.svc.DeleteTestimonial(context.Background(), "t-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentService_GetAllTestimonials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newContentFixture(ctrl)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.testimonials.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.testimonials.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Testimonial{testimonial("t-1", 1)}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.svc.GetAllTestimonials(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Testimonials, 1)
}
