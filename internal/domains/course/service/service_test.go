package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nutricoach/config"
	otelMocks "nutricoach/infras/otel/mocks"
	courseMocks "nutricoach/internal/domains/course/mocks"
	"nutricoach/internal/domains/course/model"
	"nutricoach/internal/domains/course/model/dto"
	"nutricoach/internal/domains/course/service"
	cacheMocks "nutricoach/shared/cache/mocks"
	gDto "nutricoach/shared/dto"
)

type courseFixture struct {
	access *courseMocks.MockCourseAccess
	cache  *cacheMocks.MockRedisCache
	svc    service.Course
}

func newCourseFixture(ctrl *gomock.Controller) *courseFixture {
	f := &courseFixture{
		access: courseMocks.NewMockCourseAccess(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.access, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func TestCourseService_VerifyAccess(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.VerifyAccessRequest
		setupMock   func(f *courseFixture)
		wantGranted bool
		wantErr     bool
	}{
		{
			name: "active access granted, email case-insensitive",
			req:  dto.VerifyAccessRequest{Email: "Client@Example.com"},
			setupMock: func(f *courseFixture) {
				f.cache.EXPECT().Get(gomock.Any(), "course:verify:client@example.com", gomock.Any()).
					Return(errors.New("cache miss"))
				f.access.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantGranted: true,
		},
		{
			name: "no access record",
			req:  dto.VerifyAccessRequest{Email: "stranger@example.com"},
			setupMock: func(f *courseFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				f.access.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantGranted: false,
		},
		{
			name: "repository error",
			req:  dto.VerifyAccessRequest{Email: "client@example.com"},
			setupMock: func(f *courseFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				f.access.EXPECT().Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newCourseFixture(ctrl)
			tt.setupMock(f)

			res, err := f.svc.VerifyAccess(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantGranted, res.Granted)
		})
	}
}

func TestCourseService_GrantAccess(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.GrantAccessRequest
		setupMock func(f *courseFixture)
		wantErr   bool
	}{
		{
			name: "successful grant",
			req:  dto.GrantAccessRequest{Email: "client@example.com", ClientName: "Jamie Rivera"},
			setupMock: func(f *courseFixture) {
				f.access.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.access.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, access model.CourseAccess) error {
						assert.Equal(t, "client@example.com", access.Email)
						assert.True(t, access.Active)

						return nil
					})
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "already granted",
			req:  dto.GrantAccessRequest{Email: "client@example.com", ClientName: "Jamie Rivera"},
			setupMock: func(f *courseFixture) {
				f.access.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newCourseFixture(ctrl)
			tt.setupMock(f)

			res, err := f.svc.GrantAccess(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "client@example.com", res.Email)
		})
	}
}

func TestCourseService_RevokeAccess(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *courseFixture)
		wantErr   bool
	}{
		{
			name: "successful revoke",
			setupMock: func(f *courseFixture) {
				f.access.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.access.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "not found",
			setupMock: func(f *courseFixture) {
				f.access.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newCourseFixture(ctrl)
			tt.setupMock(f)

			err := f.svc.RevokeAccess(context.Background(), "access-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCourseService_GetAllAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCourseFixture(ctrl)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.access.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.access.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.CourseAccess{{ID: "access-1", Email: "client@example.com", Active: true}}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.svc.GetAllAccess(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.CourseAccess, 1)
}
