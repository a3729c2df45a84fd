package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nutricoach/config"
	"nutricoach/infras/otel/mocks"
	scheduleMocks "nutricoach/internal/domains/schedule/mocks"
	"nutricoach/internal/domains/schedule/model"
	"nutricoach/internal/domains/schedule/model/dto"
	"nutricoach/internal/domains/schedule/service"
	cacheMocks "nutricoach/shared/cache/mocks"
	"nutricoach/shared/constant"
	gDto "nutricoach/shared/dto"
	"nutricoach/shared/timezone"
)

type scheduleFixture struct {
	templates   *scheduleMocks.MockSlotTemplate
	windows     *scheduleMocks.MockAvailabilityWindow
	overrides   *scheduleMocks.MockDateOverride
	bookedSlots *scheduleMocks.MockBookedSlots
	cache       *cacheMocks.MockRedisCache
	svc         service.Schedule
}

func newScheduleFixture(ctrl *gomock.Controller) *scheduleFixture {
	f := &scheduleFixture{
		templates:   scheduleMocks.NewMockSlotTemplate(ctrl),
		windows:     scheduleMocks.NewMockAvailabilityWindow(ctrl),
		overrides:   scheduleMocks.NewMockDateOverride(ctrl),
		bookedSlots: scheduleMocks.NewMockBookedSlots(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.templates, f.windows, f.overrides, f.bookedSlots, cfg, f.cache, mocks.NewOtel())

	return f
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := timezone.Parse(constant.DateOnlyFormat, value)
	assert.NoError(t, err)

	return date
}

func window(t *testing.T, start, end string) model.AvailabilityWindow {
	t.Helper()

	return model.AvailabilityWindow{
		ID:        "window-" + start,
		StartDate: mustDate(t, start),
		EndDate:   mustDate(t, end),
		Active:    true,
	}
}

func template(day, timeOfDay string) model.SlotTemplate {
	return model.SlotTemplate{
		ID:        "template-" + day + "-" + timeOfDay,
		DayOfWeek: day,
		TimeOfDay: timeOfDay,
		Active:    true,
	}
}

func TestScheduleService_AvailableSlots(t *testing.T) {
	// 2025-06-16 is a Monday; 2025-06-10 is a Tuesday.
	tests := []struct {
		name      string
		now       string
		setupMock func(f *scheduleFixture)
		wantKeys  []string
		wantErr   bool
	}{
		{
			name: "weekly template instantiated inside window, past dates skipped",
			now:  "2025-06-10",
			setupMock: func(f *scheduleFixture) {
				f.bookedSlots.EXPECT().AllSlotKeys(gomock.Any()).Return(nil, nil)
				f.windows.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.AvailabilityWindow{window(t, "2025-06-01", "2025-06-30")}, nil)
				f.templates.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.SlotTemplate{template("mon", "9am")}, nil)
				f.overrides.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantKeys: []string{"2025-06-16-9am", "2025-06-23-9am", "2025-06-30-9am"},
		},
		{
			name: "booked slot excluded",
			now:  "2025-06-10",
			setupMock: func(f *scheduleFixture) {
				f.bookedSlots.EXPECT().AllSlotKeys(gomock.Any()).
					Return([]string{"2025-06-16-9am"}, nil)
				f.windows.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.AvailabilityWindow{window(t, "2025-06-01", "2025-06-30")}, nil)
				f.templates.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.SlotTemplate{template("mon", "9am")}, nil)
				f.overrides.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantKeys: []string{"2025-06-23-9am", "2025-06-30-9am"},
		},
		{
			name: "blocked override removes the whole date",
			now:  "2025-06-10",
			setupMock: func(f *scheduleFixture) {
				blockedDate := mustDate(t, "2025-06-16")

				f.bookedSlots.EXPECT().AllSlotKeys(gomock.Any()).Return(nil, nil)
				f.windows.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.AvailabilityWindow{window(t, "2025-06-01", "2025-06-30")}, nil)
				f.templates.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.SlotTemplate{template("mon", "9am"), template("mon", "10am")}, nil)
				f.overrides.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.DateOverride{{
						ID:     "override-1",
						Date:   &blockedDate,
						Kind:   model.OverrideKindBlocked,
						Active: true,
					}}, nil)
			},
			wantKeys: []string{
				"2025-06-23-9am", "2025-06-23-10am",
				"2025-06-30-9am", "2025-06-30-10am",
			},
		},
		{
			name: "blocked_specific override removes only the listed time",
			now:  "2025-06-10",
			setupMock: func(f *scheduleFixture) {
				blockedDate := mustDate(t, "2025-06-16")

				f.bookedSlots.EXPECT().AllSlotKeys(gomock.Any()).Return(nil, nil)
				f.windows.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.AvailabilityWindow{window(t, "2025-06-16", "2025-06-16")}, nil)
				f.templates.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.SlotTemplate{template("mon", "9am"), template("mon", "10am")}, nil)
				f.overrides.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.DateOverride{{
						ID:           "override-1",
						Date:         &blockedDate,
						Kind:         model.OverrideKindBlockedSpecific,
						BlockedTimes: []string{"9am"},
						Active:       true,
					}}, nil)
			},
			wantKeys: []string{"2025-06-16-10am"},
		},
		{
			name: "overlapping windows do not duplicate slots",
			now:  "2025-06-10",
			setupMock: func(f *scheduleFixture) {
				f.bookedSlots.EXPECT().AllSlotKeys(gomock.Any()).Return(nil, nil)
				f.windows.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.AvailabilityWindow{
						window(t, "2025-06-15", "2025-06-17"),
						window(t, "2025-06-16", "2025-06-20"),
					}, nil)
				f.templates.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.SlotTemplate{template("mon", "9am")}, nil)
				f.overrides.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantKeys: []string{"2025-06-16-9am"},
		},
		{
			name: "output sorted by date then canonical time order",
			now:  "2025-05-01",
			setupMock: func(f *scheduleFixture) {
				f.bookedSlots.EXPECT().AllSlotKeys(gomock.Any()).Return(nil, nil)
				f.windows.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.AvailabilityWindow{window(t, "2025-06-01", "2025-06-02")}, nil)
				f.templates.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.SlotTemplate{
						template("mon", "10am"),
						template("mon", "9am"),
						template("sun", "8pm"),
					}, nil)
				f.overrides.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			// 2025-06-01 is a Sunday, 2025-06-02 a Monday. "9am" sorts before
			// "10am" canonically even though it does not lexically.
			wantKeys: []string{"2025-06-01-8pm", "2025-06-02-9am", "2025-06-02-10am"},
		},
		{
			name: "no active windows yields no slots",
			now:  "2025-06-10",
			setupMock: func(f *scheduleFixture) {
				f.bookedSlots.EXPECT().AllSlotKeys(gomock.Any()).Return(nil, nil)
				f.windows.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				f.templates.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.SlotTemplate{template("mon", "9am")}, nil)
				f.overrides.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantKeys: []string{},
		},
		{
			name: "booked slot source error surfaces",
			now:  "2025-06-10",
			setupMock: func(f *scheduleFixture) {
				f.bookedSlots.EXPECT().AllSlotKeys(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newScheduleFixture(ctrl)

			f.cache.EXPECT().
				Get(gomock.Any(), service.CacheAvailableSlots, gomock.Any()).
				Return(errors.New("cache miss"))
			f.cache.EXPECT().
				Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			tt.setupMock(f)

			res, err := f.svc.AvailableSlots(context.Background(), mustDate(t, tt.now))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			gotKeys := make([]string, len(res.Slots))
			for i, slot := range res.Slots {
				gotKeys[i] = slot.SlotKey
			}

			assert.Equal(t, tt.wantKeys, gotKeys)
		})
	}
}

func TestScheduleService_AvailableSlots_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newScheduleFixture(ctrl)

	f.cache.EXPECT().
		Get(gomock.Any(), service.CacheAvailableSlots, gomock.Any()).
		Return(nil)

	res, err := f.svc.AvailableSlots(context.Background(), timezone.Now())

	assert.NoError(t, err)
	assert.Empty(t, res.Slots)
}

func TestScheduleService_CreateSlotTemplate(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateSlotTemplateRequest
		setupMock func(f *scheduleFixture)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateSlotTemplateRequest{DayOfWeek: "mon", TimeOfDay: "9am"},
			setupMock: func(f *scheduleFixture) {
				f.templates.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				f.templates.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "duplicate day and time rejected",
			req:  dto.CreateSlotTemplateRequest{DayOfWeek: "mon", TimeOfDay: "9am"},
			setupMock: func(f *scheduleFixture) {
				f.templates.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  dto.CreateSlotTemplateRequest{DayOfWeek: "mon", TimeOfDay: "9am"},
			setupMock: func(f *scheduleFixture) {
				f.templates.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				f.templates.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newScheduleFixture(ctrl)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := f.svc.CreateSlotTemplate(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleService_CreateAvailabilityWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newScheduleFixture(ctrl)

	t.Run("end date before start date rejected", func(t *testing.T) {
		err := f.svc.CreateAvailabilityWindow(context.Background(), dto.CreateAvailabilityWindowRequest{
			StartDate: "2025-06-30",
			EndDate:   "2025-06-01",
		})

		assert.Error(t, err)
	})

	t.Run("successful creation", func(t *testing.T) {
		f.windows.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.CreateAvailabilityWindow(context.Background(), dto.CreateAvailabilityWindowRequest{
			StartDate: "2025-06-01",
			EndDate:   "2025-06-30",
		})

		assert.NoError(t, err)
	})
}

func TestScheduleService_CreateDateOverride(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateDateOverrideRequest
		setupMock func(f *scheduleFixture)
		wantErr   bool
	}{
		{
			name: "blocked override created",
			req: dto.CreateDateOverrideRequest{
				Date: "2025-06-16",
				Kind: model.OverrideKindBlocked,
			},
			setupMock: func(f *scheduleFixture) {
				f.overrides.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "blocked_specific without blocked_times rejected",
			req: dto.CreateDateOverrideRequest{
				Date: "2025-06-16",
				Kind: model.OverrideKindBlockedSpecific,
			},
			setupMock: func(f *scheduleFixture) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newScheduleFixture(ctrl)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := f.svc.CreateDateOverride(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleService_DeleteSlotTemplate(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *scheduleFixture)
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func(f *scheduleFixture) {
				f.templates.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.templates.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "not found",
			setupMock: func(f *scheduleFixture) {
				f.templates.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newScheduleFixture(ctrl)
			tt.setupMock(f)

			err := f.svc.DeleteSlotTemplate(context.Background(), "template-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleService_GetAllSlotTemplates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newScheduleFixture(ctrl)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.templates.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.templates.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.SlotTemplate{template("mon", "9am")}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.svc.GetAllSlotTemplates(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.SlotTemplates, 1)
}
