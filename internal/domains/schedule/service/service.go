package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"nutricoach/config"
	"nutricoach/infras/otel"
	"nutricoach/internal/domains/schedule/model"
	"nutricoach/internal/domains/schedule/model/dto"
	"nutricoach/internal/domains/schedule/repository"
	"nutricoach/shared"
	"nutricoach/shared/cache"
	"nutricoach/shared/constant"
	gDto "nutricoach/shared/dto"
	"nutricoach/shared/failure"
	"nutricoach/shared/timeslot"
	"nutricoach/shared/timezone"
	"slices"
	"sort"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	CacheAvailableSlots = "schedule:available_slots"

	cacheGetTemplate    = "schedule:template:get"
	cacheGetAllTemplate = "schedule:template:get_all"
	cacheGetWindow      = "schedule:window:get"
	cacheGetAllWindow   = "schedule:window:get_all"
	cacheGetOverride    = "schedule:override:get"
	cacheGetAllOverride = "schedule:override:get_all"
)

// BookedSlots is the slice of the booking domain the composer needs: every
// reserved slot key, regardless of owner.
type BookedSlots interface {
	AllSlotKeys(ctx context.Context) ([]string, error)
}

type Schedule interface {
	AvailableSlots(ctx context.Context, now time.Time) (dto.AvailableSlotsResponse, error)

	CreateSlotTemplate(ctx context.Context, req dto.CreateSlotTemplateRequest) error
	GetAllSlotTemplates(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSlotTemplatesResponse, error)
	GetSlotTemplate(ctx context.Context, id string) (dto.SlotTemplateResponse, error)
	UpdateSlotTemplate(ctx context.Context, req dto.UpdateSlotTemplateRequest, id string) error
	DeleteSlotTemplate(ctx context.Context, id string) error

	CreateAvailabilityWindow(ctx context.Context, req dto.CreateAvailabilityWindowRequest) error
	GetAllAvailabilityWindows(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAvailabilityWindowsResponse, error)
	GetAvailabilityWindow(ctx context.Context, id string) (dto.AvailabilityWindowResponse, error)
	UpdateAvailabilityWindow(ctx context.Context, req dto.UpdateAvailabilityWindowRequest, id string) error
	DeleteAvailabilityWindow(ctx context.Context, id string) error

	CreateDateOverride(ctx context.Context, req dto.CreateDateOverrideRequest) error
	GetAllDateOverrides(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDateOverridesResponse, error)
	GetDateOverride(ctx context.Context, id string) (dto.DateOverrideResponse, error)
	UpdateDateOverride(ctx context.Context, req dto.UpdateDateOverrideRequest, id string) error
	DeleteDateOverride(ctx context.Context, id string) error
}

type serviceImpl struct {
	templates   repository.SlotTemplate
	windows     repository.AvailabilityWindow
	overrides   repository.DateOverride
	bookedSlots BookedSlots
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	templates repository.SlotTemplate,
	windows repository.AvailabilityWindow,
	overrides repository.DateOverride,
	bookedSlots BookedSlots,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Schedule {
	return &serviceImpl{
		templates:   templates,
		windows:     windows,
		overrides:   overrides,
		bookedSlots: bookedSlots,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// AvailableSlots derives the current bookable slot list from the weekly grid,
// the active windows, the blocking overrides, and the booked set. The result
// is a point-in-time read; the allocator re-validates at write time.
func (s *serviceImpl) AvailableSlots(ctx context.Context, now time.Time) (res dto.AvailableSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, CacheAvailableSlots, &res)
	if err == nil {
		log.Info().Str("cacheKey", CacheAvailableSlots).Msg("cache hit for available slots")

		return res, nil
	}

	bookedKeys, err := s.bookedSlots.AllSlotKeys(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booked slot keys")

		return res, err
	}

	booked := make(map[string]struct{}, len(bookedKeys))
	for _, key := range bookedKeys {
		booked[key] = struct{}{}
	}

	windows, err := s.windows.GetAll(ctx, gDto.QueryParams{}, activeFilter(model.WindowTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to load availability windows")

		return res, err
	}

	templates, err := s.templates.GetAll(ctx, gDto.QueryParams{}, activeFilter(model.TemplateTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to load slot templates")

		return res, err
	}

	templatesByDay := make(map[string][]string, 7)
	for _, template := range templates {
		templatesByDay[template.DayOfWeek] = append(templatesByDay[template.DayOfWeek], template.TimeOfDay)
	}

	overrideByDate, err := s.blockingOverridesByDate(ctx)
	if err != nil {
		return res, err
	}

	today := timezone.Format(timezone.ToAppTime(now), constant.DateOnlyFormat)
	seen := map[string]struct{}{}
	slots := []dto.AvailableSlot{}

	for _, window := range windows {
		for date := window.StartDate; !date.After(window.EndDate); date = date.AddDate(0, 0, 1) {
			dateKey := date.Format(constant.DateOnlyFormat)
			if dateKey < today {
				continue
			}

			override, hasOverride := overrideByDate[dateKey]
			if hasOverride && override.Kind == model.OverrideKindBlocked {
				continue
			}

			for _, label := range templatesByDay[timeslot.DayOfWeek(date)] {
				slotKey := timeslot.Key(date, label)

				if _, taken := booked[slotKey]; taken {
					continue
				}

				if hasOverride && override.Kind == model.OverrideKindBlockedSpecific &&
					slices.Contains(override.BlockedTimes, label) {
					continue
				}

				if _, dup := seen[slotKey]; dup {
					continue
				}

				seen[slotKey] = struct{}{}
				slots = append(slots, dto.AvailableSlot{
					SlotKey:      slotKey,
					DisplayLabel: timeslot.DisplayLabel(date, label),
				})
			}
		}
	}

	sortSlots(slots)
	res.Slots = slots

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, CacheAvailableSlots, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save available slots to cache")
		}
	}()

	return res, nil
}

// blockingOverridesByDate loads active single-date overrides that remove
// slots. Range overrides and available_only markers do not filter.
func (s *serviceImpl) blockingOverridesByDate(ctx context.Context) (map[string]model.DateOverride, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.OverrideTableName,
			},
			gDto.Filter{
				Field:    model.FieldKind,
				Value:    []string{model.OverrideKindBlocked, model.OverrideKindBlockedSpecific},
				Operator: gDto.FilterOperatorIn,
				Table:    model.OverrideTableName,
			},
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterIsNotNull,
				Table:    model.OverrideTableName,
			},
		},
	}

	overrides, err := s.overrides.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load date overrides")

		return nil, err
	}

	byDate := make(map[string]model.DateOverride, len(overrides))

	for _, override := range overrides {
		if override.Date == nil {
			continue
		}

		byDate[override.Date.Format(constant.DateOnlyFormat)] = override
	}

	return byDate, nil
}

// Slot keys sort by date then by the canonical time-of-day order. The label
// part cannot be sorted lexically.
func sortSlots(slots []dto.AvailableSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		dateI, dateJ := slots[i].SlotKey[:len(constant.DateOnlyFormat)], slots[j].SlotKey[:len(constant.DateOnlyFormat)]
		if dateI != dateJ {
			return dateI < dateJ
		}

		labelI := slots[i].SlotKey[len(constant.DateOnlyFormat)+1:]
		labelJ := slots[j].SlotKey[len(constant.DateOnlyFormat)+1:]

		return timeslot.Compare(labelI, labelJ) < 0
	})
}

func (s *serviceImpl) CreateSlotTemplate(ctx context.Context, req dto.CreateSlotTemplateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSlotTemplate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.templates.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldDayOfWeek, Value: req.DayOfWeek, Operator: gDto.FilterOperatorEq, Table: model.TemplateTableName},
			gDto.Filter{Field: model.FieldTimeOfDay, Value: req.TimeOfDay, Operator: gDto.FilterOperatorEq, Table: model.TemplateTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot template existence")

		return err
	}

	if exist {
		return failure.Conflict("time slot already configured for this day")
	}

	if err = s.templates.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	s.invalidateScheduleCaches(ctx, cacheGetAllTemplate)

	return nil
}

func (s *serviceImpl) GetAllSlotTemplates(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSlotTemplatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllSlotTemplates")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTemplate, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.templates.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count slot templates")

		return res, err
	}

	templates, err := s.templates.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get slot templates")

		return res, err
	}

	res.FromModels(templates, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetSlotTemplate(ctx context.Context, id string) (res dto.SlotTemplateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSlotTemplate")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTemplate, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	template, err := s.templates.Get(ctx, shared.FilterByID(id, model.FieldID, model.TemplateTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get slot template")

		return res, fmt.Errorf("failed to get slot template: %w", err)
	}

	if template.ID == constant.Empty {
		return res, failure.NotFound("slot template not found")
	}

	res.FromModel(template)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) UpdateSlotTemplate(ctx context.Context, req dto.UpdateSlotTemplateRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSlotTemplate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TemplateTableName)

	exist, err := s.templates.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot template existence")

		return err
	}

	if !exist {
		return failure.NotFound("slot template not found")
	}

	if err = s.templates.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update slot template")

		return fmt.Errorf("failed to update slot template: %w", err)
	}

	s.invalidateScheduleCaches(ctx, cacheGetAllTemplate, shared.BuildCacheKey(cacheGetTemplate, id))

	return nil
}

func (s *serviceImpl) DeleteSlotTemplate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSlotTemplate")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TemplateTableName)

	exist, err := s.templates.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot template existence")

		return err
	}

	if !exist {
		return failure.NotFound("slot template not found")
	}

	if err = s.templates.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete slot template")

		return fmt.Errorf("failed to delete slot template: %w", err)
	}

	s.invalidateScheduleCaches(ctx, cacheGetAllTemplate, shared.BuildCacheKey(cacheGetTemplate, id))

	return nil
}

func (s *serviceImpl) CreateAvailabilityWindow(ctx context.Context, req dto.CreateAvailabilityWindowRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAvailabilityWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	window := req.ToModel(user)
	if window.EndDate.Before(window.StartDate) {
		return failure.BadRequestFromString("end date must not be before start date")
	}

	if err = s.windows.Insert(ctx, window); err != nil {
		return err
	}

	s.invalidateScheduleCaches(ctx, cacheGetAllWindow)

	return nil
}

func (s *serviceImpl) GetAllAvailabilityWindows(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAvailabilityWindowsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllAvailabilityWindows")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllWindow, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.windows.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count availability windows")

		return res, err
	}

	windows, err := s.windows.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability windows")

		return res, err
	}

	res.FromModels(windows, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetAvailabilityWindow(ctx context.Context, id string) (res dto.AvailabilityWindowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailabilityWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetWindow, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	window, err := s.windows.Get(ctx, shared.FilterByID(id, model.FieldID, model.WindowTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability window")

		return res, fmt.Errorf("failed to get availability window: %w", err)
	}

	if window.ID == constant.Empty {
		return res, failure.NotFound("availability window not found")
	}

	res.FromModel(window)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) UpdateAvailabilityWindow(ctx context.Context, req dto.UpdateAvailabilityWindowRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateAvailabilityWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.WindowTableName)

	exist, err := s.windows.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability window existence")

		return err
	}

	if !exist {
		return failure.NotFound("availability window not found")
	}

	if err = s.windows.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update availability window")

		return fmt.Errorf("failed to update availability window: %w", err)
	}

	s.invalidateScheduleCaches(ctx, cacheGetAllWindow, shared.BuildCacheKey(cacheGetWindow, id))

	return nil
}

func (s *serviceImpl) DeleteAvailabilityWindow(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteAvailabilityWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.WindowTableName)

	exist, err := s.windows.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability window existence")

		return err
	}

	if !exist {
		return failure.NotFound("availability window not found")
	}

	if err = s.windows.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete availability window")

		return fmt.Errorf("failed to delete availability window: %w", err)
	}

	s.invalidateScheduleCaches(ctx, cacheGetAllWindow, shared.BuildCacheKey(cacheGetWindow, id))

	return nil
}

func (s *serviceImpl) CreateDateOverride(ctx context.Context, req dto.CreateDateOverrideRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateDateOverride")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Kind == model.OverrideKindBlockedSpecific && len(req.BlockedTimes) == 0 {
		return failure.BadRequestFromString("blocked_times is required for blocked_specific overrides")
	}

	if err = s.overrides.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	s.invalidateScheduleCaches(ctx, cacheGetAllOverride)

	return nil
}

func (s *serviceImpl) GetAllDateOverrides(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDateOverridesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllDateOverrides")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOverride, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.overrides.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count date overrides")

		return res, err
	}

	overrides, err := s.overrides.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get date overrides")

		return res, err
	}

	res.FromModels(overrides, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetDateOverride(ctx context.Context, id string) (res dto.DateOverrideResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDateOverride")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetOverride, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	override, err := s.overrides.Get(ctx, shared.FilterByID(id, model.FieldID, model.OverrideTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get date override")

		return res, fmt.Errorf("failed to get date override: %w", err)
	}

	if override.ID == constant.Empty {
		return res, failure.NotFound("date override not found")
	}

	res.FromModel(override)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) UpdateDateOverride(ctx context.Context, req dto.UpdateDateOverrideRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDateOverride")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.OverrideTableName)

	exist, err := s.overrides.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check date override existence")

		return err
	}

	if !exist {
		return failure.NotFound("date override not found")
	}

	fields := shared.TransformFields(req, user)
	if blockedTimes, ok := fields["blocked_times"].([]string); ok {
		fields["blocked_times"] = toStringArray(blockedTimes)
	}

	if err = s.overrides.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update date override")

		return fmt.Errorf("failed to update date override: %w", err)
	}

	s.invalidateScheduleCaches(ctx, cacheGetAllOverride, shared.BuildCacheKey(cacheGetOverride, id))

	return nil
}

func (s *serviceImpl) DeleteDateOverride(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteDateOverride")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.OverrideTableName)

	exist, err := s.overrides.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check date override existence")

		return err
	}

	if !exist {
		return failure.NotFound("date override not found")
	}

	if err = s.overrides.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete date override")

		return fmt.Errorf("failed to delete date override: %w", err)
	}

	s.invalidateScheduleCaches(ctx, cacheGetAllOverride, shared.BuildCacheKey(cacheGetOverride, id))

	return nil
}

func (s *serviceImpl) saveCache(ctx context.Context, cacheKey string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save cache")
		}
	}()
}

// Every schedule mutation also drops the composed availability list.
func (s *serviceImpl) invalidateScheduleCaches(ctx context.Context, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, CacheAvailableSlots); err != nil {
			log.Error().Err(err).Msg("failed to delete available slots cache")
		}

		for _, prefix := range prefixes {
			shared.InvalidateCaches(c, s.cache, prefix)
		}
	}()
}

func toStringArray(values []string) pq.StringArray {
	return pq.StringArray(values)
}

func activeFilter(table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
