package schedule

import (
	"net/http"
	"nutricoach/infras/otel"
	"nutricoach/internal/domains/schedule/model"
	"nutricoach/internal/domains/schedule/model/dto"
	"nutricoach/internal/domains/schedule/service"
	"nutricoach/shared"
	"nutricoach/shared/constant"
	gDto "nutricoach/shared/dto"
	"nutricoach/shared/timezone"
	"nutricoach/shared/validator"
	"nutricoach/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/available-time-slots", handler.GetAvailableSlots)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/time-slots", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSlotTemplates)
		routerGroup.Post("/", handler.CreateSlotTemplate)
		routerGroup.Get("/{id}", handler.GetSlotTemplateByID)
		routerGroup.Put("/{id}", handler.UpdateSlotTemplate)
		routerGroup.Delete("/{id}", handler.DeleteSlotTemplate)
	})

	router.Route("/specific-date-slots", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAvailabilityWindows)
		routerGroup.Post("/", handler.CreateAvailabilityWindow)
		routerGroup.Get("/{id}", handler.GetAvailabilityWindowByID)
		routerGroup.Put("/{id}", handler.UpdateAvailabilityWindow)
		routerGroup.Delete("/{id}", handler.DeleteAvailabilityWindow)
	})

	router.Route("/date-overrides", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDateOverrides)
		routerGroup.Post("/", handler.CreateDateOverride)
		routerGroup.Get("/{id}", handler.GetDateOverrideByID)
		routerGroup.Put("/{id}", handler.UpdateDateOverride)
		routerGroup.Delete("/{id}", handler.DeleteDateOverride)
	})
}

// GetAvailableSlots returns every slot currently open for booking.
func (handler *Handler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSlots")
	defer scope.End()

	slots, err := handler.service.AvailableSlots(ctx, timezone.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, slots)
}

func (handler *Handler) CreateSlotTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSlotTemplate")
	defer scope.End()

	req := dto.CreateSlotTemplateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateSlotTemplate(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create time slot")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Time slot created successfully")
}

func (handler *Handler) GetSlotTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlotTemplates")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if day := r.URL.Query().Get(model.FieldDayOfWeek); day != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDayOfWeek,
			Operator: gDto.FilterOperatorEq,
			Value:    day,
			Table:    model.TemplateTableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TemplateTableName,
		})
	}

	templates, err := handler.service.GetAllSlotTemplates(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get time slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, templates)
}

func (handler *Handler) GetSlotTemplateByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlotTemplateByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	template, err := handler.service.GetSlotTemplate(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get time slot by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, template)
}

func (handler *Handler) UpdateSlotTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSlotTemplate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSlotTemplateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateSlotTemplate(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update time slot")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Time slot updated successfully")
}

func (handler *Handler) DeleteSlotTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSlotTemplate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteSlotTemplate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete time slot")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Time slot deleted successfully")
}

func (handler *Handler) CreateAvailabilityWindow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAvailabilityWindow")
	defer scope.End()

	req := dto.CreateAvailabilityWindowRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateAvailabilityWindow(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create availability window")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Availability window created successfully")
}

func (handler *Handler) GetAvailabilityWindows(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailabilityWindows")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.WindowTableName,
		})
	}

	windows, err := handler.service.GetAllAvailabilityWindows(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability windows")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, windows)
}

func (handler *Handler) GetAvailabilityWindowByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailabilityWindowByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	window, err := handler.service.GetAvailabilityWindow(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability window by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, window)
}

func (handler *Handler) UpdateAvailabilityWindow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAvailabilityWindow")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAvailabilityWindowRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateAvailabilityWindow(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update availability window")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Availability window updated successfully")
}

func (handler *Handler) DeleteAvailabilityWindow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAvailabilityWindow")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteAvailabilityWindow(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete availability window")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Availability window deleted successfully")
}

func (handler *Handler) CreateDateOverride(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDateOverride")
	defer scope.End()

	req := dto.CreateDateOverrideRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateDateOverride(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create date override")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Date override created successfully")
}

func (handler *Handler) GetDateOverrides(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDateOverrides")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if kind := r.URL.Query().Get(model.FieldKind); kind != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldKind,
			Operator: gDto.FilterOperatorEq,
			Value:    kind,
			Table:    model.OverrideTableName,
		})
	}

	overrides, err := handler.service.GetAllDateOverrides(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get date overrides")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, overrides)
}

func (handler *Handler) GetDateOverrideByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDateOverrideByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	override, err := handler.service.GetDateOverride(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get date override by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, override)
}

func (handler *Handler) UpdateDateOverride(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDateOverride")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDateOverrideRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateDateOverride(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update date override")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Date override updated successfully")
}

func (handler *Handler) DeleteDateOverride(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDateOverride")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteDateOverride(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete date override")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Date override deleted successfully")
}
