package booking

import (
	"net/http"
	"nutricoach/infras/otel"
	"nutricoach/internal/domains/booking/model"
	"nutricoach/internal/domains/booking/model/dto"
	"nutricoach/internal/domains/booking/service"
	"nutricoach/shared/constant"
	gDto "nutricoach/shared/dto"
	"nutricoach/shared/validator"
	"nutricoach/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Post("/consultation-requests", handler.CreateConsultationRequest)
	router.Route("/coaching-calls", func(routerGroup chi.Router) {
		routerGroup.Post("/create-payment-intent", handler.CreateCoachingCall)
		routerGroup.Post("/{id}/confirm-payment", handler.ConfirmCoachingCallPayment)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/booked-slots", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookedSlots)
		routerGroup.Delete("/{id}", handler.DeleteBookedSlot)
	})

	router.Route("/consultation-requests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetConsultationRequests)
		routerGroup.Get("/{id}", handler.GetConsultationRequestByID)
		routerGroup.Delete("/{id}", handler.DeleteConsultationRequest)
	})

	router.Route("/coaching-calls", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCoachingCalls)
		routerGroup.Get("/{id}", handler.GetCoachingCallByID)
		routerGroup.Delete("/{id}", handler.DeleteCoachingCall)
	})
}

// CreateConsultationRequest books a free consultation call.
func (handler *Handler) CreateConsultationRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateConsultationRequest")
	defer scope.End()

	req := dto.CreateConsultationRequestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	request, err := handler.service.CreateConsultationRequest(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create consultation request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Consultation request created for slot " + request.SelectedTimeSlot)

	response.WithJSON(w, http.StatusCreated, request)
}

// CreateCoachingCall reserves the slots for a paid call and opens a payment
// intent.
func (handler *Handler) CreateCoachingCall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCoachingCall")
	defer scope.End()

	req := dto.CreateCoachingCallRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	call, err := handler.service.CreateCoachingCall(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create coaching call")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Coaching call created with payment reference " + call.PaymentReference)

	response.WithJSON(w, http.StatusCreated, call)
}

// ConfirmCoachingCallPayment verifies payment with the provider and confirms
// the call.
func (handler *Handler) ConfirmCoachingCallPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmCoachingCallPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ConfirmPaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	call, err := handler.service.ConfirmCoachingCallPayment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm coaching call payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, call)
}

func (handler *Handler) GetBookedSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookedSlots")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if slotKey := r.URL.Query().Get(model.FieldSlotKey); slotKey != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSlotKey,
			Operator: gDto.FilterOperatorLike,
			Value:    slotKey,
			Table:    model.SlotTableName,
		})
	}

	slots, err := handler.service.GetAllBookedSlots(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booked slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, slots)
}

func (handler *Handler) DeleteBookedSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBookedSlot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteBookedSlot(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booked slot")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booked slot deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Booked slot deleted successfully")
}

func (handler *Handler) GetConsultationRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConsultationRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	requests, err := handler.service.GetAllConsultationRequests(ctx, queryParams, handler.recordFilter(r, model.ConsultationTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get consultation requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, requests)
}

func (handler *Handler) GetConsultationRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConsultationRequestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	request, err := handler.service.GetConsultationRequest(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get consultation request by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, request)
}

func (handler *Handler) DeleteConsultationRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteConsultationRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteConsultationRequest(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete consultation request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Consultation request deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Consultation request deleted successfully")
}

func (handler *Handler) GetCoachingCalls(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCoachingCalls")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	calls, err := handler.service.GetAllCoachingCalls(ctx, queryParams, handler.recordFilter(r, model.CallTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coaching calls")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, calls)
}

func (handler *Handler) GetCoachingCallByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCoachingCallByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	call, err := handler.service.GetCoachingCall(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coaching call by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, call)
}

func (handler *Handler) DeleteCoachingCall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCoachingCall")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteCoachingCall(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete coaching call")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Coaching call deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Coaching call deleted successfully")
}

// recordFilter builds the shared status/email listing filter for both record
// types.
func (handler *Handler) recordFilter(r *http.Request, table string) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    table,
		})
	}

	if email := r.URL.Query().Get(model.FieldEmail); email != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    table,
		})
	}

	return filterGroup
}
