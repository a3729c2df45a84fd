package service

import (
	"context"
	"errors"
	"fmt"
	"nutricoach/config"
	"nutricoach/infras/kafka"
	"nutricoach/infras/mailer"
	"nutricoach/infras/otel"
	"nutricoach/infras/payment"
	"nutricoach/internal/domains/booking/model"
	"nutricoach/internal/domains/booking/model/dto"
	"nutricoach/internal/domains/booking/repository"
	scheduleService "nutricoach/internal/domains/schedule/service"
	"nutricoach/shared"
	"nutricoach/shared/cache"
	"nutricoach/shared/constant"
	gDto "nutricoach/shared/dto"
	"nutricoach/shared/failure"
	gModel "nutricoach/shared/model"
	"nutricoach/shared/timeslot"
	"nutricoach/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingPaid      = "booking.paid"
	EventBookingCancelled = "booking.cancelled"

	cacheGetAllConsultation = "booking:consultation:get_all"
	cacheGetAllCall         = "booking:call:get_all"
	cacheGetAllSlot         = "booking:slot:get_all"

	msgSlotUnavailable = "this time slot is no longer available, please pick another time"
)

type Booking interface {
	CreateConsultationRequest(ctx context.Context, req dto.CreateConsultationRequestRequest) (dto.ConsultationRequestResponse, error)
	CreateCoachingCall(ctx context.Context, req dto.CreateCoachingCallRequest) (dto.CreateCoachingCallResponse, error)
	ConfirmCoachingCallPayment(ctx context.Context, id string, req dto.ConfirmPaymentRequest) (dto.CoachingCallResponse, error)

	GetAllConsultationRequests(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetConsultationRequestsResponse, error)
	GetConsultationRequest(ctx context.Context, id string) (dto.ConsultationRequestResponse, error)
	DeleteConsultationRequest(ctx context.Context, id string) error

	GetAllCoachingCalls(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCoachingCallsResponse, error)
	GetCoachingCall(ctx context.Context, id string) (dto.CoachingCallResponse, error)
	DeleteCoachingCall(ctx context.Context, id string) error

	GetAllBookedSlots(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookedSlotsResponse, error)
	DeleteBookedSlot(ctx context.Context, id string) error

	ReleaseStalePendingCalls(ctx context.Context) (int, error)
}

type serviceImpl struct {
	slots         repository.BookedSlot
	consultations repository.ConsultationRequest
	calls         repository.CoachingCall
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
	events        kafka.Client
	mailer        mailer.Mailer
	payment       payment.Gateway
}

func New(
	slots repository.BookedSlot,
	consultations repository.ConsultationRequest,
	calls repository.CoachingCall,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	events kafka.Client,
	mailer mailer.Mailer,
	gateway payment.Gateway,
) Booking {
	return &serviceImpl{
		slots:         slots,
		consultations: consultations,
		calls:         calls,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
		events:        events,
		mailer:        mailer,
		payment:       gateway,
	}
}

// CreateConsultationRequest books a free 30-minute intro call. The record and
// its slot reservation share one transaction, so a losing race leaves no
// orphaned request behind.
func (s *serviceImpl) CreateConsultationRequest(ctx context.Context, req dto.CreateConsultationRequestRequest) (res dto.ConsultationRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateConsultationRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	request := req.ToModel()

	slots, err := buildReservation(request.SelectedTimeSlot, timeslot.SlotMinutes, &request.ID, nil, request.Email)
	if errors.Is(err, repository.ErrSlotUnavailable) {
		return res, failure.BadRequestFromString(msgSlotUnavailable)
	}

	if err != nil {
		return res, err
	}

	err = s.slots.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.consultations.InsertTx(ctx, tx, request); err != nil {
			return err
		}

		return s.slots.ReserveTx(ctx, tx, slots)
	})
	if errors.Is(err, repository.ErrSlotUnavailable) {
		return res, failure.BadRequestFromString(msgSlotUnavailable)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create consultation request")

		return res, err
	}

	s.afterBookingChange(ctx, dto.BookingEvent{
		EventType:   EventBookingCreated,
		BookingKind: model.ConsultationEntityName,
		BookingID:   request.ID,
		SlotKeys:    slotKeys(slots),
		Email:       request.Email,
		OccurredAt:  timezone.Format(timezone.Now(), constant.DateFormat),
	})
	s.notifyConsultationBooked(ctx, request)

	res.FromModel(request)

	return res, nil
}

// CreateCoachingCall creates a paid call in pending status with its slots
// already held, then opens a payment intent at the provider. Holding the
// slots before payment keeps a second payer from taking them mid-checkout.
func (s *serviceImpl) CreateCoachingCall(ctx context.Context, req dto.CreateCoachingCallRequest) (res dto.CreateCoachingCallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCoachingCall")
	defer scope.End()
	defer scope.TraceIfError(err)

	call := req.ToModel(s.priceFor(req.DurationMinutes))

	slots, err := buildReservation(call.SelectedTimeSlot, call.DurationMinutes, nil, &call.ID, call.Email)
	if errors.Is(err, repository.ErrSlotUnavailable) {
		return res, failure.BadRequestFromString(msgSlotUnavailable)
	}

	if err != nil {
		return res, err
	}

	err = s.slots.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.calls.InsertTx(ctx, tx, call); err != nil {
			return err
		}

		return s.slots.ReserveTx(ctx, tx, slots)
	})
	if errors.Is(err, repository.ErrSlotUnavailable) {
		return res, failure.BadRequestFromString(msgSlotUnavailable)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create coaching call")

		return res, err
	}

	intent, err := s.payment.CreateIntent(ctx, payment.CreateIntentRequest{
		Amount:      call.AmountCents,
		Currency:    s.cfg.Booking.Price.Currency,
		Description: fmt.Sprintf("%d-minute coaching call", call.DurationMinutes),
		ReferenceID: call.ID,
	})
	if err != nil {
		log.Error().Err(err).Str("callID", call.ID).Msg("failed to create payment intent, rolling back reservation")

		s.rollbackCoachingCall(ctx, call.ID)

		return res, failure.InternalError(fmt.Errorf("failed to initiate payment: %w", err))
	}

	if err = s.calls.Update(ctx, map[string]any{
		model.FieldPaymentReference: intent.ID,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    call.Email,
	}, shared.FilterByID(call.ID, model.FieldID, model.CallTableName)); err != nil {
		log.Error().Err(err).Str("callID", call.ID).Msg("failed to store payment reference")

		return res, err
	}

	s.afterBookingChange(ctx, dto.BookingEvent{
		EventType:   EventBookingCreated,
		BookingKind: model.CallEntityName,
		BookingID:   call.ID,
		SlotKeys:    slotKeys(slots),
		Email:       call.Email,
		OccurredAt:  timezone.Format(timezone.Now(), constant.DateFormat),
	})

	res = dto.CreateCoachingCallResponse{
		CallID:           call.ID,
		PaymentReference: intent.ID,
		CheckoutURL:      intent.CheckoutURL,
		AmountCents:      call.AmountCents,
		Currency:         s.cfg.Booking.Price.Currency,
		Status:           call.Status,
	}

	return res, nil
}

// ConfirmCoachingCallPayment verifies the payment with the provider. An
// unconfirmed payment leaves the call pending with its slots held; the reaper
// reclaims abandoned holds after the configured TTL.
func (s *serviceImpl) ConfirmCoachingCallPayment(ctx context.Context, id string, req dto.ConfirmPaymentRequest) (res dto.CoachingCallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmCoachingCallPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	call, err := s.calls.Get(ctx, shared.FilterByID(id, model.FieldID, model.CallTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get coaching call")

		return res, fmt.Errorf("failed to get coaching call: %w", err)
	}

	if call.ID == constant.Empty {
		return res, failure.NotFound("coaching call not found")
	}

	if call.Status == model.StatusPaid {
		res.FromModel(call)

		return res, nil
	}

	if call.Status != model.StatusPending {
		return res, failure.BadRequestFromString("coaching call is not awaiting payment")
	}

	reference := req.PaymentReference
	if reference == constant.Empty && call.PaymentReference != nil {
		reference = *call.PaymentReference
	}

	if reference == constant.Empty {
		return res, failure.BadRequestFromString("no payment reference on record")
	}

	intent, err := s.payment.GetIntent(ctx, reference)
	if err != nil {
		log.Error().Err(err).Str("callID", id).Msg("failed to check payment status")

		return res, failure.InternalError(fmt.Errorf("failed to check payment status: %w", err))
	}

	if intent.Status != payment.StatusPaid {
		return res, failure.BadRequestFromString("payment not confirmed, please try again")
	}

	if err = s.calls.Update(ctx, map[string]any{
		model.FieldStatus:           model.StatusPaid,
		model.FieldPaymentReference: reference,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    call.Email,
	}, shared.FilterByID(id, model.FieldID, model.CallTableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark coaching call paid")

		return res, err
	}

	call.Status = model.StatusPaid
	call.PaymentReference = &reference

	s.publishEvent(ctx, dto.BookingEvent{
		EventType:   EventBookingPaid,
		BookingKind: model.CallEntityName,
		BookingID:   call.ID,
		SlotKeys:    []string{call.SelectedTimeSlot},
		Email:       call.Email,
		OccurredAt:  timezone.Format(timezone.Now(), constant.DateFormat),
	})
	s.notifyCoachingCallPaid(ctx, call)

	res.FromModel(call)

	return res, nil
}

func (s *serviceImpl) GetAllConsultationRequests(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetConsultationRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllConsultationRequests")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllConsultation, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.consultations.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count consultation requests")

		return res, err
	}

	requests, err := s.consultations.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get consultation requests")

		return res, err
	}

	res.FromModels(requests, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetConsultationRequest(ctx context.Context, id string) (res dto.ConsultationRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetConsultationRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.consultations.Get(ctx, shared.FilterByID(id, model.FieldID, model.ConsultationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get consultation request")

		return res, fmt.Errorf("failed to get consultation request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("consultation request not found")
	}

	res.FromModel(request)

	return res, nil
}

// DeleteConsultationRequest releases the held slot and removes the record in
// one transaction.
func (s *serviceImpl) DeleteConsultationRequest(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteConsultationRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.consultations.Get(ctx, shared.FilterByID(id, model.FieldID, model.ConsultationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get consultation request")

		return fmt.Errorf("failed to get consultation request: %w", err)
	}

	if request.ID == constant.Empty {
		return failure.NotFound("consultation request not found")
	}

	err = s.slots.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.slots.ReleaseByOwnerTx(ctx, tx, model.FieldConsultationRequestID, id); err != nil {
			return err
		}

		return s.consultations.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.ConsultationTableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete consultation request")

		return err
	}

	s.afterBookingChange(ctx, dto.BookingEvent{
		EventType:   EventBookingCancelled,
		BookingKind: model.ConsultationEntityName,
		BookingID:   id,
		SlotKeys:    []string{request.SelectedTimeSlot},
		Email:       request.Email,
		OccurredAt:  timezone.Format(timezone.Now(), constant.DateFormat),
	})

	return nil
}

func (s *serviceImpl) GetAllCoachingCalls(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCoachingCallsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllCoachingCalls")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCall, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.calls.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count coaching calls")

		return res, err
	}

	calls, err := s.calls.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get coaching calls")

		return res, err
	}

	res.FromModels(calls, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetCoachingCall(ctx context.Context, id string) (res dto.CoachingCallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCoachingCall")
	defer scope.End()
	defer scope.TraceIfError(err)

	call, err := s.calls.Get(ctx, shared.FilterByID(id, model.FieldID, model.CallTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get coaching call")

		return res, fmt.Errorf("failed to get coaching call: %w", err)
	}

	if call.ID == constant.Empty {
		return res, failure.NotFound("coaching call not found")
	}

	res.FromModel(call)

	return res, nil
}

func (s *serviceImpl) DeleteCoachingCall(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCoachingCall")
	defer scope.End()
	defer scope.TraceIfError(err)

	call, err := s.calls.Get(ctx, shared.FilterByID(id, model.FieldID, model.CallTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get coaching call")

		return fmt.Errorf("failed to get coaching call: %w", err)
	}

	if call.ID == constant.Empty {
		return failure.NotFound("coaching call not found")
	}

	err = s.slots.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.slots.ReleaseByOwnerTx(ctx, tx, model.FieldCoachingCallID, id); err != nil {
			return err
		}

		return s.calls.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.CallTableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete coaching call")

		return err
	}

	s.afterBookingChange(ctx, dto.BookingEvent{
		EventType:   EventBookingCancelled,
		BookingKind: model.CallEntityName,
		BookingID:   id,
		SlotKeys:    []string{call.SelectedTimeSlot},
		Email:       call.Email,
		OccurredAt:  timezone.Format(timezone.Now(), constant.DateFormat),
	})

	return nil
}

func (s *serviceImpl) GetAllBookedSlots(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookedSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookedSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSlot, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.slots.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booked slots")

		return res, err
	}

	slots, err := s.slots.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked slots")

		return res, err
	}

	res.FromModels(slots, total, params.Limit)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

// DeleteBookedSlot frees a single reservation without touching its business
// record. Secondary slots are deleted through their primary.
func (s *serviceImpl) DeleteBookedSlot(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBookedSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	slot, err := s.slots.Get(ctx, shared.FilterByID(id, model.FieldID, model.SlotTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked slot")

		return fmt.Errorf("failed to get booked slot: %w", err)
	}

	if slot.ID == constant.Empty {
		return failure.NotFound("booked slot not found")
	}

	if slot.IsSecondary {
		return failure.BadRequestFromString("secondary slots are released through their primary slot")
	}

	err = s.slots.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.slots.ReleaseBySlotIDTx(ctx, tx, id)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booked slot")

		return err
	}

	s.invalidateBookingCaches(ctx)

	return nil
}

// ReleaseStalePendingCalls cancels coaching calls that stayed pending beyond
// the configured TTL and frees their slots. Abandoned checkouts would
// otherwise hold the slots forever.
func (s *serviceImpl) ReleaseStalePendingCalls(ctx context.Context) (released int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReleaseStalePendingCalls")
	defer scope.End()
	defer scope.TraceIfError(err)

	cutoff := timezone.Now().Add(-time.Duration(s.cfg.Booking.PendingTTLMinutes) * time.Minute)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusPending, Operator: gDto.FilterOperatorEq, Table: model.CallTableName},
			gDto.Filter{Field: constant.FieldCreatedAt, Value: cutoff, Operator: gDto.FilterOperatorLessEq, Table: model.CallTableName},
		},
	}

	stale, err := s.calls.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load stale pending coaching calls")

		return 0, err
	}

	for _, call := range stale {
		err = s.slots.WithTx(ctx, func(tx *sqlx.Tx) error {
			if err := s.slots.ReleaseByOwnerTx(ctx, tx, model.FieldCoachingCallID, call.ID); err != nil {
				return err
			}

			return s.calls.UpdateTx(ctx, tx, map[string]any{
				model.FieldStatus:        model.StatusCancelled,
				constant.FieldModifiedAt: timezone.Now(),
				constant.FieldModifiedBy: "reaper",
			}, shared.FilterByID(call.ID, model.FieldID, model.CallTableName))
		})
		if err != nil {
			log.Error().Err(err).Str("callID", call.ID).Msg("failed to release stale pending coaching call")

			continue
		}

		released++

		s.afterBookingChange(ctx, dto.BookingEvent{
			EventType:   EventBookingCancelled,
			BookingKind: model.CallEntityName,
			BookingID:   call.ID,
			SlotKeys:    []string{call.SelectedTimeSlot},
			Email:       call.Email,
			OccurredAt:  timezone.Format(timezone.Now(), constant.DateFormat),
		})
	}

	if released > 0 {
		log.Info().Int("released", released).Msg("released stale pending coaching calls")
	}

	return released, nil
}

func (s *serviceImpl) priceFor(durationMinutes int) int64 {
	switch durationMinutes {
	case 45:
		return s.cfg.Booking.Price.Call45Cents
	case 60:
		return s.cfg.Booking.Price.Call60Cents
	default:
		return s.cfg.Booking.Price.Call30Cents
	}
}

// rollbackCoachingCall undoes a reservation whose payment intent could not be
// opened.
func (s *serviceImpl) rollbackCoachingCall(ctx context.Context, callID string) {
	err := s.slots.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.slots.ReleaseByOwnerTx(ctx, tx, model.FieldCoachingCallID, callID); err != nil {
			return err
		}

		return s.calls.DeleteTx(ctx, tx, shared.FilterByID(callID, model.FieldID, model.CallTableName))
	})
	if err != nil {
		log.Error().Err(err).Str("callID", callID).Msg("failed to roll back coaching call reservation")
	}
}

func (s *serviceImpl) afterBookingChange(ctx context.Context, event dto.BookingEvent) {
	s.invalidateBookingCaches(ctx)
	s.publishEvent(ctx, event)
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, scheduleService.CacheAvailableSlots); err != nil {
			log.Error().Err(err).Msg("failed to delete available slots cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllConsultation)
		shared.InvalidateCaches(c, s.cache, cacheGetAllCall)
		shared.InvalidateCaches(c, s.cache, cacheGetAllSlot)
	}()
}

func (s *serviceImpl) publishEvent(ctx context.Context, event dto.BookingEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		err := s.events.SendMessages(c, s.cfg.Kafka.Topic.BookingEvents, kafka.Message{
			Key:   event.BookingID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("eventType", event.EventType).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) notifyConsultationBooked(ctx context.Context, request model.ConsultationRequest) {
	go func() {
		c := context.WithoutCancel(ctx)
		slotLabel := displayLabel(request.SelectedTimeSlot)

		clientEmail := mailer.Email{
			To:      []string{request.Email},
			Subject: "Your free consultation is booked",
			HTML: fmt.Sprintf(
				"<p>Hi %s,</p><p>Your free consultation call is confirmed for <strong>%s</strong>.</p><p>Talk soon!</p>",
				request.FirstName, slotLabel,
			),
		}
		if err := s.mailer.Send(c, clientEmail); err != nil {
			log.Error().Err(err).Str("requestID", request.ID).Msg("failed to send client confirmation email")
		}

		coachEmail := mailer.Email{
			To:      []string{s.cfg.Booking.CoachEmail},
			Subject: "New consultation request",
			HTML: fmt.Sprintf(
				"<p>%s %s booked a consultation for <strong>%s</strong>.</p><p>Goals: %s</p><p>Contact: %s %s</p>",
				request.FirstName, request.LastName, slotLabel, request.Goals, request.Email, request.Phone,
			),
			ReplyTo: request.Email,
		}
		if err := s.mailer.Send(c, coachEmail); err != nil {
			log.Error().Err(err).Str("requestID", request.ID).Msg("failed to send coach notification email")
		}
	}()
}

func (s *serviceImpl) notifyCoachingCallPaid(ctx context.Context, call model.CoachingCall) {
	go func() {
		c := context.WithoutCancel(ctx)
		slotLabel := displayLabel(call.SelectedTimeSlot)

		clientEmail := mailer.Email{
			To:      []string{call.Email},
			Subject: "Your coaching call is confirmed",
			HTML: fmt.Sprintf(
				"<p>Hi %s,</p><p>Payment received. Your %d-minute coaching call is confirmed for <strong>%s</strong>.</p>",
				call.FirstName, call.DurationMinutes, slotLabel,
			),
		}
		if err := s.mailer.Send(c, clientEmail); err != nil {
			log.Error().Err(err).Str("callID", call.ID).Msg("failed to send client confirmation email")
		}

		coachEmail := mailer.Email{
			To:      []string{s.cfg.Booking.CoachEmail},
			Subject: "Coaching call paid",
			HTML: fmt.Sprintf(
				"<p>%s %s paid for a %d-minute coaching call on <strong>%s</strong>.</p><p>Notes: %s</p><p>Contact: %s %s</p>",
				call.FirstName, call.LastName, call.DurationMinutes, slotLabel, call.Notes, call.Email, call.Phone,
			),
			ReplyTo: call.Email,
		}
		if err := s.mailer.Send(c, coachEmail); err != nil {
			log.Error().Err(err).Str("callID", call.ID).Msg("failed to send coach notification email")
		}
	}()
}

// buildReservation expands a requested slot into the rows the allocator must
// insert: one row for 30 minutes, a linked primary/secondary pair otherwise.
// A 45-minute call still consumes two full 30-minute slots.
func buildReservation(slotKey string, durationMinutes int, consultationID, callID *string, bookedBy string) ([]model.BookedSlot, error) {
	date, label, err := timeslot.SplitKey(slotKey)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid time slot")
	}

	now := timezone.Now()
	metadata := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  bookedBy,
		ModifiedBy: bookedBy,
	}

	primary := model.BookedSlot{
		ID:                    uuid.NewString(),
		SlotKey:               slotKey,
		DurationMinutes:       durationMinutes,
		ConsultationRequestID: consultationID,
		CoachingCallID:        callID,
		BookedAt:              now,
		Metadata:              metadata,
	}

	slots := []model.BookedSlot{primary}

	if durationMinutes > timeslot.SlotMinutes {
		nextLabel, ok := timeslot.Next(label)
		if !ok {
			// No adjacent slot exists after the last label of the day.
			return nil, repository.ErrSlotUnavailable
		}

		slots = append(slots, model.BookedSlot{
			ID:                    uuid.NewString(),
			SlotKey:               timeslot.Key(date, nextLabel),
			DurationMinutes:       durationMinutes,
			IsSecondary:           true,
			PrimarySlotID:         &primary.ID,
			ConsultationRequestID: consultationID,
			CoachingCallID:        callID,
			BookedAt:              now,
			Metadata:              metadata,
		})
	}

	return slots, nil
}

func slotKeys(slots []model.BookedSlot) []string {
	keys := make([]string, len(slots))
	for i, slot := range slots {
		keys[i] = slot.SlotKey
	}

	return keys
}

func displayLabel(slotKey string) string {
	date, label, err := timeslot.SplitKey(slotKey)
	if err != nil {
		return slotKey
	}

	return timeslot.DisplayLabel(date, label)
}

func (s *serviceImpl) saveCache(ctx context.Context, cacheKey string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save cache")
		}
	}()
}
