package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nutricoach/config"
	kafkaMocks "nutricoach/infras/kafka/mocks"
	mailerMocks "nutricoach/infras/mailer/mocks"
	otelMocks "nutricoach/infras/otel/mocks"
	"nutricoach/infras/payment"
	paymentMocks "nutricoach/infras/payment/mocks"
	bookingMocks "nutricoach/internal/domains/booking/mocks"
	"nutricoach/internal/domains/booking/model"
	"nutricoach/internal/domains/booking/model/dto"
	"nutricoach/internal/domains/booking/repository"
	"nutricoach/internal/domains/booking/service"
	cacheMocks "nutricoach/shared/cache/mocks"
	"nutricoach/shared/failure"
)

type bookingFixture struct {
	slots         *bookingMocks.MockBookedSlot
	consultations *bookingMocks.MockConsultationRequest
	calls         *bookingMocks.MockCoachingCall
	cache         *cacheMocks.MockRedisCache
	events        *kafkaMocks.MockClient
	mailer        *mailerMocks.MockMailer
	payment       *paymentMocks.MockGateway
	svc           service.Booking
}

func newBookingFixture(ctrl *gomock.Controller) *bookingFixture {
	f := &bookingFixture{
		slots:         bookingMocks.NewMockBookedSlot(ctrl),
		consultations: bookingMocks.NewMockConsultationRequest(ctrl),
		calls:         bookingMocks.NewMockCoachingCall(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
		events:        kafkaMocks.NewMockClient(ctrl),
		mailer:        mailerMocks.NewMockMailer(ctrl),
		payment:       paymentMocks.NewMockGateway(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Booking.CoachEmail = "coach@example.com"
	cfg.Booking.PendingTTLMinutes = 60
	cfg.Booking.Price.Currency = "usd"
	cfg.Booking.Price.Call30Cents = 9900
	cfg.Booking.Price.Call45Cents = 13900
	cfg.Booking.Price.Call60Cents = 17900
	cfg.Kafka.Topic.BookingEvents = "nutricoach.booking-events"

	f.svc = service.New(f.slots, f.consultations, f.calls, cfg, f.cache, otelMocks.NewOtel(), f.events, f.mailer, f.payment)

	return f
}

// expectAsync covers the cache invalidation, event publishing, and email
// goroutines that fire after a successful mutation.
func (f *bookingFixture) expectAsync() {
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// runTx makes WithTx execute its callback so expectations on the Tx methods
// inside it fire.
func runTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func strPtr(s string) *string {
	return &s
}

func consultationRequest() dto.CreateConsultationRequestRequest {
	return dto.CreateConsultationRequestRequest{
		FirstName:        "Jamie",
		LastName:         "Rivera",
		Email:            "jamie@example.com",
		Phone:            "+1555000111",
		Goals:            "lose weight",
		SelectedTimeSlot: "2025-06-16-9am",
	}
}

func coachingCallRequest(durationMinutes int) dto.CreateCoachingCallRequest {
	return dto.CreateCoachingCallRequest{
		FirstName:        "Jamie",
		LastName:         "Rivera",
		Email:            "jamie@example.com",
		SelectedTimeSlot: "2025-06-16-9am",
		DurationMinutes:  durationMinutes,
	}
}

func TestBookingService_CreateConsultationRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateConsultationRequestRequest
		setupMock func(f *bookingFixture)
		wantErr   bool
	}{
		{
			name: "successful booking reserves one slot",
			req:  consultationRequest(),
			setupMock: func(f *bookingFixture) {
				f.slots.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.consultations.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.slots.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, slots []model.BookedSlot) error {
						assert.Len(t, slots, 1)
						assert.Equal(t, "2025-06-16-9am", slots[0].SlotKey)
						assert.False(t, slots[0].IsSecondary)
						assert.NotNil(t, slots[0].ConsultationRequestID)

						return nil
					})
				f.expectAsync()
			},
		},
		{
			name: "slot already taken",
			req:  consultationRequest(),
			setupMock: func(f *bookingFixture) {
				f.slots.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.consultations.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.slots.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repository.ErrSlotUnavailable)
			},
			wantErr: true,
		},
		{
			name: "invalid slot key rejected before any write",
			req: dto.CreateConsultationRequestRequest{
				FirstName:        "Jamie",
				LastName:         "Rivera",
				Email:            "jamie@example.com",
				SelectedTimeSlot: "2025-06-16-25pm",
			},
			setupMock: func(f *bookingFixture) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newBookingFixture(ctrl)
			tt.setupMock(f)

			res, err := f.svc.CreateConsultationRequest(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusConfirmed, res.Status)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestBookingService_CreateCoachingCall(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateCoachingCallRequest
		setupMock  func(f *bookingFixture)
		wantAmount int64
		wantErr    bool
		wantCode   int
	}{
		{
			name: "60-minute call reserves a consecutive pair",
			req:  coachingCallRequest(60),
			setupMock: func(f *bookingFixture) {
				f.slots.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.calls.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.slots.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, slots []model.BookedSlot) error {
						assert.Len(t, slots, 2)
						assert.Equal(t, "2025-06-16-9am", slots[0].SlotKey)
						assert.Equal(t, "2025-06-16-930am", slots[1].SlotKey)
						assert.True(t, slots[1].IsSecondary)
						assert.Equal(t, slots[0].ID, *slots[1].PrimarySlotID)

						return nil
					})
				f.payment.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
					Return(payment.Intent{ID: "pi_123", Status: payment.StatusPending, CheckoutURL: "https://pay.example.com/pi_123"}, nil)
				f.calls.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.expectAsync()
			},
			wantAmount: 17900,
		},
		{
			name: "45-minute call priced from config",
			req:  coachingCallRequest(45),
			setupMock: func(f *bookingFixture) {
				f.slots.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.calls.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.slots.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, slots []model.BookedSlot) error {
						assert.Len(t, slots, 2)

						return nil
					})
				f.payment.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
					Return(payment.Intent{ID: "pi_456", Status: payment.StatusPending}, nil)
				f.calls.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.expectAsync()
			},
			wantAmount: 13900,
		},
		{
			name: "60-minute call on the last slot of the day rejected",
			req: dto.CreateCoachingCallRequest{
				FirstName:        "Jamie",
				LastName:         "Rivera",
				Email:            "jamie@example.com",
				SelectedTimeSlot: "2025-06-16-1130pm",
				DurationMinutes:  60,
			},
			setupMock: func(f *bookingFixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "slot pair already taken",
			req:  coachingCallRequest(60),
			setupMock: func(f *bookingFixture) {
				f.slots.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.calls.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.slots.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repository.ErrSlotUnavailable)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "payment intent failure rolls back the reservation",
			req:  coachingCallRequest(30),
			setupMock: func(f *bookingFixture) {
				f.slots.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx).Times(2)
				f.calls.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.slots.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.payment.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
					Return(payment.Intent{}, errors.New("provider unavailable"))
				f.slots.EXPECT().ReleaseByOwnerTx(gomock.Any(), gomock.Any(), model.FieldCoachingCallID, gomock.Any()).Return(nil)
				f.calls.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newBookingFixture(ctrl)
			tt.setupMock(f)

			res, err := f.svc.CreateCoachingCall(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAmount, res.AmountCents)
			assert.Equal(t, model.StatusPending, res.Status)
			assert.NotEmpty(t, res.PaymentReference)
		})
	}
}

func TestBookingService_ConfirmCoachingCallPayment(t *testing.T) {
	pendingCall := model.CoachingCall{
		ID:               "call-1",
		FirstName:        "Jamie",
		Email:            "jamie@example.com",
		SelectedTimeSlot: "2025-06-16-9am",
		DurationMinutes:  60,
		AmountCents:      17900,
		PaymentReference: strPtr("pi_123"),
		Status:           model.StatusPending,
	}

	tests := []struct {
		name      string
		setupMock func(f *bookingFixture)
		wantErr   bool
	}{
		{
			name: "payment confirmed",
			setupMock: func(f *bookingFixture) {
				f.calls.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingCall, nil)
				f.payment.EXPECT().GetIntent(gomock.Any(), "pi_123").
					Return(payment.Intent{ID: "pi_123", Status: payment.StatusPaid}, nil)
				f.calls.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.expectAsync()
			},
		},
		{
			name: "already paid is idempotent",
			setupMock: func(f *bookingFixture) {
				paid := pendingCall
				paid.Status = model.StatusPaid
				f.calls.EXPECT().Get(gomock.Any(), gomock.Any()).Return(paid, nil)
			},
		},
		{
			name: "payment not completed at provider",
			setupMock: func(f *bookingFixture) {
				f.calls.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingCall, nil)
				f.payment.EXPECT().GetIntent(gomock.Any(), "pi_123").
					Return(payment.Intent{ID: "pi_123", Status: payment.StatusPending}, nil)
			},
			wantErr: true,
		},
		{
			name: "cancelled call cannot be confirmed",
			setupMock: func(f *bookingFixture) {
				cancelled := pendingCall
				cancelled.Status = model.StatusCancelled
				f.calls.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "call not found",
			setupMock: func(f *bookingFixture) {
				f.calls.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CoachingCall{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newBookingFixture(ctrl)
			tt.setupMock(f)

			res, err := f.svc.ConfirmCoachingCallPayment(context.Background(), "call-1", dto.ConfirmPaymentRequest{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusPaid, res.Status)
		})
	}
}

func TestBookingService_DeleteConsultationRequest(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *bookingFixture)
		wantErr   bool
	}{
		{
			name: "delete releases the held slot",
			setupMock: func(f *bookingFixture) {
				f.consultations.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.ConsultationRequest{ID: "req-1", Email: "jamie@example.com", SelectedTimeSlot: "2025-06-16-9am"}, nil)
				f.slots.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.slots.EXPECT().ReleaseByOwnerTx(gomock.Any(), gomock.Any(), model.FieldConsultationRequestID, "req-1").Return(nil)
				f.consultations.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.expectAsync()
			},
		},
		{
			name: "not found",
			setupMock: func(f *bookingFixture) {
				f.consultations.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.ConsultationRequest{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newBookingFixture(ctrl)
			tt.setupMock(f)

			err := f.svc.DeleteConsultationRequest(context.Background(), "req-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_DeleteBookedSlot(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *bookingFixture)
		wantErr   bool
	}{
		{
			name: "primary slot released along with its secondary",
			setupMock: func(f *bookingFixture) {
				f.slots.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.BookedSlot{ID: "slot-1", SlotKey: "2025-06-16-9am"}, nil)
				f.slots.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.slots.EXPECT().ReleaseBySlotIDTx(gomock.Any(), gomock.Any(), "slot-1").Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "secondary slot rejected",
			setupMock: func(f *bookingFixture) {
				f.slots.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.BookedSlot{ID: "slot-2", SlotKey: "2025-06-16-930am", IsSecondary: true, PrimarySlotID: strPtr("slot-1")}, nil)
			},
			wantErr: true,
		},
		{
			name: "not found",
			setupMock: func(f *bookingFixture) {
				f.slots.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BookedSlot{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newBookingFixture(ctrl)
			tt.setupMock(f)

			err := f.svc.DeleteBookedSlot(context.Background(), "slot-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_ReleaseStalePendingCalls(t *testing.T) {
	stale := []model.CoachingCall{
		{ID: "call-1", Email: "a@example.com", SelectedTimeSlot: "2025-06-16-9am", Status: model.StatusPending},
		{ID: "call-2", Email: "b@example.com", SelectedTimeSlot: "2025-06-17-2pm", Status: model.StatusPending},
	}

	t.Run("stale pending calls cancelled and slots released", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(ctrl)

		f.calls.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(stale, nil)
		f.slots.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx).Times(2)
		f.slots.EXPECT().ReleaseByOwnerTx(gomock.Any(), gomock.Any(), model.FieldCoachingCallID, "call-1").Return(nil)
		f.slots.EXPECT().ReleaseByOwnerTx(gomock.Any(), gomock.Any(), model.FieldCoachingCallID, "call-2").Return(nil)
		f.calls.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.expectAsync()

		released, err := f.svc.ReleaseStalePendingCalls(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, released)
	})

	t.Run("one failing release does not stop the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(ctrl)

		f.calls.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(stale, nil)
		f.slots.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx).Times(2)
		f.slots.EXPECT().ReleaseByOwnerTx(gomock.Any(), gomock.Any(), model.FieldCoachingCallID, "call-1").
			Return(errors.New("database error"))
		f.slots.EXPECT().ReleaseByOwnerTx(gomock.Any(), gomock.Any(), model.FieldCoachingCallID, "call-2").Return(nil)
		f.calls.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.expectAsync()

		released, err := f.svc.ReleaseStalePendingCalls(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, released)
	})

	t.Run("nothing stale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(ctrl)

		f.calls.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		released, err := f.svc.ReleaseStalePendingCalls(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, released)
	})
}

func TestBookingService_GetCoachingCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	f.calls.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(model.CoachingCall{ID: "call-1", Status: model.StatusPaid, DurationMinutes: 45, AmountCents: 13900}, nil)

	res, err := f.svc.GetCoachingCall(context.Background(), "call-1")

	assert.NoError(t, err)
	assert.Equal(t, "call-1", res.ID)
	assert.Equal(t, int64(13900), res.AmountCents)
}
