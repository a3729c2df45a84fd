package dto

import (
	"nutricoach/internal/domains/booking/model"
	"nutricoach/shared"
	gDto "nutricoach/shared/dto"
	gModel "nutricoach/shared/model"
	"nutricoach/shared/timezone"

	"github.com/google/uuid"
)

type CreateConsultationRequestRequest struct {
	FirstName        string `json:"first_name"         validate:"required,min=2,max=100"`
	LastName         string `json:"last_name"          validate:"required,min=2,max=100"`
	Email            string `json:"email"              validate:"required,email"`
	Phone            string `json:"phone"              validate:"omitempty,max=30"`
	Goals            string `json:"goals"              validate:"omitempty,max=2000"`
	SelectedTimeSlot string `json:"selected_time_slot" validate:"required"`
}

func (c *CreateConsultationRequestRequest) ToModel() model.ConsultationRequest {
	return model.ConsultationRequest{
		ID:               uuid.NewString(),
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		Phone:            c.Phone,
		Goals:            c.Goals,
		SelectedTimeSlot: c.SelectedTimeSlot,
		Status:           model.StatusConfirmed,
		Metadata:         newMetadata(c.Email),
	}
}

type ConsultationRequestResponse struct {
	ID               string `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Goals            string `json:"goals"`
	SelectedTimeSlot string `json:"selected_time_slot"`
	Status           string `json:"status"`
	gDto.Metadata
}

func (r *ConsultationRequestResponse) FromModel(m model.ConsultationRequest) {
	r.ID = m.ID
	r.FirstName = m.FirstName
	r.LastName = m.LastName
	r.Email = m.Email
	r.Phone = m.Phone
	r.Goals = m.Goals
	r.SelectedTimeSlot = m.SelectedTimeSlot
	r.Status = m.Status
	r.Metadata.FromModel(m.Metadata)
}

type GetConsultationRequestsResponse struct {
	ConsultationRequests []ConsultationRequestResponse `json:"consultation_requests"`
	TotalPage            int                           `json:"total_page"`
	TotalData            int                           `json:"total_data"`
}

func (r *GetConsultationRequestsResponse) FromModels(models []model.ConsultationRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ConsultationRequests = make([]ConsultationRequestResponse, len(models))
	for i, m := range models {
		r.ConsultationRequests[i].FromModel(m)
	}
}

type CreateCoachingCallRequest struct {
	FirstName        string `json:"first_name"         validate:"required,min=2,max=100"`
	LastName         string `json:"last_name"          validate:"required,min=2,max=100"`
	Email            string `json:"email"              validate:"required,email"`
	Phone            string `json:"phone"              validate:"omitempty,max=30"`
	Notes            string `json:"notes"              validate:"omitempty,max=2000"`
	SelectedTimeSlot string `json:"selected_time_slot" validate:"required"`
	DurationMinutes  int    `json:"duration_minutes"   validate:"required,oneof=30 45 60"`
}

func (c *CreateCoachingCallRequest) ToModel(amountCents int64) model.CoachingCall {
	return model.CoachingCall{
		ID:               uuid.NewString(),
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		Phone:            c.Phone,
		Notes:            c.Notes,
		SelectedTimeSlot: c.SelectedTimeSlot,
		DurationMinutes:  c.DurationMinutes,
		AmountCents:      amountCents,
		Status:           model.StatusPending,
		Metadata:         newMetadata(c.Email),
	}
}

// CreateCoachingCallResponse hands the client what it needs to complete
// payment at the provider.
type CreateCoachingCallResponse struct {
	CallID           string `json:"call_id"`
	PaymentReference string `json:"payment_reference"`
	CheckoutURL      string `json:"checkout_url"`
	AmountCents      int64  `json:"amount_cents"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
}

type ConfirmPaymentRequest struct {
	PaymentReference string `json:"payment_reference" validate:"omitempty,max=255"`
}

type CoachingCallResponse struct {
	ID               string `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Notes            string `json:"notes"`
	SelectedTimeSlot string `json:"selected_time_slot"`
	DurationMinutes  int    `json:"duration_minutes"`
	AmountCents      int64  `json:"amount_cents"`
	PaymentReference string `json:"payment_reference,omitempty"`
	Status           string `json:"status"`
	gDto.Metadata
}

func (r *CoachingCallResponse) FromModel(m model.CoachingCall) {
	r.ID = m.ID
	r.FirstName = m.FirstName
	r.LastName = m.LastName
	r.Email = m.Email
	r.Phone = m.Phone
	r.Notes = m.Notes
	r.SelectedTimeSlot = m.SelectedTimeSlot
	r.DurationMinutes = m.DurationMinutes
	r.AmountCents = m.AmountCents
	r.Status = m.Status

	if m.PaymentReference != nil {
		r.PaymentReference = *m.PaymentReference
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetCoachingCallsResponse struct {
	CoachingCalls []CoachingCallResponse `json:"coaching_calls"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetCoachingCallsResponse) FromModels(models []model.CoachingCall, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CoachingCalls = make([]CoachingCallResponse, len(models))
	for i, m := range models {
		r.CoachingCalls[i].FromModel(m)
	}
}

type BookedSlotResponse struct {
	ID                    string `json:"id"`
	SlotKey               string `json:"slot_key"`
	DurationMinutes       int    `json:"duration_minutes"`
	IsSecondary           bool   `json:"is_secondary"`
	PrimarySlotID         string `json:"primary_slot_id,omitempty"`
	ConsultationRequestID string `json:"consultation_request_id,omitempty"`
	CoachingCallID        string `json:"coaching_call_id,omitempty"`
	BookedAt              string `json:"booked_at"`
}

func (r *BookedSlotResponse) FromModel(m model.BookedSlot) {
	r.ID = m.ID
	r.SlotKey = m.SlotKey
	r.DurationMinutes = m.DurationMinutes
	r.IsSecondary = m.IsSecondary
	r.BookedAt = timezone.Format(m.BookedAt, "2006-01-02T15:04:05Z07:00")

	if m.PrimarySlotID != nil {
		r.PrimarySlotID = *m.PrimarySlotID
	}

	if m.ConsultationRequestID != nil {
		r.ConsultationRequestID = *m.ConsultationRequestID
	}

	if m.CoachingCallID != nil {
		r.CoachingCallID = *m.CoachingCallID
	}
}

type GetBookedSlotsResponse struct {
	BookedSlots []BookedSlotResponse `json:"booked_slots"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetBookedSlotsResponse) FromModels(models []model.BookedSlot, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.BookedSlots = make([]BookedSlotResponse, len(models))
	for i, m := range models {
		r.BookedSlots[i].FromModel(m)
	}
}

// BookingEvent is the kafka payload published on booking lifecycle changes.
type BookingEvent struct {
	EventType   string   `json:"event_type"`
	BookingKind string   `json:"booking_kind"`
	BookingID   string   `json:"booking_id"`
	SlotKeys    []string `json:"slot_keys"`
	Email       string   `json:"email"`
	OccurredAt  string   `json:"occurred_at"`
}

func newMetadata(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}
