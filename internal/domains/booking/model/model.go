package model

import (
	"nutricoach/shared/model"
	"time"
)

const (
	SlotTableName  = "booked_slots"
	SlotEntityName = "booked_slot"

	ConsultationTableName  = "consultation_requests"
	ConsultationEntityName = "consultation_request"

	CallTableName  = "coaching_calls"
	CallEntityName = "coaching_call"

	FieldID                    = "id"
	FieldSlotKey               = "slot_key"
	FieldIsSecondary           = "is_secondary"
	FieldPrimarySlotID         = "primary_slot_id"
	FieldConsultationRequestID = "consultation_request_id"
	FieldCoachingCallID        = "coaching_call_id"
	FieldStatus                = "status"
	FieldEmail                 = "email"
	FieldPaymentReference      = "payment_reference"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPaid      = "paid"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// BookedSlot reserves one 30-minute slot instance. The unique constraint on
// slot_key is the anti-double-booking guarantee; a 45/60-minute call owns a
// primary row plus a secondary row for the adjacent slot.
type BookedSlot struct {
	ID                    string    `db:"id"`
	SlotKey               string    `db:"slot_key"`
	DurationMinutes       int       `db:"duration_minutes"`
	IsSecondary           bool      `db:"is_secondary"`
	PrimarySlotID         *string   `db:"primary_slot_id"`
	ConsultationRequestID *string   `db:"consultation_request_id"`
	CoachingCallID        *string   `db:"coaching_call_id"`
	BookedAt              time.Time `db:"booked_at"`
	model.Metadata
}

// ConsultationRequest is a free 30-minute intro call, created directly as
// confirmed.
type ConsultationRequest struct {
	ID               string `db:"id"`
	FirstName        string `db:"first_name"`
	LastName         string `db:"last_name"`
	Email            string `db:"email"`
	Phone            string `db:"phone"`
	Goals            string `db:"goals"`
	SelectedTimeSlot string `db:"selected_time_slot"`
	Status           string `db:"status"`
	model.Metadata
}

// CoachingCall is a paid call. It is created pending with its slots already
// held, and moves to paid only after the payment provider confirms.
type CoachingCall struct {
	ID               string  `db:"id"`
	FirstName        string  `db:"first_name"`
	LastName         string  `db:"last_name"`
	Email            string  `db:"email"`
	Phone            string  `db:"phone"`
	Notes            string  `db:"notes"`
	SelectedTimeSlot string  `db:"selected_time_slot"`
	DurationMinutes  int     `db:"duration_minutes"`
	AmountCents      int64   `db:"amount_cents"`
	PaymentReference *string `db:"payment_reference"`
	Status           string  `db:"status"`
	model.Metadata
}
