package model

import (
	"nutricoach/shared/model"
	"time"
)

const (
	AccessTableName  = "course_access"
	AccessEntityName = "course_access"

	FieldID             = "id"
	FieldEmail          = "email"
	FieldClientName     = "client_name"
	FieldCoachingCallID = "coaching_call_id"
	FieldActive         = "active"
	FieldGrantedAt      = "granted_at"
)

// CourseAccess grants an email address entry to the client course area.
// Access is usually granted after a paid coaching call, but admins can grant
// it manually, so coaching_call_id is optional.
type CourseAccess struct {
	ID             string    `db:"id"`
	Email          string    `db:"email"`
	ClientName     string    `db:"client_name"`
	CoachingCallID *string   `db:"coaching_call_id"`
	Active         bool      `db:"active"`
	GrantedAt      time.Time `db:"granted_at"`
	model.Metadata
}
