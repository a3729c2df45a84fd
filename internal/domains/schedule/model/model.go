package model

import (
	"nutricoach/shared/model"
	"time"

	"github.com/lib/pq"
)

const (
	TemplateTableName  = "slot_templates"
	TemplateEntityName = "slot_template"

	WindowTableName  = "availability_windows"
	WindowEntityName = "availability_window"

	OverrideTableName  = "date_overrides"
	OverrideEntityName = "date_override"

	FieldID        = "id"
	FieldDayOfWeek = "day_of_week"
	FieldTimeOfDay = "time_of_day"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldDate      = "date"
	FieldKind      = "kind"
	FieldActive    = "active"
)

const (
	OverrideKindBlocked         = "blocked"
	OverrideKindBlockedSpecific = "blocked_specific"
	OverrideKindAvailableOnly   = "available_only"
)

// SlotTemplate is one cell of the recurring weekly grid, unique per
// (day_of_week, time_of_day).
type SlotTemplate struct {
	ID        string `db:"id"`
	DayOfWeek string `db:"day_of_week"`
	TimeOfDay string `db:"time_of_day"`
	Active    bool   `db:"active"`
	model.Metadata
}

// AvailabilityWindow is an inclusive date range during which the weekly grid
// produces bookable dates.
type AvailabilityWindow struct {
	ID        string    `db:"id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Active    bool      `db:"active"`
	model.Metadata
}

// DateOverride blocks some or all slots on a date. Single-date overrides drive
// slot filtering; range overrides are stored for the console but do not filter.
// BlockedTimes only applies when kind is blocked_specific.
type DateOverride struct {
	ID           string         `db:"id"`
	Date         *time.Time     `db:"date"`
	StartDate    *time.Time     `db:"start_date"`
	EndDate      *time.Time     `db:"end_date"`
	Kind         string         `db:"kind"`
	BlockedTimes pq.StringArray `db:"blocked_times"`
	Reason       string         `db:"reason"`
	Active       bool           `db:"active"`
	model.Metadata
}
