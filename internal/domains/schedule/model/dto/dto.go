package dto

import (
	"nutricoach/internal/domains/schedule/model"
	"nutricoach/shared"
	"nutricoach/shared/constant"
	gDto "nutricoach/shared/dto"
	gModel "nutricoach/shared/model"
	"nutricoach/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateSlotTemplateRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=mon tue wed thu fri sat sun"`
	TimeOfDay string `json:"time_of_day" validate:"required,timeofday"`
	Active    *bool  `json:"active"`
}

func (c *CreateSlotTemplateRequest) ToModel(user string) model.SlotTemplate {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.SlotTemplate{
		ID:        uuid.NewString(),
		DayOfWeek: c.DayOfWeek,
		TimeOfDay: c.TimeOfDay,
		Active:    active,
		Metadata:  newMetadata(user),
	}
}

type UpdateSlotTemplateRequest struct {
	DayOfWeek string `db:"day_of_week" json:"day_of_week" validate:"omitempty,oneof=mon tue wed thu fri sat sun"`
	TimeOfDay string `db:"time_of_day" json:"time_of_day" validate:"omitempty,timeofday"`
	Active    *bool  `db:"active"      json:"active"`
}

type SlotTemplateResponse struct {
	ID        string `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	TimeOfDay string `json:"time_of_day"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *SlotTemplateResponse) FromModel(m model.SlotTemplate) {
	r.ID = m.ID
	r.DayOfWeek = m.DayOfWeek
	r.TimeOfDay = m.TimeOfDay
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

type GetSlotTemplatesResponse struct {
	SlotTemplates []SlotTemplateResponse `json:"slot_templates"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetSlotTemplatesResponse) FromModels(models []model.SlotTemplate, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.SlotTemplates = make([]SlotTemplateResponse, len(models))
	for i, m := range models {
		r.SlotTemplates[i].FromModel(m)
	}
}

type CreateAvailabilityWindowRequest struct {
	StartDate string `json:"start_date" validate:"required,dateonly"`
	EndDate   string `json:"end_date"   validate:"required,dateonly"`
	Active    *bool  `json:"active"`
}

func (c *CreateAvailabilityWindowRequest) ToModel(user string) model.AvailabilityWindow {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	start, _ := timezone.Parse(constant.DateOnlyFormat, c.StartDate)
	end, _ := timezone.Parse(constant.DateOnlyFormat, c.EndDate)

	return model.AvailabilityWindow{
		ID:        uuid.NewString(),
		StartDate: start,
		EndDate:   end,
		Active:    active,
		Metadata:  newMetadata(user),
	}
}

type UpdateAvailabilityWindowRequest struct {
	StartDate string `db:"start_date" json:"start_date" validate:"omitempty,dateonly"`
	EndDate   string `db:"end_date"   json:"end_date"   validate:"omitempty,dateonly"`
	Active    *bool  `db:"active"     json:"active"`
}

type AvailabilityWindowResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *AvailabilityWindowResponse) FromModel(m model.AvailabilityWindow) {
	r.ID = m.ID
	r.StartDate = timezone.Format(m.StartDate, constant.DateOnlyFormat)
	r.EndDate = timezone.Format(m.EndDate, constant.DateOnlyFormat)
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

type GetAvailabilityWindowsResponse struct {
	AvailabilityWindows []AvailabilityWindowResponse `json:"availability_windows"`
	TotalPage           int                          `json:"total_page"`
	TotalData           int                          `json:"total_data"`
}

func (r *GetAvailabilityWindowsResponse) FromModels(models []model.AvailabilityWindow, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.AvailabilityWindows = make([]AvailabilityWindowResponse, len(models))
	for i, m := range models {
		r.AvailabilityWindows[i].FromModel(m)
	}
}

type CreateDateOverrideRequest struct {
	Date         string   `json:"date"          validate:"omitempty,dateonly,required_without=StartDate"`
	StartDate    string   `json:"start_date"    validate:"omitempty,dateonly,required_with=EndDate,excluded_with=Date"`
	EndDate      string   `json:"end_date"      validate:"omitempty,dateonly,required_with=StartDate"`
	Kind         string   `json:"kind"          validate:"required,oneof=blocked blocked_specific available_only"`
	BlockedTimes []string `json:"blocked_times" validate:"omitempty,dive,timeofday"`
	Reason       string   `json:"reason"        validate:"omitempty,max=255"`
	Active       *bool    `json:"active"`
}

func (c *CreateDateOverrideRequest) ToModel(user string) model.DateOverride {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.DateOverride{
		ID:           uuid.NewString(),
		Date:         parseOptionalDate(c.Date),
		StartDate:    parseOptionalDate(c.StartDate),
		EndDate:      parseOptionalDate(c.EndDate),
		Kind:         c.Kind,
		BlockedTimes: c.BlockedTimes,
		Reason:       c.Reason,
		Active:       active,
		Metadata:     newMetadata(user),
	}
}

type UpdateDateOverrideRequest struct {
	Date         string   `db:"date"          json:"date"          validate:"omitempty,dateonly"`
	StartDate    string   `db:"start_date"    json:"start_date"    validate:"omitempty,dateonly"`
	EndDate      string   `db:"end_date"      json:"end_date"      validate:"omitempty,dateonly"`
	Kind         string   `db:"kind"          json:"kind"          validate:"omitempty,oneof=blocked blocked_specific available_only"`
	BlockedTimes []string `db:"blocked_times" json:"blocked_times" validate:"omitempty,dive,timeofday"`
	Reason       string   `db:"reason"        json:"reason"        validate:"omitempty,max=255"`
	Active       *bool    `db:"active"        json:"active"`
}

type DateOverrideResponse struct {
	ID           string   `json:"id"`
	Date         string   `json:"date,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Kind         string   `json:"kind"`
	BlockedTimes []string `json:"blocked_times"`
	Reason       string   `json:"reason"`
	Active       bool     `json:"active"`
	gDto.Metadata
}

func (r *DateOverrideResponse) FromModel(m model.DateOverride) {
	r.ID = m.ID
	r.Date = formatOptionalDate(m.Date)
	r.StartDate = formatOptionalDate(m.StartDate)
	r.EndDate = formatOptionalDate(m.EndDate)
	r.Kind = m.Kind
	r.BlockedTimes = m.BlockedTimes
	r.Reason = m.Reason
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

type GetDateOverridesResponse struct {
	DateOverrides []DateOverrideResponse `json:"date_overrides"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetDateOverridesResponse) FromModels(models []model.DateOverride, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.DateOverrides = make([]DateOverrideResponse, len(models))
	for i, m := range models {
		r.DateOverrides[i].FromModel(m)
	}
}

// AvailableSlot is one bookable slot instance as shown to clients.
type AvailableSlot struct {
	SlotKey      string `json:"slot_key"`
	DisplayLabel string `json:"display_label"`
}

type AvailableSlotsResponse struct {
	Slots []AvailableSlot `json:"slots"`
}

func newMetadata(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return nil
	}

	return &parsed
}

func formatOptionalDate(value *time.Time) string {
	if value == nil {
		return ""
	}

	return timezone.Format(*value, constant.DateOnlyFormat)
}
