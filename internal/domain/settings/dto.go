package settings

import (
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/validator"
)

type OrganizationSettingsResponse struct {
	OrganizationName    string   `json:"organization_name"`
	CompanyAddress      *string  `json:"company_address,omitempty"`
	WorkingDays         string   `json:"working_days"`
	CustomWorkingDays   []string `json:"custom_working_days,omitempty"`
	WorkingHoursStart   string   `json:"default_working_hours_start"`
	WorkingHoursEnd     string   `json:"default_working_hours_end"`
	Currency            string   `json:"currency"`
	CurrencySymbol      string   `json:"currency_symbol"`
	WorkingDaysPerMonth int      `json:"working_days_per_month"`
}

func ToOrganizationResponse(s OrganizationSettings) OrganizationSettingsResponse {
	return OrganizationSettingsResponse{
		OrganizationName:    s.OrganizationName,
		CompanyAddress:      s.CompanyAddress,
		WorkingDays:         s.WorkingDays,
		CustomWorkingDays:   s.CustomWorkingDays,
		WorkingHoursStart:   s.WorkingHoursStart,
		WorkingHoursEnd:     s.WorkingHoursEnd,
		Currency:            s.Currency,
		CurrencySymbol:      s.CurrencySymbol,
		WorkingDaysPerMonth: s.WorkingDaysPerMonth,
	}
}

type UpdateOrganizationSettingsRequest struct {
	OrganizationName    *string  `json:"organization_name,omitempty"`
	CompanyAddress      *string  `json:"company_address,omitempty"`
	WorkingDays         *string  `json:"working_days,omitempty"`
	CustomWorkingDays   []string `json:"custom_working_days,omitempty"`
	WorkingHoursStart   *string  `json:"default_working_hours_start,omitempty"`
	WorkingHoursEnd     *string  `json:"default_working_hours_end,omitempty"`
	Currency            *string  `json:"currency,omitempty"`
	CurrencySymbol      *string  `json:"currency_symbol,omitempty"`
	WorkingDaysPerMonth *int     `json:"working_days_per_month,omitempty"`
}

func (r *UpdateOrganizationSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OrganizationName != nil && validator.IsEmpty(*r.OrganizationName) {
		errs = append(errs, validator.ValidationError{Field: "organization_name", Message: "must not be empty"})
	}
	if r.WorkingDays != nil && !IsValidWorkingDays(*r.WorkingDays) {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be 'mon-fri', 'mon-sat', 'mon-sun' or 'custom'"})
	}
	if r.WorkingDaysPerMonth != nil && (*r.WorkingDaysPerMonth < 1 || *r.WorkingDaysPerMonth > 31) {
		errs = append(errs, validator.ValidationError{Field: "working_days_per_month", Message: "must be between 1 and 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SystemPreferencesResponse struct {
	AllowSelfRegistration bool   `json:"allow_self_registration"`
	SessionTimeoutMinutes int    `json:"session_timeout_minutes"`
	ForcePasswordReset    bool   `json:"force_password_reset"`
	ThemeMode             string `json:"theme_mode"`
	DateFormat            string `json:"date_format"`
	Timezone              string `json:"timezone"`
	EnableNotifications   bool   `json:"enable_notifications"`
}

func ToPreferencesResponse(p SystemPreferences) SystemPreferencesResponse {
	return SystemPreferencesResponse{
		AllowSelfRegistration: p.AllowSelfRegistration,
		SessionTimeoutMinutes: p.SessionTimeoutMinutes,
		ForcePasswordReset:    p.ForcePasswordReset,
		ThemeMode:             p.ThemeMode,
		DateFormat:            p.DateFormat,
		Timezone:              p.Timezone,
		EnableNotifications:   p.EnableNotifications,
	}
}

type UpdateSystemPreferencesRequest struct {
	AllowSelfRegistration *bool   `json:"allow_self_registration,omitempty"`
	SessionTimeoutMinutes *int    `json:"session_timeout_minutes,omitempty"`
	ForcePasswordReset    *bool   `json:"force_password_reset,omitempty"`
	ThemeMode             *string `json:"theme_mode,omitempty"`
	DateFormat            *string `json:"date_format,omitempty"`
	Timezone              *string `json:"timezone,omitempty"`
	EnableNotifications   *bool   `json:"enable_notifications,omitempty"`
}

func (r *UpdateSystemPreferencesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SessionTimeoutMinutes != nil && *r.SessionTimeoutMinutes < 5 {
		errs = append(errs, validator.ValidationError{Field: "session_timeout_minutes", Message: "must be at least 5"})
	}
	if r.ThemeMode != nil && !IsValidThemeMode(*r.ThemeMode) {
		errs = append(errs, validator.ValidationError{Field: "theme_mode", Message: "must be 'light', 'dark' or 'auto'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
