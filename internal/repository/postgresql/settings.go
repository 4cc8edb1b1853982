package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/settings"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

const orgSettingsColumns = `
	id, organization_name, company_address, working_days, custom_working_days,
	working_hours_start, working_hours_end, currency, currency_symbol,
	working_days_per_month, created_at, updated_at
`

func scanOrgSettings(row interface{ Scan(...any) error }) (settings.OrganizationSettings, error) {
	var s settings.OrganizationSettings
	err := row.Scan(
		&s.ID, &s.OrganizationName, &s.CompanyAddress, &s.WorkingDays, &s.CustomWorkingDays,
		&s.WorkingHoursStart, &s.WorkingHoursEnd, &s.Currency, &s.CurrencySymbol,
		&s.WorkingDaysPerMonth, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetOrganization returns the singleton row, inserting defaults on first use.
func (r *settingsRepository) GetOrganization(ctx context.Context) (settings.OrganizationSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO organization_settings (id)
		VALUES (1)
		ON CONFLICT (id) DO UPDATE SET id = organization_settings.id
		RETURNING %s
	`, orgSettingsColumns)

	s, err := scanOrgSettings(q.QueryRow(ctx, query))
	if err != nil {
		return settings.OrganizationSettings{}, fmt.Errorf("failed to get organization settings: %w", err)
	}

	return s, nil
}

func (r *settingsRepository) UpdateOrganization(ctx context.Context, req settings.UpdateOrganizationSettingsRequest) (settings.OrganizationSettings, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := r.GetOrganization(ctx); err != nil {
		return settings.OrganizationSettings{}, err
	}

	setParts := []string{"updated_at = NOW()"}
	var args []interface{}
	argIdx := 1

	if req.OrganizationName != nil {
		setParts = append(setParts, fmt.Sprintf("organization_name = $%d", argIdx))
		args = append(args, *req.OrganizationName)
		argIdx++
	}
	if req.CompanyAddress != nil {
		setParts = append(setParts, fmt.Sprintf("company_address = $%d", argIdx))
		args = append(args, *req.CompanyAddress)
		argIdx++
	}
	if req.WorkingDays != nil {
		setParts = append(setParts, fmt.Sprintf("working_days = $%d", argIdx))
		args = append(args, *req.WorkingDays)
		argIdx++
	}
	if req.CustomWorkingDays != nil {
		setParts = append(setParts, fmt.Sprintf("custom_working_days = $%d", argIdx))
		args = append(args, req.CustomWorkingDays)
		argIdx++
	}
	if req.WorkingHoursStart != nil {
		setParts = append(setParts, fmt.Sprintf("working_hours_start = $%d", argIdx))
		args = append(args, *req.WorkingHoursStart)
		argIdx++
	}
	if req.WorkingHoursEnd != nil {
		setParts = append(setParts, fmt.Sprintf("working_hours_end = $%d", argIdx))
		args = append(args, *req.WorkingHoursEnd)
		argIdx++
	}
	if req.Currency != nil {
		setParts = append(setParts, fmt.Sprintf("currency = $%d", argIdx))
		args = append(args, *req.Currency)
		argIdx++
	}
	if req.CurrencySymbol != nil {
		setParts = append(setParts, fmt.Sprintf("currency_symbol = $%d", argIdx))
		args = append(args, *req.CurrencySymbol)
		argIdx++
	}
	if req.WorkingDaysPerMonth != nil {
		setParts = append(setParts, fmt.Sprintf("working_days_per_month = $%d", argIdx))
		args = append(args, *req.WorkingDaysPerMonth)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE organization_settings
		SET %s
		WHERE id = 1
		RETURNING %s
	`, strings.Join(setParts, ", "), orgSettingsColumns)

	s, err := scanOrgSettings(q.QueryRow(ctx, query, args...))
	if err != nil {
		return settings.OrganizationSettings{}, fmt.Errorf("failed to update organization settings: %w", err)
	}

	return s, nil
}

const preferencesColumns = `
	id, allow_self_registration, session_timeout_minutes, force_password_reset,
	theme_mode, date_format, timezone, enable_notifications, created_at, updated_at
`

func scanPreferences(row interface{ Scan(...any) error }) (settings.SystemPreferences, error) {
	var s settings.SystemPreferences
	err := row.Scan(
		&s.ID, &s.AllowSelfRegistration, &s.SessionTimeoutMinutes, &s.ForcePasswordReset,
		&s.ThemeMode, &s.DateFormat, &s.Timezone, &s.EnableNotifications,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetPreferences returns the singleton row, inserting defaults on first use.
func (r *settingsRepository) GetPreferences(ctx context.Context) (settings.SystemPreferences, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO system_preferences (id)
		VALUES (1)
		ON CONFLICT (id) DO UPDATE SET id = system_preferences.id
		RETURNING %s
	`, preferencesColumns)

	s, err := scanPreferences(q.QueryRow(ctx, query))
	if err != nil {
		return settings.SystemPreferences{}, fmt.Errorf("failed to get system preferences: %w", err)
	}

	return s, nil
}

func (r *settingsRepository) UpdatePreferences(ctx context.Context, req settings.UpdateSystemPreferencesRequest) (settings.SystemPreferences, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := r.GetPreferences(ctx); err != nil {
		return settings.SystemPreferences{}, err
	}

	setParts := []string{"updated_at = NOW()"}
	var args []interface{}
	argIdx := 1

	if req.AllowSelfRegistration != nil {
		setParts = append(setParts, fmt.Sprintf("allow_self_registration = $%d", argIdx))
		args = append(args, *req.AllowSelfRegistration)
		argIdx++
	}
	if req.SessionTimeoutMinutes != nil {
		setParts = append(setParts, fmt.Sprintf("session_timeout_minutes = $%d", argIdx))
		args = append(args, *req.SessionTimeoutMinutes)
		argIdx++
	}
	if req.ForcePasswordReset != nil {
		setParts = append(setParts, fmt.Sprintf("force_password_reset = $%d", argIdx))
		args = append(args, *req.ForcePasswordReset)
		argIdx++
	}
	if req.ThemeMode != nil {
		setParts = append(setParts, fmt.Sprintf("theme_mode = $%d", argIdx))
		args = append(args, *req.ThemeMode)
		argIdx++
	}
	if req.DateFormat != nil {
		setParts = append(setParts, fmt.Sprintf("date_format = $%d", argIdx))
		args = append(args, *req.DateFormat)
		argIdx++
	}
	if req.Timezone != nil {
		setParts = append(setParts, fmt.Sprintf("timezone = $%d", argIdx))
		args = append(args, *req.Timezone)
		argIdx++
	}
	if req.EnableNotifications != nil {
		setParts = append(setParts, fmt.Sprintf("enable_notifications = $%d", argIdx))
		args = append(args, *req.EnableNotifications)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE system_preferences
		SET %s
		WHERE id = 1
		RETURNING %s
	`, strings.Join(setParts, ", "), preferencesColumns)

	s, err := scanPreferences(q.QueryRow(ctx, query, args...))
	if err != nil {
		return settings.SystemPreferences{}, fmt.Errorf("failed to update system preferences: %w", err)
	}

	return s, nil
}
