package settings

import "context"

// SettingsRepository serves the two singleton configuration rows.
// Get methods create the row with defaults when it does not exist yet.
type SettingsRepository interface {
	GetOrganization(ctx context.Context) (OrganizationSettings, error)
	UpdateOrganization(ctx context.Context, req UpdateOrganizationSettingsRequest) (OrganizationSettings, error)
	GetPreferences(ctx context.Context) (SystemPreferences, error)
	UpdatePreferences(ctx context.Context, req UpdateSystemPreferencesRequest) (SystemPreferences, error)
}
