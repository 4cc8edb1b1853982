package settings

import (
	"context"
)

type SettingsService interface {
	GetOrganization(ctx context.Context) (OrganizationSettingsResponse, error)
	UpdateOrganization(ctx context.Context, req UpdateOrganizationSettingsRequest) (OrganizationSettingsResponse, error)
	GetPreferences(ctx context.Context) (SystemPreferencesResponse, error)
	UpdatePreferences(ctx context.Context, req UpdateSystemPreferencesRequest) (SystemPreferencesResponse, error)
}
