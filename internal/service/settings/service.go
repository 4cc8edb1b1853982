package settings

import (
	"context"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *SettingsServiceImpl) GetOrganization(ctx context.Context) (settings.OrganizationSettingsResponse, error) {
	org, err := s.settingsRepo.GetOrganization(ctx)
	if err != nil {
		return settings.OrganizationSettingsResponse{}, err
	}
	return settings.ToOrganizationResponse(org), nil
}

func (s *SettingsServiceImpl) UpdateOrganization(ctx context.Context, req settings.UpdateOrganizationSettingsRequest) (settings.OrganizationSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.OrganizationSettingsResponse{}, err
	}

	org, err := s.settingsRepo.UpdateOrganization(ctx, req)
	if err != nil {
		return settings.OrganizationSettingsResponse{}, err
	}
	return settings.ToOrganizationResponse(org), nil
}

func (s *SettingsServiceImpl) GetPreferences(ctx context.Context) (settings.SystemPreferencesResponse, error) {
	prefs, err := s.settingsRepo.GetPreferences(ctx)
	if err != nil {
		return settings.SystemPreferencesResponse{}, err
	}
	return settings.ToPreferencesResponse(prefs), nil
}

func (s *SettingsServiceImpl) UpdatePreferences(ctx context.Context, req settings.UpdateSystemPreferencesRequest) (settings.SystemPreferencesResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SystemPreferencesResponse{}, err
	}

	prefs, err := s.settingsRepo.UpdatePreferences(ctx, req)
	if err != nil {
		return settings.SystemPreferencesResponse{}, err
	}
	return settings.ToPreferencesResponse(prefs), nil
}
