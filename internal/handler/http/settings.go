package http

import (
	"encoding/json"
	"net/http"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/settings"
	"github.com/workforge-hr/workforge-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetOrganization(w http.ResponseWriter, r *http.Request)
	UpdateOrganization(w http.ResponseWriter, r *http.Request)
	GetPreferences(w http.ResponseWriter, r *http.Request)
	UpdatePreferences(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{settingsService: settingsService}
}

func (h *settingsHandlerImpl) GetOrganization(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetOrganization(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settingsHandlerImpl) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateOrganizationSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settingsService.UpdateOrganization(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settingsHandlerImpl) GetPreferences(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetPreferences(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settingsHandlerImpl) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSystemPreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settingsService.UpdatePreferences(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
