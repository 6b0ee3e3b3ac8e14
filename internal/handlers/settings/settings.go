package settings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/internal/dto"
	"github.com/fixora/adminapi/pkg/utils"
	"github.com/fixora/adminapi/pkg/validate"
)

type Service interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) (*domain.Settings, error)
}

type SettingsHandler struct {
	settingsService Service
}

func New(settingsService Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings godoc
//
//	@Summary		Read marketplace settings
//	@Description	Returns the singleton settings document; empty groups when nothing has been saved yet
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	domain.Settings
//	@Failure		500	{object}	utils.Response
//	@Router			/api/admin/settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}

// SaveSettings godoc
//
//	@Summary		Replace marketplace settings
//	@Description	Overwrites the whole settings document; all four groups must be present
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SaveSettingsRequestDTO	true	"Settings body"
//	@Success		200		{object}	domain.Settings
//	@Failure		400		{object}	utils.Response
//	@Failure		500		{object}	utils.Response
//	@Router			/api/admin/settings [put]
func (h *SettingsHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := h.settingsService.Save(r.Context(), &domain.Settings{
		App:     req.App,
		General: req.General,
		Policy:  req.Policy,
		Payment: req.Payment,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, saved)
}
