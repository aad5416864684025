package get_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	settingsService "github.com/m04kA/SMC-HotelService/internal/service/settings"
)

const msgSettingsUnavailable = "настройки временно недоступны"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrUnavailable):
			h.logger.Warn("GET /settings - Settings unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSettingsUnavailable)

		default:
			h.logger.Error("GET /settings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSettings(settings))
}
