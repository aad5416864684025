package update_settings

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAdvance     = "min_advance_days не может быть больше max_advance_days"
	msgNegativeValues     = "значения настроек не могут быть отрицательными"
)

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

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.MinAdvanceDays < 0 || req.MaxAdvanceDays < 0 || req.CancellationHours < 0 || req.TaxRate < 0 {
		h.logger.Warn("PUT /settings - Negative values: min=%d, max=%d, cancellation=%d",
			req.MinAdvanceDays, req.MaxAdvanceDays, req.CancellationHours)
		handlers.RespondBadRequest(w, msgNegativeValues)
		return
	}

	if req.MinAdvanceDays > req.MaxAdvanceDays {
		h.logger.Warn("PUT /settings - Min advance greater than max: min=%d, max=%d",
			req.MinAdvanceDays, req.MaxAdvanceDays)
		handlers.RespondBadRequest(w, msgInvalidAdvance)
		return
	}

	updated, err := h.service.Update(r.Context(), req.ToDomainSettings())
	if err != nil {
		h.logger.Error("PUT /settings - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings - Settings updated: min_advance=%d, max_advance=%d",
		updated.MinAdvanceDays, updated.MaxAdvanceDays)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSettings(updated))
}
