package channel_webhook

import (
	"io"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	processChannelEvent "github.com/m04kA/SMC-HotelService/internal/usecase/process_channel_event"
)

const (
	msgInvalidBody      = "не удалось прочитать тело запроса"
	msgInvalidSignature = "некорректная подпись уведомления"

	// maxPayloadBytes ограничивает размер тела уведомления канала
	maxPayloadBytes = 1 << 20
)

// WebhookResponse HTTP response model: подтверждение уведомления с исходом
type WebhookResponse struct {
	Event         string `json:"event"`
	Outcome       string `json:"outcome"`
	ReservationID *int64 `json:"reservationId,omitempty"`
}

type Handler struct {
	useCase         ProcessChannelEventUseCase
	signatureHeader string
	logger          Logger
}

func NewHandler(useCase ProcessChannelEventUseCase, signatureHeader string, logger Logger) *Handler {
	return &Handler{
		useCase:         useCase,
		signatureHeader: signatureHeader,
		logger:          logger,
	}
}

// Handle POST /api/v1/channel/webhook
//
// Подпись считается от сырых байт тела, поэтому тело читается целиком
// до какого-либо парсинга. Единственный неуспешный статус наружу — 401
// при ошибке аутентификации; любое аутентифицированное уведомление
// подтверждается 200 с исходом обработки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /channel/webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	defer r.Body.Close()

	signature := r.Header.Get(h.signatureHeader)

	result, err := h.useCase.Execute(r.Context(), payload, signature)
	if err != nil {
		// Execute возвращает ошибку только при неуспешной аутентификации
		h.logger.Warn("POST /channel/webhook - Authentication failed: %v", err)
		handlers.RespondUnauthorized(w, msgInvalidSignature)
		return
	}

	h.logger.Info("POST /channel/webhook - Acknowledged: event=%s, outcome=%s", result.Event, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResult(result))
}

func fromUseCaseResult(result *processChannelEvent.Result) *WebhookResponse {
	return &WebhookResponse{
		Event:         result.Event,
		Outcome:       string(result.Outcome),
		ReservationID: result.ReservationID,
	}
}
