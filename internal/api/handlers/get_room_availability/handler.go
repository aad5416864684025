package get_room_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	availabilityService "github.com/m04kA/SMC-HotelService/internal/service/availability"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgInvalidFrom   = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo     = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidRange  = "некорректный диапазон дат: to раньше from"
	msgRoomNotFound  = "номер не найден"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	from, err := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/availability - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/availability - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	result, err := h.service.RoomAvailability(r.Context(), roomID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidRange):
			h.logger.Warn("GET /rooms/{roomId}/availability - Invalid range: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, availabilityService.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{roomId}/availability - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
