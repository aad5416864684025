package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	reservationsService "github.com/m04kA/SMC-HotelService/internal/service/reservations"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

const (
	msgInvalidRoomID    = "некорректный параметр room_id"
	msgInvalidStartDate = "некорректный параметр start_date, ожидается YYYY-MM-DD"
	msgInvalidEndDate   = "некорректный параметр end_date, ожидается YYYY-MM-DD"
	msgInvalidStatus    = "некорректный параметр status"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?room_id=&start_date=&end_date=&status=&include_inactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid query: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /reservations - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

func parseQuery(r *http.Request) (*models.ListReservationsRequest, error) {
	query := r.URL.Query()
	req := &models.ListReservationsRequest{}

	if raw := query.Get("room_id"); raw != "" {
		roomID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New(msgInvalidRoomID)
		}
		req.RoomID = ptr.Ptr(roomID)
	}

	if raw := query.Get("start_date"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, errors.New(msgInvalidStartDate)
		}
		req.StartDate = ptr.Ptr(startDate)
	}

	if raw := query.Get("end_date"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, errors.New(msgInvalidEndDate)
		}
		req.EndDate = ptr.Ptr(endDate)
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = ptr.Ptr(raw)
	}

	req.IncludeInactive = query.Get("include_inactive") == "true"

	return req, nil
}
