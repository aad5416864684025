package list_reservations

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
)

// ReservationResponse HTTP модель бронирования в списке
type ReservationResponse struct {
	ID                    int64   `json:"id"`
	RoomID                int64   `json:"roomId"`
	CheckIn               string  `json:"checkIn"`
	CheckOut              string  `json:"checkOut"`
	Status                string  `json:"status"`
	Source                string  `json:"source"`
	ExternalReservationID *string `json:"externalReservationId,omitempty"`
	GuestName             string  `json:"guestName"`
	GuestEmail            string  `json:"guestEmail"`
	Adults                int     `json:"adults"`
	Children              int     `json:"children"`
	TotalPrice            float64 `json:"totalPrice"`
	CreatedAt             string  `json:"createdAt"`
}

// ReservationListResponse HTTP response model
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationListResponse) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(resp.Reservations))
	for _, r := range resp.Reservations {
		out = append(out, ReservationResponse{
			ID:                    r.ID,
			RoomID:                r.RoomID,
			CheckIn:               r.CheckIn.Format(domain.DateFormat),
			CheckOut:              r.CheckOut.Format(domain.DateFormat),
			Status:                r.Status,
			Source:                r.Source,
			ExternalReservationID: r.ExternalReservationID,
			GuestName:             r.GuestName,
			GuestEmail:            r.GuestEmail,
			Adults:                r.Adults,
			Children:              r.Children,
			TotalPrice:            r.TotalPrice,
			CreatedAt:             r.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ReservationListResponse{
		Reservations: out,
		Total:        resp.Total,
	}
}
