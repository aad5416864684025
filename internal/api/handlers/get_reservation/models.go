package get_reservation

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
)

// ReservationResponse HTTP response model
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
	GuestPhone            *string `json:"guestPhone,omitempty"`
	Adults                int     `json:"adults"`
	Children              int     `json:"children"`
	TotalPrice            float64 `json:"totalPrice"`
	Notes                 *string `json:"notes,omitempty"`
	CancellationReason    *string `json:"cancellationReason,omitempty"`
	CancelledAt           *string `json:"cancelledAt,omitempty"`
	CancellationDeadline  *string `json:"cancellationDeadline,omitempty"`
	CreatedAt             string  `json:"createdAt"`
	UpdatedAt             string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationResponse) *ReservationResponse {
	return &ReservationResponse{
		ID:                    resp.ID,
		RoomID:                resp.RoomID,
		CheckIn:               resp.CheckIn.Format(domain.DateFormat),
		CheckOut:              resp.CheckOut.Format(domain.DateFormat),
		Status:                resp.Status,
		Source:                resp.Source,
		ExternalReservationID: resp.ExternalReservationID,
		GuestName:             resp.GuestName,
		GuestEmail:            resp.GuestEmail,
		GuestPhone:            resp.GuestPhone,
		Adults:                resp.Adults,
		Children:              resp.Children,
		TotalPrice:            resp.TotalPrice,
		Notes:                 resp.Notes,
		CancellationReason:    resp.CancellationReason,
		CancelledAt:           formatTimePtr(resp.CancelledAt),
		CancellationDeadline:  formatTimePtr(resp.CancellationDeadline),
		CreatedAt:             resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             resp.UpdatedAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
