package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// ReservationResponse модель бронирования для слоя API
type ReservationResponse struct {
	ID                    int64
	RoomID                int64
	CheckIn               time.Time
	CheckOut              time.Time
	Status                string
	Source                string
	ExternalReservationID *string
	GuestName             string
	GuestEmail            string
	GuestPhone            *string
	Adults                int
	Children              int
	TotalPrice            float64
	Notes                 *string
	CancellationReason    *string
	CancelledAt           *time.Time
	CancellationDeadline  *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse
	Total        int
}

// ListReservationsRequest запрос списка бронирований с фильтрацией
type ListReservationsRequest struct {
	RoomID          *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	Reason string
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                    r.ID,
		RoomID:                r.RoomID,
		CheckIn:               r.CheckIn,
		CheckOut:              r.CheckOut,
		Status:                string(r.Status),
		Source:                string(r.Source),
		ExternalReservationID: r.ExternalReservationID,
		GuestName:             r.GuestName,
		GuestEmail:            r.GuestEmail,
		GuestPhone:            r.GuestPhone,
		Adults:                r.Adults,
		Children:              r.Children,
		TotalPrice:            r.TotalPrice,
		Notes:                 r.Notes,
		CancellationReason:    r.CancellationReason,
		CancelledAt:           r.CancelledAt,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: out,
		Total:        len(out),
	}
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(s string) (domain.ReservationStatus, bool) {
	switch domain.ReservationStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCheckedIn,
		domain.StatusCheckedOut, domain.StatusCancelled:
		return domain.ReservationStatus(s), true
	default:
		return "", false
	}
}
