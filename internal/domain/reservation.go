package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
)

// ReservationSource identifies which booking channel created a reservation
type ReservationSource string

const (
	SourceDirect   ReservationSource = "direct"
	SourceExternal ReservationSource = "external"
)

// Reservation represents a room reservation in the system
// The stay is a half-open interval [CheckIn, CheckOut): the check-out day
// is free for a same-day turnover.
type Reservation struct {
	ID       int64
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
	Status   ReservationStatus
	Source   ReservationSource

	// ExternalReservationID is set only for reservations ingested from the
	// external channel. It is the idempotency key: the store enforces its
	// uniqueness.
	ExternalReservationID *string

	GuestName  string
	GuestEmail string
	GuestPhone *string
	Adults     int
	Children   int

	TotalPrice float64
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation counts toward room occupancy
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed ||
		r.Status == StatusCheckedIn ||
		r.Status == StatusCheckedOut
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// Nights returns the number of nights covered by the reservation
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Overlaps reports whether the stay intersects the half-open range [from, to)
func (r *Reservation) Overlaps(from, to time.Time) bool {
	return r.CheckIn.Before(to) && from.Before(r.CheckOut)
}

// CoversDay reports whether the guest occupies the room on the night of day
func (r *Reservation) CoversDay(day time.Time) bool {
	return !day.Before(r.CheckIn) && day.Before(r.CheckOut)
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	RoomID          *int64             // Фильтр по номеру (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	Source          *ReservationSource // Фильтр по каналу (опционально)
	IncludeInactive bool               // Включать ли pending и отмененные бронирования
}
