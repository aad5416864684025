package domain

import "time"

// Room represents a room type with one or more identical physical units.
// Rooms are owned by the room-management collaborator and are read-only here.
type Room struct {
	ID            int64
	Name          string
	Capacity      int // number of identical physical units, >= 1
	PricePerNight float64

	// ExternalRoomID maps the room to its identifier on the external
	// channel. Nil when the room is not listed there.
	ExternalRoomID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasChannelMapping returns true if the room is listed on the external channel
func (r *Room) HasChannelMapping() bool {
	return r.ExternalRoomID != nil && *r.ExternalRoomID != ""
}
