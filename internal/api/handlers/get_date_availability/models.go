package get_date_availability

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/availability/models"
)

// RoomEntryResponse доступность одного номера на дату
type RoomEntryResponse struct {
	RoomID         int64  `json:"roomId"`
	RoomName       string `json:"roomName"`
	Capacity       int    `json:"capacity"`
	BookedUnits    int    `json:"bookedUnits"`
	AvailableUnits int    `json:"availableUnits"`
	IsAvailable    bool   `json:"isAvailable"`
}

// DateAvailabilityResponse HTTP response model
type DateAvailabilityResponse struct {
	Date  string              `json:"date"` // YYYY-MM-DD
	Rooms []RoomEntryResponse `json:"rooms"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.DateAvailabilityResponse) *DateAvailabilityResponse {
	rooms := make([]RoomEntryResponse, 0, len(resp.Rooms))
	for _, entry := range resp.Rooms {
		rooms = append(rooms, RoomEntryResponse{
			RoomID:         entry.RoomID,
			RoomName:       entry.RoomName,
			Capacity:       entry.Capacity,
			BookedUnits:    entry.BookedUnits,
			AvailableUnits: entry.AvailableUnits,
			IsAvailable:    entry.IsAvailable,
		})
	}

	return &DateAvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Rooms: rooms,
	}
}
