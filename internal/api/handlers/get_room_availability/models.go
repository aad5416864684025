package get_room_availability

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/availability/models"
)

// DayResponse доступность номера на один день
type DayResponse struct {
	Date           string `json:"date"` // YYYY-MM-DD
	BookedUnits    int    `json:"bookedUnits"`
	AvailableUnits int    `json:"availableUnits"`
	IsAvailable    bool   `json:"isAvailable"`
}

// RoomAvailabilityResponse HTTP response model
type RoomAvailabilityResponse struct {
	RoomID          int64         `json:"roomId"`
	RoomName        string        `json:"roomName"`
	Capacity        int           `json:"capacity"`
	From            string        `json:"from"`
	To              string        `json:"to"`
	Days            []DayResponse `json:"days"`
	AvailableNights int           `json:"availableNights"`
	BookedNights    int           `json:"bookedNights"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RoomAvailabilityResponse) *RoomAvailabilityResponse {
	return &RoomAvailabilityResponse{
		RoomID:          resp.RoomID,
		RoomName:        resp.RoomName,
		Capacity:        resp.Capacity,
		From:            resp.From.Format(domain.DateFormat),
		To:              resp.To.Format(domain.DateFormat),
		Days:            DaysFromDomain(resp.Days),
		AvailableNights: resp.AvailableNights,
		BookedNights:    resp.BookedNights,
	}
}

// DaysFromDomain конвертирует дни доступности в HTTP модель
func DaysFromDomain(days []domain.DayAvailability) []DayResponse {
	out := make([]DayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, DayResponse{
			Date:           d.Date.Format(domain.DateFormat),
			BookedUnits:    d.BookedUnits,
			AvailableUnits: d.AvailableUnits,
			IsAvailable:    d.IsAvailable,
		})
	}
	return out
}
