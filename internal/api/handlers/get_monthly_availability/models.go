package get_monthly_availability

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/availability/models"
)

// DayResponse доступность номера на один день месяца
type DayResponse struct {
	Date           string `json:"date"` // YYYY-MM-DD
	BookedUnits    int    `json:"bookedUnits"`
	AvailableUnits int    `json:"availableUnits"`
	IsAvailable    bool   `json:"isAvailable"`
}

// MonthlyAvailabilityResponse HTTP response model
type MonthlyAvailabilityResponse struct {
	RoomID   int64         `json:"roomId"`
	RoomName string        `json:"roomName"`
	Capacity int           `json:"capacity"`
	Month    string        `json:"month"` // YYYY-MM
	Days     []DayResponse `json:"days"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.MonthlyAvailabilityResponse) *MonthlyAvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Date:           d.Date.Format(domain.DateFormat),
			BookedUnits:    d.BookedUnits,
			AvailableUnits: d.AvailableUnits,
			IsAvailable:    d.IsAvailable,
		})
	}

	return &MonthlyAvailabilityResponse{
		RoomID:   resp.RoomID,
		RoomName: resp.RoomName,
		Capacity: resp.Capacity,
		Month:    resp.Month.Format(domain.MonthFormat),
		Days:     days,
	}
}
