package get_overview

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/availability/models"
)

// AggregatedDayResponse суммарная доступность всех номеров на день
type AggregatedDayResponse struct {
	Date           string `json:"date"` // YYYY-MM-DD
	AvailableUnits int    `json:"availableUnits"`
	BookedUnits    int    `json:"bookedUnits"`
	Status         string `json:"status"` // FULL | LIMITED | AVAILABLE
	Color          string `json:"color"`
	TextColor      string `json:"textColor"`
}

// OverviewResponse HTTP response model
type OverviewResponse struct {
	Today    AggregatedDayResponse `json:"today"`
	NextWeek AggregatedDayResponse `json:"nextWeek"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.OverviewResponse) *OverviewResponse {
	return &OverviewResponse{
		Today:    dayFromService(resp.Today),
		NextWeek: dayFromService(resp.NextWeek),
	}
}

func dayFromService(d models.AggregatedDay) AggregatedDayResponse {
	return AggregatedDayResponse{
		Date:           d.Date.Format(domain.DateFormat),
		AvailableUnits: d.AvailableUnits,
		BookedUnits:    d.BookedUnits,
		Status:         string(d.Status),
		Color:          d.Color,
		TextColor:      d.TextColor,
	}
}
