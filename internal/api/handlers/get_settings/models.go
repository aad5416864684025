package get_settings

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// SettingsResponse HTTP response model
type SettingsResponse struct {
	MinAdvanceDays    int     `json:"minAdvanceDays"`
	MaxAdvanceDays    int     `json:"maxAdvanceDays"`
	CancellationHours int     `json:"cancellationHours"`
	Currency          string  `json:"currency"`
	TaxRate           float64 `json:"taxRate"`
	MaintenanceMode   bool    `json:"maintenanceMode"`
	UpdatedAt         string  `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в HTTP response
func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	return &SettingsResponse{
		MinAdvanceDays:    s.MinAdvanceDays,
		MaxAdvanceDays:    s.MaxAdvanceDays,
		CancellationHours: s.CancellationHours,
		Currency:          s.Currency,
		TaxRate:           s.TaxRate,
		MaintenanceMode:   s.MaintenanceMode,
		UpdatedAt:         s.UpdatedAt.Format(time.RFC3339),
	}
}
