package update_settings

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	MinAdvanceDays    int     `json:"minAdvanceDays"`
	MaxAdvanceDays    int     `json:"maxAdvanceDays"`
	CancellationHours int     `json:"cancellationHours"`
	Currency          string  `json:"currency"`
	TaxRate           float64 `json:"taxRate"`
	MaintenanceMode   bool    `json:"maintenanceMode"`
}

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

// ToDomainSettings конвертирует HTTP запрос в domain модель
func (r *UpdateSettingsRequest) ToDomainSettings() *domain.Settings {
	return &domain.Settings{
		MinAdvanceDays:    r.MinAdvanceDays,
		MaxAdvanceDays:    r.MaxAdvanceDays,
		CancellationHours: r.CancellationHours,
		Currency:          r.Currency,
		TaxRate:           r.TaxRate,
		MaintenanceMode:   r.MaintenanceMode,
	}
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
