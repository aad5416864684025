package domain

import "time"

// Settings is the singleton record of booking business rules
type Settings struct {
	ID int64

	// MinAdvanceDays minimum number of full days between booking and check-in
	MinAdvanceDays int
	// MaxAdvanceDays maximum number of days a check-in may lie in the future
	MaxAdvanceDays int
	// CancellationHours free-cancellation window before check-in
	CancellationHours int

	Currency        string
	TaxRate         float64
	MaintenanceMode bool

	UpdatedAt time.Time
}
