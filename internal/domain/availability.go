package domain

import "time"

// DayAvailability is the derived availability of a single room on a single day
type DayAvailability struct {
	Date           time.Time
	BookedUnits    int
	AvailableUnits int
	IsAvailable    bool
}

// DayStatus is the aggregated status bucket of a calendar day across all rooms
type DayStatus string

const (
	DayStatusFull      DayStatus = "FULL"
	DayStatusLimited   DayStatus = "LIMITED"
	DayStatusAvailable DayStatus = "AVAILABLE"
)

// DayStyle is the fixed rendering style of a status bucket
type DayStyle struct {
	Color     string
	TextColor string
}

// StyleFor maps a status bucket to its rendering style.
// Pure and total: every bucket has exactly one style.
func StyleFor(status DayStatus) DayStyle {
	switch status {
	case DayStatusFull:
		return DayStyle{Color: "#e74c3c", TextColor: "#ffffff"}
	case DayStatusLimited:
		return DayStyle{Color: "#f39c12", TextColor: "#ffffff"}
	default:
		return DayStyle{Color: "#2ecc71", TextColor: "#ffffff"}
	}
}

// ClassifyDay buckets an aggregated day by remaining inventory.
// threshold is the LIMITED boundary as a fraction of total capacity.
func ClassifyDay(availableUnits, totalCapacity int, threshold float64) DayStatus {
	if availableUnits <= 0 {
		return DayStatusFull
	}
	if float64(availableUnits) <= threshold*float64(totalCapacity) {
		return DayStatusLimited
	}
	return DayStatusAvailable
}
