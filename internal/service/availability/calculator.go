package availability

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// countCoveringDay подсчитывает количество активных бронирований,
// занимающих номер в ночь указанного дня
//
// Интервал бронирования полуоткрытый [checkIn, checkOut): день выезда
// не занят, выезд и заезд в один день не конфликтуют.
func countCoveringDay(day time.Time, reservations []*domain.Reservation) int {
	count := 0
	for _, r := range reservations {
		// Пропускаем неактивные бронирования (pending, отмененные)
		if !r.IsActive() {
			continue
		}
		if r.CoversDay(day) {
			count++
		}
	}
	return count
}

// buildDays вычисляет доступность по дням для диапазона [from, to)
// из набора бронирований, пересекающих этот диапазон
//
// availableUnits не бывает отрицательным: при овербукинге на стороне
// канала показываем ноль, а не отрицательный остаток.
func buildDays(capacity int, reservations []*domain.Reservation, from, to time.Time) []domain.DayAvailability {
	days := make([]domain.DayAvailability, 0)

	for day := truncateToDay(from); day.Before(to); day = day.AddDate(0, 0, 1) {
		booked := countCoveringDay(day, reservations)

		available := capacity - booked
		if available < 0 {
			available = 0
		}

		days = append(days, domain.DayAvailability{
			Date:           day,
			BookedUnits:    booked,
			AvailableUnits: available,
			IsAvailable:    available > 0,
		})
	}

	return days
}

// countNights подсчитывает агрегаты по диапазону: сколько ночей
// номер доступен хотя бы в одном юните и сколько ночей занят полностью
func countNights(days []domain.DayAvailability) (availableNights, bookedNights int) {
	for _, d := range days {
		if d.IsAvailable {
			availableNights++
		} else {
			bookedNights++
		}
	}
	return availableNights, bookedNights
}

// monthEnd возвращает первый день следующего месяца
func monthEnd(monthStart time.Time) time.Time {
	return truncateToDay(monthStart).AddDate(0, 1, 0)
}
