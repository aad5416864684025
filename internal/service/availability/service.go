package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/availability/models"
)

// Service сервис расчета доступности номеров
//
// Только читает из хранилища бронирований; запись идет через путь прямого
// бронирования и reconciler внешнего канала. Результаты детерминированы
// и не имеют побочных эффектов.
type Service struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	timeProvider    TimeProvider
	logger          Logger

	// lowInventoryThreshold доля общей вместимости, ниже которой день LIMITED
	lowInventoryThreshold float64
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	lowInventoryThreshold float64,
	logger Logger,
) *Service {
	if lowInventoryThreshold <= 0 {
		lowInventoryThreshold = domain.DefaultLowInventoryThreshold
	}
	return &Service{
		reservationRepo:       reservationRepo,
		roomRepo:              roomRepo,
		timeProvider:          &RealTimeProvider{},
		logger:                logger,
		lowInventoryThreshold: lowInventoryThreshold,
	}
}

// RoomAvailability вычисляет доступность номера по дням в диапазоне [from, to)
//
// Диапазон в прошлом не фильтруется: темпоральная политика относится к
// валидатору правил, а не к расчету доступности.
func (s *Service) RoomAvailability(ctx context.Context, roomID int64, from, to time.Time) (*models.RoomAvailabilityResponse, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidRange)
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("RoomAvailability: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("RoomAvailability: failed to get room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: RoomAvailability - get room: %v", ErrInternal, err)
	}

	days, err := s.daysForRoom(ctx, room, from, to)
	if err != nil {
		return nil, err
	}

	availableNights, bookedNights := countNights(days)

	return &models.RoomAvailabilityResponse{
		RoomID:          room.ID,
		RoomName:        room.Name,
		Capacity:        room.Capacity,
		From:            truncateToDay(from),
		To:              truncateToDay(to),
		Days:            days,
		AvailableNights: availableNights,
		BookedNights:    bookedNights,
	}, nil
}

// DateAvailability возвращает доступность каждого номера на конкретную дату
func (s *Service) DateAvailability(ctx context.Context, date time.Time) (*models.DateAvailabilityResponse, error) {
	rooms, err := s.roomRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("DateAvailability: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: DateAvailability - list rooms: %v", ErrInternal, err)
	}

	day := truncateToDay(date)
	entries := make([]models.DateAvailabilityEntry, 0, len(rooms))

	for _, room := range rooms {
		days, err := s.daysForRoom(ctx, room, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}

		// Однодневный диапазон всегда дает ровно один день
		d := days[0]
		entries = append(entries, models.DateAvailabilityEntry{
			RoomID:         room.ID,
			RoomName:       room.Name,
			Capacity:       room.Capacity,
			BookedUnits:    d.BookedUnits,
			AvailableUnits: d.AvailableUnits,
			IsAvailable:    d.IsAvailable,
		})
	}

	return &models.DateAvailabilityResponse{
		Date:  day,
		Rooms: entries,
	}, nil
}

// MonthlyAvailability возвращает доступность номера по дням месяца
func (s *Service) MonthlyAvailability(ctx context.Context, roomID int64, monthStart time.Time) (*models.MonthlyAvailabilityResponse, error) {
	from := truncateToDay(monthStart)
	resp, err := s.RoomAvailability(ctx, roomID, from, monthEnd(from))
	if err != nil {
		return nil, err
	}

	return &models.MonthlyAvailabilityResponse{
		RoomID:   resp.RoomID,
		RoomName: resp.RoomName,
		Capacity: resp.Capacity,
		Month:    from,
		Days:     resp.Days,
	}, nil
}

// MonthlyAggregated возвращает суммарную доступность всех номеров по дням
// месяца со статусной классификацией для календарного виджета
func (s *Service) MonthlyAggregated(ctx context.Context, monthStart time.Time) (*models.MonthlyAggregatedResponse, error) {
	from := truncateToDay(monthStart)
	to := monthEnd(from)

	rooms, err := s.roomRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("MonthlyAggregated: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: MonthlyAggregated - list rooms: %v", ErrInternal, err)
	}

	totalCapacity := 0
	perRoomDays := make([][]domain.DayAvailability, 0, len(rooms))

	for _, room := range rooms {
		totalCapacity += room.Capacity

		days, err := s.daysForRoom(ctx, room, from, to)
		if err != nil {
			return nil, err
		}
		perRoomDays = append(perRoomDays, days)
	}

	numDays := int(to.Sub(from).Hours() / 24)
	aggregated := make([]models.AggregatedDay, 0, numDays)

	for i := 0; i < numDays; i++ {
		available, booked := 0, 0
		for _, days := range perRoomDays {
			available += days[i].AvailableUnits
			booked += days[i].BookedUnits
		}

		aggregated = append(aggregated, s.aggregatedDay(from.AddDate(0, 0, i), available, booked, totalCapacity))
	}

	return &models.MonthlyAggregatedResponse{
		Month:         from,
		TotalCapacity: totalCapacity,
		Days:          aggregated,
	}, nil
}

// Overview возвращает сводку загрузки: сегодня против даты через неделю
func (s *Service) Overview(ctx context.Context) (*models.OverviewResponse, error) {
	today := truncateToDay(s.timeProvider.Now())
	nextWeek := today.AddDate(0, 0, 7)

	todayDay, err := s.aggregateSingleDay(ctx, today)
	if err != nil {
		return nil, err
	}

	nextWeekDay, err := s.aggregateSingleDay(ctx, nextWeek)
	if err != nil {
		return nil, err
	}

	return &models.OverviewResponse{
		Today:    *todayDay,
		NextWeek: *nextWeekDay,
	}, nil
}

// daysForRoom вычисляет доступность номера по дням, запрашивая из хранилища
// только бронирования, пересекающие диапазон
func (s *Service) daysForRoom(ctx context.Context, room *domain.Room, from, to time.Time) ([]domain.DayAvailability, error) {
	reservations, err := s.reservationRepo.FindOverlapping(ctx, room.ID, truncateToDay(from), truncateToDay(to))
	if err != nil {
		s.logger.Error("daysForRoom: failed to find overlapping reservations for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: daysForRoom - find overlapping: %v", ErrInternal, err)
	}

	return buildDays(room.Capacity, reservations, from, to), nil
}

func (s *Service) aggregateSingleDay(ctx context.Context, day time.Time) (*models.AggregatedDay, error) {
	resp, err := s.DateAvailability(ctx, day)
	if err != nil {
		return nil, err
	}

	available, booked, totalCapacity := 0, 0, 0
	for _, entry := range resp.Rooms {
		available += entry.AvailableUnits
		booked += entry.BookedUnits
		totalCapacity += entry.Capacity
	}

	result := s.aggregatedDay(day, available, booked, totalCapacity)
	return &result, nil
}

func (s *Service) aggregatedDay(date time.Time, available, booked, totalCapacity int) models.AggregatedDay {
	status := domain.ClassifyDay(available, totalCapacity, s.lowInventoryThreshold)
	style := domain.StyleFor(status)

	return models.AggregatedDay{
		Date:           date,
		AvailableUnits: available,
		BookedUnits:    booked,
		Status:         status,
		Color:          style.Color,
		TextColor:      style.TextColor,
	}
}
