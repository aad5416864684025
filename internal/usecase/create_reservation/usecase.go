package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// UseCase use case создания бронирования через прямой канал
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	ruleValidator   RuleValidator
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	ruleValidator RuleValidator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		ruleValidator:   ruleValidator,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%d, check_in=%s, check_out=%s, guest=%s",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.GuestEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Проверяем бизнес-правила; все нарушения собираются в один ответ
	result := uc.ruleValidator.Validate(ctx, req.CheckIn, req.CheckOut)
	if !result.Valid {
		uc.logger.Warn("CreateReservation: booking rules violated: %v", result.Errors)
		return nil, &ValidationError{Violations: result.Errors}
	}

	// 4. Создаем бронирование
	reservation := &domain.Reservation{
		RoomID:     room.ID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     domain.StatusConfirmed,
		Source:     domain.SourceDirect,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		Adults:     req.Adults,
		Children:   req.Children,
		TotalPrice: float64(reservationNights(req)) * room.PricePerNight,
		Notes:      req.Notes,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.metrics.IncReservationCreated(string(domain.SourceDirect))
	uc.logger.Info("CreateReservation: successfully created reservation id=%d", created.ID)

	return &Response{
		ID:         created.ID,
		RoomID:     created.RoomID,
		CheckIn:    created.CheckIn,
		CheckOut:   created.CheckOut,
		Status:     string(created.Status),
		Source:     string(created.Source),
		GuestName:  created.GuestName,
		GuestEmail: created.GuestEmail,
		GuestPhone: created.GuestPhone,
		Adults:     created.Adults,
		Children:   created.Children,
		TotalPrice: created.TotalPrice,
		Notes:      created.Notes,
		CreatedAt:  created.CreatedAt,
		UpdatedAt:  created.UpdatedAt,
	}, nil
}

// reservationNights количество ночей в запрошенном интервале [checkIn, checkOut)
func reservationNights(req *Request) int {
	nights := int(req.CheckOut.Sub(req.CheckIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}
