package process_channel_event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

// UseCase reconciler уведомлений внешнего канала бронирования
//
// Состояния обработки уведомления:
//
//	RECEIVED -> SIGNATURE_VERIFIED -> {ROOM_RESOLVED | ROOM_UNMAPPED}
//	         -> {BOOKING_CREATED | BOOKING_DUPLICATE} -> ACKNOWLEDGED
//
// Доставка канала at-least-once, поэтому повторная доставка одного
// уведомления обязана давать ровно одно бронирование. Единственный
// неуспешный ответ наружу — ошибка аутентификации; все остальные исходы
// подтверждаются, чтобы канал не устраивал шторм повторных доставок.
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	secret          string
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр reconciler
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	secret string,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		secret:          secret,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute обрабатывает сырое уведомление канала
//
// Ошибка возвращается только при неуспешной аутентификации, до любого
// обращения к хранилищу. Для аутентифицированных уведомлений всегда
// возвращается Result с исходом обработки.
func (uc *UseCase) Execute(ctx context.Context, payload []byte, signature string) (*Result, error) {
	// 1. Проверяем подпись до чтения полезной нагрузки и до хранилища
	if err := verifySignature(payload, signature, uc.secret); err != nil {
		uc.logger.Warn("ProcessChannelEvent: signature verification failed: %v", err)
		return nil, err
	}

	// 2. Парсим уведомление
	var notification Notification
	if err := json.Unmarshal(payload, &notification); err != nil {
		uc.logger.Error("ProcessChannelEvent: failed to parse payload: %v", err)
		return uc.acknowledge("unknown", OutcomeInvalidPayload, nil)
	}

	uc.logger.Info("ProcessChannelEvent: event=%s booking_id=%s room_id=%s",
		notification.Event, notification.Data.BookingID, notification.Data.RoomID)

	// 3. Пока материализуем только booking.created; модификации и отмены
	// подтверждаем без обработки, фиксируя пробел в логе
	if notification.Event != EventBookingCreated {
		uc.logger.Warn("ProcessChannelEvent: event type %q is not handled yet, acknowledging without action",
			notification.Event)
		return uc.acknowledge(notification.Event, OutcomeIgnoredEvent, nil)
	}

	return uc.processBookingCreated(ctx, &notification)
}

func (uc *UseCase) processBookingCreated(ctx context.Context, n *Notification) (*Result, error) {
	reservation, err := uc.mapReservation(&n.Data)
	if err != nil {
		uc.logger.Error("ProcessChannelEvent: invalid booking payload booking_id=%s: %v", n.Data.BookingID, err)
		return uc.acknowledge(n.Event, OutcomeInvalidPayload, nil)
	}

	// Привязываем номер канала к внутреннему номеру
	room, err := uc.roomRepo.GetByExternalID(ctx, n.Data.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			// Инвентарь не наш: подтверждаем без изменений, иначе канал
			// будет бесконечно передоставлять событие
			uc.logger.Warn("ProcessChannelEvent: channel room %q is not mapped to any room, acknowledging",
				n.Data.RoomID)
			return uc.acknowledge(n.Event, OutcomeRoomUnmapped, nil)
		}
		uc.logger.Error("ProcessChannelEvent: failed to resolve room %q: %v", n.Data.RoomID, err)
		return uc.acknowledge(n.Event, OutcomeError, nil)
	}
	reservation.RoomID = room.ID

	// Предварительная проверка на дубликат: только чтобы не шуметь
	// ошибками констрейнта, гарантию дает уникальный индекс в БД
	existing, err := uc.reservationRepo.FindByExternalID(ctx, n.Data.BookingID)
	if err == nil {
		uc.logger.Info("ProcessChannelEvent: booking_id=%s already applied as reservation id=%d",
			n.Data.BookingID, existing.ID)
		return uc.acknowledge(n.Event, OutcomeDuplicate, &existing.ID)
	}
	if !errors.Is(err, reservationRepo.ErrReservationNotFound) {
		uc.logger.Error("ProcessChannelEvent: duplicate pre-check failed for booking_id=%s: %v",
			n.Data.BookingID, err)
		return uc.acknowledge(n.Event, OutcomeError, nil)
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		// Конкурентная повторная доставка: вставку выиграла другая копия
		// уведомления, разрешаем конфликт как дубликат
		if errors.Is(err, reservationRepo.ErrDuplicateExternalID) {
			uc.logger.Info("ProcessChannelEvent: booking_id=%s lost insert race, resolving as duplicate",
				n.Data.BookingID)
			return uc.acknowledge(n.Event, OutcomeDuplicate, nil)
		}
		uc.logger.Error("ProcessChannelEvent: failed to create reservation for booking_id=%s: %v",
			n.Data.BookingID, err)
		return uc.acknowledge(n.Event, OutcomeError, nil)
	}

	uc.metrics.IncReservationCreated(string(domain.SourceExternal))
	uc.logger.Info("ProcessChannelEvent: created reservation id=%d for booking_id=%s",
		created.ID, n.Data.BookingID)

	return uc.acknowledge(n.Event, OutcomeCreated, &created.ID)
}

// mapReservation конвертирует данные уведомления во внутреннее бронирование
func (uc *UseCase) mapReservation(data *NotificationData) (*domain.Reservation, error) {
	if data.BookingID == "" {
		return nil, fmt.Errorf("booking_id is required")
	}
	if data.RoomID == "" {
		return nil, fmt.Errorf("room_id is required")
	}

	checkIn, err := time.Parse(domain.DateFormat, data.CheckinDate)
	if err != nil {
		return nil, fmt.Errorf("invalid checkin_date %q: %v", data.CheckinDate, err)
	}

	checkOut, err := time.Parse(domain.DateFormat, data.CheckoutDate)
	if err != nil {
		return nil, fmt.Errorf("invalid checkout_date %q: %v", data.CheckoutDate, err)
	}

	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("checkout_date must be after checkin_date")
	}

	guestName := strings.TrimSpace(data.GuestDetails.FirstName + " " + data.GuestDetails.LastName)

	reservation := &domain.Reservation{
		CheckIn:               checkIn,
		CheckOut:              checkOut,
		Status:                domain.StatusConfirmed,
		Source:                domain.SourceExternal,
		ExternalReservationID: ptr.Ptr(data.BookingID),
		GuestName:             guestName,
		GuestEmail:            data.GuestDetails.Email,
		Adults:                data.Adults,
		Children:              data.Children,
		TotalPrice:            data.TotalPrice,
	}

	if data.GuestDetails.Phone != "" {
		reservation.GuestPhone = ptr.Ptr(data.GuestDetails.Phone)
	}

	return reservation, nil
}

func (uc *UseCase) acknowledge(event string, outcome Outcome, reservationID *int64) (*Result, error) {
	uc.metrics.IncChannelEvent(event, string(outcome))
	return &Result{
		Event:         event,
		Outcome:       outcome,
		ReservationID: reservationID,
	}, nil
}
