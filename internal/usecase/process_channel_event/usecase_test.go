package process_channel_event

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

const testSecret = "test-secret"

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockRoomRepo struct {
	rooms  map[string]*domain.Room
	called bool
}

func (m *mockRoomRepo) GetByExternalID(ctx context.Context, externalID string) (*domain.Room, error) {
	m.called = true
	room, ok := m.rooms[externalID]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type mockReservationRepo struct {
	existing  map[string]*domain.Reservation
	createErr error
	created   []*domain.Reservation
	called    bool
}

func (m *mockReservationRepo) FindByExternalID(ctx context.Context, externalID string) (*domain.Reservation, error) {
	m.called = true
	r, ok := m.existing[externalID]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (m *mockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	m.called = true
	if m.createErr != nil {
		return nil, m.createErr
	}

	out := *reservation
	out.ID = int64(len(m.created) + 1)
	m.created = append(m.created, &out)

	if m.existing == nil {
		m.existing = make(map[string]*domain.Reservation)
	}
	m.existing[*reservation.ExternalReservationID] = &out

	return &out, nil
}

type mockMetrics struct {
	reservations  []string
	channelEvents map[string]int
}

func (m *mockMetrics) IncReservationCreated(source string) {
	m.reservations = append(m.reservations, source)
}

func (m *mockMetrics) IncChannelEvent(event, outcome string) {
	if m.channelEvents == nil {
		m.channelEvents = make(map[string]int)
	}
	m.channelEvents[event+"/"+outcome]++
}

func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func bookingCreatedPayload() []byte {
	return []byte(`{
		"event": "booking.created",
		"data": {
			"room_id": "CH-101",
			"booking_id": "BK-555",
			"guest_details": {
				"first_name": "Anna",
				"last_name": "Smirnova",
				"email": "anna@example.com",
				"phone": "+79001234567"
			},
			"checkin_date": "2026-09-15",
			"checkout_date": "2026-09-18",
			"total_price": 450.0,
			"adults": 2,
			"children": 1
		}
	}`)
}

func newTestUseCase(rooms *mockRoomRepo, reservations *mockReservationRepo, metrics *mockMetrics) *UseCase {
	return NewUseCase(rooms, reservations, testSecret, metrics, nopLogger{})
}

func mappedRooms() *mockRoomRepo {
	return &mockRoomRepo{rooms: map[string]*domain.Room{
		"CH-101": {ID: 7, Name: "Standard", Capacity: 2},
	}}
}

func TestExecute_BookingCreated(t *testing.T) {
	reservations := &mockReservationRepo{}
	metrics := &mockMetrics{}
	uc := newTestUseCase(mappedRooms(), reservations, metrics)

	payload := bookingCreatedPayload()
	result, err := uc.Execute(context.Background(), payload, sign(payload, testSecret))
	require.NoError(t, err)

	assert.Equal(t, OutcomeCreated, result.Outcome)
	require.NotNil(t, result.ReservationID)

	require.Len(t, reservations.created, 1)
	created := reservations.created[0]
	assert.Equal(t, int64(7), created.RoomID)
	assert.Equal(t, domain.StatusConfirmed, created.Status)
	assert.Equal(t, domain.SourceExternal, created.Source)
	require.NotNil(t, created.ExternalReservationID)
	assert.Equal(t, "BK-555", *created.ExternalReservationID)
	assert.Equal(t, "Anna Smirnova", created.GuestName)
	assert.Equal(t, 450.0, created.TotalPrice)

	assert.Equal(t, []string{"external"}, metrics.reservations)
	assert.Equal(t, 1, metrics.channelEvents["booking.created/created"])
}

func TestExecute_ReplayIsIdempotent(t *testing.T) {
	reservations := &mockReservationRepo{}
	metrics := &mockMetrics{}
	uc := newTestUseCase(mappedRooms(), reservations, metrics)

	payload := bookingCreatedPayload()
	signature := sign(payload, testSecret)

	first, err := uc.Execute(context.Background(), payload, signature)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, first.Outcome)

	// Канал передоставляет то же уведомление: второго бронирования нет
	second, err := uc.Execute(context.Background(), payload, signature)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, second.Outcome)

	assert.Len(t, reservations.created, 1)
	assert.Equal(t, 1, metrics.channelEvents["booking.created/duplicate"])
}

func TestExecute_TamperedSignatureRejectedBeforeStore(t *testing.T) {
	rooms := mappedRooms()
	reservations := &mockReservationRepo{}
	uc := newTestUseCase(rooms, reservations, &mockMetrics{})

	payload := bookingCreatedPayload()
	tampered := append([]byte{}, payload...)
	tampered[0] ^= 0xFF

	_, err := uc.Execute(context.Background(), tampered, sign(payload, testSecret))
	assert.ErrorIs(t, err, ErrInvalidSignature)

	// До хранилища дело не дошло
	assert.False(t, rooms.called)
	assert.False(t, reservations.called)
}

func TestExecute_MissingSignature(t *testing.T) {
	uc := newTestUseCase(mappedRooms(), &mockReservationRepo{}, &mockMetrics{})

	_, err := uc.Execute(context.Background(), bookingCreatedPayload(), "")
	assert.ErrorIs(t, err, ErrMissingSignature)
}

func TestExecute_MissingSecret(t *testing.T) {
	uc := NewUseCase(mappedRooms(), &mockReservationRepo{}, "", &mockMetrics{}, nopLogger{})

	payload := bookingCreatedPayload()
	_, err := uc.Execute(context.Background(), payload, sign(payload, testSecret))
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestExecute_SignaturePrefixAccepted(t *testing.T) {
	uc := newTestUseCase(mappedRooms(), &mockReservationRepo{}, &mockMetrics{})

	payload := bookingCreatedPayload()
	result, err := uc.Execute(context.Background(), payload, "sha256="+sign(payload, testSecret))
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, result.Outcome)
}

func TestExecute_UnmappedRoomAcknowledged(t *testing.T) {
	reservations := &mockReservationRepo{}
	metrics := &mockMetrics{}
	uc := newTestUseCase(&mockRoomRepo{rooms: map[string]*domain.Room{}}, reservations, metrics)

	payload := bookingCreatedPayload()
	result, err := uc.Execute(context.Background(), payload, sign(payload, testSecret))
	require.NoError(t, err)

	assert.Equal(t, OutcomeRoomUnmapped, result.Outcome)
	assert.Empty(t, reservations.created)
	assert.Equal(t, 1, metrics.channelEvents["booking.created/room_unmapped"])
}

func TestExecute_UnknownEventAcknowledged(t *testing.T) {
	reservations := &mockReservationRepo{}
	metrics := &mockMetrics{}
	uc := newTestUseCase(mappedRooms(), reservations, metrics)

	payload := []byte(`{"event": "booking.cancelled", "data": {"booking_id": "BK-555"}}`)
	result, err := uc.Execute(context.Background(), payload, sign(payload, testSecret))
	require.NoError(t, err)

	assert.Equal(t, OutcomeIgnoredEvent, result.Outcome)
	assert.False(t, reservations.called)
	assert.Equal(t, 1, metrics.channelEvents["booking.cancelled/ignored_event"])
}

func TestExecute_InvalidPayloadAcknowledged(t *testing.T) {
	uc := newTestUseCase(mappedRooms(), &mockReservationRepo{}, &mockMetrics{})

	payload := []byte(`{not json`)
	result, err := uc.Execute(context.Background(), payload, sign(payload, testSecret))
	require.NoError(t, err)

	assert.Equal(t, OutcomeInvalidPayload, result.Outcome)
}

func TestExecute_InvalidDatesAcknowledged(t *testing.T) {
	uc := newTestUseCase(mappedRooms(), &mockReservationRepo{}, &mockMetrics{})

	payload := []byte(`{
		"event": "booking.created",
		"data": {
			"room_id": "CH-101",
			"booking_id": "BK-556",
			"checkin_date": "2026-09-18",
			"checkout_date": "2026-09-15"
		}
	}`)
	result, err := uc.Execute(context.Background(), payload, sign(payload, testSecret))
	require.NoError(t, err)

	assert.Equal(t, OutcomeInvalidPayload, result.Outcome)
}

func TestExecute_InsertRaceResolvedAsDuplicate(t *testing.T) {
	// Предварительная проверка ничего не нашла, но вставку выиграла
	// конкурентная копия уведомления: уникальный индекс вернул конфликт
	reservations := &mockReservationRepo{createErr: reservationRepo.ErrDuplicateExternalID}
	metrics := &mockMetrics{}
	uc := newTestUseCase(mappedRooms(), reservations, metrics)

	payload := bookingCreatedPayload()
	result, err := uc.Execute(context.Background(), payload, sign(payload, testSecret))
	require.NoError(t, err)

	assert.Equal(t, OutcomeDuplicate, result.Outcome)
	assert.Empty(t, metrics.reservations)
	assert.Equal(t, 1, metrics.channelEvents["booking.created/duplicate"])
}
