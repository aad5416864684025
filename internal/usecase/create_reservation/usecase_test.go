package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/rules"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockReservationRepo struct {
	created *domain.Reservation
	err     error
}

func (m *mockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = reservation
	out := *reservation
	out.ID = 101
	return &out, nil
}

type mockRoomRepo struct {
	room *domain.Room
	err  error
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.room, nil
}

type mockValidator struct {
	result *rules.ValidationResult
}

func (m *mockValidator) Validate(ctx context.Context, checkIn, checkOut time.Time) *rules.ValidationResult {
	return m.result
}

type mockMetrics struct {
	createdSources []string
}

func (m *mockMetrics) IncReservationCreated(source string) {
	m.createdSources = append(m.createdSources, source)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		RoomID:     1,
		CheckIn:    date(2026, time.September, 15),
		CheckOut:   date(2026, time.September, 18),
		GuestName:  "Ivan Petrov",
		GuestEmail: "ivan@example.com",
		Adults:     2,
	}
}

func TestExecute_Success(t *testing.T) {
	reservations := &mockReservationRepo{}
	metrics := &mockMetrics{}
	uc := NewUseCase(
		reservations,
		&mockRoomRepo{room: &domain.Room{ID: 1, Name: "Standard", Capacity: 2, PricePerNight: 100}},
		&mockValidator{result: &rules.ValidationResult{Valid: true}},
		metrics,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.SourceDirect), resp.Source)
	// 3 ночи по 100
	assert.Equal(t, 300.0, resp.TotalPrice)

	require.NotNil(t, reservations.created)
	assert.Nil(t, reservations.created.ExternalReservationID)
	assert.Equal(t, []string{"direct"}, metrics.createdSources)
}

func TestExecute_RulesViolated(t *testing.T) {
	reservations := &mockReservationRepo{}
	uc := NewUseCase(
		reservations,
		&mockRoomRepo{room: &domain.Room{ID: 1, PricePerNight: 100}},
		&mockValidator{result: &rules.ValidationResult{
			Valid:  false,
			Errors: []string{"check-in must be at least 2 day(s) in advance (minimum advance booking period)"},
		}},
		&mockMetrics{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Violations, 1)
	assert.Contains(t, validationErr.Violations[0], "minimum advance booking period")

	// Бронирование не создается при нарушении правил
	assert.Nil(t, reservations.created)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := NewUseCase(
		&mockReservationRepo{},
		&mockRoomRepo{err: roomRepo.ErrRoomNotFound},
		&mockValidator{result: &rules.ValidationResult{Valid: true}},
		&mockMetrics{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(
		&mockReservationRepo{},
		&mockRoomRepo{},
		&mockValidator{result: &rules.ValidationResult{Valid: true}},
		&mockMetrics{},
		nopLogger{},
	)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"нулевой roomID", func(r *Request) { r.RoomID = 0 }},
		{"пустое имя гостя", func(r *Request) { r.GuestName = "" }},
		{"пустой email", func(r *Request) { r.GuestEmail = "" }},
		{"ноль взрослых", func(r *Request) { r.Adults = 0 }},
		{"отрицательное число детей", func(r *Request) { r.Children = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	metrics := &mockMetrics{}
	uc := NewUseCase(
		&mockReservationRepo{err: errors.New("connection refused")},
		&mockRoomRepo{room: &domain.Room{ID: 1, PricePerNight: 100}},
		&mockValidator{result: &rules.ValidationResult{Valid: true}},
		metrics,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, metrics.createdSources)
}
