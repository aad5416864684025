package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockReservationRepo struct {
	reservations map[int64][]*domain.Reservation
	err          error
}

func (m *mockReservationRepo) FindOverlapping(ctx context.Context, roomID int64, from, to time.Time) ([]*domain.Reservation, error) {
	if m.err != nil {
		return nil, m.err
	}

	out := make([]*domain.Reservation, 0)
	for _, r := range m.reservations[roomID] {
		if r.Overlaps(from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockRoomRepo struct {
	rooms map[int64]*domain.Room
	err   error
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	room, ok := m.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

func (m *mockRoomRepo) ListAll(ctx context.Context) ([]*domain.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Room, 0, len(m.rooms))
	for id := int64(1); id <= int64(len(m.rooms)); id++ {
		if room, ok := m.rooms[id]; ok {
			out = append(out, room)
		}
	}
	return out, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

func newTestService(rooms *mockRoomRepo, reservations *mockReservationRepo) *Service {
	return NewService(reservations, rooms, 0.20, nopLogger{})
}

func TestRoomAvailability_RoomNotFound(t *testing.T) {
	svc := newTestService(
		&mockRoomRepo{rooms: map[int64]*domain.Room{}},
		&mockReservationRepo{},
	)

	_, err := svc.RoomAvailability(context.Background(), 42, date(2026, time.June, 1), date(2026, time.June, 5))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomAvailability_InvalidRange(t *testing.T) {
	svc := newTestService(
		&mockRoomRepo{rooms: map[int64]*domain.Room{}},
		&mockReservationRepo{},
	)

	_, err := svc.RoomAvailability(context.Background(), 1, date(2026, time.June, 5), date(2026, time.June, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRoomAvailability_Aggregates(t *testing.T) {
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Standard", Capacity: 1},
	}}
	reservations := &mockReservationRepo{reservations: map[int64][]*domain.Reservation{
		1: {
			{
				RoomID:   1,
				CheckIn:  date(2026, time.June, 1),
				CheckOut: date(2026, time.June, 3),
				Status:   domain.StatusConfirmed,
			},
		},
	}}

	resp, err := newTestService(rooms, reservations).
		RoomAvailability(context.Background(), 1, date(2026, time.June, 1), date(2026, time.June, 4))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.RoomID)
	require.Len(t, resp.Days, 3)
	assert.Equal(t, []int{0, 0, 1}, []int{
		resp.Days[0].AvailableUnits,
		resp.Days[1].AvailableUnits,
		resp.Days[2].AvailableUnits,
	})
	assert.Equal(t, 1, resp.AvailableNights)
	assert.Equal(t, 2, resp.BookedNights)
}

func TestDateAvailability_PerRoom(t *testing.T) {
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Standard", Capacity: 2},
		2: {ID: 2, Name: "Suite", Capacity: 1},
	}}
	reservations := &mockReservationRepo{reservations: map[int64][]*domain.Reservation{
		2: {
			{
				RoomID:   2,
				CheckIn:  date(2026, time.June, 1),
				CheckOut: date(2026, time.June, 2),
				Status:   domain.StatusConfirmed,
			},
		},
	}}

	resp, err := newTestService(rooms, reservations).
		DateAvailability(context.Background(), date(2026, time.June, 1))
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)

	assert.Equal(t, 2, resp.Rooms[0].AvailableUnits)
	assert.True(t, resp.Rooms[0].IsAvailable)

	assert.Equal(t, 0, resp.Rooms[1].AvailableUnits)
	assert.False(t, resp.Rooms[1].IsAvailable)
}

func TestMonthlyAggregated_Buckets(t *testing.T) {
	// 10 юнитов суммарно, порог LIMITED 20% => 2 юнита
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Standard", Capacity: 8},
		2: {ID: 2, Name: "Suite", Capacity: 2},
	}}

	// 1 июня занято 8 из 10 (LIMITED), 2 июня занято 10 из 10 (FULL),
	// остальные дни свободны (AVAILABLE)
	june1 := make([]*domain.Reservation, 0, 8)
	for i := 0; i < 8; i++ {
		june1 = append(june1, &domain.Reservation{
			RoomID:   1,
			CheckIn:  date(2026, time.June, 1),
			CheckOut: date(2026, time.June, 2),
			Status:   domain.StatusConfirmed,
		})
	}
	june2room1 := make([]*domain.Reservation, 0, 8)
	for i := 0; i < 8; i++ {
		june2room1 = append(june2room1, &domain.Reservation{
			RoomID:   1,
			CheckIn:  date(2026, time.June, 2),
			CheckOut: date(2026, time.June, 3),
			Status:   domain.StatusConfirmed,
		})
	}
	june2room2 := []*domain.Reservation{
		{RoomID: 2, CheckIn: date(2026, time.June, 2), CheckOut: date(2026, time.June, 3), Status: domain.StatusConfirmed},
		{RoomID: 2, CheckIn: date(2026, time.June, 2), CheckOut: date(2026, time.June, 3), Status: domain.StatusConfirmed},
	}

	reservations := &mockReservationRepo{reservations: map[int64][]*domain.Reservation{
		1: append(june1, june2room1...),
		2: june2room2,
	}}

	resp, err := newTestService(rooms, reservations).
		MonthlyAggregated(context.Background(), date(2026, time.June, 1))
	require.NoError(t, err)

	assert.Equal(t, 10, resp.TotalCapacity)
	require.Len(t, resp.Days, 30)

	assert.Equal(t, domain.DayStatusLimited, resp.Days[0].Status)
	assert.Equal(t, "#f39c12", resp.Days[0].Color)

	assert.Equal(t, domain.DayStatusFull, resp.Days[1].Status)
	assert.Equal(t, "#e74c3c", resp.Days[1].Color)

	assert.Equal(t, domain.DayStatusAvailable, resp.Days[2].Status)
	assert.Equal(t, "#2ecc71", resp.Days[2].Color)
}

func TestOverview_TodayVersusNextWeek(t *testing.T) {
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Standard", Capacity: 1},
	}}
	reservations := &mockReservationRepo{reservations: map[int64][]*domain.Reservation{
		1: {
			{
				RoomID:   1,
				CheckIn:  date(2026, time.June, 1),
				CheckOut: date(2026, time.June, 2),
				Status:   domain.StatusConfirmed,
			},
		},
	}}

	svc := newTestService(rooms, reservations)
	svc.timeProvider = &fixedTime{now: time.Date(2026, time.June, 1, 15, 30, 0, 0, time.UTC)}

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.June, 1), resp.Today.Date)
	assert.Equal(t, domain.DayStatusFull, resp.Today.Status)

	assert.Equal(t, date(2026, time.June, 8), resp.NextWeek.Date)
	assert.Equal(t, domain.DayStatusAvailable, resp.NextWeek.Status)
}

func TestRoomAvailability_RepositoryError(t *testing.T) {
	rooms := &mockRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Standard", Capacity: 1},
	}}
	reservations := &mockReservationRepo{err: errors.New("connection refused")}

	_, err := newTestService(rooms, reservations).
		RoomAvailability(context.Background(), 1, date(2026, time.June, 1), date(2026, time.June, 2))
	assert.ErrorIs(t, err, ErrInternal)
}
