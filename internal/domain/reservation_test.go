package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReservation_Overlaps(t *testing.T) {
	r := &Reservation{
		CheckIn:  date(2026, time.January, 5),
		CheckOut: date(2026, time.January, 8),
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want bool
	}{
		{
			name: "полное совпадение",
			from: date(2026, time.January, 5),
			to:   date(2026, time.January, 8),
			want: true,
		},
		{
			name: "частичное пересечение справа",
			from: date(2026, time.January, 7),
			to:   date(2026, time.January, 10),
			want: true,
		},
		{
			name: "заезд в день выезда не конфликтует",
			from: date(2026, time.January, 8),
			to:   date(2026, time.January, 10),
			want: false,
		},
		{
			name: "выезд в день заезда не конфликтует",
			from: date(2026, time.January, 2),
			to:   date(2026, time.January, 5),
			want: false,
		},
		{
			name: "диапазон внутри бронирования",
			from: date(2026, time.January, 6),
			to:   date(2026, time.January, 7),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Overlaps(tt.from, tt.to))
		})
	}
}

func TestReservation_CoversDay(t *testing.T) {
	r := &Reservation{
		CheckIn:  date(2026, time.June, 1),
		CheckOut: date(2026, time.June, 3),
	}

	assert.True(t, r.CoversDay(date(2026, time.June, 1)))
	assert.True(t, r.CoversDay(date(2026, time.June, 2)))
	// День выезда свободен
	assert.False(t, r.CoversDay(date(2026, time.June, 3)))
	assert.False(t, r.CoversDay(date(2026, time.May, 31)))
}

func TestReservation_IsActive(t *testing.T) {
	active := []ReservationStatus{StatusConfirmed, StatusCheckedIn, StatusCheckedOut}
	for _, status := range active {
		r := &Reservation{Status: status}
		assert.True(t, r.IsActive(), "status %s must be active", status)
	}

	inactive := []ReservationStatus{StatusPending, StatusCancelled}
	for _, status := range inactive {
		r := &Reservation{Status: status}
		assert.False(t, r.IsActive(), "status %s must not be active", status)
	}
}

func TestReservation_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCheckedIn}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCheckedOut}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCancelled}).CanBeCancelled())
}

func TestReservation_Nights(t *testing.T) {
	r := &Reservation{
		CheckIn:  date(2026, time.January, 5),
		CheckOut: date(2026, time.January, 8),
	}
	assert.Equal(t, 3, r.Nights())
}

func TestClassifyDay(t *testing.T) {
	threshold := 0.20

	assert.Equal(t, DayStatusFull, ClassifyDay(0, 10, threshold))
	// 2 из 10 на пороге LIMITED
	assert.Equal(t, DayStatusLimited, ClassifyDay(2, 10, threshold))
	assert.Equal(t, DayStatusLimited, ClassifyDay(1, 10, threshold))
	assert.Equal(t, DayStatusAvailable, ClassifyDay(3, 10, threshold))
	assert.Equal(t, DayStatusAvailable, ClassifyDay(10, 10, threshold))
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, DayStyle{Color: "#e74c3c", TextColor: "#ffffff"}, StyleFor(DayStatusFull))
	assert.Equal(t, DayStyle{Color: "#f39c12", TextColor: "#ffffff"}, StyleFor(DayStatusLimited))
	assert.Equal(t, DayStyle{Color: "#2ecc71", TextColor: "#ffffff"}, StyleFor(DayStatusAvailable))
}
