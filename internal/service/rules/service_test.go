package rules

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockSettingsProvider struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettingsProvider) Get(ctx context.Context) (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

func newTestService(settings *domain.Settings, now time.Time) *Service {
	svc := NewService(&mockSettingsProvider{settings: settings}, nopLogger{})
	svc.timeProvider = &fixedTime{now: now}
	return svc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidate_MinAdvanceViolated(t *testing.T) {
	// Минимум 2 дня до заезда, заезд завтра
	svc := newTestService(
		&domain.Settings{MinAdvanceDays: 2, MaxAdvanceDays: 365},
		time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC),
	)

	result := svc.Validate(context.Background(), date(2026, time.June, 2), date(2026, time.June, 5))

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "minimum advance booking period")
}

func TestValidate_MaxAdvanceViolated(t *testing.T) {
	svc := newTestService(
		&domain.Settings{MinAdvanceDays: 0, MaxAdvanceDays: 30},
		time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC),
	)

	result := svc.Validate(context.Background(), date(2026, time.August, 1), date(2026, time.August, 3))

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "maximum advance booking period")
}

func TestValidate_PastCheckIn(t *testing.T) {
	svc := newTestService(
		&domain.Settings{MinAdvanceDays: 0, MaxAdvanceDays: 365},
		time.Date(2026, time.June, 10, 10, 0, 0, 0, time.UTC),
	)

	result := svc.Validate(context.Background(), date(2026, time.June, 5), date(2026, time.June, 8))

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "check-in date cannot be in the past")
}

func TestValidate_CheckOutNotAfterCheckIn(t *testing.T) {
	svc := newTestService(
		&domain.Settings{MinAdvanceDays: 0, MaxAdvanceDays: 365},
		time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC),
	)

	result := svc.Validate(context.Background(), date(2026, time.June, 5), date(2026, time.June, 5))

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "check-out date must be after check-in date")
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	// Заезд в прошлом нарушает и минимальный горизонт, и запрет прошлого,
	// и даты равны: все нарушения в одном ответе
	svc := newTestService(
		&domain.Settings{MinAdvanceDays: 2, MaxAdvanceDays: 365},
		time.Date(2026, time.June, 10, 10, 0, 0, 0, time.UTC),
	)

	result := svc.Validate(context.Background(), date(2026, time.June, 5), date(2026, time.June, 5))

	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 3)
}

func TestValidate_Passes(t *testing.T) {
	svc := newTestService(
		&domain.Settings{MinAdvanceDays: 2, MaxAdvanceDays: 365},
		time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC),
	)

	result := svc.Validate(context.Background(), date(2026, time.June, 10), date(2026, time.June, 14))

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidate_FailOpenWhenSettingsUnavailable(t *testing.T) {
	svc := NewService(&mockSettingsProvider{err: errors.New("store down")}, nopLogger{})
	svc.timeProvider = &fixedTime{now: time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)}

	// Даты заведомо нарушают правила, но настройки недоступны
	result := svc.Validate(context.Background(), date(2020, time.January, 1), date(2020, time.January, 1))

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestCancellationDeadline(t *testing.T) {
	svc := newTestService(
		&domain.Settings{CancellationHours: 48},
		time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC),
	)

	deadline := svc.CancellationDeadline(context.Background(), date(2026, time.June, 10))

	require.NotNil(t, deadline)
	assert.Equal(t, date(2026, time.June, 8), *deadline)
}

func TestCancellationDeadline_SettingsUnavailable(t *testing.T) {
	svc := NewService(&mockSettingsProvider{err: errors.New("store down")}, nopLogger{})

	deadline := svc.CancellationDeadline(context.Background(), date(2026, time.June, 10))

	assert.Nil(t, deadline)
}
