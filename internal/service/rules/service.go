package rules

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Service валидатор бизнес-правил бронирования
//
// Правила мягкие: при недоступности настроек валидатор пропускает
// бронирование (fail-open), доступность пути бронирования важнее
// соблюдения правил.
type Service struct {
	settings     SettingsProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр валидатора правил
func NewService(settings SettingsProvider, logger Logger) *Service {
	return &Service{
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Validate проверяет даты бронирования по всем правилам независимо
// и собирает все нарушения
func (s *Service) Validate(ctx context.Context, checkIn, checkOut time.Time) *ValidationResult {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		// Fail-open: правила не применяются, бронирование проходит
		s.logger.Warn("Validate: settings unavailable, failing open: %v", err)
		return &ValidationResult{Valid: true, Errors: []string{}}
	}

	now := s.timeProvider.Now()
	violations := make([]string, 0)

	daysUntilCheckIn := int(math.Ceil(checkIn.Sub(now).Hours() / 24))

	if daysUntilCheckIn < cfg.MinAdvanceDays {
		violations = append(violations, fmt.Sprintf(
			"check-in must be at least %d day(s) in advance (minimum advance booking period)",
			cfg.MinAdvanceDays))
	}

	if daysUntilCheckIn > cfg.MaxAdvanceDays {
		violations = append(violations, fmt.Sprintf(
			"check-in must be at most %d day(s) in advance (maximum advance booking period)",
			cfg.MaxAdvanceDays))
	}

	if isDateInPast(checkIn, now) {
		violations = append(violations, "check-in date cannot be in the past")
	}

	if !checkOut.After(checkIn) {
		violations = append(violations, "check-out date must be after check-in date")
	}

	if len(violations) > 0 {
		s.logger.Info("Validate: check_in=%s check_out=%s rejected: %v",
			checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"), violations)
	}

	return &ValidationResult{
		Valid:  len(violations) == 0,
		Errors: violations,
	}
}

// CancellationDeadline возвращает момент, до которого бронирование можно
// отменить бесплатно: checkIn - cancellationHours
// Возвращает nil, когда настройки недоступны
func (s *Service) CancellationDeadline(ctx context.Context, checkIn time.Time) *time.Time {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Warn("CancellationDeadline: settings unavailable: %v", err)
		return nil
	}

	deadline := checkIn.Add(-time.Duration(cfg.CancellationHours) * time.Hour)
	return &deadline
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
