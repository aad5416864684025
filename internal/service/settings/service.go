package settings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Service сервис административного доступа к настройкам
// Обновление настроек сразу перечитывает кеш, чтобы валидатор правил
// не работал по устаревшим значениям
type Service struct {
	store  SettingsStore
	cache  *Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(store SettingsStore, cache *Cache, logger Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Get возвращает текущие настройки (через кеш)
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	return s.cache.Get(ctx)
}

// Update обновляет настройки и инвалидирует кеш
func (s *Service) Update(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	s.logger.Info("UpdateSettings: min_advance=%d, max_advance=%d, cancellation_hours=%d, maintenance=%t",
		settings.MinAdvanceDays, settings.MaxAdvanceDays, settings.CancellationHours, settings.MaintenanceMode)

	// Настройки хранятся одной записью; ID подставляем из текущей
	current, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("UpdateSettings: failed to load current settings: %v", err)
		return nil, fmt.Errorf("%w: Update - load current: %v", ErrInternal, err)
	}
	settings.ID = current.ID

	updated, err := s.store.Update(ctx, settings)
	if err != nil {
		s.logger.Error("UpdateSettings: store error: %v", err)
		return nil, fmt.Errorf("%w: Update - store error: %v", ErrInternal, err)
	}

	s.cache.Invalidate()
	if err := s.cache.Refresh(ctx); err != nil {
		// Кеш перечитается при следующем Get; обновление уже применено
		s.logger.Warn("UpdateSettings: cache refresh failed: %v", err)
	}

	s.logger.Info("UpdateSettings: settings updated, cache refreshed")
	return updated, nil
}
