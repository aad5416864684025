package settings

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Cache кеш бизнес-настроек с TTL
//
// Явный компонент вместо глобального состояния: хранит одно значение,
// время загрузки и TTL. Читатели работают конкурентно, перезагрузка
// выполняется одним писателем. Неудачная перезагрузка оставляет
// предыдущее значение на месте: устаревшие настройки лучше, чем никакие.
type Cache struct {
	store        SettingsStore
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu       sync.RWMutex
	value    *domain.Settings
	loadedAt time.Time
}

// NewCache создает новый кеш настроек
func NewCache(store SettingsStore, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		store:        store,
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Get возвращает настройки, при необходимости перезагружая их из хранилища
//
// Если перезагрузка не удалась, но в кеше есть устаревшее значение,
// возвращается оно. ErrUnavailable возвращается только когда кеш пуст
// и хранилище недоступно.
func (c *Cache) Get(ctx context.Context) (*domain.Settings, error) {
	now := c.timeProvider.Now()

	c.mu.RLock()
	if c.value != nil && now.Sub(c.loadedAt) < c.ttl {
		value := c.value
		c.mu.RUnlock()
		return value, nil
	}
	c.mu.RUnlock()

	return c.reload(ctx)
}

// Refresh принудительно перезагружает настройки из хранилища
// Используется после административного обновления, чтобы устаревшие
// правила не действовали до истечения TTL
func (c *Cache) Refresh(ctx context.Context) error {
	_, err := c.reload(ctx)
	return err
}

// Invalidate сбрасывает отметку времени загрузки: следующий Get
// перечитает настройки из хранилища
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.loadedAt = time.Time{}
	c.mu.Unlock()
}

func (c *Cache) reload(ctx context.Context) (*domain.Settings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.timeProvider.Now()

	// Другой писатель мог успеть перезагрузить значение, пока мы ждали lock
	if c.value != nil && now.Sub(c.loadedAt) < c.ttl {
		return c.value, nil
	}

	loaded, err := c.store.Load(ctx)
	if err != nil {
		if c.value != nil {
			c.logger.Warn("settings cache: reload failed, keeping stale value: %v", err)
			return c.value, nil
		}
		c.logger.Error("settings cache: reload failed with empty cache: %v", err)
		return nil, ErrUnavailable
	}

	c.value = loaded
	c.loadedAt = now

	return c.value, nil
}
