package settings

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

type mockStore struct {
	settings  *domain.Settings
	err       error
	loadCalls int
}

func (m *mockStore) Load(ctx context.Context) (*domain.Settings, error) {
	m.loadCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

func (m *mockStore) Update(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	m.settings = s
	return s, nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func newTestCache(store *mockStore, ttl time.Duration) (*Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewCache(store, ttl, nopLogger{})
	cache.timeProvider = clock
	return cache, clock
}

func TestCache_LoadsOnceWithinTTL(t *testing.T) {
	store := &mockStore{settings: &domain.Settings{MinAdvanceDays: 2}}
	cache, clock := newTestCache(store, 5*time.Minute)

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.MinAdvanceDays)

	// Повторные чтения в пределах TTL идут из кеша
	clock.now = clock.now.Add(time.Minute)
	_, err = cache.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, store.loadCalls)
}

func TestCache_ReloadsAfterTTL(t *testing.T) {
	store := &mockStore{settings: &domain.Settings{MinAdvanceDays: 2}}
	cache, clock := newTestCache(store, 5*time.Minute)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	store.settings = &domain.Settings{MinAdvanceDays: 7}
	clock.now = clock.now.Add(6 * time.Minute)

	reloaded, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, reloaded.MinAdvanceDays)
	assert.Equal(t, 2, store.loadCalls)
}

func TestCache_StaleFallbackOnReloadFailure(t *testing.T) {
	store := &mockStore{settings: &domain.Settings{MinAdvanceDays: 2}}
	cache, clock := newTestCache(store, 5*time.Minute)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	// Хранилище упало после истечения TTL: возвращаем устаревшее значение
	store.err = errors.New("connection refused")
	clock.now = clock.now.Add(10 * time.Minute)

	stale, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stale.MinAdvanceDays)
}

func TestCache_UnavailableWhenEmptyAndStoreDown(t *testing.T) {
	store := &mockStore{err: errors.New("connection refused")}
	cache, _ := newTestCache(store, 5*time.Minute)

	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCache_InvalidateForcesReload(t *testing.T) {
	store := &mockStore{settings: &domain.Settings{MinAdvanceDays: 2}}
	cache, _ := newTestCache(store, 5*time.Minute)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	store.settings = &domain.Settings{MinAdvanceDays: 9}
	cache.Invalidate()

	reloaded, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, reloaded.MinAdvanceDays)
	assert.Equal(t, 2, store.loadCalls)
}

func TestService_UpdateRefreshesCache(t *testing.T) {
	store := &mockStore{settings: &domain.Settings{ID: 1, MinAdvanceDays: 2}}
	cache, _ := newTestCache(store, 5*time.Minute)
	svc := NewService(store, cache, nopLogger{})

	// Прогреваем кеш старым значением
	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), &domain.Settings{MinAdvanceDays: 5, MaxAdvanceDays: 180})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.MinAdvanceDays)

	// Следующее чтение через кеш видит новое значение без ожидания TTL
	fresh, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, fresh.MinAdvanceDays)
}
