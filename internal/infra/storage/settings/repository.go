package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения SQL запросов
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Repository репозиторий для работы с бизнес-настройками (singleton запись)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load загружает запись настроек
func (r *Repository) Load(ctx context.Context) (*domain.Settings, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"min_advance_days",
		"max_advance_days",
		"cancellation_hours",
		"currency",
		"tax_rate",
		"maintenance_mode",
		"updated_at",
	).
		From("settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	var updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.MinAdvanceDays,
		&s.MaxAdvanceDays,
		&s.CancellationHours,
		&s.Currency,
		&s.TaxRate,
		&s.MaintenanceMode,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan settings: %v", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Update обновляет запись настроек
func (r *Repository) Update(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	query, args, err := psqlbuilder.Update("settings").
		Set("min_advance_days", s.MinAdvanceDays).
		Set("max_advance_days", s.MaxAdvanceDays).
		Set("cancellation_hours", s.CancellationHours).
		Set("currency", s.Currency).
		Set("tax_rate", s.TaxRate).
		Set("maintenance_mode", s.MaintenanceMode).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time

	return s, nil
}
