package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	"github.com/m04kA/JWL-RentalService/pkg/dbmetrics"
	"github.com/m04kA/JWL-RentalService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий настроек бронирования
// Настройки изменяет отдельный админский контур, движок только читает.
// Снэпшот перечитывается на каждый запрос бронирования — кэширование
// между запросами запрещено, чтобы не работать с устаревшим паролем или буфером
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает снэпшот настроек бронирования
// Если строка настроек отсутствует, возвращает значения по умолчанию:
// без пароля, буфер domain.DefaultTurnaroundBufferDays
func (r *Repository) Get(ctx context.Context) (*domain.BookingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"booking_password",
		"turnaround_buffer_days",
		"updated_at",
	).
		From("booking_settings").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.BookingSettings
	var bufferDays sql.NullInt64
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.BookingPassword,
		&bufferDays,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultBookingSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrExecQuery, err)
	}

	if bufferDays.Valid {
		s.TurnaroundBufferDays = int(bufferDays.Int64)
	} else {
		s.TurnaroundBufferDays = domain.DefaultTurnaroundBufferDays
	}
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
