package item

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	"github.com/m04kA/JWL-RentalService/pkg/dbmetrics"
	"github.com/m04kA/JWL-RentalService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var itemColumns = []string{
	"id",
	"name",
	"category",
	"daily_price",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога изделий
// Каталог управляется внешним админским контуром, движок бронирования только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория изделий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает изделие по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %v", ErrScanRow, err)
	}

	return item, nil
}

// GetByIDs получает набор изделий по списку ID
// Отсутствующие изделия не считаются ошибкой — вызывающая сторона
// сверяет результат со списком запрошенных ID
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Item, error) {
	if len(ids) == 0 {
		return []*domain.Item{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0, len(ids))
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// rowScanner объединяет *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var item domain.Item
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.DailyPrice,
		&item.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}
