package block

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

const table = "blocks"

var columns = []string{
	"id",
	"date_key",
	"professional_id",
	"admin_id",
	"slot_id",
	"created_at",
}

// Repository репозиторий для работы с блокировками дней и слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку
// slot_id = NULL означает блокировку всего дня.
// Повтор идентичной блокировки отсекают частичные уникальные индексы
func (r *Repository) Create(ctx context.Context, block *domain.Block) (*domain.Block, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns("date_key", "professional_id", "admin_id", "slot_id").
		Values(
			string(block.DateKey),
			block.ProfessionalID,
			block.AdminID,
			block.SlotID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *block
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt)
	if pgerr.IsUniqueViolation(err) {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// List возвращает блокировки по фильтру, упорядоченные по дате и id
func (r *Repository) List(ctx context.Context, filter domain.BlockFilter) ([]*domain.Block, error) {
	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if filter.DateKey != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date_key": string(*filter.DateKey)})
	}
	if filter.ProfessionalID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": *filter.ProfessionalID})
	}
	if filter.AdminID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"admin_id": *filter.AdminID})
	}

	query, args, err := selectBuilder.OrderBy("date_key ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.Block, 0)
	for rows.Next() {
		var b domain.Block
		var dateKey string
		var slotID sql.NullString

		if err := rows.Scan(&b.ID, &dateKey, &b.ProfessionalID, &b.AdminID, &slotID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		b.DateKey = domain.DateKey(dateKey)
		if slotID.Valid {
			id := slotID.String
			b.SlotID = &id
		}
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete удаляет блокировку по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}
