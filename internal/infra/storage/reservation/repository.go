package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"date_key",
	"slot_id",
	"professional_id",
	"admin_id",
	"created_at",
}

// Repository репозиторий для работы с бронированиями слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование
// Уникальность (date_key, slot_id, professional_id) обеспечивает уникальный индекс,
// поэтому из двух конкурентных вставок одна получит ErrAlreadyExists
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns("date_key", "slot_id", "professional_id", "admin_id").
		Values(
			string(reservation.DateKey),
			reservation.SlotID,
			reservation.ProfessionalID,
			reservation.AdminID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *reservation
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt)
	if pgerr.IsUniqueViolation(err) {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// List возвращает бронирования по фильтру, упорядоченные по дате и id
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
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

	return r.scanReservations(rows)
}

// Delete удаляет бронирование по ID
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
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var dateKey string

		err := rows.Scan(
			&res.ID,
			&dateKey,
			&res.SlotID,
			&res.ProfessionalID,
			&res.AdminID,
			&res.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.DateKey = domain.DateKey(dateKey)
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
