package block

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

const insertQuery = "INSERT INTO blocks (date_key,professional_id,admin_id,slot_id) VALUES ($1,$2,$3,$4) RETURNING id, created_at"

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs("2024-06-10", "1", int64(7), "2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))
	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs("2024-06-10", "1", int64(7), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(4), now))

	slotBlock, err := repo.Create(context.Background(), &domain.Block{DateKey: "2024-06-10", ProfessionalID: "1", AdminID: 7, SlotID: ptr.Ptr("2")})
	require.NoError(t, err)
	assert.Equal(t, int64(3), slotBlock.ID)
	assert.False(t, slotBlock.IsWholeDay())

	dayBlock, err := repo.Create(context.Background(), &domain.Block{DateKey: "2024-06-10", ProfessionalID: "1", AdminID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(4), dayBlock.ID)
	assert.True(t, dayBlock.IsWholeDay())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Block{DateKey: "2024-06-10", ProfessionalID: "1", AdminID: 7})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, date_key, professional_id, admin_id, slot_id, created_at FROM blocks WHERE admin_id = $1 ORDER BY date_key ASC, id ASC",
	)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "2024-06-10", "1", int64(7), nil, now).
			AddRow(int64(2), "2024-06-11", "1", int64(7), "5", now))

	list, err := repo.List(context.Background(), domain.BlockFilter{AdminID: ptr.Ptr(int64(7))})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].IsWholeDay())
	require.NotNil(t, list[1].SlotID)
	assert.Equal(t, "5", *list[1].SlotID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM blocks WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 9), ErrBlockNotFound)
}
