package dbmetrics

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	operations []string
	errors     int
}

func (c *recordingCollector) ObserveDBQuery(operation string, _ time.Duration, err error) {
	c.operations = append(c.operations, operation)
	if err != nil {
		c.errors++
	}
}

func (c *recordingCollector) SetDBConnections(int, int, int) {}

func TestDB_ObservesOperations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := &recordingCollector{}
	wrapped := Wrap(db, collector)

	mock.ExpectExec("DELETE FROM reservations").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id FROM blocks").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM reservations WHERE id = $1", 1)
	require.NoError(t, err)

	rows, err := wrapped.QueryContext(context.Background(), "SELECT id FROM blocks")
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	assert.Equal(t, []string{"delete", "select"}, collector.operations)
	assert.Equal(t, 0, collector.errors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "insert", operation("  INSERT INTO reservations"))
	assert.Equal(t, "unknown", operation(""))
}
