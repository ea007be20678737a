package list_reservations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type stubLedger struct {
	lastFilter domain.ReservationFilter
	err        error
}

func (s *stubLedger) ListReservations(_ context.Context, f domain.ReservationFilter) ([]*domain.Reservation, error) {
	s.lastFilter = f
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.Reservation{
		{ID: 1, DateKey: "2024-06-10", SlotID: "2", ProfessionalID: "1", AdminID: 7, CreatedAt: time.Now()},
	}, nil
}

func TestHandler_Filter(t *testing.T) {
	stub := &stubLedger{}
	h := NewHandler(stub, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/reservations?dateKey=2024-06-10&adminId=7&professionalId=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, stub.lastFilter.DateKey)
	assert.Equal(t, domain.DateKey("2024-06-10"), *stub.lastFilter.DateKey)
	assert.Equal(t, int64(7), *stub.lastFilter.AdminID)
	assert.Equal(t, "1", *stub.lastFilter.ProfessionalID)

	var resp []models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2", resp[0].TimeSlotID)
}

func TestHandler_NoFilter(t *testing.T) {
	stub := &stubLedger{}
	h := NewHandler(stub, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/reservations", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ReservationFilter{}, stub.lastFilter)
}

func TestHandler_Errors(t *testing.T) {
	h := NewHandler(&stubLedger{}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/reservations?dateKey=tomorrow", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/reservations?adminId=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&stubLedger{err: ledger.ErrUnavailable}, logger.NewNop())
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/reservations", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
