package delete_block

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/service/ledger"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type stubLedger struct {
	err error
}

func (s *stubLedger) DeleteBlock(_ context.Context, id int64) error {
	if id == 404 {
		return fmt.Errorf("%w: block %d", ledger.ErrNotFound, id)
	}
	return s.err
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{name: "deleted", id: "3", status: http.StatusNoContent},
		{name: "not found", id: "404", status: http.StatusNotFound},
		{name: "zero id", id: "0", status: http.StatusBadRequest},
		{name: "store down", id: "3", err: ledger.ErrUnavailable, status: http.StatusServiceUnavailable},
		{name: "unexpected", id: "3", err: fmt.Errorf("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubLedger{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/blocks/"+tt.id, nil), map[string]string{"id": tt.id})
			h.Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
