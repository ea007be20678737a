package ledgerclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_block"
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_reservation"
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_catalog"
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_blocks"
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	"github.com/m04kA/SMC-ReservationService/internal/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.NewNop()
	store := memory.NewStore()
	cat := catalog.Default()
	svc := ledger.NewService(store.Reservations(), store.Blocks(), cat, nil, log)

	r := mux.NewRouter()
	r.HandleFunc("/reservations", create_reservation.NewHandler(svc, log).Handle).Methods(http.MethodPost)
	r.HandleFunc("/reservations", list_reservations.NewHandler(svc, log).Handle).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{id}", delete_reservation.NewHandler(svc, log).Handle).Methods(http.MethodDelete)
	r.HandleFunc("/blocks", create_block.NewHandler(svc, log).Handle).Methods(http.MethodPost)
	r.HandleFunc("/blocks", list_blocks.NewHandler(svc, log).Handle).Methods(http.MethodGet)
	r.HandleFunc("/catalog", get_catalog.NewHandler(cat).Handle).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ReservationLifecycle(t *testing.T) {
	ctx := context.Background()
	client := NewClient(newServer(t).URL+"/", time.Second, logger.NewNop())

	created, err := client.CreateReservation(ctx, "2024-06-10", "1", "2", 5)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.DateKey("2024-06-10"), created.DateKey)

	_, err = client.CreateReservation(ctx, "2024-06-10", "1", "2", 6)
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, ledger.ErrConflict)

	_, err = client.CreateReservation(ctx, "2024-06-10", "404", "2", 6)
	assert.ErrorIs(t, err, ErrInvalidInput)

	date := domain.DateKey("2024-06-10")
	list, err := client.ListReservations(ctx, domain.ReservationFilter{DateKey: &date, ProfessionalID: ptr.Ptr("2")})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	require.NoError(t, client.DeleteReservation(ctx, created.ID))
	assert.ErrorIs(t, client.DeleteReservation(ctx, created.ID), ErrNotFound)
}

func TestClient_Blocks(t *testing.T) {
	ctx := context.Background()
	client := NewClient(newServer(t).URL, time.Second, logger.NewNop())

	day, err := client.CreateBlock(ctx, "2024-06-11", nil, "1", 5)
	require.NoError(t, err)
	assert.True(t, day.IsWholeDay())

	slot, err := client.CreateBlock(ctx, "2024-06-11", ptr.Ptr("4"), "1", 5)
	require.NoError(t, err)
	require.NotNil(t, slot.SlotID)

	blocks, err := client.ListBlocks(ctx, domain.BlockFilter{AdminID: ptr.Ptr(int64(5))})
	require.NoError(t, err)
	assert.Len(t, blocks, 2)
	assert.True(t, domain.IsDayBlocked(blocks, "2024-06-11", "1"))
}

func TestClient_GetCatalog(t *testing.T) {
	client := NewClient(newServer(t).URL, time.Second, logger.NewNop())

	cat, err := client.GetCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Slots(), cat.Slots())
	assert.Equal(t, catalog.Default().Services(), cat.Services())
}

func TestClient_Unavailable(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	client := NewClient(srv.URL, time.Second, logger.NewNop())
	_, err := client.ListBlocks(ctx, domain.BlockFilter{})
	assert.ErrorIs(t, err, ErrUnavailable)

	srv.Close()
	_, err = client.ListReservations(ctx, domain.ReservationFilter{})
	assert.ErrorIs(t, err, ErrUnavailable, "network failure")
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := NewClient(srv.URL, 50*time.Millisecond, logger.NewNop())
	_, err := client.CreateReservation(context.Background(), "2024-06-10", "1", "1", 1)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestClient_InvalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewNop())
	_, err := client.ListReservations(context.Background(), domain.ReservationFilter{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
