package get_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type stubLedger struct {
	reservations []*domain.Reservation
	blocks       []*domain.Block
	err          error
}

func (s *stubLedger) ListReservations(_ context.Context, f domain.ReservationFilter) ([]*domain.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*domain.Reservation
	for _, r := range s.reservations {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubLedger) ListBlocks(_ context.Context, f domain.BlockFilter) ([]*domain.Block, error) {
	var out []*domain.Block
	for _, b := range s.blocks {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestUseCase_Execute(t *testing.T) {
	ledger := &stubLedger{
		reservations: []*domain.Reservation{
			{ID: 1, DateKey: "2024-06-10", SlotID: "1", ProfessionalID: "1"},
			{ID: 2, DateKey: "2024-06-10", SlotID: "2", ProfessionalID: "2"},
		},
		blocks: []*domain.Block{
			{ID: 1, DateKey: "2024-06-10", ProfessionalID: "1", SlotID: ptr.Ptr("4")},
		},
	}
	uc := NewUseCase(ledger, catalog.Default(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{DateKey: "2024-06-10", ProfessionalID: "1"})
	require.NoError(t, err)

	assert.False(t, resp.DayBlocked)
	assert.Len(t, resp.Reservations, 1)
	assert.Equal(t, []string{"1", "3", "4", "6"}, resp.View.UnavailableIDs())
	assert.True(t, resp.View.Available("2"))
}

func TestUseCase_Execute_DayBlocked(t *testing.T) {
	ledger := &stubLedger{blocks: []*domain.Block{{ID: 1, DateKey: "2024-06-10", ProfessionalID: "1"}}}
	uc := NewUseCase(ledger, catalog.Default(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{DateKey: "2024-06-10", ProfessionalID: "1"})
	require.NoError(t, err)
	assert.True(t, resp.DayBlocked)
	assert.Empty(t, resp.View.AvailableIDs())
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := NewUseCase(&stubLedger{}, catalog.Default(), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{DateKey: "2024-13-40", ProfessionalID: "1"})
	assert.ErrorIs(t, err, ErrInvalidDateKey)

	_, err = uc.Execute(context.Background(), &Request{DateKey: "2024-06-10", ProfessionalID: "404"})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)

	uc = NewUseCase(&stubLedger{err: errors.New("db down")}, catalog.Default(), logger.NewNop())
	_, err = uc.Execute(context.Background(), &Request{DateKey: "2024-06-10", ProfessionalID: "1"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
