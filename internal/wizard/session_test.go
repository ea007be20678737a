package wizard

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/cache"
	"github.com/m04kA/SMC-ReservationService/internal/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/localstore"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

const (
	adminID = int64(1)
	monday  = domain.DateKey("2024-06-10")
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type unavailableLedger struct{}

func (unavailableLedger) CreateReservation(context.Context, domain.DateKey, string, string, int64) (*domain.Reservation, error) {
	return nil, fmt.Errorf("%w: connection refused", ledger.ErrUnavailable)
}

type fixture struct {
	session *Session
	ledger  *ledger.Service
	cache   *cache.Cache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat := catalog.Default()
	store := memory.NewStore()
	svc := ledger.NewService(store.Reservations(), store.Blocks(), cat, nil, logger.NewNop())
	c := cache.New(cache.NewKVStore(localstore.NewMemory()), time.Minute, logger.NewNop())
	refresher := cache.NewRefresher(svc, cat, c, logger.NewNop())

	s := NewSession(cat, svc, refresher, c, adminID, "5511999999999", logger.NewNop())
	// пятница, 7 июня 2024
	s.timeProvider = fixedClock{now: time.Date(2024, 6, 7, 10, 0, 0, 0, time.UTC)}

	return &fixture{session: s, ledger: svc, cache: c}
}

// toDateTime проводит сессию до шага выбора даты и времени с загруженной доступностью
func toDateTime(t *testing.T, s *Session) {
	t.Helper()
	require.True(t, s.SelectService("1"))
	require.True(t, s.Next())
	require.True(t, s.SelectProfessional("1"))
	require.True(t, s.Next())
	require.True(t, s.SelectDate(monday))
	_, err := s.Availability(context.Background())
	require.NoError(t, err)
}

func toConfirmation(t *testing.T, s *Session, slotID string) {
	t.Helper()
	toDateTime(t, s)
	require.True(t, s.SelectSlot(slotID))
	require.True(t, s.Next())
	require.True(t, s.SetContact("Maria", "11988887777", ""))
	require.True(t, s.Next())
	require.Equal(t, StepConfirmation, s.Step())
}

func TestSession_GuardFromService(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.session.Next())
	assert.Equal(t, StepService, f.session.Step())

	assert.False(t, f.session.SelectService("99"))
	assert.False(t, f.session.Next())
	assert.Equal(t, StepService, f.session.Step())
}

func TestSession_SettersGatedByStep(t *testing.T) {
	f := newFixture(t)
	s := f.session

	assert.False(t, s.SelectProfessional("1"))
	assert.False(t, s.SelectDate(monday))
	assert.False(t, s.SelectSlot("1"))
	assert.False(t, s.SetContact("Maria", "1", ""))
	assert.Equal(t, Draft{}, s.Draft())
}

func TestSession_ForwardGuards(t *testing.T) {
	f := newFixture(t)
	s := f.session

	require.True(t, s.SelectService("2"))
	require.True(t, s.Next())
	assert.False(t, s.Next(), "professional not selected")

	require.True(t, s.SelectProfessional("2"))
	require.True(t, s.Next())
	require.True(t, s.SelectDate(monday))
	assert.False(t, s.Next(), "slot not selected")

	assert.False(t, s.SelectSlot("1"), "availability not loaded")
	_, err := s.Availability(context.Background())
	require.NoError(t, err)
	require.True(t, s.SelectSlot("1"))
	require.True(t, s.Next())

	require.True(t, s.SetContact("  ", "11988887777", ""))
	assert.False(t, s.Next(), "blank name")
	require.True(t, s.SetContact("Maria", "11988887777", ""))
	require.True(t, s.Next())

	assert.False(t, s.Next(), "confirmation is the last step")
	assert.Equal(t, StepConfirmation, s.Step())
}

func TestSession_SelectDate(t *testing.T) {
	f := newFixture(t)
	s := f.session
	require.True(t, s.SelectService("1"))
	require.True(t, s.Next())
	require.True(t, s.SelectProfessional("1"))
	require.True(t, s.Next())

	tests := []struct {
		name string
		date domain.DateKey
		want bool
	}{
		{name: "yesterday", date: "2024-06-06", want: false},
		{name: "sunday", date: "2024-06-09", want: false},
		{name: "malformed", date: "2024-6-10", want: false},
		{name: "today", date: "2024-06-07", want: true},
		{name: "next monday", date: monday, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.SelectDate(tt.date))
		})
	}
	assert.Equal(t, monday, s.Draft().DateKey)
}

func TestSession_SelectSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := f.session

	_, err := f.ledger.CreateReservation(ctx, monday, "5", "1", 2)
	require.NoError(t, err)

	toDateTime(t, s)

	assert.False(t, s.SelectSlot("3"), "retired slot")
	assert.False(t, s.SelectSlot("5"), "reserved slot")
	assert.False(t, s.SelectSlot("42"), "unknown slot")
	assert.True(t, s.SelectSlot("4"))

	require.True(t, s.SelectDate("2024-06-11"))
	assert.Empty(t, s.Draft().SlotID, "changing the date clears the slot")
	assert.False(t, s.SelectSlot("4"), "view belongs to the previous date")
}

func TestSession_ChangingProfessionalClearsSlot(t *testing.T) {
	f := newFixture(t)
	s := f.session
	toDateTime(t, s)
	require.True(t, s.SelectSlot("4"))

	require.True(t, s.Back())
	require.True(t, s.SelectProfessional("1"))
	assert.Equal(t, "4", s.Draft().SlotID, "same professional keeps the slot")

	require.True(t, s.SelectProfessional("2"))
	assert.Empty(t, s.Draft().SlotID)
	assert.Nil(t, s.View())
}

func TestSession_BackKeepsData(t *testing.T) {
	f := newFixture(t)
	s := f.session
	toConfirmation(t, s, "4")

	before := s.Draft()
	for _, want := range []Step{StepContact, StepDateTime, StepProfessional, StepService} {
		require.True(t, s.Back())
		assert.Equal(t, want, s.Step())
	}
	assert.False(t, s.Back())
	assert.Equal(t, before, s.Draft())
}

func TestSession_Reset(t *testing.T) {
	f := newFixture(t)
	s := f.session
	toConfirmation(t, s, "4")

	s.Reset()
	assert.Equal(t, StepService, s.Step())
	assert.Equal(t, Draft{}, s.Draft())
	assert.Nil(t, s.View())
}

func TestSession_ConfirmSuccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := f.session
	toConfirmation(t, s, "4")

	result, err := s.Confirm(ctx)
	require.NoError(t, err)
	require.NotNil(t, result.Reservation)
	assert.Equal(t, "4", result.Reservation.SlotID)
	assert.Equal(t, adminID, result.Reservation.AdminID)
	assert.True(t, strings.HasPrefix(result.Confirmation.URL, "https://wa.me/5511999999999?text="))
	assert.Contains(t, result.Confirmation.Text, "📅 Data: 10/06/2024")
	assert.Contains(t, result.Confirmation.Text, "🕐 Horário: 09:30")

	assert.Equal(t, StepService, s.Step())
	assert.Equal(t, Draft{}, s.Draft())

	assert.Equal(t, []string{"4"}, f.cache.Pending(monday, "1"))
	assert.Contains(t, f.cache.Unavailable(ctx, monday, "1"), "4")

	list, err := f.ledger.ListReservations(ctx, domain.ReservationFilter{DateKey: ptr.Ptr(monday)})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSession_ConfirmConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := f.session
	toConfirmation(t, s, "4")

	// другая сессия успела занять слот
	_, err := f.ledger.CreateReservation(ctx, monday, "4", "1", 9)
	require.NoError(t, err)

	result, err := s.Confirm(ctx)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSlotTaken)

	assert.Equal(t, StepDateTime, s.Step())
	assert.Empty(t, s.Draft().SlotID)
	assert.Equal(t, "Maria", s.Draft().ClientName)
	require.NotNil(t, s.View())
	assert.False(t, s.View().Available("4"))
	assert.False(t, s.SelectSlot("4"))

	list, err := f.ledger.ListReservations(ctx, domain.ReservationFilter{DateKey: ptr.Ptr(monday)})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSession_ConfirmUnavailable(t *testing.T) {
	f := newFixture(t)
	s := f.session
	toConfirmation(t, s, "4")
	s.ledger = unavailableLedger{}

	_, err := s.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrRetryable)
	assert.Equal(t, StepConfirmation, s.Step())
	assert.Equal(t, "4", s.Draft().SlotID)
}

func TestSession_ConfirmNotReady(t *testing.T) {
	f := newFixture(t)

	_, err := f.session.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "service", StepService.String())
	assert.Equal(t, "confirmation", StepConfirmation.String())
	assert.Equal(t, "unknown", Step(42).String())
}

func TestSession_SetContactLimits(t *testing.T) {
	f := newFixture(t)
	s := f.session
	toDateTime(t, s)
	require.True(t, s.SelectSlot("4"))
	require.True(t, s.Next())

	assert.False(t, s.SetContact(strings.Repeat("a", domain.MaxClientNameLength+1), "11988887777", ""))
	assert.False(t, s.SetContact("Maria", strings.Repeat("9", domain.MaxClientPhoneLength+1), ""))
	assert.True(t, s.SetContact(" Maria ", " 11988887777 ", " sem pressa "))

	d := s.Draft()
	assert.Equal(t, "Maria", d.ClientName)
	assert.Equal(t, "11988887777", d.ClientPhone)
	assert.Equal(t, "sem pressa", d.Observations)
}
