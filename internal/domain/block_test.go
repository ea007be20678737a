package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDayBlocked(t *testing.T) {
	slot := "2"
	blocks := []*Block{
		{ID: 1, DateKey: "2024-06-10", ProfessionalID: "1", SlotID: &slot},
		{ID: 2, DateKey: "2024-06-11", ProfessionalID: "1"},
	}

	assert.False(t, IsDayBlocked(blocks, "2024-06-10", "1"), "per-slot block does not block the day")
	assert.True(t, IsDayBlocked(blocks, "2024-06-11", "1"))
	assert.False(t, IsDayBlocked(blocks, "2024-06-11", "2"), "other professional")
}

func TestFilters_Matches(t *testing.T) {
	date := DateKey("2024-06-10")
	prof := "1"
	admin := int64(7)

	r := &Reservation{DateKey: date, ProfessionalID: prof, AdminID: admin, SlotID: "3"}
	assert.True(t, ReservationFilter{}.Matches(r))
	assert.True(t, ReservationFilter{DateKey: &date, ProfessionalID: &prof, AdminID: &admin}.Matches(r))

	other := int64(8)
	assert.False(t, ReservationFilter{AdminID: &other}.Matches(r))

	b := &Block{DateKey: date, ProfessionalID: "2", AdminID: admin}
	assert.False(t, BlockFilter{ProfessionalID: &prof}.Matches(b))
	assert.True(t, BlockFilter{DateKey: &date}.Matches(b))
}
