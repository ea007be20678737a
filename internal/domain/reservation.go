package domain

import "time"

// Reservation занятый слот специалиста на дату
// Для кортежа (DateKey, SlotID, ProfessionalID) может существовать не более одной записи
type Reservation struct {
	ID             int64
	DateKey        DateKey
	SlotID         string
	ProfessionalID string
	AdminID        int64
	CreatedAt      time.Time
}

// ReservationFilter фильтр списка бронирований, nil - без ограничения
type ReservationFilter struct {
	DateKey        *DateKey
	ProfessionalID *string
	AdminID        *int64
}

// Matches проверяет, подходит ли бронирование под фильтр
func (f ReservationFilter) Matches(r *Reservation) bool {
	if f.DateKey != nil && r.DateKey != *f.DateKey {
		return false
	}
	if f.ProfessionalID != nil && r.ProfessionalID != *f.ProfessionalID {
		return false
	}
	if f.AdminID != nil && r.AdminID != *f.AdminID {
		return false
	}
	return true
}
