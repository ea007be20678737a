// Package availability вычисляет доступность слотов специалиста на дату
// по канонической сетке, бронированиям и блокировкам.
// Функции пакета чистые: не имеют состояния и не изменяют входные данные.
package availability

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Target пара (дата, специалист), для которой строится представление
type Target struct {
	DateKey        domain.DateKey
	ProfessionalID string
}

// Resolve строит представление доступности для target
// Блокировка всего дня имеет наивысший приоритет и делает недоступными все слоты.
// Иначе недоступно объединение слотов из бронирований и поштучных блокировок target.
// Слот с BaseAvailable = false недоступен всегда.
func Resolve(target Target, slots []domain.CanonicalSlot, reservations []*domain.Reservation, blocks []*domain.Block) *domain.AvailabilityView {
	view := &domain.AvailabilityView{
		DateKey:        target.DateKey,
		ProfessionalID: target.ProfessionalID,
		Slots:          make([]domain.SlotAvailability, len(slots)),
	}

	if domain.IsDayBlocked(blocks, target.DateKey, target.ProfessionalID) {
		for i, s := range slots {
			view.Slots[i] = domain.SlotAvailability{SlotID: s.ID, Time: s.Time, Available: false}
		}
		return view
	}

	taken := make(map[string]struct{})
	for _, r := range reservations {
		if r.DateKey == target.DateKey && r.ProfessionalID == target.ProfessionalID {
			taken[r.SlotID] = struct{}{}
		}
	}
	for _, b := range blocks {
		if b.IsWholeDay() || b.DateKey != target.DateKey || b.ProfessionalID != target.ProfessionalID {
			continue
		}
		taken[*b.SlotID] = struct{}{}
	}

	return fill(view, slots, taken)
}

// FromUnavailable строит представление по готовому набору недоступных слотов
// Используется, когда ledger недоступен и доступность берется из локального кеша
func FromUnavailable(target Target, slots []domain.CanonicalSlot, unavailable []string) *domain.AvailabilityView {
	view := &domain.AvailabilityView{
		DateKey:        target.DateKey,
		ProfessionalID: target.ProfessionalID,
		Slots:          make([]domain.SlotAvailability, len(slots)),
	}

	taken := make(map[string]struct{}, len(unavailable))
	for _, id := range unavailable {
		taken[id] = struct{}{}
	}

	return fill(view, slots, taken)
}

func fill(view *domain.AvailabilityView, slots []domain.CanonicalSlot, taken map[string]struct{}) *domain.AvailabilityView {
	for i, s := range slots {
		_, isTaken := taken[s.ID]
		view.Slots[i] = domain.SlotAvailability{
			SlotID:    s.ID,
			Time:      s.Time,
			Available: s.BaseAvailable && !isTaken,
		}
	}
	return view
}
