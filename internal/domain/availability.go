package domain

// SlotAvailability доступность одного канонического слота
type SlotAvailability struct {
	SlotID    string
	Time      string
	Available bool
}

// AvailabilityView производная проекция {slotId -> available} для (дата, специалист)
// Никогда не хранится как источник истины, всегда пересчитывается
type AvailabilityView struct {
	DateKey        DateKey
	ProfessionalID string
	Slots          []SlotAvailability // в порядке канонической сетки
	Stale          bool               // построено из локального кеша без обращения к ledger
}

// Available returns true if the slot exists in the view and is bookable
func (v *AvailabilityView) Available(slotID string) bool {
	for _, s := range v.Slots {
		if s.SlotID == slotID {
			return s.Available
		}
	}
	return false
}

// AvailableIDs возвращает идентификаторы доступных слотов
func (v *AvailabilityView) AvailableIDs() []string {
	ids := make([]string, 0, len(v.Slots))
	for _, s := range v.Slots {
		if s.Available {
			ids = append(ids, s.SlotID)
		}
	}
	return ids
}

// UnavailableIDs возвращает идентификаторы недоступных слотов
func (v *AvailabilityView) UnavailableIDs() []string {
	ids := make([]string, 0, len(v.Slots))
	for _, s := range v.Slots {
		if !s.Available {
			ids = append(ids, s.SlotID)
		}
	}
	return ids
}

// AsMap возвращает представление в виде {slotId -> available}
func (v *AvailabilityView) AsMap() map[string]bool {
	m := make(map[string]bool, len(v.Slots))
	for _, s := range v.Slots {
		m[s.SlotID] = s.Available
	}
	return m
}
