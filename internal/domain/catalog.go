package domain

// Service услуга из справочника (неизменяемые данные)
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
}

// Professional специалист из справочника (неизменяемые данные)
type Professional struct {
	ID          string
	Name        string
	Avatar      string
	Specialties []string
}

// CanonicalSlot временной слот из фиксированной сетки
// BaseAvailable = false - слот выведен из оборота (например, обед) независимо от бронирований
type CanonicalSlot struct {
	ID            string
	Time          string // HH:MM
	BaseAvailable bool
}
