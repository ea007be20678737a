package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения на данные бронирования
const (
	MaxClientNameLength   = 120
	MaxClientPhoneLength  = 32
	MaxObservationsLength = 500
)

// Сущности ledger (используются в метриках и логах)
const (
	EntityReservation = "reservation"
	EntityBlock       = "block"
)
