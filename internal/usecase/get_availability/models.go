package get_availability

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Request запрос доступности слотов специалиста на дату
type Request struct {
	DateKey        string
	ProfessionalID string
}

// Response доступность и исходные данные, из которых она вычислена
type Response struct {
	View         *domain.AvailabilityView
	DayBlocked   bool
	Reservations []*domain.Reservation
	Blocks       []*domain.Block
}
