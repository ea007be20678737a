package wizard

import (
	"github.com/m04kA/SMC-ReservationService/internal/confirmation"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Draft черновик бронирования, принадлежит одной сессии
type Draft struct {
	ServiceID      string
	ProfessionalID string
	DateKey        domain.DateKey
	SlotID         string
	ClientName     string
	ClientPhone    string
	Observations   string
}

// Result итог успешного подтверждения
type Result struct {
	Reservation  *domain.Reservation
	Confirmation confirmation.Message
}
