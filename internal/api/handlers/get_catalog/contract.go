package get_catalog

import "github.com/m04kA/SMC-ReservationService/internal/domain"

type Catalog interface {
	Services() []domain.Service
	Professionals() []domain.Professional
	Slots() []domain.CanonicalSlot
}
