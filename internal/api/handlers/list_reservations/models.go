package list_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// parseFilter разбирает ?dateKey&adminId&professionalId
func parseFilter(r *http.Request) (domain.ReservationFilter, error) {
	var filter domain.ReservationFilter

	if raw := handlers.OptionalString(r, "dateKey"); raw != nil {
		dateKey, err := domain.ParseDateKey(*raw)
		if err != nil {
			return filter, err
		}
		filter.DateKey = &dateKey
	}

	adminID, err := handlers.OptionalInt64(r, "adminId")
	if err != nil {
		return filter, err
	}
	filter.AdminID = adminID
	filter.ProfessionalID = handlers.OptionalString(r, "professionalId")

	return filter, nil
}
