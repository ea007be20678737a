package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger/models"
	getAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
)

const (
	msgInvalidDate          = "data inválida, formato esperado YYYY-MM-DD"
	msgProfessionalNotFound = "profissional não encontrado"
	msgUnavailable          = "serviço de agendamento indisponível, tente novamente"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /availability?dateKey&professionalId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getAvailability.Request{
		DateKey:        query.Get("dateKey"),
		ProfessionalID: query.Get("professionalId"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDateKey):
			h.logger.Warn("GET /availability - Invalid date: %q", req.DateKey)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrProfessionalNotFound):
			h.logger.Warn("GET /availability - Professional not found: %q", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailability.ErrUnavailable):
			h.logger.Error("GET /availability - Ledger unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to resolve availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAvailability(result.View, result.DayBlocked))
}
