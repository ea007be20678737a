package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger/models"
)

const (
	msgInvalidQuery = "parâmetros de consulta inválidos"
	msgUnavailable  = "serviço de agendamento indisponível, tente novamente"
)

type Handler struct {
	service LedgerService
	logger  Logger
}

func NewHandler(service LedgerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /reservations?dateKey&adminId&professionalId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	list, err := h.service.ListReservations(r.Context(), filter)
	if err != nil {
		if errors.Is(err, ledger.ErrUnavailable) {
			h.logger.Error("GET /reservations - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)
			return
		}
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservationList(list))
}
