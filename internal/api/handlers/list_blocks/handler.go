package list_blocks

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

// Handle GET /blocks?dateKey&adminId&professionalId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /blocks - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	list, err := h.service.ListBlocks(r.Context(), filter)
	if err != nil {
		if errors.Is(err, ledger.ErrUnavailable) {
			h.logger.Error("GET /blocks - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)
			return
		}
		h.logger.Error("GET /blocks - Failed to list blocks: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBlockList(list))
}
