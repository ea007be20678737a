package delete_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger"
)

const (
	msgInvalidID   = "ID de bloqueio inválido"
	msgNotFound    = "bloqueio não encontrado"
	msgUnavailable = "serviço de agendamento indisponível, tente novamente"
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

// Handle DELETE /blocks/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(mux.Vars(r), "id")
	if err != nil {
		h.logger.Warn("DELETE /blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteBlock(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			h.logger.Warn("DELETE /blocks/{id} - Block not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, ledger.ErrUnavailable):
			h.logger.Error("DELETE /blocks/{id} - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("DELETE /blocks/{id} - Failed to delete block: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocks/{id} - Block deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
