package create_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "dados de bloqueio inválidos"
	msgAlreadyBlocked     = "este bloqueio já existe"
	msgUnavailable        = "serviço de agendamento indisponível, tente novamente"
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

// Handle POST /blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateBlock(r.Context(), domain.DateKey(req.DateKey), req.TimeSlotID, req.ProfessionalID, req.AdminID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidInput):
			h.logger.Warn("POST /blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, ledger.ErrConflict):
			h.logger.Warn("POST /blocks - Block already exists: date=%s professional=%s", req.DateKey, req.ProfessionalID)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, ledger.ErrUnavailable):
			h.logger.Error("POST /blocks - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("POST /blocks - Failed to create block: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocks - Block created: id=%d whole_day=%t", created.ID, created.IsWholeDay())
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBlock(created))
}
