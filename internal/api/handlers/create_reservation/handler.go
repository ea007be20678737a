package create_reservation

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
	msgInvalidInput       = "dados de agendamento inválidos"
	msgSlotTaken          = "este horário já está reservado"
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

// Handle POST /reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateReservation(r.Context(), domain.DateKey(req.DateKey), req.TimeSlotID, req.ProfessionalID, req.AdminID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, ledger.ErrConflict):
			h.logger.Warn("POST /reservations - Slot taken: date=%s slot=%s professional=%s",
				req.DateKey, req.TimeSlotID, req.ProfessionalID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, ledger.ErrUnavailable):
			h.logger.Error("POST /reservations - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d admin=%d", created.ID, created.AdminID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainReservation(created))
}
