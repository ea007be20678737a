package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

type statusResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	pinger Pinger // nil для хранилища в памяти
	logger Logger
}

func NewHandler(pinger Pinger, logger Logger) *Handler {
	return &Handler{
		pinger: pinger,
		logger: logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.pinger.PingContext(ctx); err != nil {
			h.logger.Warn("GET /healthz - Store ping failed: %v", err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "unavailable"})
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
