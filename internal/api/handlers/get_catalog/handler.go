package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger/models"
)

type Handler struct {
	response *models.CatalogResponse
}

// NewHandler справочник неизменяем, поэтому ответ собирается один раз
func NewHandler(catalog Catalog) *Handler {
	return &Handler{
		response: models.FromDomainCatalog(catalog.Services(), catalog.Professionals(), catalog.Slots()),
	}
}

// Handle GET /catalog
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
