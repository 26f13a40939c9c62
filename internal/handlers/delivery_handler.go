package handlers

import (
	"log/slog"
	"net/http"

	"github.com/MinhTrung9443/storefront-api/internal/repository"
)

// DeliveryHandler exposes the shipping fee table
type DeliveryHandler struct {
	repo repository.DeliveryRepository
	log  *slog.Logger
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(repo repository.DeliveryRepository, log *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{repo: repo, log: log}
}

// ListMethods handles GET /api/delivery-methods
func (h *DeliveryHandler) ListMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.repo.GetAll(r.Context())
	if err != nil {
		h.log.Error("failed to list delivery methods", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, methods)
}
