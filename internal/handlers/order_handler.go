package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MinhTrung9443/storefront-api/internal/models"
	"github.com/MinhTrung9443/storefront-api/internal/service"
)

// userIDHeader identifies the customer for loyalty-points lookups until a
// session layer fronts this API.
const userIDHeader = "X-User-Id"

// OrderHandler handles order preview and creation requests
type OrderHandler struct {
	previewService *service.PreviewService
	orderService   *service.OrderService
	log            *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(previewService *service.PreviewService, orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		previewService: previewService,
		orderService:   orderService,
		log:            log,
	}
}

// PreviewOrder handles POST /api/orders/preview
func (h *OrderHandler) PreviewOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode preview request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	result, err := h.previewService.Preview(r.Context(), r.Header.Get(userIDHeader), req)
	if err != nil {
		h.writeServiceError(w, "preview order", err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Order preview computed", map[string]interface{}{
		"previewOrder": result,
	}, h.log)
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), r.Header.Get(userIDHeader), req)
	if err != nil {
		h.writeServiceError(w, "create order", err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "Order created", map[string]interface{}{
		"order": order,
	}, h.log)
	h.log.Info("order created successfully", "order_id", order.ID, "total", order.Preview.TotalAmount)
}

func (h *OrderHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		WriteValidationError(w, validationErr.Errors, h.log)
	case errors.Is(err, service.ErrPreviewMismatch):
		WriteError(w, http.StatusConflict, "Pricing changed since preview, please review again", h.log)
	case errors.Is(err, service.ErrVoucherExhausted):
		WriteError(w, http.StatusConflict, "Voucher usage limit reached", h.log)
	case errors.Is(err, service.ErrInsufficientPoints):
		WriteError(w, http.StatusConflict, "Insufficient loyalty points", h.log)
	case errors.Is(err, service.ErrDependency):
		h.log.Error("dependency failure", "op", op, "error", err)
		WriteError(w, http.StatusServiceUnavailable, "Service temporarily unavailable, please retry", h.log)
	default:
		h.log.Error("unexpected failure", "op", op, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
