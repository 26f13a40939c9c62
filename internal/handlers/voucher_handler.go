package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MinhTrung9443/storefront-api/internal/models"
	"github.com/MinhTrung9443/storefront-api/internal/voucher"
)

// voucherRegistry is the interface for voucher lookups and stats
type voucherRegistry interface {
	FindByCode(ctx context.Context, code string) (*models.Voucher, error)
	ListActive(ctx context.Context) []models.Voucher
	Stats() map[string]interface{}
}

// VoucherHandler handles HTTP requests for voucher lookup
type VoucherHandler struct {
	registry voucherRegistry
}

// NewVoucherHandler creates a new VoucherHandler
func NewVoucherHandler(registry voucherRegistry) *VoucherHandler {
	return &VoucherHandler{registry: registry}
}

// ListVouchers handles GET /api/vouchers
// Returns the publicly listed active vouchers.
func (h *VoucherHandler) ListVouchers(w http.ResponseWriter, r *http.Request) {
	all := h.registry.ListActive(r.Context())
	public := make([]models.Voucher, 0, len(all))
	for _, v := range all {
		if v.Type == models.VoucherPublic {
			public = append(public, v)
		}
	}
	writeJSON(w, http.StatusOK, public)
}

// CheckVoucher handles GET /api/vouchers/{voucherCode}
// Reports whether the code resolves and is currently usable, independent of
// any specific order, for UI badge display.
func (h *VoucherHandler) CheckVoucher(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "voucherCode")

	v, err := h.registry.FindByCode(r.Context(), code)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"valid":   false,
			"voucher": code,
			"message": voucher.ReasonNotFound,
		})
		return
	}

	if reason, ok := usable(v, time.Now()); !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"valid":   false,
			"voucher": v,
			"message": reason,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid":   true,
		"voucher": v,
	})
}

// usable runs the order-independent applicability checks: window, active flag
// and global cap. Minimum purchase and scoping need an order and are left to
// preview evaluation.
func usable(v *models.Voucher, now time.Time) (string, bool) {
	switch {
	case now.Before(v.StartDate):
		return voucher.ReasonNotYetActive, false
	case !v.IsActive:
		return voucher.ReasonInactive, false
	case now.After(v.EndDate):
		return voucher.ReasonExpired, false
	case !v.UnlimitedUsage() && v.CurrentUsage >= v.GlobalUsageLimit:
		return voucher.ReasonUsageLimit, false
	}
	return "", true
}

// GetStats handles GET /api/vouchers/stats (for debugging/monitoring)
func (h *VoucherHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.registry.Stats()
	writeJSON(w, http.StatusOK, stats)
}
