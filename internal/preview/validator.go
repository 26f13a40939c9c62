package preview

import (
	"fmt"

	"github.com/MinhTrung9443/storefront-api/internal/models"
)

// ValidationResult accumulates every violation found in a request so the
// caller can surface all of them at once.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Validate shape-checks an order-preview request. It is pure, never panics,
// and collects all violations in a single pass instead of failing fast.
func Validate(req models.OrderPreviewRequest) ValidationResult {
	var errs []string

	if len(req.OrderLines) == 0 {
		errs = append(errs, "orderLines is required and must be a non-empty array")
	}
	for i, line := range req.OrderLines {
		if line.ProductID == "" {
			errs = append(errs, fmt.Sprintf("orderLines[%d].productId is required", i))
		}
		if line.Quantity < 1 {
			errs = append(errs, fmt.Sprintf("orderLines[%d].quantity must be at least 1", i))
		}
	}

	if req.ShippingMethod != "" && !models.ValidShippingMethod(req.ShippingMethod) {
		errs = append(errs, "shippingMethod must be one of express, regular, standard")
	}

	if req.Payment != nil && !models.ValidPaymentMethod(req.Payment.PaymentMethod) {
		errs = append(errs, "payment.paymentMethod must be one of VNPAY, COD, BANK")
	}

	// Address completeness is checked only when an address is present at all;
	// each missing field is reported individually so the UI can target the
	// offending input.
	if req.ShippingAddress != nil && !req.ShippingAddress.Empty() {
		addr := req.ShippingAddress
		for _, f := range []struct {
			name  string
			value string
		}{
			{"recipientName", addr.RecipientName},
			{"phoneNumber", addr.PhoneNumber},
			{"province", addr.Province},
			{"district", addr.District},
			{"ward", addr.Ward},
			{"street", addr.Street},
		} {
			if f.value == "" {
				errs = append(errs, fmt.Sprintf("shippingAddress.%s is required", f.name))
			}
		}
	}

	if req.PointsToApply != nil && *req.PointsToApply < 0 {
		errs = append(errs, "pointsToApply must be a non-negative number")
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
