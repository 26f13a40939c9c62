package voucher

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MinhTrung9443/storefront-api/internal/models"
)

// Reason strings surfaced to the client when a voucher cannot be applied.
const (
	ReasonNotFound       = "voucher not found"
	ReasonNoItems        = "no items to apply voucher to"
	ReasonNotYetActive   = "voucher not yet active"
	ReasonInactive       = "voucher inactive"
	ReasonExpired        = "voucher expired"
	ReasonMinimumNotMet  = "minimum purchase not met"
	ReasonUsageLimit     = "usage limit reached"
	ReasonNoMatch        = "no matching items"
	ReasonSpecificMatch  = "voucher applies to selected items"
	ReasonGeneralVoucher = "voucher applies to entire order"
)

// ResolvedLine is an order line whose product has been resolved against the
// catalog.
type ResolvedLine struct {
	Product  models.Product
	Quantity int
}

// Total returns the line total at the product's actual (post-discount) price.
func (l ResolvedLine) Total() decimal.Decimal {
	return l.Product.ActualPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Evaluation annotates a candidate voucher with its applicability for a
// specific order.
type Evaluation struct {
	Voucher          *models.Voucher `json:"voucher,omitempty"`
	Applicable       bool            `json:"isApplicable"`
	Reason           string          `json:"reason"`
	Discount         decimal.Decimal `json:"discount"`
	EligibleSubtotal decimal.Decimal `json:"eligibleSubtotal"`
}

// Evaluate runs the applicability decision tree for a single voucher against
// the resolved order lines. Checks short-circuit in a fixed order so the
// surfaced reason is deterministic: missing lines, date window start, active
// flag, date window end, minimum purchase against the eligible subtotal,
// global usage cap, then product/category scoping. Per-user usage caps are an
// order-creation concern checked against redemption history, not here.
func Evaluate(now time.Time, lines []ResolvedLine, v *models.Voucher) Evaluation {
	if v == nil {
		return Evaluation{Applicable: false, Reason: ReasonNotFound, Discount: decimal.Zero, EligibleSubtotal: decimal.Zero}
	}

	ev := Evaluation{Voucher: v, Discount: decimal.Zero, EligibleSubtotal: decimal.Zero}

	if len(lines) == 0 {
		ev.Reason = ReasonNoItems
		return ev
	}
	if now.Before(v.StartDate) {
		ev.Reason = ReasonNotYetActive
		return ev
	}
	if !v.IsActive {
		ev.Reason = ReasonInactive
		return ev
	}
	if now.After(v.EndDate) {
		ev.Reason = ReasonExpired
		return ev
	}

	eligible := eligibleLines(lines, v)
	eligibleSubtotal := decimal.Zero
	for _, l := range eligible {
		eligibleSubtotal = eligibleSubtotal.Add(l.Total())
	}
	ev.EligibleSubtotal = eligibleSubtotal

	if v.MinPurchaseAmount.GreaterThan(eligibleSubtotal) {
		ev.Reason = ReasonMinimumNotMet
		return ev
	}
	if !v.UnlimitedUsage() && v.CurrentUsage >= v.GlobalUsageLimit {
		ev.Reason = ReasonUsageLimit
		return ev
	}

	switch {
	case v.Scoped() && len(eligible) > 0:
		ev.Applicable = true
		ev.Reason = ReasonSpecificMatch
		ev.Discount = computeDiscount(v, eligibleSubtotal)
	case !v.Scoped():
		ev.Applicable = true
		ev.Reason = ReasonGeneralVoucher
		ev.Discount = computeDiscount(v, eligibleSubtotal)
	default:
		ev.Reason = ReasonNoMatch
	}

	return ev
}

// EvaluateAll annotates every candidate voucher against the same order.
func EvaluateAll(now time.Time, lines []ResolvedLine, candidates []*models.Voucher) []Evaluation {
	evals := make([]Evaluation, 0, len(candidates))
	for _, v := range candidates {
		evals = append(evals, Evaluate(now, lines, v))
	}
	return evals
}

// eligibleLines filters the order to the lines the voucher may discount.
// A line is eligible when the voucher has no applicable-products/categories
// restriction or the line matches one of those lists, and the line is not in
// an exclusion list.
func eligibleLines(lines []ResolvedLine, v *models.Voucher) []ResolvedLine {
	var out []ResolvedLine
	for _, l := range lines {
		if contains(v.ExcludedProducts, l.Product.ID) || contains(v.ExcludedCategories, l.Product.Category) {
			continue
		}
		if v.Scoped() &&
			!contains(v.ApplicableProducts, l.Product.ID) &&
			!contains(v.ApplicableCategories, l.Product.Category) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// computeDiscount never returns a negative amount and never exceeds the
// eligible subtotal.
func computeDiscount(v *models.Voucher, eligibleSubtotal decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch v.DiscountType {
	case models.DiscountFixed:
		d = v.DiscountValue
	case models.DiscountPercentage:
		d = eligibleSubtotal.Mul(v.DiscountValue).Div(decimal.NewFromInt(100))
		if v.MaxDiscountAmount.IsPositive() && d.GreaterThan(v.MaxDiscountAmount) {
			d = v.MaxDiscountAmount
		}
	default:
		return decimal.Zero
	}

	if d.GreaterThan(eligibleSubtotal) {
		d = eligibleSubtotal
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
