// Package pricing combines resolved lines, shipping, voucher discount and
// loyalty-points redemption into the order preview the client reviews and
// later submits verbatim.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/MinhTrung9443/storefront-api/internal/models"
	"github.com/MinhTrung9443/storefront-api/internal/voucher"
)

// Input carries everything the aggregator needs. Discount of zero with a
// non-empty VoucherMessage means the chosen voucher degraded gracefully
// instead of blocking the preview.
type Input struct {
	Lines           []voucher.ResolvedLine
	ShippingAddress *models.ShippingAddress
	ShippingMethod  models.ShippingMethod
	ShippingFee     decimal.Decimal
	VoucherCode     string
	VoucherMessage  string
	Discount        decimal.Decimal
	PaymentMethod   models.PaymentMethod

	// Loyalty redemption: the requested points, the user's balance, and the
	// currency value of one point.
	PointsToApply   int64
	AvailablePoints int64
	PointValue      decimal.Decimal
}

// Aggregate computes the order preview. The result satisfies
// totalAmount = subtotal + shippingFee - discount - pointsApplied and
// totalAmount >= 0: the discount is already capped by the evaluator and the
// points redemption is capped here by the remaining payable amount.
func Aggregate(in Input) models.OrderPreview {
	priced := make([]models.PricedLine, 0, len(in.Lines))
	subtotal := decimal.Zero
	for _, l := range in.Lines {
		lineTotal := l.Total()
		subtotal = subtotal.Add(lineTotal)
		priced = append(priced, models.PricedLine{
			ProductID:          l.Product.ID,
			ProductCode:        l.Product.Code,
			ProductName:        l.Product.Name,
			ProductImage:       l.Product.Image,
			ProductPrice:       l.Product.Price,
			Discount:           l.Product.Discount,
			ProductActualPrice: l.Product.ActualPrice(),
			Quantity:           l.Quantity,
			LineTotal:          lineTotal,
			Category:           l.Product.Category,
		})
	}

	discount := in.Discount
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	fee := in.ShippingFee
	if fee.IsNegative() {
		fee = decimal.Zero
	}

	pointsApplied := redeemPoints(in, subtotal.Add(fee).Sub(discount))

	total := subtotal.Add(fee).Sub(discount).Sub(pointsApplied)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return models.OrderPreview{
		OrderLines:      priced,
		ShippingAddress: in.ShippingAddress,
		Subtotal:        subtotal,
		ShippingFee:     fee,
		Discount:        discount,
		ShippingMethod:  in.ShippingMethod,
		PointsApplied:   pointsApplied,
		TotalAmount:     total,
		VoucherCode:     in.VoucherCode,
		VoucherMessage:  in.VoucherMessage,
		PaymentMethod:   in.PaymentMethod,
	}
}

// redeemPoints converts the requested points into a currency deduction,
// capped by the user's balance and by the remaining payable amount so the
// total can never go negative.
func redeemPoints(in Input, remaining decimal.Decimal) decimal.Decimal {
	pts := in.PointsToApply
	if pts <= 0 || !in.PointValue.IsPositive() {
		return decimal.Zero
	}
	if pts > in.AvailablePoints {
		pts = in.AvailablePoints
	}
	if pts <= 0 {
		return decimal.Zero
	}

	applied := decimal.NewFromInt(pts).Mul(in.PointValue)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	if applied.GreaterThan(remaining) {
		applied = remaining
	}
	return applied
}
