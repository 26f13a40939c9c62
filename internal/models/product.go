package models

import "github.com/shopspring/decimal"

// Product represents a catalog product available for order
type Product struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Image    string          `json:"image,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Discount decimal.Decimal `json:"discount"`
	Category string          `json:"category"`
}

// ActualPrice returns the unit price after the product-level discount,
// never below zero.
func (p Product) ActualPrice() decimal.Decimal {
	actual := p.Price.Sub(p.Discount)
	if actual.IsNegative() {
		return decimal.Zero
	}
	return actual
}
