package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is a candidate line in an order-preview request.
type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartItem is a selected cart row the client builds a preview request from.
type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// ShippingAddress is a delivery destination. All six fields are required
// together; a partial address is rejected as a unit.
type ShippingAddress struct {
	RecipientName string `json:"recipientName"`
	PhoneNumber   string `json:"phoneNumber"`
	Province      string `json:"province"`
	District      string `json:"district"`
	Ward          string `json:"ward"`
	Street        string `json:"street"`
}

// Complete reports whether all six address fields are present.
func (a ShippingAddress) Complete() bool {
	return a.RecipientName != "" && a.PhoneNumber != "" && a.Province != "" &&
		a.District != "" && a.Ward != "" && a.Street != ""
}

// Empty reports whether no address field is set.
func (a ShippingAddress) Empty() bool {
	return a == ShippingAddress{}
}

// PaymentInfo carries the chosen payment method.
type PaymentInfo struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// OrderPreviewRequest is the body of POST /api/orders/preview. Optional
// facets are omitted entirely when not set.
type OrderPreviewRequest struct {
	OrderLines      []OrderLine      `json:"orderLines"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	VoucherCode     string           `json:"voucherCode,omitempty"`
	ShippingMethod  ShippingMethod   `json:"shippingMethod,omitempty"`
	Payment         *PaymentInfo     `json:"payment,omitempty"`
	PointsToApply   *int64           `json:"pointsToApply,omitempty"`
}

// PricedLine is an order line expanded against the catalog at preview time.
type PricedLine struct {
	ProductID          string          `json:"productId"`
	ProductCode        string          `json:"productCode"`
	ProductName        string          `json:"productName"`
	ProductImage       string          `json:"productImage,omitempty"`
	ProductPrice       decimal.Decimal `json:"productPrice"`
	Discount           decimal.Decimal `json:"discount"`
	ProductActualPrice decimal.Decimal `json:"productActualPrice"`
	Quantity           int             `json:"quantity"`
	LineTotal          decimal.Decimal `json:"lineTotal"`
	Category           string          `json:"-"`
}

// OrderPreview is the server-computed projection of what an order would cost.
// Invariant: TotalAmount = Subtotal + ShippingFee - Discount - PointsApplied,
// and TotalAmount >= 0.
type OrderPreview struct {
	OrderLines      []PricedLine     `json:"orderLines"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	ShippingFee     decimal.Decimal  `json:"shippingFee"`
	Discount        decimal.Decimal  `json:"discount"`
	ShippingMethod  ShippingMethod   `json:"shippingMethod,omitempty"`
	PointsApplied   decimal.Decimal  `json:"pointsApplied"`
	TotalAmount     decimal.Decimal  `json:"totalAmount"`
	VoucherCode     string           `json:"voucherCode,omitempty"`
	VoucherMessage  string           `json:"voucherMessage,omitempty"`
	PaymentMethod   PaymentMethod    `json:"paymentMethod,omitempty"`
}

// Order is a confirmed order derived from an accepted preview.
type Order struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId,omitempty"`
	Preview   OrderPreview `json:"preview"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}
