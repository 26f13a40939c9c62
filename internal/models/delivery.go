package models

import "github.com/shopspring/decimal"

// ShippingMethod identifies one of the supported delivery options.
type ShippingMethod string

const (
	ShippingExpress  ShippingMethod = "express"
	ShippingRegular  ShippingMethod = "regular"
	ShippingStandard ShippingMethod = "standard"
)

// ValidShippingMethod reports whether m is one of the supported methods.
func ValidShippingMethod(m ShippingMethod) bool {
	switch m {
	case ShippingExpress, ShippingRegular, ShippingStandard:
		return true
	}
	return false
}

// PaymentMethod identifies how the customer intends to pay.
type PaymentMethod string

const (
	PaymentVNPay PaymentMethod = "VNPAY"
	PaymentCOD   PaymentMethod = "COD"
	PaymentBank  PaymentMethod = "BANK"
)

// ValidPaymentMethod reports whether m is one of the supported methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentVNPay, PaymentCOD, PaymentBank:
		return true
	}
	return false
}

// DeliveryMethod is a priced shipping option.
type DeliveryMethod struct {
	Method       ShippingMethod  `json:"method"`
	Name         string          `json:"name"`
	Fee          decimal.Decimal `json:"fee"`
	EstimateDays int             `json:"estimateDays"`
}
