package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType determines how a voucher's discount value is interpreted.
type DiscountType string

const (
	// DiscountFixed subtracts a fixed amount, capped at the eligible subtotal.
	DiscountFixed DiscountType = "fixed"
	// DiscountPercentage subtracts a percentage of the eligible subtotal,
	// capped at the voucher's MaxDiscountAmount.
	DiscountPercentage DiscountType = "percentage"
)

// VoucherType distinguishes publicly listed vouchers from privately issued ones.
type VoucherType string

const (
	VoucherPublic  VoucherType = "public"
	VoucherPrivate VoucherType = "private"
)

var (
	ErrVoucherCodeRequired    = errors.New("voucher code is required")
	ErrVoucherInvalidType     = errors.New("voucher discount type must be fixed or percentage")
	ErrVoucherInvalidValue    = errors.New("voucher discount value must be positive")
	ErrVoucherInvalidWindow   = errors.New("voucher end date must not precede start date")
	ErrVoucherUsageOverLimit  = errors.New("voucher current usage exceeds its global limit")
	ErrVoucherNegativeMinimum = errors.New("voucher minimum purchase amount must not be negative")
)

// Voucher is an immutable discount policy. Preview computation never mutates
// one; usage counters are consumed only at order creation.
type Voucher struct {
	Code                 string          `json:"code"`
	DiscountType         DiscountType    `json:"discountType"`
	DiscountValue        decimal.Decimal `json:"discountValue"`
	Type                 VoucherType     `json:"type"`
	GlobalUsageLimit     int             `json:"globalUsageLimit"`
	CurrentUsage         int             `json:"currentUsage"`
	UserUsageLimit       int             `json:"userUsageLimit"`
	MinPurchaseAmount    decimal.Decimal `json:"minPurchaseAmount"`
	MaxDiscountAmount    decimal.Decimal `json:"maxDiscountAmount"`
	StartDate            time.Time       `json:"startDate"`
	EndDate              time.Time       `json:"endDate"`
	IsActive             bool            `json:"isActive"`
	ApplicableProducts   []string        `json:"applicableProducts,omitempty"`
	ExcludedProducts     []string        `json:"excludedProducts,omitempty"`
	ApplicableCategories []string        `json:"applicableCategories,omitempty"`
	ExcludedCategories   []string        `json:"excludedCategories,omitempty"`
}

// NewVoucher validates and constructs a voucher. The zero usage limit means
// unlimited redemptions.
func NewVoucher(v Voucher) (*Voucher, error) {
	v.Code = strings.ToUpper(strings.TrimSpace(v.Code))
	if v.Code == "" {
		return nil, ErrVoucherCodeRequired
	}
	if v.DiscountType != DiscountFixed && v.DiscountType != DiscountPercentage {
		return nil, ErrVoucherInvalidType
	}
	if !v.DiscountValue.IsPositive() {
		return nil, ErrVoucherInvalidValue
	}
	if v.EndDate.Before(v.StartDate) {
		return nil, ErrVoucherInvalidWindow
	}
	if v.MinPurchaseAmount.IsNegative() {
		return nil, ErrVoucherNegativeMinimum
	}
	if v.GlobalUsageLimit > 0 && v.CurrentUsage > v.GlobalUsageLimit {
		return nil, ErrVoucherUsageOverLimit
	}
	if v.Type == "" {
		v.Type = VoucherPublic
	}
	return &v, nil
}

// UnlimitedUsage reports whether the voucher has no global usage cap.
func (v *Voucher) UnlimitedUsage() bool {
	return v.GlobalUsageLimit <= 0
}

// Scoped reports whether the voucher is restricted to specific products
// or categories. Exclusion lists alone do not make a voucher scoped.
func (v *Voucher) Scoped() bool {
	return len(v.ApplicableProducts) > 0 || len(v.ApplicableCategories) > 0
}
