package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MinhTrung9443/storefront-api/internal/models"
	"github.com/MinhTrung9443/storefront-api/internal/voucher"
)

func amount(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func lines() []voucher.ResolvedLine {
	return []voucher.ResolvedLine{
		{
			Product: models.Product{
				ID: "1", Code: "BP-SR", Name: "Durian Pia Cake",
				Price: amount(55000), Discount: amount(5000), Category: "Cake",
			},
			Quantity: 2, // actual 50000 x2 = 100000
		},
		{
			Product: models.Product{
				ID: "4", Code: "TR-LP", Name: "Lotus Tea",
				Price: amount(120000), Discount: amount(10000), Category: "Tea",
			},
			Quantity: 1, // actual 110000
		},
	}
}

func TestAggregate_Totals(t *testing.T) {
	tests := []struct {
		name       string
		input      Input
		wantTotal  decimal.Decimal
		wantPoints decimal.Decimal
	}{
		{
			name: "subtotal plus shipping minus discount",
			input: Input{
				Lines:       lines(),
				ShippingFee: amount(30000),
				Discount:    amount(20000),
			},
			wantTotal:  amount(220000), // 210000 + 30000 - 20000
			wantPoints: decimal.Zero,
		},
		{
			name: "points redemption at one thousand per point",
			input: Input{
				Lines:           lines(),
				ShippingFee:     amount(30000),
				PointsToApply:   50,
				AvailablePoints: 500,
				PointValue:      amount(1000),
			},
			wantTotal:  amount(190000), // 240000 - 50000
			wantPoints: amount(50000),
		},
		{
			name: "points capped by balance",
			input: Input{
				Lines:           lines(),
				PointsToApply:   1000,
				AvailablePoints: 30,
				PointValue:      amount(1000),
			},
			wantTotal:  amount(180000), // 210000 - 30000
			wantPoints: amount(30000),
		},
		{
			name: "points capped by remaining payable amount",
			input: Input{
				Lines:           lines(),
				Discount:        amount(200000),
				PointsToApply:   500,
				AvailablePoints: 500,
				PointValue:      amount(1000),
			},
			// remaining after discount is 10000; redemption stops there
			wantTotal:  decimal.Zero,
			wantPoints: amount(10000),
		},
		{
			name: "discount capped at subtotal keeps total non-negative",
			input: Input{
				Lines:    lines(),
				Discount: amount(999999),
			},
			wantTotal:  decimal.Zero,
			wantPoints: decimal.Zero,
		},
		{
			name: "negative discount treated as zero",
			input: Input{
				Lines:    lines(),
				Discount: amount(-5000),
			},
			wantTotal:  amount(210000),
			wantPoints: decimal.Zero,
		},
		{
			name:       "empty order prices to zero",
			input:      Input{},
			wantTotal:  decimal.Zero,
			wantPoints: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.input)

			if !got.TotalAmount.Equal(tt.wantTotal) {
				t.Errorf("TotalAmount = %s, want %s", got.TotalAmount, tt.wantTotal)
			}
			if !got.PointsApplied.Equal(tt.wantPoints) {
				t.Errorf("PointsApplied = %s, want %s", got.PointsApplied, tt.wantPoints)
			}

			// The published invariant holds for every aggregation.
			derived := got.Subtotal.Add(got.ShippingFee).Sub(got.Discount).Sub(got.PointsApplied)
			if derived.IsNegative() {
				derived = decimal.Zero
			}
			if !got.TotalAmount.Equal(derived) {
				t.Errorf("invariant violated: total %s != %s", got.TotalAmount, derived)
			}
			if got.TotalAmount.IsNegative() {
				t.Errorf("TotalAmount is negative: %s", got.TotalAmount)
			}
		})
	}
}

func TestAggregate_PricedLines(t *testing.T) {
	got := Aggregate(Input{Lines: lines()})

	if len(got.OrderLines) != 2 {
		t.Fatalf("expected 2 priced lines, got %d", len(got.OrderLines))
	}

	first := got.OrderLines[0]
	if first.ProductCode != "BP-SR" || first.ProductName != "Durian Pia Cake" {
		t.Errorf("line identity not carried: %+v", first)
	}
	if !first.ProductActualPrice.Equal(amount(50000)) {
		t.Errorf("ProductActualPrice = %s, want 50000", first.ProductActualPrice)
	}
	if !first.LineTotal.Equal(amount(100000)) {
		t.Errorf("LineTotal = %s, want 100000", first.LineTotal)
	}
	if !got.Subtotal.Equal(amount(210000)) {
		t.Errorf("Subtotal = %s, want 210000", got.Subtotal)
	}
}

func TestAggregate_VoucherDegradation(t *testing.T) {
	// An inapplicable voucher surfaces its reason with a zero discount
	// instead of failing the preview.
	got := Aggregate(Input{
		Lines:          lines(),
		VoucherCode:    "EXPIRED1",
		VoucherMessage: "voucher expired",
		Discount:       decimal.Zero,
	})

	if !got.Discount.IsZero() {
		t.Errorf("Discount = %s, want 0", got.Discount)
	}
	if got.VoucherMessage != "voucher expired" {
		t.Errorf("VoucherMessage = %q, want surfaced reason", got.VoucherMessage)
	}
	if got.VoucherCode != "EXPIRED1" {
		t.Errorf("VoucherCode = %q, want EXPIRED1", got.VoucherCode)
	}
}

func TestAggregate_ShippingContext(t *testing.T) {
	addr := &models.ShippingAddress{
		RecipientName: "Tran Van A", PhoneNumber: "0901234567",
		Province: "Soc Trang", District: "TP Soc Trang",
		Ward: "Phuong 1", Street: "12 Hai Ba Trung",
	}

	got := Aggregate(Input{
		Lines:           lines(),
		ShippingAddress: addr,
		ShippingMethod:  models.ShippingExpress,
		ShippingFee:     amount(45000),
		PaymentMethod:   models.PaymentCOD,
	})

	if got.ShippingAddress != addr {
		t.Error("shipping address not carried into preview")
	}
	if got.ShippingMethod != models.ShippingExpress {
		t.Errorf("ShippingMethod = %q, want express", got.ShippingMethod)
	}
	if got.PaymentMethod != models.PaymentCOD {
		t.Errorf("PaymentMethod = %q, want COD", got.PaymentMethod)
	}
}
