package preview

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MinhTrung9443/storefront-api/internal/models"
)

func cartItems() []models.CartItem {
	return []models.CartItem{
		{ProductID: "1", Name: "Durian Pia Cake", Price: decimal.NewFromInt(50000), Quantity: 2},
		{ProductID: "4", Name: "Lotus Tea", Price: decimal.NewFromInt(110000), Quantity: 1},
	}
}

func completeAddress() models.ShippingAddress {
	return models.ShippingAddress{
		RecipientName: "Tran Van A",
		PhoneNumber:   "0901234567",
		Province:      "Soc Trang",
		District:      "TP Soc Trang",
		Ward:          "Phuong 1",
		Street:        "12 Hai Ba Trung",
	}
}

func TestBuild_LinesFromSelection(t *testing.T) {
	result := Build(cartItems(), nil, Changes{})

	want := []models.OrderLine{
		{ProductID: "1", Quantity: 2},
		{ProductID: "4", Quantity: 1},
	}
	if !reflect.DeepEqual(result.RequestData.OrderLines, want) {
		t.Errorf("OrderLines = %+v, want %+v", result.RequestData.OrderLines, want)
	}
	if !result.Validation.IsValid {
		t.Errorf("expected valid request, errors: %v", result.Validation.Errors)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	prior := &models.OrderPreviewRequest{
		VoucherCode:    "WELCOME10",
		ShippingMethod: models.ShippingRegular,
	}
	changes := Changes{
		ShippingAddress: Set(completeAddress()),
	}

	first := Build(cartItems(), prior, changes)
	second := Build(cartItems(), prior, changes)

	if !reflect.DeepEqual(first.RequestData, second.RequestData) {
		t.Errorf("identical inputs produced different requests:\n%+v\n%+v",
			first.RequestData, second.RequestData)
	}
}

func TestBuild_ChangesWinOverPrior(t *testing.T) {
	prior := &models.OrderPreviewRequest{
		VoucherCode:    "OLDCODE1",
		ShippingMethod: models.ShippingStandard,
	}
	changes := Changes{
		VoucherCode: Set("NEWCODE1"),
	}

	result := Build(cartItems(), prior, changes)

	if result.RequestData.VoucherCode != "NEWCODE1" {
		t.Errorf("VoucherCode = %q, want NEWCODE1", result.RequestData.VoucherCode)
	}
	// Unmentioned facet carries forward.
	if result.RequestData.ShippingMethod != models.ShippingStandard {
		t.Errorf("ShippingMethod = %q, want standard", result.RequestData.ShippingMethod)
	}
}

func TestBuild_ClearDropsPriorValue(t *testing.T) {
	prior := &models.OrderPreviewRequest{
		VoucherCode: "OLDCODE1",
	}
	changes := Changes{
		VoucherCode: Clear[string](),
	}

	result := Build(cartItems(), prior, changes)

	// Clearing must not reintroduce the stale prior value.
	if result.RequestData.VoucherCode != "" {
		t.Errorf("VoucherCode = %q, want empty after clear", result.RequestData.VoucherCode)
	}
}

func TestBuild_AddressCarryForward(t *testing.T) {
	t.Run("complete prior address is carried", func(t *testing.T) {
		addr := completeAddress()
		prior := &models.OrderPreviewRequest{ShippingAddress: &addr}

		result := Build(cartItems(), prior, Changes{})

		if result.RequestData.ShippingAddress == nil {
			t.Fatal("expected carried-forward address")
		}
		if *result.RequestData.ShippingAddress != addr {
			t.Errorf("address = %+v, want %+v", *result.RequestData.ShippingAddress, addr)
		}
	})

	t.Run("partial prior address is never carried", func(t *testing.T) {
		prior := &models.OrderPreviewRequest{
			ShippingAddress: &models.ShippingAddress{RecipientName: "Tran Van A"},
		}

		result := Build(cartItems(), prior, Changes{})

		if result.RequestData.ShippingAddress != nil {
			t.Errorf("partial address was carried forward: %+v", result.RequestData.ShippingAddress)
		}
	})

	t.Run("changed address overrides prior", func(t *testing.T) {
		addr := completeAddress()
		prior := &models.OrderPreviewRequest{ShippingAddress: &addr}

		edited := completeAddress()
		edited.Ward = "Phuong 5"
		result := Build(cartItems(), prior, Changes{ShippingAddress: Set(edited)})

		if result.RequestData.ShippingAddress.Ward != "Phuong 5" {
			t.Errorf("Ward = %q, want Phuong 5", result.RequestData.ShippingAddress.Ward)
		}
	})

	t.Run("cleared address is dropped despite complete prior", func(t *testing.T) {
		addr := completeAddress()
		prior := &models.OrderPreviewRequest{ShippingAddress: &addr}

		result := Build(cartItems(), prior, Changes{
			ShippingAddress: Clear[models.ShippingAddress](),
		})

		if result.RequestData.ShippingAddress != nil {
			t.Errorf("cleared address was reintroduced: %+v", result.RequestData.ShippingAddress)
		}
	})
}

func TestBuild_PointsMerge(t *testing.T) {
	priorPoints := int64(100)

	t.Run("zero points survives cleaning", func(t *testing.T) {
		result := Build(cartItems(), nil, Changes{PointsToApply: Set(int64(0))})

		if result.RequestData.PointsToApply == nil {
			t.Fatal("zero pointsToApply was stripped")
		}
		if *result.RequestData.PointsToApply != 0 {
			t.Errorf("PointsToApply = %d, want 0", *result.RequestData.PointsToApply)
		}
	})

	t.Run("prior points carry forward", func(t *testing.T) {
		prior := &models.OrderPreviewRequest{PointsToApply: &priorPoints}
		result := Build(cartItems(), prior, Changes{})

		if result.RequestData.PointsToApply == nil || *result.RequestData.PointsToApply != 100 {
			t.Errorf("PointsToApply = %v, want 100", result.RequestData.PointsToApply)
		}
	})

	t.Run("cleared points are dropped", func(t *testing.T) {
		prior := &models.OrderPreviewRequest{PointsToApply: &priorPoints}
		result := Build(cartItems(), prior, Changes{PointsToApply: Clear[int64]()})

		if result.RequestData.PointsToApply != nil {
			t.Errorf("PointsToApply = %v, want nil after clear", result.RequestData.PointsToApply)
		}
	})
}

func TestClean(t *testing.T) {
	t.Run("trims strings and drops empty facets", func(t *testing.T) {
		req := models.OrderPreviewRequest{
			OrderLines:  []models.OrderLine{{ProductID: "  1  ", Quantity: 1}},
			VoucherCode: "  welcome10  ",
			Payment:     &models.PaymentInfo{},
		}

		cleaned := Clean(req)

		if cleaned.OrderLines[0].ProductID != "1" {
			t.Errorf("ProductID = %q, want 1", cleaned.OrderLines[0].ProductID)
		}
		if cleaned.VoucherCode != "welcome10" {
			t.Errorf("VoucherCode = %q, want welcome10", cleaned.VoucherCode)
		}
		if cleaned.Payment != nil {
			t.Error("empty payment object was not dropped")
		}
	})

	t.Run("fully empty address object is removed", func(t *testing.T) {
		req := models.OrderPreviewRequest{
			OrderLines:      []models.OrderLine{{ProductID: "1", Quantity: 1}},
			ShippingAddress: &models.ShippingAddress{Ward: "   "},
		}

		cleaned := Clean(req)
		if cleaned.ShippingAddress != nil {
			t.Errorf("whitespace-only address survived cleaning: %+v", cleaned.ShippingAddress)
		}
	})

	t.Run("non-empty address is preserved and trimmed", func(t *testing.T) {
		req := models.OrderPreviewRequest{
			OrderLines:      []models.OrderLine{{ProductID: "1", Quantity: 1}},
			ShippingAddress: &models.ShippingAddress{Ward: " Phuong 1 "},
		}

		cleaned := Clean(req)
		if cleaned.ShippingAddress == nil || cleaned.ShippingAddress.Ward != "Phuong 1" {
			t.Errorf("address = %+v, want trimmed ward", cleaned.ShippingAddress)
		}
	})
}

func TestField_States(t *testing.T) {
	var unset Field[string]
	if !unset.IsUnset() || unset.IsSet() || unset.IsClear() {
		t.Error("zero Field should be Unset")
	}

	set := Set("value")
	if v, ok := set.Value(); !ok || v != "value" {
		t.Errorf("Set field Value() = (%q, %v), want (value, true)", v, ok)
	}

	cleared := Clear[string]()
	if !cleared.IsClear() {
		t.Error("Clear field should report IsClear")
	}
	if _, ok := cleared.Value(); ok {
		t.Error("Clear field should not yield a value")
	}
}
