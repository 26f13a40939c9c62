package preview

import (
	"strings"

	"github.com/MinhTrung9443/storefront-api/internal/models"
)

// Changes captures the facets a single user interaction touched. Facets left
// Unset are carried forward from the prior request state; facets Cleared are
// dropped even when the prior state holds a value.
type Changes struct {
	ShippingAddress Field[models.ShippingAddress]
	VoucherCode     Field[string]
	ShippingMethod  Field[models.ShippingMethod]
	Payment         Field[models.PaymentInfo]
	PointsToApply   Field[int64]
}

// BuildResult pairs the assembled request with its validation so the caller
// can decide whether to submit.
type BuildResult struct {
	RequestData models.OrderPreviewRequest
	Validation  ValidationResult
}

// Build assembles an order-preview request from the selected cart items, the
// prior request state and the facets changed by the current interaction.
// Explicit changes always win; prior state only fills facets the changes did
// not mention; the address is carried forward only when complete. The order
// lines are always rebuilt from the current selection.
func Build(selected []models.CartItem, prior *models.OrderPreviewRequest, changes Changes) BuildResult {
	req := models.OrderPreviewRequest{
		OrderLines: make([]models.OrderLine, 0, len(selected)),
	}
	for _, item := range selected {
		req.OrderLines = append(req.OrderLines, models.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	mergeAddress(&req, prior, changes.ShippingAddress)
	mergeVoucher(&req, prior, changes.VoucherCode)
	mergeShippingMethod(&req, prior, changes.ShippingMethod)
	mergePayment(&req, prior, changes.Payment)
	mergePoints(&req, prior, changes.PointsToApply)

	req = Clean(req)

	return BuildResult{
		RequestData: req,
		Validation:  Validate(req),
	}
}

func mergeAddress(req *models.OrderPreviewRequest, prior *models.OrderPreviewRequest, f Field[models.ShippingAddress]) {
	if addr, ok := f.Value(); ok {
		req.ShippingAddress = &addr
		return
	}
	if f.IsClear() {
		return
	}
	// Carry forward only a complete prior address; a partial one is never
	// propagated.
	if prior != nil && prior.ShippingAddress != nil && prior.ShippingAddress.Complete() {
		addr := *prior.ShippingAddress
		req.ShippingAddress = &addr
	}
}

func mergeVoucher(req *models.OrderPreviewRequest, prior *models.OrderPreviewRequest, f Field[string]) {
	if code, ok := f.Value(); ok {
		req.VoucherCode = code
		return
	}
	if f.IsClear() {
		return
	}
	if prior != nil {
		req.VoucherCode = prior.VoucherCode
	}
}

func mergeShippingMethod(req *models.OrderPreviewRequest, prior *models.OrderPreviewRequest, f Field[models.ShippingMethod]) {
	if m, ok := f.Value(); ok {
		req.ShippingMethod = m
		return
	}
	if f.IsClear() {
		return
	}
	if prior != nil {
		req.ShippingMethod = prior.ShippingMethod
	}
}

func mergePayment(req *models.OrderPreviewRequest, prior *models.OrderPreviewRequest, f Field[models.PaymentInfo]) {
	if p, ok := f.Value(); ok {
		req.Payment = &p
		return
	}
	if f.IsClear() {
		return
	}
	if prior != nil && prior.Payment != nil {
		p := *prior.Payment
		req.Payment = &p
	}
}

func mergePoints(req *models.OrderPreviewRequest, prior *models.OrderPreviewRequest, f Field[int64]) {
	if pts, ok := f.Value(); ok {
		req.PointsToApply = &pts
		return
	}
	if f.IsClear() {
		return
	}
	if prior != nil && prior.PointsToApply != nil {
		pts := *prior.PointsToApply
		req.PointsToApply = &pts
	}
}

// Clean normalizes a request: strings are trimmed, empty optional facets are
// removed, and a nested object that becomes fully empty is dropped entirely.
// Zero is preserved for pointsToApply since it is a meaningful value.
func Clean(req models.OrderPreviewRequest) models.OrderPreviewRequest {
	for i := range req.OrderLines {
		req.OrderLines[i].ProductID = strings.TrimSpace(req.OrderLines[i].ProductID)
	}

	req.VoucherCode = strings.TrimSpace(req.VoucherCode)

	if req.ShippingAddress != nil {
		addr := *req.ShippingAddress
		addr.RecipientName = strings.TrimSpace(addr.RecipientName)
		addr.PhoneNumber = strings.TrimSpace(addr.PhoneNumber)
		addr.Province = strings.TrimSpace(addr.Province)
		addr.District = strings.TrimSpace(addr.District)
		addr.Ward = strings.TrimSpace(addr.Ward)
		addr.Street = strings.TrimSpace(addr.Street)
		if addr.Empty() {
			req.ShippingAddress = nil
		} else {
			req.ShippingAddress = &addr
		}
	}

	if req.Payment != nil && req.Payment.PaymentMethod == "" {
		req.Payment = nil
	}

	return req
}
