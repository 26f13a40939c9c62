package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MinhTrung9443/storefront-api/internal/models"
	"github.com/MinhTrung9443/storefront-api/internal/preview"
	"github.com/MinhTrung9443/storefront-api/internal/pricing"
	"github.com/MinhTrung9443/storefront-api/internal/repository"
	"github.com/MinhTrung9443/storefront-api/internal/voucher"
)

var (
	// ErrDependency marks a collaborator failure, distinguishable from
	// invalid input so the caller can retry instead of showing a validation
	// message.
	ErrDependency = errors.New("dependency unavailable")
)

// ValidationError carries the accumulated shape violations of a rejected
// request.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Errors, "; ")
}

// ProductResolver resolves catalog products by ID.
type ProductResolver interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// VoucherLookup resolves vouchers by code.
type VoucherLookup interface {
	FindByCode(ctx context.Context, code string) (*models.Voucher, error)
}

// DeliveryLookup resolves shipping fees by method.
type DeliveryLookup interface {
	GetByMethod(ctx context.Context, method models.ShippingMethod) (*models.DeliveryMethod, error)
}

// UserLookup resolves customers and their loyalty balances.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// PreviewService computes order previews. A preview is pure with respect to
// state: it reads products, vouchers, fees and balances but writes nothing,
// so concurrent previews for the same user are always safe.
type PreviewService struct {
	products   ProductResolver
	vouchers   VoucherLookup
	delivery   DeliveryLookup
	users      UserLookup
	pointValue decimal.Decimal
	now        func() time.Time
}

// NewPreviewService creates a preview service.
func NewPreviewService(products ProductResolver, vouchers VoucherLookup, delivery DeliveryLookup, users UserLookup, pointValue decimal.Decimal) *PreviewService {
	return &PreviewService{
		products:   products,
		vouchers:   vouchers,
		delivery:   delivery,
		users:      users,
		pointValue: pointValue,
		now:        time.Now,
	}
}

// Preview validates the request, resolves its lines against the catalog,
// evaluates the voucher, and aggregates the final pricing. A voucher that
// does not resolve or is inapplicable degrades to a zero discount with the
// reason surfaced in the preview rather than failing the call.
func (s *PreviewService) Preview(ctx context.Context, userID string, req models.OrderPreviewRequest) (*models.OrderPreview, error) {
	req = preview.Clean(req)
	if v := preview.Validate(req); !v.IsValid {
		return nil, &ValidationError{Errors: v.Errors}
	}

	lines, err := s.resolveLines(ctx, req.OrderLines)
	if err != nil {
		return nil, err
	}

	fee := decimal.Zero
	if req.ShippingMethod != "" {
		dm, err := s.delivery.GetByMethod(ctx, req.ShippingMethod)
		if err != nil {
			if errors.Is(err, repository.ErrDeliveryMethodNotFound) {
				return nil, &ValidationError{Errors: []string{"shippingMethod must be one of express, regular, standard"}}
			}
			return nil, fmt.Errorf("%w: delivery lookup: %v", ErrDependency, err)
		}
		fee = dm.Fee
	}

	discount := decimal.Zero
	voucherMessage := ""
	if req.VoucherCode != "" {
		discount, voucherMessage, err = s.evaluateVoucher(ctx, req.VoucherCode, lines)
		if err != nil {
			return nil, err
		}
	}

	pointsToApply := int64(0)
	if req.PointsToApply != nil {
		pointsToApply = *req.PointsToApply
	}
	available, err := s.availablePoints(ctx, userID, pointsToApply)
	if err != nil {
		return nil, err
	}

	var payment models.PaymentMethod
	if req.Payment != nil {
		payment = req.Payment.PaymentMethod
	}

	result := pricing.Aggregate(pricing.Input{
		Lines:           lines,
		ShippingAddress: req.ShippingAddress,
		ShippingMethod:  req.ShippingMethod,
		ShippingFee:     fee,
		VoucherCode:     req.VoucherCode,
		VoucherMessage:  voucherMessage,
		Discount:        discount,
		PaymentMethod:   payment,
		PointsToApply:   pointsToApply,
		AvailablePoints: available,
		PointValue:      s.pointValue,
	})

	return &result, nil
}

// resolveLines expands order lines against the catalog. Unknown products are
// skipped; an order whose every line is unknown prices to an empty preview
// and any voucher evaluates to "no items".
func (s *PreviewService) resolveLines(ctx context.Context, lines []models.OrderLine) ([]voucher.ResolvedLine, error) {
	resolved := make([]voucher.ResolvedLine, 0, len(lines))
	for _, line := range lines {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}
			return nil, fmt.Errorf("%w: product lookup: %v", ErrDependency, err)
		}
		resolved = append(resolved, voucher.ResolvedLine{
			Product:  *product,
			Quantity: line.Quantity,
		})
	}
	return resolved, nil
}

func (s *PreviewService) evaluateVoucher(ctx context.Context, code string, lines []voucher.ResolvedLine) (decimal.Decimal, string, error) {
	v, err := s.vouchers.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, voucher.ErrNotFound) {
			return decimal.Zero, voucher.ReasonNotFound, nil
		}
		return decimal.Zero, "", fmt.Errorf("%w: voucher lookup: %v", ErrDependency, err)
	}

	ev := voucher.Evaluate(s.now(), lines, v)
	if !ev.Applicable {
		return decimal.Zero, ev.Reason, nil
	}
	return ev.Discount, "", nil
}

func (s *PreviewService) availablePoints(ctx context.Context, userID string, requested int64) (int64, error) {
	if requested <= 0 || userID == "" {
		return 0, nil
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: user lookup: %v", ErrDependency, err)
	}
	return u.Points, nil
}
