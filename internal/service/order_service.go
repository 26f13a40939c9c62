package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MinhTrung9443/storefront-api/internal/models"
	"github.com/MinhTrung9443/storefront-api/internal/repository"
	"github.com/MinhTrung9443/storefront-api/internal/voucher"
)

var (
	// ErrPreviewMismatch is returned when the client-echoed total no longer
	// matches the server-derived pricing, typically because voucher or stock
	// state moved between preview and submission.
	ErrPreviewMismatch = errors.New("preview no longer matches current pricing")
	// ErrVoucherExhausted is returned when the voucher's usage cap was
	// consumed between preview and submission.
	ErrVoucherExhausted = errors.New("voucher usage limit reached")
	// ErrInsufficientPoints is returned when the loyalty balance no longer
	// covers the requested redemption.
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
)

// CreateOrderRequest is the body of POST /api/orders: the same parameters the
// preview was computed from, plus the preview the client reviewed. The
// echoed preview is used only as a diff check; pricing is always re-derived
// server-side.
type CreateOrderRequest struct {
	models.OrderPreviewRequest
	Preview *models.OrderPreview `json:"preview"`
}

// VoucherConsumer atomically checks and increments voucher usage.
type VoucherConsumer interface {
	ConsumeUsage(ctx context.Context, code string) error
	ReleaseUsage(ctx context.Context, code string) error
}

// PointsConsumer atomically checks and deducts loyalty points.
type PointsConsumer interface {
	ConsumePoints(ctx context.Context, id string, points int64) error
}

// OrderService turns an accepted preview into an order. Voucher usage and
// points are consumed here, never at preview time, with check-and-increment
// under the repositories' locks so two concurrent submissions cannot
// double-book a capped voucher or overspend a balance.
type OrderService struct {
	previews *PreviewService
	vouchers VoucherConsumer
	users    PointsConsumer
}

// NewOrderService creates a new order service.
func NewOrderService(previews *PreviewService, vouchers VoucherConsumer, users PointsConsumer) *OrderService {
	return &OrderService{
		previews: previews,
		vouchers: vouchers,
		users:    users,
	}
}

// CreateOrder re-derives the authoritative preview from the request
// parameters, verifies the client-echoed total still holds, then consumes
// the voucher slot and loyalty points.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (*models.Order, error) {
	derived, err := s.previews.Preview(ctx, userID, req.OrderPreviewRequest)
	if err != nil {
		return nil, err
	}

	// The client-supplied numbers are never trusted; they only gate the
	// submission when pricing drifted since the preview was shown.
	if req.Preview != nil && !req.Preview.TotalAmount.Equal(derived.TotalAmount) {
		return nil, ErrPreviewMismatch
	}

	voucherConsumed := false
	if derived.VoucherCode != "" && derived.Discount.IsPositive() {
		if err := s.vouchers.ConsumeUsage(ctx, derived.VoucherCode); err != nil {
			switch {
			case errors.Is(err, voucher.ErrExhausted):
				return nil, ErrVoucherExhausted
			case errors.Is(err, voucher.ErrNotFound):
				return nil, ErrPreviewMismatch
			default:
				return nil, fmt.Errorf("%w: voucher consume: %v", ErrDependency, err)
			}
		}
		voucherConsumed = true
	}

	if points := s.pointsToConsume(derived); points > 0 {
		if err := s.users.ConsumePoints(ctx, userID, points); err != nil {
			if voucherConsumed {
				// Hand the redemption back so a points failure does not leak
				// a voucher slot.
				_ = s.vouchers.ReleaseUsage(ctx, derived.VoucherCode)
			}
			if errors.Is(err, repository.ErrInsufficientPoints) {
				return nil, ErrInsufficientPoints
			}
			return nil, fmt.Errorf("%w: points consume: %v", ErrDependency, err)
		}
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Preview:   *derived,
		Status:    "pending",
		CreatedAt: time.Now().UTC(),
	}

	return order, nil
}

// pointsToConsume converts the currency-equivalent PointsApplied back into
// whole points, rounding up so a capped redemption never under-deducts.
func (s *OrderService) pointsToConsume(p *models.OrderPreview) int64 {
	if !p.PointsApplied.IsPositive() || !s.previews.pointValue.IsPositive() {
		return 0
	}
	return p.PointsApplied.Div(s.previews.pointValue).Ceil().IntPart()
}
