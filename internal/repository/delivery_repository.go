package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/MinhTrung9443/storefront-api/internal/models"
)

var (
	ErrDeliveryMethodNotFound = errors.New("delivery method not found")
)

// DeliveryRepository defines the interface for shipping-fee lookups
type DeliveryRepository interface {
	GetAll(ctx context.Context) ([]models.DeliveryMethod, error)
	GetByMethod(ctx context.Context, method models.ShippingMethod) (*models.DeliveryMethod, error)
}

// InMemoryDeliveryRepository implements DeliveryRepository with a fixed fee table
type InMemoryDeliveryRepository struct {
	methods map[models.ShippingMethod]models.DeliveryMethod
}

// NewInMemoryDeliveryRepository creates a delivery repository with the standard fee table
func NewInMemoryDeliveryRepository() *InMemoryDeliveryRepository {
	methods := map[models.ShippingMethod]models.DeliveryMethod{
		models.ShippingExpress: {
			Method:       models.ShippingExpress,
			Name:         "Express Delivery",
			Fee:          decimal.NewFromInt(45000),
			EstimateDays: 1,
		},
		models.ShippingRegular: {
			Method:       models.ShippingRegular,
			Name:         "Regular Delivery",
			Fee:          decimal.NewFromInt(30000),
			EstimateDays: 3,
		},
		models.ShippingStandard: {
			Method:       models.ShippingStandard,
			Name:         "Standard Delivery",
			Fee:          decimal.NewFromInt(15000),
			EstimateDays: 5,
		},
	}

	return &InMemoryDeliveryRepository{methods: methods}
}

// GetAll returns every delivery method
func (r *InMemoryDeliveryRepository) GetAll(ctx context.Context) ([]models.DeliveryMethod, error) {
	out := make([]models.DeliveryMethod, 0, len(r.methods))
	for _, m := range r.methods {
		out = append(out, m)
	}
	return out, nil
}

// GetByMethod returns the delivery method for the given shipping method
func (r *InMemoryDeliveryRepository) GetByMethod(ctx context.Context, method models.ShippingMethod) (*models.DeliveryMethod, error) {
	m, exists := r.methods[method]
	if !exists {
		return nil, ErrDeliveryMethodNotFound
	}
	return &m, nil
}
