package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/MinhTrung9443/storefront-api/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage
type InMemoryProductRepository struct {
	products map[string]models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository with seed data
func NewInMemoryProductRepository() *InMemoryProductRepository {
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	products := map[string]models.Product{
		"1":  {ID: "1", Code: "BP-SR", Name: "Durian Pia Cake", Price: price(55000), Discount: price(5000), Category: "Cake"},
		"2":  {ID: "2", Code: "BP-DX", Name: "Mung Bean Pia Cake", Price: price(45000), Discount: decimal.Zero, Category: "Cake"},
		"3":  {ID: "3", Code: "BP-TR", Name: "Taro Pia Cake", Price: price(48000), Discount: decimal.Zero, Category: "Cake"},
		"4":  {ID: "4", Code: "TR-LP", Name: "Lotus Tea", Price: price(120000), Discount: price(10000), Category: "Tea"},
		"5":  {ID: "5", Code: "TR-OL", Name: "Oolong Tea", Price: price(150000), Discount: decimal.Zero, Category: "Tea"},
		"6":  {ID: "6", Code: "CF-RB", Name: "Robusta Coffee 500g", Price: price(95000), Discount: decimal.Zero, Category: "Coffee"},
		"7":  {ID: "7", Code: "CF-AR", Name: "Arabica Coffee 500g", Price: price(135000), Discount: price(15000), Category: "Coffee"},
		"8":  {ID: "8", Code: "KH-ML", Name: "Dried Mango", Price: price(60000), Discount: decimal.Zero, Category: "Snack"},
		"9":  {ID: "9", Code: "KH-CD", Name: "Coconut Candy", Price: price(35000), Discount: decimal.Zero, Category: "Snack"},
		"10": {ID: "10", Code: "KH-BT", Name: "Banana Chips", Price: price(40000), Discount: decimal.Zero, Category: "Snack"},
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// GetAll returns all products
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}
