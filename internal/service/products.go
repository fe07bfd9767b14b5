package service

import (
	"context"

	"github.com/guttosm/warehouse-service/internal/domain/model"
	"github.com/guttosm/warehouse-service/internal/repository"
)

// ProductService defines read access to the product catalog.
type ProductService interface {
	// GetProductByID resolves a product id to its bill-of-materials.
	GetProductByID(ctx context.Context, productID string) (*model.Product, error)

	// ListProducts returns the whole catalog.
	ListProducts(ctx context.Context) ([]model.Product, error)

	// ReloadCatalog re-reads the catalog from its backing store.
	ReloadCatalog(ctx context.Context) error
}

// ProductServiceImpl implements ProductService.
type ProductServiceImpl struct {
	products repository.ProductRepositoryInterface
}

// NewProductService creates a new catalog read service.
func NewProductService(products repository.ProductRepositoryInterface) *ProductServiceImpl {
	return &ProductServiceImpl{products: products}
}

// GetProductByID resolves a product id to its bill-of-materials.
func (s *ProductServiceImpl) GetProductByID(ctx context.Context, productID string) (*model.Product, error) {
	return s.products.GetProductByID(ctx, productID)
}

// ListProducts returns the whole catalog.
func (s *ProductServiceImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.products.GetAllProducts(ctx)
}

// ReloadCatalog re-reads the catalog from its backing store.
func (s *ProductServiceImpl) ReloadCatalog(ctx context.Context) error {
	return s.products.Reload(ctx)
}
