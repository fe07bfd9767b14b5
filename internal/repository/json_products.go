// Package repository provides data access for the product catalog and orders.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/guttosm/warehouse-service/internal/domain/model"
)

// productsDocument is the on-disk layout of the catalog file.
type productsDocument struct {
	Products []model.Product `json:"products"`
}

// JSONProductRepository serves the catalog from a JSON file.
//
// The file is read and validated once at construction and held as an
// immutable map keyed by product_id; Reload swaps the map for live catalog
// edits. With reloadPerCall set, every lookup re-reads the file instead
// (caching-disabled mode).
type JSONProductRepository struct {
	path          string
	reloadPerCall bool

	mu       sync.RWMutex
	byID     map[string]model.Product
	ordered  []model.Product
}

// JSONProductOption configures a JSONProductRepository.
type JSONProductOption func(*JSONProductRepository)

// WithCatalogReloadPerCall disables the in-memory catalog snapshot and
// re-reads the file on every call.
func WithCatalogReloadPerCall() JSONProductOption {
	return func(r *JSONProductRepository) {
		r.reloadPerCall = true
	}
}

// NewJSONProductRepository loads and validates the catalog file.
// Construction fails when the file is missing, unparsable, or the catalog
// is empty or malformed.
func NewJSONProductRepository(path string, opts ...JSONProductOption) (*JSONProductRepository, error) {
	r := &JSONProductRepository{path: path}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.Reload(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads the catalog file and atomically replaces the snapshot.
func (r *JSONProductRepository) Reload(_ context.Context) error {
	products, err := r.readFile()
	if err != nil {
		return err
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	r.mu.Lock()
	r.byID = byID
	r.ordered = products
	r.mu.Unlock()
	return nil
}

// GetProductByID resolves a product id to its bill-of-materials.
func (r *JSONProductRepository) GetProductByID(ctx context.Context, productID string) (*model.Product, error) {
	if r.reloadPerCall {
		if err := r.Reload(ctx); err != nil {
			return nil, err
		}
	}

	r.mu.RLock()
	p, ok := r.byID[productID]
	r.mu.RUnlock()

	if !ok {
		return nil, model.NewProductNotFoundError(productID)
	}
	return &p, nil
}

// GetAllProducts returns the whole catalog in file order.
func (r *JSONProductRepository) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	if r.reloadPerCall {
		if err := r.Reload(ctx); err != nil {
			return nil, err
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

// readFile reads, parses, and validates the catalog document.
func (r *JSONProductRepository) readFile() ([]model.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("reading products file: %w", err)
	}

	var doc productsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, model.NewDataInvalidError("products", "invalid JSON: "+err.Error())
	}
	if doc.Products == nil {
		return nil, model.NewDataInvalidError("products", "missing products array")
	}
	if err := validateCatalog(doc.Products); err != nil {
		return nil, err
	}
	return doc.Products, nil
}

// validateCatalog rejects malformed catalog entries eagerly so report
// generation never fails deep inside aggregation.
func validateCatalog(products []model.Product) error {
	if len(products) == 0 {
		return model.NewDataInvalidError("products", "catalog is empty")
	}

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if p.ProductID == "" {
			return model.NewDataInvalidError("products", "product without product_id")
		}
		if _, dup := seen[p.ProductID]; dup {
			return model.NewDataInvalidError("products", "duplicate product_id "+p.ProductID)
		}
		seen[p.ProductID] = struct{}{}

		componentIDs := make(map[string]struct{}, len(p.Components))
		for _, c := range p.Components {
			if c.ComponentID == "" {
				return model.NewDataInvalidError("products", "product "+p.ProductID+" has a component without component_id")
			}
			if _, dup := componentIDs[c.ComponentID]; dup {
				return model.NewDataInvalidError("products", "product "+p.ProductID+" has duplicate component_id "+c.ComponentID)
			}
			componentIDs[c.ComponentID] = struct{}{}

			if c.Quantity < 0 {
				return model.NewDataInvalidError("products", "product "+p.ProductID+" component "+c.ComponentID+" has negative quantity")
			}
		}
	}
	return nil
}
