// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/warehouse-service/internal/domain/model"
)

// ProductRepositoryInterface is the catalog lookup contract.
//
// GetProductByID returns a *model.ProductNotFoundError when the id does not
// exist; callers decide whether that is fatal.
type ProductRepositoryInterface interface {
	GetProductByID(ctx context.Context, productID string) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	// Reload re-reads the backing store, for live catalog edits.
	Reload(ctx context.Context) error
}

// OrderRepositoryInterface is the order source contract.
//
// GetOrdersByDate matches order_date by exact string equality against the
// YYYY-MM-DD key and returns an empty slice, not an error, when nothing
// matches.
type OrderRepositoryInterface interface {
	GetOrdersByDate(ctx context.Context, date string) ([]model.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*model.Order, error)
	SaveOrder(ctx context.Context, order model.Order) error
	UpdateOrder(ctx context.Context, order model.Order) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
