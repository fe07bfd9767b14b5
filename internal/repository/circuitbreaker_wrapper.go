// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/warehouse-service/internal/circuitbreaker"
	"github.com/guttosm/warehouse-service/internal/domain/model"
)

// ProductRepositoryWithCircuitBreaker wraps a Mongo catalog repository with
// circuit breaker protection. Domain errors (product not found) count as
// successes and pass through untouched.
type ProductRepositoryWithCircuitBreaker struct {
	repo           *MongoProductRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductRepositoryWithCircuitBreaker creates a new catalog wrapper with circuit breaker.
func NewProductRepositoryWithCircuitBreaker(repo *MongoProductRepository, cb *circuitbreaker.CircuitBreaker) *ProductRepositoryWithCircuitBreaker {
	return &ProductRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetProductByID resolves a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) GetProductByID(ctx context.Context, productID string) (*model.Product, error) {
	var result *model.Product
	var notFound *model.ProductNotFoundError
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetProductByID(ctx, productID)
		if nf, ok := cbErr.(*model.ProductNotFoundError); ok {
			// Not-found is an answer, not an outage.
			notFound = nf
			return nil
		}
		return cbErr
	})
	if err != nil {
		return nil, err
	}
	if notFound != nil {
		return nil, notFound
	}
	return result, nil
}

// GetAllProducts returns the catalog with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var result []model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetAllProducts(ctx)
		return cbErr
	})
	return result, err
}

// Reload delegates to the underlying repository.
func (r *ProductRepositoryWithCircuitBreaker) Reload(ctx context.Context) error {
	return r.repo.Reload(ctx)
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// OrderRepositoryWithCircuitBreaker wraps a Mongo order repository with
// circuit breaker protection.
type OrderRepositoryWithCircuitBreaker struct {
	repo           *MongoOrderRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrderRepositoryWithCircuitBreaker creates a new order wrapper with circuit breaker.
func NewOrderRepositoryWithCircuitBreaker(repo *MongoOrderRepository, cb *circuitbreaker.CircuitBreaker) *OrderRepositoryWithCircuitBreaker {
	return &OrderRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetOrdersByDate fetches a date's orders with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) GetOrdersByDate(ctx context.Context, date string) ([]model.Order, error) {
	var result []model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetOrdersByDate(ctx, date)
		return cbErr
	})
	return result, err
}

// GetOrderByID fetches an order with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	var result *model.Order
	var notFound *model.OrderNotFoundError
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetOrderByID(ctx, orderID)
		if nf, ok := cbErr.(*model.OrderNotFoundError); ok {
			notFound = nf
			return nil
		}
		return cbErr
	})
	if err != nil {
		return nil, err
	}
	if notFound != nil {
		return nil, notFound
	}
	return result, nil
}

// SaveOrder inserts an order with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) SaveOrder(ctx context.Context, order model.Order) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SaveOrder(ctx, order)
	})
}

// UpdateOrder replaces an order with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) UpdateOrder(ctx context.Context, order model.Order) error {
	var notFound *model.OrderNotFoundError
	err := r.circuitBreaker.Execute(ctx, func() error {
		cbErr := r.repo.UpdateOrder(ctx, order)
		if nf, ok := cbErr.(*model.OrderNotFoundError); ok {
			notFound = nf
			return nil
		}
		return cbErr
	})
	if err != nil {
		return err
	}
	if notFound != nil {
		return notFound
	}
	return nil
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrderRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
