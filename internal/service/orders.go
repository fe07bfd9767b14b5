package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/guttosm/warehouse-service/internal/domain/dto"
	"github.com/guttosm/warehouse-service/internal/domain/model"
	"github.com/guttosm/warehouse-service/internal/metrics"
	"github.com/guttosm/warehouse-service/internal/repository"
)

// OrderService defines the order intake operations.
type OrderService interface {
	// SaveOrder validates and persists a new order, assigning an id when the
	// request carries none. Returns the stored order.
	SaveOrder(ctx context.Context, req dto.SaveOrderRequest) (*model.Order, error)

	// GetOrderByID returns a stored order.
	GetOrderByID(ctx context.Context, orderID string) (*model.Order, error)

	// UpdateOrder validates and replaces an existing order.
	UpdateOrder(ctx context.Context, orderID string, req dto.SaveOrderRequest) (*model.Order, error)
}

// OrderServiceImpl implements OrderService on top of the order store.
// Writes notify the warehouse service so stale cached reports are dropped.
type OrderServiceImpl struct {
	orders    repository.OrderRepositoryInterface
	warehouse WarehouseService
}

// NewOrderService creates a new order intake service. warehouse may be nil
// when no report cache is in play.
func NewOrderService(orders repository.OrderRepositoryInterface, warehouse WarehouseService) *OrderServiceImpl {
	return &OrderServiceImpl{
		orders:    orders,
		warehouse: warehouse,
	}
}

// SaveOrder validates and persists a new order.
func (s *OrderServiceImpl) SaveOrder(ctx context.Context, req dto.SaveOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order := req.ToOrder()
	if order.OrderID == "" {
		order.OrderID = uuid.NewString()
	}

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return nil, err
	}

	s.invalidate(order.OrderDate)
	metrics.RecordOrderStored("save")
	return &order, nil
}

// GetOrderByID returns a stored order.
func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	return s.orders.GetOrderByID(ctx, orderID)
}

// UpdateOrder validates and replaces an existing order. The path id wins over
// any id in the payload. When the update moves the order to another date,
// reports for both dates are invalidated.
func (s *OrderServiceImpl) UpdateOrder(ctx context.Context, orderID string, req dto.SaveOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order := req.ToOrder()
	order.OrderID = orderID

	if err := s.orders.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.invalidate(existing.OrderDate)
	if order.OrderDate != existing.OrderDate {
		s.invalidate(order.OrderDate)
	}
	metrics.RecordOrderStored("update")
	return &order, nil
}

func (s *OrderServiceImpl) invalidate(date string) {
	if s.warehouse != nil {
		s.warehouse.InvalidateReports(date)
	}
}
