package service

import (
	"context"
	"time"

	"github.com/guttosm/warehouse-service/internal/domain/model"
	"github.com/guttosm/warehouse-service/internal/metrics"
	"github.com/guttosm/warehouse-service/internal/repository"
	"github.com/guttosm/warehouse-service/internal/service/cache"
)

// WarehouseService defines the report generation operations for a
// fulfillment run: what to retrieve from the bins (picking) and how to
// assemble each shipment (packing).
type WarehouseService interface {
	// GeneratePickingList aggregates component quantities across every order
	// of the given date.
	GeneratePickingList(ctx context.Context, date string) ([]model.PickingItem, error)

	// GeneratePackingList builds the per-order shipment manifests for the
	// given date.
	GeneratePackingList(ctx context.Context, date string) ([]model.PackingOrder, error)

	// InvalidateReports drops any cached reports for the given date. Called
	// after an order write so the next run sees the change.
	InvalidateReports(date string)
}

// WarehouseOption configures a WarehouseServiceImpl.
type WarehouseOption func(*WarehouseServiceImpl)

// WithReportCache enables report caching with the specified capacity and TTL.
// The cache trades freshness for latency; order writes through this process
// invalidate affected dates, edits to the data files from outside do not.
func WithReportCache(capacity int, ttl time.Duration) WarehouseOption {
	return func(s *WarehouseServiceImpl) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithReportCacheInterface allows injecting a custom cache implementation.
func WithReportCacheInterface(c cache.Cache) WarehouseOption {
	return func(s *WarehouseServiceImpl) {
		s.cache = c
	}
}

// WarehouseServiceImpl implements WarehouseService on top of the product
// catalog and order store.
type WarehouseServiceImpl struct {
	products repository.ProductRepositoryInterface
	orders   repository.OrderRepositoryInterface
	cache    cache.Cache
}

// NewWarehouseService creates a new warehouse report service.
func NewWarehouseService(
	products repository.ProductRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	opts ...WarehouseOption,
) *WarehouseServiceImpl {
	s := &WarehouseServiceImpl{
		products: products,
		orders:   orders,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GeneratePickingList aggregates, per component, the total quantity needed
// across all orders of the date. Quantities are summed keyed by component id;
// name and location come from the first occurrence. A date with no orders
// yields an empty list without touching the catalog. An order referencing a
// product missing from the catalog aborts the whole run.
func (s *WarehouseServiceImpl) GeneratePickingList(ctx context.Context, date string) ([]model.PickingItem, error) {
	start := time.Now()

	if s.cache != nil {
		if report, ok := s.cache.Get(pickingCacheKey(date)); ok {
			metrics.RecordReportGeneration("picking", time.Since(start), "cached")
			return report.PickingItems, nil
		}
	}

	orders, err := s.orders.GetOrdersByDate(ctx, date)
	if err != nil {
		metrics.RecordReportGeneration("picking", time.Since(start), "error")
		return nil, err
	}

	items := make([]model.PickingItem, 0)
	if len(orders) == 0 {
		metrics.RecordReportGeneration("picking", time.Since(start), "success")
		return items, nil
	}

	// Index into items keyed by component id, so totals accumulate in
	// first-seen order.
	index := make(map[string]int)

	for _, order := range orders {
		for _, line := range order.LineItems {
			product, err := s.products.GetProductByID(ctx, line.ProductID)
			if err != nil {
				metrics.RecordReportGeneration("picking", time.Since(start), "error")
				return nil, err
			}

			multiplier := line.EffectiveQuantity()
			for _, component := range product.Components {
				if i, ok := index[component.ComponentID]; ok {
					items[i].Quantity += component.Quantity * multiplier
					continue
				}
				index[component.ComponentID] = len(items)
				items = append(items, model.PickingItem{
					ComponentID: component.ComponentID,
					Name:        component.Name,
					Quantity:    component.Quantity * multiplier,
					Location:    component.Location,
				})
			}
		}
	}

	if s.cache != nil {
		s.cache.Set(pickingCacheKey(date), model.Report{PickingItems: items})
	}

	metrics.RecordReportGeneration("picking", time.Since(start), "success")
	return items, nil
}

// GeneratePackingList builds one manifest per order of the date. Each line
// item becomes its own entry, even when two line items reference the same
// product, with component quantities scaled by the line item quantity.
func (s *WarehouseServiceImpl) GeneratePackingList(ctx context.Context, date string) ([]model.PackingOrder, error) {
	start := time.Now()

	if s.cache != nil {
		if report, ok := s.cache.Get(packingCacheKey(date)); ok {
			metrics.RecordReportGeneration("packing", time.Since(start), "cached")
			return report.PackingOrders, nil
		}
	}

	orders, err := s.orders.GetOrdersByDate(ctx, date)
	if err != nil {
		metrics.RecordReportGeneration("packing", time.Since(start), "error")
		return nil, err
	}

	manifests := make([]model.PackingOrder, 0, len(orders))
	for _, order := range orders {
		manifest := model.PackingOrder{
			OrderID:         order.OrderID,
			OrderDate:       order.OrderDate,
			CustomerName:    order.CustomerName,
			ShippingAddress: order.ShippingAddress,
			Items:           make([]model.PackingItem, 0, len(order.LineItems)),
		}

		for _, line := range order.LineItems {
			product, err := s.products.GetProductByID(ctx, line.ProductID)
			if err != nil {
				metrics.RecordReportGeneration("packing", time.Since(start), "error")
				return nil, err
			}

			multiplier := line.EffectiveQuantity()
			components := make([]model.Component, len(product.Components))
			for i, component := range product.Components {
				components[i] = model.Component{
					ComponentID: component.ComponentID,
					Name:        component.Name,
					Quantity:    component.Quantity * multiplier,
					Location:    component.Location,
				}
			}

			manifest.Items = append(manifest.Items, model.PackingItem{
				GiftBoxName: product.ProductName,
				Components:  components,
			})
		}

		manifests = append(manifests, manifest)
	}

	if s.cache != nil {
		s.cache.Set(packingCacheKey(date), model.Report{PackingOrders: manifests})
	}

	metrics.RecordReportGeneration("packing", time.Since(start), "success")
	return manifests, nil
}

// InvalidateReports drops cached picking and packing lists for the date.
func (s *WarehouseServiceImpl) InvalidateReports(date string) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(pickingCacheKey(date))
	s.cache.Invalidate(packingCacheKey(date))
}

func pickingCacheKey(date string) string { return "picking:" + date }
func packingCacheKey(date string) string { return "packing:" + date }
