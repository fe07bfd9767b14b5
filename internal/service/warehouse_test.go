//go:build !integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/warehouse-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, productID string) (*model.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *MockProductRepository) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *MockProductRepository) Reload(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetOrdersByDate(ctx context.Context, date string) ([]model.Order, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	order, _ := args.Get(0).(*model.Order)
	return order, args.Error(1)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func intPtr(v int) *int { return &v }

// Catalog fixtures shared across the report tests.
var (
	relaxBox = &model.Product{
		ProductID:   "GB-RELAX",
		ProductName: "Relaxation Gift Box",
		Price:       49.90,
		Components: []model.Component{
			{ComponentID: "C-CANDLE", Name: "Scented candle", Quantity: 2, Location: "A1"},
			{ComponentID: "C-TEA", Name: "Herbal tea", Quantity: 1, Location: "B3"},
		},
	}
	snackBox = &model.Product{
		ProductID:   "GB-SNACK",
		ProductName: "Snack Gift Box",
		Price:       29.90,
		Components: []model.Component{
			{ComponentID: "C-NUTS", Name: "Mixed nuts", Quantity: 3, Location: "C2"},
			{ComponentID: "C-TEA", Name: "Herbal tea", Quantity: 2, Location: "B3"},
		},
	}
)

func order(id string, items ...model.LineItem) model.Order {
	return model.Order{
		OrderID:         id,
		OrderDate:       "2024-07-07",
		CustomerName:    "Ana Janssen",
		ShippingAddress: "12 Harbour St, Amsterdam",
		LineItems:       items,
	}
}

func TestWarehouseService_GeneratePickingList(t *testing.T) {
	ctx := context.Background()

	t.Run("no orders yields empty list without touching the catalog", func(t *testing.T) {
		products := new(MockProductRepository)
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return([]model.Order{}, nil)

		svc := NewWarehouseService(products, orders)
		items, err := svc.GeneratePickingList(ctx, "2024-07-07")

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		products.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})

	t.Run("single order single line item", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("GetProductByID", mock.Anything, "GB-RELAX").Return(relaxBox, nil)
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return([]model.Order{
			order("ord-1", model.LineItem{LineItemID: "li-1", ProductID: "GB-RELAX", Quantity: intPtr(1)}),
		}, nil)

		svc := NewWarehouseService(products, orders)
		items, err := svc.GeneratePickingList(ctx, "2024-07-07")

		require.NoError(t, err)
		assert.Equal(t, []model.PickingItem{
			{ComponentID: "C-CANDLE", Name: "Scented candle", Quantity: 2, Location: "A1"},
			{ComponentID: "C-TEA", Name: "Herbal tea", Quantity: 1, Location: "B3"},
		}, items)
	})

	t.Run("aggregates shared components across orders", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("GetProductByID", mock.Anything, "GB-RELAX").Return(relaxBox, nil)
		products.On("GetProductByID", mock.Anything, "GB-SNACK").Return(snackBox, nil)
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return([]model.Order{
			order("ord-1", model.LineItem{LineItemID: "li-1", ProductID: "GB-RELAX", Quantity: intPtr(1)}),
			order("ord-2", model.LineItem{LineItemID: "li-1", ProductID: "GB-SNACK", Quantity: intPtr(2)}),
		}, nil)

		svc := NewWarehouseService(products, orders)
		items, err := svc.GeneratePickingList(ctx, "2024-07-07")

		require.NoError(t, err)
		// C-TEA appears in both boxes: 1x1 + 2x2 = 5. Name and location come
		// from its first occurrence.
		byID := make(map[string]model.PickingItem)
		for _, item := range items {
			byID[item.ComponentID] = item
		}
		require.Len(t, items, 3)
		assert.Equal(t, 2, byID["C-CANDLE"].Quantity)
		assert.Equal(t, 5, byID["C-TEA"].Quantity)
		assert.Equal(t, "B3", byID["C-TEA"].Location)
		assert.Equal(t, 6, byID["C-NUTS"].Quantity)
	})

	t.Run("aggregated totals do not depend on order sequence", func(t *testing.T) {
		fetch := func(orderedIDs []string) map[string]int {
			products := new(MockProductRepository)
			products.On("GetProductByID", mock.Anything, "GB-RELAX").Return(relaxBox, nil)
			products.On("GetProductByID", mock.Anything, "GB-SNACK").Return(snackBox, nil)

			var dayOrders []model.Order
			for i, id := range orderedIDs {
				dayOrders = append(dayOrders, order(
					string(rune('a'+i)),
					model.LineItem{LineItemID: "li-1", ProductID: id, Quantity: intPtr(1)},
				))
			}
			ordersRepo := new(MockOrderRepository)
			ordersRepo.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return(dayOrders, nil)

			svc := NewWarehouseService(products, ordersRepo)
			items, err := svc.GeneratePickingList(ctx, "2024-07-07")
			require.NoError(t, err)

			totals := make(map[string]int)
			for _, item := range items {
				totals[item.ComponentID] = item.Quantity
			}
			return totals
		}

		forward := fetch([]string{"GB-RELAX", "GB-SNACK"})
		reversed := fetch([]string{"GB-SNACK", "GB-RELAX"})
		assert.Equal(t, forward, reversed)
	})

	t.Run("absent line item quantity defaults to one", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("GetProductByID", mock.Anything, "GB-RELAX").Return(relaxBox, nil)
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return([]model.Order{
			order("ord-1", model.LineItem{LineItemID: "li-1", ProductID: "GB-RELAX"}),
		}, nil)

		svc := NewWarehouseService(products, orders)
		items, err := svc.GeneratePickingList(ctx, "2024-07-07")

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("unknown product aborts the run", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("GetProductByID", mock.Anything, "GB-RELAX").Return(relaxBox, nil)
		products.On("GetProductByID", mock.Anything, "GB-GONE").Return(nil, model.NewProductNotFoundError("GB-GONE"))
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return([]model.Order{
			order("ord-1", model.LineItem{LineItemID: "li-1", ProductID: "GB-RELAX", Quantity: intPtr(1)}),
			order("ord-2", model.LineItem{LineItemID: "li-1", ProductID: "GB-GONE", Quantity: intPtr(1)}),
		}, nil)

		svc := NewWarehouseService(products, orders)
		items, err := svc.GeneratePickingList(ctx, "2024-07-07")

		assert.Nil(t, items)
		var notFound *model.ProductNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "GB-GONE", notFound.ProductID)
	})

	t.Run("order store error propagates", func(t *testing.T) {
		products := new(MockProductRepository)
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").
			Return(nil, model.NewDataInvalidError("orders", "invalid JSON"))

		svc := NewWarehouseService(products, orders)
		_, err := svc.GeneratePickingList(ctx, "2024-07-07")

		var dataInvalid *model.DataInvalidError
		assert.ErrorAs(t, err, &dataInvalid)
	})
}

func TestWarehouseService_GeneratePackingList(t *testing.T) {
	ctx := context.Background()

	t.Run("no orders yields empty manifest list", func(t *testing.T) {
		products := new(MockProductRepository)
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return([]model.Order{}, nil)

		svc := NewWarehouseService(products, orders)
		manifests, err := svc.GeneratePackingList(ctx, "2024-07-07")

		require.NoError(t, err)
		assert.NotNil(t, manifests)
		assert.Empty(t, manifests)
		products.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})

	t.Run("one manifest per order, one entry per line item", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("GetProductByID", mock.Anything, "GB-RELAX").Return(relaxBox, nil)
		products.On("GetProductByID", mock.Anything, "GB-SNACK").Return(snackBox, nil)
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return([]model.Order{
			order("ord-1",
				model.LineItem{LineItemID: "li-1", ProductID: "GB-RELAX", Quantity: intPtr(2)},
				model.LineItem{LineItemID: "li-2", ProductID: "GB-SNACK", Quantity: intPtr(1)},
			),
		}, nil)

		svc := NewWarehouseService(products, orders)
		manifests, err := svc.GeneratePackingList(ctx, "2024-07-07")

		require.NoError(t, err)
		require.Len(t, manifests, 1)

		manifest := manifests[0]
		assert.Equal(t, "ord-1", manifest.OrderID)
		assert.Equal(t, "2024-07-07", manifest.OrderDate)
		assert.Equal(t, "Ana Janssen", manifest.CustomerName)
		assert.Equal(t, "12 Harbour St, Amsterdam", manifest.ShippingAddress)
		require.Len(t, manifest.Items, 2)

		// Component quantities are scaled by the line item quantity.
		assert.Equal(t, "Relaxation Gift Box", manifest.Items[0].GiftBoxName)
		assert.Equal(t, 4, manifest.Items[0].Components[0].Quantity)
		assert.Equal(t, 2, manifest.Items[0].Components[1].Quantity)

		assert.Equal(t, "Snack Gift Box", manifest.Items[1].GiftBoxName)
		assert.Equal(t, 3, manifest.Items[1].Components[0].Quantity)
	})

	t.Run("duplicate products stay as separate entries", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("GetProductByID", mock.Anything, "GB-RELAX").Return(relaxBox, nil)
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return([]model.Order{
			order("ord-1",
				model.LineItem{LineItemID: "li-1", ProductID: "GB-RELAX", Quantity: intPtr(1)},
				model.LineItem{LineItemID: "li-2", ProductID: "GB-RELAX", Quantity: intPtr(1)},
			),
		}, nil)

		svc := NewWarehouseService(products, orders)
		manifests, err := svc.GeneratePackingList(ctx, "2024-07-07")

		require.NoError(t, err)
		require.Len(t, manifests, 1)
		assert.Len(t, manifests[0].Items, 2)
	})

	t.Run("unknown product aborts the run", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("GetProductByID", mock.Anything, "GB-GONE").Return(nil, model.NewProductNotFoundError("GB-GONE"))
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return([]model.Order{
			order("ord-1", model.LineItem{LineItemID: "li-1", ProductID: "GB-GONE", Quantity: intPtr(1)}),
		}, nil)

		svc := NewWarehouseService(products, orders)
		manifests, err := svc.GeneratePackingList(ctx, "2024-07-07")

		assert.Nil(t, manifests)
		var notFound *model.ProductNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestWarehouseService_ReportCache(t *testing.T) {
	ctx := context.Background()

	t.Run("second run for a date is served from cache", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("GetProductByID", mock.Anything, "GB-RELAX").Return(relaxBox, nil)
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return([]model.Order{
			order("ord-1", model.LineItem{LineItemID: "li-1", ProductID: "GB-RELAX", Quantity: intPtr(1)}),
		}, nil).Once()

		svc := NewWarehouseService(products, orders, WithReportCache(10, time.Minute))

		first, err := svc.GeneratePickingList(ctx, "2024-07-07")
		require.NoError(t, err)
		second, err := svc.GeneratePickingList(ctx, "2024-07-07")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		orders.AssertNumberOfCalls(t, "GetOrdersByDate", 1)
	})

	t.Run("invalidation forces a fresh run", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("GetProductByID", mock.Anything, "GB-RELAX").Return(relaxBox, nil)
		orders := new(MockOrderRepository)
		orders.On("GetOrdersByDate", mock.Anything, "2024-07-07").Return([]model.Order{
			order("ord-1", model.LineItem{LineItemID: "li-1", ProductID: "GB-RELAX", Quantity: intPtr(1)}),
		}, nil)

		svc := NewWarehouseService(products, orders, WithReportCache(10, time.Minute))

		_, err := svc.GeneratePickingList(ctx, "2024-07-07")
		require.NoError(t, err)
		svc.InvalidateReports("2024-07-07")
		_, err = svc.GeneratePickingList(ctx, "2024-07-07")
		require.NoError(t, err)

		orders.AssertNumberOfCalls(t, "GetOrdersByDate", 2)
	})
}
