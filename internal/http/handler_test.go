package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/warehouse-service/internal/domain/model"
	"github.com/guttosm/warehouse-service/internal/mocks"
	"github.com/guttosm/warehouse-service/internal/repository"
	"github.com/guttosm/warehouse-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testCatalog = `{
	"products": [
		{
			"product_id": "GB-RELAX",
			"product_name": "Relaxation Gift Box",
			"price": 49.90,
			"components": [
				{"component_id": "C-CANDLE", "name": "Scented candle", "quantity": 2, "location": "A1"},
				{"component_id": "C-TEA", "name": "Herbal tea", "quantity": 1, "location": "B3"}
			]
		},
		{
			"product_id": "GB-SNACK",
			"product_name": "Snack Gift Box",
			"price": 29.90,
			"components": [
				{"component_id": "C-NUTS", "name": "Mixed nuts", "quantity": 3, "location": "C2"},
				{"component_id": "C-TEA", "name": "Herbal tea", "quantity": 1, "location": "B3"}
			]
		}
	]
}`

const testOrders = `{
	"orders": [
		{
			"order_id": "ord-1001",
			"order_total": 49.90,
			"order_date": "2024-07-07",
			"shipping_address": "12 Harbour St, Amsterdam",
			"customer_name": "Ana Janssen",
			"customer_email": "ana@example.com",
			"line_items": [
				{"line_item_id": "li-001", "product_id": "GB-RELAX", "product_name": "Relaxation Gift Box", "price": 49.90, "quantity": 1}
			]
		},
		{
			"order_id": "ord-1002",
			"order_total": 59.80,
			"order_date": "2024-07-07",
			"shipping_address": "8 Canal Rd, Utrecht",
			"customer_name": "Tom de Vries",
			"customer_email": "tom@example.com",
			"line_items": [
				{"line_item_id": "li-001", "product_id": "GB-SNACK", "product_name": "Snack Gift Box", "price": 29.90, "quantity": 2}
			]
		}
	]
}`

// setupRouter wires the full stack on top of temp JSON stores.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dir := t.TempDir()
	productsPath := filepath.Join(dir, "products.json")
	ordersPath := filepath.Join(dir, "orders.json")
	require.NoError(t, os.WriteFile(productsPath, []byte(testCatalog), 0o600))
	require.NoError(t, os.WriteFile(ordersPath, []byte(testOrders), 0o600))

	products, err := repository.NewJSONProductRepository(productsPath)
	require.NoError(t, err)
	orders, err := repository.NewJSONOrderRepository(ordersPath)
	require.NoError(t, err)

	warehouseService := service.NewWarehouseService(products, orders)
	orderService := service.NewOrderService(orders, warehouseService)
	productService := service.NewProductService(products)

	cfg := DefaultRouterConfig()
	cfg.WarehouseService = warehouseService
	cfg.OrderService = orderService
	cfg.ProductService = productService

	handler := NewHandler(warehouseService)
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, cfg)
}

func setupRouterWithMock() (*gin.Engine, *mocks.MockWarehouseService) {
	mockWarehouse := new(mocks.MockWarehouseService)
	handler := NewHandler(mockWarehouse)
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig()), mockWarehouse
}

func TestGetPickingList(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "aggregates components across orders",
			url:            "/api/warehouse/picking-list?date=2024-07-07",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var items []model.PickingItem
				err := json.Unmarshal(w.Body.Bytes(), &items)
				assert.NoError(t, err)
				assert.Equal(t, []model.PickingItem{
					{ComponentID: "C-CANDLE", Name: "Scented candle", Quantity: 2, Location: "A1"},
					{ComponentID: "C-TEA", Name: "Herbal tea", Quantity: 3, Location: "B3"},
					{ComponentID: "C-NUTS", Name: "Mixed nuts", Quantity: 6, Location: "C2"},
				}, items)
			},
		},
		{
			name:           "date without orders returns empty array",
			url:            "/api/warehouse/picking-list?date=2030-01-01",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "[]", w.Body.String())
			},
		},
		{
			name:           "missing date parameter",
			url:            "/api/warehouse/picking-list",
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "date query parameter is required")
			},
		},
		{
			name:           "malformed date is treated as unknown date",
			url:            "/api/warehouse/picking-list?date=07/07/2024",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "[]", w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestGetPackingList(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "per-order manifests with scaled components",
			url:            "/api/warehouse/packing-list?date=2024-07-07",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var orders []model.PackingOrder
				err := json.Unmarshal(w.Body.Bytes(), &orders)
				assert.NoError(t, err)
				require.Len(t, orders, 2)

				assert.Equal(t, "ord-1001", orders[0].OrderID)
				assert.Equal(t, "Ana Janssen", orders[0].CustomerName)
				require.Len(t, orders[0].Items, 1)
				assert.Equal(t, "Relaxation Gift Box", orders[0].Items[0].GiftBoxName)

				// ord-1002 has quantity 2, so component quantities double
				require.Len(t, orders[1].Items, 1)
				assert.Equal(t, []model.Component{
					{ComponentID: "C-NUTS", Name: "Mixed nuts", Quantity: 6, Location: "C2"},
					{ComponentID: "C-TEA", Name: "Herbal tea", Quantity: 2, Location: "B3"},
				}, orders[1].Items[0].Components)
			},
		},
		{
			name:           "missing date parameter",
			url:            "/api/warehouse/packing-list",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "date without orders returns empty array",
			url:            "/api/warehouse/packing-list?date=2030-01-01",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "[]", w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestGetPickingList_UnknownProduct(t *testing.T) {
	dir := t.TempDir()
	productsPath := filepath.Join(dir, "products.json")
	ordersPath := filepath.Join(dir, "orders.json")
	require.NoError(t, os.WriteFile(productsPath, []byte(testCatalog), 0o600))

	// Order references a product missing from the catalog
	orphanOrders := `{
		"orders": [
			{
				"order_id": "ord-2001",
				"order_total": 19.90,
				"order_date": "2024-07-08",
				"shipping_address": "1 Main St",
				"customer_name": "Eva Smit",
				"customer_email": "eva@example.com",
				"line_items": [
					{"line_item_id": "li-001", "product_id": "GB-GONE", "product_name": "Discontinued Box", "price": 19.90}
				]
			}
		]
	}`
	require.NoError(t, os.WriteFile(ordersPath, []byte(orphanOrders), 0o600))

	products, err := repository.NewJSONProductRepository(productsPath)
	require.NoError(t, err)
	orders, err := repository.NewJSONOrderRepository(ordersPath)
	require.NoError(t, err)

	warehouseService := service.NewWarehouseService(products, orders)
	handler := NewHandler(warehouseService)
	router := NewRouter(handler, NewHealthHandler(), DefaultRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/warehouse/picking-list?date=2024-07-08", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "GB-GONE")
}

func TestGetPickingList_WithMock(t *testing.T) {
	router, mockWarehouse := setupRouterWithMock()

	expected := []model.PickingItem{
		{ComponentID: "C-CANDLE", Name: "Scented candle", Quantity: 4, Location: "A1"},
	}
	mockWarehouse.On("GeneratePickingList", mock.Anything, "2024-07-07").Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/warehouse/picking-list?date=2024-07-07", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var items []model.PickingItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Equal(t, expected, items)
	mockWarehouse.AssertExpectations(t)
}

func TestHealthEndpoints(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "liveness probe",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
		{
			name:           "readiness probe",
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func BenchmarkPickingList(b *testing.B) {
	dir := b.TempDir()
	productsPath := filepath.Join(dir, "products.json")
	ordersPath := filepath.Join(dir, "orders.json")
	if err := os.WriteFile(productsPath, []byte(testCatalog), 0o600); err != nil {
		b.Fatal(err)
	}
	if err := os.WriteFile(ordersPath, []byte(testOrders), 0o600); err != nil {
		b.Fatal(err)
	}

	products, err := repository.NewJSONProductRepository(productsPath)
	if err != nil {
		b.Fatal(err)
	}
	orders, err := repository.NewJSONOrderRepository(ordersPath)
	if err != nil {
		b.Fatal(err)
	}

	warehouseService := service.NewWarehouseService(products, orders)
	router := NewRouter(NewHandler(warehouseService), NewHealthHandler(), DefaultRouterConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/warehouse/picking-list?date=2024-07-07", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}
