package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/warehouse-service/internal/domain/dto"
	"github.com/guttosm/warehouse-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(router *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSaveOrder(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "valid order assigned an id",
			body: `{
				"order_total": 99.80,
				"order_date": "2024-07-09",
				"shipping_address": "3 Dam Sq, Amsterdam",
				"customer_name": "Lisa Bakker",
				"customer_email": "lisa@example.com",
				"line_items": [
					{"line_item_id": "li-001", "product_id": "GB-RELAX", "product_name": "Relaxation Gift Box", "price": 49.90, "quantity": 2}
				]
			}`,
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.RequestID)

				dataBytes, _ := json.Marshal(resp.Data)
				var order model.Order
				require.NoError(t, json.Unmarshal(dataBytes, &order))
				assert.NotEmpty(t, order.OrderID)
				assert.Equal(t, "2024-07-09", order.OrderDate)
			},
		},
		{
			name: "client supplied id is kept",
			body: `{
				"order_id": "ord-5000",
				"order_total": 29.90,
				"order_date": "2024-07-09",
				"shipping_address": "3 Dam Sq, Amsterdam",
				"customer_name": "Lisa Bakker",
				"customer_email": "lisa@example.com",
				"line_items": [
					{"line_item_id": "li-001", "product_id": "GB-SNACK", "product_name": "Snack Gift Box", "price": 29.90}
				]
			}`,
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "ord-5000")
			},
		},
		{
			name:           "invalid JSON",
			body:           `not-json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "total does not match line items",
			body: `{
				"order_total": 10.00,
				"order_date": "2024-07-09",
				"shipping_address": "3 Dam Sq, Amsterdam",
				"customer_name": "Lisa Bakker",
				"customer_email": "lisa@example.com",
				"line_items": [
					{"line_item_id": "li-001", "product_id": "GB-RELAX", "product_name": "Relaxation Gift Box", "price": 49.90}
				]
			}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "order_total")
			},
		},
		{
			name: "invalid calendar date",
			body: `{
				"order_total": 49.90,
				"order_date": "2024-02-31",
				"shipping_address": "3 Dam Sq, Amsterdam",
				"customer_name": "Lisa Bakker",
				"customer_email": "lisa@example.com",
				"line_items": [
					{"line_item_id": "li-001", "product_id": "GB-RELAX", "product_name": "Relaxation Gift Box", "price": 49.90}
				]
			}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "order_date")
			},
		},
		{
			name: "empty line items",
			body: `{
				"order_total": 49.90,
				"order_date": "2024-07-09",
				"shipping_address": "3 Dam Sq, Amsterdam",
				"customer_name": "Lisa Bakker",
				"customer_email": "lisa@example.com",
				"line_items": []
			}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t)

			w := postJSON(router, http.MethodPost, "/api/orders", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestSaveOrder_VisibleInReports(t *testing.T) {
	router := setupRouter(t)

	body := `{
		"order_total": 49.90,
		"order_date": "2024-08-01",
		"shipping_address": "3 Dam Sq, Amsterdam",
		"customer_name": "Lisa Bakker",
		"customer_email": "lisa@example.com",
		"line_items": [
			{"line_item_id": "li-001", "product_id": "GB-RELAX", "product_name": "Relaxation Gift Box", "price": 49.90}
		]
	}`
	w := postJSON(router, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)

	// The new order's components show up in the picking list for its date
	req := httptest.NewRequest(http.MethodGet, "/api/warehouse/picking-list?date=2024-08-01", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var items []model.PickingItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Equal(t, []model.PickingItem{
		{ComponentID: "C-CANDLE", Name: "Scented candle", Quantity: 2, Location: "A1"},
		{ComponentID: "C-TEA", Name: "Herbal tea", Quantity: 1, Location: "B3"},
	}, items)
}

func TestGetOrder(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "existing order",
			url:            "/api/orders/ord-1001",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "Ana Janssen")
			},
		},
		{
			name:           "unknown order",
			url:            "/api/orders/ord-9999",
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "Order not found")
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

func TestUpdateOrder(t *testing.T) {
	validBody := `{
		"order_total": 29.90,
		"order_date": "2024-07-07",
		"shipping_address": "9 New St, Rotterdam",
		"customer_name": "Ana Janssen",
		"customer_email": "ana@example.com",
		"line_items": [
			{"line_item_id": "li-001", "product_id": "GB-SNACK", "product_name": "Snack Gift Box", "price": 29.90}
		]
	}`

	tests := []struct {
		name           string
		url            string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "replace existing order",
			url:            "/api/orders/ord-1001",
			body:           validBody,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "9 New St, Rotterdam")
				// Path id wins over any id in the body
				assert.Contains(t, w.Body.String(), "ord-1001")
			},
		},
		{
			name:           "unknown order",
			url:            "/api/orders/ord-9999",
			body:           validBody,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid payload",
			url:            "/api/orders/ord-1001",
			body:           `{"order_date": "not-a-date", "order_total": 1, "shipping_address": "x", "customer_name": "y", "customer_email": "z", "line_items": [{"line_item_id": "a", "product_id": "b", "product_name": "c", "price": 1}]}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t)

			w := postJSON(router, http.MethodPut, tt.url, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
