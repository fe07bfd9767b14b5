package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/warehouse-service/internal/domain/dto"
	"github.com/guttosm/warehouse-service/internal/domain/model"
	"github.com/guttosm/warehouse-service/internal/i18n"
	"github.com/guttosm/warehouse-service/internal/middleware"
	"github.com/guttosm/warehouse-service/internal/service"
)

// OrdersHandler provides HTTP handlers for the order intake routes.
type OrdersHandler struct {
	orderService service.OrderService
}

// NewOrdersHandler creates a new OrdersHandler instance.
func NewOrdersHandler(orderService service.OrderService) *OrdersHandler {
	return &OrdersHandler{orderService: orderService}
}

// SaveOrder handles POST /api/orders requests.
//
// @Summary      Submit an order
// @Description  Validates and stores a new order. The payload must carry a valid order date, a positive total matching the sum of its line items, and at least one line item with known product references. An order id is generated when the payload carries none. Supports idempotency via Idempotency-Key header.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.SaveOrderRequest true "Order payload"
// @Success      201 {object} dto.SuccessResponse "Order stored"
// @Failure      400 {object} dto.ErrorResponse "Bad request - payload failed validation"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/orders [post]
func (h *OrdersHandler) SaveOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.orderService.SaveOrder(c.Request.Context(), req)
	if err != nil {
		h.writeOrderError(c, builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "save_order", "Order submitted", map[string]interface{}{
				"order_id":   order.OrderID,
				"order_date": order.OrderDate,
				"line_items": len(order.LineItems),
			})
		}
	}

	builder.SuccessCreated(order)
}

// GetOrder handles GET /api/orders/:id requests.
//
// @Summary      Get an order
// @Description  Returns a stored order by its id.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order id"
// @Success      200 {object} dto.SuccessResponse "Stored order"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown order id"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/orders/{id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.orderService.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeOrderError(c, builder, err)
		return
	}

	builder.SuccessOK(order)
}

// UpdateOrder handles PUT /api/orders/:id requests.
//
// @Summary      Replace an order
// @Description  Validates the payload and replaces an existing order. The id in the path wins over any id in the body. Supports idempotency via Idempotency-Key header.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        id path string true "Order id"
// @Param        request body dto.SaveOrderRequest true "Order payload"
// @Success      200 {object} dto.SuccessResponse "Updated order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - payload failed validation"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown order id"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/orders/{id} [put]
func (h *OrdersHandler) UpdateOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)
	orderID := c.Param("id")

	var req dto.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), orderID, req)
	if err != nil {
		h.writeOrderError(c, builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_order", "Order replaced", map[string]interface{}{
				"order_id":   order.OrderID,
				"order_date": order.OrderDate,
			})
		}
	}

	builder.SuccessOK(order)
}

// writeOrderError maps order service failures onto HTTP responses.
func (h *OrdersHandler) writeOrderError(c *gin.Context, builder *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		return
	}

	var notFound *model.OrderNotFoundError
	if errors.As(err, &notFound) {
		builder.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, err)
		return
	}

	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}
