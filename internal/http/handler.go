package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/warehouse-service/internal/i18n"
	"github.com/guttosm/warehouse-service/internal/service"
)

// Handler provides HTTP handlers for the warehouse report routes.
type Handler struct {
	warehouse service.WarehouseService
}

// NewHandler creates a new Handler instance.
func NewHandler(warehouse service.WarehouseService) *Handler {
	return &Handler{warehouse: warehouse}
}

// requireDateParam extracts the mandatory date query parameter. A missing
// value aborts the request with 400; the value itself is not validated so
// unknown dates simply yield an empty report.
func requireDateParam(c *gin.Context) (string, bool) {
	date := c.Query("date")
	if date == "" {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyMissingDateParam, nil)
		return "", false
	}
	return date, true
}

// GetPickingList handles GET /api/warehouse/picking-list requests.
//
// @Summary      Get picking list for a date
// @Description  Aggregates the component quantities the warehouse staff must pick to fulfill every order placed on the given date. Components are summed across orders and returned in first-encounter order. Responds with a bare JSON array for UI compatibility.
// @Tags         Warehouse
// @Accept       json
// @Produce      json
// @Param        date query string true "Order date (YYYY-MM-DD)"
// @Success      200 {array} model.PickingItem "Aggregated picking list"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing date parameter"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error - unknown product or corrupt store"
// @Router       /api/warehouse/picking-list [get]
func (h *Handler) GetPickingList(c *gin.Context) {
	date, ok := requireDateParam(c)
	if !ok {
		return
	}

	items, err := h.warehouse.GeneratePickingList(c.Request.Context(), date)
	if err != nil {
		NewResponseBuilder(c).ErrorWithMessage(http.StatusInternalServerError, err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetPackingList handles GET /api/warehouse/packing-list requests.
//
// @Summary      Get packing list for a date
// @Description  Builds the per-order shipment manifests for the given date. Each order lists one entry per line item with the gift box name and the component quantities scaled by the quantity ordered. Responds with a bare JSON array for UI compatibility.
// @Tags         Warehouse
// @Accept       json
// @Produce      json
// @Param        date query string true "Order date (YYYY-MM-DD)"
// @Success      200 {array} model.PackingOrder "Per-order packing manifests"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing date parameter"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error - unknown product or corrupt store"
// @Router       /api/warehouse/packing-list [get]
func (h *Handler) GetPackingList(c *gin.Context) {
	date, ok := requireDateParam(c)
	if !ok {
		return
	}

	orders, err := h.warehouse.GeneratePackingList(c.Request.Context(), date)
	if err != nil {
		NewResponseBuilder(c).ErrorWithMessage(http.StatusInternalServerError, err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
