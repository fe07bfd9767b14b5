package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/warehouse-service/internal/service"
)

// WarehouseRoutes handles warehouse, order and product route registration.
type WarehouseRoutes struct {
	handler         *Handler
	ordersHandler   *OrdersHandler
	productsHandler *ProductsHandler
}

// NewWarehouseRoutes creates a new WarehouseRoutes instance. The orders and
// products handlers are optional; routes for a nil service are not registered.
func NewWarehouseRoutes(warehouseService service.WarehouseService, orderService service.OrderService, productService service.ProductService) *WarehouseRoutes {
	r := &WarehouseRoutes{
		handler: NewHandler(warehouseService),
	}

	if orderService != nil {
		r.ordersHandler = NewOrdersHandler(orderService)
	}
	if productService != nil {
		r.productsHandler = NewProductsHandler(productService)
	}

	return r
}

// RegisterPublicRoutes registers the warehouse API routes.
func (r *WarehouseRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	warehouse := rg.Group("/warehouse")
	{
		warehouse.GET("/picking-list", r.handler.GetPickingList)
		warehouse.GET("/packing-list", r.handler.GetPackingList)
	}

	if r.ordersHandler != nil {
		orders := rg.Group("/orders")
		{
			orders.POST("", r.ordersHandler.SaveOrder)
			orders.GET("/:id", r.ordersHandler.GetOrder)
			orders.PUT("/:id", r.ordersHandler.UpdateOrder)
		}
	}

	if r.productsHandler != nil {
		products := rg.Group("/products")
		{
			products.GET("", r.productsHandler.ListProducts)
			products.GET("/:id", r.productsHandler.GetProduct)
		}
	}
}

// GetHandler returns the underlying warehouse handler.
func (r *WarehouseRoutes) GetHandler() *Handler {
	return r.handler
}
