package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/warehouse-service/internal/domain/model"
	"github.com/guttosm/warehouse-service/internal/i18n"
	"github.com/guttosm/warehouse-service/internal/service"
)

// ProductsHandler provides HTTP handlers for the product catalog routes.
type ProductsHandler struct {
	productService service.ProductService
}

// NewProductsHandler creates a new ProductsHandler instance.
func NewProductsHandler(productService service.ProductService) *ProductsHandler {
	return &ProductsHandler{productService: productService}
}

// ListProducts handles GET /api/products requests.
//
// @Summary      List catalog products
// @Description  Returns every product in the catalog with its bill of materials.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Product catalog"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products [get]
func (h *ProductsHandler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(products)
}

// GetProduct handles GET /api/products/:id requests.
//
// @Summary      Get a product
// @Description  Returns a single catalog product by its id.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product id"
// @Success      200 {object} dto.SuccessResponse "Catalog product"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown product id"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/{id} [get]
func (h *ProductsHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		var notFound *model.ProductNotFoundError
		if errors.As(err, &notFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(product)
}
