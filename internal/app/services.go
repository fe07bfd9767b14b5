// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/guttosm/warehouse-service/config"
	"github.com/guttosm/warehouse-service/internal/repository"
	"github.com/guttosm/warehouse-service/internal/service"
)

// ServiceComponents holds the warehouse business services.
type ServiceComponents struct {
	Warehouse service.WarehouseService
	Orders    service.OrderService
	Products  service.ProductService
}

// InitializeServices builds the domain services on top of the configured
// stores. When dbComponents is nil the JSON file stores back everything;
// a malformed or empty catalog is a startup failure.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) (*ServiceComponents, error) {
	var (
		productsRepo repository.ProductRepositoryInterface
		ordersRepo   repository.OrderRepositoryInterface
	)

	if dbComponents != nil {
		productsRepo = dbComponents.ProductsRepo
		ordersRepo = dbComponents.OrdersRepo
	} else {
		var opts []repository.JSONProductOption
		if cfg.Data.ReloadPerCall {
			opts = append(opts, repository.WithCatalogReloadPerCall())
		}

		jsonProducts, err := repository.NewJSONProductRepository(cfg.Data.ProductsPath, opts...)
		if err != nil {
			return nil, fmt.Errorf("load product catalog: %w", err)
		}
		jsonOrders, err := repository.NewJSONOrderRepository(cfg.Data.OrdersPath)
		if err != nil {
			return nil, fmt.Errorf("open order store: %w", err)
		}

		productsRepo = jsonProducts
		ordersRepo = jsonOrders
	}

	var warehouseOpts []service.WarehouseOption
	if cfg.Cache.Size > 0 {
		warehouseOpts = append(warehouseOpts, service.WithReportCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	warehouseService := service.NewWarehouseService(productsRepo, ordersRepo, warehouseOpts...)
	orderService := service.NewOrderService(ordersRepo, warehouseService)
	productService := service.NewProductService(productsRepo)

	return &ServiceComponents{
		Warehouse: warehouseService,
		Orders:    orderService,
		Products:  productService,
	}, nil
}
