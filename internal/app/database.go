// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/warehouse-service/config"
	"github.com/guttosm/warehouse-service/internal/circuitbreaker"
	"github.com/guttosm/warehouse-service/internal/domain/model"
	"github.com/guttosm/warehouse-service/internal/repository"
	"github.com/guttosm/warehouse-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	ProductsRepo           repository.ProductRepositoryInterface
	OrdersRepo             repository.OrderRepositoryInterface
	LoggingService         service.LoggingService
	ProductsCircuitBreaker *circuitbreaker.CircuitBreaker
	OrdersCircuitBreaker   *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails; the service then
// runs on the JSON file stores alone.
func InitializeDatabase(cfg config.DatabaseConfig, dataCfg config.DataConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with JSON stores")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	productsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-products",
	})

	ordersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-orders",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	productsRepo := repository.NewMongoProductRepository(db)
	productsRepoWithCB := repository.NewProductRepositoryWithCircuitBreaker(productsRepo, productsCB)

	ordersRepo := repository.NewMongoOrderRepository(db)
	ordersRepoWithCB := repository.NewOrderRepositoryWithCircuitBreaker(ordersRepo, ordersCB)

	// Seed the products collection from the JSON catalog when empty
	if err := seedCatalogFromFile(productsRepo, dataCfg); err != nil {
		log.Warn().Err(err).Msg("Failed to seed product catalog")
	}

	return &DatabaseComponents{
		ProductsRepo:           productsRepoWithCB,
		OrdersRepo:             ordersRepoWithCB,
		LoggingService:         loggingService,
		ProductsCircuitBreaker: productsCB,
		OrdersCircuitBreaker:   ordersCB,
		LogsCircuitBreaker:     logsCB,
	}
}

// catalogSeeder is the slice of the Mongo product repository the seeding
// step needs.
type catalogSeeder interface {
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	Seed(ctx context.Context, products []model.Product) error
}

// seedCatalogFromFile copies the JSON catalog into the products collection
// when the collection holds no documents yet.
func seedCatalogFromFile(repo catalogSeeder, dataCfg config.DataConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := repo.GetAllProducts(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	fileRepo, err := repository.NewJSONProductRepository(dataCfg.ProductsPath)
	if err != nil {
		return err
	}
	products, err := fileRepo.GetAllProducts(ctx)
	if err != nil {
		return err
	}

	if err := repo.Seed(ctx, products); err != nil {
		return err
	}
	log.Info().Int("products", len(products)).Msg("Seeded product catalog from JSON file")
	return nil
}
