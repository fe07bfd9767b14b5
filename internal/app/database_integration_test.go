//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/warehouse-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		productsPath, ordersPath := writeTestStores(t)
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg, config.DataConfig{
			ProductsPath: productsPath,
			OrdersPath:   ordersPath,
		})

		require.NotNil(t, components)
		assert.NotNil(t, components.ProductsRepo)
		assert.NotNil(t, components.OrdersRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.ProductsCircuitBreaker)
		assert.NotNil(t, components.OrdersCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
	})

	t.Run("initialize with disabled database", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{
			Enabled: false,
		}

		components := InitializeDatabase(cfg, config.DataConfig{})
		assert.Nil(t, components)
	})

	t.Run("seeds catalog into empty products collection", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		productsPath, ordersPath := writeTestStores(t)
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg, config.DataConfig{
			ProductsPath: productsPath,
			OrdersPath:   ordersPath,
		})
		require.NotNil(t, components)

		products, err := components.ProductsRepo.GetAllProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "GB-RELAX", products[0].ProductID)

		// A second initialization against the same database must not
		// duplicate the catalog.
		again := InitializeDatabase(cfg, config.DataConfig{
			ProductsPath: productsPath,
			OrdersPath:   ordersPath,
		})
		require.NotNil(t, again)

		products, err = again.ProductsRepo.GetAllProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("circuit breaker integration", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		productsPath, ordersPath := writeTestStores(t)
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 2,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          100 * time.Millisecond,
		}

		components := InitializeDatabase(cfg, config.DataConfig{
			ProductsPath: productsPath,
			OrdersPath:   ordersPath,
		})
		require.NotNil(t, components)

		// Verify circuit breakers are initialized
		stats := components.ProductsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)

		logsStats := components.LogsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", logsStats.State)
		assert.True(t, logsStats.IsHealthy)
	})
}
