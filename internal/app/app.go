// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/warehouse-service/config"
	"github.com/guttosm/warehouse-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and services).
	// Returns nil when MongoDB is disabled; the JSON stores take over.
	dbComponents := InitializeDatabase(cfg.Database, cfg.Data)

	// Initialize business services on top of the selected stores
	serviceComponents, err := InitializeServices(cfg, dbComponents)
	if err != nil {
		return nil, err
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config), nil
}
