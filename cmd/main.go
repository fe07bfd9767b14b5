// Package main is the entry point for the warehouse-service application.
//
// @title           Warehouse Service API
// @version         1.0.0
// @description     API for warehouse order fulfillment: picking lists, packing
//
//	lists, and order management for gift box products.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/warehouse-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Warehouse
// @tag.description Picking and packing list reports
//
// @tag.name        Orders
// @tag.description Order management operations
//
// @tag.name        Products
// @tag.description Product catalog operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/warehouse-service/docs" // swagger docs

	"github.com/guttosm/warehouse-service/config"
	"github.com/guttosm/warehouse-service/internal/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	cfg := config.Load()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
