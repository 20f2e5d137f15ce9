package main

import (
	"log"

	"studentportal/backend/config"
	"studentportal/backend/middleware"
	"studentportal/backend/routes"
	"studentportal/backend/sheets"
	"studentportal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Pick the sheet data source (Sheets API or local workbook)
	src := sheets.NewSource(cfg)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, src, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
