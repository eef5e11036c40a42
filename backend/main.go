package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"mylegs/backend/config"
	"mylegs/backend/middleware"
	"mylegs/backend/models"
	"mylegs/backend/routes"
	"mylegs/backend/session"
	"mylegs/backend/store"
	"mylegs/backend/tutor"
	"mylegs/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize persistence
	kv, err := store.OpenKV(cfg)
	if err != nil {
		log.Fatalf("Error opening storage: %v", err)
	}
	defer kv.Close()

	ctx := context.Background()
	directory := store.NewDirectory(store.SeedUsers())
	tiers := store.NewTierRegistry(store.SeedTiers())
	catalog := store.NewCatalog(store.SeedCatalog())
	if cfg.TutorModel != "" {
		// Environment override for the seeded model; admins can still
		// change it at runtime from the chatbot page.
		catalog.UpdateChatbotConfig(models.ChatbotPatch{Model: &cfg.TutorModel})
	}
	binder := store.NewBinder(ctx, kv)
	progress := store.NewProgress(ctx, kv)
	activities := store.NewActivityLog()
	sessions := session.NewManager(directory, tiers)
	tutorClient := tutor.NewClient(cfg.TutorBaseURL, cfg.TutorAPIKey)

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, routes.Dependencies{
		Config:     cfg,
		Sessions:   sessions,
		Directory:  directory,
		Tiers:      tiers,
		Catalog:    catalog,
		Binder:     binder,
		Progress:   progress,
		Activities: activities,
		Tutor:      tutorClient,
	})

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
