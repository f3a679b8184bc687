package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/example/luxe/internal/config"
	"github.com/example/luxe/internal/database"
	"github.com/example/luxe/internal/routes"
	"github.com/example/luxe/internal/store"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg.DatabaseURL, cfg.DatabaseName)
	defer database.Disconnect(db)

	app := fiber.New(fiber.Config{
		AppName: "Luxe Perfume Backend",
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))

	routes.Register(app, store.NewMongo(db), cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
