package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/luxe/internal/config"
	"github.com/example/luxe/internal/handlers"
	"github.com/example/luxe/internal/services"
	"github.com/example/luxe/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, st store.Store, cfg *config.Config) {
	catalogService := services.NewCatalogService(st)
	reviewService := services.NewReviewService(st)
	quizService := services.NewQuizService(st)
	userService := services.NewUserService(st)
	seedService := services.NewSeedService(st)

	healthHandler := handlers.NewHealthHandler(st, cfg)
	fragranceHandler := handlers.NewFragranceHandler(catalogService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	quizHandler := handlers.NewQuizHandler(quizService)
	userHandler := handlers.NewUserHandler(userService)
	seedHandler := handlers.NewSeedHandler(seedService)

	app.Get("/", healthHandler.Root)
	app.Get("/test", healthHandler.Test)

	api := app.Group("/api")

	fragrances := api.Group("/fragrances")
	fragrances.Post("/", fragranceHandler.Create)
	fragrances.Get("/", fragranceHandler.List)
	fragrances.Get("/:id", fragranceHandler.Get)
	fragrances.Get("/:id/similar", fragranceHandler.Similar)

	api.Post("/reviews", reviewHandler.Add)
	api.Get("/reviews/:fragrance_id", reviewHandler.ListByFragrance)

	api.Post("/quiz/recommendations", quizHandler.Recommend)

	api.Post("/users", userHandler.Upsert)
	api.Post("/favorites/:email/:fragrance_id", userHandler.ToggleFavorite)
	api.Get("/favorites/:email", userHandler.Favorites)

	api.Get("/search", fragranceHandler.Search)
	api.Post("/seed", seedHandler.Seed)
}
