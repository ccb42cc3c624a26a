package internal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	apphttp "clarityboard/internal/http"
)

// NewRouter builds the fiber app and mounts all dashboard routes. The
// dashboard is read-only, so every data endpoint is a GET; refresh is the
// single state-changing operation and only swaps the in-memory snapshot.
func NewRouter(app *Application) *fiber.App {
	server := fiber.New(fiber.Config{
		AppName:               app.Config.AppName,
		DisableStartupMessage: !app.Config.IsDevelopment(),
	})

	server.Use(recover.New())
	server.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handler := apphttp.NewHandler(app, app.Logger)

	server.Get("/health", handler.Health)

	api := server.Group("/api/v1")
	api.Get("/overview", handler.Overview)
	api.Get("/insights", handler.Insights)
	api.Get("/filters", handler.Filters)
	api.Post("/refresh", handler.Refresh)

	return server
}
