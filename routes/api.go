package routes

import (
	"nishan.dev/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes wires the JSON endpoints under /api.
func registerAPIRoutes(app *fiber.App) {
	projectAPIHandler := api.NewProjectAPIHandler()

	group := app.Group("/api")
	group.Get("/projects", projectAPIHandler.ListProjects)
}
