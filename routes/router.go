package routes

import (
	"errors"
	"time"

	"nishan.dev/configs/configslog"
	"nishan.dev/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// homeCacheExpiration controls how long the landing page response is
// served from cache before it is rebuilt.
const homeCacheExpiration = 15 * time.Minute

// SetupRoutes wires the global middleware and every route group.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(injectSiteContext())

	registerSiteRoutes(app)
	registerAPIRoutes(app)

	// Catches everything no route matched.
	app.Use(notFoundHandler)
}

// injectSiteContext loads the active profile into locals so the layout
// can render the owner's name and social links on every page.
func injectSiteContext() fiber.Handler {
	aboutService := services.NewAboutService()
	return func(c *fiber.Ctx) error {
		about, err := aboutService.GetActiveAbout(c.UserContext())
		if err != nil {
			if !errors.Is(err, services.ErrAboutNotFound) {
				configslog.Log.Error("injectSiteContext: about lookup failed", zap.Error(err))
			}
			return c.Next()
		}
		c.Locals("SiteOwner", about)
		return c.Next()
	}
}

// homeCache caches the landing page for homeCacheExpiration. Only GET
// responses are cached; everything else passes through.
func homeCache() fiber.Handler {
	return cache.New(cache.Config{
		Expiration: homeCacheExpiration,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodGet
		},
	})
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title": "Page Not Found",
		}, "layouts/main")
	}
}
