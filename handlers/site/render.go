package site

import (
	"github.com/gofiber/fiber/v2"
)

const mainLayout = "layouts/main"

// renderNotFound renders the standard 404 page.
func renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Not Found",
		"Message": message,
	}, mainLayout)
}

// renderError renders the standard 500 page.
func renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Server Error",
		"Message": message,
	}, mainLayout)
}

// isAjax reports whether the request came from a script rather than a
// plain form post.
func isAjax(c *fiber.Ctx) bool {
	return c.Get("X-Requested-With") == "XMLHttpRequest"
}
