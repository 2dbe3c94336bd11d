package routes

import (
	"nishan.dev/handlers/site"

	"github.com/gofiber/fiber/v2"
)

// registerSiteRoutes wires the public server-rendered pages.
func registerSiteRoutes(app *fiber.App) {
	homeHandler := site.NewHomeHandler()
	contentHandler := site.NewContentHandler()
	projectHandler := site.NewProjectHandler()
	blogHandler := site.NewBlogHandler()
	contactHandler := site.NewContactHandler()
	downloadHandler := site.NewDownloadHandler()

	app.Get("/", homeCache(), homeHandler.Home)

	app.Get("/about", contentHandler.About)
	app.Get("/services", contentHandler.Services)
	app.Get("/gallery", contentHandler.Gallery)
	app.Get("/testimonials", contentHandler.Testimonials)
	app.Get("/certificates", contentHandler.Certificates)
	app.Get("/faq", contentHandler.FAQ)

	app.Get("/projects", projectHandler.ListProjects)
	app.Get("/projects/:id", projectHandler.ShowProject)

	app.Get("/blog", blogHandler.ListPosts)
	app.Get("/blog/:slug", blogHandler.ShowPost)

	app.Get("/contact", contactHandler.ShowForm)
	app.Post("/contact", contactHandler.Submit)

	app.Get("/download/resume", downloadHandler.Resume)
	app.Get("/export/projects/pdf", downloadHandler.ExportProjectsPDF)
	app.Get("/export/projects/csv", downloadHandler.ExportProjectsCSV)
}
