package site

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"nishan.dev/configs/configslog"
	"nishan.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	pdfExportFilename = "projects_portfolio.pdf"
	csvExportFilename = "projects_portfolio.csv"
)

// DownloadHandler serves the resume download and the project exports.
type DownloadHandler struct {
	aboutService  services.IAboutService
	exportService services.IExportService
}

func NewDownloadHandler() *DownloadHandler {
	return &DownloadHandler{
		aboutService:  services.NewAboutService(),
		exportService: services.NewExportService(),
	}
}

// Resume streams the active profile's resume file as an attachment named
// after the owner. A missing profile, an empty path or an unreadable file
// all answer 404 with a plain-text body.
func (h *DownloadHandler) Resume(c *fiber.Ctx) error {
	about, err := h.aboutService.GetActiveAbout(c.UserContext())
	if err != nil {
		if !errors.Is(err, services.ErrAboutNotFound) {
			configslog.Log.Error("Resume: about lookup failed", zap.Error(err))
		}
		return resumeUnavailable(c)
	}
	if about.ResumePath == "" {
		return resumeUnavailable(c)
	}
	if _, err := os.Stat(about.ResumePath); err != nil {
		configslog.Log.Warn("Resume: file not readable",
			zap.String("path", about.ResumePath), zap.Error(err))
		return resumeUnavailable(c)
	}

	filename := fmt.Sprintf("%s_Resume.pdf", strings.ReplaceAll(about.FullName, " ", "_"))
	return c.Download(about.ResumePath, filename)
}

func resumeUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString("Resume not available")
}

// ExportProjectsPDF answers a generated PDF table of active projects.
func (h *DownloadHandler) ExportProjectsPDF(c *fiber.Ctx) error {
	data, err := h.exportService.ProjectsPDF(c.UserContext())
	if err != nil {
		configslog.Log.Error("ExportProjectsPDF: generation failed", zap.Error(err))
		return renderError(c, "The PDF export could not be generated.")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", pdfExportFilename))
	return c.Send(data)
}

// ExportProjectsCSV answers a CSV listing of active projects.
func (h *DownloadHandler) ExportProjectsCSV(c *fiber.Ctx) error {
	data, err := h.exportService.ProjectsCSV(c.UserContext())
	if err != nil {
		configslog.Log.Error("ExportProjectsCSV: generation failed", zap.Error(err))
		return renderError(c, "The CSV export could not be generated.")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", csvExportFilename))
	return c.Send(data)
}
