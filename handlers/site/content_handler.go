package site

import (
	"errors"

	"nishan.dev/configs/configslog"
	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"
	"nishan.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContentHandler serves the simple list pages: about, services,
// gallery, testimonials, certificates and FAQ.
type ContentHandler struct {
	aboutService   services.IAboutService
	contentService services.IContentService
}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{
		aboutService:   services.NewAboutService(),
		contentService: services.NewContentService(),
	}
}

// About renders the profile page. A missing active About record renders
// the page with empty fields rather than failing.
func (h *ContentHandler) About(c *fiber.Ctx) error {
	ctx := c.UserContext()

	about, err := h.aboutService.GetActiveAbout(ctx)
	if err != nil && !errors.Is(err, services.ErrAboutNotFound) {
		configslog.Log.Error("About: lookup failed", zap.Error(err))
	}
	certificates, err := h.contentService.ListCertificates(ctx, 0)
	if err != nil {
		configslog.Log.Error("About: certificates lookup failed", zap.Error(err))
	}
	skillGroups, err := h.contentService.SkillsByCategory(ctx)
	if err != nil {
		configslog.Log.Error("About: skills lookup failed", zap.Error(err))
	}

	return c.Render("portfolio/about", fiber.Map{
		"Title":        "About",
		"About":        about,
		"Certificates": certificates,
		"SkillGroups":  skillGroups,
	}, mainLayout)
}

func (h *ContentHandler) Services(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams(services.ServicesPerPage)
	}

	items, meta, err := h.contentService.ListServices(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Services: query failed", zap.Error(err))
		return renderError(c, "Services could not be loaded.")
	}

	return c.Render("portfolio/services", fiber.Map{
		"Title":      "Services",
		"Services":   items,
		"Pagination": meta,
	}, mainLayout)
}

func (h *ContentHandler) Gallery(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams(services.GalleryPerPage)
	}

	items, meta, err := h.contentService.ListGallery(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Gallery: query failed", zap.Error(err))
		return renderError(c, "Gallery could not be loaded.")
	}

	return c.Render("portfolio/gallery", fiber.Map{
		"Title":            "Gallery",
		"GalleryItems":     items,
		"Pagination":       meta,
		"Categories":       models.GalleryCategories,
		"CategoryLabels":   models.GalleryCategoryLabels,
		"SelectedCategory": params.Category,
	}, mainLayout)
}

func (h *ContentHandler) Testimonials(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams(services.TestimonialsPerPage)
	}

	items, meta, err := h.contentService.ListTestimonials(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Testimonials: query failed", zap.Error(err))
		return renderError(c, "Testimonials could not be loaded.")
	}

	return c.Render("portfolio/testimonials", fiber.Map{
		"Title":        "Testimonials",
		"Testimonials": items,
		"Pagination":   meta,
	}, mainLayout)
}

func (h *ContentHandler) Certificates(c *fiber.Ctx) error {
	certificates, err := h.contentService.ListCertificates(c.UserContext(), 0)
	if err != nil {
		configslog.Log.Error("Certificates: query failed", zap.Error(err))
		return renderError(c, "Certificates could not be loaded.")
	}

	return c.Render("portfolio/certificates", fiber.Map{
		"Title":        "Certificates",
		"Certificates": certificates,
	}, mainLayout)
}

func (h *ContentHandler) FAQ(c *fiber.Ctx) error {
	groups, err := h.contentService.FAQsByCategory(c.UserContext(), 0)
	if err != nil {
		configslog.Log.Error("FAQ: query failed", zap.Error(err))
		return renderError(c, "FAQs could not be loaded.")
	}

	return c.Render("portfolio/faq", fiber.Map{
		"Title":          "FAQ",
		"FAQGroups":      groups,
		"CategoryLabels": models.FAQCategoryLabels,
	}, mainLayout)
}
