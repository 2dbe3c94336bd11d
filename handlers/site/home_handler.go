package site

import (
	"errors"

	"nishan.dev/configs/configslog"
	"nishan.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Row counts for the home page sections.
const (
	homeServicesLimit     = 6
	homeProjectsLimit     = 4
	homeTestimonialsLimit = 5
	homePostsLimit        = 3
	homeFAQLimit          = 5
	homeGalleryLimit      = 8
	homeCertificatesLimit = 3
)

type HomeHandler struct {
	aboutService   services.IAboutService
	contentService services.IContentService
	projectService services.IProjectService
	blogService    services.IBlogService
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{
		aboutService:   services.NewAboutService(),
		contentService: services.NewContentService(),
		projectService: services.NewProjectService(),
		blogService:    services.NewBlogService(),
	}
}

// Home renders the landing page. Every section degrades to empty when
// its query fails; only a missing template is fatal to the request.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()

	about, err := h.aboutService.GetActiveAbout(ctx)
	if err != nil && !errors.Is(err, services.ErrAboutNotFound) {
		configslog.Log.Error("Home: about lookup failed", zap.Error(err))
	}

	servicesList, err := h.contentService.HomeServices(ctx, homeServicesLimit)
	if err != nil {
		configslog.Log.Error("Home: services lookup failed", zap.Error(err))
	}
	featuredProjects, err := h.projectService.FeaturedProjects(ctx, homeProjectsLimit)
	if err != nil {
		configslog.Log.Error("Home: featured projects lookup failed", zap.Error(err))
	}
	testimonials, err := h.contentService.FeaturedTestimonials(ctx, homeTestimonialsLimit)
	if err != nil {
		configslog.Log.Error("Home: testimonials lookup failed", zap.Error(err))
	}
	skillGroups, err := h.contentService.SkillsByCategory(ctx)
	if err != nil {
		configslog.Log.Error("Home: skills lookup failed", zap.Error(err))
	}
	posts, err := h.blogService.LatestPosts(ctx, homePostsLimit)
	if err != nil {
		configslog.Log.Error("Home: blog lookup failed", zap.Error(err))
	}
	faqGroups, err := h.contentService.FAQsByCategory(ctx, homeFAQLimit)
	if err != nil {
		configslog.Log.Error("Home: faq lookup failed", zap.Error(err))
	}
	galleryItems, err := h.contentService.RecentGallery(ctx, homeGalleryLimit)
	if err != nil {
		configslog.Log.Error("Home: gallery lookup failed", zap.Error(err))
	}
	certificates, err := h.contentService.ListCertificates(ctx, homeCertificatesLimit)
	if err != nil {
		configslog.Log.Error("Home: certificates lookup failed", zap.Error(err))
	}

	return c.Render("portfolio/home", fiber.Map{
		"Title":            "Home",
		"About":            about,
		"Services":         servicesList,
		"FeaturedProjects": featuredProjects,
		"Testimonials":     testimonials,
		"SkillGroups":      skillGroups,
		"BlogPosts":        posts,
		"FAQGroups":        faqGroups,
		"GalleryItems":     galleryItems,
		"Certificates":     certificates,
	}, mainLayout)
}
