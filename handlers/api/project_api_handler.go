package api

import (
	"nishan.dev/configs/configslog"
	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"
	"nishan.dev/pkg/textutil"
	"nishan.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// apiDateLayout renders project dates as plain calendar dates.
const apiDateLayout = "2006-01-02"

// projectResponse is the wire shape of one project in the JSON API.
type projectResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ProjectType   string  `json:"project_type"`
	Technologies  string  `json:"technologies"`
	GithubURL     string  `json:"github_url"`
	LiveURL       string  `json:"live_url"`
	FeaturedImage *string `json:"featured_image"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date"`
}

type projectListResponse struct {
	Projects   []projectResponse          `json:"projects"`
	Pagination queryparams.PaginationMeta `json:"pagination"`
}

type ProjectAPIHandler struct {
	service services.IProjectService
}

func NewProjectAPIHandler() *ProjectAPIHandler {
	return &ProjectAPIHandler{service: services.NewProjectService()}
}

func NewProjectAPIHandlerWithService(service services.IProjectService) *ProjectAPIHandler {
	return &ProjectAPIHandler{service: service}
}

// ListProjects answers active projects newest first with the same type,
// search and date-range filters as the HTML listing. An out-of-range page
// falls back to the first page instead of clamping.
func (h *ProjectAPIHandler) ListProjects(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams(services.ProjectsPerPage)
	}

	projects, meta, err := h.service.ListProjectsForAPI(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("API ListProjects: query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "projects could not be loaded",
		})
	}

	resp := projectListResponse{
		Projects:   make([]projectResponse, 0, len(projects)),
		Pagination: meta,
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, toProjectResponse(p))
	}
	return c.JSON(resp)
}

func toProjectResponse(p models.Project) projectResponse {
	r := projectResponse{
		ID:           p.ID.String(),
		Title:        p.Title,
		Description:  textutil.StripHTML(p.Description),
		ProjectType:  p.TypeLabel(),
		Technologies: p.Technologies,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		StartDate:    p.StartDate.Format(apiDateLayout),
	}
	if p.FeaturedImage != "" {
		img := p.FeaturedImage
		r.FeaturedImage = &img
	}
	if p.EndDate != nil {
		end := p.EndDate.Format(apiDateLayout)
		r.EndDate = &end
	}
	return r
}
