package site

import (
	"errors"

	"nishan.dev/configs/configslog"
	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"
	"nishan.dev/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	service services.IProjectService
}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{service: services.NewProjectService()}
}

// ListProjects renders the project listing with optional type filter,
// free-text search and pagination.
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams(services.ProjectsPerPage)
	}

	projects, meta, err := h.service.ListProjects(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("ListProjects: query failed", zap.Error(err))
		return renderError(c, "Projects could not be loaded.")
	}

	return c.Render("portfolio/projects", fiber.Map{
		"Title":        "Projects",
		"Projects":     projects,
		"Pagination":   meta,
		"ProjectTypes": models.ProjectTypes,
		"TypeLabels":   models.ProjectTypeLabels,
		"SelectedType": params.Type,
		"SearchQuery":  params.Search,
	}, mainLayout)
}

// ShowProject renders one project with up to 3 related projects of the
// same type. Unknown, malformed or inactive IDs yield the 404 page.
func (h *ProjectHandler) ShowProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return renderNotFound(c, "Project not found")
	}

	project, related, err := h.service.GetProject(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return renderNotFound(c, "Project not found")
		}
		configslog.Log.Error("ShowProject: query failed", zap.String("id", id.String()), zap.Error(err))
		return renderError(c, "The project could not be loaded.")
	}

	return c.Render("portfolio/project_detail", fiber.Map{
		"Title":           project.Title,
		"Project":         project,
		"RelatedProjects": related,
	}, mainLayout)
}
