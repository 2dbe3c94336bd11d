package site

import (
	"errors"

	"nishan.dev/configs/configslog"
	"nishan.dev/pkg/queryparams"
	"nishan.dev/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BlogHandler struct {
	service services.IBlogService
}

func NewBlogHandler() *BlogHandler {
	return &BlogHandler{service: services.NewBlogService()}
}

// ListPosts renders the blog listing with search, pagination and the
// tag cloud collected from every matching post.
func (h *BlogHandler) ListPosts(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams(services.BlogPostsPerPage)
	}

	posts, meta, tags, err := h.service.ListPosts(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("ListPosts: query failed", zap.Error(err))
		return renderError(c, "Blog posts could not be loaded.")
	}

	return c.Render("portfolio/blog", fiber.Map{
		"Title":       "Blog",
		"Posts":       posts,
		"Pagination":  meta,
		"AllTags":     tags,
		"SearchQuery": params.Search,
	}, mainLayout)
}

// ShowPost renders one published post. Reading the page counts one view.
func (h *BlogHandler) ShowPost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, related, err := h.service.GetPostBySlug(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			return renderNotFound(c, "Blog post not found")
		}
		configslog.Log.Error("ShowPost: query failed", zap.String("slug", slug), zap.Error(err))
		return renderError(c, "The blog post could not be loaded.")
	}

	return c.Render("portfolio/blog_detail", fiber.Map{
		"Title":        post.Title,
		"Post":         post,
		"RelatedPosts": related,
	}, mainLayout)
}
