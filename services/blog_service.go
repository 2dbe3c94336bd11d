package services

import (
	"context"
	"errors"
	"sort"

	"nishan.dev/configs/configslog"
	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"
	"nishan.dev/pkg/textutil"
	"nishan.dev/repositories"

	"go.uber.org/zap"
)

type BlogServiceError string

func (e BlogServiceError) Error() string { return string(e) }

const (
	ErrBlogNotFound BlogServiceError = "blog post not found"
)

const relatedPostsLimit = 3

type IBlogService interface {
	ListPosts(ctx context.Context, params queryparams.ListParams) ([]models.Blog, queryparams.PaginationMeta, []string, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.Blog, []models.Blog, error)
	LatestPosts(ctx context.Context, limit int) ([]models.Blog, error)
}

type BlogService struct {
	repo repositories.IBlogRepository
}

func NewBlogService() IBlogService {
	return &BlogService{repo: repositories.NewBlogRepository()}
}

func NewBlogServiceWithRepo(repo repositories.IBlogRepository) IBlogService {
	return &BlogService{repo: repo}
}

// ListPosts returns one page of published posts plus the sorted set of
// distinct tags across every post matching the search filter.
func (s *BlogService) ListPosts(ctx context.Context, params queryparams.ListParams) ([]models.Blog, queryparams.PaginationMeta, []string, error) {
	params.Validate(BlogPostsPerPage)
	posts, total, err := s.repo.FindPublishedPaginated(ctx, params)
	if err != nil {
		return nil, queryparams.PaginationMeta{}, nil, err
	}
	params.ClampPage(total)
	meta := queryparams.NewPaginationMeta(total, params.Page, params.PerPage)

	tagFields, err := s.repo.AllPublishedTags(ctx, params.Search)
	if err != nil {
		// Tags are a sidebar nicety; the listing still renders.
		configslog.Log.Warn("BlogService.ListPosts: tag collection failed", zap.Error(err))
		return posts, meta, nil, nil
	}
	return posts, meta, collectTags(tagFields), nil
}

// GetPostBySlug returns the published post, bumps its view counter and
// loads up to 3 recent posts for the "related" block. Each successful
// read counts exactly one view.
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*models.Blog, []models.Blog, error) {
	post, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrBlogNotFound
		}
		return nil, nil, err
	}

	if err := s.repo.IncrementViews(ctx, post.ID); err != nil {
		configslog.Log.Warn("BlogService.GetPostBySlug: view counter update failed",
			zap.String("slug", slug), zap.Error(err))
	} else {
		post.Views++
	}

	related, err := s.repo.FindRecentPublished(ctx, post.ID, relatedPostsLimit)
	if err != nil {
		related = nil
	}
	return post, related, nil
}

func (s *BlogService) LatestPosts(ctx context.Context, limit int) ([]models.Blog, error) {
	return s.repo.FindLatest(ctx, limit)
}

// collectTags splits the raw comma separated tag fields, deduplicates
// and sorts them.
func collectTags(fields []string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, field := range fields {
		for _, tag := range textutil.SplitList(field) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

var _ IBlogService = (*BlogService)(nil)
