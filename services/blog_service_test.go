package services

import (
	"context"
	"errors"
	"testing"

	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"
	"nishan.dev/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListPostsCollectsSortedDistinctTags(t *testing.T) {
	repo := new(mockBlogRepository)
	service := NewBlogServiceWithRepo(repo)

	repo.On("FindPublishedPaginated", mock.Anything, mock.Anything).
		Return([]models.Blog{}, int64(2), nil)
	repo.On("AllPublishedTags", mock.Anything, "").
		Return([]string{"go, web", "web, databases", ""}, nil)

	_, _, tags, err := service.ListPosts(context.Background(), queryparams.ListParams{})

	assert.NoError(t, err)
	assert.Equal(t, []string{"databases", "go", "web"}, tags)
}

func TestListPostsToleratesTagFailure(t *testing.T) {
	repo := new(mockBlogRepository)
	service := NewBlogServiceWithRepo(repo)

	posts := []models.Blog{{Title: "Post"}}
	repo.On("FindPublishedPaginated", mock.Anything, mock.Anything).
		Return(posts, int64(1), nil)
	repo.On("AllPublishedTags", mock.Anything, "").
		Return(nil, errors.New("db down"))

	gotPosts, meta, tags, err := service.ListPosts(context.Background(), queryparams.ListParams{})

	assert.NoError(t, err)
	assert.Equal(t, posts, gotPosts)
	assert.Equal(t, int64(1), meta.Total)
	assert.Nil(t, tags)
}

func TestGetPostBySlugCountsOneView(t *testing.T) {
	repo := new(mockBlogRepository)
	service := NewBlogServiceWithRepo(repo)

	post := &models.Blog{Title: "Post", Views: 5}
	repo.On("FindPublishedBySlug", mock.Anything, "post").Return(post, nil)
	repo.On("IncrementViews", mock.Anything, post.ID).Return(nil)
	repo.On("FindRecentPublished", mock.Anything, post.ID, 3).Return([]models.Blog{}, nil)

	got, _, err := service.GetPostBySlug(context.Background(), "post")

	assert.NoError(t, err)
	assert.Equal(t, 6, got.Views)
	repo.AssertNumberOfCalls(t, "IncrementViews", 1)
}

func TestGetPostBySlugToleratesCounterFailure(t *testing.T) {
	repo := new(mockBlogRepository)
	service := NewBlogServiceWithRepo(repo)

	post := &models.Blog{Title: "Post", Views: 5}
	repo.On("FindPublishedBySlug", mock.Anything, "post").Return(post, nil)
	repo.On("IncrementViews", mock.Anything, post.ID).Return(errors.New("db down"))
	repo.On("FindRecentPublished", mock.Anything, post.ID, 3).Return([]models.Blog{}, nil)

	got, _, err := service.GetPostBySlug(context.Background(), "post")

	assert.NoError(t, err)
	assert.Equal(t, 5, got.Views)
}

func TestGetPostBySlugNotFound(t *testing.T) {
	repo := new(mockBlogRepository)
	service := NewBlogServiceWithRepo(repo)

	repo.On("FindPublishedBySlug", mock.Anything, "missing").
		Return(nil, repositories.ErrNotFound)

	_, _, err := service.GetPostBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBlogNotFound)
	repo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
}
