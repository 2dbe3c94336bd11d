package services

import (
	"context"
	"errors"

	"nishan.dev/models"
	"nishan.dev/repositories"
)

type AboutServiceError string

func (e AboutServiceError) Error() string { return string(e) }

const (
	ErrAboutNotFound AboutServiceError = "no active about profile"
)

// IAboutService resolves the site owner's profile. Pages must tolerate
// ErrAboutNotFound and render with empty fields.
type IAboutService interface {
	GetActiveAbout(ctx context.Context) (*models.About, error)
}

type AboutService struct {
	repo repositories.IAboutRepository
}

func NewAboutService() IAboutService {
	return &AboutService{repo: repositories.NewAboutRepository()}
}

func NewAboutServiceWithRepo(repo repositories.IAboutRepository) IAboutService {
	return &AboutService{repo: repo}
}

func (s *AboutService) GetActiveAbout(ctx context.Context) (*models.About, error) {
	about, err := s.repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, err
	}
	return about, nil
}

var _ IAboutService = (*AboutService)(nil)
