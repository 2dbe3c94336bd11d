package services

import (
	"context"
	"testing"

	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSkillsByCategoryKeepsEncounterOrder(t *testing.T) {
	skillRepo := new(mockSkillRepository)
	service := NewContentServiceWithRepos(nil, nil, nil, nil, skillRepo, nil)

	skillRepo.On("FindActive", mock.Anything).Return([]models.Skill{
		{Name: "Go", Category: models.SkillCategoryBackend},
		{Name: "PostgreSQL", Category: models.SkillCategoryDatabase},
		{Name: "Python", Category: models.SkillCategoryBackend},
	}, nil)

	groups, err := service.SkillsByCategory(context.Background())

	assert.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Equal(t, models.SkillCategoryBackend, groups[0].Category)
	assert.Equal(t, "Backend", groups[0].Label)
	assert.Equal(t, []string{"Go", "Python"}, []string{groups[0].Skills[0].Name, groups[0].Skills[1].Name})
	assert.Equal(t, models.SkillCategoryDatabase, groups[1].Category)
}

func TestFAQsByCategoryKeepsEncounterOrder(t *testing.T) {
	faqRepo := new(mockFAQRepository)
	service := NewContentServiceWithRepos(nil, nil, nil, nil, nil, faqRepo)

	faqRepo.On("FindActive", mock.Anything, 0).Return([]models.FAQ{
		{Question: "Q1", Category: models.FAQCategoryGeneral},
		{Question: "Q2", Category: models.FAQCategoryPricing},
		{Question: "Q3", Category: models.FAQCategoryGeneral},
	}, nil)

	groups, err := service.FAQsByCategory(context.Background(), 0)

	assert.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Equal(t, "General", groups[0].Label)
	assert.Len(t, groups[0].FAQs, 2)
	assert.Equal(t, "Pricing", groups[1].Label)
}

func TestListServicesBuildsPaginationMeta(t *testing.T) {
	serviceRepo := new(mockServiceRepository)
	service := NewContentServiceWithRepos(serviceRepo, nil, nil, nil, nil, nil)

	serviceRepo.On("FindActivePaginated", mock.Anything, mock.MatchedBy(func(p queryparams.ListParams) bool {
		return p.Page == 1 && p.PerPage == ServicesPerPage
	})).Return([]models.Service{{Title: "Consulting"}}, int64(13), nil)

	items, meta, err := service.ListServices(context.Background(), queryparams.ListParams{})

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(13), meta.Total)
	assert.Equal(t, 3, meta.Pages)
	assert.Equal(t, 1, meta.Current)
	assert.True(t, meta.HasNext)
}
