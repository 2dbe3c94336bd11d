package services

import (
	"context"

	"nishan.dev/models"
	"nishan.dev/pkg/queryparams"
	"nishan.dev/repositories"
)

// Per-page sizes for the public listings.
const (
	ServicesPerPage     = 6
	ProjectsPerPage     = 9
	BlogPostsPerPage    = 6
	GalleryPerPage      = 12
	TestimonialsPerPage = 8
)

// SkillGroup is one category bucket of skills, in canonical in-bucket
// order.
type SkillGroup struct {
	Category string
	Label    string
	Skills   []models.Skill
}

// FAQGroup is one category bucket of FAQs.
type FAQGroup struct {
	Category string
	Label    string
	FAQs     []models.FAQ
}

// IContentService serves the simple list-type content: services,
// gallery, testimonials, certificates, skills and FAQs.
type IContentService interface {
	ListServices(ctx context.Context, params queryparams.ListParams) ([]models.Service, queryparams.PaginationMeta, error)
	HomeServices(ctx context.Context, limit int) ([]models.Service, error)
	ListGallery(ctx context.Context, params queryparams.ListParams) ([]models.Gallery, queryparams.PaginationMeta, error)
	RecentGallery(ctx context.Context, limit int) ([]models.Gallery, error)
	ListTestimonials(ctx context.Context, params queryparams.ListParams) ([]models.Testimonial, queryparams.PaginationMeta, error)
	FeaturedTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error)
	ListCertificates(ctx context.Context, limit int) ([]models.Certificate, error)
	SkillsByCategory(ctx context.Context) ([]SkillGroup, error)
	FAQsByCategory(ctx context.Context, limit int) ([]FAQGroup, error)
}

type ContentService struct {
	serviceRepo     repositories.IServiceRepository
	galleryRepo     repositories.IGalleryRepository
	testimonialRepo repositories.ITestimonialRepository
	certificateRepo repositories.ICertificateRepository
	skillRepo       repositories.ISkillRepository
	faqRepo         repositories.IFAQRepository
}

func NewContentService() IContentService {
	return &ContentService{
		serviceRepo:     repositories.NewServiceRepository(),
		galleryRepo:     repositories.NewGalleryRepository(),
		testimonialRepo: repositories.NewTestimonialRepository(),
		certificateRepo: repositories.NewCertificateRepository(),
		skillRepo:       repositories.NewSkillRepository(),
		faqRepo:         repositories.NewFAQRepository(),
	}
}

// NewContentServiceWithRepos wires explicit repositories; used by tests.
func NewContentServiceWithRepos(
	serviceRepo repositories.IServiceRepository,
	galleryRepo repositories.IGalleryRepository,
	testimonialRepo repositories.ITestimonialRepository,
	certificateRepo repositories.ICertificateRepository,
	skillRepo repositories.ISkillRepository,
	faqRepo repositories.IFAQRepository,
) IContentService {
	return &ContentService{
		serviceRepo:     serviceRepo,
		galleryRepo:     galleryRepo,
		testimonialRepo: testimonialRepo,
		certificateRepo: certificateRepo,
		skillRepo:       skillRepo,
		faqRepo:         faqRepo,
	}
}

func (s *ContentService) ListServices(ctx context.Context, params queryparams.ListParams) ([]models.Service, queryparams.PaginationMeta, error) {
	params.Validate(ServicesPerPage)
	items, total, err := s.serviceRepo.FindActivePaginated(ctx, params)
	if err != nil {
		return nil, queryparams.PaginationMeta{}, err
	}
	params.ClampPage(total)
	return items, queryparams.NewPaginationMeta(total, params.Page, params.PerPage), nil
}

func (s *ContentService) HomeServices(ctx context.Context, limit int) ([]models.Service, error) {
	return s.serviceRepo.FindActive(ctx, limit)
}

func (s *ContentService) ListGallery(ctx context.Context, params queryparams.ListParams) ([]models.Gallery, queryparams.PaginationMeta, error) {
	params.Validate(GalleryPerPage)
	items, total, err := s.galleryRepo.FindActivePaginated(ctx, params)
	if err != nil {
		return nil, queryparams.PaginationMeta{}, err
	}
	params.ClampPage(total)
	return items, queryparams.NewPaginationMeta(total, params.Page, params.PerPage), nil
}

func (s *ContentService) RecentGallery(ctx context.Context, limit int) ([]models.Gallery, error) {
	return s.galleryRepo.FindRecent(ctx, limit)
}

func (s *ContentService) ListTestimonials(ctx context.Context, params queryparams.ListParams) ([]models.Testimonial, queryparams.PaginationMeta, error) {
	params.Validate(TestimonialsPerPage)
	items, total, err := s.testimonialRepo.FindActivePaginated(ctx, params)
	if err != nil {
		return nil, queryparams.PaginationMeta{}, err
	}
	params.ClampPage(total)
	return items, queryparams.NewPaginationMeta(total, params.Page, params.PerPage), nil
}

func (s *ContentService) FeaturedTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error) {
	return s.testimonialRepo.FindFeatured(ctx, limit)
}

func (s *ContentService) ListCertificates(ctx context.Context, limit int) ([]models.Certificate, error) {
	return s.certificateRepo.FindActive(ctx, limit)
}

// SkillsByCategory buckets the canonically ordered active skills by
// category. Buckets keep first-encountered order; rows keep their order
// within each bucket.
func (s *ContentService) SkillsByCategory(ctx context.Context) ([]SkillGroup, error) {
	skills, err := s.skillRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	var groups []SkillGroup
	index := make(map[string]int)
	for _, skill := range skills {
		i, ok := index[skill.Category]
		if !ok {
			i = len(groups)
			index[skill.Category] = i
			groups = append(groups, SkillGroup{
				Category: skill.Category,
				Label:    models.SkillCategoryLabels[skill.Category],
			})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}
	return groups, nil
}

// FAQsByCategory buckets active FAQs by category the same way. A limit
// of 0 means all FAQs.
func (s *ContentService) FAQsByCategory(ctx context.Context, limit int) ([]FAQGroup, error) {
	faqs, err := s.faqRepo.FindActive(ctx, limit)
	if err != nil {
		return nil, err
	}

	var groups []FAQGroup
	index := make(map[string]int)
	for _, faq := range faqs {
		i, ok := index[faq.Category]
		if !ok {
			i = len(groups)
			index[faq.Category] = i
			groups = append(groups, FAQGroup{
				Category: faq.Category,
				Label:    models.FAQCategoryLabels[faq.Category],
			})
		}
		groups[i].FAQs = append(groups[i].FAQs, faq)
	}
	return groups, nil
}

var _ IContentService = (*ContentService)(nil)
