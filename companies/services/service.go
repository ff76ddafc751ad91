package services

import (
	"context"
	"fmt"

	"github.com/AnyaAven/jobly/companies/models"
	"github.com/AnyaAven/jobly/companies/repository"
	"github.com/AnyaAven/jobly/internal/cache"
	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
)

// Service defines company operations.
type Service interface {
	CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)

	// ListCompanies returns every company.
	ListCompanies(ctx context.Context) ([]models.Company, error)

	// SearchCompanies returns the companies matching criteria. Criteria must
	// name at least one search key.
	SearchCompanies(ctx context.Context, criteria sqlhelper.Fields) ([]models.Company, error)

	// GetCompany returns a company with its jobs, from the cache when possible.
	GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error)

	UpdateCompany(ctx context.Context, handle string, data sqlhelper.Fields) (*models.Company, error)
	DeleteCompany(ctx context.Context, handle string) error
}

type service struct {
	repo  repository.Repository
	cache *cache.Service
}

// NewService constructs a company service. A nil or disabled cache makes
// every read go to the repository.
func NewService(repo repository.Repository, cacheService *cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	company, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

func (s *service) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (s *service) SearchCompanies(ctx context.Context, criteria sqlhelper.Fields) ([]models.Company, error) {
	companies, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	return companies, nil
}

func (s *service) GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	var cached models.CompanyDetail
	if s.cache.GetJSON(ctx, models.CacheKey(handle), &cached) {
		return &cached, nil
	}

	company, err := s.repo.Get(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	s.cache.SetJSON(ctx, models.CacheKey(handle), company)
	return company, nil
}

func (s *service) UpdateCompany(ctx context.Context, handle string, data sqlhelper.Fields) (*models.Company, error) {
	company, err := s.repo.Update(ctx, handle, data)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}

	s.cache.Invalidate(ctx, models.CacheKey(handle))
	return company, nil
}

func (s *service) DeleteCompany(ctx context.Context, handle string) error {
	if err := s.repo.Remove(ctx, handle); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}

	s.cache.Invalidate(ctx, models.CacheKey(handle))
	return nil
}
