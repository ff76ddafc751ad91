package services

import (
	"context"
	"fmt"

	companymodels "github.com/AnyaAven/jobly/companies/models"
	"github.com/AnyaAven/jobly/internal/cache"
	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/jobs/models"
	"github.com/AnyaAven/jobly/jobs/repository"
)

// Service defines job operations. Writes drop the cached detail of the
// job's company.
type Service interface {
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)

	// SearchJobs returns the jobs matching criteria. Criteria must name at
	// least one search key.
	SearchJobs(ctx context.Context, criteria sqlhelper.Fields) ([]models.Job, error)

	GetJob(ctx context.Context, id int) (*models.Job, error)
	UpdateJob(ctx context.Context, id int, data sqlhelper.Fields) (*models.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

type service struct {
	repo  repository.Repository
	cache *cache.Service
}

// NewService constructs a job service.
func NewService(repo repository.Repository, cacheService *cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	job, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.cache.Invalidate(ctx, companymodels.CacheKey(job.CompanyHandle))
	return job, nil
}

func (s *service) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *service) SearchJobs(ctx context.Context, criteria sqlhelper.Fields) ([]models.Job, error) {
	jobs, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	return jobs, nil
}

func (s *service) GetJob(ctx context.Context, id int) (*models.Job, error) {
	job, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

func (s *service) UpdateJob(ctx context.Context, id int, data sqlhelper.Fields) (*models.Job, error) {
	job, err := s.repo.Update(ctx, id, data)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	s.cache.Invalidate(ctx, companymodels.CacheKey(job.CompanyHandle))
	return job, nil
}

func (s *service) DeleteJob(ctx context.Context, id int) error {
	job, err := s.repo.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	s.cache.Invalidate(ctx, companymodels.CacheKey(job.CompanyHandle))
	return nil
}
