package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/jobs/models"
	"github.com/AnyaAven/jobly/jobs/repository"
)

// MockRepository is a test double for the job repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) job(args mock.Arguments) (*models.Job, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockRepository) jobs(args mock.Arguments) ([]models.Job, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	return m.job(m.Called(ctx, req))
}

func (m *MockRepository) FindAll(ctx context.Context) ([]models.Job, error) {
	return m.jobs(m.Called(ctx))
}

func (m *MockRepository) Search(ctx context.Context, criteria sqlhelper.Fields) ([]models.Job, error) {
	return m.jobs(m.Called(ctx, criteria))
}

func (m *MockRepository) Get(ctx context.Context, id int) (*models.Job, error) {
	return m.job(m.Called(ctx, id))
}

func (m *MockRepository) Update(ctx context.Context, id int, data sqlhelper.Fields) (*models.Job, error) {
	return m.job(m.Called(ctx, id, data))
}

func (m *MockRepository) Remove(ctx context.Context, id int) (*models.Job, error) {
	return m.job(m.Called(ctx, id))
}
