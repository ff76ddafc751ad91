package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AnyaAven/jobly/companies/models"
	"github.com/AnyaAven/jobly/companies/repository"
	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
)

// MockRepository is a test double for the company repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]models.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, criteria sqlhelper.Fields) ([]models.Company, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyDetail), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, handle string, data sqlhelper.Fields) (*models.Company, error) {
	args := m.Called(ctx, handle, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}
