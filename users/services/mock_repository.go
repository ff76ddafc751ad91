package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/users/models"
	"github.com/AnyaAven/jobly/users/repository"
)

// MockRepository is a test double for the user repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, user *models.NewUser) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) FindCredentials(ctx context.Context, username string) (*models.Credentials, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Credentials), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, username string) (*models.UserDetail, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserDetail), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, username string, data sqlhelper.Fields) (*models.User, error) {
	args := m.Called(ctx, username, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func (m *MockRepository) Apply(ctx context.Context, username string, jobID int) error {
	return m.Called(ctx, username, jobID).Error(0)
}
