package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/pkg/log"
	"github.com/AnyaAven/jobly/users/models"
	"github.com/AnyaAven/jobly/users/repository"
)

// ErrInvalidCredentials is returned by Authenticate for an unknown user or
// a wrong password.
var ErrInvalidCredentials = httperrors.NewUnauthorized("Invalid username/password")

// Service defines user operations.
type Service interface {
	// Authenticate checks a username and password pair.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// Register creates a regular user.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)

	// CreateUser creates a user, possibly an admin.
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.UserDetail, error)

	// UpdateUser applies a partial update. A password in data is hashed first.
	UpdateUser(ctx context.Context, username string, data sqlhelper.Fields) (*models.User, error)

	DeleteUser(ctx context.Context, username string) error
	ApplyToJob(ctx context.Context, username string, jobID int) error
}

type service struct {
	repo       repository.Repository
	bcryptCost int
}

// NewService constructs a user service hashing passwords with bcryptCost.
func NewService(repo repository.Repository, bcryptCost int) Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &service{repo: repo, bcryptCost: bcryptCost}
}

func (s *service) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	creds, err := s.repo.FindCredentials(ctx, username)
	if err != nil {
		if httperrors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.Password), []byte(password)); err != nil {
		log.WarnWithContext(ctx, "failed login for %s", username)
		return nil, ErrInvalidCredentials
	}

	return &creds.User, nil
}

func (s *service) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	return s.create(ctx, &models.NewUser{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
}

func (s *service) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	return s.create(ctx, &models.NewUser{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
}

func (s *service) create(ctx context.Context, user *models.NewUser) (*models.User, error) {
	hashed, err := s.hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *service) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *service) GetUser(ctx context.Context, username string) (*models.UserDetail, error) {
	user, err := s.repo.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *service) UpdateUser(ctx context.Context, username string, data sqlhelper.Fields) (*models.User, error) {
	if raw, ok := data.Lookup("password"); ok {
		password, _ := raw.(string)
		hashed, err := s.hash(password)
		if err != nil {
			return nil, err
		}
		data = data.With("password", hashed)
	}

	user, err := s.repo.Update(ctx, username, data)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *service) DeleteUser(ctx context.Context, username string) error {
	if err := s.repo.Remove(ctx, username); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *service) ApplyToJob(ctx context.Context, username string, jobID int) error {
	if err := s.repo.Apply(ctx, username, jobID); err != nil {
		return fmt.Errorf("apply to job: %w", err)
	}
	return nil
}
