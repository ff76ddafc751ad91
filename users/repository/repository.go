package repository

import (
	"context"

	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/users/models"
)

// Repository defines data access for users and their job applications.
type Repository interface {
	// Create inserts a user. A taken username is a bad request.
	Create(ctx context.Context, user *models.NewUser) (*models.User, error)

	// FindCredentials returns the user with its password hash.
	FindCredentials(ctx context.Context, username string) (*models.Credentials, error)

	FindAll(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, username string) (*models.UserDetail, error)

	// Update applies a partial update. A password in data must already be hashed.
	Update(ctx context.Context, username string, data sqlhelper.Fields) (*models.User, error)

	Remove(ctx context.Context, username string) error

	// Apply records an application of username to jobID.
	Apply(ctx context.Context, username string, jobID int) error
}
