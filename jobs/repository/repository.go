package repository

import (
	"context"

	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/jobs/models"
)

// Repository defines data access for jobs.
type Repository interface {
	// Create inserts a job. An unknown company is not found.
	Create(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)

	FindAll(ctx context.Context) ([]models.Job, error)
	Search(ctx context.Context, criteria sqlhelper.Fields) ([]models.Job, error)
	Get(ctx context.Context, id int) (*models.Job, error)

	// Update applies a partial update and returns the changed job.
	Update(ctx context.Context, id int, data sqlhelper.Fields) (*models.Job, error)

	// Remove deletes a job and returns the deleted row.
	Remove(ctx context.Context, id int) (*models.Job, error)
}
