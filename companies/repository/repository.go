package repository

import (
	"context"

	"github.com/AnyaAven/jobly/companies/models"
	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
)

// Repository defines data access for companies.
type Repository interface {
	// Create inserts a company. A taken handle or name is a bad request.
	Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)

	// FindAll returns every company ordered by name.
	FindAll(ctx context.Context) ([]models.Company, error)

	// Search returns the companies matching criteria ordered by name and size.
	Search(ctx context.Context, criteria sqlhelper.Fields) ([]models.Company, error)

	// Get returns a company with its jobs.
	Get(ctx context.Context, handle string) (*models.CompanyDetail, error)

	// Update applies a partial update and returns the changed company.
	Update(ctx context.Context, handle string, data sqlhelper.Fields) (*models.Company, error)

	// Remove deletes a company and, through the foreign key, its jobs.
	Remove(ctx context.Context, handle string) error
}
