package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/AnyaAven/jobly/companies/models"
	"github.com/AnyaAven/jobly/internal/database/postgres"
	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
)

const companyColumns = `handle, name, description, num_employees, logo_url`

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a company repository backed by client.
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	query := `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyColumns

	var company models.Company
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &company, query,
		req.Handle, req.Name, req.Description, req.NumEmployees, req.LogoURL)
	if err != nil {
		return nil, postgres.MapError(err, "company: "+req.Handle)
	}
	return &company, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name`

	companies := []models.Company{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &companies, query); err != nil {
		return nil, postgres.MapError(err, "companies")
	}
	return companies, nil
}

func (r *postgresRepository) Search(ctx context.Context, criteria sqlhelper.Fields) ([]models.Company, error) {
	where, err := models.CompanySearchFilters.Where(criteria)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM companies
		WHERE %s
		ORDER BY name, num_employees`, companyColumns, where.SQL)

	companies := []models.Company{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &companies, query, where.Values...); err != nil {
		return nil, postgres.MapError(err, "companies")
	}
	return companies, nil
}

func (r *postgresRepository) Get(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	exec := r.client.Executor(ctx)

	var detail models.CompanyDetail
	query := `SELECT ` + companyColumns + ` FROM companies WHERE handle = $1`
	if err := sqlx.GetContext(ctx, exec, &detail.Company, query, handle); err != nil {
		return nil, postgres.MapError(err, "company: "+handle)
	}

	detail.Jobs = []models.CompanyJob{}
	jobsQuery := `
		SELECT id, title, salary, equity
		FROM jobs
		WHERE company_handle = $1
		ORDER BY id`
	if err := sqlx.SelectContext(ctx, exec, &detail.Jobs, jobsQuery, handle); err != nil {
		return nil, postgres.MapError(err, "jobs")
	}
	return &detail, nil
}

func (r *postgresRepository) Update(ctx context.Context, handle string, data sqlhelper.Fields) (*models.Company, error) {
	set, err := sqlhelper.PartialUpdate(data, models.UpdateColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE companies
		SET %s
		WHERE handle = %s
		RETURNING %s`, set.SQL, set.NextPlaceholder(), companyColumns)

	var company models.Company
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &company, query, set.Args(handle)...); err != nil {
		return nil, postgres.MapError(err, "company: "+handle)
	}
	return &company, nil
}

func (r *postgresRepository) Remove(ctx context.Context, handle string) error {
	var deleted string
	query := `DELETE FROM companies WHERE handle = $1 RETURNING handle`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &deleted, query, handle); err != nil {
		return postgres.MapError(err, "company: "+handle)
	}
	return nil
}
