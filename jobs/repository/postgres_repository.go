package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/AnyaAven/jobly/internal/database/postgres"
	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/jobs/models"
)

const (
	jobColumns = `id, title, salary, equity, company_handle`
	jobOrder   = `ORDER BY company_handle, title, salary, equity, id`
)

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a job repository backed by client.
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

func notFound(id int) string {
	return "job with id: " + strconv.Itoa(id)
}

func (r *postgresRepository) Create(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobColumns

	var job models.Job
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &job, query,
		req.Title, req.Salary, req.Equity, req.CompanyHandle)
	if err != nil {
		return nil, postgres.MapError(err, "company: "+req.CompanyHandle)
	}
	return &job, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ` + jobOrder

	jobs := []models.Job{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &jobs, query); err != nil {
		return nil, postgres.MapError(err, "jobs")
	}
	return jobs, nil
}

func (r *postgresRepository) Search(ctx context.Context, criteria sqlhelper.Fields) ([]models.Job, error) {
	where, err := models.JobSearchFilters.Where(criteria)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		WHERE %s
		%s`, jobColumns, where.SQL, jobOrder)

	jobs := []models.Job{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &jobs, query, where.Values...); err != nil {
		return nil, postgres.MapError(err, "jobs")
	}
	return jobs, nil
}

func (r *postgresRepository) Get(ctx context.Context, id int) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job models.Job
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &job, query, id); err != nil {
		return nil, postgres.MapError(err, notFound(id))
	}
	return &job, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int, data sqlhelper.Fields) (*models.Job, error) {
	set, err := sqlhelper.PartialUpdate(data, nil)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = %s
		RETURNING %s`, set.SQL, set.NextPlaceholder(), jobColumns)

	var job models.Job
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &job, query, set.Args(id)...); err != nil {
		return nil, postgres.MapError(err, notFound(id))
	}
	return &job, nil
}

func (r *postgresRepository) Remove(ctx context.Context, id int) (*models.Job, error) {
	query := `DELETE FROM jobs WHERE id = $1 RETURNING ` + jobColumns

	var job models.Job
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &job, query, id); err != nil {
		return nil, postgres.MapError(err, notFound(id))
	}
	return &job, nil
}
