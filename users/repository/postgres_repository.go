package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/AnyaAven/jobly/internal/database/postgres"
	"github.com/AnyaAven/jobly/internal/database/sqlhelper"
	"github.com/AnyaAven/jobly/users/models"
)

const userColumns = `username, first_name, last_name, email, is_admin`

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a user repository backed by client.
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) Create(ctx context.Context, user *models.NewUser) (*models.User, error) {
	query := `
		INSERT INTO users (username, password, first_name, last_name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	var created models.User
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &created, query,
		user.Username, user.Password, user.FirstName, user.LastName, user.Email, user.IsAdmin)
	if err != nil {
		return nil, postgres.MapError(err, "username: "+user.Username)
	}
	return &created, nil
}

func (r *postgresRepository) FindCredentials(ctx context.Context, username string) (*models.Credentials, error) {
	query := `SELECT ` + userColumns + `, password FROM users WHERE username = $1`

	var creds models.Credentials
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &creds, query, username); err != nil {
		return nil, postgres.MapError(err, "user: "+username)
	}
	return &creds, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`

	users := []models.User{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &users, query); err != nil {
		return nil, postgres.MapError(err, "users")
	}
	return users, nil
}

func (r *postgresRepository) Get(ctx context.Context, username string) (*models.UserDetail, error) {
	exec := r.client.Executor(ctx)

	var detail models.UserDetail
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	if err := sqlx.GetContext(ctx, exec, &detail.User, query, username); err != nil {
		return nil, postgres.MapError(err, "user: "+username)
	}

	detail.Jobs = []int{}
	jobsQuery := `SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id`
	if err := sqlx.SelectContext(ctx, exec, &detail.Jobs, jobsQuery, username); err != nil {
		return nil, postgres.MapError(err, "applications")
	}
	return &detail, nil
}

func (r *postgresRepository) Update(ctx context.Context, username string, data sqlhelper.Fields) (*models.User, error) {
	set, err := sqlhelper.PartialUpdate(data, models.UpdateColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE username = %s
		RETURNING %s`, set.SQL, set.NextPlaceholder(), userColumns)

	var user models.User
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &user, query, set.Args(username)...); err != nil {
		return nil, postgres.MapError(err, "user: "+username)
	}
	return &user, nil
}

func (r *postgresRepository) Remove(ctx context.Context, username string) error {
	var deleted string
	query := `DELETE FROM users WHERE username = $1 RETURNING username`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &deleted, query, username); err != nil {
		return postgres.MapError(err, "user: "+username)
	}
	return nil
}

func (r *postgresRepository) Apply(ctx context.Context, username string, jobID int) error {
	return r.client.WithTx(ctx, func(ctx context.Context) error {
		exec := r.client.Executor(ctx)

		var found int
		if err := sqlx.GetContext(ctx, exec, &found, `SELECT id FROM jobs WHERE id = $1`, jobID); err != nil {
			return postgres.MapError(err, "job: "+strconv.Itoa(jobID))
		}
		var name string
		if err := sqlx.GetContext(ctx, exec, &name, `SELECT username FROM users WHERE username = $1`, username); err != nil {
			return postgres.MapError(err, "username: "+username)
		}

		_, err := exec.ExecContext(ctx, `INSERT INTO applications (username, job_id) VALUES ($1, $2)`, username, jobID)
		if err != nil {
			return postgres.MapError(err, fmt.Sprintf("application: %s to job %d", username, jobID))
		}
		return nil
	})
}
