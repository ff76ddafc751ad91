package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AnyaAven/jobly/internal/database/migrations"
	"github.com/AnyaAven/jobly/internal/database/postgres"
)

// Fixture job ids, assigned by Seed.
var (
	JobIDs   []int
	seedLock sync.Mutex
)

var (
	sharedClient *postgres.Client
	sharedErr    error
	sharedOnce   sync.Once
)

// DB returns a migrated connection to the test database shared by the whole
// package, or skips the test when RUN_DB_TESTS is not 1 or the database is
// unreachable.
func DB(t *testing.T) *postgres.Client {
	t.Helper()

	if !ShouldRunDatabaseTests() {
		t.Skip("set RUN_DB_TESTS=1 to run database tests")
	}

	sharedOnce.Do(func() {
		cfg := Config(t)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sharedClient, sharedErr = postgres.NewClient(ctx, &cfg.Database.Postgres)
		if sharedErr != nil {
			return
		}

		// migrate through a separate pool, closing the runner closes its db
		migrationDB, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
		if err != nil {
			sharedErr = err
			return
		}
		runner, err := migrations.New(migrationDB.DB().DB)
		if err != nil {
			sharedErr = err
			return
		}
		defer runner.Close()
		sharedErr = runner.Up()
	})

	if sharedErr != nil {
		t.Skipf("postgres not available, skipping: %v", sharedErr)
	}
	return sharedClient
}

// Seed empties every table and inserts the common fixtures:
//
//	companies c1 (1 employee), c2 (2), c3 (3)
//	jobs      j1 (c1, 100, 0.1), j2 (c1, 200, 0.2), j3 (c1, 300, 0), j4 (c1, null, null)
//	users     u1 (admin, password1), u2 (password2), u1 applied to j1
func Seed(t *testing.T, client *postgres.Client) {
	t.Helper()
	seedLock.Lock()
	defer seedLock.Unlock()

	ctx := context.Background()
	db := client.DB()

	db.MustExecContext(ctx, "DELETE FROM applications")
	db.MustExecContext(ctx, "DELETE FROM users")
	db.MustExecContext(ctx, "DELETE FROM jobs")
	db.MustExecContext(ctx, "DELETE FROM companies")

	db.MustExecContext(ctx, `
		INSERT INTO companies (handle, name, num_employees, description, logo_url)
		VALUES ('c1', 'C1', 1, 'Desc1', 'http://c1.img'),
		       ('c2', 'C2', 2, 'Desc2', 'http://c2.img'),
		       ('c3', 'C3', 3, 'Desc3', 'http://c3.img')`)

	JobIDs = JobIDs[:0]
	rows, err := db.QueryxContext(ctx, `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ('j1', 100, '0.1', 'c1'),
		       ('j2', 200, '0.2', 'c1'),
		       ('j3', 300, '0', 'c1'),
		       ('j4', NULL, NULL, 'c1')
		RETURNING id`)
	require.NoError(t, err)
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		JobIDs = append(JobIDs, id)
	}
	require.NoError(t, rows.Err())
	rows.Close()

	for _, u := range []struct {
		username, password string
		isAdmin            bool
	}{
		{"u1", "password1", true},
		{"u2", "password2", false},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.MinCost)
		require.NoError(t, err)
		db.MustExecContext(ctx, `
			INSERT INTO users (username, password, first_name, last_name, email, is_admin)
			VALUES ($1, $2, $3, 'L', $4, $5)`,
			u.username, string(hash), "F"+u.username[1:], u.username+"@email.com", u.isAdmin)
	}

	db.MustExecContext(ctx, "INSERT INTO applications (username, job_id) VALUES ('u1', $1)", JobIDs[0])
}
