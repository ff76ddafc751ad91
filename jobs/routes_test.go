package jobs_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/AnyaAven/jobly/internal/auth/tokens"
	"github.com/AnyaAven/jobly/internal/middleware/authjwt"
	"github.com/AnyaAven/jobly/internal/testutil"
	"github.com/AnyaAven/jobly/jobs"
	"github.com/AnyaAven/jobly/jobs/handlers"
	"github.com/AnyaAven/jobly/jobs/models"
	"github.com/AnyaAven/jobly/jobs/repository"
	"github.com/AnyaAven/jobly/jobs/services"
)

func newApp(t *testing.T) *testutil.HTTPHelper {
	client := testutil.DB(t)
	testutil.Seed(t, client)

	app := fiber.New()
	app.Use(authjwt.Authenticate(authjwt.Config{Parser: tokens.NewIssuer(testutil.TestSecretKey, time.Hour)}))

	svc := services.NewService(repository.NewPostgresRepository(client), nil)
	jobs.RegisterRoutes(app, &jobs.Handlers{JobHandler: handlers.NewJobHandler(svc)})
	return testutil.NewHTTPHelper(t, app)
}

type jobsBody struct {
	Jobs []models.Job `json:"jobs"`
}

func TestJobRoutes_Create(t *testing.T) {
	helper := newApp(t)
	newJob := map[string]interface{}{"title": "new", "salary": 10, "equity": "0.2", "companyHandle": "c1"}

	helper.NewRequest(http.MethodPost, "/jobs", newJob).SendJSON(http.StatusUnauthorized, nil)
	helper.NewRequest(http.MethodPost, "/jobs", newJob).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusUnauthorized, nil)

	var body struct {
		Job models.Job `json:"job"`
	}
	helper.NewRequest(http.MethodPost, "/jobs", newJob).WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusCreated, &body)
	require.Equal(t, "0.2", *body.Job.Equity)

	newJob["companyHandle"] = "nope"
	helper.NewRequest(http.MethodPost, "/jobs", newJob).WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusNotFound, nil)
}

func TestJobRoutes_List(t *testing.T) {
	helper := newApp(t)

	var body jobsBody
	helper.NewRequest(http.MethodGet, "/jobs", nil).SendJSON(http.StatusOK, &body)
	require.Len(t, body.Jobs, 4)

	helper.NewRequest(http.MethodGet, "/jobs?hasEquity=true", nil).SendJSON(http.StatusOK, &body)
	require.Len(t, body.Jobs, 2)

	helper.NewRequest(http.MethodGet, "/jobs?hasEquity=false", nil).SendJSON(http.StatusOK, &body)
	require.Len(t, body.Jobs, 4)

	helper.NewRequest(http.MethodGet, "/jobs?title=j&minSalary=250", nil).SendJSON(http.StatusOK, &body)
	require.Len(t, body.Jobs, 1)
	require.Equal(t, "j3", body.Jobs[0].Title)

	helper.NewRequest(http.MethodGet, "/jobs?nameLike=j", nil).SendJSON(http.StatusBadRequest, nil)
}

func TestJobRoutes_GetUpdateDelete(t *testing.T) {
	helper := newApp(t)
	path := fmt.Sprintf("/jobs/%d", testutil.JobIDs[0])

	helper.NewRequest(http.MethodGet, path, nil).SendJSON(http.StatusOK, nil)
	helper.NewRequest(http.MethodGet, "/jobs/0", nil).SendJSON(http.StatusNotFound, nil)
	helper.NewRequest(http.MethodGet, "/jobs/abc", nil).SendJSON(http.StatusNotFound, nil)

	patch := map[string]interface{}{"title": "j-new"}
	helper.NewRequest(http.MethodPatch, path, patch).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusUnauthorized, nil)

	var body struct {
		Job models.Job `json:"job"`
	}
	helper.NewRequest(http.MethodPatch, path, patch).WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusOK, &body)
	require.Equal(t, "j-new", body.Job.Title)

	helper.NewRequest(http.MethodDelete, path, nil).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusUnauthorized, nil)
	helper.NewRequest(http.MethodDelete, path, nil).WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusOK, nil)
	helper.NewRequest(http.MethodDelete, path, nil).WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusNotFound, nil)
}
