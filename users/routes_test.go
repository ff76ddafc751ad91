package users_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AnyaAven/jobly/internal/auth/tokens"
	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/middleware/authjwt"
	"github.com/AnyaAven/jobly/internal/testutil"
	"github.com/AnyaAven/jobly/users"
	"github.com/AnyaAven/jobly/users/handlers"
	"github.com/AnyaAven/jobly/users/models"
	"github.com/AnyaAven/jobly/users/repository"
	"github.com/AnyaAven/jobly/users/services"
)

func newApp(t *testing.T) *testutil.HTTPHelper {
	client := testutil.DB(t)
	testutil.Seed(t, client)

	issuer := tokens.NewIssuer(testutil.TestSecretKey, time.Hour)
	app := fiber.New()
	app.Use(authjwt.Authenticate(authjwt.Config{Parser: issuer}))

	svc := services.NewService(repository.NewPostgresRepository(client), bcrypt.MinCost)
	users.RegisterRoutes(app, &users.Handlers{UserHandler: handlers.NewUserHandler(svc, issuer)})
	return testutil.NewHTTPHelper(t, app)
}

func TestUserRoutes_Collection(t *testing.T) {
	helper := newApp(t)

	newUser := map[string]interface{}{
		"username": "new", "password": "password-new", "firstName": "F", "lastName": "L",
		"email": "new@email.com", "isAdmin": false,
	}
	helper.NewRequest(http.MethodPost, "/users", newUser).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusUnauthorized, nil)

	var created struct {
		Token string `json:"token"`
	}
	helper.NewRequest(http.MethodPost, "/users", newUser).WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusCreated, &created)
	require.NotEmpty(t, created.Token)

	helper.NewRequest(http.MethodPost, "/users", newUser).WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusBadRequest, nil)

	helper.NewRequest(http.MethodGet, "/users", nil).SendJSON(http.StatusUnauthorized, nil)
	helper.NewRequest(http.MethodGet, "/users", nil).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusUnauthorized, nil)
	helper.NewRequest(http.MethodGet, "/users", nil).WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusOK, nil)

	// the token returned on create is valid for the new user
	helper.NewRequest(http.MethodGet, "/users/new", nil).WithJWTAuth(created.Token).SendJSON(http.StatusOK, nil)
}

func TestUserRoutes_Member(t *testing.T) {
	helper := newApp(t)

	helper.NewRequest(http.MethodGet, "/users/u2", nil).SendJSON(http.StatusUnauthorized, nil)
	helper.NewRequest(http.MethodGet, "/users/u1", nil).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusUnauthorized, nil)
	helper.NewRequest(http.MethodGet, "/users/u2", nil).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusOK, nil)
	helper.NewRequest(http.MethodGet, "/users/u2", nil).WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusOK, nil)
	helper.NewRequest(http.MethodGet, "/users/nope", nil).WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusNotFound, nil)

	helper.NewRequest(http.MethodPatch, "/users/u2", map[string]string{"firstName": "New"}).
		WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusOK, nil)
	helper.NewRequest(http.MethodPatch, "/users/u2", map[string]bool{"isAdmin": true}).
		WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusUnauthorized, nil)
	helper.NewRequest(http.MethodPatch, "/users/u2", map[string]string{}).
		WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusBadRequest, nil)

	helper.NewRequest(http.MethodDelete, "/users/u2", nil).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusOK, nil)
	helper.NewRequest(http.MethodDelete, "/users/u2", nil).WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusNotFound, nil)
}

func TestUserRoutes_Apply(t *testing.T) {
	helper := newApp(t)
	path := fmt.Sprintf("/users/u2/jobs/%d", testutil.JobIDs[1])

	helper.NewRequest(http.MethodPost, path, nil).SendJSON(http.StatusUnauthorized, nil)

	var body map[string]int
	helper.NewRequest(http.MethodPost, path, nil).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusOK, &body)
	require.Equal(t, testutil.JobIDs[1], body["applied"])

	helper.NewRequest(http.MethodPost, path, nil).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusBadRequest, nil)
	helper.NewRequest(http.MethodPost, "/users/u2/jobs/0", nil).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusNotFound, nil)
	helper.NewRequest(http.MethodPost, fmt.Sprintf("/users/nope/jobs/%d", testutil.JobIDs[1]), nil).
		WithJWTAuth(testutil.U1Token(t)).SendJSON(http.StatusNotFound, nil)
}

// stubService answers every call without a database.
type stubService struct {
	services.Service
}

func (stubService) GetUser(ctx context.Context, username string) (*models.UserDetail, error) {
	return &models.UserDetail{User: models.User{Username: username}}, nil
}

func TestUserRoutes_RequireLogin(t *testing.T) {
	issuer := tokens.NewIssuer(testutil.TestSecretKey, time.Hour)
	app := fiber.New()
	app.Use(authjwt.Authenticate(authjwt.Config{Parser: issuer}))
	users.RegisterRoutes(app, &users.Handlers{UserHandler: handlers.NewUserHandler(stubService{}, issuer)})
	helper := testutil.NewHTTPHelper(t, app)

	var body httperrors.ErrorResponse
	helper.NewRequest(http.MethodGet, "/users/u2", nil).SendJSON(http.StatusUnauthorized, &body)
	require.Equal(t, "Unauthorized", body.Message)

	helper.NewRequest(http.MethodGet, "/users/u2", nil).WithJWTAuth("not-a-token").SendJSON(http.StatusUnauthorized, nil)
	helper.NewRequest(http.MethodPost, "/users/u2/jobs/1", nil).SendJSON(http.StatusUnauthorized, nil)
	helper.NewRequest(http.MethodGet, "/users/u2", nil).WithJWTAuth(testutil.U2Token(t)).SendJSON(http.StatusOK, nil)
}
