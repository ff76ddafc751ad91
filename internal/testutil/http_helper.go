package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/AnyaAven/jobly/internal/auth/tokens"
	"github.com/AnyaAven/jobly/internal/types"
)

// HTTPHelper provides a robust way to make HTTP requests in tests.
type HTTPHelper struct {
	t   *testing.T
	app *fiber.App
}

// NewHTTPHelper creates a new test helper for a given Fiber app.
func NewHTTPHelper(t *testing.T, app *fiber.App) *HTTPHelper {
	require.NotNil(t, app, "Fiber app provided to HTTPHelper cannot be nil")
	return &HTTPHelper{t: t, app: app}
}

// Request represents a test request under construction.
type Request struct {
	helper  *HTTPHelper
	method  string
	path    string
	body    []byte
	headers http.Header
}

// NewRequest begins building a new test request. Bodies other than []byte
// and string are marshaled to JSON.
func (h *HTTPHelper) NewRequest(method, path string, body interface{}) *Request {
	var bodyBytes []byte
	if body != nil {
		switch b := body.(type) {
		case []byte:
			bodyBytes = b
		case string:
			bodyBytes = []byte(b)
		default:
			jsonBytes, err := json.Marshal(body)
			require.NoError(h.t, err, "Failed to marshal request body to JSON")
			bodyBytes = jsonBytes
		}
	}

	req := &Request{
		helper:  h,
		method:  method,
		path:    path,
		body:    bodyBytes,
		headers: make(http.Header),
	}
	if body != nil {
		req.WithHeader(types.HeaderContentType, "application/json")
	}
	return req
}

// WithHeader adds a header to the request.
func (r *Request) WithHeader(key, value string) *Request {
	r.headers.Add(key, value)
	return r
}

// WithJWTAuth adds the token as Authorization: Bearer header.
func (r *Request) WithJWTAuth(token string) *Request {
	return r.WithHeader(types.HeaderAuthorization, types.BearerPrefix+token)
}

// Send executes the request and returns the response.
func (r *Request) Send() *http.Response {
	req := httptest.NewRequest(r.method, r.path, bytes.NewReader(r.body))
	req.Header = r.headers

	resp, err := r.helper.app.Test(req, int(10*time.Second.Milliseconds()))
	require.NoError(r.helper.t, err, "app.Test should not return an error")
	require.NotNil(r.helper.t, resp, "app.Test response should not be nil")
	return resp
}

// SendJSON executes the request, checks the status and decodes the body
// into out when out is not nil.
func (r *Request) SendJSON(wantStatus int, out interface{}) {
	resp := r.Send()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(r.helper.t, err)
	require.Equal(r.helper.t, wantStatus, resp.StatusCode, "body: %s", raw)
	if out != nil {
		require.NoError(r.helper.t, json.Unmarshal(raw, out), "body: %s", raw)
	}
}

// Token issues a token signed with TestSecretKey.
func Token(t *testing.T, username string, isAdmin bool) string {
	t.Helper()
	token, err := tokens.NewIssuer(TestSecretKey, time.Hour).CreateToken(username, isAdmin)
	require.NoError(t, err)
	return token
}

// Fixture tokens for the seeded users.
func U1Token(t *testing.T) string { return Token(t, "u1", true) }
func U2Token(t *testing.T) string { return Token(t, "u2", false) }
