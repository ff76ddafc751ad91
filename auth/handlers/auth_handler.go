package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	gopass "github.com/nbutton23/zxcvbn-go"

	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/pkg/log"
	"github.com/AnyaAven/jobly/internal/validation"
	"github.com/AnyaAven/jobly/users/models"
	"github.com/AnyaAven/jobly/users/services"
)

// MinPasswordScore is the lowest zxcvbn score accepted on register.
const MinPasswordScore = 3

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	CreateToken(username string, isAdmin bool) (string, error)
}

// AuthHandler serves the token and register endpoints.
type AuthHandler struct {
	users  services.Service
	tokens TokenIssuer
}

func NewAuthHandler(users services.Service, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Token exchanges a username and password for a token.
// Endpoint: POST /auth/token
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := validation.DecodeJSON(c.Body(), &req); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	user, err := h.users.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return h.respondWithToken(c, http.StatusOK, user)
}

// Register creates a regular user and logs them in.
// Endpoint: POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := validation.DecodeJSON(c.Body(), &req); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	strength := gopass.PasswordStrength(req.Password, []string{req.Username, req.FirstName, req.LastName, req.Email})
	if strength.Score < MinPasswordScore {
		log.WarnWithContext(c.UserContext(), "weak password rejected for %s (score %d)", req.Username, strength.Score)
		return httperrors.HandleValidationError(c, "Password is not strong enough")
	}

	user, err := h.users.Register(c.UserContext(), &req)
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return h.respondWithToken(c, http.StatusCreated, user)
}

func (h *AuthHandler) respondWithToken(c *fiber.Ctx, status int, user *models.User) error {
	token, err := h.tokens.CreateToken(user.Username, user.IsAdmin)
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}
	return c.Status(status).JSON(fiber.Map{"token": token})
}
