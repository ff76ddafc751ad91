package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/middleware/authjwt"
	"github.com/AnyaAven/jobly/internal/validation"
	"github.com/AnyaAven/jobly/users/models"
	"github.com/AnyaAven/jobly/users/services"
)

// TokenIssuer signs tokens for newly created users.
type TokenIssuer interface {
	CreateToken(username string, isAdmin bool) (string, error)
}

// UserHandler handles the /users endpoints.
type UserHandler struct {
	service services.Service
	tokens  TokenIssuer
}

func NewUserHandler(service services.Service, tokens TokenIssuer) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

// Create adds a user on behalf of an admin and returns a token for them.
// Endpoint: POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := validation.DecodeJSON(c.Body(), &req); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	user, err := h.service.CreateUser(c.UserContext(), &req)
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	token, err := h.tokens.CreateToken(user.Username, user.IsAdmin)
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

// List returns every user.
// Endpoint: GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.UserContext())
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"users": users})
}

// Get returns a user and the jobs they applied to.
// Endpoint: GET /users/:username
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.service.GetUser(c.UserContext(), c.Params("username"))
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"user": user})
}

// Update changes the fields present in the body. Only admins may change isAdmin.
// Endpoint: PATCH /users/:username
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if err := validation.DecodeJSON(c.Body(), &req); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	if req.IsAdmin != nil {
		if current, ok := authjwt.CurrentUser(c); !ok || !current.IsAdmin {
			return httperrors.HandleUnauthorized(c, "Only admins can change isAdmin")
		}
	}

	user, err := h.service.UpdateUser(c.UserContext(), c.Params("username"), validation.Payload(&req))
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"user": user})
}

// Delete removes a user.
// Endpoint: DELETE /users/:username
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.service.DeleteUser(c.UserContext(), username); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": username})
}

// Apply records an application to a job.
// Endpoint: POST /users/:username/jobs/:id
func (h *UserHandler) Apply(c *fiber.Ctx) error {
	jobID, err := c.ParamsInt("id")
	if err != nil {
		return httperrors.HandleServiceError(c, httperrors.NewNotFound("No job: "+c.Params("id")))
	}

	if err := h.service.ApplyToJob(c.UserContext(), c.Params("username"), jobID); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"applied": jobID})
}
