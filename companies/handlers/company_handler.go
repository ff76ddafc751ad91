package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AnyaAven/jobly/companies/models"
	"github.com/AnyaAven/jobly/companies/services"
	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/validation"
)

// CompanyHandler handles the /companies endpoints.
type CompanyHandler struct {
	service services.Service
}

func NewCompanyHandler(service services.Service) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Create adds a company.
// Endpoint: POST /companies
// Body: {"handle", "name", "description", "numEmployees", "logoUrl"}
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := validation.DecodeJSON(c.Body(), &req); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	company, err := h.service.CreateCompany(c.UserContext(), &req)
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"company": company})
}

// List returns all companies, or the ones matching the query string.
// Endpoint: GET /companies?nameLike=...&minEmployees=...&maxEmployees=...
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	args := validation.QueryArgs(c)
	if len(args) == 0 {
		companies, err := h.service.ListCompanies(c.UserContext())
		if err != nil {
			return httperrors.HandleServiceError(c, err)
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"companies": companies})
	}

	criteria, err := validation.DecodeQuery(args, &models.CompanySearchQuery{})
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	companies, err := h.service.SearchCompanies(c.UserContext(), criteria)
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"companies": companies})
}

// Get returns a company and its jobs.
// Endpoint: GET /companies/:handle
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.service.GetCompany(c.UserContext(), c.Params("handle"))
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"company": company})
}

// Update changes the fields present in the body.
// Endpoint: PATCH /companies/:handle
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateCompanyRequest
	if err := validation.DecodeJSON(c.Body(), &req); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	company, err := h.service.UpdateCompany(c.UserContext(), c.Params("handle"), validation.Payload(&req))
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"company": company})
}

// Delete removes a company.
// Endpoint: DELETE /companies/:handle
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if err := h.service.DeleteCompany(c.UserContext(), handle); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": handle})
}
