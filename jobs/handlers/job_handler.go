package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/validation"
	"github.com/AnyaAven/jobly/jobs/models"
	"github.com/AnyaAven/jobly/jobs/services"
)

// JobHandler handles the /jobs endpoints.
type JobHandler struct {
	service services.Service
}

func NewJobHandler(service services.Service) *JobHandler {
	return &JobHandler{service: service}
}

// Create adds a job to a company.
// Endpoint: POST /jobs
// Body: {"title", "salary", "equity", "companyHandle"}
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := validation.DecodeJSON(c.Body(), &req); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	job, err := h.service.CreateJob(c.UserContext(), &req)
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"job": job})
}

// List returns all jobs, or the ones matching the query string.
// Endpoint: GET /jobs?title=...&minSalary=...&hasEquity=...
func (h *JobHandler) List(c *fiber.Ctx) error {
	args := validation.QueryArgs(c)
	if len(args) == 0 {
		jobs, err := h.service.ListJobs(c.UserContext())
		if err != nil {
			return httperrors.HandleServiceError(c, err)
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"jobs": jobs})
	}

	criteria, err := validation.DecodeQuery(args, &models.JobSearchQuery{})
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	jobs, err := h.service.SearchJobs(c.UserContext(), criteria)
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"jobs": jobs})
}

// Get returns one job.
// Endpoint: GET /jobs/:id
func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return httperrors.HandleServiceError(c, httperrors.NewNotFound("No job with id: "+c.Params("id")))
	}

	job, err := h.service.GetJob(c.UserContext(), id)
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"job": job})
}

// Update changes the fields present in the body.
// Endpoint: PATCH /jobs/:id
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return httperrors.HandleServiceError(c, httperrors.NewNotFound("No job with id: "+c.Params("id")))
	}

	var req models.UpdateJobRequest
	if err := validation.DecodeJSON(c.Body(), &req); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	job, err := h.service.UpdateJob(c.UserContext(), id, validation.Payload(&req))
	if err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"job": job})
}

// Delete removes a job.
// Endpoint: DELETE /jobs/:id
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return httperrors.HandleServiceError(c, httperrors.NewNotFound("No job with id: "+c.Params("id")))
	}

	if err := h.service.DeleteJob(c.UserContext(), id); err != nil {
		return httperrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": id})
}
