package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/AnyaAven/jobly/auth"
	authHandlers "github.com/AnyaAven/jobly/auth/handlers"
	"github.com/AnyaAven/jobly/companies"
	companyHandlers "github.com/AnyaAven/jobly/companies/handlers"
	companyRepository "github.com/AnyaAven/jobly/companies/repository"
	companyServices "github.com/AnyaAven/jobly/companies/services"
	"github.com/AnyaAven/jobly/internal/auth/tokens"
	"github.com/AnyaAven/jobly/internal/cache"
	"github.com/AnyaAven/jobly/internal/database/postgres"
	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/middleware/authjwt"
	"github.com/AnyaAven/jobly/internal/middleware/requestid"
	"github.com/AnyaAven/jobly/internal/pkg/log"
	platformconfig "github.com/AnyaAven/jobly/internal/platform/config"
	"github.com/AnyaAven/jobly/jobs"
	jobHandlers "github.com/AnyaAven/jobly/jobs/handlers"
	jobRepository "github.com/AnyaAven/jobly/jobs/repository"
	jobServices "github.com/AnyaAven/jobly/jobs/services"
	"github.com/AnyaAven/jobly/users"
	userHandlers "github.com/AnyaAven/jobly/users/handlers"
	userRepository "github.com/AnyaAven/jobly/users/repository"
	userServices "github.com/AnyaAven/jobly/users/services"
)

// newApp builds the fiber app with every route registered.
func newApp(cfg *platformconfig.Config, pgClient *postgres.Client, cacheService *cache.Service, issuer *tokens.Issuer) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status, body := httperrors.Render(err)
			if status >= fiber.StatusInternalServerError {
				log.ErrorWithContext(c.UserContext(), "%s %s: %v", c.Method(), c.Path(), err)
			}
			return c.Status(status).JSON(body)
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.WebDomain,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, PATCH, OPTIONS",
	}))
	app.Use(requestid.New())
	app.Use(authjwt.Authenticate(authjwt.Config{Parser: issuer}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pgClient.HealthCheck(c.UserContext()); err != nil {
			log.WarnWithContext(c.UserContext(), "health check failed: %v", err)
			return httperrors.HandleServiceError(c, httperrors.ErrDatabaseOperation)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	userService := userServices.NewService(userRepository.NewPostgresRepository(pgClient), cfg.Auth.BcryptWorkFactor)

	auth.RegisterRoutes(app, &auth.Handlers{
		AuthHandler: authHandlers.NewAuthHandler(userService, issuer),
	}, cfg.RateLimits)

	companies.RegisterRoutes(app, &companies.Handlers{
		CompanyHandler: companyHandlers.NewCompanyHandler(
			companyServices.NewService(companyRepository.NewPostgresRepository(pgClient), cacheService)),
	})

	jobs.RegisterRoutes(app, &jobs.Handlers{
		JobHandler: jobHandlers.NewJobHandler(
			jobServices.NewService(jobRepository.NewPostgresRepository(pgClient), cacheService)),
	})

	users.RegisterRoutes(app, &users.Handlers{
		UserHandler: userHandlers.NewUserHandler(userService, issuer),
	})

	app.Use(func(c *fiber.Ctx) error {
		return httperrors.HandleServiceError(c, httperrors.NewNotFound("Not Found"))
	})

	return app
}
