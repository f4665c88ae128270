package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-backoffice/internal/api/http/handlers"
	"github.com/spec-kit/itsm-backoffice/internal/auth"
	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Companies      *handlers.CompaniesHandler
	Assets         *handlers.AssetsHandler
	Services       *handlers.ServicesHandler
	Contracts      *handlers.ContractsHandler
	Tickets        *handlers.TicketsHandler
	Alerts         *handlers.AlertsHandler
	Dashboard      *handlers.DashboardHandler
	Reports        *handlers.ReportsHandler
	System         *handlers.SystemHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/auth/register", cfg.Auth.Register)
	api.Post("/auth/login", cfg.Auth.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	adminOnly := auth.RequireRole(domain.RoleAdmin)
	operators := auth.RequireRole(domain.RoleAdmin, domain.RoleTechnician)

	protected.Get("/auth/me", cfg.Auth.Me)

	protected.Get("/users", adminOnly, cfg.Auth.ListUsers)
	protected.Delete("/users/:id", adminOnly, cfg.Auth.DeleteUser)

	protected.Get("/companies", cfg.Companies.List)
	protected.Get("/companies/:id", cfg.Companies.Get)
	protected.Post("/companies", adminOnly, cfg.Companies.Create)
	protected.Put("/companies/:id", adminOnly, cfg.Companies.Update)
	protected.Delete("/companies/:id", adminOnly, cfg.Companies.Delete)

	protected.Get("/assets", cfg.Assets.List)
	protected.Get("/assets/:id", cfg.Assets.Get)
	protected.Post("/assets", operators, cfg.Assets.Create)
	protected.Put("/assets/:id", operators, cfg.Assets.Update)
	protected.Delete("/assets/:id", adminOnly, cfg.Assets.Delete)

	protected.Get("/services", cfg.Services.List)
	protected.Get("/services/:id", cfg.Services.Get)
	protected.Post("/services", operators, cfg.Services.Create)
	protected.Put("/services/:id", operators, cfg.Services.Update)
	protected.Delete("/services/:id", adminOnly, cfg.Services.Delete)

	protected.Get("/contracts", cfg.Contracts.List)
	protected.Post("/contracts", adminOnly, cfg.Contracts.Create)
	protected.Put("/contracts/:id", adminOnly, cfg.Contracts.Update)
	protected.Delete("/contracts/:id", adminOnly, cfg.Contracts.Delete)

	protected.Post("/tickets", cfg.Tickets.Create)
	protected.Get("/tickets", cfg.Tickets.List)
	protected.Get("/tickets/:id", cfg.Tickets.Get)
	protected.Put("/tickets/:id", cfg.Tickets.Update)
	protected.Delete("/tickets/:id", adminOnly, cfg.Tickets.Delete)
	protected.Post("/tickets/:id/notes", cfg.Tickets.AddNote)
	protected.Get("/tickets/:id/notes", cfg.Tickets.ListNotes)

	protected.Get("/alerts/sla", cfg.Alerts.ListSLA)
	protected.Get("/dashboard/stats", cfg.Dashboard.Stats)
	protected.Get("/reports/tickets/pdf", cfg.Reports.TicketsPDF)
	protected.Get("/reports/assets/pdf", cfg.Reports.AssetsPDF)

	protected.Get("/system/config", cfg.System.GetConfig)
	protected.Put("/system/config", adminOnly, cfg.System.UpdateConfig)
	protected.Post("/system/upload-logo", adminOnly, cfg.System.UploadLogo)
}
