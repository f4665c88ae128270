package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-backoffice/internal/api/dto"
	"github.com/spec-kit/itsm-backoffice/internal/auth"
	"github.com/spec-kit/itsm-backoffice/internal/service"
	apperrors "github.com/spec-kit/itsm-backoffice/pkg/util"
)

// ServicesHandler serves the managed service catalog.
type ServicesHandler struct {
	service *service.CatalogService
}

// NewServicesHandler constructs handler.
func NewServicesHandler(catalogService *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{service: catalogService}
}

// Create POST /services.
func (h *ServicesHandler) Create(c *fiber.Ctx) error {
	var req dto.ManagedServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	svc, err := h.service.Create(c.UserContext(), req.ToManagedService())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewManagedServiceResponse(svc)})
}

// List GET /services.
func (h *ServicesHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var companyID *string
	if v := c.Query("company_id"); v != "" {
		companyID = &v
	}
	services, err := h.service.List(c.UserContext(), actor, companyID)
	if err != nil {
		return err
	}
	items := make([]dto.ManagedServiceResponse, 0, len(services))
	for i := range services {
		items = append(items, dto.NewManagedServiceResponse(&services[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /services/:id.
func (h *ServicesHandler) Get(c *fiber.Ctx) error {
	svc, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewManagedServiceResponse(svc)})
}

// Update PUT /services/:id.
func (h *ServicesHandler) Update(c *fiber.Ctx) error {
	var req dto.ManagedServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	svc, err := h.service.Update(c.UserContext(), c.Params("id"), req.ToManagedService())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewManagedServiceResponse(svc)})
}

// Delete DELETE /services/:id.
func (h *ServicesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
