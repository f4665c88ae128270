package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-backoffice/internal/api/dto"
	"github.com/spec-kit/itsm-backoffice/internal/auth"
	"github.com/spec-kit/itsm-backoffice/internal/service"
	apperrors "github.com/spec-kit/itsm-backoffice/pkg/util"
)

// ContractsHandler serves SLA contract administration.
type ContractsHandler struct {
	service *service.ContractService
}

// NewContractsHandler constructs handler.
func NewContractsHandler(contractService *service.ContractService) *ContractsHandler {
	return &ContractsHandler{service: contractService}
}

// Create POST /contracts.
func (h *ContractsHandler) Create(c *fiber.Ctx) error {
	var req dto.ContractRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	contract, err := h.service.Create(c.UserContext(), contractInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewContractResponse(contract)})
}

// List GET /contracts.
func (h *ContractsHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var companyID *string
	if v := c.Query("company_id"); v != "" {
		companyID = &v
	}
	contracts, err := h.service.List(c.UserContext(), actor, companyID)
	if err != nil {
		return err
	}
	items := make([]dto.ContractResponse, 0, len(contracts))
	for i := range contracts {
		items = append(items, dto.NewContractResponse(&contracts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PUT /contracts/:id.
func (h *ContractsHandler) Update(c *fiber.Ctx) error {
	var req dto.ContractRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	contract, err := h.service.Update(c.UserContext(), c.Params("id"), contractInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewContractResponse(contract)})
}

// Delete DELETE /contracts/:id.
func (h *ContractsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

func contractInput(req dto.ContractRequest) service.ContractInput {
	return service.ContractInput{
		CompanyID: req.CompanyID,
		ServiceID: req.ServiceID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		SLAHours:  req.SLAHours,
		Terms:     req.Terms,
		Status:    req.Status,
	}
}
