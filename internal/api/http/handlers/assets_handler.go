package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-backoffice/internal/api/dto"
	"github.com/spec-kit/itsm-backoffice/internal/auth"
	"github.com/spec-kit/itsm-backoffice/internal/domain"
	"github.com/spec-kit/itsm-backoffice/internal/repository"
	"github.com/spec-kit/itsm-backoffice/internal/service"
	apperrors "github.com/spec-kit/itsm-backoffice/pkg/util"
)

// AssetsHandler serves the asset inventory.
type AssetsHandler struct {
	service *service.AssetService
}

// NewAssetsHandler constructs handler.
func NewAssetsHandler(assetService *service.AssetService) *AssetsHandler {
	return &AssetsHandler{service: assetService}
}

// Create POST /assets.
func (h *AssetsHandler) Create(c *fiber.Ctx) error {
	var req dto.AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	asset, err := h.service.Create(c.UserContext(), req.ToAsset())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewAssetResponse(asset)})
}

// List GET /assets.
func (h *AssetsHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	filter := repository.AssetFilter{}
	if companyID := c.Query("company_id"); companyID != "" {
		filter.CompanyID = &companyID
	}
	if status := c.Query("status"); status != "" {
		s := domain.AssetStatus(status)
		filter.Status = &s
	}
	if assetType := c.Query("asset_type"); assetType != "" {
		filter.AssetType = &assetType
	}
	assets, err := h.service.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	items := make([]dto.AssetResponse, 0, len(assets))
	for i := range assets {
		items = append(items, dto.NewAssetResponse(&assets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /assets/:id.
func (h *AssetsHandler) Get(c *fiber.Ctx) error {
	asset, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAssetResponse(asset)})
}

// Update PUT /assets/:id.
func (h *AssetsHandler) Update(c *fiber.Ctx) error {
	var req dto.AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	asset, err := h.service.Update(c.UserContext(), c.Params("id"), req.ToAsset())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAssetResponse(asset)})
}

// Delete DELETE /assets/:id.
func (h *AssetsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
