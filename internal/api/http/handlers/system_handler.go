package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-backoffice/internal/api/dto"
	"github.com/spec-kit/itsm-backoffice/internal/service"
	apperrors "github.com/spec-kit/itsm-backoffice/pkg/util"
)

// SystemHandler serves the singleton branding configuration.
type SystemHandler struct {
	service *service.SystemService
}

// NewSystemHandler constructs handler.
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{service: systemService}
}

// GetConfig GET /system/config.
func (h *SystemHandler) GetConfig(c *fiber.Ctx) error {
	cfg, err := h.service.Get(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSystemConfigResponse(cfg)})
}

// UpdateConfig PUT /system/config.
func (h *SystemHandler) UpdateConfig(c *fiber.Ctx) error {
	var req dto.SystemConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	cfg, err := h.service.Update(c.UserContext(), service.SystemConfigUpdate{
		CompanyName: req.CompanyName,
		LogoBase64:  req.LogoBase64,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSystemConfigResponse(cfg)})
}

// UploadLogo POST /system/upload-logo. Accepts multipart form field "file".
func (h *SystemHandler) UploadLogo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file required", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewValidationError("unreadable upload", nil)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return apperrors.NewValidationError("unreadable upload", nil)
	}
	cfg, err := h.service.UploadLogo(c.UserContext(), fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSystemConfigResponse(cfg)})
}
