package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-backoffice/internal/auth"
	"github.com/spec-kit/itsm-backoffice/internal/domain"
	"github.com/spec-kit/itsm-backoffice/internal/service"
	apperrors "github.com/spec-kit/itsm-backoffice/pkg/util"
)

// AlertsHandler serves derived SLA alerts.
type AlertsHandler struct {
	service *service.SLAService
}

// NewAlertsHandler constructs handler.
func NewAlertsHandler(slaService *service.SLAService) *AlertsHandler {
	return &AlertsHandler{service: slaService}
}

// ListSLA GET /alerts/sla.
func (h *AlertsHandler) ListSLA(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var companyID *string
	if v := c.Query("company_id"); v != "" {
		companyID = &v
	}
	alerts, err := h.service.CollectAlerts(c.UserContext(), service.ScopeFor(actor, companyID))
	if err != nil {
		return err
	}
	if alerts == nil {
		alerts = []domain.SLAAlert{}
	}
	return c.JSON(fiber.Map{"data": alerts})
}
