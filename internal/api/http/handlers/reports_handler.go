package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/itsm-backoffice/internal/auth"
	"github.com/spec-kit/itsm-backoffice/internal/service"
	apperrors "github.com/spec-kit/itsm-backoffice/pkg/util"
)

// ReportsHandler serves PDF exports.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// TicketsPDF GET /reports/tickets/pdf.
func (h *ReportsHandler) TicketsPDF(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var companyID *string
	if v := c.Query("company_id"); v != "" {
		companyID = &v
	}
	period := service.ReportPeriod{
		From: parseDateQuery(c.Query("from")),
		To:   parseDateQuery(c.Query("to")),
	}
	pdf, err := h.service.TicketsPDF(c.UserContext(), actor, companyID, period)
	if err != nil {
		return err
	}
	return sendPDF(c, "tickets_report.pdf", pdf)
}

// AssetsPDF GET /reports/assets/pdf.
func (h *ReportsHandler) AssetsPDF(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var companyID *string
	if v := c.Query("company_id"); v != "" {
		companyID = &v
	}
	pdf, err := h.service.AssetsPDF(c.UserContext(), actor, companyID)
	if err != nil {
		return err
	}
	return sendPDF(c, "assets_report.pdf", pdf)
}

func sendPDF(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// parseDateQuery accepts RFC3339 timestamps and plain dates.
func parseDateQuery(val string) *time.Time {
	if val == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", val); err == nil {
		return &t
	}
	return nil
}
