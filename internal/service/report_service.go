package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
	"github.com/spec-kit/itsm-backoffice/internal/repository"
	apperrors "github.com/spec-kit/itsm-backoffice/pkg/util"
)

// ReportService renders PDF exports of tickets and assets.
type ReportService struct {
	tickets   repository.TicketRepository
	assets    repository.AssetRepository
	companies repository.CompanyRepository
	config    repository.SystemConfigRepository

	Now func() time.Time
}

// ReportPeriod bounds the ticket report by creation time. Nil ends are open.
type ReportPeriod struct {
	From *time.Time
	To   *time.Time
}

// NewReportService constructs the service.
func NewReportService(tickets repository.TicketRepository, assets repository.AssetRepository, companies repository.CompanyRepository, config repository.SystemConfigRepository) *ReportService {
	return &ReportService{
		tickets:   tickets,
		assets:    assets,
		companies: companies,
		config:    config,
		Now:       time.Now,
	}
}

// TicketsPDF renders a ticket listing for the actor's scope.
func (s *ReportService) TicketsPDF(ctx context.Context, actor *domain.User, companyID *string, period ReportPeriod) ([]byte, error) {
	if actor.Role == domain.RoleClient {
		companyID = actor.CompanyID
	}

	filter := repository.TicketFilter{
		CompanyID:   companyID,
		CreatedFrom: period.From,
		CreatedTo:   period.To,
	}
	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pdf := s.newDocument(ctx, "Tickets Report")
	s.writePeriod(pdf, period)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	widths := []float64{28, 72, 24, 32, 34}
	headers := []string{"ID", "Title", "Status", "Priority", "Created"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, t := range tickets {
		priority := "-"
		if t.Priority != nil {
			priority = *t.Priority
		}
		row := []string{
			truncate(t.ID, 14),
			truncate(t.Title, 48),
			string(t.Status),
			priority,
			t.CreatedAt.UTC().Format("2006-01-02 15:04"),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total tickets: %d", len(tickets)), "", 1, "L", false, 0, "")

	return s.output(pdf)
}

// AssetsPDF renders an asset inventory grouped by company.
func (s *ReportService) AssetsPDF(ctx context.Context, actor *domain.User, companyID *string) ([]byte, error) {
	if actor.Role == domain.RoleClient {
		companyID = actor.CompanyID
	}

	assets, err := s.assets.List(ctx, repository.AssetFilter{CompanyID: companyID})
	if err != nil {
		return nil, err
	}
	companies, err := s.companies.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(companies))
	for _, c := range companies {
		names[c.ID] = c.Name
	}

	grouped := make(map[string][]domain.Asset)
	for _, a := range assets {
		grouped[a.CompanyID] = append(grouped[a.CompanyID], a)
	}
	groupIDs := make([]string, 0, len(grouped))
	for id := range grouped {
		groupIDs = append(groupIDs, id)
	}
	sort.Strings(groupIDs)

	pdf := s.newDocument(ctx, "Assets Report")

	widths := []float64{40, 40, 40, 24, 46}
	for _, id := range groupIDs {
		name := names[id]
		if name == "" {
			name = id
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, name, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		headers := []string{"Type", "Manufacturer", "Model", "Status", "Serial"}
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		for _, a := range grouped[id] {
			row := []string{
				truncate(strOrDash(a.AssetType), 26),
				truncate(strOrDash(a.Manufacturer), 26),
				truncate(strOrDash(a.Model), 26),
				string(a.Status),
				truncate(strOrDash(a.SerialNumber), 30),
			}
			for i, cell := range row {
				pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total assets: %d", len(assets)), "", 1, "L", false, 0, "")

	return s.output(pdf)
}

func (s *ReportService) newDocument(ctx context.Context, title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	s.drawLogo(ctx, pdf)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+s.Now().UTC().Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	return pdf
}

// drawLogo places the configured logo in the top right corner. Missing or
// malformed logos are ignored so reports never fail on branding.
func (s *ReportService) drawLogo(ctx context.Context, pdf *fpdf.Fpdf) {
	cfg, err := s.config.Get(ctx)
	if err != nil || cfg.LogoBase64 == nil {
		return
	}
	imageType, data, err := decodeDataURI(*cfg.LogoBase64)
	if err != nil {
		return
	}
	opts := fpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
	pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(data))
	if pdf.Err() {
		pdf.ClearError()
		return
	}
	pdf.ImageOptions("logo", 170, 10, 28, 0, false, opts, 0, "")
}

func (s *ReportService) writePeriod(pdf *fpdf.Fpdf, period ReportPeriod) {
	if period.From == nil && period.To == nil {
		return
	}
	from, to := "beginning", "now"
	if period.From != nil {
		from = period.From.UTC().Format("2006-01-02")
	}
	if period.To != nil {
		to = period.To.UTC().Format("2006-01-02")
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s", from, to), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func (s *ReportService) output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return buf.Bytes(), nil
}

// decodeDataURI splits a data:image/...;base64 payload into an image type
// fpdf understands and the raw bytes.
func decodeDataURI(uri string) (string, []byte, error) {
	payload := uri
	imageType := "PNG"
	if strings.HasPrefix(uri, "data:") {
		semi := strings.Index(uri, ";base64,")
		if semi < 0 {
			return "", nil, fmt.Errorf("unsupported data uri")
		}
		switch uri[len("data:"):semi] {
		case "image/jpeg", "image/jpg":
			imageType = "JPG"
		case "image/gif":
			imageType = "GIF"
		}
		payload = uri[semi+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return imageType, data, nil
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
