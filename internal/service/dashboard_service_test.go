package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

func dashboardFixture() (*fakeTicketRepo, *fakeAssetRepo, *fakeCompanyRepo) {
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	inProgress := openTicket("t-2", "comp-1", created.Add(time.Hour))
	inProgress.Status = domain.TicketStatusInProgress
	resolved := openTicket("t-3", "comp-2", created.Add(2*time.Hour))
	resolved.Status = domain.TicketStatusResolved
	closed := openTicket("t-4", "comp-2", created.Add(3*time.Hour))
	closed.Status = domain.TicketStatusClosed
	tickets := newFakeTicketRepo(openTicket("t-1", "comp-1", created), inProgress, resolved, closed)

	assets := newFakeAssetRepo(
		&domain.Asset{ID: "a-1", CompanyID: "comp-1", Status: domain.AssetStatusActive},
		&domain.Asset{ID: "a-2", CompanyID: "comp-1", Status: domain.AssetStatusInRepair},
		&domain.Asset{ID: "a-3", CompanyID: "comp-2", Status: domain.AssetStatusRetired},
	)
	companies := newFakeCompanyRepo(
		&domain.Company{ID: "comp-1", Name: "Acme"},
		&domain.Company{ID: "comp-2", Name: "Globex"},
	)
	return tickets, assets, companies
}

func TestDashboardStatsAdmin(t *testing.T) {
	tickets, assets, companies := dashboardFixture()
	svc := NewDashboardService(tickets, assets, companies, nil, 0, zap.NewNop())

	stats, err := svc.Stats(context.Background(), adminUser)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Tickets.Total != 4 || stats.Tickets.Open != 1 || stats.Tickets.InProgress != 1 || stats.Tickets.Resolved != 2 {
		t.Errorf("ticket stats = %+v", stats.Tickets)
	}
	if stats.Assets.Total != 3 || stats.Assets.Active != 1 || stats.Assets.InRepair != 1 {
		t.Errorf("asset stats = %+v", stats.Assets)
	}
	if stats.Companies != 2 {
		t.Errorf("companies = %d, want 2", stats.Companies)
	}
	if len(stats.RecentTickets) != 4 {
		t.Fatalf("recent = %d, want 4", len(stats.RecentTickets))
	}
	// Newest first.
	if stats.RecentTickets[0].ID != "t-4" {
		t.Errorf("recent[0] = %s, want t-4", stats.RecentTickets[0].ID)
	}
}

func TestDashboardStatsClientScope(t *testing.T) {
	tickets, assets, companies := dashboardFixture()
	svc := NewDashboardService(tickets, assets, companies, nil, 0, zap.NewNop())

	stats, err := svc.Stats(context.Background(), clientUser("comp-1"))
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Tickets.Total != 2 {
		t.Errorf("ticket total = %d, want 2", stats.Tickets.Total)
	}
	if stats.Assets.Total != 2 {
		t.Errorf("asset total = %d, want 2", stats.Assets.Total)
	}
	// Company counts are an operator view; clients get zero.
	if stats.Companies != 0 {
		t.Errorf("companies = %d, want 0 for client", stats.Companies)
	}
	for _, ticket := range stats.RecentTickets {
		if ticket.ID != "t-1" && ticket.ID != "t-2" {
			t.Errorf("foreign ticket %s in client feed", ticket.ID)
		}
	}
}
