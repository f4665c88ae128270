package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

func newTestSLAService(tickets *fakeTicketRepo, contracts *fakeContractRepo, now time.Time) *SLAService {
	svc := NewSLAService(tickets, contracts, zap.NewNop())
	svc.Now = func() time.Time { return now }
	return svc
}

func TestCollectAlertsSkipsTerminalTickets(t *testing.T) {
	created := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	resolved := openTicket("t-resolved", "comp-1", created)
	resolved.Status = domain.TicketStatusResolved
	closed := openTicket("t-closed", "comp-1", created)
	closed.Status = domain.TicketStatusClosed
	tickets := newFakeTicketRepo(openTicket("t-open", "comp-1", created), resolved, closed)

	contracts := &fakeContractRepo{contracts: []domain.Contract{
		{ID: "c-1", CompanyID: "comp-1", SLAHours: 1, Status: domain.ContractStatusActive},
	}}

	// Far past every deadline: only the open ticket may alert.
	svc := newTestSLAService(tickets, contracts, created.Add(100*time.Hour))
	alerts, err := svc.CollectAlerts(context.Background(), AlertScope{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(alerts) != 1 || alerts[0].TicketID != "t-open" {
		t.Fatalf("alerts = %+v, want one for t-open", alerts)
	}
}

func TestCollectAlertsSortedByTicketThenBound(t *testing.T) {
	created := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	tickets := newFakeTicketRepo(
		openTicket("t-b", "comp-1", created),
		openTicket("t-a", "comp-1", created),
	)
	contracts := &fakeContractRepo{contracts: []domain.Contract{
		{ID: "c-long", CompanyID: "comp-1", SLAHours: 8, Status: domain.ContractStatusActive},
		{ID: "c-short", CompanyID: "comp-1", SLAHours: 2, Status: domain.ContractStatusActive},
	}}

	svc := newTestSLAService(tickets, contracts, created.Add(50*time.Hour))
	alerts, err := svc.CollectAlerts(context.Background(), AlertScope{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(alerts) != 4 {
		t.Fatalf("alerts = %d, want 4", len(alerts))
	}
	wantOrder := []struct {
		ticketID string
		slaHours int
	}{
		{"t-a", 2}, {"t-a", 8}, {"t-b", 2}, {"t-b", 8},
	}
	for i, want := range wantOrder {
		if alerts[i].TicketID != want.ticketID || alerts[i].SLAHours != want.slaHours {
			t.Errorf("alerts[%d] = (%s, %d), want (%s, %d)",
				i, alerts[i].TicketID, alerts[i].SLAHours, want.ticketID, want.slaHours)
		}
	}
}

func TestCollectAlertsCompanyScope(t *testing.T) {
	created := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	tickets := newFakeTicketRepo(
		openTicket("t-1", "comp-1", created),
		openTicket("t-2", "comp-2", created),
	)
	contracts := &fakeContractRepo{contracts: []domain.Contract{
		{ID: "c-1", CompanyID: "comp-1", SLAHours: 1, Status: domain.ContractStatusActive},
		{ID: "c-2", CompanyID: "comp-2", SLAHours: 1, Status: domain.ContractStatusActive},
	}}
	svc := newTestSLAService(tickets, contracts, created.Add(10*time.Hour))

	companyID := "comp-2"
	alerts, err := svc.CollectAlerts(context.Background(), AlertScope{CompanyID: &companyID})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(alerts) != 1 || alerts[0].CompanyID != "comp-2" {
		t.Fatalf("alerts = %+v, want only comp-2", alerts)
	}
}

func TestCollectAlertsNoContractsIsEmpty(t *testing.T) {
	created := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	tickets := newFakeTicketRepo(openTicket("t-1", "comp-1", created))
	svc := newTestSLAService(tickets, &fakeContractRepo{}, created.Add(10*time.Hour))

	alerts, err := svc.CollectAlerts(context.Background(), AlertScope{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("alerts = %+v, want empty", alerts)
	}
	if alerts == nil {
		t.Fatal("alerts nil, want empty slice")
	}
}

func TestCollectAlertsStoreFailureIsHardError(t *testing.T) {
	created := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	storeErr := errors.New("connection reset")

	t.Run("ticket listing fails", func(t *testing.T) {
		tickets := newFakeTicketRepo()
		tickets.listErr = storeErr
		svc := newTestSLAService(tickets, &fakeContractRepo{}, created)
		if _, err := svc.CollectAlerts(context.Background(), AlertScope{}); !errors.Is(err, storeErr) {
			t.Fatalf("err = %v, want wrapped store error", err)
		}
	})

	t.Run("contract lookup fails", func(t *testing.T) {
		tickets := newFakeTicketRepo(openTicket("t-1", "comp-1", created))
		contracts := &fakeContractRepo{listErr: storeErr}
		svc := newTestSLAService(tickets, contracts, created)
		if _, err := svc.CollectAlerts(context.Background(), AlertScope{}); !errors.Is(err, storeErr) {
			t.Fatalf("err = %v, want wrapped store error", err)
		}
	})
}

func TestScopeFor(t *testing.T) {
	explicit := "comp-other"

	t.Run("client pinned to own company", func(t *testing.T) {
		scope := ScopeFor(clientUser("comp-1"), &explicit)
		if scope.CompanyID == nil || *scope.CompanyID != "comp-1" {
			t.Fatalf("scope = %+v, want comp-1", scope)
		}
	})

	t.Run("admin may filter freely", func(t *testing.T) {
		scope := ScopeFor(adminUser, &explicit)
		if scope.CompanyID == nil || *scope.CompanyID != "comp-other" {
			t.Fatalf("scope = %+v, want comp-other", scope)
		}
	})

	t.Run("technician unfiltered by default", func(t *testing.T) {
		scope := ScopeFor(techUser, nil)
		if scope.CompanyID != nil {
			t.Fatalf("scope = %+v, want unrestricted", scope)
		}
	})
}
