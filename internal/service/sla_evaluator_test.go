package service

import (
	"testing"
	"time"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

func slaTicket(id string, createdAt time.Time) *domain.Ticket {
	return &domain.Ticket{
		ID:        id,
		CompanyID: "comp-1",
		Title:     "server down",
		Status:    domain.TicketStatusOpen,
		CreatedAt: createdAt,
	}
}

func slaContract(id string, hours int) domain.Contract {
	return domain.Contract{
		ID:        id,
		CompanyID: "comp-1",
		ServiceID: "svc-1",
		SLAHours:  hours,
		Status:    domain.ContractStatusActive,
	}
}

func TestEvaluateSLA(t *testing.T) {
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		slaHours      int
		elapsed       time.Duration
		wantStatus    domain.SLAAlertStatus
		wantOverdue   *float64
		wantRemaining *float64
		wantNoAlert   bool
	}{
		{
			name:        "well within window",
			slaHours:    10,
			elapsed:     2 * time.Hour,
			wantNoAlert: true,
		},
		{
			name:        "just above warning threshold",
			slaHours:    10,
			elapsed:     7*time.Hour + 59*time.Minute,
			wantNoAlert: true,
		},
		{
			name:          "warning at exactly twenty percent remaining",
			slaHours:      10,
			elapsed:       8 * time.Hour,
			wantStatus:    domain.SLAAlertWarning,
			wantRemaining: float64Ptr(2),
		},
		{
			name:          "warning one hour before deadline",
			slaHours:      10,
			elapsed:       9 * time.Hour,
			wantStatus:    domain.SLAAlertWarning,
			wantRemaining: float64Ptr(1),
		},
		{
			name:        "breached exactly at deadline with zero overdue",
			slaHours:    10,
			elapsed:     10 * time.Hour,
			wantStatus:  domain.SLAAlertBreached,
			wantOverdue: float64Ptr(0),
		},
		{
			name:        "breached one hour past deadline",
			slaHours:    10,
			elapsed:     11 * time.Hour,
			wantStatus:  domain.SLAAlertBreached,
			wantOverdue: float64Ptr(1),
		},
		{
			name:        "non-positive sla bound skipped",
			slaHours:    0,
			elapsed:     100 * time.Hour,
			wantNoAlert: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := slaTicket("t-1", created)
			now := created.Add(tt.elapsed)
			alerts := EvaluateSLA(ticket, []domain.Contract{slaContract("c-1", tt.slaHours)}, now)

			if tt.wantNoAlert {
				if len(alerts) != 0 {
					t.Fatalf("expected no alerts, got %+v", alerts)
				}
				return
			}
			if len(alerts) != 1 {
				t.Fatalf("expected 1 alert, got %d", len(alerts))
			}
			alert := alerts[0]
			if alert.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", alert.Status, tt.wantStatus)
			}
			if alert.TicketID != "t-1" || alert.CompanyID != "comp-1" || alert.TicketTitle != "server down" {
				t.Errorf("alert identity fields wrong: %+v", alert)
			}
			if alert.SLAHours != tt.slaHours {
				t.Errorf("sla_hours = %d, want %d", alert.SLAHours, tt.slaHours)
			}
			checkHoursField(t, "hours_overdue", alert.HoursOverdue, tt.wantOverdue)
			checkHoursField(t, "hours_remaining", alert.HoursRemaining, tt.wantRemaining)
		})
	}
}

func TestEvaluateSLAMultipleContracts(t *testing.T) {
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	ticket := slaTicket("t-9", created)
	contracts := []domain.Contract{
		slaContract("c-short", 4),
		slaContract("c-long", 48),
	}

	// Five hours in: the 4h contract is breached, the 48h contract silent.
	now := created.Add(5 * time.Hour)
	alerts := EvaluateSLA(ticket, contracts, now)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Status != domain.SLAAlertBreached || alerts[0].SLAHours != 4 {
		t.Errorf("unexpected alert: %+v", alerts[0])
	}
	if alerts[0].HoursOverdue == nil || *alerts[0].HoursOverdue != 1 {
		t.Errorf("hours_overdue = %v, want 1", alerts[0].HoursOverdue)
	}

	// Forty hours in: both contracts fire independently.
	now = created.Add(40 * time.Hour)
	alerts = EvaluateSLA(ticket, contracts, now)
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
}

func TestEvaluateSLANoContracts(t *testing.T) {
	ticket := slaTicket("t-1", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	if alerts := EvaluateSLA(ticket, nil, time.Now()); len(alerts) != 0 {
		t.Fatalf("expected no alerts without contracts, got %+v", alerts)
	}
}

func checkHoursField(t *testing.T, name string, got, want *float64) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Errorf("%s = %v, want unset", name, *got)
		}
		return
	}
	if got == nil {
		t.Errorf("%s unset, want %v", name, *want)
		return
	}
	if diff := *got - *want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("%s = %v, want %v", name, *got, *want)
	}
}

func float64Ptr(v float64) *float64 { return &v }
