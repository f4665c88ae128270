package service

import (
	"time"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

// warningThreshold is the fraction of the SLA window remaining below which a
// warning alert is raised.
const warningThreshold = 0.2

// EvaluateSLA measures one ticket against each of the given contracts and
// returns zero or more alerts, one per contract at most. The function is
// pure: all state comes in through its arguments, and time arithmetic is
// done on UTC instants.
//
// For each contract the deadline is the ticket creation instant plus the
// contract's SLA bound. A ticket exactly at its deadline is breached with
// zero hours overdue, not a warning. Within the last 20% of the window the
// ticket is in warning. Contracts with a non-positive SLA bound are skipped;
// callers are expected to log them.
func EvaluateSLA(ticket *domain.Ticket, contracts []domain.Contract, now time.Time) []domain.SLAAlert {
	now = now.UTC()

	var alerts []domain.SLAAlert
	for _, contract := range contracts {
		if contract.SLAHours <= 0 {
			continue
		}

		deadline := ticket.CreatedAt.UTC().Add(time.Duration(contract.SLAHours) * time.Hour)
		remaining := deadline.Sub(now).Hours()

		switch {
		case remaining <= 0:
			overdue := -remaining
			alerts = append(alerts, domain.SLAAlert{
				TicketID:     ticket.ID,
				TicketTitle:  ticket.Title,
				CompanyID:    ticket.CompanyID,
				SLAHours:     contract.SLAHours,
				Status:       domain.SLAAlertBreached,
				HoursOverdue: &overdue,
			})
		case remaining <= float64(contract.SLAHours)*warningThreshold:
			left := remaining
			alerts = append(alerts, domain.SLAAlert{
				TicketID:       ticket.ID,
				TicketTitle:    ticket.Title,
				CompanyID:      ticket.CompanyID,
				SLAHours:       contract.SLAHours,
				Status:         domain.SLAAlertWarning,
				HoursRemaining: &left,
			})
		}
	}
	return alerts
}
