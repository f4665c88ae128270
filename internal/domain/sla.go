package domain

// SLAAlertStatus classifies an SLA alert.
type SLAAlertStatus string

const (
	SLAAlertBreached SLAAlertStatus = "breached"
	SLAAlertWarning  SLAAlertStatus = "warning"
)

// SLAAlert is a derived, never-persisted view of a ticket measured against
// one active contract. A ticket with N active contracts yields up to N
// independent alerts. Exactly one of HoursOverdue and HoursRemaining is set:
// HoursOverdue for breached alerts (zero at the deadline itself),
// HoursRemaining for warnings.
type SLAAlert struct {
	TicketID       string         `json:"ticket_id"`
	TicketTitle    string         `json:"ticket_title"`
	CompanyID      string         `json:"company_id"`
	SLAHours       int            `json:"sla_hours"`
	Status         SLAAlertStatus `json:"status"`
	HoursOverdue   *float64       `json:"hours_overdue,omitempty"`
	HoursRemaining *float64       `json:"hours_remaining,omitempty"`
}
