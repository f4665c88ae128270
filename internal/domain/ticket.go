package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether the status is one of the recognized values.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// Terminal reports whether the status carries a resolution timestamp.
func (s TicketStatus) Terminal() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}

// Ticket is the aggregate for service requests and incidents.
type Ticket struct {
	ID              string
	CompanyID       string
	AssetID         *string
	ServiceID       *string
	Title           string
	Category        *string
	Priority        *string
	Status          TicketStatus
	Requester       *string
	AssignedTo      *string
	CreatedBy       string
	Description     string
	MaintenanceLog  *string
	FinalResolution *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ResolvedAt      *time.Time
}

// TicketUpdate is a partial update applied by the lifecycle manager.
// Nil fields are left untouched.
type TicketUpdate struct {
	Status          *TicketStatus
	AssignedTo      *string
	Title           *string
	Description     *string
	Category        *string
	Priority        *string
	Requester       *string
	MaintenanceLog  *string
	FinalResolution *string
}
