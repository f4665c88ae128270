package dto

import (
	"time"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	CompanyID   string  `json:"company_id"`
	AssetID     *string `json:"asset_id,omitempty"`
	ServiceID   *string `json:"service_id,omitempty"`
	Title       string  `json:"title"`
	Category    *string `json:"category,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Requester   *string `json:"requester,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
	Description string  `json:"description"`
}

// UpdateTicketRequest carries a partial update; absent fields stay unchanged.
type UpdateTicketRequest struct {
	Status          *domain.TicketStatus `json:"status,omitempty"`
	AssignedTo      *string              `json:"assigned_to,omitempty"`
	Title           *string              `json:"title,omitempty"`
	Description     *string              `json:"description,omitempty"`
	Category        *string              `json:"category,omitempty"`
	Priority        *string              `json:"priority,omitempty"`
	Requester       *string              `json:"requester,omitempty"`
	MaintenanceLog  *string              `json:"maintenance_log,omitempty"`
	FinalResolution *string              `json:"final_resolution,omitempty"`
}

// TicketResponse response.
type TicketResponse struct {
	ID              string              `json:"id"`
	CompanyID       string              `json:"company_id"`
	AssetID         *string             `json:"asset_id,omitempty"`
	ServiceID       *string             `json:"service_id,omitempty"`
	Title           string              `json:"title"`
	Category        *string             `json:"category,omitempty"`
	Priority        *string             `json:"priority,omitempty"`
	Status          domain.TicketStatus `json:"status"`
	Requester       *string             `json:"requester,omitempty"`
	AssignedTo      *string             `json:"assigned_to,omitempty"`
	CreatedBy       string              `json:"created_by"`
	Description     string              `json:"description"`
	MaintenanceLog  *string             `json:"maintenance_log,omitempty"`
	FinalResolution *string             `json:"final_resolution,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	ResolvedAt      *time.Time          `json:"resolved_at,omitempty"`
}

// CreateTicketNoteRequest payload.
type CreateTicketNoteRequest struct {
	Note string `json:"note"`
}

// TicketNoteResponse response.
type TicketNoteResponse struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	UserID    string    `json:"user_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUpdate maps the request to the domain partial update.
func (r UpdateTicketRequest) ToUpdate() domain.TicketUpdate {
	return domain.TicketUpdate{
		Status:          r.Status,
		AssignedTo:      r.AssignedTo,
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		Priority:        r.Priority,
		Requester:       r.Requester,
		MaintenanceLog:  r.MaintenanceLog,
		FinalResolution: r.FinalResolution,
	}
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:              ticket.ID,
		CompanyID:       ticket.CompanyID,
		AssetID:         ticket.AssetID,
		ServiceID:       ticket.ServiceID,
		Title:           ticket.Title,
		Category:        ticket.Category,
		Priority:        ticket.Priority,
		Status:          ticket.Status,
		Requester:       ticket.Requester,
		AssignedTo:      ticket.AssignedTo,
		CreatedBy:       ticket.CreatedBy,
		Description:     ticket.Description,
		MaintenanceLog:  ticket.MaintenanceLog,
		FinalResolution: ticket.FinalResolution,
		CreatedAt:       ticket.CreatedAt,
		UpdatedAt:       ticket.UpdatedAt,
		ResolvedAt:      ticket.ResolvedAt,
	}
}

// NewTicketNoteResponse maps a domain note.
func NewTicketNoteResponse(note *domain.TicketNote) TicketNoteResponse {
	return TicketNoteResponse{
		ID:        note.ID,
		TicketID:  note.TicketID,
		UserID:    note.UserID,
		Note:      note.Note,
		CreatedAt: note.CreatedAt,
	}
}
