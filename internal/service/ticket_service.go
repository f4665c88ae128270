package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/itsm-backoffice/internal/config"
	"github.com/spec-kit/itsm-backoffice/internal/domain"
	"github.com/spec-kit/itsm-backoffice/internal/events"
	"github.com/spec-kit/itsm-backoffice/internal/repository"
	apperrors "github.com/spec-kit/itsm-backoffice/pkg/util"
)

// TicketService coordinates the ticket lifecycle.
type TicketService struct {
	tickets    repository.TicketRepository
	notes      repository.TicketNoteRepository
	dispatcher events.Dispatcher

	clearResolvedOnReopen bool

	// Now and NewID are injectable for tests.
	Now   func() time.Time
	NewID func() string
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	NoteRepo   repository.TicketNoteRepository
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	CompanyID   string
	AssetID     *string
	ServiceID   *string
	Title       string
	Category    *string
	Priority    *string
	Requester   *string
	AssignedTo  *string
	Description string
}

// TicketListInput describes listing filters.
type TicketListInput struct {
	CompanyID *string
	Status    *domain.TicketStatus
}

// NewTicketService constructs the service.
func NewTicketService(cfg config.TicketConfig, deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:               deps.TicketRepo,
		notes:                 deps.NoteRepo,
		dispatcher:            deps.Dispatcher,
		clearResolvedOnReopen: cfg.ClearResolvedOnReopen,
		Now:                   time.Now,
		NewID:                 uuid.NewString,
	}
}

// Create opens a new ticket; every authenticated role may report issues.
func (s *TicketService) Create(ctx context.Context, actor *domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.CompanyID) == "" || strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("company_id, title, description required", nil)
	}

	now := s.Now().UTC()
	ticket := &domain.Ticket{
		ID:          s.NewID(),
		CompanyID:   input.CompanyID,
		AssetID:     input.AssetID,
		ServiceID:   input.ServiceID,
		Title:       strings.TrimSpace(input.Title),
		Category:    input.Category,
		Priority:    input.Priority,
		Status:      domain.TicketStatusOpen,
		Requester:   input.Requester,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   actor.ID,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketCreatedPayload{
			CompanyID: ticket.CompanyID,
			Title:     ticket.Title,
			Priority:  ticket.Priority,
		},
	})
	return ticket, nil
}

// List returns tickets visible to the actor. Clients are pinned to their own
// company; technicians see tickets assigned to them or to nobody.
func (s *TicketService) List(ctx context.Context, actor *domain.User, input TicketListInput) ([]domain.Ticket, error) {
	filter := repository.TicketFilter{CompanyID: input.CompanyID}
	if input.Status != nil {
		filter.Statuses = []domain.TicketStatus{*input.Status}
	}

	switch actor.Role {
	case domain.RoleClient:
		if actor.CompanyID == nil {
			return []domain.Ticket{}, nil
		}
		filter.CompanyID = actor.CompanyID
	case domain.RoleTechnician:
		filter.AssignedToOrUnassigned = &actor.ID
	}

	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

// Get fetches one ticket, enforcing company scope for client callers.
func (s *TicketService) Get(ctx context.Context, actor *domain.User, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleClient {
		if actor.CompanyID == nil || *actor.CompanyID != ticket.CompanyID {
			return nil, apperrors.NewForbidden("ticket belongs to another company")
		}
	}
	return ticket, nil
}

// Transition applies a partial update to one ticket.
//
// Only admins and technicians may transition tickets. Any status may move to
// any other status: operators reopen closed tickets, so no transition graph
// is enforced. The update timestamp always advances; the resolution
// timestamp is stamped exactly once, when the ticket first reaches a
// terminal status, and is kept on reopen unless the service was configured
// to clear it.
func (s *TicketService) Transition(ctx context.Context, actor *domain.User, ticketID string, update domain.TicketUpdate) (*domain.Ticket, error) {
	if !actor.Role.CanManageTickets() {
		return nil, apperrors.NewForbidden("only admins and technicians can update tickets")
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, apperrors.NewValidationError("unknown ticket status", map[string]any{"status": string(*update.Status)})
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	oldStatus := ticket.Status
	oldAssignee := ticket.AssignedTo
	applyTicketUpdate(ticket, update)

	now := s.Now().UTC()
	ticket.UpdatedAt = now
	if ticket.Status.Terminal() {
		if ticket.ResolvedAt == nil {
			ticket.ResolvedAt = &now
		}
	} else if s.clearResolvedOnReopen {
		ticket.ResolvedAt = nil
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	if ticket.Status != oldStatus {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketStatusChanged,
			TicketID: ticket.ID,
			ActorID:  actor.ID,
			Payload: events.TicketStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: ticket.Status,
			},
		})
	}
	if !equalStringPtr(ticket.AssignedTo, oldAssignee) {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketAssigned,
			TicketID: ticket.ID,
			ActorID:  actor.ID,
			Payload:  events.TicketAssignedPayload{AssignedTo: ticket.AssignedTo},
		})
	}
	return ticket, nil
}

// Delete removes a ticket permanently.
func (s *TicketService) Delete(ctx context.Context, ticketID string) error {
	return s.tickets.Delete(ctx, ticketID)
}

// AddNote appends a free-form note to a ticket.
func (s *TicketService) AddNote(ctx context.Context, actor *domain.User, ticketID, text string) (*domain.TicketNote, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("note required", nil)
	}
	note := &domain.TicketNote{
		ID:        s.NewID(),
		TicketID:  ticketID,
		UserID:    actor.ID,
		Note:      strings.TrimSpace(text),
		CreatedAt: s.Now().UTC(),
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// ListNotes returns the notes of one ticket in creation order.
func (s *TicketService) ListNotes(ctx context.Context, ticketID string) ([]domain.TicketNote, error) {
	notes, err := s.notes.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []domain.TicketNote{}
	}
	return notes, nil
}

func applyTicketUpdate(ticket *domain.Ticket, update domain.TicketUpdate) {
	if update.Status != nil {
		ticket.Status = *update.Status
	}
	if update.AssignedTo != nil {
		ticket.AssignedTo = update.AssignedTo
	}
	if update.Title != nil {
		ticket.Title = *update.Title
	}
	if update.Description != nil {
		ticket.Description = *update.Description
	}
	if update.Category != nil {
		ticket.Category = update.Category
	}
	if update.Priority != nil {
		ticket.Priority = update.Priority
	}
	if update.Requester != nil {
		ticket.Requester = update.Requester
	}
	if update.MaintenanceLog != nil {
		ticket.MaintenanceLog = update.MaintenanceLog
	}
	if update.FinalResolution != nil {
		ticket.FinalResolution = update.FinalResolution
	}
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = s.NewID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.Now().UTC()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
