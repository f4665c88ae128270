package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
	"github.com/spec-kit/itsm-backoffice/internal/repository"
)

// SLAService looks up active contracts and aggregates SLA alerts across the
// open ticket population. It holds no state between invocations: every
// collection is a fresh read-then-compute pass over the store.
type SLAService struct {
	tickets   repository.TicketRepository
	contracts repository.ContractRepository
	logger    *zap.Logger

	// Now is injectable for tests.
	Now func() time.Time
}

// AlertScope restricts which tickets are evaluated.
type AlertScope struct {
	CompanyID *string
}

// ScopeFor derives the alert scope for a caller. Clients are always pinned
// to their own company regardless of any explicit filter.
func ScopeFor(actor *domain.User, explicitCompanyID *string) AlertScope {
	if actor.Role == domain.RoleClient {
		return AlertScope{CompanyID: actor.CompanyID}
	}
	return AlertScope{CompanyID: explicitCompanyID}
}

// NewSLAService constructs the service.
func NewSLAService(tickets repository.TicketRepository, contracts repository.ContractRepository, logger *zap.Logger) *SLAService {
	return &SLAService{
		tickets:   tickets,
		contracts: contracts,
		logger:    logger,
		Now:       time.Now,
	}
}

// ActiveContractsFor returns the company's active contracts. No contracts is
// a normal outcome, not an error.
func (s *SLAService) ActiveContractsFor(ctx context.Context, companyID string) ([]domain.Contract, error) {
	return s.contracts.ListActiveByCompany(ctx, companyID)
}

// CollectAlerts evaluates every open and in-progress ticket in scope against
// its company's active contracts and returns the flattened alert list,
// sorted by ticket id then SLA bound so output is deterministic. Tickets in
// a terminal status are never evaluated. Store failures abort the whole
// collection; a partial result is never returned.
func (s *SLAService) CollectAlerts(ctx context.Context, scope AlertScope) ([]domain.SLAAlert, error) {
	tickets, err := s.tickets.List(ctx, repository.TicketFilter{
		CompanyID: scope.CompanyID,
		Statuses:  []domain.TicketStatus{domain.TicketStatusOpen, domain.TicketStatusInProgress},
	})
	if err != nil {
		return nil, err
	}

	now := s.Now().UTC()
	alerts := make([]domain.SLAAlert, 0)
	for i := range tickets {
		ticket := &tickets[i]
		contracts, err := s.contracts.ListActiveByCompany(ctx, ticket.CompanyID)
		if err != nil {
			return nil, err
		}
		for _, contract := range contracts {
			if contract.SLAHours <= 0 {
				s.logger.Warn("contract with non-positive sla bound excluded from evaluation",
					zap.String("contract_id", contract.ID),
					zap.String("company_id", contract.CompanyID),
					zap.Int("sla_hours", contract.SLAHours),
				)
			}
		}
		alerts = append(alerts, EvaluateSLA(ticket, contracts, now)...)
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].TicketID != alerts[j].TicketID {
			return alerts[i].TicketID < alerts[j].TicketID
		}
		return alerts[i].SLAHours < alerts[j].SLAHours
	})
	return alerts, nil
}
