package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
	"github.com/spec-kit/itsm-backoffice/internal/repository"
	apperrors "github.com/spec-kit/itsm-backoffice/pkg/util"
)

// ContractService handles SLA contract administration.
type ContractService struct {
	contracts repository.ContractRepository

	Now   func() time.Time
	NewID func() string
}

// ContractInput describes create/update payloads.
type ContractInput struct {
	CompanyID string
	ServiceID string
	StartDate string
	EndDate   string
	SLAHours  int
	Terms     string
	Status    domain.ContractStatus
}

// NewContractService constructs the service.
func NewContractService(contracts repository.ContractRepository) *ContractService {
	return &ContractService{contracts: contracts, Now: time.Now, NewID: uuid.NewString}
}

// Create registers a contract. The SLA bound must be positive; a company may
// hold any number of simultaneously active contracts.
func (s *ContractService) Create(ctx context.Context, input ContractInput) (*domain.Contract, error) {
	if err := validateContractInput(input); err != nil {
		return nil, err
	}
	contract := &domain.Contract{
		ID:        s.NewID(),
		CompanyID: input.CompanyID,
		ServiceID: input.ServiceID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		SLAHours:  input.SLAHours,
		Terms:     input.Terms,
		Status:    input.Status,
		CreatedAt: s.Now().UTC(),
	}
	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// List returns contracts visible to the actor.
func (s *ContractService) List(ctx context.Context, actor *domain.User, companyID *string) ([]domain.Contract, error) {
	if actor.Role == domain.RoleClient {
		if actor.CompanyID == nil {
			return []domain.Contract{}, nil
		}
		companyID = actor.CompanyID
	}
	contracts, err := s.contracts.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if contracts == nil {
		contracts = []domain.Contract{}
	}
	return contracts, nil
}

// Update replaces the mutable fields of a contract.
func (s *ContractService) Update(ctx context.Context, id string, input ContractInput) (*domain.Contract, error) {
	if err := validateContractInput(input); err != nil {
		return nil, err
	}
	contract := &domain.Contract{
		ID:        id,
		CompanyID: input.CompanyID,
		ServiceID: input.ServiceID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		SLAHours:  input.SLAHours,
		Terms:     input.Terms,
		Status:    input.Status,
	}
	if err := s.contracts.Update(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// Delete removes a contract.
func (s *ContractService) Delete(ctx context.Context, id string) error {
	return s.contracts.Delete(ctx, id)
}

func validateContractInput(input ContractInput) error {
	if strings.TrimSpace(input.CompanyID) == "" || strings.TrimSpace(input.ServiceID) == "" {
		return apperrors.NewValidationError("company_id and service_id required", nil)
	}
	if input.SLAHours <= 0 {
		return apperrors.NewValidationError("sla_hours must be positive", map[string]any{"sla_hours": input.SLAHours})
	}
	switch input.Status {
	case domain.ContractStatusActive, domain.ContractStatusExpired, domain.ContractStatusCancelled:
	default:
		return apperrors.NewValidationError("unknown contract status", map[string]any{"status": string(input.Status)})
	}
	return nil
}
