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

// CompanyService handles company directory maintenance.
type CompanyService struct {
	companies repository.CompanyRepository

	Now   func() time.Time
	NewID func() string
}

// CompanyInput describes create/update payloads.
type CompanyInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
}

// NewCompanyService constructs the service.
func NewCompanyService(companies repository.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies, Now: time.Now, NewID: uuid.NewString}
}

// Create registers a new company.
func (s *CompanyService) Create(ctx context.Context, input CompanyInput) (*domain.Company, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	company := &domain.Company{
		ID:            s.NewID(),
		Name:          strings.TrimSpace(input.Name),
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		CreatedAt:     s.Now().UTC(),
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// List returns companies visible to the actor; clients see only their own.
func (s *CompanyService) List(ctx context.Context, actor *domain.User) ([]domain.Company, error) {
	var onlyID *string
	if actor.Role == domain.RoleClient {
		if actor.CompanyID == nil {
			return []domain.Company{}, nil
		}
		onlyID = actor.CompanyID
	}
	companies, err := s.companies.List(ctx, onlyID)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return companies, nil
}

// Get fetches one company.
func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	return s.companies.GetByID(ctx, id)
}

// Update replaces the mutable fields of a company.
func (s *CompanyService) Update(ctx context.Context, id string, input CompanyInput) (*domain.Company, error) {
	company := &domain.Company{
		ID:            id,
		Name:          strings.TrimSpace(input.Name),
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
	}
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return s.companies.GetByID(ctx, id)
}

// Delete removes a company.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	return s.companies.Delete(ctx, id)
}
