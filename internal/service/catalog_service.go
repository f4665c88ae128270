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

// CatalogService handles the managed service catalog.
type CatalogService struct {
	services repository.ManagedServiceRepository

	Now   func() time.Time
	NewID func() string
}

// NewCatalogService constructs the service.
func NewCatalogService(services repository.ManagedServiceRepository) *CatalogService {
	return &CatalogService{services: services, Now: time.Now, NewID: uuid.NewString}
}

// Create registers a managed service for a company.
func (s *CatalogService) Create(ctx context.Context, svc *domain.ManagedService) (*domain.ManagedService, error) {
	if strings.TrimSpace(svc.CompanyID) == "" || strings.TrimSpace(svc.ServiceName) == "" {
		return nil, apperrors.NewValidationError("company_id and service_name required", nil)
	}
	svc.ID = s.NewID()
	svc.CreatedAt = s.Now().UTC()
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// List returns managed services visible to the actor.
func (s *CatalogService) List(ctx context.Context, actor *domain.User, companyID *string) ([]domain.ManagedService, error) {
	if actor.Role == domain.RoleClient {
		if actor.CompanyID == nil {
			return []domain.ManagedService{}, nil
		}
		companyID = actor.CompanyID
	}
	services, err := s.services.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []domain.ManagedService{}
	}
	return services, nil
}

// Get fetches one managed service.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.ManagedService, error) {
	return s.services.GetByID(ctx, id)
}

// Update replaces the mutable fields of a managed service.
func (s *CatalogService) Update(ctx context.Context, id string, svc *domain.ManagedService) (*domain.ManagedService, error) {
	svc.ID = id
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return s.services.GetByID(ctx, id)
}

// Delete removes a managed service.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}
