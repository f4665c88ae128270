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

// AssetService handles asset inventory maintenance.
type AssetService struct {
	assets repository.AssetRepository

	Now   func() time.Time
	NewID func() string
}

// NewAssetService constructs the service.
func NewAssetService(assets repository.AssetRepository) *AssetService {
	return &AssetService{assets: assets, Now: time.Now, NewID: uuid.NewString}
}

// Create registers an asset for a company.
func (s *AssetService) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	if strings.TrimSpace(asset.CompanyID) == "" {
		return nil, apperrors.NewValidationError("company_id required", nil)
	}
	asset.ID = s.NewID()
	if asset.Status == "" {
		asset.Status = domain.AssetStatusActive
	}
	asset.CreatedAt = s.Now().UTC()
	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// List returns assets visible to the actor; clients see only their company's.
func (s *AssetService) List(ctx context.Context, actor *domain.User, filter repository.AssetFilter) ([]domain.Asset, error) {
	if actor.Role == domain.RoleClient {
		if actor.CompanyID == nil {
			return []domain.Asset{}, nil
		}
		filter.CompanyID = actor.CompanyID
	}
	assets, err := s.assets.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return assets, nil
}

// Get fetches one asset.
func (s *AssetService) Get(ctx context.Context, id string) (*domain.Asset, error) {
	return s.assets.GetByID(ctx, id)
}

// Update replaces the mutable fields of an asset.
func (s *AssetService) Update(ctx context.Context, id string, asset *domain.Asset) (*domain.Asset, error) {
	asset.ID = id
	if asset.Status == "" {
		asset.Status = domain.AssetStatusActive
	}
	if err := s.assets.Update(ctx, asset); err != nil {
		return nil, err
	}
	return s.assets.GetByID(ctx, id)
}

// Delete removes an asset.
func (s *AssetService) Delete(ctx context.Context, id string) error {
	return s.assets.Delete(ctx, id)
}
