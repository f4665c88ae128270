package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
	"github.com/spec-kit/itsm-backoffice/internal/repository"
	apperrors "github.com/spec-kit/itsm-backoffice/pkg/util"
)

// logo uploads are capped so the config document stays small.
const maxLogoBytes = 2 << 20

// SystemService manages the singleton branding configuration.
type SystemService struct {
	config repository.SystemConfigRepository

	Now func() time.Time
}

// SystemConfigUpdate is a partial update; nil fields are untouched.
type SystemConfigUpdate struct {
	CompanyName *string
	LogoBase64  *string
}

// NewSystemService constructs the service.
func NewSystemService(config repository.SystemConfigRepository) *SystemService {
	return &SystemService{config: config, Now: time.Now}
}

// Get returns the current configuration, defaulting when none was stored yet.
func (s *SystemService) Get(ctx context.Context) (*domain.SystemConfig, error) {
	cfg, err := s.config.Get(ctx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &domain.SystemConfig{ID: domain.SystemConfigID}, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Update applies a partial configuration change.
func (s *SystemService) Update(ctx context.Context, update SystemConfigUpdate) (*domain.SystemConfig, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if update.CompanyName != nil {
		cfg.CompanyName = strings.TrimSpace(*update.CompanyName)
	}
	if update.LogoBase64 != nil {
		if err := validateLogo(*update.LogoBase64); err != nil {
			return nil, err
		}
		cfg.LogoBase64 = update.LogoBase64
	}
	cfg.UpdatedAt = s.Now().UTC()
	if err := s.config.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UploadLogo stores raw image bytes as a base64 data URI.
func (s *SystemService) UploadLogo(ctx context.Context, contentType string, data []byte) (*domain.SystemConfig, error) {
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("empty logo upload", nil)
	}
	if len(data) > maxLogoBytes {
		return nil, apperrors.NewValidationError("logo too large", map[string]any{"max_bytes": maxLogoBytes})
	}
	switch contentType {
	case "image/png", "image/jpeg", "image/jpg", "image/gif":
	default:
		return nil, apperrors.NewValidationError("unsupported logo content type", map[string]any{"content_type": contentType})
	}
	uri := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	return s.Update(ctx, SystemConfigUpdate{LogoBase64: &uri})
}

func validateLogo(uri string) error {
	if !strings.HasPrefix(uri, "data:image/") || !strings.Contains(uri, ";base64,") {
		return apperrors.NewValidationError("logo must be a base64 image data uri", nil)
	}
	payload := uri[strings.Index(uri, ";base64,")+len(";base64,"):]
	if len(payload) > (maxLogoBytes/3+1)*4 {
		return apperrors.NewValidationError("logo too large", map[string]any{"max_bytes": maxLogoBytes})
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return apperrors.NewValidationError("logo payload is not valid base64", nil)
	}
	return nil
}
