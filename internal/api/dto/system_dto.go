package dto

import (
	"time"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

// SystemConfigRequest payload; absent fields stay unchanged.
type SystemConfigRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	LogoBase64  *string `json:"logo_base64,omitempty"`
}

// SystemConfigResponse response.
type SystemConfigResponse struct {
	CompanyName string    `json:"company_name"`
	LogoBase64  *string   `json:"logo_base64,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSystemConfigResponse maps the singleton config.
func NewSystemConfigResponse(cfg *domain.SystemConfig) SystemConfigResponse {
	return SystemConfigResponse{
		CompanyName: cfg.CompanyName,
		LogoBase64:  cfg.LogoBase64,
		UpdatedAt:   cfg.UpdatedAt,
	}
}
