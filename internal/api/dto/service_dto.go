package dto

import (
	"time"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

// ManagedServiceRequest payload for create and update.
type ManagedServiceRequest struct {
	CompanyID        string  `json:"company_id"`
	ServiceType      *string `json:"service_type,omitempty"`
	ServiceName      string  `json:"service_name"`
	Description      *string `json:"description,omitempty"`
	StartDate        *string `json:"start_date,omitempty"`
	ExpirationDate   *string `json:"expiration_date,omitempty"`
	BillingPeriod    *string `json:"billing_period,omitempty"`
	Cost             *string `json:"cost,omitempty"`
	ExternalProvider *string `json:"external_provider,omitempty"`
	AssociatedDomain *string `json:"associated_domain,omitempty"`
}

// ManagedServiceResponse response.
type ManagedServiceResponse struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"company_id"`
	ServiceType      *string   `json:"service_type,omitempty"`
	ServiceName      string    `json:"service_name"`
	Description      *string   `json:"description,omitempty"`
	StartDate        *string   `json:"start_date,omitempty"`
	ExpirationDate   *string   `json:"expiration_date,omitempty"`
	BillingPeriod    *string   `json:"billing_period,omitempty"`
	Cost             *string   `json:"cost,omitempty"`
	ExternalProvider *string   `json:"external_provider,omitempty"`
	AssociatedDomain *string   `json:"associated_domain,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToManagedService maps the request onto a domain record.
func (r ManagedServiceRequest) ToManagedService() *domain.ManagedService {
	return &domain.ManagedService{
		CompanyID:        r.CompanyID,
		ServiceType:      r.ServiceType,
		ServiceName:      r.ServiceName,
		Description:      r.Description,
		StartDate:        r.StartDate,
		ExpirationDate:   r.ExpirationDate,
		BillingPeriod:    r.BillingPeriod,
		Cost:             r.Cost,
		ExternalProvider: r.ExternalProvider,
		AssociatedDomain: r.AssociatedDomain,
	}
}

// NewManagedServiceResponse maps a domain record.
func NewManagedServiceResponse(svc *domain.ManagedService) ManagedServiceResponse {
	return ManagedServiceResponse{
		ID:               svc.ID,
		CompanyID:        svc.CompanyID,
		ServiceType:      svc.ServiceType,
		ServiceName:      svc.ServiceName,
		Description:      svc.Description,
		StartDate:        svc.StartDate,
		ExpirationDate:   svc.ExpirationDate,
		BillingPeriod:    svc.BillingPeriod,
		Cost:             svc.Cost,
		ExternalProvider: svc.ExternalProvider,
		AssociatedDomain: svc.AssociatedDomain,
		CreatedAt:        svc.CreatedAt,
	}
}
