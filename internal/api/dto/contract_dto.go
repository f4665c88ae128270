package dto

import (
	"time"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

// ContractRequest payload for create and update.
type ContractRequest struct {
	CompanyID string                `json:"company_id"`
	ServiceID string                `json:"service_id"`
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	SLAHours  int                   `json:"sla_hours"`
	Terms     string                `json:"terms"`
	Status    domain.ContractStatus `json:"status"`
}

// ContractResponse response.
type ContractResponse struct {
	ID        string                `json:"id"`
	CompanyID string                `json:"company_id"`
	ServiceID string                `json:"service_id"`
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	SLAHours  int                   `json:"sla_hours"`
	Terms     string                `json:"terms"`
	Status    domain.ContractStatus `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
}

// NewContractResponse maps a domain contract.
func NewContractResponse(contract *domain.Contract) ContractResponse {
	return ContractResponse{
		ID:        contract.ID,
		CompanyID: contract.CompanyID,
		ServiceID: contract.ServiceID,
		StartDate: contract.StartDate,
		EndDate:   contract.EndDate,
		SLAHours:  contract.SLAHours,
		Terms:     contract.Terms,
		Status:    contract.Status,
		CreatedAt: contract.CreatedAt,
	}
}
