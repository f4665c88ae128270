package dto

import (
	"time"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

// CompanyRequest payload for create and update.
type CompanyRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// CompanyResponse response.
type CompanyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewCompanyResponse maps a domain company.
func NewCompanyResponse(company *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:            company.ID,
		Name:          company.Name,
		ContactPerson: company.ContactPerson,
		Email:         company.Email,
		Phone:         company.Phone,
		Address:       company.Address,
		CreatedAt:     company.CreatedAt,
	}
}
