package domain

import "time"

// ManagedService is a contracted service delivered to a company
// (hosting, email, licensing and similar).
type ManagedService struct {
	ID          string
	CompanyID   string
	ServiceType *string
	ServiceName string
	Description *string

	StartDate      *string
	ExpirationDate *string
	BillingPeriod  *string
	Cost           *string

	ExternalProvider *string
	AssociatedDomain *string

	CreatedAt time.Time
}
