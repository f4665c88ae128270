package domain

import "time"

// ContractStatus enumerates contract lifecycle states.
type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "active"
	ContractStatusExpired   ContractStatus = "expired"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// Contract binds a company and a service to an SLA response-time bound.
// SLAHours is the maximum allowed response time in hours and must be > 0;
// contracts violating that are excluded from evaluation.
type Contract struct {
	ID        string
	CompanyID string
	ServiceID string
	StartDate string
	EndDate   string
	SLAHours  int
	Terms     string
	Status    ContractStatus
	CreatedAt time.Time
}
