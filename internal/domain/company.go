package domain

import "time"

// Company is a client organization under management.
type Company struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	CreatedAt     time.Time
}
