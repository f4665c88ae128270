package domain

import "time"

// Role enumerates the access levels recognized by the back office.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleClient     Role = "client"
)

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTechnician || r == RoleClient
}

// CanManageTickets reports whether the role may change ticket status or assignment.
func (r Role) CanManageTickets() bool {
	return r == RoleAdmin || r == RoleTechnician
}

// User is an authenticated operator or client contact.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	CompanyID    *string
	PasswordHash string
	CreatedAt    time.Time
}
