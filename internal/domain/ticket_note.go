package domain

import "time"

// TicketNote is a free-form annotation on a ticket. Notes carry no
// lifecycle semantics.
type TicketNote struct {
	ID        string
	TicketID  string
	UserID    string
	Note      string
	CreatedAt time.Time
}
