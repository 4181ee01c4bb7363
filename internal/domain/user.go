package domain

import "slices"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User carries its password as an opaque string compared verbatim on login.
// Hashing is deliberately out of scope for this demo system.
type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Role          Role     `json:"role"`
	BookedTickets []string `json:"bookedTickets"`
}

func (u *User) HasTicket(flightID string) bool {
	return slices.Contains(u.BookedTickets, flightID)
}

// Clone returns a deep copy so callers cannot mutate store-held state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.BookedTickets = slices.Clone(u.BookedTickets)
	return &c
}
