package models

// Group represents a set of members who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string `json:"name"`

	// Members is the list of member addresses in this group.
	// Expenses recorded against the group are split equally across all of them.
	Members []string `json:"members"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"created_at"`
}

// HasMember reports whether the address belongs to the group.
func (g *Group) HasMember(address string) bool {
	for _, m := range g.Members {
		if m == address {
			return true
		}
	}
	return false
}
