package models

// Settlement represents a payment between group members to clear debts.
// Recorded settlements are applied on top of computed balances, so a member
// who has already paid their share drops out of the next settlement plan.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string `json:"id"`

	// GroupID is the group this settlement belongs to.
	GroupID string `json:"group_id"`

	// From is the address of the member who paid (debtor settling up).
	From string `json:"from"`

	// To is the address of the member who received payment.
	To string `json:"to"`

	// Amount is the payment amount. Must be positive.
	Amount float64 `json:"amount"`

	// Note is an optional description for the settlement.
	Note string `json:"note,omitempty"`

	// CreatedBy is the user ID that recorded this settlement.
	CreatedBy string `json:"created_by"`

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64 `json:"created_at"`
}
