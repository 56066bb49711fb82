package models

// Expense represents a cost paid by one group member on behalf of everyone.
// The amount is split equally across all current group members, the payer
// included, when balances are computed.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// GroupID is the group this expense belongs to.
	GroupID string `json:"group_id"`

	// Description is a short human-readable label (e.g., "Groceries").
	Description string `json:"description"`

	// Amount is the full cost paid. Must be positive; the service layer
	// rejects anything else before it reaches storage.
	Amount float64 `json:"amount"`

	// PaidBy is the address of the member who paid.
	PaidBy string `json:"paid_by"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"created_at"`
}
