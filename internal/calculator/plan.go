package calculator

import "fmt"

// Plan is the full settlement picture for a group: who stands where, which
// payments clear the debts, and how the payment count compares against the
// naive everyone-reimburses-the-payer baseline.
type Plan struct {
	Balances []Balance `json:"balances"`
	Payments []Payment `json:"payments"`

	// OriginalTransactionCount assumes every non-payer reimburses the payer
	// directly for each expense. It ignores netting between expenses, so it
	// is a pessimistic display baseline, not an alternative strategy.
	OriginalTransactionCount  int `json:"original_transaction_count"`
	OptimizedTransactionCount int `json:"optimized_transaction_count"`

	// Savings can go negative for pathological inputs (few expenses, many
	// members); clamping is left to the caller.
	Savings int `json:"savings"`
}

// SimplifySettlements computes balances and an optimized payment plan for the
// group in one pass.
func SimplifySettlements(members []string, expenses []Expense) Plan {
	return BuildPlan(members, expenses, nil)
}

// BuildPlan is SimplifySettlements with prior payments taken into account:
// balances are adjusted for what has already been paid before the optimizer
// runs. The baseline transaction count still reflects the raw expenses.
func BuildPlan(members []string, expenses []Expense, paid []Payment) Plan {
	balances := CalculateBalances(members, expenses)
	if len(paid) > 0 {
		balances = ApplySettlements(balances, paid)
	}
	payments := OptimizeSettlements(balances)

	original := 0
	if n := len(members); n > 1 {
		original = len(expenses) * (n - 1)
	}

	return Plan{
		Balances:                  balances,
		Payments:                  payments,
		OriginalTransactionCount:  original,
		OptimizedTransactionCount: len(payments),
		Savings:                   original - len(payments),
	}
}

// FormatPayment renders a payment as "<from> pays <to> <amount> <currency>".
// Label lookup is supplied by the caller so the calculator stays ignorant of
// display names and currency symbols.
func FormatPayment(p Payment, label func(member string) string, currency string) string {
	return fmt.Sprintf("%s pays %s %.2f %s", label(p.From), label(p.To), p.Amount, currency)
}
