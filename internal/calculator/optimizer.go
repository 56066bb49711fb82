package calculator

import "sort"

// Payment is a single pairwise transfer in a settlement plan.
// Amount is always positive and rounded to two decimal places.
type Payment struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// OptimizeSettlements produces a list of payments that discharges every
// balance, matching the largest creditor against the largest debtor with two
// cursors. Balances within Epsilon of zero are treated as already settled and
// skipped. Equal magnitudes keep their original relative order (stable sort),
// so the output is deterministic for a given input.
//
// The result is a fast heuristic, not a provably minimal transaction count.
// Empty or fully settled input yields no payments.
func OptimizeSettlements(balances []Balance) []Payment {
	var creditors, debtors []Balance
	for _, b := range balances {
		switch {
		case b.Amount > Epsilon:
			creditors = append(creditors, b)
		case b.Amount < -Epsilon:
			// Debtors carry positive magnitudes from here on.
			debtors = append(debtors, Balance{Member: b.Member, Amount: -b.Amount})
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].Amount > creditors[j].Amount
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].Amount > debtors[j].Amount
	})

	var payments []Payment
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		amount := creditors[i].Amount
		if debtors[j].Amount < amount {
			amount = debtors[j].Amount
		}

		payments = append(payments, Payment{
			From:   debtors[j].Member,
			To:     creditors[i].Member,
			Amount: round2(amount),
		})

		creditors[i].Amount -= amount
		debtors[j].Amount -= amount

		// Both cursors advance in the same step when the amounts match exactly.
		if creditors[i].Amount < Epsilon {
			i++
		}
		if debtors[j].Amount < Epsilon {
			j++
		}
	}

	return payments
}

// ApplySettlements returns a copy of balances adjusted for payments that have
// already been made: each payment raises the payer's balance and lowers the
// receiver's. Payments naming unknown members are ignored.
func ApplySettlements(balances []Balance, paid []Payment) []Balance {
	adjusted := make([]Balance, len(balances))
	copy(adjusted, balances)

	index := make(map[string]int, len(adjusted))
	for i, b := range adjusted {
		index[b.Member] = i
	}

	for _, p := range paid {
		if i, ok := index[p.From]; ok {
			adjusted[i].Amount += p.Amount
		}
		if i, ok := index[p.To]; ok {
			adjusted[i].Amount -= p.Amount
		}
	}

	for i := range adjusted {
		adjusted[i].Amount = round2(adjusted[i].Amount)
	}
	return adjusted
}
