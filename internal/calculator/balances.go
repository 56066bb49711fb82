// Package calculator implements the pure settlement math: net balances from
// shared expenses and a greedy payment plan that zeroes them out. It performs
// no I/O and never mutates its inputs.
package calculator

import "math"

// Epsilon is the threshold below which a balance counts as settled. It absorbs
// the floating-point drift left over from equal-split division and must stay
// the same across balance filtering and cursor advancement.
const Epsilon = 0.01

// Expense is a single shared cost paid by one member and split equally across
// every member of the group, the payer included.
type Expense struct {
	Amount float64 `json:"amount"`
	PaidBy string  `json:"paid_by"`
}

// Balance is one member's net position across a set of expenses.
// Positive means the member is owed money, negative means they owe.
type Balance struct {
	Member string  `json:"member"`
	Amount float64 `json:"amount"`
}

// CalculateBalances computes each member's net balance over the given
// expenses. Every expense credits its payer with the full amount and debits
// every member (payer included) with an equal share, so the payer nets
// amount - amount/n and everyone else nets -amount/n.
//
// Amounts are not validated; a non-positive expense flows through the same
// arithmetic and produces an economically meaningless result. The returned
// balances sum to zero up to Epsilon per member, each rounded to two decimal
// places, in the same order as members.
func CalculateBalances(members []string, expenses []Expense) []Balance {
	if len(members) == 0 {
		return []Balance{}
	}

	net := make(map[string]float64, len(members))
	for _, m := range members {
		net[m] = 0
	}

	n := float64(len(members))
	for _, e := range expenses {
		net[e.PaidBy] += e.Amount
		perMember := e.Amount / n
		for _, m := range members {
			net[m] -= perMember
		}
	}

	balances := make([]Balance, len(members))
	for i, m := range members {
		balances[i] = Balance{Member: m, Amount: round2(net[m])}
	}
	return balances
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
