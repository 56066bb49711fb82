package calculator

import (
	"math"
	"testing"
)

func TestCalculateBalances(t *testing.T) {
	tests := []struct {
		name         string
		members      []string
		expenses     []Expense
		validateFunc func(t *testing.T, balances []Balance)
	}{
		{
			name:     "empty members and expenses",
			members:  []string{},
			expenses: []Expense{},
			validateFunc: func(t *testing.T, balances []Balance) {
				if len(balances) != 0 {
					t.Errorf("expected no balances, got %d", len(balances))
				}
			},
		},
		{
			name:     "members with no expenses are all settled",
			members:  []string{"A", "B"},
			expenses: nil,
			validateFunc: func(t *testing.T, balances []Balance) {
				for _, b := range balances {
					if b.Amount != 0 {
						t.Errorf("%s balance = %v, want 0", b.Member, b.Amount)
					}
				}
			},
		},
		{
			name:    "single expense among three members",
			members: []string{"A", "B", "C"},
			expenses: []Expense{
				{Amount: 90, PaidBy: "A"},
			},
			validateFunc: func(t *testing.T, balances []Balance) {
				// A paid 90 and owes a 30 share: net +60.
				want := map[string]float64{"A": 60.00, "B": -30.00, "C": -30.00}
				for _, b := range balances {
					if math.Abs(b.Amount-want[b.Member]) > Epsilon {
						t.Errorf("%s balance = %v, want %v", b.Member, b.Amount, want[b.Member])
					}
				}
			},
		},
		{
			name:    "two expenses net against each other",
			members: []string{"A", "B"},
			expenses: []Expense{
				{Amount: 100, PaidBy: "A"},
				{Amount: 40, PaidBy: "B"},
			},
			validateFunc: func(t *testing.T, balances []Balance) {
				want := map[string]float64{"A": 30.00, "B": -30.00}
				for _, b := range balances {
					if math.Abs(b.Amount-want[b.Member]) > Epsilon {
						t.Errorf("%s balance = %v, want %v", b.Member, b.Amount, want[b.Member])
					}
				}
			},
		},
		{
			name:    "uneven division rounds to cents",
			members: []string{"A", "B", "C"},
			expenses: []Expense{
				{Amount: 100, PaidBy: "A"},
			},
			validateFunc: func(t *testing.T, balances []Balance) {
				// 100/3 = 33.333..., payer nets 66.67, others -33.33.
				want := map[string]float64{"A": 66.67, "B": -33.33, "C": -33.33}
				for _, b := range balances {
					if math.Abs(b.Amount-want[b.Member]) > 0.005 {
						t.Errorf("%s balance = %v, want %v", b.Member, b.Amount, want[b.Member])
					}
				}
			},
		},
		{
			name:    "output order follows member order",
			members: []string{"C", "A", "B"},
			expenses: []Expense{
				{Amount: 30, PaidBy: "A"},
			},
			validateFunc: func(t *testing.T, balances []Balance) {
				order := []string{"C", "A", "B"}
				for i, b := range balances {
					if b.Member != order[i] {
						t.Errorf("balance %d member = %s, want %s", i, b.Member, order[i])
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := CalculateBalances(tt.members, tt.expenses)
			if len(tt.members) > 0 && len(balances) != len(tt.members) {
				t.Fatalf("got %d balances for %d members", len(balances), len(tt.members))
			}
			tt.validateFunc(t, balances)
		})
	}
}

func TestCalculateBalancesZeroSum(t *testing.T) {
	cases := []struct {
		name     string
		members  []string
		expenses []Expense
	}{
		{
			name:    "many expenses",
			members: []string{"A", "B", "C", "D"},
			expenses: []Expense{
				{Amount: 123.45, PaidBy: "A"},
				{Amount: 67.89, PaidBy: "B"},
				{Amount: 10.01, PaidBy: "C"},
				{Amount: 250.00, PaidBy: "D"},
				{Amount: 33.33, PaidBy: "A"},
			},
		},
		{
			name:    "awkward thirds",
			members: []string{"A", "B", "C"},
			expenses: []Expense{
				{Amount: 100, PaidBy: "A"},
				{Amount: 1, PaidBy: "B"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			balances := CalculateBalances(tc.members, tc.expenses)
			sum := 0.0
			for _, b := range balances {
				sum += b.Amount
			}
			if math.Abs(sum) > Epsilon*float64(len(tc.members)) {
				t.Errorf("balances sum = %v, want ~0", sum)
			}
		})
	}
}

func TestCalculateBalancesDoesNotMutateInputs(t *testing.T) {
	members := []string{"A", "B"}
	expenses := []Expense{{Amount: 50, PaidBy: "A"}}

	CalculateBalances(members, expenses)

	if expenses[0].Amount != 50 || expenses[0].PaidBy != "A" {
		t.Errorf("expenses mutated: %+v", expenses[0])
	}
	if members[0] != "A" || members[1] != "B" {
		t.Errorf("members mutated: %v", members)
	}
}
