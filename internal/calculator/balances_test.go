package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestReplayBalances(t *testing.T) {
	t.Run("initializes every user to zero", func(t *testing.T) {
		balances, err := ReplayBalances([]int{1, 2, 3}, nil)
		if err != nil {
			t.Fatalf("ReplayBalances failed: %v", err)
		}
		if len(balances) != 3 {
			t.Fatalf("expected 3 balances, got %d", len(balances))
		}
		for id, bal := range balances {
			if bal != 0 {
				t.Errorf("user %d balance = %v, want 0", id, bal)
			}
		}
	})

	t.Run("applies expenses in order", func(t *testing.T) {
		balances, err := ReplayBalances([]int{1, 2, 3}, []ExpenseForBalance{
			{PayerID: 1, Amount: 50, SplitIDs: []int{1, 2}},
			{PayerID: 2, Amount: 90, SplitIDs: []int{1, 2, 3}},
		})
		if err != nil {
			t.Fatalf("ReplayBalances failed: %v", err)
		}
		// 1: +25 -30 = -5, 2: -25 +60 = 35, 3: -30
		want := map[int]float64{1: -5, 2: 35, 3: -30}
		for id, w := range want {
			if balances[id] != w {
				t.Errorf("user %d balance = %v, want %v", id, balances[id], w)
			}
		}
	})

	t.Run("propagates invalid expenses", func(t *testing.T) {
		_, err := ReplayBalances([]int{1}, []ExpenseForBalance{{PayerID: 1, Amount: 10}})
		if !errors.Is(err, ErrNoParticipants) {
			t.Errorf("expected ErrNoParticipants, got %v", err)
		}
	})
}

func TestSuggestSettlements(t *testing.T) {
	tests := []struct {
		name     string
		balances map[int]float64
		want     []Transfer
	}{
		{
			name:     "single debtor single creditor",
			balances: map[int]float64{1: 25, 2: -25},
			want:     []Transfer{{From: 2, To: 1, Amount: 25}},
		},
		{
			name:     "one creditor two debtors",
			balances: map[int]float64{1: 60, 2: -30, 3: -30},
			want: []Transfer{
				{From: 2, To: 1, Amount: 30},
				{From: 3, To: 1, Amount: 30},
			},
		},
		{
			name:     "largest debt matched with largest credit",
			balances: map[int]float64{1: 10, 2: 40, 3: -45, 4: -5},
			want: []Transfer{
				{From: 3, To: 2, Amount: 40},
				{From: 3, To: 1, Amount: 5},
				{From: 4, To: 1, Amount: 5},
			},
		},
		{
			name:     "unbalanced ledger leaves remainder",
			balances: map[int]float64{1: 0, 2: -50, 3: -50},
			want:     nil,
		},
		{
			name:     "settled ledger needs no transfers",
			balances: map[int]float64{1: 0, 2: 0},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestSettlements(tt.balances)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d transfers %+v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i].From != tt.want[i].From || got[i].To != tt.want[i].To {
					t.Errorf("transfer %d = %+v, want %+v", i, got[i], tt.want[i])
				}
				if math.Abs(got[i].Amount-tt.want[i].Amount) > 0.01 {
					t.Errorf("transfer %d amount = %v, want %v", i, got[i].Amount, tt.want[i].Amount)
				}
			}
		})
	}
}
