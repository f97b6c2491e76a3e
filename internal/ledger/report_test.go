package ledger

import (
	"errors"
	"math"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{25, "25.0"},
		{0, "0.0"},
		{33.5, "33.5"},
		{0.1, "0.1"},
		{10.0 / 3, "3.3333333333333335"},
		{-12, "-12.0"},
		{1e7, "10000000.0"},
		{math.Inf(1), "+Inf"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBalanceReportString(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		status  BalanceStatus
		want    string
	}{
		{"positive", 25, Owed, "Alice is owed 25.0 units."},
		{"negative", -12.5, Owes, "Alice owes 12.5 units."},
		{"zero", 0, Settled, "Alice has no balance to settle."},
		{"tiny positive is not zero", 1e-12, Owed, "Alice is owed 0.000000000001 units."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t)
			l.RegisterUser(1, "Alice")
			l.balances[1] = tt.balance

			r, err := l.Balance(1)
			if err != nil {
				t.Fatalf("Balance failed: %v", err)
			}
			if r.Status != tt.status {
				t.Errorf("status = %v, want %v", r.Status, tt.status)
			}
			if got := r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&IDError{Kind: ErrDuplicateUser, ID: 1}, "User with ID 1 already exists."},
		{&IDError{Kind: ErrUnknownUser, ID: 2}, "User with ID 2 not found."},
		{&IDError{Kind: ErrUnknownGroup, ID: 3}, "Group with ID 3 not found."},
		{ErrEmptySplit, "Expense must be split among at least one user."},
		{ErrInvalidAmount, "Amount must be a positive number."},
		{errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		if got := Message(tt.err); got != tt.want {
			t.Errorf("Message(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
