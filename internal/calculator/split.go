// Package calculator holds the pure arithmetic behind expense splitting and
// balance aggregation. Nothing here touches ledger state.
package calculator

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoParticipants is returned when an amount is split among nobody.
	ErrNoParticipants = errors.New("must have at least one participant")
	// ErrInvalidAmount is returned for zero, negative, NaN or infinite amounts.
	ErrInvalidAmount = errors.New("amount must be a positive finite number")
)

// Delta is a signed change to one user's balance.
type Delta struct {
	UserID int
	Amount float64
}

// EqualShare divides amount among n participants.
func EqualShare(amount float64, n int) (float64, error) {
	if n <= 0 {
		return 0, ErrNoParticipants
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return amount / float64(n), nil
}

// ExpenseDeltas computes the balance changes for one expense, one entry per
// split occurrence and in split order.
//
// Every occurrence of the payer in the split is credited amount - share; every
// other occurrence is debited share. A payer missing from the split gets no
// entry at all, so the deltas then sum to -amount instead of zero.
func ExpenseDeltas(payerID int, amount float64, splitIDs []int) ([]Delta, error) {
	share, err := EqualShare(amount, len(splitIDs))
	if err != nil {
		return nil, err
	}

	deltas := make([]Delta, 0, len(splitIDs))
	for _, id := range splitIDs {
		if id == payerID {
			deltas = append(deltas, Delta{UserID: id, Amount: amount - share})
		} else {
			deltas = append(deltas, Delta{UserID: id, Amount: -share})
		}
	}
	return deltas, nil
}
