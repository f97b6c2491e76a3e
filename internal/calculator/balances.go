package calculator

import (
	"fmt"
	"sort"
)

// ExpenseForBalance represents an expense with the minimal information needed for balance calculations.
type ExpenseForBalance struct {
	PayerID  int
	Amount   float64
	SplitIDs []int
}

// Transfer is a suggested payment from a debtor to a creditor.
type Transfer struct {
	From   int // User who owes
	To     int // User who is owed
	Amount float64
}

// settleEpsilon hides floating point noise left over after matching.
const settleEpsilon = 0.01

// ReplayBalances recomputes balances from zero by applying every expense in order.
// Every id in userIDs gets an entry, even when no expense touches it.
// Split ids that are missing from userIDs are still accumulated.
func ReplayBalances(userIDs []int, expenses []ExpenseForBalance) (map[int]float64, error) {
	balances := make(map[int]float64, len(userIDs))
	for _, id := range userIDs {
		balances[id] = 0
	}

	for i, e := range expenses {
		deltas, err := ExpenseDeltas(e.PayerID, e.Amount, e.SplitIDs)
		if err != nil {
			return nil, fmt.Errorf("expense %d: %w", i, err)
		}
		for _, d := range deltas {
			balances[d.UserID] += d.Amount
		}
	}
	return balances, nil
}

// SuggestSettlements proposes transfers that would bring every balance close to
// zero, matching the largest debts with the largest credits first.
//
// Balances do not have to sum to zero. Whatever cannot be matched is left over.
func SuggestSettlements(balances map[int]float64) []Transfer {
	type entry struct {
		id     int
		amount float64
	}

	var debtors, creditors []entry
	for id, bal := range balances {
		if bal > 0 {
			creditors = append(creditors, entry{id, bal})
		} else if bal < 0 {
			debtors = append(debtors, entry{id, -bal})
		}
	}

	byAmount := func(s []entry) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].amount != s[j].amount {
				return s[i].amount > s[j].amount
			}
			return s[i].id < s[j].id
		}
	}
	sort.Slice(debtors, byAmount(debtors))
	sort.Slice(creditors, byAmount(creditors))

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := debtors[i].amount
		if creditors[j].amount < amount {
			amount = creditors[j].amount
		}

		if amount > settleEpsilon {
			transfers = append(transfers, Transfer{
				From:   debtors[i].id,
				To:     creditors[j].id,
				Amount: amount,
			})
		}

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount < settleEpsilon {
			i++
		}
		if creditors[j].amount < settleEpsilon {
			j++
		}
	}
	return transfers
}
