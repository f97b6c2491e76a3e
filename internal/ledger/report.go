package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmynk/splitledger/internal/models"
)

// BalanceStatus classifies a balance by its sign.
type BalanceStatus int

const (
	// Settled means the balance is exactly zero.
	Settled BalanceStatus = iota
	// Owed means the pool owes the user.
	Owed
	// Owes means the user owes the pool.
	Owes
)

func (s BalanceStatus) String() string {
	switch s {
	case Owed:
		return "owed"
	case Owes:
		return "owes"
	default:
		return "settled"
	}
}

// BalanceReport is one user's balance.
type BalanceReport struct {
	UserID  int
	Name    string
	Balance float64
	Status  BalanceStatus
}

func newBalanceReport(user *models.User, balance float64) BalanceReport {
	status := Settled
	switch {
	case balance > 0:
		status = Owed
	case balance < 0:
		status = Owes
	}
	return BalanceReport{
		UserID:  user.ID,
		Name:    user.Name,
		Balance: balance,
		Status:  status,
	}
}

// String renders the report as a sentence, e.g. "Alice is owed 25.0 units.".
func (r BalanceReport) String() string {
	switch r.Status {
	case Owed:
		return fmt.Sprintf("%s is owed %s units.", r.Name, FormatAmount(r.Balance))
	case Owes:
		return fmt.Sprintf("%s owes %s units.", r.Name, FormatAmount(-r.Balance))
	default:
		return fmt.Sprintf("%s has no balance to settle.", r.Name)
	}
}

// ExpenseReport is one expense with names resolved for display.
type ExpenseReport struct {
	ExpenseID  string
	GroupID    int
	GroupName  string
	PayerName  string
	Amount     float64
	SplitNames []string
}

func newExpenseReport(e models.Expense, groupName string) ExpenseReport {
	names := make([]string, len(e.Split))
	for i, u := range e.Split {
		names[i] = u.Name
	}
	return ExpenseReport{
		ExpenseID:  e.ID,
		GroupID:    e.GroupID,
		GroupName:  groupName,
		PayerName:  e.Payer.Name,
		Amount:     e.Amount,
		SplitNames: names,
	}
}

// String renders the report as "Group: Trip, Payer: Alice, Amount: 50.0, Split: Alice, Bob".
func (r ExpenseReport) String() string {
	return fmt.Sprintf("Group: %s, Payer: %s, Amount: %s, Split: %s",
		r.GroupName, r.PayerName, FormatAmount(r.Amount), strings.Join(r.SplitNames, ", "))
}

// FormatAmount renders v with the fewest digits that round-trip, keeping at
// least one fractional digit: 25 -> "25.0", 33.5 -> "33.5".
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// Message renders a ledger error as a sentence for display.
func Message(err error) string {
	id, hasID := ErrorID(err)
	switch {
	case errors.Is(err, ErrDuplicateUser) && hasID:
		return fmt.Sprintf("User with ID %d already exists.", id)
	case errors.Is(err, ErrUnknownUser) && hasID:
		return fmt.Sprintf("User with ID %d not found.", id)
	case errors.Is(err, ErrUnknownGroup) && hasID:
		return fmt.Sprintf("Group with ID %d not found.", id)
	case errors.Is(err, ErrEmptySplit):
		return "Expense must be split among at least one user."
	case errors.Is(err, ErrInvalidAmount):
		return "Amount must be a positive number."
	default:
		return err.Error()
	}
}
