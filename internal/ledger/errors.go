package ledger

import (
	"errors"
	"fmt"

	"github.com/mmynk/splitledger/internal/calculator"
)

// Error kinds. Every failed operation leaves the ledger unchanged.
var (
	ErrDuplicateUser = errors.New("user already exists")
	ErrUnknownUser   = errors.New("user not found")
	ErrUnknownGroup  = errors.New("group not found")
	ErrEmptySplit    = errors.New("expense must be split among at least one user")
	ErrInvalidAmount = errors.New("amount must be a positive finite number")
)

// IDError reports an error kind together with the identifier that caused it.
type IDError struct {
	Kind error
	ID   int
}

func (e *IDError) Error() string {
	return fmt.Sprintf("%v (id %d)", e.Kind, e.ID)
}

func (e *IDError) Unwrap() error {
	return e.Kind
}

// ErrorID returns the offending identifier carried by err, if any.
func ErrorID(err error) (int, bool) {
	var idErr *IDError
	if errors.As(err, &idErr) {
		return idErr.ID, true
	}
	return 0, false
}

// kindName is the metric label for an error kind.
func kindName(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateUser):
		return "duplicate_user"
	case errors.Is(err, ErrUnknownUser):
		return "unknown_user"
	case errors.Is(err, ErrUnknownGroup):
		return "unknown_group"
	case errors.Is(err, ErrEmptySplit):
		return "empty_split"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	default:
		return "other"
	}
}

// fromCalculator converts calculator validation failures into ledger kinds.
func fromCalculator(err error) error {
	switch {
	case errors.Is(err, calculator.ErrNoParticipants):
		return ErrEmptySplit
	case errors.Is(err, calculator.ErrInvalidAmount):
		return ErrInvalidAmount
	default:
		return err
	}
}
