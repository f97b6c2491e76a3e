package models

// Expense represents one payment recorded against a group.
// Expenses are appended to the ledger's log and never edited or removed.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group the expense was filed under. The payer and the
	// split users are not required to be members of that group.
	GroupID int

	// Payer is the user who paid the full amount.
	Payer *User

	// Amount is the total paid. Always positive and finite.
	Amount float64

	// Split is the list of users the amount is divided among, equally.
	// Duplicates are kept; each occurrence takes one share.
	Split []*User

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// SplitIDs returns the IDs of the split users in order.
func (e Expense) SplitIDs() []int {
	ids := make([]int, len(e.Split))
	for i, u := range e.Split {
		ids[i] = u.ID
	}
	return ids
}
