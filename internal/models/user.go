package models

// User represents a registered participant in the ledger.
// Users are created once and never modified or deleted.
type User struct {
	// ID is the caller-assigned identifier. It is unique across the ledger.
	ID int

	// Name is the display name. Empty names are allowed.
	Name string
}
