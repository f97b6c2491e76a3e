// Package models defines the core domain models for the shared-expense ledger.
//
// # Models
//
//   - User: a registered person, identified by an integer ID
//   - Group: a named, fixed list of users that expenses are recorded against
//   - Expense: one payment made by a user, divided equally among a split list
//
// # Design Principles
//
// 1. **Immutable records**: users, groups and expenses never change once created
// 2. **Shared members**: groups and expenses reference the registered users, not copies
// 3. **Derived balances**: balances are not a model; they are computed from the expense log
package models
