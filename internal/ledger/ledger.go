// Package ledger implements the shared-expense ledger: a registry of users and
// groups, an append-only expense log, and the running balance of every user.
//
// Every operation validates against the current state before it writes
// anything, so a failed call never leaves a partial change behind. All
// operations are safe for concurrent use.
package ledger

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

// Ledger owns users, groups, expenses and balances.
type Ledger struct {
	mu sync.RWMutex

	users     map[int]*models.User
	userOrder []int

	groups     map[int]*models.Group
	groupOrder []int

	expenses []models.Expense

	// balances holds one entry per registered user.
	// Positive = owed to the user, negative = owed by the user.
	balances map[int]float64

	logger  *slog.Logger
	metrics *Metrics
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used for commit and rejection messages.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithMetrics records registry sizes and rejections into m.
func WithMetrics(m *Metrics) Option {
	return func(l *Ledger) {
		l.metrics = m
	}
}

// New creates an empty Ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		users:    make(map[int]*models.User),
		groups:   make(map[int]*models.Group),
		balances: make(map[int]float64),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.metrics.observe(l.statsLocked())
	return l
}

// RegisterUser adds a user with a zero balance.
// It fails with ErrDuplicateUser if the id is taken; the existing user is kept.
func (l *Ledger) RegisterUser(id int, name string) (models.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.users[id]; exists {
		return models.User{}, l.reject("register_user", &IDError{Kind: ErrDuplicateUser, ID: id})
	}

	user := &models.User{ID: id, Name: name}
	l.users[id] = user
	l.userOrder = append(l.userOrder, id)
	l.balances[id] = 0

	l.logger.Debug("User registered", "user_id", id, "name", name)
	l.metrics.observe(l.statsLocked())
	return *user, nil
}

// CreateGroup creates a group from already registered users.
//
// Members keep the given order and duplicates. The first unknown id fails the
// whole call with ErrUnknownUser. A group with the same id is replaced.
func (l *Ledger) CreateGroup(groupID int, name string, memberIDs []int) (models.Group, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	members, err := l.resolveUsersLocked(memberIDs)
	if err != nil {
		return models.Group{}, l.reject("create_group", err)
	}

	group := &models.Group{ID: groupID, Name: name, Members: members}
	if _, exists := l.groups[groupID]; !exists {
		l.groupOrder = append(l.groupOrder, groupID)
	} else {
		l.logger.Debug("Replacing existing group", "group_id", groupID)
	}
	l.groups[groupID] = group

	l.logger.Debug("Group created", "group_id", groupID, "name", name, "members_count", len(members))
	l.metrics.observe(l.statsLocked())
	return copyGroup(group), nil
}

// AddExpense records that payerID paid amount on behalf of splitIDs and
// updates balances.
//
// The amount is divided equally among the split entries. Each occurrence of
// the payer in the split is credited amount minus one share, every other
// occurrence is debited one share. A payer outside the split is not credited.
// Neither the payer nor the split users are checked against the group's members.
//
// Failures, checked in order: ErrUnknownGroup, ErrUnknownUser for the payer,
// ErrUnknownUser for the first unknown split id, ErrEmptySplit, ErrInvalidAmount.
// ErrInvalidAmount is also returned when a resulting balance would not be finite.
func (l *Ledger) AddExpense(groupID, payerID int, amount float64, splitIDs []int) (models.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	const op = "add_expense"

	if _, ok := l.groups[groupID]; !ok {
		return models.Expense{}, l.reject(op, &IDError{Kind: ErrUnknownGroup, ID: groupID})
	}
	payer, ok := l.users[payerID]
	if !ok {
		return models.Expense{}, l.reject(op, &IDError{Kind: ErrUnknownUser, ID: payerID})
	}
	split, err := l.resolveUsersLocked(splitIDs)
	if err != nil {
		return models.Expense{}, l.reject(op, err)
	}

	deltas, err := calculator.ExpenseDeltas(payerID, amount, splitIDs)
	if err != nil {
		return models.Expense{}, l.reject(op, fromCalculator(err))
	}

	next := make(map[int]float64, len(deltas))
	for _, d := range deltas {
		bal, ok := next[d.UserID]
		if !ok {
			bal = l.balances[d.UserID]
		}
		bal += d.Amount
		if math.IsInf(bal, 0) || math.IsNaN(bal) {
			return models.Expense{}, l.reject(op, fmt.Errorf("%w: balance of user %d would overflow", ErrInvalidAmount, d.UserID))
		}
		next[d.UserID] = bal
	}

	expense := models.Expense{
		ID:        uuid.New().String(),
		GroupID:   groupID,
		Payer:     payer,
		Amount:    amount,
		Split:     split,
		CreatedAt: l.now().Unix(),
	}
	l.expenses = append(l.expenses, expense)
	for id, bal := range next {
		l.balances[id] = bal
	}

	l.logger.Debug("Expense recorded",
		"expense_id", expense.ID,
		"group_id", groupID,
		"payer_id", payerID,
		"amount", amount,
		"split_count", len(split),
	)
	l.metrics.observe(l.statsLocked())
	return copyExpense(expense), nil
}

// Balance reports one user's balance. Unknown users fail with ErrUnknownUser.
func (l *Ledger) Balance(userID int) (BalanceReport, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	user, ok := l.users[userID]
	if !ok {
		return BalanceReport{}, &IDError{Kind: ErrUnknownUser, ID: userID}
	}
	return newBalanceReport(user, l.balances[userID]), nil
}

// AllBalances reports every user's balance in registration order.
func (l *Ledger) AllBalances() []BalanceReport {
	l.mu.RLock()
	defer l.mu.RUnlock()

	reports := make([]BalanceReport, 0, len(l.userOrder))
	for _, id := range l.userOrder {
		reports = append(reports, newBalanceReport(l.users[id], l.balances[id]))
	}
	return reports
}

// Expenses renders the expense log in recording order.
// Group names are looked up at call time.
func (l *Ledger) Expenses() []ExpenseReport {
	l.mu.RLock()
	defer l.mu.RUnlock()

	reports := make([]ExpenseReport, 0, len(l.expenses))
	for _, e := range l.expenses {
		var groupName string
		if g, ok := l.groups[e.GroupID]; ok {
			groupName = g.Name
		}
		reports = append(reports, newExpenseReport(e, groupName))
	}
	return reports
}

// User returns a registered user.
func (l *Ledger) User(id int) (models.User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	user, ok := l.users[id]
	if !ok {
		return models.User{}, &IDError{Kind: ErrUnknownUser, ID: id}
	}
	return *user, nil
}

// Group returns a group by id.
func (l *Ledger) Group(id int) (models.Group, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	group, ok := l.groups[id]
	if !ok {
		return models.Group{}, &IDError{Kind: ErrUnknownGroup, ID: id}
	}
	return copyGroup(group), nil
}

// Groups returns all groups in the order their ids were first created.
func (l *Ledger) Groups() []models.Group {
	l.mu.RLock()
	defer l.mu.RUnlock()

	groups := make([]models.Group, 0, len(l.groupOrder))
	for _, id := range l.groupOrder {
		groups = append(groups, copyGroup(l.groups[id]))
	}
	return groups
}

// Stats holds registry sizes.
type Stats struct {
	Users    int
	Groups   int
	Expenses int
}

// Stats returns the current registry sizes.
func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.statsLocked()
}

func (l *Ledger) statsLocked() Stats {
	return Stats{
		Users:    len(l.users),
		Groups:   len(l.groups),
		Expenses: len(l.expenses),
	}
}

// Balances returns a copy of the live balance map.
func (l *Ledger) Balances() map[int]float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[int]float64, len(l.balances))
	for id, bal := range l.balances {
		out[id] = bal
	}
	return out
}

// Recompute replays the expense log against zero balances. The result always
// equals Balances.
func (l *Ledger) Recompute() map[int]float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	expenses := make([]calculator.ExpenseForBalance, len(l.expenses))
	for i, e := range l.expenses {
		expenses[i] = calculator.ExpenseForBalance{
			PayerID:  e.Payer.ID,
			Amount:   e.Amount,
			SplitIDs: e.SplitIDs(),
		}
	}

	balances, err := calculator.ReplayBalances(l.userOrder, expenses)
	if err != nil {
		// Only validated expenses reach the log.
		panic("ledger: replay of recorded expenses failed: " + err.Error())
	}
	return balances
}

// SuggestSettlements proposes payments that would settle current balances.
// It does not change the ledger.
func (l *Ledger) SuggestSettlements() []calculator.Transfer {
	return calculator.SuggestSettlements(l.Balances())
}

// resolveUsersLocked maps ids to registered users, stopping at the first unknown id.
func (l *Ledger) resolveUsersLocked(ids []int) ([]*models.User, error) {
	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		user, ok := l.users[id]
		if !ok {
			return nil, &IDError{Kind: ErrUnknownUser, ID: id}
		}
		users = append(users, user)
	}
	return users, nil
}

func (l *Ledger) reject(op string, err error) error {
	l.logger.Warn("Ledger operation rejected", "op", op, "error", err)
	l.metrics.reject(op, err)
	return err
}

func copyGroup(g *models.Group) models.Group {
	out := *g
	out.Members = append([]*models.User(nil), g.Members...)
	return out
}

func copyExpense(e models.Expense) models.Expense {
	e.Split = append([]*models.User(nil), e.Split...)
	return e
}
