// Package service exposes the ledger over Connect RPC.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

// Ensure LedgerService implements api.LedgerServiceHandler
var _ api.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerService implements the Connect LedgerService
type LedgerService struct {
	ledger *ledger.Ledger
}

// NewLedgerService creates a new LedgerService backed by l.
func NewLedgerService(l *ledger.Ledger) *LedgerService {
	return &LedgerService{ledger: l}
}

// RegisterUser registers a new user.
func (s *LedgerService) RegisterUser(ctx context.Context, req *connect.Request[api.RegisterUserRequest]) (*connect.Response[api.RegisterUserResponse], error) {
	slog.Info("RegisterUser request received", "user_id", req.Msg.ID, "name", req.Msg.Name)

	user, err := s.ledger.RegisterUser(req.Msg.ID, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("User registered", "user_id", user.ID)

	return connect.NewResponse(&api.RegisterUserResponse{
		User:    toAPIUser(&user),
		Message: fmt.Sprintf("User %s added successfully.", user.Name),
	}), nil
}

// CreateGroup creates a group from registered users.
func (s *LedgerService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"group_id", req.Msg.GroupID,
		"name", req.Msg.Name,
		"members_count", len(req.Msg.MemberIDs),
	)

	group, err := s.ledger.CreateGroup(req.Msg.GroupID, req.Msg.Name, req.Msg.MemberIDs)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Group created", "group_id", group.ID)

	pbGroup := toAPIGroup(group)
	names := make([]string, len(pbGroup.Members))
	for i, m := range pbGroup.Members {
		names[i] = m.Name
	}

	return connect.NewResponse(&api.CreateGroupResponse{
		Group:   pbGroup,
		Message: fmt.Sprintf("Group '%s' created with users: %s", group.Name, strings.Join(names, ", ")),
	}), nil
}

// AddExpense records an expense and updates balances.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"group_id", req.Msg.GroupID,
		"payer_id", req.Msg.PayerID,
		"amount", req.Msg.Amount,
		"split", req.Msg.SplitIDs,
	)

	expense, err := s.ledger.AddExpense(req.Msg.GroupID, req.Msg.PayerID, req.Msg.Amount, req.Msg.SplitIDs)
	if err != nil {
		return nil, toConnectError(err)
	}

	var groupName string
	if group, err := s.ledger.Group(expense.GroupID); err == nil {
		groupName = group.Name
	}

	slog.Info("Expense recorded", "expense_id", expense.ID, "group_id", expense.GroupID)

	return connect.NewResponse(&api.AddExpenseResponse{
		Expense: api.Expense{
			ID:        expense.ID,
			GroupID:   expense.GroupID,
			PayerID:   expense.Payer.ID,
			Amount:    expense.Amount,
			SplitIDs:  expense.SplitIDs(),
			CreatedAt: expense.CreatedAt,
		},
		Message: fmt.Sprintf("Expense of %s added to group '%s' by %s",
			ledger.FormatAmount(expense.Amount), groupName, expense.Payer.Name),
	}), nil
}

// GetBalance reports one user's balance.
func (s *LedgerService) GetBalance(ctx context.Context, req *connect.Request[api.GetBalanceRequest]) (*connect.Response[api.GetBalanceResponse], error) {
	slog.Info("GetBalance request received", "user_id", req.Msg.UserID)

	report, err := s.ledger.Balance(req.Msg.UserID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetBalanceResponse{
		Balance: toAPIBalance(report),
	}), nil
}

// GetAllBalances reports every user's balance in registration order.
func (s *LedgerService) GetAllBalances(ctx context.Context, req *connect.Request[api.GetAllBalancesRequest]) (*connect.Response[api.GetAllBalancesResponse], error) {
	slog.Info("GetAllBalances request received")

	reports := s.ledger.AllBalances()
	balances := make([]api.Balance, len(reports))
	for i, r := range reports {
		balances[i] = toAPIBalance(r)
	}

	slog.Info("GetAllBalances successful", "count", len(balances))

	return connect.NewResponse(&api.GetAllBalancesResponse{
		Balances: balances,
	}), nil
}

// ListExpenses lists expenses in recording order.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received")

	reports := s.ledger.Expenses()
	records := make([]api.ExpenseRecord, len(reports))
	for i, r := range reports {
		records[i] = api.ExpenseRecord{
			ExpenseID:  r.ExpenseID,
			GroupID:    r.GroupID,
			GroupName:  r.GroupName,
			PayerName:  r.PayerName,
			Amount:     r.Amount,
			SplitNames: r.SplitNames,
			Message:    r.String(),
		}
	}

	slog.Info("ListExpenses successful", "count", len(records))

	return connect.NewResponse(&api.ListExpensesResponse{
		Expenses: records,
	}), nil
}

// ListGroups lists all groups.
func (s *LedgerService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	slog.Info("ListGroups request received")

	groups := s.ledger.Groups()
	pbGroups := make([]api.Group, len(groups))
	for i, g := range groups {
		pbGroups[i] = toAPIGroup(g)
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&api.ListGroupsResponse{
		Groups: pbGroups,
	}), nil
}

// SuggestSettlements proposes payments that would settle current balances.
func (s *LedgerService) SuggestSettlements(ctx context.Context, req *connect.Request[api.SuggestSettlementsRequest]) (*connect.Response[api.SuggestSettlementsResponse], error) {
	slog.Info("SuggestSettlements request received")

	transfers := s.ledger.SuggestSettlements()
	pbTransfers := make([]api.Transfer, 0, len(transfers))
	for _, t := range transfers {
		from, err := s.ledger.User(t.From)
		if err != nil {
			return nil, toConnectError(err)
		}
		to, err := s.ledger.User(t.To)
		if err != nil {
			return nil, toConnectError(err)
		}
		pbTransfers = append(pbTransfers, api.Transfer{
			FromUserID: from.ID,
			FromName:   from.Name,
			ToUserID:   to.ID,
			ToName:     to.Name,
			Amount:     t.Amount,
			Message:    fmt.Sprintf("%s pays %s %s units.", from.Name, to.Name, ledger.FormatAmount(t.Amount)),
		})
	}

	slog.Info("SuggestSettlements successful", "count", len(pbTransfers))

	return connect.NewResponse(&api.SuggestSettlementsResponse{
		Transfers: pbTransfers,
	}), nil
}

// toConnectError maps ledger error kinds to Connect codes. The message is the
// display sentence for the error.
func toConnectError(err error) *connect.Error {
	code := connect.CodeInternal
	switch {
	case errors.Is(err, ledger.ErrDuplicateUser):
		code = connect.CodeAlreadyExists
	case errors.Is(err, ledger.ErrUnknownUser), errors.Is(err, ledger.ErrUnknownGroup):
		code = connect.CodeNotFound
	case errors.Is(err, ledger.ErrEmptySplit), errors.Is(err, ledger.ErrInvalidAmount):
		code = connect.CodeInvalidArgument
	}
	return connect.NewError(code, errors.New(ledger.Message(err)))
}

func toAPIUser(u *models.User) api.User {
	return api.User{ID: u.ID, Name: u.Name}
}

func toAPIGroup(g models.Group) api.Group {
	members := make([]api.User, len(g.Members))
	for i, m := range g.Members {
		members[i] = toAPIUser(m)
	}
	return api.Group{ID: g.ID, Name: g.Name, Members: members}
}

func toAPIBalance(r ledger.BalanceReport) api.Balance {
	return api.Balance{
		UserID:  r.UserID,
		Name:    r.Name,
		Amount:  r.Balance,
		Status:  r.Status.String(),
		Message: r.String(),
	}
}
