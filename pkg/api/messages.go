// Package api defines the wire contract of the ledger service: messages,
// procedure names, the JSON codec, a typed client, and the input parsing
// helpers used by clients before any call is made.
package api

// User is a registered user.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Group is a named member list.
type Group struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Members []User `json:"members"`
}

// Expense is a recorded expense.
type Expense struct {
	ID        string  `json:"id"`
	GroupID   int     `json:"group_id"`
	PayerID   int     `json:"payer_id"`
	Amount    float64 `json:"amount"`
	SplitIDs  []int   `json:"split_ids"`
	CreatedAt int64   `json:"created_at"`
}

// Balance is one user's balance. Status is "owed", "owes" or "settled".
type Balance struct {
	UserID  int     `json:"user_id"`
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
	Message string  `json:"message"`
}

// ExpenseRecord is an expense with names resolved for display.
type ExpenseRecord struct {
	ExpenseID  string   `json:"expense_id"`
	GroupID    int      `json:"group_id"`
	GroupName  string   `json:"group_name"`
	PayerName  string   `json:"payer_name"`
	Amount     float64  `json:"amount"`
	SplitNames []string `json:"split_names"`
	Message    string   `json:"message"`
}

// Transfer is a suggested payment between two users.
type Transfer struct {
	FromUserID int     `json:"from_user_id"`
	FromName   string  `json:"from_name"`
	ToUserID   int     `json:"to_user_id"`
	ToName     string  `json:"to_name"`
	Amount     float64 `json:"amount"`
	Message    string  `json:"message"`
}

type RegisterUserRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type RegisterUserResponse struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

type CreateGroupRequest struct {
	GroupID   int    `json:"group_id"`
	Name      string `json:"name"`
	MemberIDs []int  `json:"member_ids"`
}

type CreateGroupResponse struct {
	Group   Group  `json:"group"`
	Message string `json:"message"`
}

type AddExpenseRequest struct {
	GroupID  int     `json:"group_id"`
	PayerID  int     `json:"payer_id"`
	Amount   float64 `json:"amount"`
	SplitIDs []int   `json:"split_ids"`
}

type AddExpenseResponse struct {
	Expense Expense `json:"expense"`
	Message string  `json:"message"`
}

type GetBalanceRequest struct {
	UserID int `json:"user_id"`
}

type GetBalanceResponse struct {
	Balance Balance `json:"balance"`
}

type GetAllBalancesRequest struct{}

type GetAllBalancesResponse struct {
	Balances []Balance `json:"balances"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []ExpenseRecord `json:"expenses"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []Group `json:"groups"`
}

type SuggestSettlementsRequest struct{}

type SuggestSettlementsResponse struct {
	Transfers []Transfer `json:"transfers"`
}
