package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// LedgerServiceName is the fully-qualified name of the ledger service.
const LedgerServiceName = "splitledger.v1.LedgerService"

// Procedure paths of the ledger service.
const (
	LedgerServiceRegisterUserProcedure       = "/splitledger.v1.LedgerService/RegisterUser"
	LedgerServiceCreateGroupProcedure        = "/splitledger.v1.LedgerService/CreateGroup"
	LedgerServiceAddExpenseProcedure         = "/splitledger.v1.LedgerService/AddExpense"
	LedgerServiceGetBalanceProcedure         = "/splitledger.v1.LedgerService/GetBalance"
	LedgerServiceGetAllBalancesProcedure     = "/splitledger.v1.LedgerService/GetAllBalances"
	LedgerServiceListExpensesProcedure       = "/splitledger.v1.LedgerService/ListExpenses"
	LedgerServiceListGroupsProcedure         = "/splitledger.v1.LedgerService/ListGroups"
	LedgerServiceSuggestSettlementsProcedure = "/splitledger.v1.LedgerService/SuggestSettlements"
)

// LedgerServiceHandler is implemented by the server side of the ledger service.
type LedgerServiceHandler interface {
	RegisterUser(context.Context, *connect.Request[RegisterUserRequest]) (*connect.Response[RegisterUserResponse], error)
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	GetBalance(context.Context, *connect.Request[GetBalanceRequest]) (*connect.Response[GetBalanceResponse], error)
	GetAllBalances(context.Context, *connect.Request[GetAllBalancesRequest]) (*connect.Response[GetAllBalancesResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	SuggestSettlements(context.Context, *connect.Request[SuggestSettlementsRequest]) (*connect.Response[SuggestSettlementsResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler for svc. It returns the path
// prefix to mount the handler on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec())}, opts...)

	mux := http.NewServeMux()
	mux.Handle(LedgerServiceRegisterUserProcedure,
		connect.NewUnaryHandler(LedgerServiceRegisterUserProcedure, svc.RegisterUser, opts...))
	mux.Handle(LedgerServiceCreateGroupProcedure,
		connect.NewUnaryHandler(LedgerServiceCreateGroupProcedure, svc.CreateGroup, opts...))
	mux.Handle(LedgerServiceAddExpenseProcedure,
		connect.NewUnaryHandler(LedgerServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(LedgerServiceGetBalanceProcedure,
		connect.NewUnaryHandler(LedgerServiceGetBalanceProcedure, svc.GetBalance, opts...))
	mux.Handle(LedgerServiceGetAllBalancesProcedure,
		connect.NewUnaryHandler(LedgerServiceGetAllBalancesProcedure, svc.GetAllBalances, opts...))
	mux.Handle(LedgerServiceListExpensesProcedure,
		connect.NewUnaryHandler(LedgerServiceListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(LedgerServiceListGroupsProcedure,
		connect.NewUnaryHandler(LedgerServiceListGroupsProcedure, svc.ListGroups, opts...))
	mux.Handle(LedgerServiceSuggestSettlementsProcedure,
		connect.NewUnaryHandler(LedgerServiceSuggestSettlementsProcedure, svc.SuggestSettlements, opts...))

	return "/" + LedgerServiceName + "/", mux
}

// LedgerServiceClient calls the ledger service.
type LedgerServiceClient struct {
	registerUser       *connect.Client[RegisterUserRequest, RegisterUserResponse]
	createGroup        *connect.Client[CreateGroupRequest, CreateGroupResponse]
	addExpense         *connect.Client[AddExpenseRequest, AddExpenseResponse]
	getBalance         *connect.Client[GetBalanceRequest, GetBalanceResponse]
	getAllBalances     *connect.Client[GetAllBalancesRequest, GetAllBalancesResponse]
	listExpenses       *connect.Client[ListExpensesRequest, ListExpensesResponse]
	listGroups         *connect.Client[ListGroupsRequest, ListGroupsResponse]
	suggestSettlements *connect.Client[SuggestSettlementsRequest, SuggestSettlementsResponse]
}

// NewLedgerServiceClient creates a client for the service at baseURL
// (e.g. "http://localhost:8080").
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec())}, opts...)

	return &LedgerServiceClient{
		registerUser: connect.NewClient[RegisterUserRequest, RegisterUserResponse](
			httpClient, baseURL+LedgerServiceRegisterUserProcedure, opts...),
		createGroup: connect.NewClient[CreateGroupRequest, CreateGroupResponse](
			httpClient, baseURL+LedgerServiceCreateGroupProcedure, opts...),
		addExpense: connect.NewClient[AddExpenseRequest, AddExpenseResponse](
			httpClient, baseURL+LedgerServiceAddExpenseProcedure, opts...),
		getBalance: connect.NewClient[GetBalanceRequest, GetBalanceResponse](
			httpClient, baseURL+LedgerServiceGetBalanceProcedure, opts...),
		getAllBalances: connect.NewClient[GetAllBalancesRequest, GetAllBalancesResponse](
			httpClient, baseURL+LedgerServiceGetAllBalancesProcedure, opts...),
		listExpenses: connect.NewClient[ListExpensesRequest, ListExpensesResponse](
			httpClient, baseURL+LedgerServiceListExpensesProcedure, opts...),
		listGroups: connect.NewClient[ListGroupsRequest, ListGroupsResponse](
			httpClient, baseURL+LedgerServiceListGroupsProcedure, opts...),
		suggestSettlements: connect.NewClient[SuggestSettlementsRequest, SuggestSettlementsResponse](
			httpClient, baseURL+LedgerServiceSuggestSettlementsProcedure, opts...),
	}
}

func (c *LedgerServiceClient) RegisterUser(ctx context.Context, req *connect.Request[RegisterUserRequest]) (*connect.Response[RegisterUserResponse], error) {
	return c.registerUser.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetBalance(ctx context.Context, req *connect.Request[GetBalanceRequest]) (*connect.Response[GetBalanceResponse], error) {
	return c.getBalance.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetAllBalances(ctx context.Context, req *connect.Request[GetAllBalancesRequest]) (*connect.Response[GetAllBalancesResponse], error) {
	return c.getAllBalances.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) SuggestSettlements(ctx context.Context, req *connect.Request[SuggestSettlementsRequest]) (*connect.Response[SuggestSettlementsResponse], error) {
	return c.suggestSettlements.CallUnary(ctx, req)
}
