// Command splitctl is a command-line client for the ledger server.
//
//	splitctl add-user ID NAME
//	splitctl create-group ID NAME IDS
//	splitctl add-expense GROUP_ID PAYER_ID AMOUNT IDS
//	splitctl balance USER_ID
//	splitctl balances
//	splitctl expenses
//	splitctl groups
//	splitctl settle
//
// IDS is a comma-separated list such as "1, 2, 3". The server address is
// read from SPLITLEDGER_URL (default http://localhost:8080). LOG_LEVEL=debug
// logs each call to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"

	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/logging"
)

var errUsage = errors.New("usage: splitctl add-user|create-group|add-expense|balance|balances|expenses|groups|settle [args]")

func main() {
	_ = godotenv.Load()
	logging.Setup()

	baseURL := os.Getenv("SPLITLEDGER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	client := api.NewLedgerServiceClient(&http.Client{Timeout: 10 * time.Second}, baseURL)

	slog.Debug("Calling ledger server", "url", baseURL, "args", os.Args[1:])
	if err := run(context.Background(), client, os.Args[1:], os.Stdout); err != nil {
		slog.Debug("Command failed", "error", err)
		fmt.Fprintln(os.Stderr, displayError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, client *api.LedgerServiceClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "add-user":
		if len(args) != 2 {
			return errUsage
		}
		id, err := api.ParseID("user id", args[0])
		if err != nil {
			return err
		}
		resp, err := client.RegisterUser(ctx, connect.NewRequest(&api.RegisterUserRequest{ID: id, Name: args[1]}))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, resp.Msg.Message)

	case "create-group":
		if len(args) != 3 {
			return errUsage
		}
		id, err := api.ParseID("group id", args[0])
		if err != nil {
			return err
		}
		members, err := api.ParseIDList("member ids", args[2])
		if err != nil {
			return err
		}
		resp, err := client.CreateGroup(ctx, connect.NewRequest(&api.CreateGroupRequest{
			GroupID: id, Name: args[1], MemberIDs: members,
		}))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, resp.Msg.Message)

	case "add-expense":
		if len(args) != 4 {
			return errUsage
		}
		groupID, err := api.ParseID("group id", args[0])
		if err != nil {
			return err
		}
		payerID, err := api.ParseID("payer id", args[1])
		if err != nil {
			return err
		}
		amount, err := api.ParseAmount("amount", args[2])
		if err != nil {
			return err
		}
		split, err := api.ParseIDList("split ids", args[3])
		if err != nil {
			return err
		}
		resp, err := client.AddExpense(ctx, connect.NewRequest(&api.AddExpenseRequest{
			GroupID: groupID, PayerID: payerID, Amount: amount, SplitIDs: split,
		}))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, resp.Msg.Message)

	case "balance":
		if len(args) != 1 {
			return errUsage
		}
		id, err := api.ParseID("user id", args[0])
		if err != nil {
			return err
		}
		resp, err := client.GetBalance(ctx, connect.NewRequest(&api.GetBalanceRequest{UserID: id}))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, resp.Msg.Balance.Message)

	case "balances":
		resp, err := client.GetAllBalances(ctx, connect.NewRequest(&api.GetAllBalancesRequest{}))
		if err != nil {
			return err
		}
		for _, b := range resp.Msg.Balances {
			fmt.Fprintln(out, b.Message)
		}

	case "expenses":
		resp, err := client.ListExpenses(ctx, connect.NewRequest(&api.ListExpensesRequest{}))
		if err != nil {
			return err
		}
		for _, e := range resp.Msg.Expenses {
			fmt.Fprintln(out, e.Message)
		}

	case "groups":
		resp, err := client.ListGroups(ctx, connect.NewRequest(&api.ListGroupsRequest{}))
		if err != nil {
			return err
		}
		for _, g := range resp.Msg.Groups {
			names := make([]string, len(g.Members))
			for i, m := range g.Members {
				names[i] = m.Name
			}
			fmt.Fprintf(out, "%d %s: %s\n", g.ID, g.Name, strings.Join(names, ", "))
		}

	case "settle":
		resp, err := client.SuggestSettlements(ctx, connect.NewRequest(&api.SuggestSettlementsRequest{}))
		if err != nil {
			return err
		}
		if len(resp.Msg.Transfers) == 0 {
			fmt.Fprintln(out, "Nothing to settle.")
		}
		for _, t := range resp.Msg.Transfers {
			fmt.Fprintln(out, t.Message)
		}

	default:
		return errUsage
	}
	return nil
}

// displayError renders an error for the terminal. Server errors already carry
// a display sentence.
func displayError(err error) string {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Message()
	}
	return err.Error()
}
