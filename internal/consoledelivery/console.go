// Package consoledelivery manages delivery layer of the interactive console.
package consoledelivery

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-petr/mini-bank/internal/domain"
	"github.com/go-petr/mini-bank/internal/middleware"
	"github.com/go-petr/mini-bank/pkg/moneypkg"
	"github.com/rs/zerolog"
)

const menuText = `
*** MAIN MENU ***
[1] Register new customer
[2] Open checking account
[3] List customers
[4] List accounts
[5] Deposit
[6] Withdraw
[7] Statement
[8] Exit
`

const separator = "============================================================"

// CustomerService provides the customer business layer interface needed by the console.
type CustomerService interface {
	Register(ctx context.Context, id, fullName, address, birthDate string) (domain.Customer, error)
	Get(ctx context.Context, id string) (domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

// AccountService provides the account business layer interface needed by the console.
type AccountService interface {
	Open(ctx context.Context, customerID string) (domain.Account, error)
	Deposit(ctx context.Context, customerID, amount string) (domain.Account, error)
	Withdraw(ctx context.Context, customerID, amount string) (domain.Account, error)
	Statement(ctx context.Context, customerID string) (domain.Statement, error)
	List(ctx context.Context) ([]domain.Account, error)
}

// Handler dispatches menu options to the service layer over line-oriented text I/O.
type Handler struct {
	customers CustomerService
	accounts  AccountService
	logger    zerolog.Logger
	symbol    string
}

// NewHandler returns the console Handler.
func NewHandler(cs CustomerService, as AccountService, logger zerolog.Logger, currencySymbol string) *Handler {
	return &Handler{
		customers: cs,
		accounts:  as,
		logger:    logger,
		symbol:    currencySymbol,
	}
}

// Run drives the blocking menu loop until the exit option or EOF.
// Every action runs to completion, including its error reporting, before the
// next prompt; errors are rendered as messages and never terminate the loop.
func (h *Handler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, menuText)

		option, ok := readLine(scanner)
		if !ok {
			fmt.Fprintln(out, "Shutting down...")
			return scanner.Err()
		}

		opCtx := middleware.WithOperation(ctx, h.logger, operationName(option))

		switch option {
		case "1":
			h.registerCustomer(opCtx, scanner, out)
		case "2":
			h.openAccount(opCtx, scanner, out)
		case "3":
			h.listCustomers(opCtx, out)
		case "4":
			h.listAccounts(opCtx, out)
		case "5":
			h.deposit(opCtx, scanner, out)
		case "6":
			h.withdraw(opCtx, scanner, out)
		case "7":
			h.statement(opCtx, scanner, out)
		case "8":
			fmt.Fprintln(out, "Shutting down...")
			return nil
		default:
			fmt.Fprintln(out, "Invalid option. Please choose one of the menu entries.")
		}
	}
}

func (h *Handler) registerCustomer(ctx context.Context, scanner *bufio.Scanner, out io.Writer) {
	id, ok := prompt(scanner, out, "Customer ID (numbers only): ")
	if !ok {
		return
	}

	if _, err := h.customers.Get(ctx, id); err == nil {
		fmt.Fprintln(out, "Error: identifier already registered for another customer.")
		return
	}

	fullName, ok := prompt(scanner, out, "Full name: ")
	if !ok {
		return
	}

	address, ok := prompt(scanner, out, "Address: ")
	if !ok {
		return
	}

	birthDate, ok := prompt(scanner, out, "Date of birth (dd/mm/yyyy): ")
	if !ok {
		return
	}

	if _, err := h.customers.Register(ctx, id, fullName, address, birthDate); err != nil {
		fmt.Fprintln(out, h.errMessage(err))
		return
	}

	fmt.Fprintln(out, "Customer registered successfully!")
}

func (h *Handler) openAccount(ctx context.Context, scanner *bufio.Scanner, out io.Writer) {
	id, ok := prompt(scanner, out, "Customer ID: ")
	if !ok {
		return
	}

	if _, err := h.accounts.Open(ctx, id); err != nil {
		fmt.Fprintln(out, h.errMessage(err))
		return
	}

	fmt.Fprintln(out, "Checking account opened successfully!")
}

func (h *Handler) listCustomers(ctx context.Context, out io.Writer) {
	customers, err := h.customers.List(ctx)
	if err != nil {
		fmt.Fprintln(out, h.errMessage(err))
		return
	}

	for _, c := range customers {
		fmt.Fprintf(out, "ID: %s, Name: %s, Address: %s\n", c.ID, c.FullName, c.Address)
	}
}

func (h *Handler) listAccounts(ctx context.Context, out io.Writer) {
	accounts, err := h.accounts.List(ctx)
	if err != nil {
		fmt.Fprintln(out, h.errMessage(err))
		return
	}

	for _, a := range accounts {
		name := a.CustomerID
		if customer, err := h.customers.Get(ctx, a.CustomerID); err == nil {
			name = customer.FullName
		}

		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "Account number: %d\n", a.Number)
		fmt.Fprintf(out, "Customer: %s\n", name)
		fmt.Fprintf(out, "Balance: %s\n", moneypkg.Format(h.symbol, a.Balance))
		fmt.Fprintln(out, separator)
	}
}

func (h *Handler) deposit(ctx context.Context, scanner *bufio.Scanner, out io.Writer) {
	id, ok := prompt(scanner, out, "Customer ID: ")
	if !ok {
		return
	}

	if _, err := h.customers.Get(ctx, id); err != nil {
		fmt.Fprintln(out, h.errMessage(err))
		return
	}

	amount, ok := prompt(scanner, out, fmt.Sprintf("Deposit amount: %s ", h.symbol))
	if !ok {
		return
	}

	if _, err := h.accounts.Deposit(ctx, id, amount); err != nil {
		fmt.Fprintln(out, h.errMessage(err))
		return
	}

	fmt.Fprintln(out, "Deposit completed successfully.")
}

func (h *Handler) withdraw(ctx context.Context, scanner *bufio.Scanner, out io.Writer) {
	id, ok := prompt(scanner, out, "Customer ID: ")
	if !ok {
		return
	}

	if _, err := h.customers.Get(ctx, id); err != nil {
		fmt.Fprintln(out, h.errMessage(err))
		return
	}

	amount, ok := prompt(scanner, out, fmt.Sprintf("Withdrawal amount: %s ", h.symbol))
	if !ok {
		return
	}

	if _, err := h.accounts.Withdraw(ctx, id, amount); err != nil {
		fmt.Fprintln(out, h.errMessage(err))
		return
	}

	fmt.Fprintln(out, "Withdrawal completed successfully.")
}

func (h *Handler) statement(ctx context.Context, scanner *bufio.Scanner, out io.Writer) {
	id, ok := prompt(scanner, out, "Customer ID: ")
	if !ok {
		return
	}

	statement, err := h.accounts.Statement(ctx, id)
	if err != nil {
		fmt.Fprintln(out, h.errMessage(err))
		return
	}

	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, "**** ACCOUNT STATEMENT ****")

	if len(statement.Entries) == 0 {
		fmt.Fprintln(out, "No transactions recorded for this account.")
	}

	for _, e := range statement.Entries {
		fmt.Fprintf(out, "%s: %s\n", e.Kind, moneypkg.Format(h.symbol, e.Amount))
	}

	fmt.Fprintf(out, "\nBalance: %s\n", moneypkg.Format(h.symbol, statement.Account.Balance))
	fmt.Fprintln(out, separator)
}

func (h *Handler) errMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "Customer not found."
	case errors.Is(err, domain.ErrCustomerAlreadyExists):
		return "Error: identifier already registered for another customer."
	case errors.Is(err, domain.ErrNoAccountForCustomer):
		return "Customer has no open account."
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Invalid amount. Please enter a valid value."
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient funds. The operation was not completed."
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return "Withdrawal limit exceeded. The operation was not completed."
	default:
		return "Something went wrong. Please try again."
	}
}

func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	return readLine(scanner)
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(scanner.Text()), true
}

func operationName(option string) string {
	switch option {
	case "1":
		return "register_customer"
	case "2":
		return "open_account"
	case "3":
		return "list_customers"
	case "4":
		return "list_accounts"
	case "5":
		return "deposit"
	case "6":
		return "withdraw"
	case "7":
		return "statement"
	case "8":
		return "exit"
	default:
		return "unknown"
	}
}
