package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidAmount indicates a non-positive or unparsable amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds indicates that the amount exceeds the balance plus the overdraft limit.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrWithdrawalLimitExceeded indicates that the account reached its withdrawal count limit.
	ErrWithdrawalLimitExceeded = errors.New("withdrawal limit exceeded")
)

// Account holds checking account state.
//
// Balance may go negative down to -OverdraftLimit. WithdrawalLimit caps the
// total count of withdrawal entries over the account lifetime; it never resets.
type Account struct {
	Number          int32
	CustomerID      string
	Balance         decimal.Decimal
	OverdraftLimit  decimal.Decimal
	WithdrawalLimit int32
	CreatedAt       time.Time
}

// Statement is an account snapshot together with its full transaction history.
type Statement struct {
	Account Account
	Entries []Entry
}
