package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind enumerates recorded money movement kinds.
type EntryKind string

// Entry kinds.
const (
	EntryDeposit    EntryKind = "Deposit"
	EntryWithdrawal EntryKind = "Withdrawal"
)

// Entry holds one recorded money movement for an account.
// Entries are append-only and immutable once recorded.
type Entry struct {
	AccountNumber int32
	Kind          EntryKind
	Amount        decimal.Decimal // always positive; Kind carries the direction
	CreatedAt     time.Time
}
