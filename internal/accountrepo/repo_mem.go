// Package accountrepo manages repository layer of accounts and their entries.
package accountrepo

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/mini-bank/internal/domain"
	"github.com/go-petr/mini-bank/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoMem facilitates account repository layer logic with in-memory storage.
//
// Accounts are kept in creation order and numbered sequentially from 1.
// Entries live next to their account so a balance change and its log entry
// commit as one atomic step.
type RepoMem struct {
	mu       sync.Mutex
	accounts []domain.Account
	entries  map[int32][]domain.Entry
}

// NewRepoMem returns account RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		entries: make(map[int32][]domain.Entry),
	}
}

// Create opens an account for the customer and then returns it.
// Numbers are assigned as existing count + 1 and never reused.
func (r *RepoMem) Create(ctx context.Context, customerID string, overdraftLimit decimal.Decimal, withdrawalLimit int32) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := domain.Account{
		Number:          int32(len(r.accounts)) + 1,
		CustomerID:      customerID,
		Balance:         decimal.Zero,
		OverdraftLimit:  overdraftLimit,
		WithdrawalLimit: withdrawalLimit,
		CreatedAt:       time.Now(),
	}

	r.accounts = append(r.accounts, a)

	return a, nil
}

// Get returns the account with the given number.
func (r *RepoMem) Get(ctx context.Context, number int32) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, err := r.get(number)
	if err != nil {
		return domain.Account{}, err
	}

	return *a, nil
}

// FirstForCustomer returns the customer's first account in open order.
func (r *RepoMem) FirstForCustomer(ctx context.Context, customerID string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].CustomerID == customerID {
			return r.accounts[i], nil
		}
	}

	return domain.Account{}, domain.ErrNoAccountForCustomer
}

// List returns all accounts in creation order.
func (r *RepoMem) List(ctx context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)

	return out, nil
}

// Record applies the balance delta for the given kind and appends the entry
// atomically, then returns the changed account and the new entry.
// Business validation happens in the service layer before calling it.
func (r *RepoMem) Record(ctx context.Context, number int32, kind domain.EntryKind, amount decimal.Decimal) (domain.Account, domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	a, err := r.get(number)
	if err != nil {
		l.Error().Err(err).Int32("account_number", number).Send()
		return domain.Account{}, domain.Entry{}, err
	}

	switch kind {
	case domain.EntryDeposit:
		a.Balance = a.Balance.Add(amount)
	case domain.EntryWithdrawal:
		a.Balance = a.Balance.Sub(amount)
	default:
		l.Error().Str("kind", string(kind)).Msg("unknown entry kind")
		return domain.Account{}, domain.Entry{}, errorspkg.ErrInternal
	}

	e := domain.Entry{
		AccountNumber: number,
		Kind:          kind,
		Amount:        amount,
		CreatedAt:     time.Now(),
	}

	r.entries[number] = append(r.entries[number], e)

	return *a, e, nil
}

// ListEntries returns the account's entries in chronological order.
func (r *RepoMem) ListEntries(ctx context.Context, number int32) ([]domain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.get(number); err != nil {
		return nil, err
	}

	out := make([]domain.Entry, len(r.entries[number]))
	copy(out, r.entries[number])

	return out, nil
}

// get must be called with the mutex held.
func (r *RepoMem) get(number int32) (*domain.Account, error) {
	i := int(number) - 1
	if i < 0 || i >= len(r.accounts) {
		return nil, domain.ErrAccountNotFound
	}

	return &r.accounts[i], nil
}
