// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/go-petr/mini-bank/internal/domain"
	"github.com/go-petr/mini-bank/pkg/moneypkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by account service layer.
type Repo interface {
	Create(ctx context.Context, customerID string, overdraftLimit decimal.Decimal, withdrawalLimit int32) (domain.Account, error)
	Get(ctx context.Context, number int32) (domain.Account, error)
	FirstForCustomer(ctx context.Context, customerID string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Record(ctx context.Context, number int32, kind domain.EntryKind, amount decimal.Decimal) (domain.Account, domain.Entry, error)
	ListEntries(ctx context.Context, number int32) ([]domain.Entry, error)
}

// CustomerRepo provides the customer lookup needed by account service layer.
type CustomerRepo interface {
	Get(ctx context.Context, id string) (domain.Customer, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo            Repo
	customerRepo    CustomerRepo
	overdraftLimit  decimal.Decimal
	withdrawalLimit int32
}

// New returns account service struct to manage account bussines logic.
// New accounts get the given overdraft and withdrawal limits.
func New(ar Repo, cr CustomerRepo, overdraftLimit decimal.Decimal, withdrawalLimit int32) *Service {
	return &Service{
		repo:            ar,
		customerRepo:    cr,
		overdraftLimit:  overdraftLimit,
		withdrawalLimit: withdrawalLimit,
	}
}

// Open creates and returns a checking account for the given customer.
func (s *Service) Open(ctx context.Context, customerID string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if _, err := s.customerRepo.Get(ctx, customerID); err != nil {
		l.Info().Err(err).Str("customer_id", customerID).Send()
		return domain.Account{}, err
	}

	account, err := s.repo.Create(ctx, customerID, s.overdraftLimit, s.withdrawalLimit)
	if err != nil {
		return account, err
	}

	l.Info().Int32("account_number", account.Number).Str("customer_id", customerID).Msg("account opened")

	return account, nil
}

// Deposit increases the balance of the customer's first account and records
// a deposit entry. The amount must parse to a positive decimal.
func (s *Service) Deposit(ctx context.Context, customerID, amount string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := s.validAmount(ctx, amount)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.firstAccount(ctx, customerID)
	if err != nil {
		return domain.Account{}, err
	}

	account, _, err = s.repo.Record(ctx, account.Number, domain.EntryDeposit, amountDecimal)
	if err != nil {
		return domain.Account{}, err
	}

	l.Info().
		Int32("account_number", account.Number).
		Str("amount", amountDecimal.String()).
		Str("balance", account.Balance.String()).
		Msg("deposit recorded")

	return account, nil
}

// Withdraw decreases the balance of the customer's first account and records
// a withdrawal entry.
//
// Check order is contractual: amount validity, then available funds
// (balance plus overdraft limit), then the withdrawal count limit.
func (s *Service) Withdraw(ctx context.Context, customerID, amount string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := s.validAmount(ctx, amount)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.firstAccount(ctx, customerID)
	if err != nil {
		return domain.Account{}, err
	}

	available := account.Balance.Add(account.OverdraftLimit)
	if amountDecimal.GreaterThan(available) {
		l.Info().
			Int32("account_number", account.Number).
			Str("amount", amountDecimal.String()).
			Str("available", available.String()).
			Err(domain.ErrInsufficientFunds).Send()

		return domain.Account{}, domain.ErrInsufficientFunds
	}

	entries, err := s.repo.ListEntries(ctx, account.Number)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, err
	}

	var withdrawals int32

	for i := range entries {
		if entries[i].Kind == domain.EntryWithdrawal {
			withdrawals++
		}
	}

	if withdrawals >= account.WithdrawalLimit {
		l.Info().
			Int32("account_number", account.Number).
			Int32("withdrawals", withdrawals).
			Err(domain.ErrWithdrawalLimitExceeded).Send()

		return domain.Account{}, domain.ErrWithdrawalLimitExceeded
	}

	account, _, err = s.repo.Record(ctx, account.Number, domain.EntryWithdrawal, amountDecimal)
	if err != nil {
		return domain.Account{}, err
	}

	l.Info().
		Int32("account_number", account.Number).
		Str("amount", amountDecimal.String()).
		Str("balance", account.Balance.String()).
		Msg("withdrawal recorded")

	return account, nil
}

// Statement returns the full transaction history and current state of the
// customer's first account.
func (s *Service) Statement(ctx context.Context, customerID string) (domain.Statement, error) {
	account, err := s.firstAccount(ctx, customerID)
	if err != nil {
		return domain.Statement{}, err
	}

	entries, err := s.repo.ListEntries(ctx, account.Number)
	if err != nil {
		return domain.Statement{}, err
	}

	return domain.Statement{Account: account, Entries: entries}, nil
}

// List returns all accounts in creation order.
func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

func (s *Service) validAmount(ctx context.Context, amount string) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := moneypkg.Parse(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		l.Info().Str("amount", amount).Err(domain.ErrInvalidAmount).Send()
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}

	return amountDecimal, nil
}

// firstAccount resolves the customer's first account in open order.
// Deposits, withdrawals and statements always target it; any further
// accounts the customer holds are ignored.
func (s *Service) firstAccount(ctx context.Context, customerID string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if _, err := s.customerRepo.Get(ctx, customerID); err != nil {
		l.Info().Err(err).Str("customer_id", customerID).Send()
		return domain.Account{}, err
	}

	account, err := s.repo.FirstForCustomer(ctx, customerID)
	if err != nil {
		l.Info().Err(err).Str("customer_id", customerID).Send()
		return domain.Account{}, err
	}

	return account, nil
}
