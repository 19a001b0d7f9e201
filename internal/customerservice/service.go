// Package customerservice manages business logic layer of customers.
package customerservice

import (
	"context"

	"github.com/go-petr/mini-bank/internal/domain"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by customer service layer.
type Repo interface {
	Create(ctx context.Context, arg domain.CreateCustomerParams) (domain.Customer, error)
	Get(ctx context.Context, id string) (domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

// Service facilitates customer service layer logic.
type Service struct {
	repo Repo
}

// New returns customer service struct to manage customer bussines logic.
func New(cr Repo) *Service {
	return &Service{repo: cr}
}

// Register creates and returns the customer with the given identity data.
func (s *Service) Register(ctx context.Context, id, fullName, address, birthDate string) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	arg := domain.CreateCustomerParams{
		ID:        id,
		FullName:  fullName,
		Address:   address,
		BirthDate: birthDate,
	}

	customer, err := s.repo.Create(ctx, arg)
	if err != nil {
		return customer, err
	}

	l.Info().Str("customer_id", customer.ID).Msg("customer registered")

	return customer, nil
}

// Get returns the customer with the given identifier.
func (s *Service) Get(ctx context.Context, id string) (domain.Customer, error) {
	customer, err := s.repo.Get(ctx, id)
	if err != nil {
		return customer, err
	}

	return customer, nil
}

// List returns all registered customers in registration order.
func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return customers, nil
}
