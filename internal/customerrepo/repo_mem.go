// Package customerrepo manages repository layer of customers.
package customerrepo

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/mini-bank/internal/domain"
	"github.com/rs/zerolog"
)

// RepoMem facilitates customer repository layer logic with in-memory storage.
//
// Customers are kept in registration order; byID indexes the same records.
type RepoMem struct {
	mu        sync.Mutex
	customers []domain.Customer
	byID      map[string]int
}

// NewRepoMem returns customer RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		byID: make(map[string]int),
	}
}

// Create registers the customer and then returns it.
// The duplicate identifier check and the insert run under one lock.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateCustomerParams) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	var c domain.Customer

	if _, ok := r.byID[arg.ID]; ok {
		l.Info().Str("customer_id", arg.ID).Err(domain.ErrCustomerAlreadyExists).Send()
		return c, domain.ErrCustomerAlreadyExists
	}

	c = domain.Customer{
		ID:        arg.ID,
		FullName:  arg.FullName,
		Address:   arg.Address,
		BirthDate: arg.BirthDate,
		CreatedAt: time.Now(),
	}

	r.byID[c.ID] = len(r.customers)
	r.customers = append(r.customers, c)

	return c, nil
}

// Get returns the customer with the given identifier.
func (r *RepoMem) Get(ctx context.Context, id string) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	return r.customers[i], nil
}

// List returns all customers in registration order.
func (r *RepoMem) List(ctx context.Context) ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Customer, len(r.customers))
	copy(out, r.customers)

	return out, nil
}
