package customerrepo

import (
	"context"
	"testing"

	"github.com/go-petr/mini-bank/internal/domain"
	"github.com/go-petr/mini-bank/pkg/randompkg"
	"github.com/stretchr/testify/require"
)

func createRandomCustomer(t *testing.T, repo *RepoMem) domain.Customer {
	arg := domain.CreateCustomerParams{
		ID:        randompkg.IDNumber(),
		FullName:  randompkg.Name(),
		Address:   randompkg.Address(),
		BirthDate: randompkg.BirthDate(),
	}

	customer, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, customer)

	require.Equal(t, arg.ID, customer.ID)
	require.Equal(t, arg.FullName, customer.FullName)
	require.Equal(t, arg.Address, customer.Address)
	require.Equal(t, arg.BirthDate, customer.BirthDate)
	require.NotZero(t, customer.CreatedAt)

	return customer
}

func TestCreate(t *testing.T) {
	createRandomCustomer(t, NewRepoMem())
}

func TestCreateDuplicateIdentifier(t *testing.T) {
	repo := NewRepoMem()
	customer1 := createRandomCustomer(t, repo)

	arg := domain.CreateCustomerParams{
		ID:        customer1.ID,
		FullName:  randompkg.Name(),
		Address:   randompkg.Address(),
		BirthDate: randompkg.BirthDate(),
	}

	customer2, err := repo.Create(context.Background(), arg)
	require.ErrorIs(t, err, domain.ErrCustomerAlreadyExists)
	require.Empty(t, customer2)

	// The registered customer's data must be untouched.
	got, err := repo.Get(context.Background(), customer1.ID)
	require.NoError(t, err)
	require.Equal(t, customer1, got)
}

func TestGet(t *testing.T) {
	repo := NewRepoMem()
	customer := createRandomCustomer(t, repo)

	got, err := repo.Get(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Equal(t, customer, got)
}

func TestGetNotFound(t *testing.T) {
	repo := NewRepoMem()

	_, err := repo.Get(context.Background(), randompkg.IDNumber())
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestListRegistrationOrder(t *testing.T) {
	repo := NewRepoMem()

	var want []domain.Customer
	for i := 0; i < 5; i++ {
		want = append(want, createRandomCustomer(t, repo))
	}

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}
