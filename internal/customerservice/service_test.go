package customerservice

import (
	"context"
	"testing"

	"github.com/go-petr/mini-bank/internal/customerrepo"
	"github.com/go-petr/mini-bank/internal/domain"
	"github.com/go-petr/mini-bank/pkg/randompkg"
	"github.com/stretchr/testify/require"
)

func registerRandomCustomer(t *testing.T, service *Service) domain.Customer {
	id := randompkg.IDNumber()
	fullName := randompkg.Name()
	address := randompkg.Address()
	birthDate := randompkg.BirthDate()

	customer, err := service.Register(context.Background(), id, fullName, address, birthDate)
	require.NoError(t, err)

	require.Equal(t, id, customer.ID)
	require.Equal(t, fullName, customer.FullName)
	require.Equal(t, address, customer.Address)
	require.Equal(t, birthDate, customer.BirthDate)

	return customer
}

func TestRegister(t *testing.T) {
	service := New(customerrepo.NewRepoMem())
	registerRandomCustomer(t, service)
}

func TestRegisterDuplicateIdentifier(t *testing.T) {
	service := New(customerrepo.NewRepoMem())
	customer := registerRandomCustomer(t, service)

	_, err := service.Register(context.Background(), customer.ID, randompkg.Name(), randompkg.Address(), randompkg.BirthDate())
	require.ErrorIs(t, err, domain.ErrCustomerAlreadyExists)

	got, err := service.Get(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Equal(t, customer, got)
}

func TestGetNotFound(t *testing.T) {
	service := New(customerrepo.NewRepoMem())

	_, err := service.Get(context.Background(), randompkg.IDNumber())
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestList(t *testing.T) {
	service := New(customerrepo.NewRepoMem())

	customer1 := registerRandomCustomer(t, service)
	customer2 := registerRandomCustomer(t, service)

	customers, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	require.Equal(t, customer1.ID, customers[0].ID)
	require.Equal(t, customer2.ID, customers[1].ID)
}
