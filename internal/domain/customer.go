// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrCustomerAlreadyExists indicates that the identifier is already registered.
	ErrCustomerAlreadyExists = errors.New("identifier already registered")
	// ErrCustomerNotFound indicates that the customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrNoAccountForCustomer indicates that the customer has no open accounts.
	ErrNoAccountForCustomer = errors.New("customer has no open account")
)

// Customer holds customer identity data.
type Customer struct {
	ID        string
	FullName  string
	Address   string
	BirthDate string // informational, free-text
	CreatedAt time.Time
}

// CreateCustomerParams is the input data to register a customer.
type CreateCustomerParams struct {
	ID        string
	FullName  string
	Address   string
	BirthDate string
}
