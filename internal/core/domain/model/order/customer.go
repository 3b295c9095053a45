package order

import (
	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/pkg/errs"
	"railmeals/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when validating a zero-value Customer.
var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
	"customer must be created via NewCustomer constructor")

// Customer is the read-only contact attached to an order for display on the
// dashboard. The workflow never mutates customer data.
type Customer struct { //nolint:recvcheck //using for validation
	name  string
	phone kernel.Phone

	guard guard.ConstructorGuard
}

// NewCustomer creates a validated customer contact.
func NewCustomer(name string, phone kernel.Phone) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("name")
	}
	if err := phone.Validate(); err != nil {
		return Customer{}, err
	}

	return Customer{
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact number.
func (c Customer) Phone() kernel.Phone {
	return c.phone
}

// Validate returns ErrCustomerIsNotConstructed for the zero value.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}
