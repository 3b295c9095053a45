package kernel

import (
	"fmt"

	"railmeals/internal/pkg/errs"
	"railmeals/internal/pkg/guard"
)

// PhoneLength is the number of digits in a valid mobile number.
const PhoneLength = 10

// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone.
// Phones must be created via NewPhone to guarantee the digits are valid.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError(
	"phone must be created via NewPhone constructor")

// Phone is an immutable value object representing a 10-digit mobile number.
// It is used for customer contacts and for the courier contact details that
// accompany upstream status pushes.
//
// Example:
//
//	phone, err := kernel.NewPhone("9999999999")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(phone.String()) // "9999999999"
type Phone struct { //nolint:recvcheck //using for validation
	digits string
	guard  guard.ConstructorGuard
}

// NewPhone creates a Phone from a string of exactly PhoneLength digits.
// Returns a validation error for any other input.
func NewPhone(digits string) (Phone, error) {
	if digits == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if len(digits) != PhoneLength {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not %d digits long", digits, PhoneLength))
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
				fmt.Errorf("%q contains a non-digit character", digits))
		}
	}

	return Phone{
		digits: digits,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// String returns the raw digit string.
func (p Phone) String() string {
	return p.digits
}

// IsEqual reports whether two phone numbers are the same.
func (p Phone) IsEqual(other Phone) bool {
	return p.digits == other.digits
}

// Validate returns ErrPhoneIsNotConstructed for the zero value.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}
