package order

import (
	"fmt"

	"railmeals/internal/pkg/errs"
	"railmeals/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Item is an immutable line item on an order: a menu item reference, the
// ordered quantity, the unit price captured at ordering time, and the
// vegetarian flag shown on the dashboard.
//
// Prices use decimal arithmetic; order totals must never accumulate float
// rounding error.
type Item struct { //nolint:recvcheck //using for validation
	menuItemID int64
	name       string
	quantity   int
	unitPrice  decimal.Decimal
	vegetarian bool

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item.
// The menu item ID must be positive, the name non-empty, the quantity
// positive, and the unit price non-negative.
func NewItem(menuItemID int64, name string, quantity int, unitPrice decimal.Decimal, vegetarian bool) (Item, error) {
	if menuItemID <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("menuItemID",
			fmt.Errorf("%d is not a positive identifier", menuItemID))
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}

	return Item{
		menuItemID: menuItemID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
		vegetarian: vegetarian,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// MenuItemID returns the upstream menu item identifier.
func (i Item) MenuItemID() int64 {
	return i.menuItemID
}

// Name returns the display name of the menu item.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at ordering time.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// IsVegetarian reports whether the item is vegetarian.
func (i Item) IsVegetarian() bool {
	return i.vegetarian
}

// LineTotal returns quantity times unit price.
func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// Validate returns ErrItemIsNotConstructed for the zero value.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
