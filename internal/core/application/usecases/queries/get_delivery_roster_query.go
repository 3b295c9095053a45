package queries

import (
	"errors"
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/pkg/guard"
)

var ErrGetDeliveryRosterQueryIsNotConstructed = errors.New(
	"GetDeliveryRosterQuery must be created via NewGetDeliveryRosterQuery constructor",
)

// GetDeliveryRosterQuery retrieves the outlet's delivery staff for the
// courier-selection step and the roster screen.
type GetDeliveryRosterQuery struct {
	outletID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryRosterQuery creates a roster query for one outlet.
func NewGetDeliveryRosterQuery(outletID kernel.UUID) (GetDeliveryRosterQuery, error) {
	if err := outletID.Validate(); err != nil {
		return GetDeliveryRosterQuery{}, err
	}
	return GetDeliveryRosterQuery{
		outletID: outletID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryRosterQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryRosterQueryIsNotConstructed)
}

// OutletID returns the outlet whose roster is requested.
func (q GetDeliveryRosterQuery) OutletID() kernel.UUID {
	return q.outletID
}

// GetDeliveryRosterQueryResponse is one roster entry read model.
// DocumentsValid is computed against the query execution time so the
// selection step can grey out couriers who must not be dispatched.
type GetDeliveryRosterQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	DocumentExpiry  time.Time
	DocumentsValid  bool
	TotalDeliveries int
	ProfileImageURL string
}
