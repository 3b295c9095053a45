package services

import (
	"errors"
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"
	"railmeals/internal/core/domain/model/roster"
)

// ErrNoEligibleDeliveryPerson is returned when no courier on the roster can be
// suggested for a dispatch: either the roster is empty or every entry has
// expired identity documents.
var ErrNoEligibleDeliveryPerson = errors.New("no eligible delivery person found")

// CourierSuggester is a domain service that proposes a delivery person for an
// order awaiting dispatch. The operator always confirms the choice; the
// suggestion only pre-fills the selection step.
//
// Selection rules:
//   - the order must still accept a courier-attributed transition
//   - couriers with expired identity documents are skipped
//   - couriers currently out on another delivery are skipped
//   - among eligible couriers, the one with the fewest completed deliveries
//     is preferred, spreading work across the roster
type CourierSuggester struct{}

// NewCourierSuggester creates a new CourierSuggester instance.
func NewCourierSuggester() CourierSuggester {
	return CourierSuggester{}
}

// Suggest returns the preferred courier for dispatching the given order.
// activeOrders is the outlet's working queue; it determines which couriers
// are already out. Returns ErrNoEligibleDeliveryPerson when nobody on the
// roster qualifies.
func (s CourierSuggester) Suggest(
	o *order.Order,
	people []*roster.DeliveryPerson,
	activeOrders []*order.Order,
	now time.Time,
) (*roster.DeliveryPerson, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.Status().ValidateTransition(order.OutForDelivery); err != nil {
		return nil, err
	}

	busy := make(map[kernel.UUID]struct{})
	for _, active := range activeOrders {
		if active.Status() == order.OutForDelivery && active.DeliveryPerson() != nil {
			busy[*active.DeliveryPerson()] = struct{}{}
		}
	}

	var best *roster.DeliveryPerson
	for _, dp := range people {
		if err := dp.Validate(); err != nil {
			return nil, err
		}
		if !dp.HasValidDocuments(now) {
			continue
		}
		if _, out := busy[dp.ID()]; out {
			continue
		}
		if best == nil || dp.TotalDeliveries() < best.TotalDeliveries() {
			best = dp
		}
	}

	if best == nil {
		return nil, ErrNoEligibleDeliveryPerson
	}
	return best, nil
}
