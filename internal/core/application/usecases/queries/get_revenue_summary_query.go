package queries

import (
	"errors"
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/pkg/errs"
	"railmeals/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRevenueSummaryQueryIsNotConstructed = errors.New(
	"GetRevenueSummaryQuery must be created via NewGetRevenueSummaryQuery constructor",
)

// GetRevenueSummaryQuery aggregates an outlet's orders over a period.
// Revenue counts orders that reached a delivered outcome; a partial delivery
// still bills the full order since upstream handles any refund separately.
type GetRevenueSummaryQuery struct {
	outletID kernel.UUID
	from     time.Time
	to       time.Time

	guard guard.ConstructorGuard
}

// NewGetRevenueSummaryQuery creates a revenue query over [from, to).
func NewGetRevenueSummaryQuery(outletID kernel.UUID, from, to time.Time) (GetRevenueSummaryQuery, error) {
	if err := outletID.Validate(); err != nil {
		return GetRevenueSummaryQuery{}, err
	}
	if !to.After(from) {
		return GetRevenueSummaryQuery{}, errs.NewValueIsInvalidError("period")
	}
	return GetRevenueSummaryQuery{
		outletID: outletID,
		from:     from,
		to:       to,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRevenueSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueSummaryQueryIsNotConstructed)
}

// OutletID returns the outlet being summarised.
func (q GetRevenueSummaryQuery) OutletID() kernel.UUID {
	return q.outletID
}

// From returns the inclusive period start.
func (q GetRevenueSummaryQuery) From() time.Time {
	return q.from
}

// To returns the exclusive period end.
func (q GetRevenueSummaryQuery) To() time.Time {
	return q.to
}

// GetRevenueSummaryQueryResponse is the aggregated period summary.
type GetRevenueSummaryQueryResponse struct {
	TotalRevenue    decimal.Decimal
	OrdersDelivered int
	OrdersCancelled int
	OrdersTotal     int
}
