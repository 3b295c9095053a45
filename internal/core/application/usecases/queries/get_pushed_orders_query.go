package queries

import (
	"errors"
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"
	"railmeals/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPushedOrdersQueryIsNotConstructed = errors.New(
	"GetPushedOrdersQuery must be created via NewGetPushedOrdersQuery constructor",
)

// GetPushedOrdersQuery retrieves the outlet's pushed-order board: every stored
// order grouped into the three workflow tabs.
//
// Example:
//
//	query, err := NewGetPushedOrdersQuery(outletID)
//	if err != nil {
//	    return err
//	}
//	board, err := handler.Handle(ctx, query)
type GetPushedOrdersQuery struct {
	outletID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPushedOrdersQuery creates a board query for one outlet.
func NewGetPushedOrdersQuery(outletID kernel.UUID) (GetPushedOrdersQuery, error) {
	if err := outletID.Validate(); err != nil {
		return GetPushedOrdersQuery{}, err
	}
	return GetPushedOrdersQuery{
		outletID: outletID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPushedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPushedOrdersQueryIsNotConstructed)
}

// OutletID returns the outlet whose board is requested.
func (q GetPushedOrdersQuery) OutletID() kernel.UUID {
	return q.outletID
}

// PushedOrderResponse is one row on the board.
type PushedOrderResponse struct {
	ID                  kernel.UUID
	TrainNumber         string
	StationCode         string
	StatusCode          string
	StatusLabel         string
	Tint                string
	CustomerName        string
	CustomerPhone       string
	DeliveryPersonName  string
	Total               decimal.Decimal
	CreatedAt           time.Time
	ScheduledDeliveryAt time.Time
}

// BoardTabResponse is one tab on the board with its badge count.
type BoardTabResponse struct {
	Label  string
	Count  int
	Orders []PushedOrderResponse
}

// GetPushedOrdersQueryResponse is the complete board: the three workflow tabs
// in display order.
type GetPushedOrdersQueryResponse struct {
	Tabs []BoardTabResponse
}

// BuildBoard groups order rows into the three workflow tabs. Every known
// status lands in exactly one tab; rows whose status code does not classify
// are dropped from the board rather than shown under a wrong heading.
func BuildBoard(rows []PushedOrderResponse) GetPushedOrdersQueryResponse {
	groups := []order.Group{order.GroupPreparing, order.GroupOutForDelivery, order.GroupDelivered}

	byGroup := make(map[order.Group][]PushedOrderResponse, len(groups))
	for _, row := range rows {
		group := order.StatusFromCode(row.StatusCode).Group()
		if group == order.GroupUnknown {
			continue
		}
		byGroup[group] = append(byGroup[group], row)
	}

	tabs := make([]BoardTabResponse, 0, len(groups))
	for _, group := range groups {
		orders := byGroup[group]
		if orders == nil {
			orders = make([]PushedOrderResponse, 0)
		}
		tabs = append(tabs, BoardTabResponse{
			Label:  group.Label(),
			Count:  len(orders),
			Orders: orders,
		})
	}

	return GetPushedOrdersQueryResponse{Tabs: tabs}
}
