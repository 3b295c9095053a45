package ports

import (
	"context"
	"errors"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"
	"railmeals/internal/core/domain/model/roster"
)

// ErrPushRejected indicates that the upstream order system acknowledged the
// push request but refused the status change. The local record must not be
// mutated; the operator retries manually.
var ErrPushRejected = errors.New("upstream rejected the status push")

// PushItem is a line-item reference carried in a push payload.
type PushItem struct {
	ItemID   int64
	Quantity int
}

// CourierContact is the delivery-person attribution forwarded upstream for
// courier-attributed status changes.
type CourierContact struct {
	Name  string
	Phone string
}

// PushRequest describes one status-change notification to the upstream order
// system. Remark carries the audit annotation required for non-delivery
// outcomes; Courier is set only for courier-attributed targets.
type PushRequest struct {
	OrderID kernel.UUID
	Status  order.Status
	Items   []PushItem
	Courier *CourierContact
	Remark  string
}

// NewPushRequest builds the push payload for an order moving to target.
// The remark is derived from the target status; the courier attribution is
// attached when a delivery person is supplied.
func NewPushRequest(o *order.Order, target order.Status, courier *roster.DeliveryPerson) PushRequest {
	items := make([]PushItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, PushItem{ItemID: item.MenuItemID(), Quantity: item.Quantity()})
	}

	req := PushRequest{
		OrderID: o.ID(),
		Status:  target,
		Items:   items,
		Remark:  target.RemarkCode(),
	}
	if courier != nil {
		req.Courier = &CourierContact{
			Name:  courier.Name(),
			Phone: courier.Phone().String(),
		}
	}
	return req
}

// StatusPusher notifies the upstream order-management system of a status
// change. The push is the authoritative gate for every local mutation: it
// MUST complete successfully before the order record is touched. A nil return
// means upstream accepted the change; ErrPushRejected means upstream refused
// it; any other error is a transport failure. In all failure cases the caller
// leaves local state untouched.
type StatusPusher interface {
	Push(ctx context.Context, request PushRequest) error
}
