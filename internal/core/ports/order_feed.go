package ports

import (
	"context"
	"time"

	"railmeals/internal/core/domain/model/kernel"
)

// FeedItem is a line item as delivered by the upstream order feed.
type FeedItem struct {
	ItemID     int64
	Name       string
	Quantity   int
	UnitPrice  string
	Vegetarian bool
}

// FeedOrder is an order handed into the vendor's queue by the upstream
// system. Orders arrive flagged as pushed; anything still pending acceptance
// elsewhere never appears on this feed.
type FeedOrder struct {
	ID                  kernel.UUID
	TrainNumber         string
	StationCode         string
	StatusCode          string
	CustomerName        string
	CustomerPhone       string
	Items               []FeedItem
	CreatedAt           time.Time
	ScheduledDeliveryAt time.Time
}

// OrderFeed is the polling gateway to the upstream queue of pushed orders.
// The list is only as fresh as the last fetch; there is no subscription
// channel. Isolating the refetch behind this interface lets a future
// real-time feed replace polling without touching the workflow.
type OrderFeed interface {
	FetchPushed(ctx context.Context, outletID kernel.UUID) ([]FeedOrder, error)
}
