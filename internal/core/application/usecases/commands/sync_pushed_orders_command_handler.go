package commands

import (
	"context"
	"fmt"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"
	"railmeals/internal/core/ports"

	"github.com/shopspring/decimal"
)

// SyncPushedOrdersCommandHandler mirrors the upstream queue of pushed orders
// into local storage. Orders already known are skipped; feed entries that are
// not in the initial preparing state are ignored, since any later state is
// the result of a transition this service performed itself.
type SyncPushedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	feed       ports.OrderFeed
}

// NewSyncPushedOrdersCommandHandler creates a handler for feed synchronisation.
func NewSyncPushedOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	feed ports.OrderFeed,
) SyncPushedOrdersCommandHandler {
	return SyncPushedOrdersCommandHandler{
		uowFactory: uowFactory,
		feed:       feed,
	}
}

// Handle fetches the outlet's pushed orders and stores the unseen ones.
// Returns the number of orders added to the queue.
func (h SyncPushedOrdersCommandHandler) Handle(ctx context.Context, command SyncPushedOrdersCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	feedOrders, err := h.feed.FetchPushed(ctx, command.OutletID())
	if err != nil {
		return 0, err
	}
	if len(feedOrders) == 0 {
		return 0, nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	added := 0
	for _, feedOrder := range feedOrders {
		if order.StatusFromCode(feedOrder.StatusCode) != order.Preparing {
			continue
		}

		known, existsErr := ordersRepo.Exists(ctx, feedOrder.ID)
		if existsErr != nil {
			return 0, existsErr
		}
		if known {
			continue
		}

		o, buildErr := buildOrderFromFeed(command.OutletID(), feedOrder)
		if buildErr != nil {
			return 0, fmt.Errorf("feed order %s: %w", feedOrder.ID, buildErr)
		}

		if addErr := ordersRepo.Add(ctx, o); addErr != nil {
			return 0, addErr
		}
		added++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return added, nil
}

// buildOrderFromFeed maps a feed entry onto a fresh Preparing order aggregate.
func buildOrderFromFeed(outletID kernel.UUID, feedOrder ports.FeedOrder) (*order.Order, error) {
	items := make([]order.Item, 0, len(feedOrder.Items))
	for _, feedItem := range feedOrder.Items {
		unitPrice, err := decimal.NewFromString(feedItem.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("item %d has malformed price %q: %w", feedItem.ItemID, feedItem.UnitPrice, err)
		}
		item, err := order.NewItem(feedItem.ItemID, feedItem.Name, feedItem.Quantity, unitPrice, feedItem.Vegetarian)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	phone, err := kernel.NewPhone(feedOrder.CustomerPhone)
	if err != nil {
		return nil, err
	}
	customer, err := order.NewCustomer(feedOrder.CustomerName, phone)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		feedOrder.ID,
		outletID,
		feedOrder.TrainNumber,
		feedOrder.StationCode,
		items,
		customer,
		feedOrder.CreatedAt,
		feedOrder.ScheduledDeliveryAt,
	)
}
