package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/ports"
)

// feedItemResponse mirrors one line item on the upstream feed.
type feedItemResponse struct {
	ItemID     int64  `json:"itemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`
	Vegetarian bool   `json:"vegetarian"`
}

// feedOrderResponse mirrors one pushed order on the upstream feed.
type feedOrderResponse struct {
	ID                  string             `json:"id"`
	TrainNumber         string             `json:"trainNo"`
	StationCode         string             `json:"stationCode"`
	Status              string             `json:"status"`
	CustomerName        string             `json:"customerName"`
	CustomerPhone       string             `json:"customerContactNo"`
	Items               []feedItemResponse `json:"orderItems"`
	CreatedAt           time.Time          `json:"createdAt"`
	ScheduledDeliveryAt time.Time          `json:"deliveryDateTime"`
}

// FetchPushed retrieves the outlet's queue of pushed orders.
func (c *Client) FetchPushed(ctx context.Context, outletID kernel.UUID) ([]ports.FeedOrder, error) {
	url := fmt.Sprintf("%s/orders?outlet_id=%s", c.baseURL, outletID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch pushed orders: unexpected response %d", resp.StatusCode)
	}

	var payload []feedOrderResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fetch pushed orders: %w", err)
	}

	orders := make([]ports.FeedOrder, 0, len(payload))
	for _, entry := range payload {
		id, idErr := kernel.UUIDFromString(entry.ID)
		if idErr != nil {
			return nil, fmt.Errorf("fetch pushed orders: order id %q: %w", entry.ID, idErr)
		}

		items := make([]ports.FeedItem, 0, len(entry.Items))
		for _, item := range entry.Items {
			items = append(items, ports.FeedItem{
				ItemID:     item.ItemID,
				Name:       item.Name,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				Vegetarian: item.Vegetarian,
			})
		}

		orders = append(orders, ports.FeedOrder{
			ID:                  id,
			TrainNumber:         entry.TrainNumber,
			StationCode:         entry.StationCode,
			StatusCode:          entry.Status,
			CustomerName:        entry.CustomerName,
			CustomerPhone:       entry.CustomerPhone,
			Items:               items,
			CreatedAt:           entry.CreatedAt,
			ScheduledDeliveryAt: entry.ScheduledDeliveryAt,
		})
	}

	return orders, nil
}
