package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"railmeals/internal/core/ports"
)

// pushItemRequest mirrors the upstream line-item reference.
type pushItemRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// pushStatusRequest is the wire payload for a status-change notification.
// Courier attribution and remarks are omitted when empty.
type pushStatusRequest struct {
	Status                  string            `json:"status"`
	OrderItems              []pushItemRequest `json:"orderItems"`
	DeliveryPersonName      string            `json:"deliveryPersonName,omitempty"`
	DeliveryPersonContactNo string            `json:"deliveryPersonContactNo,omitempty"`
	Remarks                 string            `json:"remarks,omitempty"`
}

// pushStatusResponse is the upstream acknowledgement. Status false means the
// change was refused even though the request itself was well-formed.
type pushStatusResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// Push notifies upstream of a status change. Returns ports.ErrPushRejected
// when upstream refuses the change, or a transport error otherwise. Only a
// nil return permits the caller to mutate local state.
func (c *Client) Push(ctx context.Context, request ports.PushRequest) error {
	payload := pushStatusRequest{
		Status:     request.Status.Code(),
		OrderItems: make([]pushItemRequest, 0, len(request.Items)),
		Remarks:    request.Remark,
	}
	for _, item := range request.Items {
		payload.OrderItems = append(payload.OrderItems, pushItemRequest{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}
	if request.Courier != nil {
		payload.DeliveryPersonName = request.Courier.Name
		payload.DeliveryPersonContactNo = request.Courier.Phone
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/push-status/%s", c.baseURL, request.OrderID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push status for order %s: unexpected response %d", request.OrderID, resp.StatusCode)
	}

	var ack pushStatusResponse
	if err = json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return fmt.Errorf("push status for order %s: %w", request.OrderID, err)
	}

	if !ack.Status {
		return fmt.Errorf("push status for order %s: %w", request.OrderID, ports.ErrPushRejected)
	}

	return nil
}
