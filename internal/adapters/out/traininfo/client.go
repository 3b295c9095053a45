// Package traininfo looks up train running details from the rail information
// API. The data is informational only: the board shows when an order's train
// reaches the outlet's station, but a lookup failure never blocks the status
// workflow.
package traininfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"railmeals/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// Client implements TrainScheduleProvider over the rail information API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a train information client.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// scheduleResponse mirrors the API's stop-level schedule record.
type scheduleResponse struct {
	TrainNumber string    `json:"trainNo"`
	TrainName   string    `json:"trainName"`
	StationCode string    `json:"stationCode"`
	ArrivesAt   time.Time `json:"arrivalTime"`
	DepartsAt   time.Time `json:"departureTime"`
	PlatformNo  string    `json:"platformNo"`
}

// GetSchedule fetches arrival details for a train at a station.
func (c *Client) GetSchedule(ctx context.Context, trainNumber, stationCode string) (ports.TrainSchedule, error) {
	url := fmt.Sprintf("%s/trains/%s/stations/%s", c.baseURL, trainNumber, stationCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.TrainSchedule{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.TrainSchedule{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.TrainSchedule{}, fmt.Errorf(
			"train %s at %s: unexpected response %d", trainNumber, stationCode, resp.StatusCode)
	}

	var payload scheduleResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.TrainSchedule{}, fmt.Errorf("train %s at %s: %w", trainNumber, stationCode, err)
	}

	return ports.TrainSchedule{
		TrainNumber: payload.TrainNumber,
		TrainName:   payload.TrainName,
		StationCode: payload.StationCode,
		ArrivesAt:   payload.ArrivesAt,
		DepartsAt:   payload.DepartsAt,
		PlatformNo:  payload.PlatformNo,
	}, nil
}
