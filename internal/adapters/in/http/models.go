package http

import "time"

// errorResponse is the uniform error body returned by every endpoint.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// changeStatusRequest asks for the immediate status-change path.
type changeStatusRequest struct {
	Status string `json:"status"`
}

// assignDeliveryRequest completes a deferred transition with the selected
// delivery person.
type assignDeliveryRequest struct {
	Status           string `json:"status"`
	DeliveryPersonID string `json:"deliveryPersonId"`
}

// createDeliveryPersonRequest registers a courier on the roster.
type createDeliveryPersonRequest struct {
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	DocumentExpiry  time.Time `json:"documentExpiry"`
	ProfileImageURL string    `json:"profileImageUrl"`
}

// orderResponse is one row on the board.
type orderResponse struct {
	ID                  string    `json:"id"`
	TrainNumber         string    `json:"trainNo"`
	StationCode         string    `json:"stationCode"`
	Status              string    `json:"status"`
	StatusLabel         string    `json:"statusLabel"`
	Tint                string    `json:"tint"`
	CustomerName        string    `json:"customerName"`
	CustomerPhone       string    `json:"customerContactNo"`
	DeliveryPersonName  string    `json:"deliveryPersonName,omitempty"`
	Total               string    `json:"total"`
	CreatedAt           time.Time `json:"createdAt"`
	ScheduledDeliveryAt time.Time `json:"deliveryDateTime"`
}

// boardTabResponse is one tab on the board with its badge count.
type boardTabResponse struct {
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Orders []orderResponse `json:"orders"`
}

// boardResponse is the complete order board.
type boardResponse struct {
	Tabs []boardTabResponse `json:"tabs"`
}

// deliveryPersonResponse is one roster entry.
type deliveryPersonResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	DocumentExpiry  time.Time `json:"documentExpiry"`
	DocumentsValid  bool      `json:"documentsValid"`
	TotalDeliveries int       `json:"totalDeliveries"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
}

// suggestionResponse is the pre-filled courier for the selection step.
type suggestionResponse struct {
	DeliveryPersonID string `json:"deliveryPersonId"`
	Name             string `json:"name"`
	TotalDeliveries  int    `json:"totalDeliveries"`
}

// trainScheduleResponse is the informational train detail for an order.
type trainScheduleResponse struct {
	TrainNumber string    `json:"trainNo"`
	TrainName   string    `json:"trainName"`
	StationCode string    `json:"stationCode"`
	ArrivesAt   time.Time `json:"arrivalTime"`
	DepartsAt   time.Time `json:"departureTime"`
	PlatformNo  string    `json:"platformNo"`
}

// revenueSummaryResponse is the aggregated period summary.
type revenueSummaryResponse struct {
	TotalRevenue    string `json:"totalRevenue"`
	OrdersDelivered int    `json:"ordersDelivered"`
	OrdersCancelled int    `json:"ordersCancelled"`
	OrdersTotal     int    `json:"ordersTotal"`
}
