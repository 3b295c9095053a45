package queries

import (
	"context"
	"database/sql"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPushedOrdersQueryHandler reads the outlet's order board straight from the
// database. Uses direct SQL for read performance; the aggregate is never
// reconstructed on the query side.
//
// Example:
//
//	handler := NewGetPushedOrdersQueryHandler(db)
//	query, _ := NewGetPushedOrdersQuery(outletID)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, tab := range board.Tabs {
//	    fmt.Printf("%s (%d)\n", tab.Label, tab.Count)
//	}
type GetPushedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPushedOrdersQueryHandler creates a handler for board queries.
// Requires a GORM database connection for query execution.
func NewGetPushedOrdersQueryHandler(db *gorm.DB) GetPushedOrdersQueryHandler {
	return GetPushedOrdersQueryHandler{db: db}
}

// Handle reads every order of the outlet with its line total and the assigned
// courier's name, then groups the rows into the workflow tabs. Rows are
// ordered by scheduled hand-over time so the most urgent order tops each tab.
func (h GetPushedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPushedOrdersQuery,
) (GetPushedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPushedOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.train_number,
			o.station_code,
			o.status,
			o.customer_name,
			o.customer_phone,
			dp.name,
			COALESCE(SUM(i.unit_price * i.quantity), 0) AS total,
			o.created_at,
			o.scheduled_delivery_at
		FROM orders o
		LEFT JOIN delivery_people dp ON dp.id = o.delivery_person_id
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.outlet_id = ?
		GROUP BY o.id, dp.name
		ORDER BY o.scheduled_delivery_at, o.id
	`, query.OutletID().Bytes()).Rows()
	if err != nil {
		return GetPushedOrdersQueryResponse{}, err
	}
	defer rows.Close()

	board := make([]PushedOrderResponse, 0)

	for rows.Next() {
		var row PushedOrderResponse
		var id uuid.UUID
		var courierName sql.NullString

		err = rows.Scan(
			&id,
			&row.TrainNumber,
			&row.StationCode,
			&row.StatusCode,
			&row.CustomerName,
			&row.CustomerPhone,
			&courierName,
			&row.Total,
			&row.CreatedAt,
			&row.ScheduledDeliveryAt,
		)
		if err != nil {
			return GetPushedOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetPushedOrdersQueryResponse{}, idErr
		}
		row.ID = orderID
		row.DeliveryPersonName = courierName.String

		status := order.StatusFromCode(row.StatusCode)
		row.StatusLabel = status.String()
		row.Tint = string(status.Tint())

		board = append(board, row)
	}

	if err = rows.Err(); err != nil {
		return GetPushedOrdersQueryResponse{}, err
	}

	return BuildBoard(board), nil
}
