package queries

import (
	"context"

	"railmeals/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRevenueSummaryQueryHandler aggregates order counts and revenue per
// status over a period, then folds the per-status rows into the summary.
type GetRevenueSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetRevenueSummaryQueryHandler creates a handler for revenue queries.
func NewGetRevenueSummaryQueryHandler(db *gorm.DB) GetRevenueSummaryQueryHandler {
	return GetRevenueSummaryQueryHandler{db: db}
}

// Handle executes the aggregation. Orders created within [from, to) are
// grouped by status; delivered and partially delivered rows contribute to
// revenue.
func (h GetRevenueSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetRevenueSummaryQuery,
) (GetRevenueSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRevenueSummaryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			COUNT(DISTINCT o.id),
			COALESCE(SUM(i.unit_price * i.quantity), 0) AS revenue
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.outlet_id = ?
		  AND o.created_at >= ?
		  AND o.created_at < ?
		GROUP BY o.status
	`, query.OutletID().Bytes(), query.From(), query.To()).Rows()
	if err != nil {
		return GetRevenueSummaryQueryResponse{}, err
	}
	defer rows.Close()

	summary := GetRevenueSummaryQueryResponse{TotalRevenue: decimal.Zero}

	for rows.Next() {
		var statusCode string
		var count int
		var revenue decimal.Decimal

		if err = rows.Scan(&statusCode, &count, &revenue); err != nil {
			return GetRevenueSummaryQueryResponse{}, err
		}

		summary.OrdersTotal += count

		switch order.StatusFromCode(statusCode) {
		case order.Delivered, order.PartiallyDelivered:
			summary.OrdersDelivered += count
			summary.TotalRevenue = summary.TotalRevenue.Add(revenue)
		case order.Cancelled:
			summary.OrdersCancelled += count
		}
	}

	if err = rows.Err(); err != nil {
		return GetRevenueSummaryQueryResponse{}, err
	}

	return summary, nil
}
