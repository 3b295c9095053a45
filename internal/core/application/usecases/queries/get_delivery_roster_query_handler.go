package queries

import (
	"context"
	"time"

	"railmeals/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryRosterQueryHandler retrieves the outlet's delivery staff from the
// database, sorted by name.
type GetDeliveryRosterQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryRosterQueryHandler creates a handler for roster queries.
func NewGetDeliveryRosterQueryHandler(db *gorm.DB) GetDeliveryRosterQueryHandler {
	return GetDeliveryRosterQueryHandler{db: db}
}

// Handle executes the query and computes document validity as of now.
func (h GetDeliveryRosterQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryRosterQuery,
) ([]GetDeliveryRosterQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roster := make([]GetDeliveryRosterQueryResponse, 0)
	now := time.Now()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			document_expiry,
			total_deliveries,
			profile_image_url
		FROM delivery_people
		WHERE outlet_id = ?
		ORDER BY name
	`, query.OutletID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetDeliveryRosterQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Name,
			&entry.Phone,
			&entry.DocumentExpiry,
			&entry.TotalDeliveries,
			&entry.ProfileImageURL,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID
		entry.DocumentsValid = entry.DocumentExpiry.After(now)
		roster = append(roster, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}
