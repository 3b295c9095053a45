// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and the relational schema.
package orderrepo

import (
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column stores the wire code so read-side queries and the upstream
// payloads speak the same vocabulary.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OutletID         uuid.UUID  `gorm:"type:uuid;index"`
	TrainNumber      string     `gorm:"type:varchar(8)"`
	StationCode      string     `gorm:"type:varchar(8)"`
	Status           string     `gorm:"type:varchar(32);index"`
	DeliveryPersonID *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName     string
	CustomerPhone    string `gorm:"type:varchar(16)"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID"`

	CreatedAt           time.Time
	ScheduledDeliveryAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item row belonging to an order.
type OrderItemDTO struct {
	ID         uint      `gorm:"primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID int64
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2)"`
	Vegetarian bool
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var deliveryPersonID *uuid.UUID
	if id := aggregate.DeliveryPerson(); id != nil {
		raw := id.Bytes()
		deliveryPersonID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			Vegetarian: item.IsVegetarian(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		OutletID:            aggregate.OutletID().Bytes(),
		TrainNumber:         aggregate.TrainNumber(),
		StationCode:         aggregate.StationCode(),
		Status:              aggregate.Status().Code(),
		DeliveryPersonID:    deliveryPersonID,
		CustomerName:        aggregate.Customer().Name(),
		CustomerPhone:       aggregate.Customer().Phone().String(),
		Items:               items,
		CreatedAt:           aggregate.CreatedAt(),
		ScheduledDeliveryAt: aggregate.ScheduledDeliveryAt(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which re-checks the status and courier pairing.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	outletID, err := kernel.UUIDFromBytes(dto.OutletID[:])
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		dpID, dpErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if dpErr != nil {
			return nil, dpErr
		}
		deliveryPersonID = &dpID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.MenuItemID,
			itemDTO.Name,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
			itemDTO.Vegetarian,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	phone, err := kernel.NewPhone(dto.CustomerPhone)
	if err != nil {
		return nil, err
	}
	customer, err := order.NewCustomer(dto.CustomerName, phone)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		outletID,
		dto.TrainNumber,
		dto.StationCode,
		order.StatusFromCode(dto.Status),
		deliveryPersonID,
		items,
		customer,
		dto.CreatedAt,
		dto.ScheduledDeliveryAt,
	)
}
