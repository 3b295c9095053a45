// Package rosterrepo provides persistence for the delivery-staff roster.
package rosterrepo

import (
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/roster"

	"github.com/google/uuid"
)

// DeliveryPersonDTO represents the database structure for roster entries.
type DeliveryPersonDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OutletID        uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	Phone           string `gorm:"type:varchar(16)"`
	DocumentExpiry  time.Time
	TotalDeliveries int
	ProfileImageURL string
}

// TableName specifies the database table name for roster entries.
func (DeliveryPersonDTO) TableName() string {
	return "delivery_people"
}

// fromDomain converts a roster aggregate to its database representation.
func fromDomain(aggregate *roster.DeliveryPerson) DeliveryPersonDTO {
	return DeliveryPersonDTO{
		ID:              aggregate.ID().Bytes(),
		OutletID:        aggregate.OutletID().Bytes(),
		Name:            aggregate.Name(),
		Phone:           aggregate.Phone().String(),
		DocumentExpiry:  aggregate.DocumentExpiry(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		ProfileImageURL: aggregate.ProfileImageURL(),
	}
}

// toDomain converts a database DTO to a roster aggregate.
func toDomain(dto DeliveryPersonDTO) (*roster.DeliveryPerson, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	outletID, err := kernel.UUIDFromBytes(dto.OutletID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return roster.RestoreDeliveryPerson(
		id,
		outletID,
		dto.Name,
		phone,
		dto.DocumentExpiry,
		dto.TotalDeliveries,
		dto.ProfileImageURL,
	)
}
